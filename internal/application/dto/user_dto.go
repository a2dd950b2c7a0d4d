package dto

// UserRequest cuerpo de POST /api/v1/users. Con id se actualiza la fila existente.
type UserRequest struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// UserResponse usuario persistido.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}
