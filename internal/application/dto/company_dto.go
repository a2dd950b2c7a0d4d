package dto

// CompanyRequest cuerpo de POST /api/v2/companies.
type CompanyRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// CompanyResponse empresa persistida.
type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
