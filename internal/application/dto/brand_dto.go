package dto

// BrandRequest cuerpo de POST /api/v3/brands.
type BrandRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// BrandResponse marca persistida.
type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
