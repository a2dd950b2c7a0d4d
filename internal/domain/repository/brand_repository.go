package repository

import "github.com/jhoicas/multistore-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Repository[entity.Brand]
}
