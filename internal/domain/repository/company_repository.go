package repository

import "github.com/jhoicas/multistore-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Repository[entity.Company]
}
