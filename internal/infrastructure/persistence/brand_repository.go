package persistence

import (
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo persistencia de marcas sobre el store "brand". Los IDs salen de la
// secuencia entity.BrandSequence, no de una columna identity.
type BrandRepo struct {
	*Repo[entity.Brand, *entity.Brand]
}

func NewBrandRepository(reg *datastore.Registry) (*BrandRepo, error) {
	store, err := reg.Session(entity.GroupBrand)
	if err != nil {
		return nil, err
	}
	return &BrandRepo{Repo: NewRepo[entity.Brand, *entity.Brand](store, entity.BrandSequence)}, nil
}
