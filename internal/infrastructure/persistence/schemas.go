package persistence

import (
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
)

// Schemas modelos que vive en cada store. Brand además necesita su fila de secuencia.
func Schemas() map[string]datastore.Schema {
	return map[string]datastore.Schema{
		entity.GroupUser:    {Models: []any{&entity.User{}}},
		entity.GroupCompany: {Models: []any{&entity.Company{}}},
		entity.GroupBrand:   {Models: []any{&entity.Brand{}}, Sequences: []string{entity.BrandSequence}},
	}
}
