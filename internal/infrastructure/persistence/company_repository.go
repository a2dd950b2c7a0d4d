package persistence

import (
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo persistencia de empresas sobre el store "company".
type CompanyRepo struct {
	*Repo[entity.Company, *entity.Company]
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(reg *datastore.Registry) (*CompanyRepo, error) {
	store, err := reg.Session(entity.GroupCompany)
	if err != nil {
		return nil, err
	}
	return &CompanyRepo{Repo: NewRepo[entity.Company, *entity.Company](store, "")}, nil
}
