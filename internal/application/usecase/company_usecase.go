package usecase

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas.
type CompanyUseCase struct {
	svc Service[entity.Company]
}

func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{svc: NewService[entity.Company](repo)}
}

// Save crea o reemplaza una empresa.
func (uc *CompanyUseCase) Save(ctx context.Context, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.svc.Save(ctx, &entity.Company{ID: in.ID, Name: in.Name})
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name}, nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	c, err := uc.svc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name}, nil
}

// List lista empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.svc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}
