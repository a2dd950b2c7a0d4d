package usecase

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// BrandUseCase casos de uso de marcas.
type BrandUseCase struct {
	svc Service[entity.Brand]
}

func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{svc: NewService[entity.Brand](repo)}
}

func (uc *BrandUseCase) Save(ctx context.Context, in dto.BrandRequest) (*dto.BrandResponse, error) {
	b, err := uc.svc.Save(ctx, &entity.Brand{ID: in.ID, Name: in.Name})
	if err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}, nil
}

func (uc *BrandUseCase) GetByID(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.svc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}, nil
}

func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.svc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return items, nil
}
