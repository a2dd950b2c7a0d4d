package usecase

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// Service contrato uniforme {save, findAll, findById} que comparten los tres grupos.
type Service[T any] interface {
	Save(ctx context.Context, e *T) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
}

// DefaultService delega sin transformación en el repositorio del grupo.
// No valida ni detecta duplicados.
type DefaultService[T any] struct {
	repo repository.Repository[T]
}

// NewService construye el servicio sobre repo.
func NewService[T any](repo repository.Repository[T]) *DefaultService[T] {
	return &DefaultService[T]{repo: repo}
}

func (s *DefaultService[T]) Save(ctx context.Context, e *T) (*T, error) {
	return s.repo.Save(ctx, e)
}

func (s *DefaultService[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *DefaultService[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.FindByID(ctx, id)
}
