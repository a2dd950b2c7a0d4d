package usecase

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios: traduce DTOs y delega en el servicio.
type UserUseCase struct {
	svc Service[entity.User]
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{svc: NewService[entity.User](repo)}
}

// Save crea (sin id) o reemplaza (con id) un usuario.
func (uc *UserUseCase) Save(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	u, err := uc.svc.Save(ctx, &entity.User{ID: in.ID, Name: in.Name, LastName: in.LastName})
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// GetByID devuelve domain.ErrNotFound si el usuario no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.svc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// List todos los usuarios del store.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.svc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Name: u.Name, LastName: u.LastName}
}
