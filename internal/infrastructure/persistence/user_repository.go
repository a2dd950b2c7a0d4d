package persistence

import (
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo persistencia de usuarios sobre el store "user".
type UserRepo struct {
	*Repo[entity.User, *entity.User]
}

// NewUserRepository ata el repositorio al store del grupo user.
func NewUserRepository(reg *datastore.Registry) (*UserRepo, error) {
	store, err := reg.Session(entity.GroupUser)
	if err != nil {
		return nil, err
	}
	return &UserRepo{Repo: NewRepo[entity.User, *entity.User](store, "")}, nil
}
