package repository

import "github.com/jhoicas/multistore-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Repository[entity.User]
}
