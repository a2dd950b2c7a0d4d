package repository

import "context"

// Repository es el puerto genérico de persistencia que comparten los tres grupos de entidades.
// La implementación vive en infrastructure y está atada al store del grupo.
type Repository[T any] interface {
	// Save inserta si el ID es cero (lo asigna el store) o actualiza por ID en caso contrario.
	// No verifica existencia: una actualización sobre un ID inexistente no falla.
	Save(ctx context.Context, e *T) (*T, error)
	// FindByID devuelve domain.ErrNotFound si no existe la fila.
	FindByID(ctx context.Context, id int64) (*T, error)
	// FindAll devuelve todas las filas, sin orden garantizado.
	FindAll(ctx context.Context) ([]*T, error)
}
