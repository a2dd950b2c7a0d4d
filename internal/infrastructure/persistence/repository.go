// Package persistence implementa los puertos de repositorio sobre GORM, cada uno
// atado al store exclusivo de su grupo.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
	"github.com/jhoicas/multistore-api/internal/infrastructure/metrics"
)

// Model restringe T a entidades con clave primaria entera manipulable vía *T.
type Model[T any] interface {
	*T
	PrimaryKey() int64
	AssignPrimaryKey(id int64)
}

// Repo repositorio genérico save/findById/findAll sobre un único store.
// Si sequence no está vacío, los IDs se toman de la tabla de secuencias en vez de la identity.
type Repo[T any, P Model[T]] struct {
	store    *datastore.Store
	sequence string
}

// NewRepo construye el repositorio genérico sobre store.
func NewRepo[T any, P Model[T]](store *datastore.Store, sequence string) *Repo[T, P] {
	return &Repo[T, P]{store: store, sequence: sequence}
}

// Save inserta si el ID es cero y actualiza por ID en caso contrario, en una sola transacción.
func (r *Repo[T, P]) Save(ctx context.Context, e *T) (out *T, err error) {
	defer r.observe("save", time.Now(), &err)
	if e == nil {
		return nil, fmt.Errorf("%w: entidad nula", domain.ErrInvalidInput)
	}

	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	p := P(e)
	assigned := false
	err = r.store.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if p.PrimaryKey() != 0 {
			// Sin verificación de existencia: un ID inexistente no actualiza nada y no falla.
			return tx.Model(e).Select("*").Updates(e).Error
		}
		if r.sequence != "" {
			id, err := datastore.NextID(tx, r.sequence)
			if err != nil {
				return err
			}
			p.AssignPrimaryKey(id)
			assigned = true
		}
		return tx.Create(e).Error
	})
	if err != nil {
		if assigned {
			// rollback: el ID reservado no quedó persistido
			p.AssignPrimaryKey(0)
		}
		return nil, r.wrap("save", err)
	}
	return e, nil
}

// FindByID busca por clave primaria; domain.ErrNotFound si no existe.
func (r *Repo[T, P]) FindByID(ctx context.Context, id int64) (out *T, err error) {
	defer r.observe("find_by_id", time.Now(), &err)

	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	var e T
	err = r.store.DB(ctx).Where(map[string]any{"id": id}).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %d: %w", r.store.Group(), id, domain.ErrNotFound)
		}
		return nil, r.wrap("find by id", err)
	}
	return &e, nil
}

// FindAll devuelve todas las filas del store. Sin orden garantizado.
func (r *Repo[T, P]) FindAll(ctx context.Context) (out []*T, err error) {
	defer r.observe("find_all", time.Now(), &err)

	ctx, cancel := r.store.WithTimeout(ctx)
	defer cancel()

	list := make([]*T, 0)
	if err = r.store.DB(ctx).Find(&list).Error; err != nil {
		return nil, r.wrap("find all", err)
	}
	return list, nil
}

func (r *Repo[T, P]) wrap(op string, err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%s %s: %w: violación de constraint: %w", op, r.store.Group(), domain.ErrPersistence, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, r.store.Group(), domain.ErrPersistence, err)
}

func (r *Repo[T, P]) observe(op string, start time.Time, errp *error) {
	result := metrics.ResultOK
	switch {
	case *errp == nil:
	case errors.Is(*errp, domain.ErrNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.ObserveStoreOperation(r.store.Group(), op, result, time.Since(start))
}
