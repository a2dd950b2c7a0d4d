package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/application/usecase"
	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type keyed interface {
	PrimaryKey() int64
	AssignPrimaryKey(int64)
}

type memRepo[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	nextID int64
	err    error
}

func newMemRepo[T any]() *memRepo[T] {
	return &memRepo[T]{rows: make(map[int64]T)}
}

func (r *memRepo[T]) Save(_ context.Context, e *T) (*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := any(e).(keyed)
	if k.PrimaryKey() == 0 {
		r.nextID++
		k.AssignPrimaryKey(r.nextID)
	}
	r.rows[k.PrimaryKey()] = *e
	return e, nil
}

func (r *memRepo[T]) FindByID(_ context.Context, id int64) (*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("id %d: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (r *memRepo[T]) FindAll(_ context.Context) ([]*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*T, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, &e)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultService_DelegaSinTransformar(t *testing.T) {
	repo := newMemRepo[entity.Company]()
	svc := usecase.NewService[entity.Company](repo)
	ctx := context.Background()

	in := &entity.Company{Name: "Test Corp"}
	out, err := svc.Save(ctx, in)
	require.NoError(t, err)
	assert.Same(t, in, out, "el servicio no debe copiar ni transformar la entidad")

	found, err := svc.FindByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Corp", found.Name)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserUseCase_SaveYGet(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemRepo[entity.User]())
	ctx := context.Background()

	res, err := uc.Save(ctx, dto.UserRequest{Name: "John", LastName: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, dto.UserResponse{ID: 1, Name: "John", LastName: "Doe"}, *res)

	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	_, err = uc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUseCase_List(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemRepo[entity.Company]())
	ctx := context.Background()

	empty, err := uc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, name := range []string{"Test Corp", "Demo Corp"} {
		_, err := uc.Save(ctx, dto.CompanyRequest{Name: name})
		require.NoError(t, err)
	}
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBrandUseCase_ConIDReemplaza(t *testing.T) {
	uc := usecase.NewBrandUseCase(newMemRepo[entity.Brand]())
	ctx := context.Background()

	created, err := uc.Save(ctx, dto.BrandRequest{Name: "Acme"})
	require.NoError(t, err)

	updated, err := uc.Save(ctx, dto.BrandRequest{ID: created.ID, Name: "Acme Intl"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Intl", list[0].Name)
}

func TestUseCases_PropaganErrorDePersistencia(t *testing.T) {
	boom := fmt.Errorf("insert: %w", domain.ErrPersistence)
	ctx := context.Background()

	userRepo := newMemRepo[entity.User]()
	userRepo.err = boom
	_, err := usecase.NewUserUseCase(userRepo).Save(ctx, dto.UserRequest{Name: "John"})
	assert.True(t, errors.Is(err, domain.ErrPersistence))

	brandRepo := newMemRepo[entity.Brand]()
	brandRepo.err = boom
	_, err = usecase.NewBrandUseCase(brandRepo).List(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	companyRepo := newMemRepo[entity.Company]()
	companyRepo.err = boom
	_, err = usecase.NewCompanyUseCase(companyRepo).GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
