// Package datastore resuelve qué store físico atiende a cada grupo de entidades.
//
// Cada grupo (user, company, brand) recibe un pool exclusivo, su política de esquema
// y su dialecto. No hay transacciones entre stores: cada operación toca uno solo.
package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

const (
	defaultQueryTimeout   = 5 * time.Second
	defaultConnectTimeout = 10 * time.Second
)

// Store conexión viva y exclusiva a un store físico, atada a un grupo.
type Store struct {
	group        string
	dialect      Dialect
	policy       DDLAuto
	schema       Schema
	db           *gorm.DB
	queryTimeout time.Duration
	release      func()
}

// Group grupo de entidades al que sirve el store.
func (s *Store) Group() string { return s.group }

// Dialect motor del store.
func (s *Store) Dialect() Dialect { return s.dialect }

// Policy política ddlAuto aplicada en el arranque.
func (s *Store) Policy() DDLAuto { return s.policy }

// DB devuelve una sesión GORM ligada a ctx.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// WithTimeout acota la llamada al queryTimeout del store (adquisición de conexión + query).
func (s *Store) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Ping verifica la conectividad del store.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (s *Store) close(ctx context.Context) error {
	var err error
	if s.policy == DDLCreateDrop {
		err = multierr.Append(err, Teardown(ctx, s.db, s.policy, s.schema))
	}
	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		err = multierr.Append(err, sqlDB.Close())
	} else {
		err = multierr.Append(err, dbErr)
	}
	if s.release != nil {
		s.release()
	}
	return err
}

// Registry tabla grupo → store. Seguro para uso concurrente.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
	log    *logger.Logger
}

// NewRegistry construye un registry vacío.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		stores: make(map[string]*Store),
		log:    log.Component("datastore"),
	}
}

// Register abre el store del grupo, aplica su política de esquema y lo deja disponible
// para Session. Falla con domain.ErrConfiguration si faltan parámetros o el grupo ya existe.
func (r *Registry) Register(ctx context.Context, group string, cfg config.DatasourceConfig, schema Schema) (*Store, error) {
	if group == "" {
		return nil, fmt.Errorf("%w: grupo vacío", domain.ErrConfiguration)
	}
	dialect, policy, err := validateSettings(group, cfg)
	if err != nil {
		return nil, err
	}
	if err := r.reserve(group); err != nil {
		return nil, err
	}

	store, err := r.open(ctx, group, dialect, policy, cfg, schema)
	if err != nil {
		r.unreserve(group)
		return nil, err
	}

	r.mu.Lock()
	r.stores[group] = store
	r.mu.Unlock()

	r.log.Info().
		Str("store", group).
		Str("dialect", string(dialect)).
		Str("ddl_auto", string(policy)).
		Msg("store registrado")
	return store, nil
}

// RegisterAll registra en paralelo todos los grupos de schemas. Si alguno falla,
// cierra los que sí se abrieron y devuelve el primer error.
func (r *Registry) RegisterAll(ctx context.Context, cfgs map[string]config.DatasourceConfig, schemas map[string]Schema) error {
	for group := range schemas {
		if _, ok := cfgs[group]; !ok {
			return fmt.Errorf("store %s: %w: sin configuración", group, domain.ErrConfiguration)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for group, schema := range schemas {
		cfg := cfgs[group]
		g.Go(func() error {
			_, err := r.Register(gctx, group, cfg, schema)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if closeErr := r.Close(context.Background()); closeErr != nil {
			r.log.Error().Err(closeErr).Msg("cerrar stores tras fallo de arranque")
		}
		return err
	}
	return nil
}

// Session devuelve el store exclusivo del grupo.
func (r *Registry) Session(group string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stores[group]
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: store %q no registrado", domain.ErrConfiguration, group)
	}
	return s, nil
}

// Groups grupos registrados, ordenados.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	groups := make([]string, 0, len(r.stores))
	for g, s := range r.stores {
		if s != nil {
			groups = append(groups, g)
		}
	}
	sort.Strings(groups)
	return groups
}

// Ping verifica todos los stores en paralelo. El mapa contiene un error (o nil) por grupo.
func (r *Registry) Ping(ctx context.Context) map[string]error {
	groups := r.Groups()
	results := make([]error, len(groups))

	var g errgroup.Group
	for i, group := range groups {
		g.Go(func() error {
			s, err := r.Session(group)
			if err == nil {
				err = s.Ping(ctx)
			}
			results[i] = err
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]error, len(groups))
	for i, group := range groups {
		out[group] = results[i]
	}
	return out
}

// Stats estadísticas del pool database/sql de cada store registrado.
func (r *Registry) Stats() map[string]sql.DBStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]sql.DBStats, len(r.stores))
	for group, s := range r.stores {
		if s == nil {
			continue
		}
		if sqlDB, err := s.db.DB(); err == nil {
			out[group] = sqlDB.Stats()
		}
	}
	return out
}

// Close cierra todos los stores (eliminando el esquema de los create-drop) y agrega los errores.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	stores := r.stores
	r.stores = make(map[string]*Store)
	r.mu.Unlock()

	var err error
	for group, s := range stores {
		if s == nil {
			continue
		}
		if closeErr := s.close(ctx); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("store %s: %w", group, closeErr))
			continue
		}
		r.log.Info().Str("store", group).Msg("store cerrado")
	}
	return err
}

// reserve marca el grupo como en apertura para rechazar registros duplicados concurrentes.
func (r *Registry) reserve(group string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.stores[group]; exists {
		return fmt.Errorf("%w: store %q ya registrado", domain.ErrConfiguration, group)
	}
	r.stores[group] = nil
	return nil
}

func (r *Registry) unreserve(group string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[group]; ok && s == nil {
		delete(r.stores, group)
	}
}

func (r *Registry) open(ctx context.Context, group string, dialect Dialect, policy DDLAuto, cfg config.DatasourceConfig, schema Schema) (*Store, error) {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	queryTimeout := cfg.QueryTimeout
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	dialector, release, err := openDialector(ctx, dialect, cfg)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", group, err)
	}
	fail := func(err error) (*Store, error) {
		if release != nil {
			release()
		}
		return nil, fmt.Errorf("store %s: %w", group, err)
	}

	storeLog := r.log.Zerolog().With().Str("store", group).Logger()
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               newGormLogger(storeLog),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return fail(fmt.Errorf("%w: abrir: %w", domain.ErrPersistence, err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fail(fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	closeDB := func(err error) (*Store, error) {
		_ = sqlDB.Close()
		return fail(err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	err = sqlDB.PingContext(pingCtx)
	cancel()
	if err != nil {
		return closeDB(fmt.Errorf("%w: ping: %w", domain.ErrPersistence, err))
	}

	if err := Reconcile(ctx, db, policy, schema); err != nil {
		return closeDB(err)
	}
	if policy.Mutates() {
		storeLog.Info().Str("ddl_auto", string(policy)).Msg("esquema reconciliado")
	}

	return &Store{
		group:        group,
		dialect:      dialect,
		policy:       policy,
		schema:       schema,
		db:           db,
		queryTimeout: queryTimeout,
		release:      release,
	}, nil
}

// IsConfiguration informa si err es un error de configuración (fatal en el arranque).
func IsConfiguration(err error) bool {
	return errors.Is(err, domain.ErrConfiguration)
}
