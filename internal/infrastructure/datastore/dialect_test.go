package datastore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
)

func TestResolveDialect_AliasesDeDriver(t *testing.T) {
	cases := map[string]datastore.Dialect{
		"mysql":                    datastore.MySQL,
		"com.mysql.cj.jdbc.Driver": datastore.MySQL,
		"postgres":                 datastore.Postgres,
		"org.postgresql.Driver":    datastore.Postgres,
		"pgx":                      datastore.Postgres,
		"oracle.jdbc.OracleDriver": datastore.Oracle,
		"oracle":                   datastore.Oracle,
		"sqlite3":                  datastore.SQLite,
		" SQLite ":                 datastore.SQLite,
	}
	for driver, want := range cases {
		got, err := datastore.ResolveDialect(driver, "")
		require.NoError(t, err, driver)
		assert.Equal(t, want, got, driver)
	}
}

func TestResolveDialect_DialectoDeclarado(t *testing.T) {
	got, err := datastore.ResolveDialect("com.mysql.cj.jdbc.Driver", "org.hibernate.dialect.MySQL8Dialect")
	require.NoError(t, err)
	assert.Equal(t, datastore.MySQL, got)

	got, err = datastore.ResolveDialect("org.postgresql.Driver", "org.hibernate.dialect.PostgreSQLDialect")
	require.NoError(t, err)
	assert.Equal(t, datastore.Postgres, got)

	_, err = datastore.ResolveDialect("postgres", "org.hibernate.dialect.OracleDialect")
	assert.ErrorIs(t, err, domain.ErrConfiguration, "dialecto y driver deben coincidir")

	_, err = datastore.ResolveDialect("postgres", "h2")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestResolveDialect_DriverInvalido(t *testing.T) {
	_, err := datastore.ResolveDialect("", "")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = datastore.ResolveDialect("sqlserver", "")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestParseDDLAuto(t *testing.T) {
	for _, s := range []string{"validate", "update", "create", "create-drop", "none", " UPDATE "} {
		_, err := datastore.ParseDDLAuto(s)
		assert.NoError(t, err, s)
	}

	p, err := datastore.ParseDDLAuto("")
	require.NoError(t, err)
	assert.Equal(t, datastore.DDLNone, p, "vacío equivale a none")

	_, err = datastore.ParseDDLAuto("drop")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestDDLAuto_Mutates(t *testing.T) {
	assert.False(t, datastore.DDLNone.Mutates())
	assert.False(t, datastore.DDLValidate.Mutates())
	assert.True(t, datastore.DDLUpdate.Mutates())
	assert.True(t, datastore.DDLCreate.Mutates())
	assert.True(t, datastore.DDLCreateDrop.Mutates())
}

func TestStore_WithTimeoutAcotaLaLlamada(t *testing.T) {
	reg := newRegistry(t)
	cfg := sqliteConfig(t, "timeout.db", "none")
	cfg.QueryTimeout = 50 * time.Millisecond

	store, err := reg.Register(t.Context(), "user", cfg, userSchema())
	require.NoError(t, err)

	ctx, cancel := store.WithTimeout(t.Context())
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok, "toda llamada al store debe tener deadline")
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}
