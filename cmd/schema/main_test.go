package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{Datasources: map[string]config.DatasourceConfig{}}
	for _, g := range config.Groups {
		cfg.Datasources[g] = config.DatasourceConfig{Driver: "sqlite", URL: filepath.Join(dir, g+".db"), DDLAuto: "none"}
	}
	return cfg
}

func TestApplySchema_UpdateLuegoValidate(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	err := applySchema(ctx, logger.Nop(), cfg, nil, "validate")
	require.Error(t, err, "sin tablas validate debe fallar")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	require.NoError(t, applySchema(ctx, logger.Nop(), cfg, nil, "update"))
	assert.NoError(t, applySchema(ctx, logger.Nop(), cfg, nil, "validate"))
}

func TestApplySchema_SoloGruposIndicados(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	require.NoError(t, applySchema(ctx, logger.Nop(), cfg, []string{"brand"}, "create"))
	assert.NoError(t, applySchema(ctx, logger.Nop(), cfg, []string{"brand"}, "validate"))
	assert.Error(t, applySchema(ctx, logger.Nop(), cfg, []string{"user"}, "validate"))
}

func TestApplySchema_Rechazos(t *testing.T) {
	cfg := sqliteConfig(t)
	ctx := context.Background()

	assert.Error(t, applySchema(ctx, logger.Nop(), cfg, []string{"product"}, "update"))
	assert.Error(t, applySchema(ctx, logger.Nop(), cfg, nil, "create-drop"))
	assert.ErrorIs(t, applySchema(ctx, logger.Nop(), cfg, nil, "recreate"), domain.ErrConfiguration)
	assert.NoError(t, applySchema(ctx, logger.Nop(), cfg, nil, ""), "ddlAuto none no hace nada")
}

func TestTokenCmd_EmiteToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--subject", "ci", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	err := cmd.Execute()
	require.Error(t, err, "un --env-file explícito inexistente debe fallar")

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--subject", "ci"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out.String()), "."), "la salida debe ser un JWT")
}
