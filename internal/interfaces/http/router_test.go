package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/application/usecase"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
	"github.com/jhoicas/multistore-api/internal/infrastructure/metrics"
	"github.com/jhoicas/multistore-api/internal/infrastructure/persistence"
	apphttp "github.com/jhoicas/multistore-api/internal/interfaces/http"
	"github.com/jhoicas/multistore-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestRegistry levanta los tres stores sobre archivos sqlite independientes.
func newTestRegistry(t *testing.T) *datastore.Registry {
	t.Helper()
	dir := t.TempDir()
	cfg := func(file string) config.DatasourceConfig {
		return config.DatasourceConfig{
			Driver:       "org.sqlite.JDBC",
			URL:          filepath.Join(dir, file),
			DDLAuto:      "create-drop",
			MaxOpenConns: 1,
			QueryTimeout: 2 * time.Second,
		}
	}
	reg := datastore.NewRegistry(nil)
	t.Cleanup(func() { _ = reg.Close(context.Background()) })

	require.NoError(t, reg.RegisterAll(context.Background(),
		map[string]config.DatasourceConfig{
			entity.GroupUser:    cfg("user.db"),
			entity.GroupCompany: cfg("company.db"),
			entity.GroupBrand:   cfg("brand.db"),
		},
		map[string]datastore.Schema{
			entity.GroupUser:    {Models: []any{&entity.User{}}},
			entity.GroupCompany: {Models: []any{&entity.Company{}}},
			entity.GroupBrand:   {Models: []any{&entity.Brand{}}, Sequences: []string{entity.BrandSequence}},
		}))
	return reg
}

func buildDeps(t *testing.T, reg *datastore.Registry) apphttp.RouterDeps {
	t.Helper()
	users, err := persistence.NewUserRepository(reg)
	require.NoError(t, err)
	companies, err := persistence.NewCompanyRepository(reg)
	require.NoError(t, err)
	brands, err := persistence.NewBrandRepository(reg)
	require.NoError(t, err)

	return apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(users),
		CompanyUC: usecase.NewCompanyUseCase(companies),
		BrandUC:   usecase.NewBrandUseCase(brands),
		Stores:    reg,
	}
}

func buildApp(deps apphttp.RouterDeps) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, deps)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// POST
// ──────────────────────────────────────────────────────────────────────────────

func TestPostUser_Devuelve200ConID(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	resp, body := do(t, app, http.MethodPost, "/api/v1/users", `{"name":"John","lastName":"Doe"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"name":"John","lastName":"Doe"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "cada respuesta lleva X-Request-ID")
}

func TestPostBrand_IDsDeSecuencia(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	_, first := do(t, app, http.MethodPost, "/api/v3/brands", `{"name":"Acme"}`)
	resp, second := do(t, app, http.MethodPost, "/api/v3/brands", `{"name":"Globex"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"name":"Acme"}`, string(first))
	assert.JSONEq(t, `{"id":2,"name":"Globex"}`, string(second))
}

func TestPost_CuerpoInvalido(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	resp, body := do(t, app, http.MethodPost, "/api/v2/companies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "INVALID_BODY", e.Code)
}

func TestPost_StoreCaidoEs500(t *testing.T) {
	reg := newTestRegistry(t)
	app := buildApp(buildDeps(t, reg))
	require.NoError(t, reg.Close(context.Background()))

	resp, body := do(t, app, http.MethodPost, "/api/v2/companies", `{"name":"Test Corp"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "PERSISTENCE")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCompanies_ListaYPorID(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	for _, name := range []string{"Test Corp", "Demo Corp"} {
		resp, _ := do(t, app, http.MethodPost, "/api/v2/companies", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := do(t, app, http.MethodGet, "/api/v2/companies", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.CompanyResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 2)

	resp, body = do(t, app, http.MethodGet, "/api/v2/companies/2", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":2,"name":"Demo Corp"}`, string(body))
}

func TestGetUser_NoEncontradoEIDInvalido(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	resp, body := do(t, app, http.MethodGet, "/api/v1/users/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_FOUND")

	resp, body = do(t, app, http.MethodGet, "/api/v1/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestGetBrands_VacioEsArreglo(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	resp, body := do(t, app, http.MethodGet, "/api/v3/brands", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Health / métricas
// ──────────────────────────────────────────────────────────────────────────────

type fakePinger map[string]error

func (f fakePinger) Ping(context.Context) map[string]error { return f }

func TestHealth_TodosLosStores(t *testing.T) {
	app := buildApp(buildDeps(t, newTestRegistry(t)))

	resp, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var h dto.HealthResponse
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, map[string]string{"user": "ok", "company": "ok", "brand": "ok"}, h.Stores)
}

func TestHealth_StoreCaidoEs503(t *testing.T) {
	deps := buildDeps(t, newTestRegistry(t))
	deps.Stores = fakePinger{"user": nil, "brand": errors.New("ORA-12541: TNS:no listener")}
	app := buildApp(deps)

	resp, body := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "ORA-12541")
}

func TestMetrics_ExponeOperacionesDeStore(t *testing.T) {
	promReg := prometheus.NewRegistry()
	handler, err := metrics.Register(metrics.Config{Registry: promReg, Gatherer: promReg})
	require.NoError(t, err)

	deps := buildDeps(t, newTestRegistry(t))
	deps.Metrics = handler
	app := buildApp(deps)

	_, _ = do(t, app, http.MethodPost, "/api/v1/users", `{"name":"John","lastName":"Doe"}`)

	resp, body := do(t, app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `store_operations_total{operation="save",result="ok",store="user"}`)
}
