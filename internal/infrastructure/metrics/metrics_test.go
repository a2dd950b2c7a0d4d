package metrics

import (
	"database/sql"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStoreOperation_IncrementaContador(t *testing.T) {
	c := storeOperationsTotal.WithLabelValues("company", "save", ResultOK)
	before := testutil.ToFloat64(c)

	ObserveStoreOperation("company", "save", ResultOK, 3*time.Millisecond)
	ObserveStoreOperation("company", "save", ResultOK, 5*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestPoolCollector_GaugesPorStore(t *testing.T) {
	collector := newPoolCollector(func() map[string]sql.DBStats {
		return map[string]sql.DBStats{
			"user":  {OpenConnections: 3, InUse: 1, Idle: 2},
			"brand": {OpenConnections: 1, Idle: 1},
		}
	})

	// cuatro métricas por store
	assert.Equal(t, 8, testutil.CollectAndCount(collector))

	expected := `
# HELP store_pool_open_connections Conexiones abiertas por store
# TYPE store_pool_open_connections gauge
store_pool_open_connections{store="brand"} 1
store_pool_open_connections{store="user"} 3
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "store_pool_open_connections"))
}

func TestRegister_ExponeMetricas(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler, err := Register(Config{
		Registry:  reg,
		Gatherer:  reg,
		PoolStats: func() map[string]sql.DBStats { return map[string]sql.DBStats{"user": {}} },
	})
	require.NoError(t, err)

	ObserveStoreOperation("user", "find_by_id", ResultNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "store_pool_open_connections")
	assert.Contains(t, string(body), `store_operations_total{operation="find_by_id",result="not_found",store="user"}`)
}
