// Package metrics expone contadores Prometheus de los stores y de la capa HTTP.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una operación sobre un store.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	registerOnce sync.Once
	registerErr  error

	storeOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Operaciones de repositorio por store, operación y resultado",
	}, []string{"store", "operation", "result"})

	storeOperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Latencia de las operaciones de repositorio",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"store", "operation"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Número total de requests procesadas",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Config dependencias para exponer /metrics.
type Config struct {
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
	// PoolStats, si no es nil, alimenta los gauges de conexiones por store.
	PoolStats func() map[string]sql.DBStats
}

// Register registra los collectors y devuelve el handler de /metrics.
func Register(cfg Config) (http.Handler, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	registerOnce.Do(func() {
		for _, c := range []prometheus.Collector{
			storeOperationsTotal, storeOperationDuration,
			httpRequestsTotal, httpRequestDuration,
		} {
			if err := registerCollector(registry, c); err != nil {
				registerErr = err
				return
			}
		}
	})
	if registerErr != nil {
		return nil, registerErr
	}

	if cfg.PoolStats != nil {
		if err := registerCollector(registry, newPoolCollector(cfg.PoolStats)); err != nil {
			return nil, err
		}
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}), nil
}

// ObserveStoreOperation registra una operación de repositorio.
func ObserveStoreOperation(store, operation, result string, elapsed time.Duration) {
	storeOperationsTotal.WithLabelValues(store, operation, result).Inc()
	storeOperationDuration.WithLabelValues(store, operation).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest registra un request ya respondido. route es el patrón, no la ruta cruda.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// registerCollector registra el collector ignorando duplicados.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if err := reg.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// poolCollector expone gauges del pool database/sql de cada store.
type poolCollector struct {
	stats func() map[string]sql.DBStats

	openDesc  *prometheus.Desc
	inUseDesc *prometheus.Desc
	idleDesc  *prometheus.Desc
	waitDesc  *prometheus.Desc
}

func newPoolCollector(stats func() map[string]sql.DBStats) *poolCollector {
	return &poolCollector{
		stats:     stats,
		openDesc:  prometheus.NewDesc("store_pool_open_connections", "Conexiones abiertas por store", []string{"store"}, nil),
		inUseDesc: prometheus.NewDesc("store_pool_in_use_connections", "Conexiones en uso por store", []string{"store"}, nil),
		idleDesc:  prometheus.NewDesc("store_pool_idle_connections", "Conexiones inactivas por store", []string{"store"}, nil),
		waitDesc:  prometheus.NewDesc("store_pool_wait_count_total", "Esperas por una conexión libre", []string{"store"}, nil),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.openDesc
	ch <- c.inUseDesc
	ch <- c.idleDesc
	ch <- c.waitDesc
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	for store, s := range c.stats() {
		ch <- prometheus.MustNewConstMetric(c.openDesc, prometheus.GaugeValue, float64(s.OpenConnections), store)
		ch <- prometheus.MustNewConstMetric(c.inUseDesc, prometheus.GaugeValue, float64(s.InUse), store)
		ch <- prometheus.MustNewConstMetric(c.idleDesc, prometheus.GaugeValue, float64(s.Idle), store)
		ch <- prometheus.MustNewConstMetric(c.waitDesc, prometheus.CounterValue, float64(s.WaitCount), store)
	}
}
