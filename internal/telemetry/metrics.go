package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/near-pool-cli/internal/adapters/near/rpc"
	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

const namespace = "np"

var (
	_ rpc.Observer                    = (*Metrics)(nil)
	_ application.TransactionObserver = (*Metrics)(nil)
)

// Metrics holds the prometheus collectors for RPC traffic and submissions.
type Metrics struct {
	registry *prometheus.Registry

	RPCQueries   *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Transactions *prometheus.CounterVec
	Connected    prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.RPCQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_queries_total",
			Help:      "Total number of NEAR RPC calls",
		},
		[]string{"method", "status"},
	)

	m.RPCDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_query_duration_seconds",
			Help:      "Duration of NEAR RPC calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.Transactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Total number of pool transactions by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	m.Connected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wallet_connected",
			Help:      "1 while a wallet account is connected",
		},
	)

	m.registry.MustRegister(
		m.RPCQueries,
		m.RPCDuration,
		m.Transactions,
		m.Connected,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) ObserveQuery(method string, elapsed time.Duration, err error) {
	m.RPCQueries.WithLabelValues(method, outcomeLabel(err)).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveTransaction(kind domain.IntentKind, err error) {
	status := outcomeLabel(err)
	if domain.IsValidationError(err) {
		status = "rejected"
	}
	m.Transactions.WithLabelValues(string(kind), status).Inc()
}

// SetConnected tracks the session; it is driven by the account store.
func (m *Metrics) SetConnected(connected bool) {
	if connected {
		m.Connected.Set(1)
		return
	}
	m.Connected.Set(0)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
