// Package metrics expone contadores Prometheus del ledger.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
)

const namespace = "materials_ledger"

var _ ledger.Metrics = (*LedgerMetrics)(nil)

// LedgerMetrics implementa ledger.Metrics y mide las operaciones GraphQL.
type LedgerMetrics struct {
	// invoiceCreations cuenta intentos de createMaterialsInvoice.
	// Labels: outcome (created, rejected, failed)
	invoiceCreations *prometheus.CounterVec

	// debtsRecorded cuenta deudas persistidas.
	// Labels: party (client, supplier)
	debtsRecorded *prometheus.CounterVec

	// graphqlDuration latencia por operación GraphQL.
	// Labels: operation (query, mutation), status (ok, error)
	graphqlDuration *prometheus.HistogramVec
}

// NewLedgerMetrics registra las métricas en reg (prometheus.DefaultRegisterer en producción).
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	f := promauto.With(reg)
	return &LedgerMetrics{
		invoiceCreations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "creations_total",
			Help:      "Intentos de creación de facturas de materiales por resultado",
		}, []string{"outcome"}),
		debtsRecorded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "debts",
			Name:      "recorded_total",
			Help:      "Deudas registradas por parte deudora",
		}, []string{"party"}),
		graphqlDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones GraphQL en segundos",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "status"}),
	}
}

func (m *LedgerMetrics) InvoiceCreation(outcome string) {
	m.invoiceCreations.WithLabelValues(outcome).Inc()
}

func (m *LedgerMetrics) DebtRecorded(party string) {
	m.debtsRecorded.WithLabelValues(party).Inc()
}

// ObserveGraphQL registra la duración de una petición GraphQL.
func (m *LedgerMetrics) ObserveGraphQL(operation string, failed bool, d time.Duration) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.graphqlDuration.WithLabelValues(operation, status).Observe(d.Seconds())
}
