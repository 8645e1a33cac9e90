package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the cash ledger.
type Metrics struct {
	// Ledger rows written, by type and resulting status
	Movements *prometheus.CounterVec

	// Rejected operations by error code
	Rejections *prometheus.CounterVec

	// Wall time of each ledger operation
	OperationLatency *prometheus.HistogramVec

	// Amount moved through approved rows, by type
	ApprovedAmount *prometheus.CounterVec
}

// New registers the ledger collectors with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Movements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cash_ledger_movements_total",
			Help: "Total cash ledger rows written by type and status",
		}, []string{"type", "status"}),

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cash_ledger_rejections_total",
			Help: "Total rejected ledger operations by operation and error code",
		}, []string{"operation", "code"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cash_ledger_operation_duration_seconds",
			Help:    "Duration of ledger operations including the database transaction",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		ApprovedAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cash_ledger_approved_amount_total",
			Help: "Sum of approved ledger amounts by type",
		}, []string{"type"}),
	}
}

// IncrementMovement records a persisted ledger row.
func (m *Metrics) IncrementMovement(txType, status string) {
	if m != nil {
		m.Movements.WithLabelValues(txType, status).Inc()
	}
}

// IncrementRejection records an operation that ended in an error.
func (m *Metrics) IncrementRejection(operation, code string) {
	if m != nil {
		m.Rejections.WithLabelValues(operation, code).Inc()
	}
}

// ObserveOperation records how long an operation took.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// AddApprovedAmount adds an approved amount. Float is acceptable here; the ledger itself never uses it.
func (m *Metrics) AddApprovedAmount(txType string, amount float64) {
	if m != nil {
		m.ApprovedAmount.WithLabelValues(txType).Add(amount)
	}
}
