package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	ResourcesCreated  prometheus.Counter
	MovementsRecorded *prometheus.CounterVec
	MovementsRejected *prometheus.CounterVec
	ResourceBalance   *prometheus.GaugeVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ResourcesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrm_resources_created_total",
			Help: "Total number of master resources created",
		}),
		MovementsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrm_movements_recorded_total",
			Help: "Total number of ledger movements recorded",
		}, []string{"type"}),
		MovementsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrm_movements_rejected_total",
			Help: "Total number of ledger movements rejected",
		}, []string{"reason"}),
		ResourceBalance: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hrm_resource_balance",
			Help: "Current balance per resource slug",
		}, []string{"slug"}),
	}
}
