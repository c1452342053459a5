// Package metrics exports store activity to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eslsoft/lexiroad/internal/store"
)

const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
)

var _ store.Observer = (*StoreObserver)(nil)

// StoreObserver counts store operations by outcome and tracks the committed version.
type StoreObserver struct {
	operations *prometheus.CounterVec
	version    prometheus.Gauge
}

// NewStoreObserver registers the store collectors on reg.
func NewStoreObserver(reg prometheus.Registerer) *StoreObserver {
	factory := promauto.With(reg)
	return &StoreObserver{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexiroad_store_operations_total",
			Help: "Store operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		version: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lexiroad_store_version",
			Help: "Version of the last committed store state.",
		}),
	}
}

func (o *StoreObserver) Observe(op string, version uint64, err error) {
	outcome := OutcomeCommitted
	if err != nil {
		outcome = OutcomeRejected
	}
	o.operations.WithLabelValues(op, outcome).Inc()
	o.version.Set(float64(version))
}
