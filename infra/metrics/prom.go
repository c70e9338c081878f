// Package metrics implements the core metrics recorder on Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/heron-ml/heron/core/metrics"
	"github.com/heron-ml/heron/core/object"
)

// PromRecorder counts factory create attempts in Prometheus metrics.
type PromRecorder struct {
	creates *prometheus.CounterVec
}

// NewPromRecorder registers the factory metrics on the default Prometheus
// registerer.
func NewPromRecorder(cfg coremetrics.Config) (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorderWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cfg.SetDefaults()
	creates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "factory_create_total",
		Help:      "Total number of factory create attempts",
	}, []string{"class", "type", "outcome"})

	if err := reg.Register(creates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			creates = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromRecorder{creates: creates}, nil
}

// RecordCreate increments the counter for one create attempt.
func (r *PromRecorder) RecordCreate(class string, pt object.PrimitiveType, outcome coremetrics.Outcome) {
	r.creates.WithLabelValues(class, pt.String(), string(outcome)).Inc()
}
