// Package metric wraps the Prometheus collectors used by the service.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric of the service.
const Namespace = "eventnav"

// IncrementalCounter counts events under label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a labeled counter registered under Namespace.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one under the label values.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter with reg. It panics when the
// name is already registered.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
