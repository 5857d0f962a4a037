package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DurationObserver records how long an operation took.
type DurationObserver interface {
	Observe(d time.Duration, val ...string)
}

// Histogram is a labeled latency histogram in seconds.
type Histogram struct {
	Name string
	Help string

	vec *prometheus.HistogramVec
}

// Observe records d under the label values.
func (h *Histogram) Observe(d time.Duration, val ...string) {
	h.vec.WithLabelValues(val...).Observe(d.Seconds())
}

// NewHistogramWithRegistry registers a latency histogram with reg.
// Buckets are tuned for in-memory work, from 10µs to about 80ms.
func NewHistogramWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) DurationObserver {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 14),
	}, labels)

	reg.MustRegister(vec)

	return &Histogram{
		Name: name,
		Help: help,
		vec:  vec,
	}
}
