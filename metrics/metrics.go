// Package metrics counts failed log calls with Prometheus.
//
// The logger drops failures silently by default. Wire an ErrorCounter into
// logger.Config.OnError to make them visible:
//
//	failures := metrics.NewErrorCounter(prometheus.DefaultRegisterer)
//	logger.Init(logger.Config{Target: logger.TargetFile, OnError: failures.Observe})
package metrics

import (
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mordilloSan/go-nolog/logger"
)

// ErrorCounter counts log failures by kind and operation.
type ErrorCounter struct {
	failures *prometheus.CounterVec
}

// NewErrorCounter registers nolog_write_failures_total with reg.
func NewErrorCounter(reg prometheus.Registerer) *ErrorCounter {
	return &ErrorCounter{
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "nolog_write_failures_total",
				Help: "Total number of log calls that failed to format or write",
			},
			[]string{"kind", "op"},
		),
	}
}

// Observe matches logger.Config.OnError.
func (c *ErrorCounter) Observe(err error) {
	if err == nil {
		return
	}
	kind, op := "unknown", "unknown"
	var le *logger.Error
	if errors.As(err, &le) {
		kind = strings.ToLower(string(le.Kind))
		op = le.Op
	}
	c.failures.WithLabelValues(kind, op).Inc()
}

// Collector exposes the underlying counter, e.g. for testutil.
func (c *ErrorCounter) Collector() *prometheus.CounterVec {
	return c.failures
}
