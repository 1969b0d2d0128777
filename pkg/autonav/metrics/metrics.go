// Package metrics records autonav action executions as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

const (
	namespace = "autonav"

	labelAction = "action"
	labelStatus = "status"

	statusOK           = "ok"
	statusError        = "error"
	statusUnregistered = "unregistered"
)

// durationBuckets covers instant stack edits up to long animated chains.
var durationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Collector implements autonav.Observer.
type Collector struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	popped     *prometheus.CounterVec
	pushed     *prometheus.CounterVec
}

var _ autonav.Observer = (*Collector)(nil)

// New creates the collector's instruments and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_executions_total",
			Help:      "Number of executed navigation actions.",
		}, []string{labelAction, labelStatus}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Duration of navigation action executions.",
			Buckets:   durationBuckets,
		}, []string{labelAction}),
		popped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screens_popped_total",
			Help:      "Number of screens popped by navigation actions.",
		}, []string{labelAction}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screens_pushed_total",
			Help:      "Number of screens pushed by navigation actions.",
		}, []string{labelAction}),
	}

	for _, collector := range []prometheus.Collector{c.executions, c.duration, c.popped, c.pushed} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("register autonav metrics: %w", err)
		}
	}
	return c, nil
}

// ActionExecuted records one execution.
func (c *Collector) ActionExecuted(action string, info *autonav.ActionInfo, elapsed time.Duration, err error) {
	c.executions.WithLabelValues(action, status(err)).Inc()
	if info == nil {
		return
	}

	c.duration.WithLabelValues(action).Observe(elapsed.Seconds())
	c.popped.WithLabelValues(action).Add(float64(len(info.PoppedScreens())))
	c.pushed.WithLabelValues(action).Add(float64(len(info.PushedScreens())))
}

func status(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, autonav.ErrUnregisteredAction):
		return statusUnregistered
	default:
		return statusError
	}
}
