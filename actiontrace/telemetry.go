package actiontrace

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/activegraph/actionpack/actioncontroller"
	"github.com/activegraph/actionpack/actiondispatch"
)

// DefineMetricsHandler returns a handler to measure the duration of the request.
func DefineMetricsHandler(subsystem string) actiondispatch.Handler {
	requestDurationHistogramVec := promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	return actiondispatch.HandlerFunc(func(
		ctx *actioncontroller.Context, next actiondispatch.Next,
	) (interface{}, error) {
		start := time.Now()
		defer func() {
			hist := requestDurationHistogramVec.WithLabelValues(ctx.Route)
			hist.Observe(time.Since(start).Seconds())
		}()

		return next(ctx)
	})
}
