package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the service's Prometheus collectors. A nil Recorder is
// valid and records nothing, so callers never have to branch on wiring.
type Recorder struct {
	planSelections *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	feedRefreshes  prometheus.Counter
}

// NewRecorder registers the collectors on reg. If reg is nil, the default
// registerer is used. Collectors that are already registered are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	planSelections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_selections_total",
		Help: "Route plan selections by vehicle and outcome",
	}, []string{"vehicle_id", "outcome"})
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	feedRefreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_refreshes_total",
		Help: "Live metrics feed regenerations",
	})

	if err := reg.Register(planSelections); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			planSelections = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(httpRequests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			httpRequests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(httpDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			httpDuration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(feedRefreshes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			feedRefreshes = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &Recorder{
		planSelections: planSelections,
		httpRequests:   httpRequests,
		httpDuration:   httpDuration,
		feedRefreshes:  feedRefreshes,
	}, nil
}

// PlanSelection counts one plan selection. Unknown identifiers collapse to
// a single "unknown" label value to keep the cardinality bounded by the
// vehicle table.
func (r *Recorder) PlanSelection(vehicleID string, known bool) {
	if r == nil {
		return
	}
	outcome := "known"
	if !known {
		outcome = "unknown"
		vehicleID = "unknown"
	}
	r.planSelections.WithLabelValues(vehicleID, outcome).Inc()
}

// HTTPRequest records one served request.
func (r *Recorder) HTTPRequest(method, path string, status int, dur time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, path).Observe(dur.Seconds())
}

// FeedRefresh counts one live feed regeneration.
func (r *Recorder) FeedRefresh() {
	if r == nil {
		return
	}
	r.feedRefreshes.Inc()
}
