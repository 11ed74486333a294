package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by chi route pattern.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shorturl_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	URLsShortenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shorturl_urls_shortened_total",
			Help: "Total number of URLs stored",
		},
	)

	InvalidSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shorturl_invalid_submissions_total",
			Help: "Total number of submissions rejected by URL validation",
		},
	)

	// LookupsTotal counts ID resolutions, labelled "found" or "not_found".
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shorturl_lookups_total",
			Help: "Total number of short ID lookups",
		},
		[]string{"result"},
	)
)

func RecordURLShortened() {
	URLsShortenedTotal.Inc()
}

func RecordInvalidSubmission() {
	InvalidSubmissionsTotal.Inc()
}

// RecordLookup increments the lookup counter for the given outcome.
func RecordLookup(found bool) {
	result := "not_found"
	if found {
		result = "found"
	}
	LookupsTotal.WithLabelValues(result).Inc()
}
