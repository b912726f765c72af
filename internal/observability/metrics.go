package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visionmedia_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "visionmedia_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	Transforms = promauto.NewCounter(prometheus.CounterOpts{
		Name: "visionmedia_transforms_total",
		Help: "Annotation documents turned into view models",
	})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visionmedia_store_errors_total",
		Help: "Document store failures by operation",
	}, []string{"op"})
)
