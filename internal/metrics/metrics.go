package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
	QuerySeconds       *prometheus.HistogramVec
	UpstreamErrors     prometheus.Counter
	GeometryFallbacks  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "agora_http_requests_total",
			Help: "Total number of handled API requests.",
		}, []string{"route", "status"}),
		HTTPRequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agora_http_request_duration_seconds",
			Help:    "Duration of API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		QuerySeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agora_sparql_query_duration_seconds",
			Help:    "Duration of SPARQL queries sent to the triple store.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query"}),
		UpstreamErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "agora_sparql_errors_total",
			Help: "Total number of failed SPARQL queries (transport, status or decoding).",
		}),
		GeometryFallbacks: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "agora_geometry_fallbacks_total",
			Help: "Features rendered as a point instead of their WKT geometry.",
		}, []string{"reason"}),
	}
}
