package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Point operations
	PointOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_operations_total",
			Help: "Total accepted point operations",
		},
		[]string{"type"}, // charge|use
	)
	PointOperationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_operations_failed_total",
			Help: "Total rejected point operations",
		},
		[]string{"reason"}, // user_not_found|negative_amount|insufficient_point
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(PointOperationsTotal)
	prometheus.MustRegister(PointOperationsFailed)
}
