package levels

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var storeOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "backroom_generator_store_operations_total",
		Help: "Total number of level store operations.",
	},
	[]string{"operation", "status"},
)

func record(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storeOperationsTotal.WithLabelValues(operation, status).Inc()
}
