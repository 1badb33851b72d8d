package ledger

import (
	"redbank/core"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "redbank",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger operations by result",
	}, []string{"op", "result"})

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "redbank",
		Subsystem: "ledger",
		Name:      "operation_duration_seconds",
		Help:      "Ledger operation latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(operationsTotal, operationDuration)
}

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = core.ErrorKindOf(err).String()
	}

	operationsTotal.WithLabelValues(op, result).Inc()
	operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
