package ledger

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wishpay/backend/internal/models"
)

var operationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wishpay_ledger_operations_total",
		Help: "Ledger operations by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

var operationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "wishpay_ledger_operation_duration_seconds",
		Help:    "Duration of ledger operations including lock acquisition.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

var movedAmount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wishpay_ledger_moved_minor_units_total",
		Help: "Sum of committed transaction amounts in minor units by transaction type.",
	},
	[]string{"type"},
)

// Collectors returns the ledger metrics for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{operationCount, operationDuration, movedAmount}
}

func observe(operation string, err error, elapsed time.Duration) {
	operationCount.WithLabelValues(operation, outcome(err)).Inc()
	operationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, ErrDestinationNotFound):
		return "not_found"
	case errors.Is(err, models.ErrGeneral):
		return "error"
	default:
		return "rejected"
	}
}
