package distributor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	distributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feesplit",
			Name:      "distributions_total",
			Help:      "Total number of delivered distributions",
		},
		[]string{"status"},
	)

	distributedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feesplit",
			Name:      "distributed_amount_total",
			Help:      "Total amount paid out, in the smallest unit of the denomination",
		},
		[]string{"denom", "kind"},
	)

	configUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feesplit",
			Name:      "config_updates_total",
			Help:      "Total number of delivered configuration updates",
		},
		[]string{"status"},
	)
)

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// observeDistribution counts every part of a payout under its own kind,
// also when several parts are paid to the same recipient.
func observeDistribution(plan PayoutPlan, err error) {
	distributionsTotal.WithLabelValues(statusLabel(err)).Inc()
	for _, po := range plan {
		for _, part := range po.Parts() {
			distributedAmount.WithLabelValues(po.Amount.Denom, string(part.Kind)).Add(float64(part.Amount))
		}
	}
}
