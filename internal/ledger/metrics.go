package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var deductionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_deductions_total",
		Help: "How many budget deductions were attempted, partitioned by funding category and result.",
	},
	[]string{"category", "result"},
)

var backfillShiftsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_backfill_shifts_total",
		Help: "How many shifts the backfill reconciler processed, partitioned by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(deductionsTotal, backfillShiftsTotal)
}
