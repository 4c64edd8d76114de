package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/finlabs/retail-banking-core/internal/metrics"
)

// Collector exports operation and transaction counters to Prometheus.
type Collector struct {
	operations   *prometheus.CounterVec
	transactions *prometheus.CounterVec
}

// NewCollector creates the counters and registers them with the given
// registerer (pass prometheus.DefaultRegisterer for the default).
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank",
			Name:      "account_operations_total",
			Help:      "Account operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank",
			Name:      "transactions_total",
			Help:      "Dispatched transaction requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(c.operations, c.transactions)
	return c
}

func (c *Collector) RecordOperation(operation string, success bool) {
	c.operations.WithLabelValues(operation, outcome(success)).Inc()
}

func (c *Collector) RecordTransaction(kind string, success bool) {
	c.transactions.WithLabelValues(kind, outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

var _ metrics.Collector = (*Collector)(nil)
