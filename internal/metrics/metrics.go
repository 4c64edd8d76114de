// Package metrics defines the collector interface the banking system
// reports through. Implementations can export to Prometheus or stay
// in-process; the no-op collector is the default.
package metrics

// Collector counts account operations and dispatched transactions.
type Collector interface {
	// RecordOperation counts one account operation by name and outcome.
	RecordOperation(operation string, success bool)
	// RecordTransaction counts one dispatched transaction request by kind
	// and outcome.
	RecordTransaction(kind string, success bool)
}

// NoOpCollector discards every observation.
type NoOpCollector struct{}

func (NoOpCollector) RecordOperation(operation string, success bool) {}

func (NoOpCollector) RecordTransaction(kind string, success bool) {}
