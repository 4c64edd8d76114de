package metrics

import "sync"

// MemoryCollector counts observations in memory, keyed by label and
// outcome. Tests use it to assert what the system reported.
type MemoryCollector struct {
	mu           sync.Mutex
	operations   map[string]int
	transactions map[string]int
}

// NewMemoryCollector creates an empty in-memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{
		operations:   make(map[string]int),
		transactions: make(map[string]int),
	}
}

func (m *MemoryCollector) RecordOperation(operation string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[key(operation, success)]++
}

func (m *MemoryCollector) RecordTransaction(kind string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[key(kind, success)]++
}

// Operations returns the count recorded for an operation and outcome.
func (m *MemoryCollector) Operations(operation string, success bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.operations[key(operation, success)]
}

// Transactions returns the count recorded for a kind and outcome.
func (m *MemoryCollector) Transactions(kind string, success bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions[key(kind, success)]
}

func key(label string, success bool) string {
	if success {
		return label + "/success"
	}
	return label + "/failure"
}

var _ Collector = (*MemoryCollector)(nil)
