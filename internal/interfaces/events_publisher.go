package interfaces

// EventPublisher delivers operation events to whatever sink is wired in
// (kafka, an in-memory capture, nothing at all). Publish failures are the
// sink's problem: account state never depends on delivery succeeding.
type EventPublisher interface {
	Publish(topic string, event any) error
}
