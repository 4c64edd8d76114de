package memory

import (
	"sync"

	"github.com/finlabs/retail-banking-core/internal/interfaces"
)

// Publisher records published events in memory. It backs tests and any
// wiring that wants notifications without a broker.
type Publisher struct {
	mu     sync.Mutex
	events []Published
}

// Published pairs an event with the topic it was published under.
type Published struct {
	Topic string
	Event any
}

// NewPublisher creates an empty capture publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Published{Topic: topic, Event: event})
	return nil
}

// Events returns a copy of everything published so far.
func (p *Publisher) Events() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Published, len(p.events))
	copy(out, p.events)
	return out
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
