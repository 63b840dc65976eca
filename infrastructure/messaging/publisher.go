package messaging

import (
	"context"
	"sync"

	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
	"go.uber.org/zap"
)

// Subscriber receives a domain event after a successful mutation.
// Handlers run synchronously on the publishing goroutine and must not
// block; long work belongs behind a debouncer or a channel.
type Subscriber func(evt events.DomainEvent)

// InProcessPublisher fans domain events out to in-process subscribers.
// It implements ports.EventPublisher.
type InProcessPublisher struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	logger      *zap.Logger
}

// NewInProcessPublisher creates a publisher with no subscribers
func NewInProcessPublisher(logger *zap.Logger) *InProcessPublisher {
	return &InProcessPublisher{logger: logger}
}

// Subscribe registers a subscriber for all subsequent events
func (p *InProcessPublisher) Subscribe(sub Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, sub)
}

// Publish delivers each event to every subscriber in registration order
func (p *InProcessPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	p.mu.RLock()
	subs := make([]Subscriber, len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.RUnlock()

	for _, evt := range evts {
		p.logger.Debug("Publishing domain event",
			zap.String("event", evt.GetEventType()),
			zap.String("aggregateID", evt.GetAggregateID()),
		)
		for _, sub := range subs {
			sub(evt)
		}
	}
	return nil
}
