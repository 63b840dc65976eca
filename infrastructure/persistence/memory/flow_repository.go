package memory

import (
	"context"
	"sync"

	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/aggregates"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
	"go.uber.org/zap"
)

// FlowRepository is the in-memory adapter backing ports.FlowRepository.
// It wraps the FlowCollection aggregate behind a mutex and dispatches the
// domain events the aggregate records after every successful mutation.
type FlowRepository struct {
	mu         sync.RWMutex
	collection *aggregates.FlowCollection
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewFlowRepository creates an empty in-memory flow repository
func NewFlowRepository(cfg *config.DomainConfig, publisher ports.EventPublisher, logger *zap.Logger) *FlowRepository {
	return &FlowRepository{
		collection: aggregates.NewFlowCollectionWithConfig(cfg),
		publisher:  publisher,
		logger:     logger,
	}
}

// Add appends a flow, enforcing the collection caps
func (r *FlowRepository) Add(ctx context.Context, flow *entities.Flow) error {
	r.mu.Lock()
	err := r.collection.Add(flow)
	evts := r.drainEventsLocked()
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.dispatch(ctx, evts)
	return nil
}

// GetByID retrieves a flow by its ID
func (r *FlowRepository) GetByID(ctx context.Context, id valueobjects.FlowID) (*entities.Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collection.Get(id)
}

// UpdateValue replaces the value of an existing flow
func (r *FlowRepository) UpdateValue(ctx context.Context, id valueobjects.FlowID, value float64) error {
	r.mu.Lock()
	err := r.collection.UpdateValue(id, value)
	evts := r.drainEventsLocked()
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.dispatch(ctx, evts)
	return nil
}

// Delete removes a flow
func (r *FlowRepository) Delete(ctx context.Context, id valueobjects.FlowID) error {
	r.mu.Lock()
	err := r.collection.Remove(id)
	evts := r.drainEventsLocked()
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.dispatch(ctx, evts)
	return nil
}

// Clear removes every flow
func (r *FlowRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.collection.Clear()
	evts := r.drainEventsLocked()
	r.mu.Unlock()

	r.dispatch(ctx, evts)
	return nil
}

// List returns the flows in insertion order
func (r *FlowRepository) List(ctx context.Context) ([]*entities.Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collection.Flows(), nil
}

// Count returns the number of flows
func (r *FlowRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collection.Len(), nil
}

// drainEventsLocked collects and clears the aggregate's pending events.
// Caller must hold the write lock.
func (r *FlowRepository) drainEventsLocked() []events.DomainEvent {
	pending := r.collection.DomainEvents()
	r.collection.ClearEvents()
	return pending
}

func (r *FlowRepository) dispatch(ctx context.Context, evts []events.DomainEvent) {
	if r.publisher == nil || len(evts) == 0 {
		return
	}
	if err := r.publisher.Publish(ctx, evts...); err != nil {
		r.logger.Warn("Failed to publish domain events",
			zap.Int("count", len(evts)),
			zap.Error(err),
		)
	}
}
