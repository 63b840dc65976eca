package ports

import (
	"context"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
)

// FlowRepository defines the interface for the session flow collection.
// This is a port in hexagonal architecture - the application layer does
// not know the storage is an in-memory list.
type FlowRepository interface {
	// Add appends a flow, enforcing the collection caps
	Add(ctx context.Context, flow *entities.Flow) error

	// GetByID retrieves a flow by its ID
	GetByID(ctx context.Context, id valueobjects.FlowID) (*entities.Flow, error)

	// UpdateValue replaces the value of an existing flow
	UpdateValue(ctx context.Context, id valueobjects.FlowID, value float64) error

	// Delete removes a flow
	Delete(ctx context.Context, id valueobjects.FlowID) error

	// Clear removes every flow
	Clear(ctx context.Context) error

	// List returns the flows in insertion order
	List(ctx context.Context) ([]*entities.Flow, error)

	// Count returns the number of flows
	Count(ctx context.Context) (int, error)
}

// PreferenceRepository defines the interface for the single-key theme
// preference storage
type PreferenceRepository interface {
	// Get retrieves a preference value; found is false when absent
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores a preference value
	Set(ctx context.Context, key, value string) error
}

// EventPublisher publishes domain events to in-process subscribers
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// PreferenceKeyTheme is the storage key for the theme preference
const PreferenceKeyTheme = "theme"
