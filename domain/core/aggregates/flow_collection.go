package aggregates

import (
	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
)

// FlowCollection is the aggregate owning the ordered list of flows for a
// session. Insertion order is significant for display only. The node and
// connection ceilings are enforced at add time as reportable failures.
type FlowCollection struct {
	cfg   *config.DomainConfig
	flows []*entities.Flow
	byID  map[string]*entities.Flow

	// Domain events that occurred during this aggregate's lifetime
	events []events.DomainEvent
}

// NewFlowCollection creates an empty collection with default caps
func NewFlowCollection() *FlowCollection {
	return NewFlowCollectionWithConfig(config.DefaultDomainConfig())
}

// NewFlowCollectionWithConfig creates an empty collection with custom caps
func NewFlowCollectionWithConfig(cfg *config.DomainConfig) *FlowCollection {
	return &FlowCollection{
		cfg:   cfg,
		flows: make([]*entities.Flow, 0),
		byID:  make(map[string]*entities.Flow),
	}
}

// Add appends a flow, enforcing the node and connection ceilings
func (c *FlowCollection) Add(flow *entities.Flow) error {
	if flow == nil {
		return pkgerrors.NewValidationError("flow cannot be nil")
	}
	if _, exists := c.byID[flow.ID().String()]; exists {
		return pkgerrors.NewConflictError("flow already exists in the collection")
	}

	if len(c.flows)+1 > c.cfg.MaxConnections {
		return pkgerrors.ConnectionLimitExceeded(c.cfg.MaxConnections)
	}
	if c.prospectiveNodeCount(flow) > c.cfg.MaxNodes {
		return pkgerrors.NodeLimitExceeded(c.cfg.MaxNodes)
	}

	c.flows = append(c.flows, flow)
	c.byID[flow.ID().String()] = flow
	c.recordEvent(events.NewFlowAdded(flow.ID(), flow.Source(), flow.Target(), flow.Value()))
	return nil
}

// UpdateValue swaps in a replacement flow carrying the new value. The
// stored flow is never mutated, so readers holding it stay consistent.
func (c *FlowCollection) UpdateValue(id valueobjects.FlowID, value float64) error {
	flow, exists := c.byID[id.String()]
	if !exists {
		return pkgerrors.ErrFlowNotFound.WithDetail("flow_id", id.String())
	}

	updated, err := flow.WithValue(value)
	if err != nil {
		return err
	}

	c.byID[id.String()] = updated
	for i, existing := range c.flows {
		if existing.ID().Equals(id) {
			c.flows[i] = updated
			break
		}
	}

	c.recordEvent(events.NewFlowValueUpdated(id, flow.Value(), value))
	return nil
}

// Remove deletes a flow by id
func (c *FlowCollection) Remove(id valueobjects.FlowID) error {
	if _, exists := c.byID[id.String()]; !exists {
		return pkgerrors.ErrFlowNotFound.WithDetail("flow_id", id.String())
	}

	delete(c.byID, id.String())
	for i, flow := range c.flows {
		if flow.ID().Equals(id) {
			c.flows = append(c.flows[:i], c.flows[i+1:]...)
			break
		}
	}

	c.recordEvent(events.NewFlowRemoved(id))
	return nil
}

// Clear removes every flow
func (c *FlowCollection) Clear() {
	count := len(c.flows)
	c.flows = make([]*entities.Flow, 0)
	c.byID = make(map[string]*entities.Flow)

	if count > 0 {
		c.recordEvent(events.NewFlowsCleared(count))
	}
}

// Get returns a flow by id
func (c *FlowCollection) Get(id valueobjects.FlowID) (*entities.Flow, error) {
	flow, exists := c.byID[id.String()]
	if !exists {
		return nil, pkgerrors.ErrFlowNotFound.WithDetail("flow_id", id.String())
	}
	return flow, nil
}

// Flows returns the flows in insertion order. The slice is a copy;
// sharing the immutable flows themselves is safe.
func (c *FlowCollection) Flows() []*entities.Flow {
	out := make([]*entities.Flow, len(c.flows))
	copy(out, c.flows)
	return out
}

// Len returns the number of flows
func (c *FlowCollection) Len() int {
	return len(c.flows)
}

// NodeNames returns the distinct node names in first-appearance order
func (c *FlowCollection) NodeNames() []string {
	seen := make(map[string]struct{}, len(c.flows)*2)
	names := make([]string, 0, len(c.flows)*2)

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, flow := range c.flows {
		add(flow.Source())
		add(flow.Target())
	}
	return names
}

// NodeCount returns the number of distinct nodes
func (c *FlowCollection) NodeCount() int {
	seen := make(map[string]struct{}, len(c.flows)*2)
	for _, flow := range c.flows {
		seen[flow.Source()] = struct{}{}
		seen[flow.Target()] = struct{}{}
	}
	return len(seen)
}

// prospectiveNodeCount counts distinct nodes as if the flow were added
func (c *FlowCollection) prospectiveNodeCount(flow *entities.Flow) int {
	seen := make(map[string]struct{}, len(c.flows)*2+2)
	for _, existing := range c.flows {
		seen[existing.Source()] = struct{}{}
		seen[existing.Target()] = struct{}{}
	}
	seen[flow.Source()] = struct{}{}
	seen[flow.Target()] = struct{}{}
	return len(seen)
}

// recordEvent appends a domain event to the aggregate's pending list
func (c *FlowCollection) recordEvent(event events.DomainEvent) {
	c.events = append(c.events, event)
}

// DomainEvents returns the pending domain events
func (c *FlowCollection) DomainEvents() []events.DomainEvent {
	return c.events
}

// ClearEvents empties the pending event list after dispatch
func (c *FlowCollection) ClearEvents() {
	c.events = nil
}
