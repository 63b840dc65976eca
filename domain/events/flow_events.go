package events

import (
	"time"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// FlowAdded is raised when a flow joins the collection
type FlowAdded struct {
	BaseEvent
	FlowID valueobjects.FlowID `json:"flow_id"`
	Source string              `json:"source"`
	Target string              `json:"target"`
	Value  float64             `json:"value"`
}

// NewFlowAdded creates a FlowAdded event
func NewFlowAdded(flowID valueobjects.FlowID, source, target string, value float64) FlowAdded {
	return FlowAdded{
		BaseEvent: BaseEvent{
			AggregateID: flowID.String(),
			EventType:   "flow.added",
			Timestamp:   time.Now(),
		},
		FlowID: flowID,
		Source: source,
		Target: target,
		Value:  value,
	}
}

// FlowValueUpdated is raised when a flow's value is replaced
type FlowValueUpdated struct {
	BaseEvent
	FlowID   valueobjects.FlowID `json:"flow_id"`
	OldValue float64             `json:"old_value"`
	NewValue float64             `json:"new_value"`
}

// NewFlowValueUpdated creates a FlowValueUpdated event
func NewFlowValueUpdated(flowID valueobjects.FlowID, oldValue, newValue float64) FlowValueUpdated {
	return FlowValueUpdated{
		BaseEvent: BaseEvent{
			AggregateID: flowID.String(),
			EventType:   "flow.value_updated",
			Timestamp:   time.Now(),
		},
		FlowID:   flowID,
		OldValue: oldValue,
		NewValue: newValue,
	}
}

// FlowRemoved is raised when a flow is deleted by explicit user action
type FlowRemoved struct {
	BaseEvent
	FlowID valueobjects.FlowID `json:"flow_id"`
}

// NewFlowRemoved creates a FlowRemoved event
func NewFlowRemoved(flowID valueobjects.FlowID) FlowRemoved {
	return FlowRemoved{
		BaseEvent: BaseEvent{
			AggregateID: flowID.String(),
			EventType:   "flow.removed",
			Timestamp:   time.Now(),
		},
		FlowID: flowID,
	}
}

// FlowsCleared is raised when the whole collection is emptied
type FlowsCleared struct {
	BaseEvent
	Count int `json:"count"`
}

// NewFlowsCleared creates a FlowsCleared event
func NewFlowsCleared(count int) FlowsCleared {
	return FlowsCleared{
		BaseEvent: BaseEvent{
			AggregateID: "flow-collection",
			EventType:   "flows.cleared",
			Timestamp:   time.Now(),
		},
		Count: count,
	}
}
