package queries

import (
	"time"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
)

// ListFlowsQuery represents a query for the ordered flow collection
type ListFlowsQuery struct{}

// Validate validates the query
func (q ListFlowsQuery) Validate() error {
	return nil
}

// FlowView is the read model for a single flow
type FlowView struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFlowView maps a flow entity to its read model
func NewFlowView(flow *entities.Flow) FlowView {
	return FlowView{
		ID:        flow.ID().String(),
		Source:    flow.Source(),
		Target:    flow.Target(),
		Value:     flow.Value(),
		CreatedAt: flow.CreatedAt(),
		UpdatedAt: flow.UpdatedAt(),
	}
}

// ListFlowsResult represents the ordered flow collection
type ListFlowsResult struct {
	Flows []FlowView `json:"flows"`
	Count int        `json:"count"`
}
