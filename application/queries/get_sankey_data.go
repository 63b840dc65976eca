package queries

import (
	"github.com/kik369/sankey-kiro-app-sub000/domain/services"
)

// GetSankeyDataQuery represents a query for the rendering-ready Sankey
// shape of the current collection
type GetSankeyDataQuery struct{}

// Validate validates the query
func (q GetSankeyDataQuery) Validate() error {
	return nil
}

// GetSankeyDataResult carries the chart data plus the advisory layer:
// soft-validation warnings and summary statistics
type GetSankeyDataResult struct {
	Data     services.SankeyData    `json:"data"`
	Warnings []string               `json:"warnings,omitempty"`
	Summary  services.SankeySummary `json:"summary"`
}

// GetSummaryQuery represents a query for aggregate flow statistics
type GetSummaryQuery struct{}

// Validate validates the query
func (q GetSummaryQuery) Validate() error {
	return nil
}

// FindDuplicatesQuery represents a query for duplicate flow groups
type FindDuplicatesQuery struct{}

// Validate validates the query
func (q FindDuplicatesQuery) Validate() error {
	return nil
}

// FindDuplicatesResult lists groups of flows sharing a (source, target)
// route, each group in original relative order
type FindDuplicatesResult struct {
	Groups [][]FlowView `json:"groups"`
	Count  int          `json:"count"`
}

// ValidateCollectionQuery represents a query that checks the stored
// collection against the per-flow data rules and the collection caps
type ValidateCollectionQuery struct{}

// Validate validates the query
func (q ValidateCollectionQuery) Validate() error {
	return nil
}

// GetThemeQuery represents a query for the stored theme preference
type GetThemeQuery struct{}

// Validate validates the query
func (q GetThemeQuery) Validate() error {
	return nil
}

// GetThemeResult carries the resolved theme tag
type GetThemeResult struct {
	Theme string `json:"theme"`
}
