package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
)

// SankeyNode is one distinct node label in the rendered diagram. The
// field name is part of the rendering contract and must not change.
type SankeyNode struct {
	Name string `json:"name"`
}

// SankeyLink is one rendered connection. Field names and types are the
// rendering contract consumed directly by the charting component.
type SankeyLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// SankeyData is the shape handed to the rendering layer
type SankeyData struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// SankeySummary aggregates basic statistics over a flow collection
type SankeySummary struct {
	NodeCount  int     `json:"nodeCount"`
	LinkCount  int     `json:"linkCount"`
	TotalValue float64 `json:"totalValue"`
	MaxValue   float64 `json:"maxValue"`
	MinValue   float64 `json:"minValue"`
}

// SankeyTransformer converts validated flow collections into the
// node/link shape consumed by the rendering layer
type SankeyTransformer struct {
	cfg *config.DomainConfig
}

// NewSankeyTransformer creates a transformer with default limits
func NewSankeyTransformer() *SankeyTransformer {
	return NewSankeyTransformerWithConfig(config.DefaultDomainConfig())
}

// NewSankeyTransformerWithConfig creates a transformer with custom limits
func NewSankeyTransformerWithConfig(cfg *config.DomainConfig) *SankeyTransformer {
	return &SankeyTransformer{cfg: cfg}
}

// Transform converts a flow collection into Sankey nodes and links.
// A nil collection is a contract violation and returns an error; an empty
// collection is fine and yields empty nodes and links. Data reaching this
// point is expected to have passed validation already, so any structural
// violation aborts the whole transformation with no partial result.
func (t *SankeyTransformer) Transform(flows []*entities.Flow) (SankeyData, error) {
	if flows == nil {
		return SankeyData{}, pkgerrors.ErrNilFlows
	}

	data := SankeyData{
		Nodes: make([]SankeyNode, 0, len(flows)*2),
		Links: make([]SankeyLink, 0, len(flows)),
	}

	seen := make(map[string]struct{}, len(flows)*2)
	addNode := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		data.Nodes = append(data.Nodes, SankeyNode{Name: name})
	}

	for i, flow := range flows {
		if err := checkTransformable(i, flow); err != nil {
			return SankeyData{}, err
		}

		// Nodes keep first-appearance order for deterministic output
		addNode(flow.Source())
		addNode(flow.Target())

		data.Links = append(data.Links, SankeyLink{
			Source: flow.Source(),
			Target: flow.Target(),
			Value:  flow.Value(),
		})
	}

	return data, nil
}

// checkTransformable verifies the structural contract for one flow
func checkTransformable(index int, flow *entities.Flow) error {
	if flow == nil {
		return transformError(index, "flow is missing")
	}
	if strings.TrimSpace(flow.Source()) == "" {
		return transformError(index, "source must be a non-empty string")
	}
	if strings.TrimSpace(flow.Target()) == "" {
		return transformError(index, "target must be a non-empty string")
	}
	value := flow.Value()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return transformError(index, "value must be a finite number")
	}
	if value <= 0 {
		return transformError(index, "value must be greater than zero")
	}
	return nil
}

func transformError(index int, reason string) error {
	return pkgerrors.NewDomainError(
		pkgerrors.DomainContractError,
		"INVALID_FLOW",
		fmt.Sprintf("Flow at index %d: %s", index, reason),
	).WithDetail("index", index)
}

// ValidateForTransformation is a softer check than structural validation:
// self-loops and zero values are warnings the chart can tolerate, and the
// node/connection ceilings are advisory here, layered on top of the hard
// caps the collection validator enforces. Only negative values block.
func (t *SankeyTransformer) ValidateForTransformation(flows []*entities.Flow) validators.ValidationResult {
	result := validators.ValidResult()

	if flows == nil {
		result.IsValid = false
		result.Errors = append(result.Errors, "Flows must be a list")
		return result
	}

	for i, flow := range flows {
		if flow == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(flow.Source()), strings.TrimSpace(flow.Target())) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Flow %d: source and target are the same node", i+1))
		}
		switch value := flow.Value(); {
		case value < 0:
			result.Errors = append(result.Errors,
				fmt.Sprintf("Flow %d: negative values are not supported", i+1))
		case value == 0:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Flow %d: zero value will not be visible in the chart", i+1))
		}
	}

	if nodes := validators.DistinctNodeCount(flows); nodes > t.cfg.MaxNodes {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("More than %d nodes may degrade rendering performance", t.cfg.MaxNodes))
	}
	if len(flows) > t.cfg.MaxConnections {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("More than %d connections may degrade rendering performance", t.cfg.MaxConnections))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// Summarize computes aggregate statistics; empty input yields all zeros
func (t *SankeyTransformer) Summarize(flows []*entities.Flow) SankeySummary {
	if len(flows) == 0 {
		return SankeySummary{}
	}

	summary := SankeySummary{
		NodeCount: validators.DistinctNodeCount(flows),
		LinkCount: len(flows),
		MinValue:  math.Inf(1),
	}

	for _, flow := range flows {
		if flow == nil {
			continue
		}
		value := flow.Value()
		summary.TotalValue += value
		summary.MaxValue = math.Max(summary.MaxValue, value)
		summary.MinValue = math.Min(summary.MinValue, value)
	}

	if math.IsInf(summary.MinValue, 1) {
		summary.MinValue = 0
	}
	return summary
}
