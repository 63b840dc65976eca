package validators

import (
	"fmt"
	"math"
	"strings"

	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
)

// FlowDataValidator validates already-constructed flow records. This is a
// distinct layer from the input validator on purpose: it runs on
// normalized data, so it reports errors only and knows nothing about the
// input-stage warning vocabulary.
type FlowDataValidator struct{}

// NewFlowDataValidator creates a new flow data validator
func NewFlowDataValidator() *FlowDataValidator {
	return &FlowDataValidator{}
}

// Validate checks that a flow record is structurally sound: generated id,
// non-empty trimmed node names, distinct source and target, and a finite
// positive value.
func (v *FlowDataValidator) Validate(flow *entities.Flow) ValidationResult {
	b := &resultBuilder{}

	if flow == nil {
		b.addError("Flow is required")
		return b.result()
	}

	if flow.ID().IsZero() {
		b.addError("Flow ID is required")
	}
	if strings.TrimSpace(flow.Source()) == "" {
		b.addError("Source is required")
	}
	if strings.TrimSpace(flow.Target()) == "" {
		b.addError("Target is required")
	}
	if strings.TrimSpace(flow.Source()) != "" &&
		strings.TrimSpace(flow.Source()) == strings.TrimSpace(flow.Target()) {
		b.addError("Source and target must be different nodes")
	}

	value := flow.Value()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		b.addError("Value must be a finite number")
	} else if value <= 0 {
		b.addError("Value must be greater than zero")
	}

	return b.result()
}

// CollectionValidator validates a whole flow collection against both
// per-record rules and the collection-level performance caps
type CollectionValidator struct {
	cfg           *config.DomainConfig
	dataValidator *FlowDataValidator
}

// NewCollectionValidator creates a collection validator with default caps
func NewCollectionValidator() *CollectionValidator {
	return NewCollectionValidatorWithConfig(config.DefaultDomainConfig())
}

// NewCollectionValidatorWithConfig creates a collection validator with custom caps
func NewCollectionValidatorWithConfig(cfg *config.DomainConfig) *CollectionValidator {
	return &CollectionValidator{
		cfg:           cfg,
		dataValidator: NewFlowDataValidator(),
	}
}

// Validate runs the data validator over every flow, prefixing errors with
// the 1-based position, and enforces the node and connection ceilings.
// The cap checks run regardless of per-record validity; exceeding a cap
// is a reportable failure, never a crash.
func (v *CollectionValidator) Validate(flows []*entities.Flow) ValidationResult {
	b := &resultBuilder{}

	if flows == nil {
		b.addError("Flows must be a list")
		return b.result()
	}

	for i, flow := range flows {
		res := v.dataValidator.Validate(flow)
		for _, msg := range res.Errors {
			b.addError(fmt.Sprintf("Flow %d: %s", i+1, msg))
		}
	}

	if nodes := DistinctNodeCount(flows); nodes > v.cfg.MaxNodes {
		b.addError(fmt.Sprintf("Maximum of %d nodes allowed for optimal performance", v.cfg.MaxNodes))
	}
	if len(flows) > v.cfg.MaxConnections {
		b.addError(fmt.Sprintf("Maximum of %d connections allowed for optimal performance", v.cfg.MaxConnections))
	}

	return b.result()
}

// DistinctNodeCount counts the distinct node names appearing as a source
// or target anywhere in the collection
func DistinctNodeCount(flows []*entities.Flow) int {
	seen := make(map[string]struct{}, len(flows)*2)
	for _, flow := range flows {
		if flow == nil {
			continue
		}
		seen[flow.Source()] = struct{}{}
		seen[flow.Target()] = struct{}{}
	}
	return len(seen)
}
