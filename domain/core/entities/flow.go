package entities

import (
	"math"
	"strings"
	"time"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
)

// Flow is the canonical unit of data: a directed, weighted connection
// from one named node to another. Flows are created only through the
// validated construction paths and are immutable once created; a value
// edit produces a replacement flow, so instances can be shared across
// goroutines without locking.
type Flow struct {
	// Private fields ensure encapsulation
	id        valueobjects.FlowID
	source    string
	target    string
	value     float64
	createdAt time.Time
	updatedAt time.Time
}

// NewFlow creates a new flow with full business rule validation.
// Source and target are trimmed; the generated ID is never reused.
func NewFlow(source, target string, value float64) (*Flow, error) {
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)

	if source == "" {
		return nil, pkgerrors.ErrFlowSourceRequired
	}
	if target == "" {
		return nil, pkgerrors.ErrFlowTargetRequired
	}
	if strings.EqualFold(source, target) {
		return nil, pkgerrors.ErrSelfReferentialFlow.WithDetail("node", source)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, pkgerrors.ErrFlowValueNotFinite
	}
	if value <= 0 {
		return nil, pkgerrors.ErrFlowValueNotPositive.WithDetail("value", value)
	}

	now := time.Now()
	return &Flow{
		id:        valueobjects.NewFlowID(),
		source:    source,
		target:    target,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFlow reconstructs a flow from repository data with preserved
// timestamps. No validation runs; the data is trusted to have passed the
// construction path once already.
func ReconstructFlow(
	id valueobjects.FlowID,
	source, target string,
	value float64,
	createdAt, updatedAt time.Time,
) *Flow {
	return &Flow{
		id:        id,
		source:    source,
		target:    target,
		value:     value,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the flow identifier
func (f *Flow) ID() valueobjects.FlowID {
	return f.id
}

// Source returns the source node name
func (f *Flow) Source() string {
	return f.source
}

// Target returns the target node name
func (f *Flow) Target() string {
	return f.target
}

// Value returns the flow value
func (f *Flow) Value() float64 {
	return f.value
}

// CreatedAt returns the creation timestamp
func (f *Flow) CreatedAt() time.Time {
	return f.createdAt
}

// UpdatedAt returns the last modification timestamp
func (f *Flow) UpdatedAt() time.Time {
	return f.updatedAt
}

// WithValue returns a copy of the flow carrying the new value after
// re-validation. The receiver is left untouched.
func (f *Flow) WithValue(value float64) (*Flow, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, pkgerrors.ErrFlowValueNotFinite
	}
	if value <= 0 {
		return nil, pkgerrors.ErrFlowValueNotPositive.WithDetail("value", value)
	}

	updated := *f
	updated.value = value
	updated.updatedAt = time.Now()
	return &updated, nil
}

// SameRoute reports whether two flows share the ordered (source, target)
// pair. Directionality matters: A→B and B→A are different routes.
func (f *Flow) SameRoute(other *Flow) bool {
	return other != nil && f.source == other.source && f.target == other.target
}
