package entities

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlow(t *testing.T) {
	flow, err := NewFlow("A", "B", 10)

	require.NoError(t, err)
	assert.Equal(t, "A", flow.Source())
	assert.Equal(t, "B", flow.Target())
	assert.Equal(t, 10.0, flow.Value())
	assert.False(t, flow.ID().IsZero())
	assert.Equal(t, flow.CreatedAt(), flow.UpdatedAt())
}

func TestNewFlow_TrimsNames(t *testing.T) {
	flow, err := NewFlow("  Solar  ", " Grid ", 1)

	require.NoError(t, err)
	assert.Equal(t, "Solar", flow.Source())
	assert.Equal(t, "Grid", flow.Target())
}

func TestNewFlow_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		value   float64
		wantErr error
	}{
		{"empty source", "", "B", 1, pkgerrors.ErrFlowSourceRequired},
		{"blank source", "   ", "B", 1, pkgerrors.ErrFlowSourceRequired},
		{"empty target", "A", "", 1, pkgerrors.ErrFlowTargetRequired},
		{"self loop", "A", "A", 1, pkgerrors.ErrSelfReferentialFlow},
		{"self loop case-insensitive", "Grid", "GRID", 1, pkgerrors.ErrSelfReferentialFlow},
		{"self loop after trim", " A ", "A", 1, pkgerrors.ErrSelfReferentialFlow},
		{"zero value", "A", "B", 0, pkgerrors.ErrFlowValueNotPositive},
		{"negative value", "A", "B", -1, pkgerrors.ErrFlowValueNotPositive},
		{"nan value", "A", "B", math.NaN(), pkgerrors.ErrFlowValueNotFinite},
		{"infinite value", "A", "B", math.Inf(1), pkgerrors.ErrFlowValueNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow, err := NewFlow(tt.source, tt.target, tt.value)

			assert.Nil(t, flow)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFlow_UniqueIDs(t *testing.T) {
	first, err := NewFlow("A", "B", 1)
	require.NoError(t, err)
	second, err := NewFlow("A", "B", 1)
	require.NoError(t, err)

	assert.False(t, first.ID().Equals(second.ID()))
}

func TestFlow_WithValue(t *testing.T) {
	flow, err := NewFlow("A", "B", 10)
	require.NoError(t, err)

	updated, err := flow.WithValue(25)

	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Value())
	assert.True(t, updated.ID().Equals(flow.ID()))
	assert.Equal(t, flow.CreatedAt(), updated.CreatedAt())
	assert.False(t, updated.UpdatedAt().Before(flow.CreatedAt()))
	// The original is untouched
	assert.Equal(t, 10.0, flow.Value())
}

func TestFlow_WithValueRejected(t *testing.T) {
	flow, err := NewFlow("A", "B", 10)
	require.NoError(t, err)

	_, err = flow.WithValue(0)
	assert.True(t, errors.Is(err, pkgerrors.ErrFlowValueNotPositive))
	_, err = flow.WithValue(math.NaN())
	assert.True(t, errors.Is(err, pkgerrors.ErrFlowValueNotFinite))
	assert.Equal(t, 10.0, flow.Value())
}

func TestReconstructFlow(t *testing.T) {
	id := valueobjects.NewFlowID()
	created := time.Now().Add(-time.Hour)
	updated := time.Now().Add(-time.Minute)

	flow := ReconstructFlow(id, "A", "B", 5, created, updated)

	assert.True(t, flow.ID().Equals(id))
	assert.Equal(t, created, flow.CreatedAt())
	assert.Equal(t, updated, flow.UpdatedAt())
}

func TestFlow_SameRoute(t *testing.T) {
	ab1, _ := NewFlow("A", "B", 1)
	ab2, _ := NewFlow("A", "B", 2)
	ba, _ := NewFlow("B", "A", 1)

	assert.True(t, ab1.SameRoute(ab2))
	assert.False(t, ab1.SameRoute(ba))
	assert.False(t, ab1.SameRoute(nil))
}
