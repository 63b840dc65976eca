package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFlow(t *testing.T, source, target string, value float64) *entities.Flow {
	t.Helper()
	flow, err := entities.NewFlow(source, target, value)
	require.NoError(t, err)
	return flow
}

func TestFlowCollection_AddAndList(t *testing.T) {
	c := NewFlowCollection()
	first := mustFlow(t, "A", "B", 1)
	second := mustFlow(t, "B", "C", 2)

	require.NoError(t, c.Add(first))
	require.NoError(t, c.Add(second))

	flows := c.Flows()
	require.Len(t, flows, 2)
	assert.Same(t, first, flows[0])
	assert.Same(t, second, flows[1])
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.NodeCount())
}

func TestFlowCollection_AddNil(t *testing.T) {
	c := NewFlowCollection()

	err := c.Add(nil)

	assert.Error(t, err)
}

func TestFlowCollection_AddDuplicateID(t *testing.T) {
	c := NewFlowCollection()
	flow := mustFlow(t, "A", "B", 1)

	require.NoError(t, c.Add(flow))
	err := c.Add(flow)

	assert.Error(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestFlowCollection_ConnectionCap(t *testing.T) {
	c := NewFlowCollection()
	for i := 0; i < 100; i++ {
		require.NoError(t, c.Add(mustFlow(t, "A", "B", 1)))
	}

	err := c.Add(mustFlow(t, "A", "B", 1))

	assert.True(t, errors.Is(err, pkgerrors.ErrConnectionLimitExceeded))
	assert.Equal(t, 100, c.Len())
}

func TestFlowCollection_NodeCap(t *testing.T) {
	c := NewFlowCollection()
	// 25 disjoint flows touch exactly 50 distinct nodes
	for i := 0; i < 25; i++ {
		require.NoError(t, c.Add(mustFlow(t, fmt.Sprintf("s%d", i), fmt.Sprintf("t%d", i), 1)))
	}

	// Reusing existing nodes is fine
	require.NoError(t, c.Add(mustFlow(t, "s0", "t1", 1)))

	// Two new nodes would exceed the ceiling
	err := c.Add(mustFlow(t, "new-source", "new-target", 1))
	assert.True(t, errors.Is(err, pkgerrors.ErrNodeLimitExceeded))
}

func TestFlowCollection_CapErrorsReportConfiguredLimits(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.MaxNodes = 3
	cfg.MaxConnections = 2
	c := NewFlowCollectionWithConfig(cfg)

	require.NoError(t, c.Add(mustFlow(t, "A", "B", 1)))

	err := c.Add(mustFlow(t, "C", "D", 1))
	require.True(t, errors.Is(err, pkgerrors.ErrNodeLimitExceeded))
	assert.Contains(t, err.Error(), "Maximum of 3 nodes")

	require.NoError(t, c.Add(mustFlow(t, "B", "A", 1)))

	err = c.Add(mustFlow(t, "A", "B", 1))
	require.True(t, errors.Is(err, pkgerrors.ErrConnectionLimitExceeded))
	assert.Contains(t, err.Error(), "Maximum of 2 connections")
}

func TestFlowCollection_UpdateValue(t *testing.T) {
	c := NewFlowCollection()
	flow := mustFlow(t, "A", "B", 1)
	require.NoError(t, c.Add(flow))

	require.NoError(t, c.UpdateValue(flow.ID(), 42))

	got, err := c.Get(flow.ID())
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Value())
}

func TestFlowCollection_UpdateValueNotFound(t *testing.T) {
	c := NewFlowCollection()

	err := c.UpdateValue(valueobjects.NewFlowID(), 42)

	assert.True(t, errors.Is(err, pkgerrors.ErrFlowNotFound))
}

func TestFlowCollection_Remove(t *testing.T) {
	c := NewFlowCollection()
	first := mustFlow(t, "A", "B", 1)
	second := mustFlow(t, "B", "C", 2)
	require.NoError(t, c.Add(first))
	require.NoError(t, c.Add(second))

	require.NoError(t, c.Remove(first.ID()))

	assert.Equal(t, 1, c.Len())
	_, err := c.Get(first.ID())
	assert.True(t, errors.Is(err, pkgerrors.ErrFlowNotFound))

	assert.True(t, errors.Is(c.Remove(first.ID()), pkgerrors.ErrFlowNotFound))
}

func TestFlowCollection_Clear(t *testing.T) {
	c := NewFlowCollection()
	require.NoError(t, c.Add(mustFlow(t, "A", "B", 1)))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.NodeCount())

	// Clearing an empty collection records no event
	c.ClearEvents()
	c.Clear()
	assert.Empty(t, c.DomainEvents())
}

func TestFlowCollection_NodeNamesFirstAppearanceOrder(t *testing.T) {
	c := NewFlowCollection()
	require.NoError(t, c.Add(mustFlow(t, "Coal", "Power", 1)))
	require.NoError(t, c.Add(mustFlow(t, "Gas", "Power", 1)))

	assert.Equal(t, []string{"Coal", "Power", "Gas"}, c.NodeNames())
}

func TestFlowCollection_RecordsDomainEvents(t *testing.T) {
	c := NewFlowCollection()
	flow := mustFlow(t, "A", "B", 1)

	require.NoError(t, c.Add(flow))
	require.NoError(t, c.UpdateValue(flow.ID(), 2))
	require.NoError(t, c.Remove(flow.ID()))
	c.Clear()

	evts := c.DomainEvents()
	require.Len(t, evts, 3)
	assert.Equal(t, "flow.added", evts[0].GetEventType())
	assert.Equal(t, "flow.value_updated", evts[1].GetEventType())
	assert.Equal(t, "flow.removed", evts[2].GetEventType())

	c.ClearEvents()
	assert.Empty(t, c.DomainEvents())
}

func TestFlowCollection_FlowsReturnsCopy(t *testing.T) {
	c := NewFlowCollection()
	require.NoError(t, c.Add(mustFlow(t, "A", "B", 1)))

	flows := c.Flows()
	flows[0] = nil

	assert.NotNil(t, c.Flows()[0])
}
