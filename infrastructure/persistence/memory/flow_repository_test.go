package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
	"github.com/kik369/sankey-kiro-app-sub000/domain/services"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingPublisher captures published events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

func newTestRepo() (*FlowRepository, *recordingPublisher) {
	publisher := &recordingPublisher{}
	repo := NewFlowRepository(config.DefaultDomainConfig(), publisher, zap.NewNop())
	return repo, publisher
}

func mustFlow(t *testing.T, source, target string, value float64) *entities.Flow {
	t.Helper()
	flow, err := entities.NewFlow(source, target, value)
	require.NoError(t, err)
	return flow
}

func TestFlowRepository_AddAndList(t *testing.T) {
	ctx := context.Background()
	repo, publisher := newTestRepo()
	flow := mustFlow(t, "A", "B", 10)

	require.NoError(t, repo.Add(ctx, flow))

	flows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, flows, 1)
	assert.Same(t, flow, flows[0])

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, []string{"flow.added"}, publisher.types())
}

func TestFlowRepository_AddCapFailurePublishesNothing(t *testing.T) {
	ctx := context.Background()
	repo, publisher := newTestRepo()

	for i := 0; i < 100; i++ {
		require.NoError(t, repo.Add(ctx, mustFlow(t, "A", "B", 1)))
	}
	err := repo.Add(ctx, mustFlow(t, "A", "B", 1))

	assert.True(t, errors.Is(err, pkgerrors.ErrConnectionLimitExceeded))
	assert.Len(t, publisher.types(), 100)
}

func TestFlowRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()
	flow := mustFlow(t, "A", "B", 10)
	require.NoError(t, repo.Add(ctx, flow))

	got, err := repo.GetByID(ctx, flow.ID())
	require.NoError(t, err)
	assert.Same(t, flow, got)

	_, err = repo.GetByID(ctx, valueobjects.NewFlowID())
	assert.True(t, errors.Is(err, pkgerrors.ErrFlowNotFound))
}

func TestFlowRepository_UpdateValue(t *testing.T) {
	ctx := context.Background()
	repo, publisher := newTestRepo()
	flow := mustFlow(t, "A", "B", 10)
	require.NoError(t, repo.Add(ctx, flow))

	require.NoError(t, repo.UpdateValue(ctx, flow.ID(), 25))

	got, err := repo.GetByID(ctx, flow.ID())
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Value())
	assert.Equal(t, []string{"flow.added", "flow.value_updated"}, publisher.types())

	err = repo.UpdateValue(ctx, valueobjects.NewFlowID(), 5)
	assert.True(t, errors.Is(err, pkgerrors.ErrFlowNotFound))
}

func TestFlowRepository_UpdateValueLeavesSnapshotsStable(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()
	flow := mustFlow(t, "A", "B", 10)
	require.NoError(t, repo.Add(ctx, flow))

	before, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateValue(ctx, flow.ID(), 25))

	// Flows handed out earlier keep the value they were read with
	assert.Equal(t, 10.0, before[0].Value())

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25.0, after[0].Value())
}

func TestFlowRepository_ConcurrentUpdateAndTransform(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()
	flow := mustFlow(t, "A", "B", 1)
	require.NoError(t, repo.Add(ctx, flow))

	transformer := services.NewSankeyTransformer()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 200; i++ {
			assert.NoError(t, repo.UpdateValue(ctx, flow.ID(), float64(i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			flows, err := repo.List(ctx)
			assert.NoError(t, err)
			_, err = transformer.Transform(flows)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}

func TestFlowRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, publisher := newTestRepo()
	flow := mustFlow(t, "A", "B", 10)
	require.NoError(t, repo.Add(ctx, flow))

	require.NoError(t, repo.Delete(ctx, flow.ID()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, []string{"flow.added", "flow.removed"}, publisher.types())

	assert.True(t, errors.Is(repo.Delete(ctx, flow.ID()), pkgerrors.ErrFlowNotFound))
}

func TestFlowRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo, publisher := newTestRepo()
	require.NoError(t, repo.Add(ctx, mustFlow(t, "A", "B", 1)))
	require.NoError(t, repo.Add(ctx, mustFlow(t, "B", "C", 2)))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, []string{"flow.added", "flow.added", "flows.cleared"}, publisher.types())

	// Clearing an empty repository publishes nothing further
	require.NoError(t, repo.Clear(ctx))
	assert.Len(t, publisher.types(), 3)
}

func TestPreferenceStore(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore()

	_, found, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "theme", "light"))

	value, found, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Delete(ctx, "theme"))
	_, found, err = store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)
}
