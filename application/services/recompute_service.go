package services

import (
	"context"
	"sync"
	"time"

	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/events"
	domainservices "github.com/kik369/sankey-kiro-app-sub000/domain/services"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/async"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"
	"go.uber.org/zap"
)

// DefaultRecomputeDelay is the quiet period before a rebuild runs.
// Bursts of edits coalesce into a single recomputation.
const DefaultRecomputeDelay = 300 * time.Millisecond

// RecomputeService keeps a rendering-ready snapshot of the collection
// warm. Every mutation event schedules a debounced rebuild, so rapid
// input does not recompute the transform on every keystroke; only the
// last state after a quiet period is materialized.
type RecomputeService struct {
	flowRepo    ports.FlowRepository
	transformer *domainservices.SankeyTransformer
	metrics     *observability.Collector
	logger      *zap.Logger
	debouncer   *async.Debouncer

	mu       sync.RWMutex
	snapshot domainservices.SankeyData
	summary  domainservices.SankeySummary
}

// NewRecomputeService creates a recompute service with the given quiet period
func NewRecomputeService(
	flowRepo ports.FlowRepository,
	transformer *domainservices.SankeyTransformer,
	metrics *observability.Collector,
	logger *zap.Logger,
	delay time.Duration,
) *RecomputeService {
	if delay <= 0 {
		delay = DefaultRecomputeDelay
	}
	return &RecomputeService{
		flowRepo:    flowRepo,
		transformer: transformer,
		metrics:     metrics,
		logger:      logger,
		debouncer:   async.NewDebouncer(delay),
		snapshot:    domainservices.SankeyData{Nodes: []domainservices.SankeyNode{}, Links: []domainservices.SankeyLink{}},
	}
}

// OnEvent is the domain event subscriber. Any flow mutation schedules a
// rebuild; the debouncer collapses bursts into one.
func (s *RecomputeService) OnEvent(evt events.DomainEvent) {
	s.logger.Debug("Scheduling snapshot rebuild",
		zap.String("event", evt.GetEventType()),
		zap.String("aggregateID", evt.GetAggregateID()),
	)
	s.debouncer.Do(s.rebuild)
}

// rebuild recomputes the snapshot from the current collection state
func (s *RecomputeService) rebuild() {
	ctx := context.Background()

	flows, err := s.flowRepo.List(ctx)
	if err != nil {
		s.logger.Error("Snapshot rebuild failed to list flows", zap.Error(err))
		return
	}

	data, err := s.transformer.Transform(flows)
	if err != nil {
		s.logger.Error("Snapshot rebuild failed to transform", zap.Error(err))
		return
	}
	summary := s.transformer.Summarize(flows)

	s.mu.Lock()
	s.snapshot = data
	s.summary = summary
	s.mu.Unlock()

	s.metrics.SetCollectionSize(summary.NodeCount, summary.LinkCount)
	s.logger.Debug("Snapshot rebuilt",
		zap.Int("nodes", summary.NodeCount),
		zap.Int("links", summary.LinkCount),
	)
}

// Snapshot returns the most recently materialized chart data
func (s *RecomputeService) Snapshot() (domainservices.SankeyData, domainservices.SankeySummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.summary
}

// Stop cancels any pending rebuild
func (s *RecomputeService) Stop() {
	s.debouncer.Stop()
}
