package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	"github.com/kik369/sankey-kiro-app-sub000/domain/services"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"
	"go.uber.org/zap"
)

// GetSankeyDataHandler handles Sankey visualization data queries
type GetSankeyDataHandler struct {
	flowRepo    ports.FlowRepository
	transformer *services.SankeyTransformer
	metrics     *observability.Collector
	logger      *zap.Logger
}

// NewGetSankeyDataHandler creates a new Sankey data handler
func NewGetSankeyDataHandler(
	flowRepo ports.FlowRepository,
	transformer *services.SankeyTransformer,
	metrics *observability.Collector,
	logger *zap.Logger,
) *GetSankeyDataHandler {
	return &GetSankeyDataHandler{
		flowRepo:    flowRepo,
		transformer: transformer,
		metrics:     metrics,
		logger:      logger,
	}
}

// Handle executes the Sankey data query
func (h *GetSankeyDataHandler) Handle(ctx context.Context, query queries.GetSankeyDataQuery) (*queries.GetSankeyDataResult, error) {
	flows, err := h.flowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	data, err := h.transformer.Transform(flows)
	if err != nil {
		h.logger.Error("Sankey transformation failed", zap.Error(err))
		return nil, err
	}

	h.metrics.Transforms.Inc()

	soft := h.transformer.ValidateForTransformation(flows)

	return &queries.GetSankeyDataResult{
		Data:     data,
		Warnings: soft.Warnings,
		Summary:  h.transformer.Summarize(flows),
	}, nil
}
