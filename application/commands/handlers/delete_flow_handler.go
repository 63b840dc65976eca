package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"
	"go.uber.org/zap"
)

// DeleteFlowHandler handles single flow deletion
type DeleteFlowHandler struct {
	flowRepo ports.FlowRepository
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewDeleteFlowHandler creates a new delete flow handler
func NewDeleteFlowHandler(
	flowRepo ports.FlowRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *DeleteFlowHandler {
	return &DeleteFlowHandler{
		flowRepo: flowRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the delete flow command
func (h *DeleteFlowHandler) Handle(ctx context.Context, cmd commands.DeleteFlowCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	flowID, err := valueobjects.NewFlowIDFromString(cmd.FlowID)
	if err != nil {
		return fmt.Errorf("invalid flow ID: %w", err)
	}

	if err := h.flowRepo.Delete(ctx, flowID); err != nil {
		return err
	}

	h.metrics.FlowsDeleted.Inc()
	h.logger.Info("Flow deleted", zap.String("flowID", cmd.FlowID))
	return nil
}

// ClearFlowsHandler handles clearing the whole collection
type ClearFlowsHandler struct {
	flowRepo ports.FlowRepository
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewClearFlowsHandler creates a new clear flows handler
func NewClearFlowsHandler(
	flowRepo ports.FlowRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *ClearFlowsHandler {
	return &ClearFlowsHandler{
		flowRepo: flowRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the clear flows command
func (h *ClearFlowsHandler) Handle(ctx context.Context, cmd commands.ClearFlowsCommand) error {
	count, err := h.flowRepo.Count(ctx)
	if err != nil {
		return err
	}

	if err := h.flowRepo.Clear(ctx); err != nil {
		return err
	}

	h.metrics.FlowsDeleted.Add(float64(count))
	h.logger.Info("Flows cleared", zap.Int("count", count))
	return nil
}
