package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"go.uber.org/zap"
)

// UpdateFlowValueHandler handles flow value edits
type UpdateFlowValueHandler struct {
	flowRepo ports.FlowRepository
	logger   *zap.Logger
}

// NewUpdateFlowValueHandler creates a new update flow value handler
func NewUpdateFlowValueHandler(flowRepo ports.FlowRepository, logger *zap.Logger) *UpdateFlowValueHandler {
	return &UpdateFlowValueHandler{
		flowRepo: flowRepo,
		logger:   logger,
	}
}

// Handle executes the update flow value command
func (h *UpdateFlowValueHandler) Handle(ctx context.Context, cmd commands.UpdateFlowValueCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	flowID, err := valueobjects.NewFlowIDFromString(cmd.FlowID)
	if err != nil {
		return fmt.Errorf("invalid flow ID: %w", err)
	}

	if err := h.flowRepo.UpdateValue(ctx, flowID, cmd.Value); err != nil {
		return err
	}

	h.logger.Info("Flow value updated",
		zap.String("flowID", cmd.FlowID),
		zap.Float64("value", cmd.Value),
	)
	return nil
}
