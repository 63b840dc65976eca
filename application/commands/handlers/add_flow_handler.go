package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"
	"go.uber.org/zap"
)

// AddFlowHandler orchestrates the validated construction path: raw input
// through the input validator, then into the cap-checked collection.
type AddFlowHandler struct {
	flowRepo  ports.FlowRepository
	validator *validators.InputValidator
	metrics   *observability.Collector
	logger    *zap.Logger
}

// NewAddFlowHandler creates a new add flow handler
func NewAddFlowHandler(
	flowRepo ports.FlowRepository,
	validator *validators.InputValidator,
	metrics *observability.Collector,
	logger *zap.Logger,
) *AddFlowHandler {
	return &AddFlowHandler{
		flowRepo:  flowRepo,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle executes the add flow command. Invalid input is not an error:
// the validation result carries what the UI needs to show. The returned
// error covers collection caps and infrastructure failures only.
func (h *AddFlowHandler) Handle(ctx context.Context, cmd commands.AddFlowCommand) (*entities.Flow, validators.ValidationResult, error) {
	input := validators.FlowInput{
		Source: cmd.Source,
		Target: cmd.Target,
		Value:  cmd.Value,
	}

	flow, result := h.validator.CreateFlowData(input)
	if !result.IsValid {
		h.metrics.FlowsRejected.Inc()
		h.logger.Debug("Flow input rejected",
			zap.Strings("errors", result.Errors),
			zap.Strings("warnings", result.Warnings),
		)
		return nil, result, nil
	}

	if err := h.flowRepo.Add(ctx, flow); err != nil {
		h.metrics.FlowsRejected.Inc()
		return nil, result, fmt.Errorf("failed to add flow: %w", err)
	}

	h.metrics.FlowsAdded.Inc()
	h.logger.Info("Flow added",
		zap.String("flowID", flow.ID().String()),
		zap.String("source", flow.Source()),
		zap.String("target", flow.Target()),
		zap.Float64("value", flow.Value()),
	)

	return flow, result, nil
}
