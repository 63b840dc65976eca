package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
)

// ValidateCollectionHandler checks the stored collection against the
// per-flow data rules and the node and connection caps
type ValidateCollectionHandler struct {
	flowRepo  ports.FlowRepository
	validator *validators.CollectionValidator
}

// NewValidateCollectionHandler creates a new collection validation handler
func NewValidateCollectionHandler(flowRepo ports.FlowRepository, validator *validators.CollectionValidator) *ValidateCollectionHandler {
	return &ValidateCollectionHandler{
		flowRepo:  flowRepo,
		validator: validator,
	}
}

// Handle executes the collection validation query
func (h *ValidateCollectionHandler) Handle(ctx context.Context, query queries.ValidateCollectionQuery) (*validators.ValidationResult, error) {
	flows, err := h.flowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	result := h.validator.Validate(flows)
	return &result, nil
}
