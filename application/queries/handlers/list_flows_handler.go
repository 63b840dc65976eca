package handlers

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/domain/services"
	"go.uber.org/zap"
)

// ListFlowsHandler handles flow listing queries
type ListFlowsHandler struct {
	flowRepo ports.FlowRepository
	logger   *zap.Logger
}

// NewListFlowsHandler creates a new list flows handler
func NewListFlowsHandler(flowRepo ports.FlowRepository, logger *zap.Logger) *ListFlowsHandler {
	return &ListFlowsHandler{
		flowRepo: flowRepo,
		logger:   logger,
	}
}

// Handle executes the list flows query
func (h *ListFlowsHandler) Handle(ctx context.Context, query queries.ListFlowsQuery) (*queries.ListFlowsResult, error) {
	flows, err := h.flowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	views := make([]queries.FlowView, 0, len(flows))
	for _, flow := range flows {
		views = append(views, queries.NewFlowView(flow))
	}

	return &queries.ListFlowsResult{
		Flows: views,
		Count: len(views),
	}, nil
}

// GetSummaryHandler handles summary statistic queries
type GetSummaryHandler struct {
	flowRepo    ports.FlowRepository
	transformer *services.SankeyTransformer
}

// NewGetSummaryHandler creates a new summary handler
func NewGetSummaryHandler(flowRepo ports.FlowRepository, transformer *services.SankeyTransformer) *GetSummaryHandler {
	return &GetSummaryHandler{
		flowRepo:    flowRepo,
		transformer: transformer,
	}
}

// Handle executes the summary query
func (h *GetSummaryHandler) Handle(ctx context.Context, query queries.GetSummaryQuery) (*services.SankeySummary, error) {
	flows, err := h.flowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	summary := h.transformer.Summarize(flows)
	return &summary, nil
}

// FindDuplicatesHandler handles duplicate detection queries
type FindDuplicatesHandler struct {
	flowRepo ports.FlowRepository
}

// NewFindDuplicatesHandler creates a new duplicate detection handler
func NewFindDuplicatesHandler(flowRepo ports.FlowRepository) *FindDuplicatesHandler {
	return &FindDuplicatesHandler{flowRepo: flowRepo}
}

// Handle executes the duplicate detection query
func (h *FindDuplicatesHandler) Handle(ctx context.Context, query queries.FindDuplicatesQuery) (*queries.FindDuplicatesResult, error) {
	flows, err := h.flowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	groups := validators.FindDuplicates(flows)
	viewGroups := make([][]queries.FlowView, 0, len(groups))
	for _, group := range groups {
		views := make([]queries.FlowView, 0, len(group))
		for _, flow := range group {
			views = append(views, queries.NewFlowView(flow))
		}
		viewGroups = append(viewGroups, views)
	}

	return &queries.FindDuplicatesResult{
		Groups: viewGroups,
		Count:  len(viewGroups),
	}, nil
}

// GetThemeHandler handles theme preference queries
type GetThemeHandler struct {
	prefRepo ports.PreferenceRepository
}

// NewGetThemeHandler creates a new theme handler
func NewGetThemeHandler(prefRepo ports.PreferenceRepository) *GetThemeHandler {
	return &GetThemeHandler{prefRepo: prefRepo}
}

// Handle executes the theme query. Absent or unrecognized stored values
// resolve to the default theme, never an error.
func (h *GetThemeHandler) Handle(ctx context.Context, query queries.GetThemeQuery) (*queries.GetThemeResult, error) {
	stored, found, err := h.prefRepo.Get(ctx, ports.PreferenceKeyTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme preference: %w", err)
	}

	theme := valueobjects.DefaultTheme
	if found {
		theme = valueobjects.ParseTheme(stored)
	}

	return &queries.GetThemeResult{Theme: theme.String()}, nil
}
