package handlers

import (
	"net/http"

	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	querybus "github.com/kik369/sankey-kiro-app-sub000/application/queries/bus"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/common"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"go.uber.org/zap"
)

// SankeyHandler handles chart data HTTP requests
type SankeyHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewSankeyHandler creates a new Sankey handler
func NewSankeyHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *SankeyHandler {
	return &SankeyHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetSankeyData handles GET /sankey
func (h *SankeyHandler) GetSankeyData(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetSankeyDataQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetSummary handles GET /sankey/summary
func (h *SankeyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetSummaryQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
