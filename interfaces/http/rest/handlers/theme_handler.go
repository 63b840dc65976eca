package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/commands/bus"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	querybus "github.com/kik369/sankey-kiro-app-sub000/application/queries/bus"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/valueobjects"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/common"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"go.uber.org/zap"
)

// ThemeHandler handles theme preference HTTP requests
type ThemeHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ThemeHandler {
	return &ThemeHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// SetThemeRequest represents the request body for storing the theme
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET /theme
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetThemeQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// SetTheme handles PUT /theme. Unknown tags fall back to the default
// theme rather than erroring.
func (h *ThemeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.SetThemeCommand{Theme: req.Theme}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, queries.GetThemeResult{
		Theme: valueobjects.ParseTheme(req.Theme).String(),
	})
}
