package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/commands/bus"
	commands_handlers "github.com/kik369/sankey-kiro-app-sub000/application/commands/handlers"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	querybus "github.com/kik369/sankey-kiro-app-sub000/application/queries/bus"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/common"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FlowHandler handles flow-related HTTP requests
type FlowHandler struct {
	addFlow        *commands_handlers.AddFlowHandler
	commandBus     *bus.CommandBus
	queryBus       *querybus.QueryBus
	inputValidator *validators.InputValidator
	errorHandler   *pkgerrors.ErrorHandler
	logger         *zap.Logger
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(
	addFlow *commands_handlers.AddFlowHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	inputValidator *validators.InputValidator,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *FlowHandler {
	return &FlowHandler{
		addFlow:        addFlow,
		commandBus:     commandBus,
		queryBus:       queryBus,
		inputValidator: inputValidator,
		errorHandler:   errorHandler,
		logger:         logger,
	}
}

// AddFlowRequest represents the request body for adding a flow. Fields
// are untyped so that the domain validator reports type mismatches as
// validation messages instead of JSON decode failures.
type AddFlowRequest struct {
	Source interface{} `json:"source"`
	Target interface{} `json:"target"`
	Value  interface{} `json:"value"`
}

// UpdateFlowValueRequest represents the request body for a value update
type UpdateFlowValueRequest struct {
	Value float64 `json:"value" validate:"required,gt=0"`
}

// AddFlowResponse represents the response for adding a flow
type AddFlowResponse struct {
	Flow       queries.FlowView            `json:"flow"`
	Validation validators.ValidationResult `json:"validation"`
}

// AddFlow handles POST /flows
func (h *FlowHandler) AddFlow(w http.ResponseWriter, r *http.Request) {
	var req AddFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.AddFlowCommand{
		Source: req.Source,
		Target: req.Target,
		Value:  req.Value,
	}

	flow, result, err := h.addFlow.Handle(r.Context(), cmd)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if !result.IsValid {
		common.RespondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"validation": result,
		})
		return
	}

	common.RespondJSON(w, http.StatusCreated, AddFlowResponse{
		Flow:       queries.NewFlowView(flow),
		Validation: result,
	})
}

// ListFlows handles GET /flows
func (h *FlowHandler) ListFlows(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListFlowsQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateFlowValue handles PUT /flows/{flowID}
func (h *FlowHandler) UpdateFlowValue(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "flowID")
	if flowID == "" {
		common.RespondError(w, http.StatusBadRequest, "FLOW_ID_REQUIRED", "Flow ID is required")
		return
	}

	var req UpdateFlowValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cmd := commands.UpdateFlowValueCommand{FlowID: flowID, Value: req.Value}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":    flowID,
		"value": req.Value,
	})
}

// DeleteFlow handles DELETE /flows/{flowID}
func (h *FlowHandler) DeleteFlow(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "flowID")
	if flowID == "" {
		common.RespondError(w, http.StatusBadRequest, "FLOW_ID_REQUIRED", "Flow ID is required")
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.DeleteFlowCommand{FlowID: flowID}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearFlows handles DELETE /flows
func (h *FlowHandler) ClearFlows(w http.ResponseWriter, r *http.Request) {
	if err := h.commandBus.Send(r.Context(), commands.ClearFlowsCommand{}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ValidateInput handles POST /flows/validate. Nothing is stored; the
// response carries the validation errors and warnings for the input.
func (h *FlowHandler) ValidateInput(w http.ResponseWriter, r *http.Request) {
	var req AddFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	result := h.inputValidator.Validate(validators.FlowInput{
		Source: req.Source,
		Target: req.Target,
		Value:  req.Value,
	})

	common.RespondJSON(w, http.StatusOK, result)
}

// ValidateCollection handles GET /flows/validate
func (h *FlowHandler) ValidateCollection(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ValidateCollectionQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// FindDuplicates handles GET /flows/duplicates
func (h *FlowHandler) FindDuplicates(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.FindDuplicatesQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
