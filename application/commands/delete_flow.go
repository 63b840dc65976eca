package commands

import "errors"

// DeleteFlowCommand represents the command to remove one flow
type DeleteFlowCommand struct {
	FlowID string `json:"flow_id" validate:"required"`
}

// Validate validates the command
func (c DeleteFlowCommand) Validate() error {
	if c.FlowID == "" {
		return errors.New("flow ID is required")
	}
	return nil
}

// ClearFlowsCommand represents the command to remove every flow
type ClearFlowsCommand struct{}

// Validate validates the command
func (c ClearFlowsCommand) Validate() error {
	return nil
}
