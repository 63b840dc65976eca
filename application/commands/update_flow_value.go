package commands

import "errors"

// UpdateFlowValueCommand represents the command to replace the value of
// an existing flow
type UpdateFlowValueCommand struct {
	FlowID string  `json:"flow_id" validate:"required"`
	Value  float64 `json:"value" validate:"required"`
}

// Validate validates the command
func (c UpdateFlowValueCommand) Validate() error {
	if c.FlowID == "" {
		return errors.New("flow ID is required")
	}
	return nil
}
