package commands

// AddFlowCommand represents the command to validate raw flow input and,
// when it passes, add the resulting flow to the collection. The fields
// stay untyped because nothing from the UI boundary is trusted before
// the input validator has run.
type AddFlowCommand struct {
	Source interface{} `json:"source"`
	Target interface{} `json:"target"`
	Value  interface{} `json:"value"`
}

// Validate implements the command contract. Field-level validation is
// the domain input validator's job; the command itself is always
// dispatchable.
func (c AddFlowCommand) Validate() error {
	return nil
}
