package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// FlowID is a value object representing a unique flow identifier
// Value objects are immutable and have no identity beyond their value
type FlowID struct {
	value string
}

// NewFlowID creates a new random FlowID
func NewFlowID() FlowID {
	return FlowID{value: uuid.New().String()}
}

// NewFlowIDFromString creates a FlowID from an existing string
func NewFlowIDFromString(id string) (FlowID, error) {
	if id == "" {
		return FlowID{}, errors.New("flow ID cannot be empty")
	}
	if !isValidUUID(id) {
		return FlowID{}, errors.New("flow ID must be a valid UUID")
	}
	return FlowID{value: id}, nil
}

// String returns the string representation of the FlowID
func (id FlowID) String() string {
	return id.value
}

// Equals checks if two FlowIDs are equal
func (id FlowID) Equals(other FlowID) bool {
	return id.value == other.value
}

// IsZero checks if the FlowID is the zero value
func (id FlowID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id FlowID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *FlowID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("FlowID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
