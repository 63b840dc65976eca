package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_StatusCodeFromType(t *testing.T) {
	tests := []struct {
		errorType DomainErrorType
		want      int
	}{
		{DomainValidationError, 400},
		{DomainBusinessRuleError, 422},
		{DomainNotFoundError, 404},
		{DomainContractError, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			err := NewDomainError(tt.errorType, "CODE", "message")
			assert.Equal(t, tt.want, err.StatusCode)
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler failed: %w", ErrFlowNotFound.WithDetail("flow_id", "abc"))

	assert.True(t, stderrors.Is(wrapped, ErrFlowNotFound))
	assert.False(t, stderrors.Is(wrapped, ErrNodeLimitExceeded))
}

func TestDomainError_SentinelsStayImmutable(t *testing.T) {
	derived := ErrFlowNotFound.WithDetail("flow_id", "abc").WithStatusCode(410)

	assert.Equal(t, "abc", derived.Details["flow_id"])
	assert.Equal(t, 410, derived.StatusCode)

	// The shared sentinel must not have picked up the detail or status
	assert.NotContains(t, ErrFlowNotFound.Details, "flow_id")
	assert.Equal(t, 404, ErrFlowNotFound.StatusCode)
}

func TestDomainError_WithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := ErrNilFlows.WithCause(cause)

	assert.ErrorIs(t, err, ErrNilFlows)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, ErrNilFlows.Cause)
}

func TestLimitErrorsCarryConfiguredCaps(t *testing.T) {
	err := NodeLimitExceeded(10)
	assert.True(t, stderrors.Is(err, ErrNodeLimitExceeded))
	assert.Contains(t, err.Message, "Maximum of 10 nodes")
	assert.Equal(t, 10, err.Details["limit"])

	err = ConnectionLimitExceeded(30)
	assert.True(t, stderrors.Is(err, ErrConnectionLimitExceeded))
	assert.Contains(t, err.Message, "Maximum of 30 connections")

	// The shared sentinels keep the default caps
	assert.Contains(t, ErrNodeLimitExceeded.Message, "Maximum of 50 nodes")
	assert.Contains(t, ErrConnectionLimitExceeded.Message, "Maximum of 100 connections")
}

func TestValidationErrors(t *testing.T) {
	ve := NewValidationErrors()
	assert.False(t, ve.HasErrors())
	assert.Empty(t, ve.Error())

	ve.Add("source", "Source is required")
	ve.Add("source", "Source must be text")
	ve.Add("value", "Value must be positive")
	require.True(t, ve.HasErrors())

	assert.Equal(t, []string{
		"Source is required",
		"Source must be text",
		"Value must be positive",
	}, ve.Messages())
	assert.Contains(t, ve.Error(), "Validation failed:")

	fields := ve.ToMap()
	assert.Equal(t, []string{"Source is required", "Source must be text"}, fields["source"])
	assert.Equal(t, []string{"Value must be positive"}, fields["value"])
}

func TestValidationErrors_ToMapWithoutField(t *testing.T) {
	ve := NewValidationErrors()
	ve.AddError(NewDomainError(DomainValidationError, "BAD", "something is off"))

	fields := ve.ToMap()
	assert.Equal(t, []string{"something is off"}, fields["general"])
}
