package errors

import (
	"fmt"
	"strings"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates input validation failure
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainBusinessRuleError indicates a business rule violation
	DomainBusinessRuleError DomainErrorType = "BUSINESS_RULE_ERROR"

	// DomainNotFoundError indicates a resource was not found
	DomainNotFoundError DomainErrorType = "NOT_FOUND"

	// DomainContractError indicates a programming contract violation,
	// such as unvalidated data reaching the transformer
	DomainContractError DomainErrorType = "CONTRACT_ERROR"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type       DomainErrorType        `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StatusCode int                    `json:"status_code"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		StatusCode: domainErrorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// clone copies the error so the shared sentinel values stay immutable
func (e *DomainError) clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		Details:    details,
		Cause:      e.Cause,
		StatusCode: e.StatusCode,
	}
}

// WithCause returns a copy of the error with a cause attached
func (e *DomainError) WithCause(cause error) *DomainError {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithDetail returns a copy of the error with a detail added
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	c := e.clone()
	c.Details[key] = value
	return c
}

// WithStatusCode returns a copy of the error with a custom HTTP status
func (e *DomainError) WithStatusCode(code int) *DomainError {
	c := e.clone()
	c.StatusCode = code
	return c
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// domainErrorTypeToStatusCode maps error types to HTTP status codes
func domainErrorTypeToStatusCode(errorType DomainErrorType) int {
	switch errorType {
	case DomainValidationError:
		return 400 // Bad Request
	case DomainBusinessRuleError:
		return 422 // Unprocessable Entity
	case DomainNotFoundError:
		return 404 // Not Found
	case DomainContractError:
		return 500 // Internal Server Error
	default:
		return 500 // Internal Server Error
	}
}

// Common domain errors - these are pre-defined errors that can be reused

var (
	// Flow errors
	ErrFlowNotFound = NewDomainError(
		DomainNotFoundError,
		"FLOW_NOT_FOUND",
		"The requested flow does not exist",
	)

	ErrFlowSourceRequired = NewDomainError(
		DomainValidationError,
		"FLOW_SOURCE_REQUIRED",
		"Flow source node is required",
	)

	ErrFlowTargetRequired = NewDomainError(
		DomainValidationError,
		"FLOW_TARGET_REQUIRED",
		"Flow target node is required",
	)

	ErrSelfReferentialFlow = NewDomainError(
		DomainBusinessRuleError,
		"SELF_REFERENTIAL_FLOW",
		"Source and target must be different nodes",
	)

	ErrFlowValueNotPositive = NewDomainError(
		DomainValidationError,
		"FLOW_VALUE_NOT_POSITIVE",
		"Flow value must be greater than zero",
	)

	ErrFlowValueNotFinite = NewDomainError(
		DomainValidationError,
		"FLOW_VALUE_NOT_FINITE",
		"Flow value must be a finite number",
	)

	// Collection errors
	ErrNodeLimitExceeded = NewDomainError(
		DomainBusinessRuleError,
		"NODE_LIMIT_EXCEEDED",
		"Maximum of 50 nodes allowed for optimal performance",
	).WithDetail("limit", 50)

	ErrConnectionLimitExceeded = NewDomainError(
		DomainBusinessRuleError,
		"CONNECTION_LIMIT_EXCEEDED",
		"Maximum of 100 connections allowed for optimal performance",
	).WithDetail("limit", 100)

	// Transformer errors
	ErrNilFlows = NewDomainError(
		DomainContractError,
		"NIL_FLOWS",
		"Flows cannot be nil",
	)
)

// NodeLimitExceeded returns the node ceiling error with the message
// formatted from the configured cap. errors.Is still matches
// ErrNodeLimitExceeded.
func NodeLimitExceeded(limit int) *DomainError {
	e := ErrNodeLimitExceeded.clone()
	e.Message = fmt.Sprintf("Maximum of %d nodes allowed for optimal performance", limit)
	e.Details["limit"] = limit
	return e
}

// ConnectionLimitExceeded returns the connection ceiling error with the
// message formatted from the configured cap
func ConnectionLimitExceeded(limit int) *DomainError {
	e := ErrConnectionLimitExceeded.clone()
	e.Message = fmt.Sprintf("Maximum of %d connections allowed for optimal performance", limit)
	e.Details["limit"] = limit
	return e
}

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error
func (v *ValidationErrors) Add(field string, message string) {
	err := NewDomainError(DomainValidationError, "FIELD_VALIDATION_ERROR", message).
		WithDetail("field", field)
	v.Errors = append(v.Errors, err)
}

// AddError adds a pre-existing domain error
func (v *ValidationErrors) AddError(err *DomainError) {
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}

// Messages returns the plain error messages in order
func (v *ValidationErrors) Messages() []string {
	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ToMap converts validation errors to a map for JSON serialization
func (v *ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, err := range v.Errors {
		field, ok := err.Details["field"].(string)
		if !ok {
			field = "general"
		}

		if _, exists := result[field]; !exists {
			result[field] = make([]string, 0)
		}
		result[field] = append(result[field], err.Message)
	}

	return result
}
