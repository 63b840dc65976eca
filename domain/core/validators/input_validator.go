package validators

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
)

// FlowInput is the pre-validation shape of a flow as supplied by the UI
// boundary. All fields are untyped on purpose: nothing is trusted until
// the input validator has passed it, and only CreateFlowData converts it
// into a Flow entity.
type FlowInput struct {
	Source interface{} `json:"source"`
	Target interface{} `json:"target"`
	Value  interface{} `json:"value"`
}

// numberPattern is the accepted numeric grammar for text values:
// optional leading minus, digits, optional fraction, optional exponent.
// Locale formats ("10,5"), spaces and currency symbols are rejected.
var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)

// InputValidator validates raw flow input before any record is built
type InputValidator struct {
	cfg *config.DomainConfig
}

// NewInputValidator creates an input validator with default rules
func NewInputValidator() *InputValidator {
	return NewInputValidatorWithConfig(config.DefaultDomainConfig())
}

// NewInputValidatorWithConfig creates an input validator with custom rules
func NewInputValidatorWithConfig(cfg *config.DomainConfig) *InputValidator {
	return &InputValidator{cfg: cfg}
}

// Validate checks a raw (source, target, value) triple. All checks run so
// multiple errors can be reported together; only a failed numeric parse
// stops the remaining value checks, since there is nothing left to check.
func (v *InputValidator) Validate(input FlowInput) ValidationResult {
	b := &resultBuilder{}

	source, sourceOK := v.validateNodeName(b, "Source", input.Source)
	target, targetOK := v.validateNodeName(b, "Target", input.Target)

	if sourceOK && targetOK && strings.EqualFold(source, target) {
		b.addError("Source and target must be different nodes")
	}

	v.validateValue(b, input.Value)

	return b.result()
}

// validateNodeName checks one node name field and returns the trimmed
// name when it is usable for further checks
func (v *InputValidator) validateNodeName(b *resultBuilder, field string, raw interface{}) (string, bool) {
	name, ok := raw.(string)
	if !ok {
		b.addError(fmt.Sprintf("%s must be text", field))
		return "", false
	}

	trimmed := strings.TrimSpace(name)
	if name == "" {
		b.addError(fmt.Sprintf("%s is required", field))
		return "", false
	}
	if trimmed == "" {
		b.addError(fmt.Sprintf("%s cannot be only whitespace", field))
		return "", false
	}

	// Length limits count characters, not bytes
	if utf8.RuneCountInString(trimmed) > v.cfg.NameMaxLength {
		b.addError(fmt.Sprintf("%s is too long (maximum %d characters)", field, v.cfg.NameMaxLength))
	} else if utf8.RuneCountInString(trimmed) > v.cfg.NameWarnLength {
		b.addWarning(fmt.Sprintf("%s is quite long and may be truncated in the chart", field))
	}

	if strings.ContainsAny(name, `<>"'&`) {
		b.addWarning(fmt.Sprintf("%s contains special characters that may affect display", field))
	}

	return trimmed, true
}

// validateValue checks the value field across its accepted input types
func (v *InputValidator) validateValue(b *resultBuilder, raw interface{}) {
	switch val := raw.(type) {
	case nil:
		b.addError("Value is required")

	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			b.addError("Value is required")
			return
		}
		if isInfinityToken(trimmed) {
			b.addError("Value must be a finite number")
			return
		}
		if !numberPattern.MatchString(trimmed) {
			b.addError("Value must be a valid number")
			return
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			// The grammar matched, so a failure here is exponent overflow
			b.addError(fmt.Sprintf("Value is too large (maximum %g)", v.cfg.MaxValue))
			return
		}
		v.checkNumeric(b, parsed, fractionDigits(trimmed))

	case float64:
		v.checkNumericAny(b, val)
	case float32:
		v.checkNumericAny(b, float64(val))
	case int:
		v.checkNumeric(b, float64(val), 0)
	case int32:
		v.checkNumeric(b, float64(val), 0)
	case int64:
		v.checkNumeric(b, float64(val), 0)

	default:
		// Booleans, lists, objects and anything else are type errors,
		// never coerced
		b.addError("Value must be a number")
	}
}

// checkNumericAny handles already-numeric values whose literal form is
// unknown, deriving the fraction digit count from the shortest
// round-trip representation
func (v *InputValidator) checkNumericAny(b *resultBuilder, val float64) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		b.addError("Value must be a finite number")
		return
	}
	v.checkNumeric(b, val, fractionDigits(strconv.FormatFloat(val, 'f', -1, 64)))
}

// checkNumeric applies the range and precision rules to a parsed value
func (v *InputValidator) checkNumeric(b *resultBuilder, val float64, fracDigits int) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		b.addError("Value must be a finite number")
		return
	}

	if val <= 0 {
		b.addError("Value must be greater than zero")
		return
	}

	if val >= v.cfg.MaxValue {
		b.addError(fmt.Sprintf("Value is too large (maximum %g)", v.cfg.MaxValue))
		return
	}

	if val > v.cfg.LargeValueWarn {
		b.addWarning(fmt.Sprintf("Values above %g may affect chart readability", v.cfg.LargeValueWarn))
	}
	if val < v.cfg.SmallValueWarn {
		b.addWarning(fmt.Sprintf("Values below %g may be hard to see in the chart", v.cfg.SmallValueWarn))
	}
	if fracDigits > v.cfg.MaxFractionDigits {
		b.addWarning(fmt.Sprintf("Values with more than %d decimal places may be rounded", v.cfg.MaxFractionDigits))
	}
}

// CreateFlowData is the one-way checked conversion from raw input to a
// Flow entity. Invalid input yields the validation result and no flow.
func (v *InputValidator) CreateFlowData(input FlowInput) (*entities.Flow, ValidationResult) {
	result := v.Validate(input)
	if !result.IsValid {
		return nil, result
	}

	source := strings.TrimSpace(input.Source.(string))
	target := strings.TrimSpace(input.Target.(string))
	value, ok := numericValue(input.Value)
	if !ok {
		// Unreachable after a passing validation, kept as a contract check
		result.IsValid = false
		result.Errors = append(result.Errors, "Value must be a valid number")
		return nil, result
	}

	flow, err := entities.NewFlow(source, target, value)
	if err != nil {
		result.IsValid = false
		result.Errors = append(result.Errors, err.Error())
		return nil, result
	}

	return flow, result
}

// numericValue extracts a float64 from any accepted value representation
func numericValue(raw interface{}) (float64, bool) {
	switch val := raw.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

// isInfinityToken matches the spelled-out non-finite values JavaScript
// frontends tend to send as text
func isInfinityToken(s string) bool {
	switch strings.ToLower(s) {
	case "infinity", "-infinity", "+infinity", "nan":
		return true
	default:
		return false
	}
}

// fractionDigits counts digits after the decimal point in a numeric
// literal, ignoring any exponent part
func fractionDigits(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	frac := s[dot+1:]
	if e := strings.IndexAny(frac, "eE"); e >= 0 {
		frac = frac[:e]
	}
	return len(frac)
}
