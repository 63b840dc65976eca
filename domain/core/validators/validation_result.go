package validators

// ValidationResult carries the outcome of a validation pass. Errors block
// downstream use of the data; warnings are advisory only and never affect
// IsValid. Validators return results rather than raising errors so the UI
// can surface every problem at once.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidResult returns a passing result with no errors or warnings
func ValidResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}}
}

// resultBuilder accumulates errors and warnings during a validation pass
type resultBuilder struct {
	errors   []string
	warnings []string
}

func (b *resultBuilder) addError(msg string) {
	b.errors = append(b.errors, msg)
}

func (b *resultBuilder) addWarning(msg string) {
	b.warnings = append(b.warnings, msg)
}

// result finalizes the accumulated state into a ValidationResult
func (b *resultBuilder) result() ValidationResult {
	errs := b.errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{
		IsValid:  len(b.errors) == 0,
		Errors:   errs,
		Warnings: b.warnings,
	}
}
