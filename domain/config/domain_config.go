package config

import "fmt"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Collection caps, enforced as reportable validation failures
	MaxNodes       int
	MaxConnections int

	// Node name constraints
	NameWarnLength int
	NameMaxLength  int

	// Value constraints
	MaxValue          float64
	LargeValueWarn    float64
	SmallValueWarn    float64
	MaxFractionDigits int

	// Theme preference
	DefaultTheme string
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxNodes:       50,
		MaxConnections: 100,

		NameWarnLength: 50,
		NameMaxLength:  100,

		MaxValue:          1e12,
		LargeValueWarn:    1e8,
		SmallValueWarn:    0.001,
		MaxFractionDigits: 6,

		DefaultTheme: "dark",
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.MaxNodes <= 0 {
		return fmt.Errorf("MaxNodes must be positive, got %d", c.MaxNodes)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("MaxConnections must be positive, got %d", c.MaxConnections)
	}
	if c.NameWarnLength > c.NameMaxLength {
		return fmt.Errorf("NameWarnLength %d exceeds NameMaxLength %d", c.NameWarnLength, c.NameMaxLength)
	}
	if c.LargeValueWarn >= c.MaxValue {
		return fmt.Errorf("LargeValueWarn %g must be below MaxValue %g", c.LargeValueWarn, c.MaxValue)
	}
	return nil
}
