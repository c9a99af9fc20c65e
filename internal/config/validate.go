package config

import (
	"fmt"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

// ValidationError represents a validation error with field information
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Validator provides validation functionality for configuration
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are any validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// Error returns validation errors as a single error
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return v.errors
}

// Validate validates the configuration using a validator
func (c *Config) Validate() error {
	v := NewValidator()

	if c.App.Name == "" {
		v.AddError("app.name", "is required")
	} else if len(c.App.Name) > 50 {
		v.AddError("app.name", "must be at most 50 characters")
	}

	if strings.ContainsAny(c.App.Name, " \t\n\r") {
		v.AddError("app.name", "must not contain whitespace")
	}

	if v.HasErrors() {
		return apperrors.Wrap("config.Validate", v.Error())
	}

	return nil
}
