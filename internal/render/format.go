// Package render converts test-case records into textual documents.
//
// Every format is deterministic: the same records, format, and feature
// name always produce byte-identical output. Records are never mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

// Format identifies a target output format. Tokens are case-sensitive.
type Format string

const (
	FormatGherkin Format = "gherkin"
	FormatPytest  Format = "pytest"
	FormatTestNG  Format = "testng"
	FormatPlain   Format = "plain"
	FormatJSON    Format = "json"
)

// formats lists the supported formats in presentation order.
var formats = []Format{FormatGherkin, FormatPytest, FormatTestNG, FormatPlain, FormatJSON}

// renderers maps each format to its renderer. A switch would work too,
// but the map keeps Formats and the dispatch in one place.
var renderers = map[Format]func([]TestCase, string) (string, error){
	FormatGherkin: renderGherkin,
	FormatPytest:  renderPytest,
	FormatTestNG:  renderTestNG,
	FormatPlain:   renderPlain,
	FormatJSON:    renderJSON,
}

// fileExtensions maps each format to its conventional file extension.
var fileExtensions = map[Format]string{
	FormatGherkin: ".feature",
	FormatPytest:  ".py",
	FormatTestNG:  ".java",
	FormatPlain:   ".txt",
	FormatJSON:    ".json",
}

// Formats returns the supported format tokens in presentation order.
func Formats() []string {
	tokens := make([]string, len(formats))
	for i, f := range formats {
		tokens[i] = string(f)
	}
	return tokens
}

// IsValid reports whether f is a supported format token.
func (f Format) IsValid() bool {
	_, ok := renderers[f]
	return ok
}

// Extension returns the conventional file extension for f, or ".txt"
// when f is not a supported format.
func (f Format) Extension() string {
	if ext, ok := fileExtensions[f]; ok {
		return ext
	}
	return ".txt"
}

// UnsupportedFormatError reports a format token outside the supported
// set, along with the valid tokens.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

// Error implements the error interface
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q: use one of [%s]", e.Format, strings.Join(e.Supported, ", "))
}

// Unwrap marks the error as an invalid-input condition.
func (e *UnsupportedFormatError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// Render formats test cases into the requested format. An empty record
// list renders the format's boilerplate (header, envelope) only.
// Returns an UnsupportedFormatError for unknown format tokens.
func Render(cases []TestCase, format Format, featureName string) (string, error) {
	renderer, ok := renderers[format]
	if !ok {
		return "", &UnsupportedFormatError{
			Format:    string(format),
			Supported: Formats(),
		}
	}
	return renderer(cases, featureName)
}
