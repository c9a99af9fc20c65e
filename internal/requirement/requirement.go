// Package requirement loads requirement text and derives a feature
// name from it for use as a document header.
package requirement

import (
	"bufio"
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

// DefaultFeatureName is used when no feature name can be derived.
const DefaultFeatureName = "Feature"

var (
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	titleLabelPattern = regexp.MustCompile(`^(?i)(title|feature)\s*:\s*`)
)

// LoadFile reads requirement text from a file.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.Wrapf("requirement.LoadFile", apperrors.ErrNotFound, "input file not found: %s", path)
		}
		return "", apperrors.Wrap("requirement.LoadFile", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", apperrors.Wrapf("requirement.LoadFile", apperrors.ErrInvalidInput, "input file is empty: %s", path)
	}
	return string(data), nil
}

// ReadInteractive reads requirement lines from r until a blank line or
// EOF. It takes a *bufio.Reader so callers can keep reading from the
// same stream afterwards. Returns ErrInvalidInput when nothing was
// entered.
func ReadInteractive(r *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		lines = append(lines, trimmed)
		if err != nil {
			break
		}
	}

	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return "", apperrors.New("requirement.ReadInteractive", apperrors.ErrInvalidInput, "no requirement provided")
	}
	return text, nil
}

// ExtractFeatureName derives a short feature name from requirement
// text: the first Markdown heading if present, otherwise the first
// non-empty line. A leading "Title:" or "Feature:" label is stripped.
// Falls back to DefaultFeatureName for empty text.
func ExtractFeatureName(text string) string {
	if m := headingPattern.FindStringSubmatch(text); len(m) == 2 {
		if name := cleanFeatureName(m[1]); name != "" {
			return name
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name := cleanFeatureName(line); name != "" {
			return name
		}
	}
	return DefaultFeatureName
}

func cleanFeatureName(line string) string {
	line = strings.TrimSpace(line)
	line = titleLabelPattern.ReplaceAllString(line, "")
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")
	return line
}
