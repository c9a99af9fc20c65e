package render

import (
	"regexp"
	"strings"
)

var (
	nonWordChars   = regexp.MustCompile(`[^\w\s]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// ToSnakeCase strips characters that are neither word characters nor
// whitespace, collapses whitespace runs to single underscores, and
// lower-cases the result. "Hello World!" becomes "hello_world".
func ToSnakeCase(text string) string {
	text = nonWordChars.ReplaceAllString(text, "")
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRuns.ReplaceAllString(text, "_")
}

// ToPascalCase converts text to PascalCase via its snake_case form.
func ToPascalCase(text string) string {
	var sb strings.Builder
	for _, word := range strings.Split(ToSnakeCase(text), "_") {
		sb.WriteString(capitalize(word))
	}
	return sb.String()
}

// ToCamelCase converts text to camelCase: PascalCase with the first
// segment left lower-case.
func ToCamelCase(text string) string {
	words := strings.Split(ToSnakeCase(text), "_")
	var sb strings.Builder
	sb.WriteString(words[0])
	for _, word := range words[1:] {
		sb.WriteString(capitalize(word))
	}
	return sb.String()
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
