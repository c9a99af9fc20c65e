package jira

import (
	"fmt"
	"strings"
)

// adfNode is one node of an Atlassian Document Format tree.
type adfNode struct {
	Type    string         `json:"type"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []adfNode      `json:"content,omitempty"`
}

// FlattenADF converts an ADF document to plain text. Paragraphs,
// lists, headings, and code blocks are preserved line-by-line; other
// block types are reduced to their text content.
func FlattenADF(doc *adfNode) string {
	if doc == nil {
		return ""
	}

	var lines []string
	for _, block := range doc.Content {
		switch block.Type {
		case "paragraph":
			lines = append(lines, extractText(&block))
		case "bulletList":
			for _, item := range block.Content {
				lines = append(lines, fmt.Sprintf("• %s", extractText(&item)))
			}
		case "orderedList":
			for i, item := range block.Content {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, extractText(&item)))
			}
		case "heading":
			level := 1
			if l, ok := block.Attrs["level"].(float64); ok && l >= 1 {
				level = int(l)
			}
			lines = append(lines, fmt.Sprintf("%s %s", strings.Repeat("#", level), extractText(&block)))
		case "codeBlock":
			lines = append(lines, fmt.Sprintf("```\n%s\n```", extractText(&block)))
		default:
			if text := extractText(&block); text != "" {
				lines = append(lines, text)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// extractText concatenates all text leaves under a node.
func extractText(node *adfNode) string {
	var sb strings.Builder
	for _, child := range node.Content {
		if child.Type == "text" {
			sb.WriteString(child.Text)
			continue
		}
		sb.WriteString(extractText(&child))
	}
	return sb.String()
}
