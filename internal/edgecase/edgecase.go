// Package edgecase detects commonly-forgotten test scenarios in
// requirement text using a keyword rule table.
//
// Matching is intentionally coarse: a case-insensitive substring search
// per rule, not semantic analysis. The goal is to nudge a requirement
// author (or an LLM prompt) toward known pitfalls, not to understand
// the requirement.
package edgecase

import (
	"regexp"
	"sort"
	"strings"
)

// Rule associates a keyword pattern with the edge-case hints it triggers.
type Rule struct {
	Label   string         // Human-readable category label
	Pattern *regexp.Regexp // Matched against lower-cased requirement text
	Hints   []string
}

// UniversalCategory is the label of the always-present hint bucket in
// the categorized view.
const UniversalCategory = "Universal"

// Category is one bucket of the categorized view.
type Category struct {
	Name  string
	Hints []string
}

// Categories is an ordered list of category buckets. Order follows the
// rule table, with the Universal bucket last.
type Categories []Category

// Get returns the hints for a category name.
func (c Categories) Get(name string) ([]string, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Hints, true
		}
	}
	return nil, false
}

// Analyzer scans requirement text against a fixed rule table.
// The zero value is not usable; construct with New or NewWithRules.
// An Analyzer is read-only after construction and safe for concurrent use.
type Analyzer struct {
	rules     []Rule
	universal []string
}

// New returns an Analyzer with the built-in rule table.
func New() *Analyzer {
	return NewWithRules(DefaultRules(), UniversalHints())
}

// NewWithRules returns an Analyzer over a caller-supplied rule table.
func NewWithRules(rules []Rule, universal []string) *Analyzer {
	return &Analyzer{
		rules:     rules,
		universal: universal,
	}
}

// Detect returns the edge-case hints for a requirement, deduplicated
// and sorted ascending. The universal hints are always included, so
// empty or non-matching text yields exactly the universal set.
func (a *Analyzer) Detect(requirement string) []string {
	lower := strings.ToLower(requirement)

	seen := make(map[string]struct{})
	for _, rule := range a.rules {
		if rule.Pattern.MatchString(lower) {
			for _, hint := range rule.Hints {
				seen[hint] = struct{}{}
			}
		}
	}
	for _, hint := range a.universal {
		seen[hint] = struct{}{}
	}

	hints := make([]string, 0, len(seen))
	for hint := range seen {
		hints = append(hints, hint)
	}
	sort.Strings(hints)
	return hints
}

// DetectByCategory returns matching hints grouped under each rule's
// label, in rule-table order, with the universal hints appended under
// the Universal label. Unlike Detect, hints are not deduplicated across
// categories: a hint triggered by two rules appears in both buckets.
func (a *Analyzer) DetectByCategory(requirement string) Categories {
	lower := strings.ToLower(requirement)

	var categorized Categories
	for _, rule := range a.rules {
		if rule.Pattern.MatchString(lower) {
			categorized = append(categorized, Category{
				Name:  rule.Label,
				Hints: append([]string(nil), rule.Hints...),
			})
		}
	}

	categorized = append(categorized, Category{
		Name:  UniversalCategory,
		Hints: append([]string(nil), a.universal...),
	})
	return categorized
}
