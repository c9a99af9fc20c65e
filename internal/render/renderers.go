package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

func scenarioName(tc TestCase, fallback string) string {
	if strings.TrimSpace(tc.Name) == "" {
		return fallback
	}
	return tc.Name
}

func renderGherkin(cases []TestCase, featureName string) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Feature: %s\n\n", featureName))

	for _, tc := range cases {
		sb.WriteString(fmt.Sprintf("  Scenario: %s\n", scenarioName(tc, "Unnamed Scenario")))
		for _, given := range tc.Given {
			sb.WriteString(fmt.Sprintf("    Given %s\n", given))
		}
		for _, when := range tc.When {
			sb.WriteString(fmt.Sprintf("    When %s\n", when))
		}
		for _, then := range tc.Then {
			sb.WriteString(fmt.Sprintf("    Then %s\n", then))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func renderPytest(cases []TestCase, featureName string) (string, error) {
	var sb strings.Builder
	sb.WriteString("\"\"\"\n")
	sb.WriteString(fmt.Sprintf("Test cases for %s\n", featureName))
	sb.WriteString("\"\"\"\n\n")
	sb.WriteString("import pytest\n\n")

	for _, tc := range cases {
		name := scenarioName(tc, "unnamed")
		sb.WriteString(fmt.Sprintf("\ndef test_%s():\n", ToSnakeCase(name)))
		sb.WriteString("    \"\"\"\n")
		sb.WriteString(fmt.Sprintf("    %s\n", name))
		sb.WriteString("    \"\"\"\n")

		sb.WriteString("    # Arrange\n")
		for _, given := range tc.Given {
			sb.WriteString(fmt.Sprintf("    # %s\n", given))
		}
		sb.WriteString("\n    # Act\n")
		for _, when := range tc.When {
			sb.WriteString(fmt.Sprintf("    # %s\n", when))
		}
		sb.WriteString("\n    # Assert\n")
		for _, then := range tc.Then {
			sb.WriteString(fmt.Sprintf("    # %s\n", then))
		}
		sb.WriteString("    assert True  # TODO: Implement assertion\n")
	}

	return sb.String(), nil
}

func renderTestNG(cases []TestCase, featureName string) (string, error) {
	var sb strings.Builder
	sb.WriteString("import org.testng.Assert;\n")
	sb.WriteString("import org.testng.annotations.Test;\n\n")
	sb.WriteString(fmt.Sprintf("public class %sTest {\n\n", ToPascalCase(featureName)))

	for _, tc := range cases {
		name := scenarioName(tc, "Unnamed")
		sb.WriteString("    @Test\n")
		sb.WriteString(fmt.Sprintf("    public void test%s() {\n", ToPascalCase(name)))
		sb.WriteString(fmt.Sprintf("        // %s\n\n", name))

		sb.WriteString("        // Arrange\n")
		for _, given := range tc.Given {
			sb.WriteString(fmt.Sprintf("        // %s\n", given))
		}
		sb.WriteString("\n        // Act\n")
		for _, when := range tc.When {
			sb.WriteString(fmt.Sprintf("        // %s\n", when))
		}
		sb.WriteString("\n        // Assert\n")
		for _, then := range tc.Then {
			sb.WriteString(fmt.Sprintf("        // %s\n", then))
		}
		sb.WriteString("        Assert.assertTrue(true); // TODO: Implement\n")
		sb.WriteString("    }\n\n")
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

func renderPlain(cases []TestCase, featureName string) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Test Cases for: %s\n", featureName))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, tc := range cases {
		sb.WriteString(fmt.Sprintf("Test Case #%d: %s\n", i+1, scenarioName(tc, "Unnamed")))
		sb.WriteString(strings.Repeat("-", 40) + "\n")

		if len(tc.Given) > 0 {
			sb.WriteString("Preconditions:\n")
			for _, given := range tc.Given {
				sb.WriteString(fmt.Sprintf("  • %s\n", given))
			}
		}
		if len(tc.When) > 0 {
			sb.WriteString("Steps:\n")
			for j, when := range tc.When {
				sb.WriteString(fmt.Sprintf("  %d. %s\n", j+1, when))
			}
		}
		if len(tc.Then) > 0 {
			sb.WriteString("Expected Results:\n")
			for _, then := range tc.Then {
				sb.WriteString(fmt.Sprintf("  ✓ %s\n", then))
			}
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func renderJSON(cases []TestCase, featureName string) (string, error) {
	suite := Suite{
		Feature:   featureName,
		TestCases: cases,
	}
	if suite.TestCases == nil {
		suite.TestCases = []TestCase{}
	}

	data, err := json.MarshalIndent(suite, "", "  ")
	if err != nil {
		return "", apperrors.Wrap("render.renderJSON", err)
	}
	return string(data), nil
}
