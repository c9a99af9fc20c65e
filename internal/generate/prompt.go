package generate

import (
	"fmt"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"google.golang.org/genai"
)

// formatInstructions holds the per-format output instructions appended
// to the prompt in pass-through mode.
var formatInstructions = map[render.Format]string{
	render.FormatGherkin: `Use Gherkin/BDD format:
Feature: [Feature Name]
  Scenario: [Scenario Name]
    Given [precondition]
    When [action]
    Then [expected result]`,

	render.FormatPytest: `Use Python pytest format:
def test_scenario_name():
    # Arrange
    ...
    # Act
    ...
    # Assert
    assert ...`,

	render.FormatTestNG: `Use Java TestNG format:
@Test
public void testScenarioName() {
    // Arrange
    // Act
    // Assert
}`,

	render.FormatPlain: `Use plain text format:
Test Case: [Name]
Preconditions: [Setup required]
Steps:
1. [Step 1]
2. [Step 2]
Expected Result: [What should happen]`,

	render.FormatJSON: `Use JSON format:
{
  "test_cases": [
    {
      "name": "...",
      "given": ["...", "..."],
      "when": ["...", "..."],
      "then": ["...", "..."]
    }
  ]
}`,
}

// structuredInstructions is used when the response is constrained by
// recordsResponseSchema instead of free text.
const structuredInstructions = `Return a JSON object with a "test_cases" array.
Each test case has "name" plus "given", "when", and "then" step lists.`

// buildPrompt assembles the full prompt: requirement, optional extra
// context, detected edge cases, and format instructions.
func buildPrompt(requirement string, opts Options, edgeCases []string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert QA engineer. Generate comprehensive test cases for the following requirement.\n\n")
	sb.WriteString("## Requirement:\n")
	sb.WriteString(requirement)
	sb.WriteString("\n\n")

	if strings.TrimSpace(opts.Context) != "" {
		sb.WriteString("## Additional Context:\n")
		sb.WriteString(opts.Context)
		sb.WriteString("\n\n")
	}

	if len(edgeCases) > 0 {
		sb.WriteString("## Edge Cases to Consider:\n")
		for _, ec := range edgeCases {
			sb.WriteString(fmt.Sprintf("- %s\n", ec))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Instructions:\n")
	sb.WriteString(fmt.Sprintf("1. Generate approximately %d test cases\n", opts.NumCases))
	sb.WriteString("2. Cover both happy path and negative scenarios\n")
	if len(edgeCases) > 0 {
		sb.WriteString("3. Include the edge cases listed above\n")
	} else {
		sb.WriteString("3. Consider commonly-forgotten edge cases\n")
	}
	sb.WriteString("4. Be specific with test data examples\n")
	sb.WriteString("5. Consider boundary conditions\n\n")

	sb.WriteString("## Output Format:\n")
	sb.WriteString(instructionsFor(opts))
	sb.WriteString("\n\nGenerate the test cases now:\n")

	return sb.String()
}

func instructionsFor(opts Options) string {
	if opts.Structured {
		return structuredInstructions
	}
	if instructions, ok := formatInstructions[opts.Format]; ok {
		return instructions
	}
	return formatInstructions[render.FormatPlain]
}

// recordsResponseSchema constrains structured-mode responses to the
// {test_cases: [{name, given[], when[], then[]}]} shape.
var recordsResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"test_cases": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Description: "Short scenario name"},
					"given": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Preconditions, one per entry",
					},
					"when": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Actions, one per entry",
					},
					"then": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Expected results, one per entry",
					},
				},
				Required: []string{"name", "given", "when", "then"},
			},
		},
	},
	Required: []string{"test_cases"},
}
