package cmd

import (
	"encoding/json"
	"os"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render test-case records from a JSON file",
	Long: `Render test-case records without calling the model.

The input is a JSON document {feature, test_cases} as produced by the
json format (or by generate --structured), or a bare array of records.
Records have name, given, when, and then fields; unknown fields are
preserved on the json format.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("input", "i", "", "JSON file containing test-case records")
	renderCmd.Flags().StringP("format", "f", string(render.FormatGherkin), "Output format (gherkin, pytest, testng, plain, json)")
	renderCmd.Flags().String("feature", "", "Feature name (default: feature field from the input)")
	renderCmd.Flags().StringP("output", "o", "", "Output directory or file")
	_ = renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := GetLogger().WithComponent("render")

	input, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	feature, _ := cmd.Flags().GetString("feature")
	output, _ := cmd.Flags().GetString("output")

	suite, err := loadSuite(input)
	if err != nil {
		return err
	}
	if feature == "" {
		feature = suite.Feature
	}
	if feature == "" {
		feature = "Feature"
	}

	log.Debug("Rendering records", "count", len(suite.TestCases), "format", format)

	result, err := render.Render(suite.TestCases, render.Format(format), feature)
	if err != nil {
		return err
	}

	return writeResult(cmd, output, render.Format(format), result)
}

// loadSuite reads either a {feature, test_cases} envelope or a bare
// array of records.
func loadSuite(path string) (render.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return render.Suite{}, apperrors.Wrapf("cmd.loadSuite", apperrors.ErrNotFound, "input file not found: %s", path)
		}
		return render.Suite{}, apperrors.Wrap("cmd.loadSuite", err)
	}

	var suite render.Suite
	if err := json.Unmarshal(data, &suite); err == nil && (suite.Feature != "" || suite.TestCases != nil) {
		return suite, nil
	}

	var cases []render.TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return render.Suite{}, apperrors.New("cmd.loadSuite", apperrors.ErrInvalidInput,
			"input must be a {feature, test_cases} object or an array of records")
	}
	return render.Suite{TestCases: cases}, nil
}
