package cmd

import (
	"fmt"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/edgecase"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/requirement"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/ui"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Detect potential edge cases in a requirement",
	Long: `Scan a requirement for keywords that suggest commonly-forgotten
edge cases, without calling the model. Useful as a review checklist
before writing acceptance criteria.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("input", "i", "", "Input file containing the requirement")
	analyzeCmd.Flags().Bool("categories", false, "Group edge cases by category")
	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := GetLogger().WithComponent("analyze")

	input, _ := cmd.Flags().GetString("input")
	byCategory, _ := cmd.Flags().GetBool("categories")

	text, err := requirement.LoadFile(input)
	if err != nil {
		return err
	}

	analyzer := edgecase.New()
	out := cmd.OutOrStdout()

	if byCategory {
		categories := analyzer.DetectByCategory(text)
		log.Debug("Analyzed requirement", "categories", len(categories))

		ui.Header(out, "Edge Cases by Category")
		for _, category := range categories {
			fmt.Fprintln(out)
			ui.CategoryLine(out, category.Name)
			for _, hint := range category.Hints {
				ui.HintLine(out, hint)
			}
		}
		return nil
	}

	hints := analyzer.Detect(text)
	log.Debug("Analyzed requirement", "hints", len(hints))

	ui.Header(out, "Detected Edge Cases")
	for _, hint := range hints {
		ui.HintLine(out, hint)
	}
	return nil
}
