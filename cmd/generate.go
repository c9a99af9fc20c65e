package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/generate"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/jira"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/requirement"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate test cases from a requirement",
	Long: `Generate test cases from a requirement file or a Jira ticket.

The requirement is scanned for likely edge cases, which are folded into
the prompt together with format instructions. With --structured the
model is constrained to emit test-case records, which are rendered
locally instead of trusting the model's formatting.`,
	RunE: runGenerate,
}

// ticketFetcher abstracts the Jira lookup for tests.
type ticketFetcher interface {
	GetTicketDescription(ctx context.Context, ticketID string) (string, error)
}

// testGenerator and testFetcher replace the real collaborators in tests.
// nil means use the real Gemini / Jira clients.
var (
	testGenerator generate.Service
	testFetcher   ticketFetcher
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "", "Input file containing the requirement")
	generateCmd.Flags().StringP("jira", "j", "", "Jira ticket ID to fetch the requirement from")
	generateCmd.Flags().StringP("format", "f", "", "Output format (gherkin, pytest, testng, plain, json)")
	generateCmd.Flags().StringP("output", "o", "", "Output directory or file")
	generateCmd.Flags().IntP("num-cases", "n", 0, "Target number of test cases")
	generateCmd.Flags().String("context", "", "Additional context for the prompt")
	generateCmd.Flags().Bool("no-edge-cases", false, "Don't include detected edge cases in the prompt")
	generateCmd.Flags().Bool("structured", false, "Request structured records and render them locally")
	generateCmd.Flags().String("model", "", "Gemini model name")
	generateCmd.Flags().Duration("timeout", 60*time.Second, "Timeout for each Gemini API call")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := GetLogger().WithComponent("generate")

	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	jiraTicket, _ := cmd.Flags().GetString("jira")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	numCases, _ := cmd.Flags().GetInt("num-cases")
	extraContext, _ := cmd.Flags().GetString("context")
	noEdgeCases, _ := cmd.Flags().GetBool("no-edge-cases")
	structured, _ := cmd.Flags().GetBool("structured")
	model, _ := cmd.Flags().GetString("model")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if format == "" {
		format = cfg.Format
	}
	if numCases == 0 {
		numCases = cfg.NumCases
	}
	if model == "" {
		model = cfg.Model
	}
	if !render.Format(format).IsValid() {
		return &render.UnsupportedFormatError{Format: format, Supported: render.Formats()}
	}

	text, err := resolveRequirement(cmd, input, jiraTicket)
	if err != nil {
		return err
	}

	gen := testGenerator
	if gen == nil {
		g, err := generate.New(generate.Config{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   model,
			Timeout: timeout,
		})
		if err != nil {
			return err
		}
		gen = g
	}

	opts := generate.Options{
		Format:           render.Format(format),
		Context:          extraContext,
		NumCases:         numCases,
		IncludeEdgeCases: !noEdgeCases,
	}

	log.Info("Generating test cases", "format", format, "cases", numCases, "structured", structured)

	var result string
	if structured {
		records, err := gen.GenerateRecords(cmd.Context(), text, opts)
		if err != nil {
			return err
		}
		feature := requirement.ExtractFeatureName(text)
		result, err = render.Render(records, render.Format(format), feature)
		if err != nil {
			return err
		}
	} else {
		result, err = gen.Generate(cmd.Context(), text, opts)
		if err != nil {
			return err
		}
	}

	return writeResult(cmd, output, render.Format(format), result)
}

// resolveRequirement loads the requirement text from --input or --jira.
func resolveRequirement(cmd *cobra.Command, input, jiraTicket string) (string, error) {
	switch {
	case input != "" && jiraTicket != "":
		return "", fmt.Errorf("use either --input or --jira, not both")
	case input != "":
		return requirement.LoadFile(input)
	case jiraTicket != "":
		fetcher := testFetcher
		if fetcher == nil {
			client, err := jira.NewClient(jira.Config{
				URL:      os.Getenv("JIRA_URL"),
				Email:    os.Getenv("JIRA_EMAIL"),
				APIToken: os.Getenv("JIRA_API_TOKEN"),
			})
			if err != nil {
				return "", err
			}
			fetcher = client
		}
		return fetcher.GetTicketDescription(cmd.Context(), jiraTicket)
	default:
		return "", fmt.Errorf("either --input or --jira is required")
	}
}

// writeResult prints the document or writes it under --output. A
// directory target gets a generated_tests file with the format's
// conventional extension.
func writeResult(cmd *cobra.Command, output string, format render.Format, result string) error {
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	outputFile := output
	if info, err := os.Stat(output); (err == nil && info.IsDir()) || strings.HasSuffix(output, string(os.PathSeparator)) {
		outputFile = filepath.Join(output, "generated_tests"+format.Extension())
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "test cases written to %s\n", outputFile)
	return nil
}
