package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/generate"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/render"
	"github.com/khaled-yousef-TV/ai-test-generator/internal/requirement"
	"github.com/spf13/cobra"
)

// formatChoices maps menu numbers to format tokens.
var formatChoices = map[string]render.Format{
	"1": render.FormatGherkin,
	"2": render.FormatPytest,
	"3": render.FormatTestNG,
	"4": render.FormatPlain,
	"5": render.FormatJSON,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Enter a requirement interactively",
	Long: `Read a requirement from the terminal, line by line, terminated by a
blank line, then pick an output format and generate test cases.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Enter your requirement (finish with a blank line):")
	fmt.Fprintln(out)

	reader := bufio.NewReader(cmd.InOrStdin())
	text, err := requirement.ReadInteractive(reader)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select output format:")
	fmt.Fprintln(out, "  1. Gherkin/BDD (default)")
	fmt.Fprintln(out, "  2. Python pytest")
	fmt.Fprintln(out, "  3. Java TestNG")
	fmt.Fprintln(out, "  4. Plain text")
	fmt.Fprintln(out, "  5. JSON")
	fmt.Fprint(out, "\nChoice [1]: ")

	format := readFormatChoice(reader)

	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	gen := testGenerator
	if gen == nil {
		g, err := generate.New(generate.Config{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  cfg.Model,
		})
		if err != nil {
			return err
		}
		gen = g
	}

	fmt.Fprintln(out)
	result, err := gen.Generate(cmd.Context(), text, generate.Options{
		Format:           format,
		NumCases:         cfg.NumCases,
		IncludeEdgeCases: true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)
	return nil
}

// readFormatChoice reads a menu choice, defaulting to gherkin.
func readFormatChoice(reader *bufio.Reader) render.Format {
	line, _ := reader.ReadString('\n')
	choice := strings.TrimSpace(line)
	if choice == "" {
		return render.FormatGherkin
	}
	if format, ok := formatChoices[choice]; ok {
		return format
	}
	return render.FormatGherkin
}
