package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const workflowGuide = `# ai-test-generator workflow

1. Initialize per-project defaults (optional):

       ai-test-generator init

   This writes .testgen/config.yml with the default model, format,
   and number of test cases.

2. Review a requirement for edge cases before writing criteria:

       ai-test-generator analyze --input story.txt --categories

3. Generate test cases (requires GEMINI_API_KEY):

       ai-test-generator generate --input story.txt --format gherkin
       ai-test-generator generate --jira PROJ-123 --format pytest -o tests/

   Add --structured to have records rendered locally instead of
   trusting the model's formatting.

4. Re-render saved records into another format without a model call:

       ai-test-generator generate --input story.txt --structured --format json -o cases.json
       ai-test-generator render --input cases.json --format testng

Jira access uses JIRA_URL, JIRA_EMAIL, and JIRA_API_TOKEN.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print a short workflow guide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), workflowGuide)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
