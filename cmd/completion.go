package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:

  $ source <(ai-test-generator completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ai-test-generator completion bash > /etc/bash_completion.d/ai-test-generator
  # macOS:
  $ ai-test-generator completion bash > $(brew --prefix)/etc/bash_completion.d/ai-test-generator

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ai-test-generator completion zsh > "${fpath[1]}/_ai-test-generator"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ ai-test-generator completion fish | source

  # To load completions for each session, execute once:
  $ ai-test-generator completion fish > ~/.config/fish/completions/ai-test-generator.fish

PowerShell:

  PS> ai-test-generator completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> ai-test-generator completion powershell > ai-test-generator.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
