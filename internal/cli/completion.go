package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"helperkit/internal/sorter"
)

func newCompletionCommand(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for helperkit commands and flags.

Examples:
  source <(helperkit completion bash)
  helperkit completion zsh > "${fpath[1]}/_helperkit"
  helperkit completion fish > ~/.config/fish/completions/helperkit.fish`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion scripts never need the configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", args[0])
			}
		},
	}
}

func setupCompletions(rootCmd *cobra.Command) {
	configFileCompletion := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	}
	_ = rootCmd.RegisterFlagCompletionFunc(FLAG_CONFIG, configFileCompletion)

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() != "sort" {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(FLAG_STRATEGY, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return sorter.Strategies, cobra.ShellCompDirectiveNoFileComp
		})
	}
}
