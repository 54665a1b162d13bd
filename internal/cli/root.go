package cli

import (
	"context"

	"github.com/spf13/cobra"

	"helperkit/internal/common"
	"helperkit/internal/config"
)

// app carries state shared by every subcommand of one invocation
type app struct {
	configPath string
	verbose    bool
	config     *config.Config
}

// NewRootCommand builds the full command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   CLI_NAME,
		Short: "helperkit - small standalone helpers for flattening, fetching, sorting and formatting",
		Long: `helperkit bundles a handful of independent helpers behind one command line.

Features:
- Depth-first flattening of nested JSON arrays
- A single GET against the placeholder user endpoint
- Named sort strategies
- Fixed two-decimal currency formatting
- Simple YAML configuration`,
		// Don't show usage when there's an error
		SilenceUsage: true,
		// Don't show errors (main prints them)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, FLAG_CONFIG, "", "configuration file (default $HELPERKIT_CONFIG or ~/.helperkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, FLAG_VERBOSE, "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newFlattenCommand(a),
		newFetchCommand(a),
		newRegionCommand(a),
		newCurrencyCommand(a),
		newSortCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)
	rootCmd.AddCommand(newCompletionCommand(rootCmd))
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	setupCompletions(rootCmd)

	return rootCmd
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.GetDefaultConfigPath()
}

func (a *app) loadConfig() error {
	cfg, err := config.LoadConfig(a.resolvedConfigPath())
	if err != nil {
		return NewConfigError(a.resolvedConfigPath(), err)
	}
	a.config = cfg

	common.SetGlobalLevel(cfg.LogLevel())
	if a.verbose {
		common.SetGlobalLevel(common.LogDebug)
	}
	common.CLILogger.Debug("loaded configuration from %s", a.resolvedConfigPath())
	return nil
}

// ExecuteContext runs the command tree with args
func ExecuteContext(ctx context.Context, args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
