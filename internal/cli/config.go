package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"helperkit/internal/common"
	"helperkit/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the helperkit configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		// init must work even when the existing file is broken
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return NewValidationError(fmt.Sprintf("configuration file already exists: %s", path), nil,
					fmt.Sprintf("Overwrite it: %s config init --force", CLI_NAME))
			}

			if err := config.SaveConfig(config.GetDefaultConfig(), path); err != nil {
				return NewConfigError(path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, FLAG_FORCE, false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.config)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			path := a.resolvedConfigPath()
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				// YAML comments keep the output loadable
				fmt.Fprintf(out, "# "+common.ERROR_CONFIG_NOT_FOUND+"\n", path)
				fmt.Fprintf(out, "# "+common.SUGGESTION_CREATE_CONFIG+"\n", path)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
