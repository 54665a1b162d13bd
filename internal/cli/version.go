package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"helperkit/internal/version"
)

type VersionInfo struct {
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit"`
	BuildTime    string `json:"build_time"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:      version.Version,
		GitCommit:    version.GitCommit,
		BuildTime:    version.BuildTime,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		// Version output must not depend on a readable config file
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentVersionInfo()
			out := cmd.OutOrStdout()

			if asJSON {
				jsonData, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version information: %w", err)
				}
				fmt.Fprintln(out, string(jsonData))
				return nil
			}

			fmt.Fprintf(out, "helperkit %s\n", info.Version)

			if info.GitCommit != ERROR_UNKNOWN_VALUE {
				if len(info.GitCommit) > 7 {
					fmt.Fprintf(out, "Git Commit:   %s (%s)\n", info.GitCommit[:7], info.GitCommit)
				} else {
					fmt.Fprintf(out, "Git Commit:   %s\n", info.GitCommit)
				}
			}

			if info.BuildTime != ERROR_UNKNOWN_VALUE {
				if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
					fmt.Fprintf(out, "Build Time:   %s\n", t.UTC().Format("2006-01-02 15:04:05 UTC"))
				} else {
					fmt.Fprintf(out, "Build Time:   %s\n", info.BuildTime)
				}
			}

			fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform:     %s/%s\n", info.Platform, info.Architecture)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, FLAG_JSON, false, "output version information as JSON")
	return cmd
}
