package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"helperkit/internal/sorter"
)

func newSortCommand(_ *app) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "sort <value>...",
		Short: "Sort values with a named strategy",
		Long: fmt.Sprintf(`Sort the arguments with a named strategy and print one value per line.

Strategies: %s

Examples:
  helperkit sort pear apple fig
  helperkit sort --strategy numeric 10 9 -- -1.5`, strings.Join(sorter.Strategies, ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortFn, err := sorter.Strategy(strategy)
			if err != nil {
				return NewValidationError("unknown sort strategy", err,
					fmt.Sprintf("Use one of: %s", strings.Join(sorter.Strategies, ", ")))
			}

			for _, v := range sorter.SortList(args, sortFn) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, FLAG_STRATEGY, "s", sorter.StrategyAscending, "sort strategy")
	return cmd
}
