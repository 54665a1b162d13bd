package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"helperkit/internal/currency"
)

func newCurrencyCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currency <value>...",
		Short: "Format values as dollars with two decimals",
		Long: `Format each argument as "$" followed by the value fixed to two decimals.

Arguments that are not numbers print as $0.00.

Examples:
  helperkit currency 3.989       # $3.99
  helperkit currency abc -- -2   # $0.00 and $-2.00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), currency.FormatCurrency(arg))
			}
			return nil
		},
	}
}
