package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"helperkit/internal/flatten"
	"helperkit/internal/jsonutil"
)

func newFlattenCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <json-array>",
		Short: "Flatten a nested JSON array depth-first",
		Long: `Flatten a nested JSON array into a single array, depth-first and left to right.

Duplicates are kept and order is preserved. Anything other than a JSON array
is rejected.

Examples:
  helperkit flatten '[1,2,[3,4,[5]]]'      # [1,2,3,4,5]
  helperkit flatten '[1,[],["a",[true]]]'  # [1,"a",true]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nested, err := jsonutil.Decode[any]([]byte(args[0]))
			if err != nil {
				return NewValidationError("argument is not valid JSON", err,
					fmt.Sprintf("Quote the array for your shell: %s flatten '[1,[2,3]]'", CLI_NAME))
			}

			flat, err := flatten.Flatten(nested)
			if err != nil {
				return wrapCommandError("flatten", "", err)
			}

			out, err := json.Marshal(flat)
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
