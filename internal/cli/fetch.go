package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"helperkit/internal/common"
	"helperkit/internal/fetcher"
	"helperkit/internal/promises"
)

func (a *app) newFetcher(endpoint string) *fetcher.Fetcher {
	opts := a.config.FetcherOptions()
	opts = append(opts, fetcher.WithAggregator(promises.NewAggregator(a.config.Aggregator.Limit)))
	if endpoint != "" {
		opts = append(opts, fetcher.WithEndpoint(endpoint))
	}
	return fetcher.New(opts...)
}

// requestContext bounds a command's network work by the configured fetch timeout
func (a *app) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return common.WithTimeout(ctx, a.config.Fetcher.Timeout)
}

var userTableHeaders = []string{"ID", "USERNAME", "NAME", "EMAIL", "CITY"}

func newFetchCommand(a *app) *cobra.Command {
	var (
		endpoint string
		users    bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "GET the placeholder user list",
		Long: `Issue a single GET request to the configured endpoint and print the response.

No retries are attempted. Without --users the status line and raw body are
printed unmodified.

Examples:
  helperkit fetch
  helperkit fetch --users
  helperkit fetch --users --json
  helperkit fetch --endpoint http://localhost:8080/users`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.newFetcher(endpoint)
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			resp, err := f.Fetch(ctx)
			if err != nil {
				return wrapCommandError("fetch", f.Endpoint(), err)
			}

			out := cmd.OutOrStdout()
			if !users {
				fmt.Fprintln(out, resp.Status)
				fmt.Fprintln(out, string(resp.Body))
				return nil
			}

			list, err := fetcher.DecodeUsers(resp)
			if err != nil {
				return wrapCommandError("decode users", f.Endpoint(), err)
			}

			rows := make([][]string, 0, len(list))
			for _, u := range list {
				rows = append(rows, []string{strconv.Itoa(u.ID), u.Username, u.Name, u.Email, u.Address.City})
			}
			return common.NewOutputManager(out, asJSON).OutputTable(userTableHeaders, rows)
		},
	}

	cmd.Flags().StringVar(&endpoint, FLAG_ENDPOINT, "", "override the configured endpoint")
	cmd.Flags().BoolVar(&users, FLAG_USERS, false, "decode the body and print a user table")
	cmd.Flags().BoolVar(&asJSON, FLAG_JSON, false, "with --users, print the table as JSON")
	return cmd
}

func newRegionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "region",
		Short: "Look up this machine's region code and country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.newFetcher("")
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			loc, err := f.ClientRegionAndCountry(ctx)
			if err != nil {
				return wrapCommandError("region lookup", a.config.Region.RegionURL, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Region:  %s\nCountry: %s\n", loc.RegionCode, loc.Country)
			return nil
		},
	}
}
