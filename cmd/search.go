package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediasearch/mediasearch-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a single search; asks for the query when none is given",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			} else {
				q, err := console.AskQuery()
				if err != nil {
					return err
				}
				query = q
			}
			ctx := cmd.Context()
			client, shutdown, err := newClient(ctx)
			if err != nil {
				return err
			}
			defer shutdown()
			return console.NewConsoleUI(client).RunSearchImperative(ctx, query)
		},
	}
	rootCmd.AddCommand(cmd)
}
