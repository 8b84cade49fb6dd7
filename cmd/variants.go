package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediasearch/mediasearch-cli/internal/config"
	"github.com/mediasearch/mediasearch-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List configured search backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.RunVariantsImperative(config.Get())
		},
	}
	rootCmd.AddCommand(cmd)
}
