package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged configuration against the JSON Schema",
	Run: func(cmd *cobra.Command, args []string) {
		// initConfig already exits non-zero on an invalid configuration.
		fmt.Printf("Configuration is valid (%s)\n", configDir())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
