package main

import (
	"os"

	"github.com/mediasearch/mediasearch-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
