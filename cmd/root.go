package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mediasearch/mediasearch-cli/internal/assets"
	"github.com/mediasearch/mediasearch-cli/internal/config"
	"github.com/mediasearch/mediasearch-cli/internal/logging"
	"github.com/mediasearch/mediasearch-cli/internal/ui/console"
)

var cfgFile string
var verbose bool
var variantName string
var pickVariant bool
var keepGoing bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "mediasearch",
	Short:        "Search media through a local search service",
	Long:         "Prompts for queries, sends each one to the configured search service and prints video and channel links.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, shutdown, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer shutdown()
		return console.NewConsoleUI(client).SetKeepGoing(keepGoing).Run(ctx)
	},
}

// Execute runs the CLI; SIGINT and SIGTERM cancel the search loop.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.Close()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/mediasearch); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show requests and raw responses")
	rootCmd.PersistentFlags().StringVar(&variantName, "variant", "", "search backend to use (default: default_variant from config)")
	rootCmd.PersistentFlags().BoolVar(&pickVariant, "pick", false, "choose the search backend interactively")
	rootCmd.PersistentFlags().BoolVar(&keepGoing, "keep-going", false, "report a failed search and keep prompting instead of exiting")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func configDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "mediasearch")
}

func initConfig() {
	cfgDir := configDir()
	// Ensure config directory and default variants.yaml exist
	_ = os.MkdirAll(cfgDir, 0o755)
	_ = assets.WriteDefaultVariantsIfMissing(cfgDir)
	entries, _ := os.ReadDir(cfgDir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		low := strings.ToLower(name)
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, name))
		}
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultVariants(), files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init()
	logging.SetVerbose(verbose)
}
