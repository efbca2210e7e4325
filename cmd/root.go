package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/config"
	"github.com/steezy/steezy/internal/log"
	"github.com/steezy/steezy/internal/progression"
)

var (
	cfg    *config.Config
	engine *progression.Engine
)

var rootCmd = &cobra.Command{
	Use:           "steezy",
	Short:         "Snowboard trick progression",
	Long:          "Steezy tracks trick progression: catalog, levels, recommendations, leaderboard rank and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog document (overrides STEEZY_CATALOG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides STEEZY_LOG_LEVEL)")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, the logger and the catalog in that order.
func setup(cmd *cobra.Command) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	level := cfg.LogLevel
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	if err := log.Init(cmd.ErrOrStderr(), level); err != nil {
		return err
	}

	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}
	engine = progression.New(cat)
	return nil
}

// resolveCatalog returns the catalog using --catalog flag (highest priority),
// then STEEZY_CATALOG env var, then the embedded catalog.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		log.Debug("using embedded catalog", "version", catalog.Default().Version())
		return catalog.Default(), nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded", "path", path, "version", c.Version(), "tricks", c.Len())
	return c, nil
}
