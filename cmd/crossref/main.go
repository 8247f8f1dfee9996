// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the crossref CLI. Commands compile
// query intents into REST routes, fetch and decode API responses, and
// harvest work lists into a local index.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/crossref/internal/secrets"
	"github.com/pdiddy/crossref/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --verbose.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "crossref",
	Short: "Query the Crossref REST API",
	Long: `crossref compiles typed query intents into Crossref REST routes, fetches
them, and decodes the responses into typed works and journals.

route prints a compiled route without any network access; work, works,
journal, journals and get fetch; decode reads saved responses; harvest
deep-pages a work list into a local SQLite index and export writes that
index as CSL-YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./crossref.yaml or ~/.config/crossref/crossref.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log requests and decode diagnostics")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("crossref")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "crossref"))
		}
	}

	viper.SetEnvPrefix("CROSSREF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	def := types.DefaultConfig()
	viper.SetDefault("crossref.base_url", def.Crossref.BaseURL)
	viper.SetDefault("crossref.mailto", def.Crossref.Mailto)
	viper.SetDefault("crossref.timeout", def.Crossref.Timeout)
	viper.SetDefault("crossref.user_agent", def.Crossref.UserAgent)
	viper.SetDefault("harvest.db_dir", def.Harvest.DBDir)
	viper.SetDefault("harvest.rows", def.Harvest.Rows)
	viper.SetDefault("harvest.max_pages", def.Harvest.MaxPages)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, the config file, CROSSREF_* variables and
// the .secrets/ directory.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	s, err := secrets.Load(".secrets/", logger)
	if err != nil {
		return cfg, err
	}
	secrets.Apply(&cfg.Crossref, s)
	if cfg.Crossref.Mailto == "" {
		logger.Debug("no mailto configured; requests use the public pool")
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
