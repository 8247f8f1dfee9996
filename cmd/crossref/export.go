// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/internal/csl"
	"github.com/pdiddy/crossref/internal/harvest"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write harvested works as CSL-YAML or JSON",
	Long: `Export reads works from the harvest index and writes them as a CSL-YAML
bibliography (the default) or as decoded JSON. Citation keys follow the
AuthorYear pattern and are made unique with a, b, c suffixes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("db-dir"); dir != "" {
			cfg.Harvest.DBDir = dir
		}
		store, err := harvest.Open(cfg.Harvest.DBDir)
		if err != nil {
			return err
		}
		defer store.Close()

		var opts harvest.QueryOptions
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.Type, _ = cmd.Flags().GetString("type")
		opts.FromYear, _ = cmd.Flags().GetInt("from-year")
		opts.UntilYear, _ = cmd.Flags().GetInt("until-year")
		opts.RunID, _ = cmd.Flags().GetString("run")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		works, err := store.Works(context.Background(), opts)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			if cmd.Flags().Changed("csl") {
				return fmt.Errorf("--csl and --json are mutually exclusive")
			}
			return writeJSON(w, works)
		}
		if err := csl.Write(works, w); err != nil {
			return fmt.Errorf("writing CSL: %w", err)
		}
		logger.Info("exported works", "count", len(works))
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("csl", true, "write CSL-YAML (default)")
	exportCmd.Flags().Bool("json", false, "write decoded works as JSON instead of CSL-YAML")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	exportCmd.Flags().String("title", "", "only works whose title contains this text")
	exportCmd.Flags().String("type", "", "only works of this type, e.g. journal-article")
	exportCmd.Flags().Int("from-year", 0, "only works published in or after this year")
	exportCmd.Flags().Int("until-year", 0, "only works published in or before this year")
	exportCmd.Flags().String("run", "", "only works stored by this harvest run")
	exportCmd.Flags().Int("limit", 0, "maximum number of works (0: all)")
	exportCmd.Flags().String("db-dir", "", "index directory (default from config harvest.db_dir)")

	rootCmd.AddCommand(exportCmd)
}
