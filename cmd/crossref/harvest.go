// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/internal/client"
	"github.com/pdiddy/crossref/internal/harvest"
	"github.com/pdiddy/crossref/internal/queryfile"
	"github.com/pdiddy/crossref/pkg/query"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Deep-page a work list into the local index",
	Long: `Harvest pages through a work list with a cursor and stores every work in
a SQLite index under harvest.db_dir. The query comes from --query-file
(written by works --save) or from the same flags as works. Interrupting
with Ctrl-C stops after the current page and keeps what was stored.`,
	Example: `  crossref harvest --query-file nature.yaml --max-pages 20
  crossref harvest --resource funders --id 100000015 --filter has-license --rows 500`,
	Args: cobra.NoArgs,
	RunE: runHarvest,
}

func runHarvest(cmd *cobra.Command, args []string) error {
	var (
		l   query.WorkListQuery
		err error
	)
	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		l, err = queryfile.Read(path)
	} else {
		l, err = worksQueryFromFlags(cmd)
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.Harvest.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	}
	if cmd.Flags().Changed("rows") {
		cfg.Harvest.Rows, _ = cmd.Flags().GetInt("rows")
	}
	if dir, _ := cmd.Flags().GetString("db-dir"); dir != "" {
		cfg.Harvest.DBDir = dir
	}

	store, err := harvest.Open(cfg.Harvest.DBDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	summary, err := harvest.Harvest(ctx, client.New(cfg.Crossref, logger), store, l, cfg.Harvest, cmd.OutOrStdout())
	logger.Info("harvest finished", "run", summary.RunID, "works", summary.Works, "elapsed", time.Since(start).Round(time.Millisecond))
	return err
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded harvest runs",
	Args:  cobra.NoArgs,
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

		runs, err := store.Runs(context.Background())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, r := range runs {
			fmt.Fprintf(w, "%s  %-8s  %s  pages=%d works=%d/%d  %s\n",
				r.ID, r.Status, r.StartedAt.Format(time.DateTime), r.Pages, r.Works, r.Total, r.Route)
		}
		return nil
	},
}

func init() {
	addWorksFlags(harvestCmd.Flags())
	harvestCmd.Flags().String("query-file", "", "YAML query written by works --save")
	harvestCmd.Flags().Int("max-pages", 0, "stop after N pages (0: until exhausted)")
	harvestCmd.Flags().String("db-dir", "", "index directory (default from config harvest.db_dir)")
	harvestCmd.AddCommand(runsCmd)
	runsCmd.Flags().String("db-dir", "", "index directory (default from config harvest.db_dir)")

	rootCmd.AddCommand(harvestCmd)
}
