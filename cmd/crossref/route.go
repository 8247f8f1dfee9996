// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/pkg/query"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Print compiled REST routes without contacting the API",
}

var routeWorksCmd = &cobra.Command{
	Use:   "works",
	Short: "Compile a work-list query",
	Example: `  crossref route works --query "economic geography" --filter has-funder --rows 10
  crossref route works --resource funders --id 100000015 --cursor '*'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := worksQueryFromFlags(cmd)
		if err != nil {
			return err
		}
		return printRoute(cmd, l)
	},
}

var routeGetCmd = &cobra.Command{
	Use:   "get RESOURCE ID",
	Short: "Compile a single-item lookup, e.g. works 10.1037/0003-066X.59.1.29",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		agency, _ := cmd.Flags().GetBool("agency")
		q, err := lookup(args[0], args[1], agency)
		if err != nil {
			return err
		}
		return printRoute(cmd, q)
	},
}

var routeSearchCmd = &cobra.Command{
	Use:   "search RESOURCE",
	Short: "Compile a search of funders, journals, members or types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := query.ParseComponent(args[0])
		if err != nil {
			return err
		}
		q, err := resourceQueryFromFlags(cmd)
		if err != nil {
			return err
		}
		return printRoute(cmd, query.Search(c, q))
	},
}

// printRoute prints the route, or the full URL with --url.
func printRoute(cmd *cobra.Command, q query.Query) error {
	r, err := q.Route()
	if err != nil {
		return err
	}
	if withURL, _ := cmd.Flags().GetBool("url"); withURL {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if r, err = query.URL(cfg.Crossref.BaseURL, q); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}

func init() {
	addWorksFlags(routeWorksCmd.Flags())
	routeGetCmd.Flags().Bool("agency", false, "target /works/{doi}/agency")
	addResourceFlags(routeSearchCmd.Flags())
	routeCmd.PersistentFlags().Bool("url", false, "prefix the configured base URL")

	routeCmd.AddCommand(routeWorksCmd, routeGetCmd, routeSearchCmd)
	rootCmd.AddCommand(routeCmd)
}
