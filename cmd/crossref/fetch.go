// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/internal/client"
	"github.com/pdiddy/crossref/internal/queryfile"
	"github.com/pdiddy/crossref/pkg/response"
)

func newClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.Crossref, logger), nil
}

// logDiagnostics reports optional fields dropped while decoding.
func logDiagnostics(ds *response.Diagnostics) {
	for _, d := range ds.Items {
		logger.Debug("dropped malformed field", "field", d.Field, "err", d.Err)
	}
	if n := ds.Len(); n > 0 {
		logger.Info("dropped malformed optional fields", "count", n)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var workCmd = &cobra.Command{
	Use:   "work DOI",
	Short: "Fetch one work by DOI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := context.Background()
		if agency, _ := cmd.Flags().GetBool("agency"); agency {
			a, err := c.WorkAgency(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.DOI, a.Agency.ID)
			return nil
		}
		var diags response.Diagnostics
		w, err := c.Work(ctx, args[0], response.WithDiagnostics(&diags))
		if err != nil {
			return err
		}
		logDiagnostics(&diags)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return writeJSON(cmd.OutOrStdout(), w)
		}
		printWork(cmd.OutOrStdout(), w)
		return nil
	},
}

var worksCmd = &cobra.Command{
	Use:   "works",
	Short: "Search works, or list the works of a funder, journal, member, prefix or type",
	Example: `  crossref works --query "economic geography" --filter from-pub-date:2020-01-01 --rows 20
  crossref works --resource journals --id 0028-0836 --sort published --order desc --save nature.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := worksQueryFromFlags(cmd)
		if err != nil {
			return err
		}
		if path, _ := cmd.Flags().GetString("save"); path != "" {
			if err := queryfile.Write(path, l); err != nil {
				return err
			}
			logger.Info("saved query", "path", path)
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		var diags response.Diagnostics
		list, err := c.Works(context.Background(), l, response.WithDiagnostics(&diags))
		if err != nil {
			return err
		}
		logDiagnostics(&diags)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		printWorkList(cmd.OutOrStdout(), list)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get RESOURCE ID",
	Short: "Fetch one item of any resource and print its message as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := lookup(args[0], args[1], false)
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		env, err := c.Envelope(context.Background(), q)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), env.Message)
	},
}

func printWork(w io.Writer, work response.Work) {
	fmt.Fprintf(w, "DOI:       %s\n", work.DOI)
	fmt.Fprintf(w, "Title:     %s\n", strings.Join(work.Title, " / "))
	fmt.Fprintf(w, "Type:      %s\n", work.Type)
	fmt.Fprintf(w, "Publisher: %s\n", work.Publisher)
	if len(work.ContainerTitle) > 0 {
		fmt.Fprintf(w, "In:        %s\n", work.ContainerTitle[0])
	}
	if work.Issued != nil {
		fmt.Fprintf(w, "Issued:    %s\n", work.Issued)
	}
	if len(work.Author) > 0 {
		names := make([]string, len(work.Author))
		for i, a := range work.Author {
			names[i] = strings.TrimSpace(a.Given + " " + a.DisplayName())
		}
		fmt.Fprintf(w, "Authors:   %s\n", strings.Join(names, "; "))
	}
	if work.IsReferencedByCount != nil {
		fmt.Fprintf(w, "Cited by:  %d\n", *work.IsReferencedByCount)
	}
}

func printWorkList(w io.Writer, list response.WorkList) {
	fmt.Fprintf(w, "%d results\n\n", list.TotalResults)
	fmt.Fprintf(w, "%-35s  %-4s  %s\n", "DOI", "Year", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, work := range list.Items {
		title := strings.Join(work.Title, " / ")
		if len(title) > 58 {
			title = title[:55] + "..."
		}
		fmt.Fprintf(w, "%-35s  %-4d  %s\n", work.DOI, work.Year(), title)
	}
	for _, name := range slices.Sorted(maps.Keys(list.Facets)) {
		facet := list.Facets[name]
		fmt.Fprintf(w, "\nfacet %s (%d values)\n", name, facet.ValueCount)
		for _, v := range slices.Sorted(maps.Keys(facet.Values)) {
			fmt.Fprintf(w, "  %-40s %d\n", v, facet.Values[v])
		}
	}
	if list.NextCursor != "" {
		fmt.Fprintf(w, "\nnext cursor: %s\n", list.NextCursor)
	}
}

func init() {
	workCmd.Flags().Bool("agency", false, "print the registration agency instead")
	workCmd.Flags().Bool("json", false, "output the decoded work as JSON")

	addWorksFlags(worksCmd.Flags())
	worksCmd.Flags().String("save", "", "write the query to a YAML file for harvest or later reuse")
	worksCmd.Flags().Bool("json", false, "output the decoded list as JSON")

	rootCmd.AddCommand(workCmd, worksCmd, getCmd)
}
