// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/pkg/response"
)

var journalCmd = &cobra.Command{
	Use:   "journal ISSN",
	Short: "Fetch one journal by ISSN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		var diags response.Diagnostics
		j, err := c.Journal(context.Background(), args[0], response.WithDiagnostics(&diags))
		if err != nil {
			return err
		}
		logDiagnostics(&diags)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return writeJSON(cmd.OutOrStdout(), j)
		}
		printJournal(cmd.OutOrStdout(), j)
		return nil
	},
}

var journalsCmd = &cobra.Command{
	Use:     "journals",
	Short:   "Search journals",
	Example: `  crossref journals --query nature --rows 10`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := resourceQueryFromFlags(cmd)
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		var diags response.Diagnostics
		list, err := c.Journals(context.Background(), q, response.WithDiagnostics(&diags))
		if err != nil {
			return err
		}
		logDiagnostics(&diags)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d results\n\n", list.TotalResults)
		fmt.Fprintf(w, "%-20s  %-50s  %s\n", "ISSN", "Title", "Publisher")
		fmt.Fprintln(w, strings.Repeat("-", 100))
		for _, j := range list.Items {
			fmt.Fprintf(w, "%-20s  %-50s  %s\n", strings.Join(j.ISSN, ","), j.Title, j.Publisher)
		}
		return nil
	},
}

func printJournal(w io.Writer, j response.Journal) {
	fmt.Fprintf(w, "Title:     %s\n", j.Title)
	fmt.Fprintf(w, "Publisher: %s\n", j.Publisher)
	fmt.Fprintf(w, "ISSN:      %s\n", strings.Join(j.ISSN, ", "))
	if j.Counts != nil {
		fmt.Fprintf(w, "DOIs:      %d (current %d, backfile %d)\n",
			j.Counts.TotalDOIs, j.Counts.CurrentDOIs, j.Counts.BackfileDOIs)
	}
	if len(j.Subjects) > 0 {
		names := make([]string, len(j.Subjects))
		for i, s := range j.Subjects {
			names[i] = s.Name
		}
		fmt.Fprintf(w, "Subjects:  %s\n", strings.Join(names, "; "))
	}
}

func init() {
	journalCmd.Flags().Bool("json", false, "output the decoded journal as JSON")
	addResourceFlags(journalsCmd.Flags())
	journalsCmd.Flags().Bool("json", false, "output the decoded list as JSON")

	rootCmd.AddCommand(journalCmd, journalsCmd)
}
