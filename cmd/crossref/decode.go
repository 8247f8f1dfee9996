// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crossref/pkg/response"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Decode saved API responses offline",
	Long: `Decode reads one or more JSON response envelopes from FILE (- for stdin),
decodes each according to its message-type and prints a one-line summary.
Envelopes may be concatenated or newline-delimited.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}
		jsonOut, _ := cmd.Flags().GetBool("json")
		return decodeAll(r, cmd.OutOrStdout(), jsonOut)
	},
}

// decodeAll decodes every envelope in r. A value that fails to decode is
// reported and skipped; the returned error counts the failures.
func decodeAll(r io.Reader, w io.Writer, jsonOut bool) error {
	sink := response.NewSink(r)
	failed := 0
	for {
		v, err := sink.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		n := sink.Count()

		var diags response.Diagnostics
		env, err := response.DecodeEnvelope(v)
		var typed any
		if err == nil {
			typed, err = env.Typed(response.WithDiagnostics(&diags))
		}
		if err != nil {
			fmt.Fprintf(w, "%d: error: %v\n", n, err)
			failed++
			continue
		}
		logDiagnostics(&diags)
		if jsonOut {
			if err := writeJSON(w, typed); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(w, "%d: %s\n", n, summarize(env, typed, diags.Len()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d value(s) failed to decode", failed, sink.Count())
	}
	return nil
}

func summarize(env response.Envelope, typed any, dropped int) string {
	var s string
	switch m := typed.(type) {
	case response.Work:
		s = fmt.Sprintf("work %s (%s)", m.DOI, m.Type)
	case response.WorkList:
		s = fmt.Sprintf("work-list %d of %d items", len(m.Items), m.TotalResults)
		if m.NextCursor != "" {
			s += ", next cursor " + m.NextCursor
		}
	case response.WorkAgency:
		s = fmt.Sprintf("work-agency %s: %s", m.DOI, m.Agency.ID)
	case response.Journal:
		s = fmt.Sprintf("journal %q", m.Title)
	case response.JournalList:
		s = fmt.Sprintf("journal-list %d of %d items", len(m.Items), m.TotalResults)
	default:
		s = fmt.Sprintf("%s (untyped)", env.MessageType)
	}
	if dropped > 0 {
		s += fmt.Sprintf(", %d dropped field(s)", dropped)
	}
	return s
}

func init() {
	decodeCmd.Flags().Bool("json", false, "print each decoded message as JSON")
	rootCmd.AddCommand(decodeCmd)
}
