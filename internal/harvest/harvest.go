// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest deep-pages a work list with cursors and indexes every
// page into a local SQLite store.
package harvest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/crossref/pkg/query"
	"github.com/pdiddy/crossref/pkg/response"
	"github.com/pdiddy/crossref/pkg/types"
)

// Fetcher retrieves one page of a work list. *client.Client implements it.
type Fetcher interface {
	Works(ctx context.Context, l query.WorkListQuery, opts ...response.Option) (response.WorkList, error)
}

// Summary reports the outcome of a harvest run.
type Summary struct {
	RunID string
	Pages int
	Works int
	// Total is the result count the API reported on the first page.
	Total int
	// Diagnostics counts optional fields dropped while decoding.
	Diagnostics int
}

// Harvest pages through l with a cursor, saving every work to s, until a
// page comes back empty, the API stops returning a cursor, or cfg.MaxPages
// pages were fetched. Progress lines go to w. The run is recorded in s with
// its final status even when fetching fails or ctx is cancelled.
func Harvest(ctx context.Context, f Fetcher, s *Store, l query.WorkListQuery, cfg types.HarvestConfig, w io.Writer) (Summary, error) {
	q := l.Query()
	if _, ok := q.SampleCount(); ok {
		return Summary{}, errors.New("a sample query cannot be paged with a cursor")
	}
	if cfg.Rows > 0 {
		q = q.WithControl(query.Cursor{Rows: cfg.Rows})
	} else {
		q = q.NextCursor("")
	}
	l.Ident.Query = q

	route, err := l.Route()
	if err != nil {
		return Summary{}, fmt.Errorf("compiling route: %w", err)
	}
	run, err := s.StartRun(ctx, route)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "harvest %s\n%s\n", run.ID, route)

	summary := Summary{RunID: run.ID}
	err = page(ctx, f, s, l, cfg.MaxPages, &run, &summary, w)

	run.FinishedAt = time.Now().UTC()
	switch {
	case err == nil:
		run.Status = StatusDone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		run.Status = StatusCanceled
	default:
		run.Status = StatusFailed
	}
	// The run context may be gone; record the outcome regardless.
	if ferr := s.FinishRun(context.WithoutCancel(ctx), run); ferr != nil && err == nil {
		err = ferr
	}

	fmt.Fprintf(w, "\npages: %d, works: %d of %d, dropped fields: %d, status: %s\n",
		summary.Pages, summary.Works, summary.Total, summary.Diagnostics, run.Status)
	return summary, err
}

func page(ctx context.Context, f Fetcher, s *Store, l query.WorkListQuery, maxPages int, run *Run, summary *Summary, w io.Writer) error {
	for maxPages <= 0 || summary.Pages < maxPages {
		if err := ctx.Err(); err != nil {
			return err
		}

		var diags response.Diagnostics
		list, err := f.Works(ctx, l, response.WithDiagnostics(&diags))
		if err != nil {
			return fmt.Errorf("page %d: %w", summary.Pages+1, err)
		}
		if summary.Pages == 0 {
			summary.Total = list.TotalResults
			run.Total = list.TotalResults
		}
		if len(list.Items) == 0 {
			return nil
		}

		n, err := s.SaveWorks(ctx, run.ID, list.Items)
		if err != nil {
			return fmt.Errorf("page %d: %w", summary.Pages+1, err)
		}
		summary.Pages++
		summary.Works += n
		summary.Diagnostics += diags.Len()
		run.Pages, run.Works, run.NextCursor = summary.Pages, summary.Works, list.NextCursor
		fmt.Fprintf(w, "page %d: %d works (%d/%d)\n", summary.Pages, n, summary.Works, summary.Total)

		if list.NextCursor == "" {
			return nil
		}
		l = l.WithCursor(list.NextCursor)
	}
	return nil
}
