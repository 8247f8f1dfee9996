// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package client sends compiled routes to the Crossref REST API and hands the
// response bytes to the decoders in pkg/response. It owns no query or
// decoding logic of its own.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/crossref/internal/httputil"
	"github.com/pdiddy/crossref/pkg/query"
	"github.com/pdiddy/crossref/pkg/response"
	"github.com/pdiddy/crossref/pkg/types"
)

// Client issues GET requests against one API base URL.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string
	Logger *slog.Logger
}

// New builds a Client from config. A nil logger discards.
func New(cfg types.CrossrefConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	base := cfg.BaseURL
	if base == "" {
		base = types.DefaultBaseURL
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   base,
		UserAgent: cfg.UserAgent,
		Mailto:    cfg.Mailto,
		Logger:    logger,
	}
}

// URL compiles q against the client's base URL and appends mailto.
func (c *Client) URL(q query.Query) (string, error) {
	u, err := query.URL(c.BaseURL, q)
	if err != nil {
		return "", err
	}
	if c.Mailto != "" {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + "mailto=" + url.QueryEscape(c.Mailto)
	}
	return u, nil
}

// Fetch compiles q, requests it and parses the body into an untyped tree.
func (c *Client) Fetch(ctx context.Context, q query.Query) (any, error) {
	u, err := c.URL(q)
	if err != nil {
		return nil, fmt.Errorf("compiling route: %w", err)
	}
	var header http.Header
	if c.UserAgent != "" {
		header = http.Header{"User-Agent": {c.UserAgent}}
	}
	c.Logger.Debug("request", "url", u)
	body, err := httputil.Get(ctx, c.HTTP, u, header)
	if err != nil {
		return nil, err
	}
	tree, err := response.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing response from %s: %w", u, err)
	}
	return tree, nil
}

// Envelope fetches q and checks that the response carries the message type
// its route promises.
func (c *Client) Envelope(ctx context.Context, q query.Query) (response.Envelope, error) {
	tree, err := c.Fetch(ctx, q)
	if err != nil {
		return response.Envelope{}, err
	}
	env, err := response.DecodeEnvelope(tree)
	if err != nil {
		return response.Envelope{}, err
	}
	if err := env.Expect(q.Resource().Expect); err != nil {
		return response.Envelope{}, err
	}
	return env, nil
}

func get[T any](ctx context.Context, c *Client, q query.Query, decode func(any, ...response.Option) (T, error), opts []response.Option) (T, error) {
	var zero T
	tree, err := c.Fetch(ctx, q)
	if err != nil {
		return zero, err
	}
	return response.DecodeMessage(tree, q.Resource().Expect, decode, opts...)
}

// Work fetches /works/{doi}.
func (c *Client) Work(ctx context.Context, doi string, opts ...response.Option) (response.Work, error) {
	return get(ctx, c, query.WorkByDOI(doi), response.DecodeWork, opts)
}

// WorkAgency fetches /works/{doi}/agency.
func (c *Client) WorkAgency(ctx context.Context, doi string) (response.WorkAgency, error) {
	return get(ctx, c, query.WorkAgency(doi), response.DecodeWorkAgency, nil)
}

// Works fetches one page of a work list, either /works or the works of a
// parent resource.
func (c *Client) Works(ctx context.Context, l query.WorkListQuery, opts ...response.Option) (response.WorkList, error) {
	return get(ctx, c, l, response.DecodeWorkList, opts)
}

// Journal fetches /journals/{issn}.
func (c *Client) Journal(ctx context.Context, issn string, opts ...response.Option) (response.Journal, error) {
	return get(ctx, c, query.Journal(issn), response.DecodeJournal, opts)
}

// Journals searches /journals.
func (c *Client) Journals(ctx context.Context, q query.ResourceQuery, opts ...response.Option) (response.JournalList, error) {
	return get(ctx, c, query.SearchJournals(q), response.DecodeJournalList, opts)
}
