// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/crossref/pkg/types"
)

// API limits enforced at compile time.
const (
	MaxRows   = 1000
	MaxOffset = 10000
	MaxSample = 100
)

type controlKind int

const (
	controlRows controlKind = iota + 1
	controlOffset
	controlRowsOffset
	controlSample
)

// ResultControl tells the API how many items to return or where to start.
// Construct it with Rows, Offset, RowsOffset, or Sample.
type ResultControl struct {
	kind   controlKind
	rows   int
	offset int
	sample int
}

// Rows limits the items returned per page.
func Rows(n int) ResultControl { return ResultControl{kind: controlRows, rows: n} }

// Offset starts the page at item n. High offsets are slow upstream.
func Offset(n int) ResultControl { return ResultControl{kind: controlOffset, offset: n} }

// RowsOffset combines a row limit with a start offset.
func RowsOffset(rows, offset int) ResultControl {
	return ResultControl{kind: controlRowsOffset, rows: rows, offset: offset}
}

// Sample requests n random items.
func Sample(n int) ResultControl { return ResultControl{kind: controlSample, sample: n} }

// RowCount returns the row limit and whether one is set.
func (rc ResultControl) RowCount() (int, bool) {
	return rc.rows, rc.kind == controlRows || rc.kind == controlRowsOffset
}

// StartOffset returns the offset and whether one is set.
func (rc ResultControl) StartOffset() (int, bool) {
	return rc.offset, rc.kind == controlOffset || rc.kind == controlRowsOffset
}

// SampleSize returns the sample size and whether this is a sample control.
func (rc ResultControl) SampleSize() (int, bool) {
	return rc.sample, rc.kind == controlSample
}

// IsZero reports whether rc was never constructed.
func (rc ResultControl) IsZero() bool { return rc.kind == 0 }

// Key implements Fragment. RowsOffset has no single key and renders both
// parameters as its key.
func (rc ResultControl) Key() string {
	switch rc.kind {
	case controlRows:
		return "rows"
	case controlOffset:
		return "offset"
	case controlRowsOffset:
		return fmt.Sprintf("rows=%d&offset=%d", rc.rows, rc.offset)
	case controlSample:
		return "sample"
	}
	return ""
}

// Value implements Fragment.
func (rc ResultControl) Value() (string, bool) {
	switch rc.kind {
	case controlRows:
		return strconv.Itoa(rc.rows), true
	case controlOffset:
		return strconv.Itoa(rc.offset), true
	case controlSample:
		return strconv.Itoa(rc.sample), true
	}
	return "", false
}

// Render returns the query-string form, e.g. "rows=10&offset=5".
func (rc ResultControl) Render() string {
	if v, ok := rc.Value(); ok {
		return rc.Key() + "=" + v
	}
	return rc.Key()
}

// Validate checks the control against the API limits.
func (rc ResultControl) Validate() error {
	switch rc.kind {
	case 0:
		return &types.ConfigError{Description: "result control is not set"}
	case controlSample:
		return validateSample(rc.sample)
	}
	if rows, ok := rc.RowCount(); ok && (rows < 0 || rows > MaxRows) {
		return &types.ConfigError{Description: fmt.Sprintf("rows %d outside [0, %d]", rows, MaxRows)}
	}
	if off, ok := rc.StartOffset(); ok && (off < 0 || off > MaxOffset) {
		return &types.ConfigError{Description: fmt.Sprintf("offset %d outside [0, %d]", off, MaxOffset)}
	}
	return nil
}

func validateSample(n int) error {
	if n < 1 || n > MaxSample {
		return &types.ConfigError{Description: fmt.Sprintf("sample %d outside [1, %d]", n, MaxSample)}
	}
	return nil
}

func (rc ResultControl) isWorkResultControl() {}

// Cursor deep-pages through a works result set. An empty Token starts a new
// session (rendered as '*'); later requests carry the token returned in the
// previous page's next-cursor. Rows of zero means no row limit was requested.
type Cursor struct {
	Token string
	Rows  int
}

// NewCursor starts a new deep-paging session.
func NewCursor() Cursor { return Cursor{} }

// CursorToken continues a session with a token returned by the API. The
// wire value "*" starts a new session.
func CursorToken(token string) Cursor {
	if token == "*" {
		token = ""
	}
	return Cursor{Token: token}
}

// Key renders cursor={token|*}.
func (c Cursor) Key() string {
	if c.Token == "" || c.Token == "*" {
		return "cursor=*"
	}
	return "cursor=" + url.QueryEscape(c.Token)
}

// Value renders rows={n} when a row limit is set.
func (c Cursor) Value() (string, bool) {
	if c.Rows > 0 {
		return "rows=" + strconv.Itoa(c.Rows), true
	}
	return "", false
}

// Render joins the cursor and the optional row limit with '&'.
func (c Cursor) Render() string {
	if v, ok := c.Value(); ok {
		return c.Key() + "&" + v
	}
	return c.Key()
}

// Validate checks the row limit against the API limits.
func (c Cursor) Validate() error {
	if c.Rows < 0 || c.Rows > MaxRows {
		return &types.ConfigError{Description: fmt.Sprintf("rows %d outside [0, %d]", c.Rows, MaxRows)}
	}
	return nil
}

func (c Cursor) isWorkResultControl() {}

// WorkResultControl is either a standard ResultControl or a Cursor. The two
// are mutually exclusive on a works query.
type WorkResultControl interface {
	Render() string
	Validate() error
	isWorkResultControl()
}

// ParseResultControl parses a rendered control ("rows=10", "offset=5",
// "rows=10&offset=5", "sample=3") back into a ResultControl.
func ParseResultControl(s string) (ResultControl, error) {
	fail := func(reason string) (ResultControl, error) {
		return ResultControl{}, &types.InvalidResultControlError{Description: fmt.Sprintf("%q: %s", s, reason)}
	}
	vals := map[string]int{}
	for _, part := range strings.Split(s, "&") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return fail("expected key=value")
		}
		if _, dup := vals[k]; dup {
			return fail("duplicate key " + k)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fail(fmt.Sprintf("value of %s is not an integer", k))
		}
		vals[k] = n
	}
	rows, hasRows := vals["rows"]
	offset, hasOffset := vals["offset"]
	sample, hasSample := vals["sample"]
	switch {
	case hasSample && len(vals) == 1:
		return Sample(sample), nil
	case hasRows && hasOffset && len(vals) == 2:
		return RowsOffset(rows, offset), nil
	case hasRows && len(vals) == 1:
		return Rows(rows), nil
	case hasOffset && len(vals) == 1:
		return Offset(offset), nil
	}
	return fail("unsupported combination")
}

// ParseWorkResultControl parses either a standard control or a rendered
// cursor ("cursor=*", "cursor=abc&rows=20").
func ParseWorkResultControl(s string) (WorkResultControl, error) {
	if !strings.HasPrefix(s, "cursor=") {
		return ParseResultControl(s)
	}
	fail := func(reason string) (WorkResultControl, error) {
		return nil, &types.InvalidResultControlError{Description: fmt.Sprintf("%q: %s", s, reason)}
	}
	tokenPart, rest, hasRest := strings.Cut(strings.TrimPrefix(s, "cursor="), "&")
	var c Cursor
	if tokenPart != "*" {
		tok, err := url.QueryUnescape(tokenPart)
		if err != nil || tok == "" {
			return fail("invalid cursor token")
		}
		c.Token = tok
	}
	if hasRest {
		v, ok := strings.CutPrefix(rest, "rows=")
		if !ok {
			return fail("expected rows after cursor")
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fail("rows is not a positive integer")
		}
		c.Rows = n
	}
	return c, nil
}
