// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/types"
)

// minimalWork returns the smallest object that decodes into a Work, shaped
// like encoding/json output (float64 numbers).
func minimalWork() map[string]any {
	date := func() map[string]any {
		return map[string]any{
			"date-parts": []any{[]any{2020.0, 1.0, 1.0}},
			"timestamp":  0.0,
			"date-time":  "2020-01-01T00:00:00Z",
		}
	}
	return map[string]any{
		"title":     []any{"T"},
		"DOI":       "10.1/x",
		"member":    "1",
		"type":      "journal-article",
		"created":   date(),
		"indexed":   date(),
		"publisher": "P",
	}
}

func loadMessage(t *testing.T, name string) any {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	tree, err := Parse(b)
	require.NoError(t, err)
	env, err := DecodeEnvelope(tree)
	require.NoError(t, err)
	return env.Message
}

func TestDecodeWork_Minimal(t *testing.T) {
	w, err := DecodeWork(minimalWork())
	require.NoError(t, err)

	assert.Equal(t, "P", w.Publisher)
	assert.Equal(t, []string{"T"}, w.Title)
	assert.Equal(t, "10.1/x", w.DOI)
	assert.Nil(t, w.ContainerTitle)
	assert.Empty(t, w.Abstract)

	f, ok := w.Created.AsDateField()
	require.True(t, ok)
	assert.Equal(t, Single, f.Shape)
	assert.Equal(t, CalendarDate{Year: 2020, Month: 1, Day: 1}, f.From())
}

func TestDecodeWork_MissingRequired(t *testing.T) {
	for _, key := range []string{"publisher", "title", "DOI", "member", "type", "created", "indexed"} {
		t.Run(key, func(t *testing.T) {
			v := minimalWork()
			delete(v, key)
			w, err := DecodeWork(v)
			require.Error(t, err)
			assert.Equal(t, Work{}, w, "no partial work")
			var missing *types.MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, key, missing.Name)
			assert.ErrorIs(t, err, types.ErrDecode)
		})
	}
}

func TestDecodeWork_NullRequiredIsMissing(t *testing.T) {
	v := minimalWork()
	v["DOI"] = nil
	_, err := DecodeWork(v)
	var missing *types.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "DOI", missing.Name)
}

func TestDecodeWork_InvalidType(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(map[string]any)
		field string
	}{
		{"publisher number", func(m map[string]any) { m["publisher"] = 3.0 }, "publisher"},
		{"title string", func(m map[string]any) { m["title"] = "T" }, "title"},
		{"title element", func(m map[string]any) { m["title"] = []any{"T", 7.0} }, "title[1]"},
		{"created timestamp", func(m map[string]any) { m["created"].(map[string]any)["timestamp"] = "0" }, "created.timestamp"},
		{"indexed month", func(m map[string]any) {
			m["indexed"].(map[string]any)["date-parts"] = []any{[]any{2020.0, 13.0}}
		}, "indexed.date-parts[0][1]"},
		{"indexed day past month end", func(m map[string]any) {
			m["indexed"].(map[string]any)["date-parts"] = []any{[]any{2020.0, 2.0, 31.0}}
		}, "indexed.date-parts[0][2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := minimalWork()
			tt.edit(v)
			_, err := DecodeWork(v)
			var invalid *types.InvalidTypeError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.field, invalid.Name)
		})
	}
}

func TestDecodeWork_OptionalFieldsAbsorbed(t *testing.T) {
	v := minimalWork()
	v["abstract"] = 12.0
	v["references-count"] = "many"
	v["container-title"] = []any{"J", nil}
	v["author"] = []any{
		map[string]any{"family": "Smith", "sequence": "first", "affiliation": []any{}},
		map[string]any{"family": "Jones", "affiliation": []any{}},
	}

	var diag Diagnostics
	w, err := DecodeWork(v, WithDiagnostics(&diag))
	require.NoError(t, err)
	assert.Empty(t, w.Abstract)
	assert.Nil(t, w.ReferencesCount)
	assert.Nil(t, w.ContainerTitle)
	assert.Nil(t, w.Author, "one bad author drops the list")

	fieldsDropped := map[string]error{}
	for _, d := range diag.Items {
		fieldsDropped[d.Field] = d.Err
	}
	assert.Len(t, fieldsDropped, 4)
	var missing *types.MissingFieldError
	require.True(t, errors.As(fieldsDropped["author"], &missing))
	assert.Equal(t, "author[1].sequence", missing.Name)
}

func TestDecodeWork_NotAnObject(t *testing.T) {
	for _, v := range []any{nil, "work", []any{}, 1.0} {
		_, err := DecodeWork(v)
		var mt *types.InvalidMessageTypeError
		assert.True(t, errors.As(err, &mt), "%v", v)
	}
}

func TestDecodeWork_Fixture(t *testing.T) {
	var diag Diagnostics
	w, err := DecodeWork(loadMessage(t, "work.json"), WithDiagnostics(&diag))
	require.NoError(t, err)
	assert.Zero(t, diag.Len())

	assert.Equal(t, "10.1103/PhysRevD.99.044036", w.DOI)
	assert.Equal(t, []string{"Physical Review D"}, w.ContainerTitle)
	require.Len(t, w.Author, 2)
	assert.Equal(t, "Sánchez", w.Author[0].Family)
	assert.Equal(t, []Affiliation{{Name: "Universidad de Granada"}}, w.Author[0].Affiliation)
	require.NotNil(t, w.Author[0].AuthenticatedORCID)
	assert.True(t, *w.Author[0].AuthenticatedORCID)
	assert.Empty(t, w.Author[1].Affiliation)
	assert.Equal(t, int64(1551289642000), w.Created.Timestamp)
	assert.Equal(t, 17, *w.IsReferencedByCount)
	assert.Equal(t, 1.0, *w.Score)
	assert.Equal(t, []ISSN{{Value: "2470-0010", Type: "print"}, {Value: "2470-0029", Type: "electronic"}}, w.ISSNType)
	require.Len(t, w.License, 1)
	assert.Equal(t, "2019-04-01", w.License[0].Start.String())
	require.Len(t, w.Funder, 1)
	assert.Equal(t, []string{"PHY-1607611"}, w.Funder[0].Award)
	require.NotNil(t, w.JournalIssue)
	assert.Equal(t, "2019-02-01", w.JournalIssue.PublishedPrint.String())
	require.NotNil(t, w.ContentDomain)
	assert.False(t, w.ContentDomain.CrossmarkRestriction)
	assert.Equal(t, 2019, w.Year())
	assert.Len(t, w.Reference, 2)
	assert.Equal(t, "A. Einstein, Sitzungsber. (1916).", w.Reference[1].Unstructured)

	rel := DecodeRelations(w.Relation)
	assert.Equal(t, []Relation{{IDType: "arxiv", ID: "1811.00000", AssertedBy: "subject"}}, rel["is-preprint-of"])
	assert.Equal(t, []Relation{{IDType: "doi", ID: "10.1/review", AssertedBy: "object"}}, rel["has-review"])
}

func TestDecodeWork_NumberRepresentations(t *testing.T) {
	raw := `{"publisher":"P","title":["T"],"DOI":"10.1/x","member":"1","type":"t",
		"created":{"date-parts":[[2020,1,1]],"timestamp":1577836800000,"date-time":"2020-01-01T00:00:00Z"},
		"indexed":{"date-parts":[[2020,1,1]],"timestamp":1577836800000,"date-time":"2020-01-01T00:00:00Z"},
		"references-count":3}`

	var floats any
	require.NoError(t, json.Unmarshal([]byte(raw), &floats))
	fromFloat, err := DecodeWork(floats)
	require.NoError(t, err)

	numbers, err := Parse([]byte(raw))
	require.NoError(t, err)
	fromNumber, err := DecodeWork(numbers)
	require.NoError(t, err)

	assert.Equal(t, fromFloat, fromNumber)
	assert.Equal(t, 3, *fromNumber.ReferencesCount)
	assert.Equal(t, int64(1577836800000), fromNumber.Indexed.Timestamp)
}

func TestWork_YearFallsBackToCreated(t *testing.T) {
	v := minimalWork()
	v["issued"] = map[string]any{"date-parts": []any{[]any{nil}}}
	w, err := DecodeWork(v)
	require.NoError(t, err)
	require.NotNil(t, w.Issued)
	assert.Equal(t, 0, w.Issued.Year())
	assert.Equal(t, 2020, w.Year())
}

func TestDecodeWorkAgency(t *testing.T) {
	a, err := DecodeWorkAgency(map[string]any{
		"DOI":    "10.1037/0003-066x.59.1.29",
		"agency": map[string]any{"id": "crossref", "label": "Crossref"},
	})
	require.NoError(t, err)
	assert.Equal(t, "crossref", a.Agency.ID)

	_, err = DecodeWorkAgency(map[string]any{"DOI": "10.1/x", "agency": map[string]any{}})
	var missing *types.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "agency.id", missing.Name)
}

func TestDecodeReview(t *testing.T) {
	r, err := DecodeReview(map[string]any{"type": "referee-report", "stage": "pre-publication", "revision-round": 2.0})
	require.NoError(t, err)
	assert.Equal(t, "referee-report", r.Type)
	assert.Equal(t, "pre-publication", r.Stage)
	assert.Empty(t, r.RevisionRound)

	_, err = DecodeReview(map[string]any{})
	assert.ErrorIs(t, err, types.ErrDecode)
}
