// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/types"
)

func TestWorksFilter_Fragments(t *testing.T) {
	day := time.Date(2019, time.March, 7, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		filter WorksFilter
		want   string
	}{
		{"flag", HasFunder(), "has-funder:true"},
		{"funder", Funder("10.13039/100000001"), "funder:10.13039/100000001"},
		{"member", Member("15"), "member:15"},
		{"from pub date", FromPubDate(day), "from-pub-date:2019-03-07"},
		{"until pub date", UntilPubDate(day), "until-pub-date:2019-03-07"},
		{"license delay", LicenseDelay(30), "license.delay:30"},
		{"type", OfType(TypeJournalArticle), "type:journal-article"},
		{"visibility", ReferenceVisibility(VisibilityOpen), "reference-visibility:open"},
		{"clinical trial flag", Flag(FilterHasClinicalTrialNumber), "has-clinical-trial-number:true"},
		{"alternative id", StringFilter(FilterAlternativeID, "S0000"), "alternative-id:S0000"},
		{"orcid", Orcid("0000-0002-1825-0097"), "orcid:0000-0002-1825-0097"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.filter.Validate())
			assert.Equal(t, tt.want, RenderFragment(tt.filter))
		})
	}
}

func TestFilterKinds_WireKeys(t *testing.T) {
	kinds := FilterKinds()
	assert.Len(t, kinds, 66)
	for _, k := range kinds {
		assert.NotEmpty(t, string(k))
		assert.Equal(t, strings.TrimSpace(string(k)), string(k), "key %q carries whitespace", k)
	}
}

func TestWorksFilter_ValidateMismatch(t *testing.T) {
	bad := []WorksFilter{
		StringFilter(FilterHasFunder, "yes"),
		StringFilter(FilterMember, ""),
		DateFilter(FilterFromPubDate, time.Time{}),
		ReferenceVisibility("public"),
		Flag("no-such-filter"),
	}
	for _, f := range bad {
		err := f.Validate()
		var cfg *types.ConfigError
		assert.True(t, errors.As(err, &cfg), "filter %s", f.Key())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"has-funder", "has-funder:true"},
		{"has-funder:true", "has-funder:true"},
		{"member:15", "member:15"},
		{"from-pub-date:2020-01-31", "from-pub-date:2020-01-31"},
		{"license.delay:0", "license.delay:0"},
		{"orcid:https://orcid.org/0000-0002-1825-0097", "orcid:https://orcid.org/0000-0002-1825-0097"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFilter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, RenderFragment(f))
		})
	}

	for _, bad := range []string{"nope", "member", "member:", "has-funder:false", "from-pub-date:2020/01/31", "license.delay:soon"} {
		_, err := ParseFilter(bad)
		assert.Error(t, err, bad)
	}
}
