// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/crossref/pkg/types"
)

// FilterKind is the wire key of a works filter.
type FilterKind string

const (
	FilterHasFunder              FilterKind = "has-funder"
	FilterFunder                 FilterKind = "funder"
	FilterLocation               FilterKind = "location"
	FilterPrefix                 FilterKind = "prefix"
	FilterMember                 FilterKind = "member"
	FilterFromIndexDate          FilterKind = "from-index-date"
	FilterUntilIndexDate         FilterKind = "until-index-date"
	FilterFromDepositDate        FilterKind = "from-deposit-date"
	FilterUntilDepositDate       FilterKind = "until-deposit-date"
	FilterFromUpdateDate         FilterKind = "from-update-date"
	FilterUntilUpdateDate        FilterKind = "until-update-date"
	FilterFromCreatedDate        FilterKind = "from-created-date"
	FilterUntilCreatedDate       FilterKind = "until-created-date"
	FilterFromPubDate            FilterKind = "from-pub-date"
	FilterUntilPubDate           FilterKind = "until-pub-date"
	FilterFromOnlinePubDate      FilterKind = "from-online-pub-date"
	FilterUntilOnlinePubDate     FilterKind = "until-online-pub-date"
	FilterFromPrintPubDate       FilterKind = "from-print-pub-date"
	FilterUntilPrintPubDate      FilterKind = "until-print-pub-date"
	FilterFromPostedDate         FilterKind = "from-posted-date"
	FilterUntilPostedDate        FilterKind = "until-posted-date"
	FilterFromAcceptedDate       FilterKind = "from-accepted-date"
	FilterUntilAcceptedDate      FilterKind = "until-accepted-date"
	FilterHasLicense             FilterKind = "has-license"
	FilterLicenseURL             FilterKind = "license.url"
	FilterLicenseVersion         FilterKind = "license.version"
	FilterLicenseDelay           FilterKind = "license.delay"
	FilterHasFullText            FilterKind = "has-full-text"
	FilterFullTextVersion        FilterKind = "full-text.version"
	FilterFullTextType           FilterKind = "full-text.type"
	FilterFullTextApplication    FilterKind = "full-text.application"
	FilterHasReferences          FilterKind = "has-references"
	FilterReferenceVisibility    FilterKind = "reference-visibility"
	FilterHasArchive             FilterKind = "has-archive"
	FilterArchive                FilterKind = "archive"
	FilterHasOrcid               FilterKind = "has-orcid"
	FilterHasAuthenticatedOrcid  FilterKind = "has-authenticated-orcid"
	FilterOrcid                  FilterKind = "orcid"
	FilterIssn                   FilterKind = "issn"
	FilterIsbn                   FilterKind = "isbn"
	FilterType                   FilterKind = "type"
	FilterDirectory              FilterKind = "directory"
	FilterDoi                    FilterKind = "doi"
	FilterUpdates                FilterKind = "updates"
	FilterIsUpdate               FilterKind = "is-update"
	FilterHasUpdatePolicy        FilterKind = "has-update-policy"
	FilterContainerTitle         FilterKind = "container-title"
	FilterCategoryName           FilterKind = "category-name"
	FilterTypeName               FilterKind = "type-name"
	FilterAwardNumber            FilterKind = "award.number"
	FilterAwardFunder            FilterKind = "award.funder"
	FilterHasAssertion           FilterKind = "has-assertion"
	FilterAssertionGroup         FilterKind = "assertion-group"
	FilterAssertion              FilterKind = "assertion"
	FilterHasAffiliation         FilterKind = "has-affiliation"
	FilterAlternativeID          FilterKind = "alternative-id"
	FilterArticleNumber          FilterKind = "article-number"
	FilterHasAbstract            FilterKind = "has-abstract"
	FilterHasClinicalTrialNumber FilterKind = "has-clinical-trial-number"
	FilterContentDomain          FilterKind = "content-domain"
	FilterHasContentDomain       FilterKind = "has-content-domain"
	FilterHasDomainRestriction   FilterKind = "has-domain-restriction"
	FilterHasRelation            FilterKind = "has-relation"
	FilterRelationType           FilterKind = "relation.type"
	FilterRelationObject         FilterKind = "relation.object"
	FilterRelationObjectType     FilterKind = "relation.object-type"
)

// valueKind is the shape of the value a filter kind carries on the wire.
type valueKind int

const (
	valueFlag valueKind = iota + 1
	valueString
	valueDate
	valueInt
	valueWorkType
	valueVisibility
)

// filterKinds is the closed table of filters. Adding a kind means adding a
// constant above and one entry here.
var filterKinds = map[FilterKind]valueKind{
	FilterHasFunder:              valueFlag,
	FilterFunder:                 valueString,
	FilterLocation:               valueString,
	FilterPrefix:                 valueString,
	FilterMember:                 valueString,
	FilterFromIndexDate:          valueDate,
	FilterUntilIndexDate:         valueDate,
	FilterFromDepositDate:        valueDate,
	FilterUntilDepositDate:       valueDate,
	FilterFromUpdateDate:         valueDate,
	FilterUntilUpdateDate:        valueDate,
	FilterFromCreatedDate:        valueDate,
	FilterUntilCreatedDate:       valueDate,
	FilterFromPubDate:            valueDate,
	FilterUntilPubDate:           valueDate,
	FilterFromOnlinePubDate:      valueDate,
	FilterUntilOnlinePubDate:     valueDate,
	FilterFromPrintPubDate:       valueDate,
	FilterUntilPrintPubDate:      valueDate,
	FilterFromPostedDate:         valueDate,
	FilterUntilPostedDate:        valueDate,
	FilterFromAcceptedDate:       valueDate,
	FilterUntilAcceptedDate:      valueDate,
	FilterHasLicense:             valueFlag,
	FilterLicenseURL:             valueString,
	FilterLicenseVersion:         valueString,
	FilterLicenseDelay:           valueInt,
	FilterHasFullText:            valueFlag,
	FilterFullTextVersion:        valueString,
	FilterFullTextType:           valueString,
	FilterFullTextApplication:    valueString,
	FilterHasReferences:          valueFlag,
	FilterReferenceVisibility:    valueVisibility,
	FilterHasArchive:             valueFlag,
	FilterArchive:                valueString,
	FilterHasOrcid:               valueFlag,
	FilterHasAuthenticatedOrcid:  valueFlag,
	FilterOrcid:                  valueString,
	FilterIssn:                   valueString,
	FilterIsbn:                   valueString,
	FilterType:                   valueWorkType,
	FilterDirectory:              valueString,
	FilterDoi:                    valueString,
	FilterUpdates:                valueString,
	FilterIsUpdate:               valueFlag,
	FilterHasUpdatePolicy:        valueFlag,
	FilterContainerTitle:         valueString,
	FilterCategoryName:           valueString,
	FilterTypeName:               valueString,
	FilterAwardNumber:            valueString,
	FilterAwardFunder:            valueString,
	FilterHasAssertion:           valueFlag,
	FilterAssertionGroup:         valueString,
	FilterAssertion:              valueString,
	FilterHasAffiliation:         valueFlag,
	FilterAlternativeID:          valueString,
	FilterArticleNumber:          valueString,
	FilterHasAbstract:            valueFlag,
	FilterHasClinicalTrialNumber: valueFlag,
	FilterContentDomain:          valueString,
	FilterHasContentDomain:       valueFlag,
	FilterHasDomainRestriction:   valueFlag,
	FilterHasRelation:            valueFlag,
	FilterRelationType:           valueString,
	FilterRelationObject:         valueString,
	FilterRelationObjectType:     valueString,
}

// FilterKinds returns every known filter kind.
func FilterKinds() []FilterKind {
	out := make([]FilterKind, 0, len(filterKinds))
	for k := range filterKinds {
		out = append(out, k)
	}
	return out
}

// IsFlag reports whether k takes no user value (rendered as "true").
func (k FilterKind) IsFlag() bool { return filterKinds[k] == valueFlag }

// IsDate reports whether k takes a calendar date.
func (k FilterKind) IsDate() bool { return filterKinds[k] == valueDate }

// WorksFilter narrows a works query. Build it with the constructors below;
// Validate reports a kind/value mismatch.
type WorksFilter struct {
	kind FilterKind
	str  string
	date time.Time
	num  int
}

// Flag builds a boolean filter such as has-funder.
func Flag(k FilterKind) WorksFilter { return WorksFilter{kind: k} }

// StringFilter builds a filter whose value is an identifier string.
func StringFilter(k FilterKind, v string) WorksFilter { return WorksFilter{kind: k, str: v} }

// DateFilter builds a date filter rendered as YYYY-MM-DD.
func DateFilter(k FilterKind, d time.Time) WorksFilter { return WorksFilter{kind: k, date: d} }

// HasFunder matches works with one or more funder entries.
func HasFunder() WorksFilter { return Flag(FilterHasFunder) }

// Funder matches works funded by the Funder Registry id.
func Funder(id string) WorksFilter { return StringFilter(FilterFunder, id) }

// Member matches works belonging to a Crossref member.
func Member(id string) WorksFilter { return StringFilter(FilterMember, id) }

// Prefix matches works under a DOI owner prefix (e.g. 10.1016).
func Prefix(p string) WorksFilter { return StringFilter(FilterPrefix, p) }

// Issn matches works with the ISSN (xxxx-xxxx).
func Issn(issn string) WorksFilter { return StringFilter(FilterIssn, issn) }

// Doi matches the work with the DOI.
func Doi(doi string) WorksFilter { return StringFilter(FilterDoi, doi) }

// Orcid matches works with a contributor ORCID.
func Orcid(orcid string) WorksFilter { return StringFilter(FilterOrcid, orcid) }

// FromPubDate matches works published on or after d.
func FromPubDate(d time.Time) WorksFilter { return DateFilter(FilterFromPubDate, d) }

// UntilPubDate matches works published on or before d.
func UntilPubDate(d time.Time) WorksFilter { return DateFilter(FilterUntilPubDate, d) }

// LicenseDelay matches works whose license starts at most days after publication.
func LicenseDelay(days int) WorksFilter { return WorksFilter{kind: FilterLicenseDelay, num: days} }

// OfType matches works of a type id from the /types resource.
func OfType(t WorkType) WorksFilter { return WorksFilter{kind: FilterType, str: string(t)} }

// ReferenceVisibility matches works whose references have visibility v.
func ReferenceVisibility(v Visibility) WorksFilter {
	return WorksFilter{kind: FilterReferenceVisibility, str: string(v)}
}

// Kind returns the filter kind.
func (f WorksFilter) Kind() FilterKind { return f.kind }

// Key implements Fragment.
func (f WorksFilter) Key() string { return string(f.kind) }

// Value implements Fragment. Every filter carries a value on the wire.
func (f WorksFilter) Value() (string, bool) {
	switch filterKinds[f.kind] {
	case valueFlag:
		return "true", true
	case valueDate:
		return f.date.Format("2006-01-02"), true
	case valueInt:
		return strconv.Itoa(f.num), true
	}
	return f.str, true
}

// Validate checks that the filter's value matches its kind.
func (f WorksFilter) Validate() error {
	vk, ok := filterKinds[f.kind]
	if !ok {
		return &types.ConfigError{Description: fmt.Sprintf("unknown filter %q", f.kind)}
	}
	switch vk {
	case valueString, valueWorkType:
		if f.str == "" {
			return &types.ConfigError{Description: fmt.Sprintf("filter %s requires a value", f.kind)}
		}
		return checkFragment(f)
	case valueVisibility:
		switch Visibility(f.str) {
		case VisibilityOpen, VisibilityLimited, VisibilityClosed:
		default:
			return &types.ConfigError{Description: fmt.Sprintf("filter %s: invalid visibility %q", f.kind, f.str)}
		}
	case valueDate:
		if f.date.IsZero() {
			return &types.ConfigError{Description: fmt.Sprintf("filter %s requires a date", f.kind)}
		}
	case valueFlag:
		if f.str != "" {
			return &types.ConfigError{Description: fmt.Sprintf("filter %s takes no value", f.kind)}
		}
	}
	return nil
}

// ParseFilter parses the CLI form "key" or "key:value". Date kinds take
// YYYY-MM-DD; license.delay takes an integer.
func ParseFilter(s string) (WorksFilter, error) {
	key, val, hasVal := strings.Cut(s, ":")
	k := FilterKind(key)
	vk, ok := filterKinds[k]
	if !ok {
		return WorksFilter{}, fmt.Errorf("unknown filter %q", key)
	}
	if vk == valueFlag {
		if hasVal && val != "true" {
			return WorksFilter{}, fmt.Errorf("filter %s takes no value", key)
		}
		return Flag(k), nil
	}
	if !hasVal || val == "" {
		return WorksFilter{}, fmt.Errorf("filter %s requires a value", key)
	}
	switch vk {
	case valueDate:
		d, err := time.Parse("2006-01-02", val)
		if err != nil {
			return WorksFilter{}, fmt.Errorf("filter %s: invalid date %q: %w", key, val, err)
		}
		return DateFilter(k, d), nil
	case valueInt:
		n, err := strconv.Atoi(val)
		if err != nil {
			return WorksFilter{}, fmt.Errorf("filter %s: invalid integer %q: %w", key, val, err)
		}
		return WorksFilter{kind: k, num: n}, nil
	}
	return WorksFilter{kind: k, str: val}, nil
}
