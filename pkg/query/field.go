// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strings"
)

// FieldQuery searches a single metadata field, e.g. query.author=richard+feynman.
type FieldQuery struct {
	Name  string
	Value string
}

func fieldQuery(field, value string) FieldQuery {
	return FieldQuery{Name: "query." + field, Value: value}
}

// TitleQuery matches work titles.
func TitleQuery(v string) FieldQuery { return fieldQuery("title", v) }

// ContainerTitleQuery matches journal or book titles.
func ContainerTitleQuery(v string) FieldQuery { return fieldQuery("container-title", v) }

// AuthorQuery matches author names.
func AuthorQuery(v string) FieldQuery { return fieldQuery("author", v) }

// EditorQuery matches editor names.
func EditorQuery(v string) FieldQuery { return fieldQuery("editor", v) }

// ChairQuery matches chair names.
func ChairQuery(v string) FieldQuery { return fieldQuery("chair", v) }

// TranslatorQuery matches translator names.
func TranslatorQuery(v string) FieldQuery { return fieldQuery("translator", v) }

// ContributorQuery matches any contributor name.
func ContributorQuery(v string) FieldQuery { return fieldQuery("contributor", v) }

// BibliographicQuery matches titles, authors, ISSNs and publication years.
// It suits citation lookup.
func BibliographicQuery(v string) FieldQuery { return fieldQuery("bibliographic", v) }

// AffiliationQuery matches contributor affiliations.
func AffiliationQuery(v string) FieldQuery { return fieldQuery("affiliation", v) }

var fieldNames = map[string]func(string) FieldQuery{
	"title":           TitleQuery,
	"container-title": ContainerTitleQuery,
	"author":          AuthorQuery,
	"editor":          EditorQuery,
	"chair":           ChairQuery,
	"translator":      TranslatorQuery,
	"contributor":     ContributorQuery,
	"bibliographic":   BibliographicQuery,
	"affiliation":     AffiliationQuery,
}

// ParseFieldQuery parses "field=value" where field is e.g. author or
// query.author.
func ParseFieldQuery(s string) (FieldQuery, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || value == "" {
		return FieldQuery{}, fmt.Errorf("field query %q: expected field=value", s)
	}
	mk, ok := fieldNames[strings.TrimPrefix(name, "query.")]
	if !ok {
		return FieldQuery{}, fmt.Errorf("unknown query field %q", name)
	}
	return mk(value), nil
}

// ParamKey implements Param.
func (f FieldQuery) ParamKey() string { return f.Name }

// ParamValue implements Param.
func (f FieldQuery) ParamValue() (string, bool) { return FormatQuery(f.Value), true }

// WorkElement names a field of a work for the select= parameter.
type WorkElement string

const (
	ElementDOI                 WorkElement = "DOI"
	ElementISBN                WorkElement = "ISBN"
	ElementISSN                WorkElement = "ISSN"
	ElementURL                 WorkElement = "URL"
	ElementAbstract            WorkElement = "abstract"
	ElementAccepted            WorkElement = "accepted"
	ElementAlternativeID       WorkElement = "alternative-id"
	ElementApproved            WorkElement = "approved"
	ElementArchive             WorkElement = "archive"
	ElementArticleNumber       WorkElement = "article-number"
	ElementAssertion           WorkElement = "assertion"
	ElementAuthor              WorkElement = "author"
	ElementChair               WorkElement = "chair"
	ElementClinicalTrialNumber WorkElement = "clinical-trial-number"
	ElementContainerTitle      WorkElement = "container-title"
	ElementContentCreated      WorkElement = "content-created"
	ElementContentDomain       WorkElement = "content-domain"
	ElementCreated             WorkElement = "created"
	ElementDegree              WorkElement = "degree"
	ElementDeposited           WorkElement = "deposited"
	ElementEditor              WorkElement = "editor"
	ElementEvent               WorkElement = "event"
	ElementFunder              WorkElement = "funder"
	ElementGroupTitle          WorkElement = "group-title"
	ElementIndexed             WorkElement = "indexed"
	ElementIsReferencedByCount WorkElement = "is-referenced-by-count"
	ElementIssnType            WorkElement = "issn-type"
	ElementIssue               WorkElement = "issue"
	ElementIssued              WorkElement = "issued"
	ElementLicense             WorkElement = "license"
	ElementLink                WorkElement = "link"
	ElementMember              WorkElement = "member"
	ElementOriginalTitle       WorkElement = "original-title"
	ElementPage                WorkElement = "page"
	ElementPosted              WorkElement = "posted"
	ElementPrefix              WorkElement = "prefix"
	ElementPublished           WorkElement = "published"
	ElementPublishedOnline     WorkElement = "published-online"
	ElementPublishedPrint      WorkElement = "published-print"
	ElementPublisher           WorkElement = "publisher"
	ElementPublisherLocation   WorkElement = "publisher-location"
	ElementReference           WorkElement = "reference"
	ElementReferencesCount     WorkElement = "references-count"
	ElementRelation            WorkElement = "relation"
	ElementScore               WorkElement = "score"
	ElementShortContainerTitle WorkElement = "short-container-title"
	ElementShortTitle          WorkElement = "short-title"
	ElementStandardsBody       WorkElement = "standards-body"
	ElementSubject             WorkElement = "subject"
	ElementSubtitle            WorkElement = "subtitle"
	ElementTitle               WorkElement = "title"
	ElementTranslator          WorkElement = "translator"
	ElementType                WorkElement = "type"
	ElementUpdatePolicy        WorkElement = "update-policy"
	ElementUpdateTo            WorkElement = "update-to"
	ElementUpdatedBy           WorkElement = "updated-by"
	ElementVolume              WorkElement = "volume"
)

// WorkType is a type id from the /types resource.
type WorkType string

const (
	TypeBookSection        WorkType = "book-section"
	TypeMonograph          WorkType = "monograph"
	TypeReportComponent    WorkType = "report-component"
	TypeReport             WorkType = "report"
	TypePeerReview         WorkType = "peer-review"
	TypeBookTrack          WorkType = "book-track"
	TypeJournalArticle     WorkType = "journal-article"
	TypeBookPart           WorkType = "book-part"
	TypeOther              WorkType = "other"
	TypeBook               WorkType = "book"
	TypeJournalVolume      WorkType = "journal-volume"
	TypeBookSet            WorkType = "book-set"
	TypeReferenceEntry     WorkType = "reference-entry"
	TypeProceedingsArticle WorkType = "proceedings-article"
	TypeJournal            WorkType = "journal"
	TypeComponent          WorkType = "component"
	TypeBookChapter        WorkType = "book-chapter"
	TypeProceedingsSeries  WorkType = "proceedings-series"
	TypeReportSeries       WorkType = "report-series"
	TypeProceedings        WorkType = "proceedings"
	TypeStandard           WorkType = "standard"
	TypeReferenceBook      WorkType = "reference-book"
	TypePostedContent      WorkType = "posted-content"
	TypeJournalIssue       WorkType = "journal-issue"
	TypeDissertation       WorkType = "dissertation"
	TypeDataset            WorkType = "dataset"
	TypeBookSeries         WorkType = "book-series"
	TypeEditedBook         WorkType = "edited-book"
	TypeStandardSeries     WorkType = "standard-series"
)
