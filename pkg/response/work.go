// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

// Work is a registered publication, the principal record of the API.
// Publisher, Title, DOI, Member, Type, Created and Indexed are always present
// after a successful decode. Everything else is optional because deposited
// metadata varies by publisher: absent strings are empty, absent lists and
// records are nil.
type Work struct {
	Publisher           string                `json:"publisher"`
	Title               []string              `json:"title"`
	OriginalTitle       []string              `json:"original-title,omitempty"`
	ShortTitle          []string              `json:"short-title,omitempty"`
	Subtitle            []string              `json:"subtitle,omitempty"`
	Language            string                `json:"language,omitempty"`
	Abstract            string                `json:"abstract,omitempty"`
	ReferencesCount     *int                  `json:"references-count,omitempty"`
	IsReferencedByCount *int                  `json:"is-referenced-by-count,omitempty"`
	Source              string                `json:"source,omitempty"`
	JournalIssue        *Issue                `json:"journal-issue,omitempty"`
	Prefix              string                `json:"prefix,omitempty"`
	DOI                 string                `json:"DOI"`
	URL                 string                `json:"URL,omitempty"`
	Member              string                `json:"member"`
	Type                string                `json:"type"`
	Created             Date                  `json:"created"`
	Date                *Date                 `json:"date,omitempty"`
	Deposited           *Date                 `json:"deposited,omitempty"`
	Indexed             Date                  `json:"indexed"`
	Score               *float64              `json:"score,omitempty"`
	Issued              *PartialDate          `json:"issued,omitempty"`
	Posted              *PartialDate          `json:"posted,omitempty"`
	Accepted            *PartialDate          `json:"accepted,omitempty"`
	PublishedPrint      *PartialDate          `json:"published-print,omitempty"`
	PublishedOnline     *PartialDate          `json:"published-online,omitempty"`
	ContainerTitle      []string              `json:"container-title,omitempty"`
	ShortContainerTitle []string              `json:"short-container-title,omitempty"`
	GroupTitle          string                `json:"group-title,omitempty"`
	Issue               string                `json:"issue,omitempty"`
	Volume              string                `json:"volume,omitempty"`
	Page                string                `json:"page,omitempty"`
	ArticleNumber       string                `json:"article-number,omitempty"`
	Subject             []string              `json:"subject,omitempty"`
	ISSN                []string              `json:"ISSN,omitempty"`
	ISSNType            []ISSN                `json:"issn-type,omitempty"`
	ISBN                []string              `json:"ISBN,omitempty"`
	Archive             []string              `json:"archive,omitempty"`
	License             []License             `json:"license,omitempty"`
	Funder              []FundingBody         `json:"funder,omitempty"`
	Assertion           []Assertion           `json:"assertion,omitempty"`
	Author              []Contributor         `json:"author,omitempty"`
	Editor              []Contributor         `json:"editor,omitempty"`
	Chair               []Contributor         `json:"chair,omitempty"`
	Translator          []Contributor         `json:"translator,omitempty"`
	UpdateTo            []Update              `json:"update-to,omitempty"`
	UpdatePolicy        string                `json:"update-policy,omitempty"`
	Link                []ResourceLink        `json:"link,omitempty"`
	ClinicalTrialNumber []ClinicalTrialNumber `json:"clinical-trial-number,omitempty"`
	AlternativeID       []string              `json:"alternative-id,omitempty"`
	Reference           []Reference           `json:"reference,omitempty"`
	ContentDomain       *ContentDomain        `json:"content-domain,omitempty"`
	// Relation maps a relation name to an object or a list of objects; the
	// shape is unspecified upstream so values stay untyped.
	Relation map[string]any `json:"relation,omitempty"`
	Review   map[string]any `json:"review,omitempty"`
}

// Issue is the journal issue a work appeared in.
type Issue struct {
	PublishedPrint  *PartialDate `json:"published-print,omitempty"`
	PublishedOnline *PartialDate `json:"published-online,omitempty"`
	Issue           string       `json:"issue,omitempty"`
}

// FundingBody is a funder of the work.
type FundingBody struct {
	Name          string   `json:"name"`
	DOI           string   `json:"DOI,omitempty"`
	Award         []string `json:"award,omitempty"`
	DOIAssertedBy string   `json:"doi-asserted-by,omitempty"`
}

// ClinicalTrialNumber is a trial registered for the work.
type ClinicalTrialNumber struct {
	ClinicalTrialNumber string `json:"clinical-trial-number"`
	Registry            string `json:"registry"`
	Type                string `json:"type,omitempty"`
}

// Contributor is an author, editor, chair or translator.
type Contributor struct {
	Prefix             string        `json:"prefix,omitempty"`
	Suffix             string        `json:"suffix,omitempty"`
	Family             string        `json:"family,omitempty"`
	Given              string        `json:"given,omitempty"`
	Name               string        `json:"name,omitempty"`
	ORCID              string        `json:"ORCID,omitempty"`
	AuthenticatedORCID *bool         `json:"authenticated-orcid,omitempty"`
	Affiliation        []Affiliation `json:"affiliation"`
	Sequence           string        `json:"sequence"`
}

// DisplayName is the family name, or the organisation name for group
// contributors.
func (c Contributor) DisplayName() string {
	if c.Family != "" {
		return c.Family
	}
	return c.Name
}

// Affiliation is an institution a contributor belongs to.
type Affiliation struct {
	Name string `json:"name"`
}

// Update records that the work updates another DOI, e.g. a correction.
type Update struct {
	Updated PartialDate `json:"updated"`
	DOI     string      `json:"DOI"`
	Type    string      `json:"type"`
	Label   string      `json:"label,omitempty"`
}

// Assertion is a piece of Crossmark metadata.
type Assertion struct {
	Name        string          `json:"name"`
	Value       string          `json:"value,omitempty"`
	URL         string          `json:"URL,omitempty"`
	Explanation *AssertionURL   `json:"explanation,omitempty"`
	Label       string          `json:"label,omitempty"`
	Order       *int            `json:"order,omitempty"`
	Group       *AssertionGroup `json:"group,omitempty"`
}

// AssertionURL is the explanation link of an assertion.
type AssertionURL struct {
	URL string `json:"URL"`
}

// AssertionGroup groups assertions for display.
type AssertionGroup struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// Agency is the registration agency of a DOI.
type Agency struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// WorkAgency is the message of /works/{doi}/agency.
type WorkAgency struct {
	DOI    string `json:"DOI"`
	Agency Agency `json:"agency"`
}

// License describes how the work is licensed.
type License struct {
	ContentVersion string      `json:"content-version"`
	DelayInDays    int         `json:"delay-in-days"`
	Start          PartialDate `json:"start"`
	URL            string      `json:"URL"`
}

// ResourceLink points at the full text for a given application.
type ResourceLink struct {
	IntendedApplication string `json:"intended-application"`
	ContentVersion      string `json:"content-version"`
	URL                 string `json:"URL"`
	ContentType         string `json:"content-type,omitempty"`
}

// Reference is one entry of the work's reference list.
type Reference struct {
	Key                string `json:"key"`
	DOI                string `json:"DOI,omitempty"`
	DOIAssertedBy      string `json:"doi-asserted-by,omitempty"`
	Issue              string `json:"issue,omitempty"`
	FirstPage          string `json:"first-page,omitempty"`
	Volume             string `json:"volume,omitempty"`
	Edition            string `json:"edition,omitempty"`
	Component          string `json:"component,omitempty"`
	StandardDesignator string `json:"standard-designator,omitempty"`
	StandardsBody      string `json:"standards-body,omitempty"`
	Author             string `json:"author,omitempty"`
	Year               string `json:"year,omitempty"`
	Unstructured       string `json:"unstructured,omitempty"`
	JournalTitle       string `json:"journal-title,omitempty"`
	ArticleTitle       string `json:"article-title,omitempty"`
	SeriesTitle        string `json:"series-title,omitempty"`
	VolumeTitle        string `json:"volume-title,omitempty"`
	ISSN               string `json:"ISSN,omitempty"`
	ISSNType           string `json:"issn-type,omitempty"`
	ISBN               string `json:"ISBN,omitempty"`
	ISBNType           string `json:"isbn-type,omitempty"`
}

// ISSN is an ISSN with its type (print or electronic).
type ISSN struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// ContentDomain lists the domains where Crossmark applies.
type ContentDomain struct {
	Domain               []string `json:"domain"`
	CrossmarkRestriction bool     `json:"crossmark-restriction"`
}

// Relation is one typed link to another identifier. Relation values of a
// Work can be decoded into it with DecodeRelations.
type Relation struct {
	IDType     string `json:"id-type,omitempty"`
	ID         string `json:"id,omitempty"`
	AssertedBy string `json:"asserted-by,omitempty"`
}

// Review is peer review metadata of a peer-review work.
type Review struct {
	RunningNumber              string `json:"running-number,omitempty"`
	RevisionRound              string `json:"revision-round,omitempty"`
	Stage                      string `json:"stage,omitempty"`
	Recommendation             string `json:"recommendation,omitempty"`
	Type                       string `json:"type"`
	CompetingInterestStatement string `json:"competing-interest-statement,omitempty"`
	Language                   string `json:"language,omitempty"`
}

// Year returns the issued year, falling back to the created year.
func (w Work) Year() int {
	if w.Issued != nil {
		if y := w.Issued.Year(); y != 0 {
			return y
		}
	}
	f, _ := w.Created.AsDateField()
	return f.Year()
}
