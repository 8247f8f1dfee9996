// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

// DecodeWork converts the untyped message of a /works/{doi} response into a
// Work. Numbers may be float64 or json.Number.
func DecodeWork(v any, opts ...Option) (Work, error) {
	if _, err := topObject(v); err != nil {
		return Work{}, err
	}
	return decodeWork(newDecoder(opts), v)
}

func decodeWork(d *decoder, v any) (Work, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Work{}, err
	}
	f := fields{m, d}
	var w Work

	if w.Publisher, err = f.str("publisher"); err != nil {
		return Work{}, err
	}
	if w.Title, err = f.strs("title"); err != nil {
		return Work{}, err
	}
	if w.DOI, err = f.str("DOI"); err != nil {
		return Work{}, err
	}
	if w.Member, err = f.str("member"); err != nil {
		return Work{}, err
	}
	if w.Type, err = f.str("type"); err != nil {
		return Work{}, err
	}
	if w.Created, err = required(f, "created", decodeDate); err != nil {
		return Work{}, err
	}
	if w.Indexed, err = required(f, "indexed", decodeDate); err != nil {
		return Work{}, err
	}

	w.OriginalTitle = f.optStrs("original-title")
	w.ShortTitle = f.optStrs("short-title")
	w.Subtitle = f.optStrs("subtitle")
	w.Language = f.optStr("language")
	w.Abstract = f.optStr("abstract")
	w.ReferencesCount = f.optInt("references-count")
	w.IsReferencedByCount = f.optInt("is-referenced-by-count")
	w.Source = f.optStr("source")
	w.JournalIssue = optionalPtr(f, "journal-issue", decodeIssue)
	w.Prefix = f.optStr("prefix")
	w.URL = f.optStr("URL")
	w.Date = optionalPtr(f, "date", decodeDate)
	w.Deposited = optionalPtr(f, "deposited", decodeDate)
	w.Score = f.optFloat("score")
	w.Issued = optionalPtr(f, "issued", decodePartialDate)
	w.Posted = optionalPtr(f, "posted", decodePartialDate)
	w.Accepted = optionalPtr(f, "accepted", decodePartialDate)
	w.PublishedPrint = optionalPtr(f, "published-print", decodePartialDate)
	w.PublishedOnline = optionalPtr(f, "published-online", decodePartialDate)
	w.ContainerTitle = f.optStrs("container-title")
	w.ShortContainerTitle = f.optStrs("short-container-title")
	w.GroupTitle = f.optStr("group-title")
	w.Issue = f.optStr("issue")
	w.Volume = f.optStr("volume")
	w.Page = f.optStr("page")
	w.ArticleNumber = f.optStr("article-number")
	w.Subject = f.optStrs("subject")
	w.ISSN = f.optStrs("ISSN")
	w.ISSNType, _ = optional(f, "issn-type", listOf(decodeISSN))
	w.ISBN = f.optStrs("ISBN")
	w.Archive = f.optStrs("archive")
	w.License, _ = optional(f, "license", listOf(decodeLicense))
	w.Funder, _ = optional(f, "funder", listOf(decodeFundingBody))
	w.Assertion, _ = optional(f, "assertion", listOf(decodeAssertion))
	w.Author, _ = optional(f, "author", listOf(decodeContributor))
	w.Editor, _ = optional(f, "editor", listOf(decodeContributor))
	w.Chair, _ = optional(f, "chair", listOf(decodeContributor))
	w.Translator, _ = optional(f, "translator", listOf(decodeContributor))
	w.UpdateTo, _ = optional(f, "update-to", listOf(decodeUpdate))
	w.UpdatePolicy = f.optStr("update-policy")
	w.Link, _ = optional(f, "link", listOf(decodeResourceLink))
	w.ClinicalTrialNumber, _ = optional(f, "clinical-trial-number", listOf(decodeClinicalTrialNumber))
	w.AlternativeID = f.optStrs("alternative-id")
	w.Reference, _ = optional(f, "reference", listOf(decodeReference))
	w.ContentDomain = optionalPtr(f, "content-domain", decodeContentDomain)
	w.Relation, _ = optional(f, "relation", toObject)
	w.Review, _ = optional(f, "review", toObject)
	return w, nil
}

func decodeIssue(d *decoder, v any) (Issue, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Issue{}, err
	}
	f := fields{m, d}
	return Issue{
		PublishedPrint:  optionalPtr(f, "published-print", decodePartialDate),
		PublishedOnline: optionalPtr(f, "published-online", decodePartialDate),
		Issue:           f.optStr("issue"),
	}, nil
}

func decodeFundingBody(d *decoder, v any) (FundingBody, error) {
	m, err := nestedObject(v)
	if err != nil {
		return FundingBody{}, err
	}
	f := fields{m, d}
	name, err := f.str("name")
	if err != nil {
		return FundingBody{}, err
	}
	return FundingBody{
		Name:          name,
		DOI:           f.optStr("DOI"),
		Award:         f.optStrs("award"),
		DOIAssertedBy: f.optStr("doi-asserted-by"),
	}, nil
}

func decodeClinicalTrialNumber(d *decoder, v any) (ClinicalTrialNumber, error) {
	m, err := nestedObject(v)
	if err != nil {
		return ClinicalTrialNumber{}, err
	}
	f := fields{m, d}
	num, err := f.str("clinical-trial-number")
	if err != nil {
		return ClinicalTrialNumber{}, err
	}
	reg, err := f.str("registry")
	if err != nil {
		return ClinicalTrialNumber{}, err
	}
	return ClinicalTrialNumber{ClinicalTrialNumber: num, Registry: reg, Type: f.optStr("type")}, nil
}

func decodeContributor(d *decoder, v any) (Contributor, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Contributor{}, err
	}
	f := fields{m, d}
	affs, err := required(f, "affiliation", listOf(decodeAffiliation))
	if err != nil {
		return Contributor{}, err
	}
	seq, err := f.str("sequence")
	if err != nil {
		return Contributor{}, err
	}
	return Contributor{
		Prefix:             f.optStr("prefix"),
		Suffix:             f.optStr("suffix"),
		Family:             f.optStr("family"),
		Given:              f.optStr("given"),
		Name:               f.optStr("name"),
		ORCID:              f.optStr("ORCID"),
		AuthenticatedORCID: f.optBool("authenticated-orcid"),
		Affiliation:        affs,
		Sequence:           seq,
	}, nil
}

func decodeAffiliation(d *decoder, v any) (Affiliation, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Affiliation{}, err
	}
	name, err := fields{m, d}.str("name")
	if err != nil {
		return Affiliation{}, err
	}
	return Affiliation{Name: name}, nil
}

func decodeUpdate(d *decoder, v any) (Update, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Update{}, err
	}
	f := fields{m, d}
	var u Update
	if u.Updated, err = required(f, "updated", decodePartialDate); err != nil {
		return Update{}, err
	}
	if u.DOI, err = f.str("DOI"); err != nil {
		return Update{}, err
	}
	if u.Type, err = f.str("type"); err != nil {
		return Update{}, err
	}
	u.Label = f.optStr("label")
	return u, nil
}

func decodeAssertion(d *decoder, v any) (Assertion, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Assertion{}, err
	}
	f := fields{m, d}
	name, err := f.str("name")
	if err != nil {
		return Assertion{}, err
	}
	return Assertion{
		Name:        name,
		Value:       f.optStr("value"),
		URL:         f.optStr("URL"),
		Explanation: optionalPtr(f, "explanation", decodeAssertionURL),
		Label:       f.optStr("label"),
		Order:       f.optInt("order"),
		Group:       optionalPtr(f, "group", decodeAssertionGroup),
	}, nil
}

func decodeAssertionURL(d *decoder, v any) (AssertionURL, error) {
	m, err := nestedObject(v)
	if err != nil {
		return AssertionURL{}, err
	}
	u, err := fields{m, d}.str("URL")
	if err != nil {
		return AssertionURL{}, err
	}
	return AssertionURL{URL: u}, nil
}

func decodeAssertionGroup(d *decoder, v any) (AssertionGroup, error) {
	m, err := nestedObject(v)
	if err != nil {
		return AssertionGroup{}, err
	}
	f := fields{m, d}
	name, err := f.str("name")
	if err != nil {
		return AssertionGroup{}, err
	}
	return AssertionGroup{Name: name, Label: f.optStr("label")}, nil
}

func decodeLicense(d *decoder, v any) (License, error) {
	m, err := nestedObject(v)
	if err != nil {
		return License{}, err
	}
	f := fields{m, d}
	var l License
	if l.ContentVersion, err = f.str("content-version"); err != nil {
		return License{}, err
	}
	if l.DelayInDays, err = f.integer("delay-in-days"); err != nil {
		return License{}, err
	}
	if l.Start, err = required(f, "start", decodePartialDate); err != nil {
		return License{}, err
	}
	if l.URL, err = f.str("URL"); err != nil {
		return License{}, err
	}
	return l, nil
}

func decodeResourceLink(d *decoder, v any) (ResourceLink, error) {
	m, err := nestedObject(v)
	if err != nil {
		return ResourceLink{}, err
	}
	f := fields{m, d}
	var l ResourceLink
	if l.IntendedApplication, err = f.str("intended-application"); err != nil {
		return ResourceLink{}, err
	}
	if l.ContentVersion, err = f.str("content-version"); err != nil {
		return ResourceLink{}, err
	}
	if l.URL, err = f.str("URL"); err != nil {
		return ResourceLink{}, err
	}
	l.ContentType = f.optStr("content-type")
	return l, nil
}

func decodeReference(d *decoder, v any) (Reference, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Reference{}, err
	}
	f := fields{m, d}
	key, err := f.str("key")
	if err != nil {
		return Reference{}, err
	}
	return Reference{
		Key:                key,
		DOI:                f.optStr("DOI"),
		DOIAssertedBy:      f.optStr("doi-asserted-by"),
		Issue:              f.optStr("issue"),
		FirstPage:          f.optStr("first-page"),
		Volume:             f.optStr("volume"),
		Edition:            f.optStr("edition"),
		Component:          f.optStr("component"),
		StandardDesignator: f.optStr("standard-designator"),
		StandardsBody:      f.optStr("standards-body"),
		Author:             f.optStr("author"),
		Year:               f.optStr("year"),
		Unstructured:       f.optStr("unstructured"),
		JournalTitle:       f.optStr("journal-title"),
		ArticleTitle:       f.optStr("article-title"),
		SeriesTitle:        f.optStr("series-title"),
		VolumeTitle:        f.optStr("volume-title"),
		ISSN:               f.optStr("ISSN"),
		ISSNType:           f.optStr("issn-type"),
		ISBN:               f.optStr("ISBN"),
		ISBNType:           f.optStr("isbn-type"),
	}, nil
}

func decodeISSN(d *decoder, v any) (ISSN, error) {
	m, err := nestedObject(v)
	if err != nil {
		return ISSN{}, err
	}
	f := fields{m, d}
	val, err := f.str("value")
	if err != nil {
		return ISSN{}, err
	}
	typ, err := f.str("type")
	if err != nil {
		return ISSN{}, err
	}
	return ISSN{Value: val, Type: typ}, nil
}

func decodeContentDomain(d *decoder, v any) (ContentDomain, error) {
	m, err := nestedObject(v)
	if err != nil {
		return ContentDomain{}, err
	}
	f := fields{m, d}
	domain, err := f.strs("domain")
	if err != nil {
		return ContentDomain{}, err
	}
	restricted, err := f.boolean("crossmark-restriction")
	if err != nil {
		return ContentDomain{}, err
	}
	return ContentDomain{Domain: domain, CrossmarkRestriction: restricted}, nil
}

func decodeRelation(d *decoder, v any) (Relation, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Relation{}, err
	}
	f := fields{m, d}
	return Relation{IDType: f.optStr("id-type"), ID: f.optStr("id"), AssertedBy: f.optStr("asserted-by")}, nil
}

// DecodeRelations types the relation map of a Work. A relation name may map
// to one object or a list; both become a list. Names whose value has neither
// shape are skipped and recorded in the diagnostics.
func DecodeRelations(rel map[string]any, opts ...Option) map[string][]Relation {
	d := newDecoder(opts).at("relation")
	out := make(map[string][]Relation, len(rel))
	for name, v := range rel {
		if _, isList := v.([]any); isList {
			rs, err := listOf(decodeRelation)(d.at(name), v)
			if err != nil {
				d.drop(name, err)
				continue
			}
			out[name] = rs
			continue
		}
		r, err := decodeRelation(d.at(name), v)
		if err != nil {
			d.drop(name, err)
			continue
		}
		out[name] = []Relation{r}
	}
	return out
}

// DecodeReview types the review map of a peer-review Work.
func DecodeReview(review map[string]any, opts ...Option) (Review, error) {
	f := fields{review, newDecoder(opts).at("review")}
	typ, err := f.str("type")
	if err != nil {
		return Review{}, err
	}
	return Review{
		RunningNumber:              f.optStr("running-number"),
		RevisionRound:              f.optStr("revision-round"),
		Stage:                      f.optStr("stage"),
		Recommendation:             f.optStr("recommendation"),
		Type:                       typ,
		CompetingInterestStatement: f.optStr("competing-interest-statement"),
		Language:                   f.optStr("language"),
	}, nil
}

// DecodeWorkAgency converts the message of /works/{doi}/agency.
func DecodeWorkAgency(v any, opts ...Option) (WorkAgency, error) {
	m, err := topObject(v)
	if err != nil {
		return WorkAgency{}, err
	}
	f := fields{m, newDecoder(opts)}
	doi, err := f.str("DOI")
	if err != nil {
		return WorkAgency{}, err
	}
	agency, err := required(f, "agency", func(d *decoder, v any) (Agency, error) {
		am, err := nestedObject(v)
		if err != nil {
			return Agency{}, err
		}
		af := fields{am, d}
		id, err := af.str("id")
		if err != nil {
			return Agency{}, err
		}
		return Agency{ID: id, Label: af.optStr("label")}, nil
	})
	if err != nil {
		return WorkAgency{}, err
	}
	return WorkAgency{DOI: doi, Agency: agency}, nil
}
