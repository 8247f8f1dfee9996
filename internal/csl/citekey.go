// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csl

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/crossref/pkg/response"
)

// CiteKey builds an author-year key: Smith2019 for one author,
// Smith&Jones2019 for two and SmithEtAl2019 for more. Family names are
// folded to ASCII letters and digits. It returns false when the work has no
// authors, the first author has no usable name, or the year is unknown.
func CiteKey(w response.Work) (string, bool) {
	if len(w.Author) == 0 {
		return "", false
	}
	first := fold(w.Author[0].DisplayName())
	if first == "" {
		return "", false
	}
	year := w.Year()
	if year == 0 {
		return "", false
	}
	key := first
	switch len(w.Author) {
	case 1:
	case 2:
		key += "&" + fold(w.Author[1].DisplayName())
	default:
		key += "EtAl"
	}
	return key + strconv.Itoa(year), true
}

// fold strips diacritics and keeps ASCII letters and digits.
func fold(name string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, err := transform.String(t, name)
	if err != nil {
		s = name
	}
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// uniqueKeys assigns each work a citation key, falling back to the DOI, and
// appends a, b, c... to keys that repeat.
func uniqueKeys(works []response.Work) []string {
	keys := make([]string, len(works))
	count := map[string]int{}
	for i, w := range works {
		k, ok := CiteKey(w)
		if !ok {
			k = w.DOI
		}
		keys[i] = k
		count[k]++
	}
	seen := map[string]int{}
	for i, k := range keys {
		if count[k] < 2 {
			continue
		}
		keys[i] = k + suffix(seen[k])
		seen[k]++
	}
	return keys
}

// suffix maps 0, 1, ... 25, 26 to a, b, ... z, aa.
func suffix(n int) string {
	s := ""
	for {
		s = string(rune('a'+n%26)) + s
		n = n/26 - 1
		if n < 0 {
			return s
		}
	}
}
