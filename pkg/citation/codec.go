// ABOUTME: Citation codec: jurisdiction-aware encode/decode/display
// ABOUTME: First matching pattern wins; unmatched citations fall back lossily

package citation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nainya/lexname/pkg/codes"
)

// MaxTokenLength bounds every citation token (the DOCNUM budget).
const MaxTokenLength = 15

// YearPivot splits two-digit years: yy > 50 decodes to 19yy, yy <= 50 to
// 20yy. Documents from 1850 or 2050 will silently mis-decode; this matches
// the historical behavior and is kept deliberately.
const YearPivot = 50

// Components is the decoded view of a reported-citation token.
type Components struct {
	Volume   int    // 0 for reporters without a volume (AIR, PLD, SCMR)
	Year     int    // Full 4-digit year
	Reporter string // Reporter series code (DLR, AIR, ...)
	Court    string // Canonical court code (HCD, AD, SC, CAL, ...)
	Page     int    // Page number
	Raw      string // The input the components were derived from
}

// ExpandYear converts a two-digit citation year to four digits using
// YearPivot.
func ExpandYear(yy int) int {
	if yy > YearPivot {
		return 1900 + yy
	}
	return 2000 + yy
}

// Encode converts a human citation string into a compact token. The second
// return value reports whether the token is reversible: false means no
// reporter pattern matched and the token is a lossy cleanup that Decode will
// never recognize.
//
// The country's pattern list is tried first in declared order; then reporter
// substring auto-detection across all families; then the lossy fallback.
func Encode(citation, country string) (string, bool) {
	raw := strings.TrimSpace(citation)
	if raw == "" {
		return "", false
	}

	if fams, ok := jurisdictions[codes.NormalizeCountry(country)]; ok {
		if tok, ok := encodeWith(fams, raw); ok {
			return tok, true
		}
	}

	// Auto-detect by reporter substring when the declared jurisdiction
	// didn't match (mislabeled metadata is common in scraped sources).
	upper := strings.ToUpper(raw)
	for _, f := range allFamilies {
		if !strings.Contains(upper, f.reporter) {
			continue
		}
		if tok, ok := encodeWith([]*family{f}, raw); ok {
			return tok, true
		}
	}

	// Lossy fallback: cleanup and truncate. Not decodable.
	tok := codes.CleanToken(raw)
	if len(tok) > MaxTokenLength {
		tok = tok[:MaxTokenLength]
	}
	return tok, false
}

func encodeWith(fams []*family, raw string) (string, bool) {
	for _, f := range fams {
		for _, p := range f.patterns {
			m := p.re.FindStringSubmatch(raw)
			if m == nil {
				continue
			}

			c := Components{Reporter: f.reporter, Court: f.defaultCourt, Raw: raw}
			if p.vol > 0 {
				c.Volume, _ = strconv.Atoi(m[p.vol])
			}
			if p.year > 0 {
				c.Year, _ = strconv.Atoi(m[p.year])
			}
			if p.page > 0 {
				c.Page, _ = strconv.Atoi(m[p.page])
			}
			if p.court > 0 && m[p.court] != "" {
				c.Court = normalizeCourt(f, m[p.court])
			}

			return f.token(c), true
		}
	}
	return "", false
}

// normalizeCourt resolves a matched court group to the family's canonical
// court code, falling back to a cleaned 3-char abbreviation.
func normalizeCourt(f *family, raw string) string {
	u := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := f.courtIn[u]; ok {
		return u
	}
	cleaned := codes.CleanToken(u)
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	if cleaned == "" {
		return f.defaultCourt
	}
	return cleaned
}

// Decode parses a compact citation token back into components. It returns
// false when no reporter token grammar matches, which includes every token
// produced by the lossy fallback path of Encode.
func Decode(token string) (*Components, bool) {
	c, _, ok := decode(token)
	return c, ok
}

func decode(token string) (*Components, *family, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return nil, nil, false
	}

	for _, f := range allFamilies {
		m := f.tokenRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}

		c := &Components{Reporter: f.reporter, Court: f.defaultCourt, Raw: t}
		if f.tok.vol > 0 {
			c.Volume, _ = strconv.Atoi(m[f.tok.vol])
		}
		yy, _ := strconv.Atoi(m[f.tok.year])
		c.Year = ExpandYear(yy)
		if f.tok.court > 0 {
			if name, ok := f.courtOut[m[f.tok.court]]; ok {
				c.Court = name
			} else {
				c.Court = m[f.tok.court]
			}
		}
		c.Page, _ = strconv.Atoi(m[f.tok.page])

		return c, f, true
	}
	return nil, nil, false
}

// FormatDisplay renders a token in its reporter's canonical human form.
// Tokens that do not decode are returned unchanged.
func FormatDisplay(token string) string {
	c, f, ok := decode(token)
	if !ok {
		return token
	}
	return f.display(*c)
}

// unreportedCourts maps common court tokens to unreported-case letters.
var unreportedCourts = map[string]string{
	"HCD": "H",
	"HC":  "H",
	"AD":  "A",
	"SC":  "S",
	"DC":  "D",
	"TRB": "T",
}

// EncodeUnreported builds a token for a case without a published citation:
// COURT letter + 2-digit year + 2-char case type + 4-digit zero-padded
// sequence (e.g. "H98WP0042").
func EncodeUnreported(court string, year int, caseType string, seq int) string {
	letter := "H"
	if cleaned := codes.CleanToken(court); cleaned != "" {
		if l, ok := unreportedCourts[cleaned]; ok {
			letter = l
		} else {
			letter = cleaned[:1]
		}
	}

	ct := codes.CleanToken(caseType)
	if len(ct) < 2 {
		ct = "GN"
	} else {
		ct = ct[:2]
	}

	if seq < 0 {
		seq = 0
	}
	if seq > 9999 {
		seq = seq % 10000
	}

	return fmt.Sprintf("%s%02d%s%04d", letter, year%100, ct, seq)
}
