// ABOUTME: DOCNUM generation dispatched over the closed document categories
// ABOUTME: Total per-category rules; missing fields yield sentinels, never errors

package docnum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nainya/lexname/pkg/citation"
	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/document"
)

// MaxLength bounds every DOCNUM.
const MaxLength = 15

var (
	romanRe    = regexp.MustCompile(`^[IVXLCDM]+$`)
	numericRe  = regexp.MustCompile(`^\d+$`)
	firstIntRe = regexp.MustCompile(`\d+`)

	// actNumberRe extracts "XLV" from titles like "The Penal Code (Act No.
	// XLV of 1860)" or "Companies Act 18 of 1994".
	actNumberRe = regexp.MustCompile(`(?i)(?:act|ordinance)\s+(?:no\.?\s*)?([IVXLCDMivxlcdm]+|\d+)\s+of\s+\d{4}`)
)

// Generate builds the DOCNUM for a document. year is the resolved document
// year and fallbackSeq the yearly sequence used for unreported cases whose
// case number carries no integer. Every category returns a usable token.
func Generate(d *document.Metadata, year int, fallbackSeq int) string {
	var token string

	switch codes.NormalizeDocType(d.DocType) {
	case codes.DocCase:
		token = caseDocnum(d, year, fallbackSeq)
	case codes.DocAct:
		token = actDocnum(d, "ACT")
	case codes.DocOrdinance:
		token = actDocnum(d, "ORD")
	case codes.DocRule:
		token = prefixNumber("R", d.DocNumber, "RUL")
	case codes.DocOrder:
		token = prefixNumber("O", d.DocNumber, "ORD")
	case codes.DocNotification:
		token = prefixNumber("N", d.DocNumber, "NOT")
	case codes.DocCircular:
		token = prefixNumber("C", d.DocNumber, "CIR")
	case codes.DocGazette:
		token = prefixNumber("G", d.DocNumber, "GAZ")
	case codes.DocTreaty:
		token = prefixNumber("T", d.DocNumber, "TRE")
	case codes.DocConstitution:
		token = constitutionDocnum(d)
	default:
		token = otherDocnum(d)
	}

	return clamp(token)
}

// caseDocnum encodes the reported citation, or builds an unreported token
// from court, year, case type and sequence.
func caseDocnum(d *document.Metadata, year, fallbackSeq int) string {
	if strings.TrimSpace(d.Citation) != "" {
		tok, _ := citation.Encode(d.Citation, d.Country)
		if tok != "" {
			return tok
		}
	}

	seq := fallbackSeq
	if m := firstIntRe.FindString(d.CaseNumber); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			seq = n
		}
	}

	return citation.EncodeUnreported(d.Subtype, year, d.CaseType, seq)
}

// actDocnum prefers the explicit act number: Roman numerals pass through
// uppercased, plain numbers are zero-padded to 3 digits, anything else is
// cleaned. Without one, the title is mined; the sentinel is the last resort.
func actDocnum(d *document.Metadata, sentinel string) string {
	n := strings.TrimSpace(d.ActNumber)
	if n == "" {
		if m := actNumberRe.FindStringSubmatch(d.Title); m != nil {
			n = m[1]
		}
	}
	if n == "" {
		return sentinel
	}

	upper := strings.ToUpper(n)
	if romanRe.MatchString(upper) {
		return upper
	}
	if numericRe.MatchString(n) {
		num, _ := strconv.Atoi(n)
		return fmt.Sprintf("%03d", num)
	}

	cleaned := codes.CleanToken(n)
	if cleaned == "" {
		return sentinel
	}
	return cleaned
}

// prefixNumber renders PREFIX + 3-digit zero-padded number. A non-numeric
// value is cleaned; an empty one yields the sentinel.
func prefixNumber(prefix, raw, sentinel string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sentinel
	}
	if m := firstIntRe.FindString(raw); m != "" {
		n, _ := strconv.Atoi(m)
		return fmt.Sprintf("%s%03d", prefix, n)
	}
	cleaned := codes.CleanToken(raw)
	if cleaned == "" {
		return sentinel
	}
	return cleaned
}

// constitutionDocnum is "CONST", plus the amendment number when one exists.
func constitutionDocnum(d *document.Metadata) string {
	for _, raw := range []string{d.DocNumber, d.ActNumber} {
		if m := firstIntRe.FindString(raw); m != "" {
			n, _ := strconv.Atoi(m)
			return fmt.Sprintf("CONST%d", n)
		}
	}
	return "CONST"
}

// otherDocnum cleans whatever identifying number exists, else "DOC".
func otherDocnum(d *document.Metadata) string {
	for _, raw := range []string{d.DocNumber, d.ActNumber} {
		if cleaned := codes.CleanToken(raw); cleaned != "" {
			return cleaned
		}
	}
	return "DOC"
}

func clamp(token string) string {
	if len(token) > MaxLength {
		return token[:MaxLength]
	}
	return token
}
