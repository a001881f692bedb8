// ABOUTME: Reporter pattern tables for the citation codec
// ABOUTME: Per-jurisdiction ordered regex lists; order is the tie-break

package citation

import (
	"fmt"
	"regexp"
)

// pattern is one recognizer for a reporter's human citation form. Group
// indices point into the submatch slice; 0 means the field is absent from
// this form.
type pattern struct {
	re    *regexp.Regexp
	vol   int
	year  int
	court int
	page  int
}

// family describes one reporter series: how to recognize its human form,
// the compact token grammar, and the canonical display rendering.
// tokenGroups maps token grammar submatch indices to component fields.
type tokenGroups struct {
	vol   int
	year  int
	court int
	page  int
}

type family struct {
	reporter     string
	country      string
	patterns     []pattern
	tokenRe      *regexp.Regexp
	tok          tokenGroups
	courtIn      map[string]string // citation court group -> token court code
	courtOut     map[string]string // token court code -> display court name
	defaultCourt string            // token court when the group is absent
	hasVolume    bool
	token        func(c Components) string
	display      func(c Components) string
}

// bdCourts maps Bangladesh court names to single-letter token codes.
var bdCourts = map[string]string{
	"HCD": "H",
	"AD":  "A",
}

var bdCourtNames = map[string]string{
	"H": "HCD",
	"A": "AD",
}

// identityCourt passes court abbreviations through unchanged (AIR, PLD).
func identityCourt(codes ...string) map[string]string {
	m := make(map[string]string, len(codes))
	for _, c := range codes {
		m[c] = c
	}
	return m
}

var dlrFamily = &family{
	reporter: "DLR",
	country:  "BD",
	patterns: []pattern{
		// 22 (1998) DLR (HCD) 205
		{re: regexp.MustCompile(`(?i)(\d{1,3})\s*\((\d{4})\)\s*DLR\s*\((AD|HCD)\)\s*(\d{1,5})`), vol: 1, year: 2, court: 3, page: 4},
		// 22 (1998) DLR 205 -- court defaults to HCD
		{re: regexp.MustCompile(`(?i)(\d{1,3})\s*\((\d{4})\)\s*DLR\s*(\d{1,5})`), vol: 1, year: 2, page: 3},
		// (1998) 22 DLR 205
		{re: regexp.MustCompile(`(?i)\((\d{4})\)\s*(\d{1,3})\s*DLR\s*(\d{1,5})`), year: 1, vol: 2, page: 3},
	},
	tokenRe:      regexp.MustCompile(`^(\d{1,3})DLR(\d{2})([AH])(\d{1,5})$`),
	tok:          tokenGroups{vol: 1, year: 2, court: 3, page: 4},
	courtIn:      bdCourts,
	courtOut:     bdCourtNames,
	defaultCourt: "HCD",
	hasVolume:    true,
	token: func(c Components) string {
		return fmt.Sprintf("%dDLR%02d%s%d", c.Volume, c.Year%100, bdCourts[c.Court], c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("%d (%d) DLR (%s) %d", c.Volume, c.Year, c.Court, c.Page)
	},
}

var bldFamily = &family{
	reporter: "BLD",
	country:  "BD",
	patterns: []pattern{
		// 18 (1998) BLD (AD) 211, court optional
		{re: regexp.MustCompile(`(?i)(\d{1,3})\s*\((\d{4})\)\s*BLD\s*(?:\((AD|HCD)\)\s*)?(\d{1,5})`), vol: 1, year: 2, court: 3, page: 4},
	},
	tokenRe:      regexp.MustCompile(`^(\d{1,3})BLD(\d{2})([AH])(\d{1,5})$`),
	tok:          tokenGroups{vol: 1, year: 2, court: 3, page: 4},
	courtIn:      bdCourts,
	courtOut:     bdCourtNames,
	defaultCourt: "HCD",
	hasVolume:    true,
	token: func(c Components) string {
		return fmt.Sprintf("%dBLD%02d%s%d", c.Volume, c.Year%100, bdCourts[c.Court], c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("%d (%d) BLD (%s) %d", c.Volume, c.Year, c.Court, c.Page)
	},
}

var blcFamily = &family{
	reporter: "BLC",
	country:  "BD",
	patterns: []pattern{
		// 5 (2000) BLC (HCD) 422, court optional
		{re: regexp.MustCompile(`(?i)(\d{1,3})\s*\((\d{4})\)\s*BLC\s*(?:\((AD|HCD)\)\s*)?(\d{1,5})`), vol: 1, year: 2, court: 3, page: 4},
	},
	tokenRe:      regexp.MustCompile(`^(\d{1,3})BLC(\d{2})([AH])(\d{1,5})$`),
	tok:          tokenGroups{vol: 1, year: 2, court: 3, page: 4},
	courtIn:      bdCourts,
	courtOut:     bdCourtNames,
	defaultCourt: "HCD",
	hasVolume:    true,
	token: func(c Components) string {
		return fmt.Sprintf("%dBLC%02d%s%d", c.Volume, c.Year%100, bdCourts[c.Court], c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("%d (%d) BLC (%s) %d", c.Volume, c.Year, c.Court, c.Page)
	},
}

var airFamily = &family{
	reporter: "AIR",
	country:  "IN",
	patterns: []pattern{
		// AIR 1973 SC 1461
		{re: regexp.MustCompile(`(?i)AIR\s*,?\s*(\d{4})\s+([A-Za-z]{2,3})\s+(\d{1,5})`), year: 1, court: 2, page: 3},
	},
	tokenRe:      regexp.MustCompile(`^AIR(\d{2})([A-Z]{2,3})(\d{1,5})$`),
	tok:          tokenGroups{year: 1, court: 2, page: 3},
	courtIn:      identityCourt("SC", "CAL", "BOM", "ALL", "DEL", "MAD", "PAT", "KER"),
	courtOut:     identityCourt("SC", "CAL", "BOM", "ALL", "DEL", "MAD", "PAT", "KER"),
	defaultCourt: "SC",
	token: func(c Components) string {
		return fmt.Sprintf("AIR%02d%s%d", c.Year%100, c.Court, c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("AIR %d %s %d", c.Year, c.Court, c.Page)
	},
}

var sccFamily = &family{
	reporter: "SCC",
	country:  "IN",
	patterns: []pattern{
		// (1973) 4 SCC 225
		{re: regexp.MustCompile(`(?i)\((\d{4})\)\s*(\d{1,3})\s*SCC\s*(\d{1,5})`), year: 1, vol: 2, page: 3},
	},
	tokenRe:      regexp.MustCompile(`^(\d{1,3})SCC(\d{2})(\d{1,5})$`),
	tok:          tokenGroups{vol: 1, year: 2, page: 3},
	courtIn:      identityCourt("SC"),
	courtOut:     identityCourt("SC"),
	defaultCourt: "SC",
	hasVolume:    true,
	token: func(c Components) string {
		return fmt.Sprintf("%dSCC%02d%d", c.Volume, c.Year%100, c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("(%d) %d SCC %d", c.Year, c.Volume, c.Page)
	},
}

var scrFamily = &family{
	reporter: "SCR",
	country:  "IN",
	patterns: []pattern{
		// [1973] 1 SCR 321
		{re: regexp.MustCompile(`(?i)\[(\d{4})\]\s*(\d{1,3})\s*SCR\s*(\d{1,5})`), year: 1, vol: 2, page: 3},
		// (1973) 1 SCR 321
		{re: regexp.MustCompile(`(?i)\((\d{4})\)\s*(\d{1,3})\s*SCR\s*(\d{1,5})`), year: 1, vol: 2, page: 3},
	},
	tokenRe:      regexp.MustCompile(`^(\d{1,3})SCR(\d{2})(\d{1,5})$`),
	tok:          tokenGroups{vol: 1, year: 2, page: 3},
	courtIn:      identityCourt("SC"),
	courtOut:     identityCourt("SC"),
	defaultCourt: "SC",
	hasVolume:    true,
	token: func(c Components) string {
		return fmt.Sprintf("%dSCR%02d%d", c.Volume, c.Year%100, c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("[%d] %d SCR %d", c.Year, c.Volume, c.Page)
	},
}

var pldFamily = &family{
	reporter: "PLD",
	country:  "PK",
	patterns: []pattern{
		// PLD 1988 SC 416
		{re: regexp.MustCompile(`(?i)PLD\s*(\d{4})\s+([A-Za-z]{2,3})\s+(\d{1,5})`), year: 1, court: 2, page: 3},
	},
	tokenRe:      regexp.MustCompile(`^PLD(\d{2})([A-Z]{2,3})(\d{1,5})$`),
	tok:          tokenGroups{year: 1, court: 2, page: 3},
	courtIn:      identityCourt("SC", "LAH", "KAR", "PES", "QUE", "FSC"),
	courtOut:     identityCourt("SC", "LAH", "KAR", "PES", "QUE", "FSC"),
	defaultCourt: "SC",
	token: func(c Components) string {
		return fmt.Sprintf("PLD%02d%s%d", c.Year%100, c.Court, c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("PLD %d %s %d", c.Year, c.Court, c.Page)
	},
}

var scmrFamily = &family{
	reporter: "SCMR",
	country:  "PK",
	patterns: []pattern{
		// 1999 SCMR 2589
		{re: regexp.MustCompile(`(?i)(\d{4})\s*SCMR\s*(\d{1,5})`), year: 1, page: 2},
	},
	tokenRe:      regexp.MustCompile(`^SCMR(\d{2})(\d{1,5})$`),
	tok:          tokenGroups{year: 1, page: 2},
	courtIn:      identityCourt("SC"),
	courtOut:     identityCourt("SC"),
	defaultCourt: "SC",
	token: func(c Components) string {
		return fmt.Sprintf("SCMR%02d%d", c.Year%100, c.Page)
	},
	display: func(c Components) string {
		return fmt.Sprintf("%d SCMR %d", c.Year, c.Page)
	},
}

// jurisdictions maps country codes to their reporter families in match
// order. First match wins; this order must be preserved exactly.
var jurisdictions = map[string][]*family{
	"BD": {dlrFamily, bldFamily, blcFamily},
	"IN": {airFamily, sccFamily, scrFamily},
	"PK": {pldFamily, scmrFamily},
}

// allFamilies is the scan order for reporter auto-detection and token
// decoding across every jurisdiction.
var allFamilies = []*family{
	dlrFamily, bldFamily, blcFamily,
	airFamily, sccFamily, scrFamily,
	pldFamily, scmrFamily,
}
