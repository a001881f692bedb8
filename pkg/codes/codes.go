// ABOUTME: Lookup and normalization over the naming code tables
// ABOUTME: Unknown values resolve to documented defaults, never errors

package codes

import (
	"strings"
	"unicode"
)

// Countries maps 2-letter country codes to full names.
var Countries = map[string]string{
	"BD": "Bangladesh",
	"IN": "India",
	"PK": "Pakistan",
	"LK": "Sri Lanka",
	"NP": "Nepal",
	"MM": "Myanmar",
}

// docTypes maps category codes to descriptions.
var docTypes = map[DocType]string{
	DocCase:         "Case",
	DocAct:          "Act",
	DocRule:         "Rule",
	DocOrder:        "Order",
	DocOrdinance:    "Ordinance",
	DocConstitution: "Constitution",
	DocTreaty:       "Treaty",
	DocNotification: "Notification",
	DocCircular:     "Circular",
	DocGazette:      "Gazette",
	DocOther:        "Other",
}

// docTypeAliases maps common long-form category names to codes.
var docTypeAliases = map[string]DocType{
	"CASE":         DocCase,
	"JUDGMENT":     DocCase,
	"ACT":          DocAct,
	"RULE":         DocRule,
	"RULES":        DocRule,
	"ORDER":        DocOrder,
	"ORDINANCE":    DocOrdinance,
	"CONSTITUTION": DocConstitution,
	"TREATY":       DocTreaty,
	"NOTIFICATION": DocNotification,
	"CIRCULAR":     DocCircular,
	"GAZETTE":      DocGazette,
	"OTHER":        DocOther,
}

// Statuses maps 3-letter legal status codes to descriptions.
var Statuses = map[string]string{
	"ACT": "In force",
	"AMD": "Amended",
	"RPL": "Repealed",
	"SUS": "Suspended",
	"PND": "Pending",
	"EXP": "Expired",
}

// Languages maps 2-letter language codes to names.
var Languages = map[string]string{
	"en": "English",
	"bn": "Bengali",
	"hi": "Hindi",
	"ur": "Urdu",
	"ta": "Tamil",
	"ne": "Nepali",
}

// Subtypes maps recognized court/jurisdiction subtype codes to names.
// Unknown subtypes are still accepted after cleanup since every country
// carries its own tribunals; this table drives validation messages only.
var Subtypes = map[string]string{
	"SC":   "Supreme Court",
	"AD":   "Appellate Division",
	"HCD":  "High Court Division",
	"HC":   "High Court",
	"DC":   "District Court",
	"TRB":  "Tribunal",
	"MAG":  "Magistrate Court",
	"LAB":  "Labour Court",
	"FAM":  "Family Court",
	"GEN":  "General",
	"PARL": "Parliament",
	"MIN":  "Ministry",
}

// NormalizeCountry resolves a country code, falling back to DefaultCountry.
func NormalizeCountry(s string) string {
	c := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := Countries[c]; ok {
		return c
	}
	return DefaultCountry
}

// IsCountry reports whether s is a known country code.
func IsCountry(s string) bool {
	_, ok := Countries[s]
	return ok
}

// NormalizeDocType resolves a category code or long-form name, falling back
// to DefaultDocType.
func NormalizeDocType(s string) DocType {
	u := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := docTypes[DocType(u)]; ok {
		return DocType(u)
	}
	if dt, ok := docTypeAliases[u]; ok {
		return dt
	}
	return DefaultDocType
}

// IsDocType reports whether s is a known category code.
func IsDocType(s string) bool {
	_, ok := docTypes[DocType(s)]
	return ok
}

// DocTypeName returns the description for a category code.
func DocTypeName(dt DocType) string {
	return docTypes[dt]
}

// NormalizeSubtype cleans a subtype token to 2-4 alphanumerics, falling back
// to DefaultSubtype.
func NormalizeSubtype(s string) string {
	cleaned := CleanToken(s)
	if len(cleaned) < 2 {
		return DefaultSubtype
	}
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	return cleaned
}

// NormalizeStatus resolves a legal status code, falling back to DefaultStatus.
func NormalizeStatus(s string) string {
	c := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := Statuses[c]; ok {
		return c
	}
	return DefaultStatus
}

// IsStatus reports whether s is a known status code.
func IsStatus(s string) bool {
	_, ok := Statuses[s]
	return ok
}

// NormalizeLanguage resolves a language code, falling back to DefaultLanguage.
func NormalizeLanguage(s string) string {
	c := strings.ToLower(strings.TrimSpace(s))
	if _, ok := Languages[c]; ok {
		return c
	}
	return DefaultLanguage
}

// IsLanguage reports whether s is a known language code.
func IsLanguage(s string) bool {
	_, ok := Languages[s]
	return ok
}

// PlausibleYear reports whether y is a 4-digit year in the accepted range.
func PlausibleYear(y int) bool {
	return y >= 1750 && y <= 2100
}

// CleanToken uppercases s and strips everything outside [A-Za-z0-9].
func CleanToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
