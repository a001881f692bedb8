// ABOUTME: Data tables for the party/title abbreviator
// ABOUTME: Static versioned tables, swappable per jurisdiction

package abbrev

import "regexp"

// honorifics are stripped from the front of party names. Matched
// case-insensitively against leading tokens, dots optional.
var honorifics = []string{
	"mr", "mrs", "ms", "miss", "dr", "md", "mst", "m/s", "messrs",
	"justice", "hon'ble", "honble", "shri", "smt", "syed", "haji",
	"alhaj", "moulana", "maulana", "advocate", "barrister",
}

// institution is one entry of the institutional abbreviation dictionary.
// Entries are applied in order; longer phrases come first so that
// "Government of the People's Republic of Bangladesh" wins over
// "Government of Bangladesh".
type institution struct {
	phrase string
	abbrev string
}

var institutions = []institution{
	{"government of the people's republic of bangladesh", "GovtBD"},
	{"government of bangladesh", "GovtBD"},
	{"people's republic of bangladesh", "BD"},
	{"government of india", "GovtIN"},
	{"government of pakistan", "GovtPK"},
	{"ministry of law, justice and parliamentary affairs", "MinLaw"},
	{"ministry of law", "MinLaw"},
	{"ministry of home affairs", "MinHome"},
	{"ministry of finance", "MinFin"},
	{"ministry of education", "MinEdu"},
	{"election commission", "EC"},
	{"anti-corruption commission", "ACC"},
	{"national board of revenue", "NBR"},
	{"bangladesh bank", "BBank"},
	{"reserve bank of india", "RBI"},
	{"state bank of pakistan", "SBP"},
	{"deputy commissioner", "DC"},
	{"superintendent of police", "SP"},
	{"corporation", "Corp"},
	{"company", "Co"},
	{"limited", "Ltd"},
	{"university", "Univ"},
	{"association", "Assn"},
	{"department", "Dept"},
	{"commissioner", "Commr"},
	{"secretary", "Secy"},
}

// stopwords are dropped between abbreviation and camel-casing.
var stopwords = map[string]bool{
	"the": true, "of": true, "and": true, "for": true, "in": true,
	"on": true, "at": true, "to": true, "by": true, "a": true,
	"an": true, "other": true, "others": true, "etc": true, "all": true,
	"his": true, "her": true, "its": true, "their": true,
}

// versusRe splits a case title into petitioner and respondent. The
// alternatives are tried as one regex; the first (leftmost) occurrence wins.
var versusRe = regexp.MustCompile(`(?i)\s+(?:v\.?|vs\.?|versus|against)\s+|\s*-v-\s*`)

// parentheticalRe removes parenthetical asides from names and titles.
var parentheticalRe = regexp.MustCompile(`\([^)]*\)`)

// multiPartyRe splits party lists on commas, "and" and ampersands.
var multiPartyRe = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+|\s*&\s*`)

// trailingYearRe strips a trailing 4-digit year (with optional punctuation)
// from a document title.
var trailingYearRe = regexp.MustCompile(`[,\s]*\d{4}\s*\.?\s*$`)

// nonAlnumRe strips everything outside letters and digits from a word.
var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)
