// ABOUTME: Party and title abbreviation for filename identifiers
// ABOUTME: Lossy but human-recognizable, bounded-length, filename-safe

package abbrev

import (
	"strings"
)

const (
	// PartyCap bounds a single abbreviated party name.
	PartyCap = 25

	// IdentifierBudget bounds the whole IDENTIFIER field, separator
	// included.
	IdentifierBudget = 30
)

// Party compresses a free-text party name into a CamelCase token of at most
// PartyCap characters. The pipeline: drop parentheticals and honorifics,
// apply the institutional dictionary, collapse multi-party lists to
// "<lastWord>ors", drop stopwords, CamelCase, truncate.
func Party(name string) string {
	return pipeline(name, PartyCap, true)
}

// Title abbreviates a document title: a trailing 4-digit year and a leading
// "The" are stripped, then the party pipeline runs with the full
// IdentifierBudget and no multi-party collapsing.
func Title(title string) string {
	t := trailingYearRe.ReplaceAllString(title, "")
	t = strings.TrimSpace(t)
	lower := strings.ToLower(t)
	if strings.HasPrefix(lower, "the ") {
		t = t[4:]
	}
	return pipeline(t, IdentifierBudget, false)
}

// Pair abbreviates a petitioner/respondent pair and balances both sides
// within IdentifierBudget (minus one for the "v" separator). When both
// sides exceed half the budget each is cut to half; when only one does, it
// receives whatever the other side leaves.
func Pair(petitioner, respondent string) string {
	pet := Party(petitioner)
	resp := Party(respondent)

	if resp == "" {
		return truncateAtBoundary(pet, IdentifierBudget)
	}
	if pet == "" {
		return truncateAtBoundary(resp, IdentifierBudget)
	}

	budget := IdentifierBudget - 1
	half := budget / 2

	switch {
	case len(pet)+len(resp) <= budget:
		// Fits as-is.
	case len(pet) > half && len(resp) > half:
		pet = truncateAtBoundary(pet, half)
		resp = truncateAtBoundary(resp, half)
	case len(pet) > half:
		pet = truncateAtBoundary(pet, budget-len(resp))
	default:
		resp = truncateAtBoundary(resp, budget-len(pet))
	}

	return pet + "v" + resp
}

// ExtractParties splits a case title on the first versus separator
// (v., vs., versus, -v-, against; case-insensitive). Without a separator
// the whole title is the petitioner and the respondent is empty.
func ExtractParties(caseTitle string) (string, string) {
	loc := versusRe.FindStringIndex(caseTitle)
	if loc == nil {
		return strings.TrimSpace(caseTitle), ""
	}
	return strings.TrimSpace(caseTitle[:loc[0]]), strings.TrimSpace(caseTitle[loc[1]:])
}

func pipeline(s string, limit int, collapse bool) string {
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = stripHonorifics(s)
	s = applyInstitutions(s)

	if collapse {
		parts := splitParties(s)
		if len(parts) > 1 {
			s = lastWord(parts[0]) + "ors"
		}
	}

	var words []string
	for _, w := range strings.Fields(s) {
		if stopwords[strings.ToLower(w)] {
			continue
		}
		w = nonAlnumRe.ReplaceAllString(w, "")
		if w == "" {
			continue
		}
		words = append(words, camelWord(w))
	}

	return truncateAtBoundary(strings.Join(words, ""), limit)
}

// stripHonorifics drops leading honorific tokens (dots and commas ignored).
func stripHonorifics(s string) string {
	tokens := strings.Fields(s)
	for len(tokens) > 0 {
		t := strings.ToLower(strings.Trim(tokens[0], ".,"))
		found := false
		for _, h := range honorifics {
			if t == h {
				found = true
				break
			}
		}
		if !found {
			break
		}
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// applyInstitutions replaces dictionary phrases case-insensitively, in
// declared order.
func applyInstitutions(s string) string {
	for _, inst := range institutions {
		s = replaceFold(s, inst.phrase, inst.abbrev)
	}
	return s
}

// replaceFold replaces every case-insensitive occurrence of phrase in s.
func replaceFold(s, phrase, repl string) string {
	lower := strings.ToLower(s)
	phrase = strings.ToLower(phrase)

	var b strings.Builder
	for {
		i := strings.Index(lower, phrase)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(repl)
		s = s[i+len(phrase):]
		lower = lower[i+len(phrase):]
	}
}

// splitParties splits a multi-party list, dropping empty segments.
func splitParties(s string) []string {
	var parts []string
	for _, p := range multiPartyRe.Split(s, -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return parts
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return nonAlnumRe.ReplaceAllString(fields[len(fields)-1], "")
}

// camelWord uppercases the first letter. All-caps words longer than three
// characters are folded to title case; short all-caps tokens (initialisms,
// Roman numerals) stay as they are.
func camelWord(w string) string {
	if len(w) == 0 {
		return w
	}
	if len(w) > 3 && w == strings.ToUpper(w) {
		return w[:1] + strings.ToLower(w[1:])
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// truncateAtBoundary cuts s to at most max characters, preferring the last
// internal uppercase boundary at or beyond half of max so the cut lands
// between words.
func truncateAtBoundary(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}

	half := max / 2
	cut := -1
	for i := half; i <= max && i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' && i > 0 {
			cut = i
		}
	}
	if cut > 0 {
		return s[:cut]
	}
	return s[:max]
}
