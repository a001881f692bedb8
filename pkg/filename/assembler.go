// ABOUTME: Filename assembly from document metadata
// ABOUTME: Normalizes fields, resolves the year and applies the truncation cascade

package filename

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nainya/lexname/pkg/abbrev"
	"github.com/nainya/lexname/pkg/citation"
	"github.com/nainya/lexname/pkg/classify"
	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/contenthash"
	"github.com/nainya/lexname/pkg/docnum"
	"github.com/nainya/lexname/pkg/document"
	"github.com/nainya/lexname/pkg/sequence"
)

var (
	fourDigitRe = regexp.MustCompile(`\d{4}`)
	anyDigitRe  = regexp.MustCompile(`\d`)
)

// Assembler turns document metadata into filenames. All collaborators are
// injected; the assembler itself holds no mutable state.
type Assembler struct {
	sequences  *sequence.Generator
	classifier *classify.Classifier
	taxonomy   *codes.Taxonomy

	// Now supplies the fallback year. Overridable in tests.
	Now func() time.Time

	// OnTruncate, when set, is called once per filename shortened by the
	// truncation cascade.
	OnTruncate func()
}

// NewAssembler builds an assembler over a sequence generator and taxonomy.
// A nil taxonomy uses the built-in default.
func NewAssembler(sequences *sequence.Generator, taxonomy *codes.Taxonomy) *Assembler {
	if taxonomy == nil {
		taxonomy = codes.DefaultTaxonomy()
	}
	return &Assembler{
		sequences:  sequences,
		classifier: classify.New(taxonomy),
		taxonomy:   taxonomy,
		Now:        time.Now,
	}
}

// Generate assembles the filename for meta. Unknown code fields resolve to
// their documented defaults; only sequence-store failure and an
// uncompressible overflow propagate as errors.
func (a *Assembler) Generate(meta *document.Metadata) (string, *Components, error) {
	country := codes.NormalizeCountry(meta.Country)
	docType := codes.NormalizeDocType(meta.DocType)
	year := a.resolveYear(meta)

	fallbackSeq, err := a.unreportedSequence(meta, country, docType, year)
	if err != nil {
		return "", nil, err
	}

	globalID := meta.GlobalID
	if !sequence.IsGlobalID(globalID) {
		_, globalID, err = a.sequences.NextGlobalID(country)
		if err != nil {
			return "", nil, err
		}
	}

	c := &Components{
		GlobalID:    globalID,
		Country:     country,
		DocType:     string(docType),
		Subtype:     codes.NormalizeSubtype(meta.Subtype),
		Year:        year,
		DocNum:      docnum.Generate(meta, year, fallbackSeq),
		Identifier:  a.identifier(meta, docType),
		Subject:     a.subject(meta, country),
		Status:      codes.NormalizeStatus(meta.Status),
		Version:     clampVersion(meta.Version),
		Language:    codes.NormalizeLanguage(meta.Language),
		ContentHash: a.hash(meta),
	}

	name := c.String()
	if len(name) > MaxLength {
		if err := shrink(c, len(name)-MaxLength); err != nil {
			return "", nil, err
		}
		name = c.String()
		if a.OnTruncate != nil {
			a.OnTruncate()
		}
	}
	return name, c, nil
}

// resolveYear picks the document year: explicit field, then a plausible
// 4-digit year in either date string, then one in the citation, then the
// current year.
func (a *Assembler) resolveYear(meta *document.Metadata) int {
	if codes.PlausibleYear(meta.Year) {
		return meta.Year
	}
	for _, s := range []string{meta.EnactedDate, meta.EffectiveDate, meta.Citation} {
		if y, ok := scanYear(s); ok {
			return y
		}
	}
	return a.Now().Year()
}

func scanYear(s string) (int, bool) {
	for _, m := range fourDigitRe.FindAllString(s, -1) {
		var y int
		fmt.Sscanf(m, "%d", &y)
		if codes.PlausibleYear(y) {
			return y, true
		}
	}
	return 0, false
}

// unreportedSequence draws a yearly sequence number only when the DOCNUM
// builder will actually need one: an unreported case whose case number
// carries no digits.
func (a *Assembler) unreportedSequence(meta *document.Metadata, country string, docType codes.DocType, year int) (int, error) {
	if docType != codes.DocCase {
		return 0, nil
	}
	if strings.TrimSpace(meta.Citation) != "" {
		return 0, nil
	}
	if anyDigitRe.MatchString(meta.CaseNumber) {
		return 0, nil
	}
	n, err := a.sequences.NextYearly(country, string(docType), year)
	if err != nil {
		return 0, fmt.Errorf("yearly sequence: %w", err)
	}
	return int(n), nil
}

// identifier abbreviates the parties for cases and the title otherwise.
func (a *Assembler) identifier(meta *document.Metadata, docType codes.DocType) string {
	if docType == codes.DocCase {
		pet, resp := meta.Petitioner, meta.Respondent
		if pet == "" && resp == "" {
			pet, resp = abbrev.ExtractParties(meta.CaseTitle)
		}
		if id := abbrev.Pair(pet, resp); id != "" {
			return id
		}
	}
	if id := abbrev.Title(meta.Title); id != "" {
		return id
	}
	return "Unknown"
}

// subject honors a valid hint and classifies otherwise.
func (a *Assembler) subject(meta *document.Metadata, country string) string {
	hint := codes.CleanToken(meta.Subject)
	if hint != "" && a.taxonomy.IsSubjectCode(hint) {
		return hint
	}

	title := meta.Title
	if title == "" {
		title = meta.CaseTitle
	}
	return a.classifier.Classify(title, meta.Content, country).Code
}

// hash prefers a valid pre-computed fingerprint over hashing the content.
func (a *Assembler) hash(meta *document.Metadata) string {
	if contenthash.Validate(meta.ContentHash) {
		return strings.ToUpper(meta.ContentHash)
	}
	return contenthash.HashString(meta.Content)
}

func clampVersion(v int) int {
	if v < 1 {
		return 1
	}
	if v > 99 {
		return 99
	}
	return v
}

// shrink applies the truncation cascade: Identifier down to its floor
// first, then DocNum. Fixed-width fields are never touched.
func shrink(c *Components, over int) error {
	if cut := min(over, len(c.Identifier)-MinIdentifier); cut > 0 {
		c.Identifier = c.Identifier[:len(c.Identifier)-cut]
		over -= cut
	}
	if over > 0 {
		if cut := min(over, len(c.DocNum)-MinDocNum); cut > 0 {
			c.DocNum = c.DocNum[:len(c.DocNum)-cut]
			over -= cut
		}
	}
	if over > 0 {
		return fmt.Errorf("%w: %d chars over after cascade", ErrTooLong, over)
	}
	return nil
}

// Resolve decodes the citation token inside parsed components, when the
// DOCNUM is a reversible citation encoding.
func Resolve(c *Components) (*citation.Components, bool) {
	return citation.Decode(c.DocNum)
}
