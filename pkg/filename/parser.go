// ABOUTME: Filename parsing and per-field validation
// ABOUTME: Strict grammar first, then a relaxed grammar filling defaults

package filename

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/contenthash"
	"github.com/nainya/lexname/pkg/sequence"
)

var (
	// strictRe is the full 12-field grammar.
	strictRe = regexp.MustCompile(
		`^([A-Z]{2}\d{8})_([A-Z]{2})_([A-Z]{3})_([A-Za-z0-9]{2,4})_(\d{4})_` +
			`([A-Za-z0-9]{1,15})_([A-Za-z0-9]{1,30})_([A-Z]{2,3})_([A-Z]{3})_` +
			`V(\d{2})_([a-z]{2})_([A-Fa-f0-9]{16})\.pdf$`)

	// relaxedRe tolerates legacy names missing the global ID, subtype or
	// any of the trailing fields. Country, type, year, DOCNUM and
	// IDENTIFIER are the irreducible core.
	relaxedRe = regexp.MustCompile(
		`^(?:([A-Z]{2}\d{8})_)?([A-Z]{2})_([A-Z]{3})_(?:([A-Za-z0-9]{2,4})_)?(\d{4})_` +
			`([A-Za-z0-9]{1,15})_([A-Za-z0-9]{1,30})(?:_([A-Z]{2,3}))?(?:_([A-Z]{3}))?` +
			`(?:_V(\d{2}))?(?:_([a-z]{2}))?(?:_([A-Fa-f0-9]{16}))?\.pdf$`)
)

// Parse splits a filename into its components. The strict grammar is tried
// first; the relaxed grammar fills documented defaults for whatever it
// tolerated missing. Returns nil, false when neither grammar matches.
func Parse(name string) (*Components, bool) {
	if m := strictRe.FindStringSubmatch(name); m != nil {
		return fromMatch(m), true
	}
	if m := relaxedRe.FindStringSubmatch(name); m != nil {
		return fromMatch(m), true
	}
	return nil, false
}

// fromMatch builds components from 12 submatches, substituting defaults for
// empty optional groups.
func fromMatch(m []string) *Components {
	year, _ := strconv.Atoi(m[5])

	version := 1
	if m[10] != "" {
		version, _ = strconv.Atoi(m[10])
	}

	c := &Components{
		GlobalID:    m[1],
		Country:     m[2],
		DocType:     m[3],
		Subtype:     m[4],
		Year:        year,
		DocNum:      m[6],
		Identifier:  m[7],
		Subject:     m[8],
		Status:      m[9],
		Version:     version,
		Language:    m[11],
		ContentHash: m[12],
	}
	if c.Subtype == "" {
		c.Subtype = codes.DefaultSubtype
	}
	if c.Subject == "" {
		c.Subject = codes.DefaultClassification.Code
	}
	if c.Status == "" {
		c.Status = codes.DefaultStatus
	}
	if c.Language == "" {
		c.Language = codes.DefaultLanguage
	}
	if c.ContentHash == "" {
		c.ContentHash = contenthash.EmptyHash
	}
	return c
}

// ValidateAndParse parses a filename and checks every field against its
// code table. Validation failures are reported as human-readable messages;
// they never fail the parse itself.
func ValidateAndParse(name string, taxonomy *codes.Taxonomy) (*Components, []string) {
	if taxonomy == nil {
		taxonomy = codes.DefaultTaxonomy()
	}

	c, ok := Parse(name)
	if !ok {
		return nil, []string{fmt.Sprintf("Filename does not match naming grammar: %s", name)}
	}

	var errs []string
	if c.GlobalID != "" && !sequence.IsGlobalID(c.GlobalID) {
		errs = append(errs, fmt.Sprintf("Invalid global ID: %s", c.GlobalID))
	}
	if !codes.IsCountry(c.Country) {
		errs = append(errs, fmt.Sprintf("Invalid country code: %s", c.Country))
	}
	if !codes.IsDocType(c.DocType) {
		errs = append(errs, fmt.Sprintf("Invalid document type code: %s", c.DocType))
	}
	if !codes.PlausibleYear(c.Year) {
		errs = append(errs, fmt.Sprintf("Implausible year: %d", c.Year))
	}
	if !taxonomy.IsSubjectCode(c.Subject) {
		errs = append(errs, fmt.Sprintf("Invalid subject code: %s", c.Subject))
	}
	if !codes.IsStatus(c.Status) {
		errs = append(errs, fmt.Sprintf("Invalid status code: %s", c.Status))
	}
	if !codes.IsLanguage(c.Language) {
		errs = append(errs, fmt.Sprintf("Invalid language code: %s", c.Language))
	}
	if !contenthash.Validate(c.ContentHash) {
		errs = append(errs, fmt.Sprintf("Invalid content hash: %s", c.ContentHash))
	}
	return c, errs
}
