// ABOUTME: Tests for filename assembly, parsing and validation
// ABOUTME: Exercises the full pipeline over an in-memory sequence store

package filename

import (
	"strings"
	"testing"
	"time"

	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/contenthash"
	"github.com/nainya/lexname/pkg/document"
	"github.com/nainya/lexname/pkg/sequence"
)

func newTestAssembler() *Assembler {
	gen := sequence.NewGenerator(sequence.NewMemoryStore())
	a := NewAssembler(gen, nil)
	a.Now = func() time.Time {
		return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	}
	return a
}

func TestGenerateAct(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:   "BD",
		DocType:   "ACT",
		Year:      1860,
		ActNumber: "XLV",
		Title:     "The Penal Code, 1860",
		Subject:   "CRM",
		Status:    "AMD",
	}

	name, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_CRM_AMD_V01_en_0000000000000000.pdf"
	if name != want {
		t.Errorf("Expected %s, got %s", want, name)
	}
	if c.DocNum != "XLV" {
		t.Errorf("Expected DOCNUM XLV, got %s", c.DocNum)
	}
	if !strings.Contains(c.Identifier, "PenalCode") {
		t.Errorf("Expected identifier from Penal Code, got %s", c.Identifier)
	}
}

func TestGenerateReportedCase(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:    "BD",
		DocType:    "CAS",
		Citation:   "22 (1998) DLR (HCD) 205",
		Petitioner: "Md. Rahman",
		Respondent: "State of Bangladesh",
	}

	name, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if c.DocNum != "22DLR98H205" {
		t.Errorf("Expected citation DOCNUM, got %s", c.DocNum)
	}
	if c.Identifier != "RahmanvStateBangladesh" {
		t.Errorf("Expected RahmanvStateBangladesh, got %s", c.Identifier)
	}
	if c.Year != 1998 {
		t.Errorf("Expected year derived from citation, got %d", c.Year)
	}
	if len(name) > MaxLength {
		t.Errorf("Filename too long: %d", len(name))
	}

	// The DOCNUM of a reported case decodes back to citation components.
	parsed, ok := Parse(name)
	if !ok {
		t.Fatalf("Generated filename failed to parse: %s", name)
	}
	cit, ok := Resolve(parsed)
	if !ok {
		t.Fatalf("Expected decodable citation in %s", parsed.DocNum)
	}
	if cit.Volume != 22 || cit.Year != 1998 || cit.Page != 205 {
		t.Errorf("Citation round-trip mismatch: %+v", cit)
	}
}

func TestGenerateUnreportedCaseDrawsSequence(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:  "BD",
		DocType:  "CAS",
		Subtype:  "HCD",
		CaseType: "WP",
		Year:     1998,
	}

	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.DocNum != "H98WP0001" {
		t.Errorf("Expected first yearly sequence, got %s", c.DocNum)
	}

	_, c, err = a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.DocNum != "H98WP0002" {
		t.Errorf("Expected second yearly sequence, got %s", c.DocNum)
	}
}

func TestGlobalIDsIncrement(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{Country: "BD", DocType: "ACT", Year: 2000, Title: "Some Act"}

	_, c1, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	_, c2, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if c1.GlobalID != "BD00000001" || c2.GlobalID != "BD00000002" {
		t.Errorf("Expected consecutive global IDs, got %s then %s", c1.GlobalID, c2.GlobalID)
	}
}

func TestPreassignedGlobalIDKept(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:  "BD",
		DocType:  "ACT",
		Year:     2000,
		Title:    "Some Act",
		GlobalID: "BD00000099",
	}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.GlobalID != "BD00000099" {
		t.Errorf("Expected preassigned global ID, got %s", c.GlobalID)
	}
}

func TestYearResolutionOrder(t *testing.T) {
	a := newTestAssembler()

	meta := &document.Metadata{DocType: "ACT", Title: "X", EnactedDate: "15-03-1994"}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.Year != 1994 {
		t.Errorf("Expected year from enacted date, got %d", c.Year)
	}

	meta = &document.Metadata{DocType: "ACT", Title: "X"}
	_, c, err = a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.Year != 2026 {
		t.Errorf("Expected current year fallback, got %d", c.Year)
	}
}

func TestContentHashPrecedence(t *testing.T) {
	a := newTestAssembler()

	meta := &document.Metadata{
		DocType:     "ACT",
		Year:        2000,
		Title:       "X",
		Content:     "some content",
		ContentHash: "abcdef0123456789",
	}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.ContentHash != "ABCDEF0123456789" {
		t.Errorf("Expected precomputed hash uppercased, got %s", c.ContentHash)
	}

	meta.ContentHash = "not-a-hash"
	_, c, err = a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.ContentHash != contenthash.HashString("some content") {
		t.Errorf("Expected content hash, got %s", c.ContentHash)
	}
}

func TestUnknownCodesFallBack(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:  "ZZ",
		DocType:  "mystery",
		Status:   "???",
		Language: "xx",
		Year:     2000,
	}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.Country != "BD" || c.DocType != "CAS" || c.Status != "ACT" || c.Language != "en" {
		t.Errorf("Expected documented defaults, got %+v", c)
	}
}

func TestLengthInvariant(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:   "BD",
		DocType:   "OTH",
		Year:      2000,
		DocNumber: "Memo 1234567890 ABCDEFGHIJ",
		Title:     "Bangladesh Agricultural Development Corporation Employees Welfare Society Documentation Records",
	}
	name, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(name) > MaxLength {
		t.Errorf("Length invariant violated: %d chars in %s", len(name), name)
	}
	if len(c.Identifier) < MinIdentifier {
		t.Errorf("Identifier shrunk below floor: %q", c.Identifier)
	}
	if len(c.GlobalID) != 10 || len(c.ContentHash) != 16 || c.Year != 2000 {
		t.Errorf("Fixed-width field was touched: %+v", c)
	}
}

func TestShrinkCascade(t *testing.T) {
	c := &Components{
		Identifier: strings.Repeat("Ab", 15), // 30
		DocNum:     strings.Repeat("1", 15),
	}
	if err := shrink(c, 9); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if len(c.Identifier) != 21 {
		t.Errorf("Expected identifier cut to 21, got %d", len(c.Identifier))
	}
	if len(c.DocNum) != 15 {
		t.Errorf("DOCNUM must only shrink after identifier floor, got %d", len(c.DocNum))
	}

	c = &Components{
		Identifier: strings.Repeat("Ab", 15),
		DocNum:     strings.Repeat("1", 15),
	}
	if err := shrink(c, 30); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if len(c.Identifier) != MinIdentifier {
		t.Errorf("Expected identifier at floor, got %d", len(c.Identifier))
	}
	if len(c.DocNum) != 10 {
		t.Errorf("Expected DOCNUM cut to 10, got %d", len(c.DocNum))
	}

	c = &Components{Identifier: "Abcde", DocNum: "123"}
	if err := shrink(c, 1); err == nil {
		t.Error("Expected error when both fields are at their floors")
	}
}

func TestParseStrict(t *testing.T) {
	name := "BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_CRM_AMD_V01_en_0000000000000000.pdf"
	c, ok := Parse(name)
	if !ok {
		t.Fatalf("Parse failed for %s", name)
	}
	if c.GlobalID != "BD00000001" || c.Country != "BD" || c.DocType != "ACT" ||
		c.Subtype != "GEN" || c.Year != 1860 || c.DocNum != "XLV" ||
		c.Identifier != "PenalCode" || c.Subject != "CRM" || c.Status != "AMD" ||
		c.Version != 1 || c.Language != "en" {
		t.Errorf("Field mismatch: %+v", c)
	}
}

func TestParseRelaxed(t *testing.T) {
	c, ok := Parse("BD_CAS_1998_22DLR98H205_Rahman.pdf")
	if !ok {
		t.Fatal("Relaxed parse failed")
	}
	if c.Country != "BD" || c.DocType != "CAS" || c.Year != 1998 ||
		c.DocNum != "22DLR98H205" || c.Identifier != "Rahman" {
		t.Errorf("Core field mismatch: %+v", c)
	}
	if c.GlobalID != "" {
		t.Errorf("Expected empty global ID, got %s", c.GlobalID)
	}
	if c.Subtype != "GEN" || c.Subject != "GEN" || c.Status != "ACT" ||
		c.Version != 1 || c.Language != "en" || c.ContentHash != contenthash.EmptyHash {
		t.Errorf("Defaults not applied: %+v", c)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, name := range []string{
		"",
		"random.pdf",
		"BD_CAS.pdf",
		"not a filename at all",
		"BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_CRM_AMD_V01_en_0000000000000000.txt",
	} {
		if _, ok := Parse(name); ok {
			t.Errorf("Expected no match for %q", name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		Country:   "IN",
		DocType:   "CAS",
		Citation:  "AIR 1973 SC 1461",
		CaseTitle: "Kesavananda Bharati v. State of Kerala",
		Subject:   "CST",
		Status:    "ACT",
		Version:   2,
		Language:  "en",
		Content:   "fundamental rights basic structure",
	}
	name, generated, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	parsed, ok := Parse(name)
	if !ok {
		t.Fatalf("Parse failed for %s", name)
	}
	if *parsed != *generated {
		t.Errorf("Round trip mismatch:\n generated %+v\n parsed    %+v", generated, parsed)
	}
}

func TestValidateAndParse(t *testing.T) {
	name := "BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_XX_AMD_V01_en_0000000000000000.pdf"

	c, ok := Parse(name)
	if !ok || c == nil {
		t.Fatal("Parse must succeed independently of validation")
	}

	c, errs := ValidateAndParse(name, nil)
	if c == nil {
		t.Fatal("ValidateAndParse must still return components")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e, "Invalid subject code: XX") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected invalid subject error, got %v", errs)
	}

	if _, errs := ValidateAndParse(
		"BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_CRM_AMD_V01_en_0000000000000000.pdf", nil,
	); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestFolderHint(t *testing.T) {
	cases := []struct {
		country string
		docType string
		year    int
		want    string
	}{
		{"BD", "ACT", 1860, "BD/ACT/1851-1900"},
		{"BD", "ACT", 1900, "BD/ACT/1851-1900"},
		{"BD", "CAS", 1901, "BD/CAS/1901-1950"},
		{"IN", "CAS", 1998, "IN/CAS/1951-2000"},
		{"PK", "CON", 2026, "PK/CON/2001-2050"},
	}
	for _, tc := range cases {
		c := &Components{Country: tc.country, DocType: tc.docType, Year: tc.year}
		if got := FolderHint(c); got != tc.want {
			t.Errorf("FolderHint(%d) = %s, want %s", tc.year, got, tc.want)
		}
	}
}

func TestIdentifierFallback(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{DocType: "OTH", Year: 2000}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.Identifier != "Unknown" {
		t.Errorf("Expected Unknown identifier, got %s", c.Identifier)
	}
}

func TestSubjectClassifiedWhenNoHint(t *testing.T) {
	a := newTestAssembler()
	meta := &document.Metadata{
		DocType: "ACT",
		Year:    1860,
		Title:   "The Penal Code, 1860",
		Country: "BD",
	}
	_, c, err := a.Generate(meta)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if c.Subject != "CRM" {
		t.Errorf("Expected classified CRM, got %s", c.Subject)
	}
	if c.Subject == codes.DefaultClassification.Code {
		t.Error("Override must beat the default")
	}
}
