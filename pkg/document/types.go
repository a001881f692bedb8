// ABOUTME: Document metadata model consumed by the naming core
// ABOUTME: Owned by the ingestion caller; the core never retains references

package document

// Metadata is the input record for filename generation. It is supplied by
// the scraping/ingestion layer; every code-like field tolerates unknown
// values and resolves through the code tables' documented defaults.
type Metadata struct {
	// Country is the 2-letter country code (default BD).
	Country string `json:"country" yaml:"country"`

	// DocType is the document category code or long-form name
	// (case, act, rule, ...; default CAS).
	DocType string `json:"doc_type" yaml:"doc_type"`

	// Subtype is the court/jurisdiction token (HCD, AD, SC, ...; 2-4
	// alphanumerics after cleanup, default GEN).
	Subtype string `json:"subtype" yaml:"subtype"`

	// Year is the 4-digit document year. Zero means "derive": from dates,
	// then the citation, then the current year.
	Year int `json:"year" yaml:"year"`

	// Citation is the reported legal citation, when one exists. Presence
	// means the case is "reported".
	Citation string `json:"citation,omitempty" yaml:"citation,omitempty"`

	// CaseTitle is the full case title ("X v. Y"); used when Petitioner
	// and Respondent are empty.
	CaseTitle string `json:"case_title,omitempty" yaml:"case_title,omitempty"`

	// Petitioner and Respondent identify the parties of a case.
	Petitioner string `json:"petitioner,omitempty" yaml:"petitioner,omitempty"`
	Respondent string `json:"respondent,omitempty" yaml:"respondent,omitempty"`

	// CaseType is the short case-type token for unreported cases (WP, CR,
	// ...).
	CaseType string `json:"case_type,omitempty" yaml:"case_type,omitempty"`

	// CaseNumber is the free-text case number; the first integer in it
	// seeds the unreported-case sequence.
	CaseNumber string `json:"case_number,omitempty" yaml:"case_number,omitempty"`

	// Title is the document title for non-case categories.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// ActNumber is the explicit act/ordinance number ("XLV", "18", ...).
	ActNumber string `json:"act_number,omitempty" yaml:"act_number,omitempty"`

	// DocNumber is the explicit number for rules, orders, notifications,
	// circulars, gazettes and treaties.
	DocNumber string `json:"doc_number,omitempty" yaml:"doc_number,omitempty"`

	// Subject is an optional subject-code hint; empty means auto-classify.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Status is the legal status code (default ACT).
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// Version is the document version, clamped to 1..99 (default 1).
	Version int `json:"version,omitempty" yaml:"version,omitempty"`

	// Language is the 2-letter language code (default en).
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// EnactedDate and EffectiveDate are free-form date strings; a 4-digit
	// year inside either feeds year derivation.
	EnactedDate   string `json:"enacted_date,omitempty" yaml:"enacted_date,omitempty"`
	EffectiveDate string `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`

	// Content is the raw document text used for hashing and
	// classification. Large callers may hash a file themselves and set
	// ContentHash instead.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// ContentHash is a pre-computed 16-hex-char fingerprint. Takes
	// precedence over Content when valid.
	ContentHash string `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`

	// GlobalID is a pre-assigned global identifier ("BD00000042"). Empty
	// means the sequence generator assigns one.
	GlobalID string `json:"global_id,omitempty" yaml:"global_id,omitempty"`
}
