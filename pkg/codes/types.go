// ABOUTME: Code tables for the legal document naming scheme
// ABOUTME: Defines country, category, status and language codes with defaults

package codes

// DocType is the closed set of document categories.
type DocType string

const (
	DocCase         DocType = "CAS" // Court case / judgment
	DocAct          DocType = "ACT" // Act of parliament
	DocRule         DocType = "RUL" // Statutory rule
	DocOrder        DocType = "ORD" // Executive / court order
	DocOrdinance    DocType = "ORN" // Ordinance
	DocConstitution DocType = "CON" // Constitution or amendment
	DocTreaty       DocType = "TRE" // International treaty
	DocNotification DocType = "NOT" // Government notification
	DocCircular     DocType = "CIR" // Departmental circular
	DocGazette      DocType = "GAZ" // Gazette publication
	DocOther        DocType = "OTH" // Anything else
)

// Defaults used when an input field does not resolve to a known code.
const (
	DefaultCountry  = "BD"
	DefaultDocType  = DocCase
	DefaultSubtype  = "GEN"
	DefaultStatus   = "ACT"
	DefaultLanguage = "en"
)

// Classification is a resolved subject taxonomy triple.
type Classification struct {
	Subject     string // Subject name (e.g. "CRIMINAL")
	Subcategory string // Subcategory code within the subject (e.g. "PEN")
	Code        string // Subject code used in filenames (e.g. "CRM")
}

// Subcategory is a keyword-scored subdivision of a subject.
type Subcategory struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Subject is one entry in the classification taxonomy. Subjects are
// evaluated in slice order; the shipped taxonomy is ordered alphabetically
// by code so tie-breaks are deterministic.
type Subject struct {
	Code          string        `yaml:"code"`
	Name          string        `yaml:"name"`
	Keywords      []string      `yaml:"keywords"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// ActOverride maps a well-known act name substring to a subject path.
type ActOverride struct {
	Match       string `yaml:"match"`
	Subject     string `yaml:"subject"`
	Subcategory string `yaml:"subcategory"`
	Code        string `yaml:"code"`
}

// Taxonomy is the full classification data set.
type Taxonomy struct {
	Subjects []Subject `yaml:"subjects"`
	// Overrides are keyed by country code; matched against lowercase titles.
	Overrides map[string][]ActOverride `yaml:"overrides"`
}
