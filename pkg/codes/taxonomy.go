// ABOUTME: Default subject taxonomy and YAML override loading
// ABOUTME: Subjects are ordered alphabetically by code for deterministic scoring

package codes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultClassification is returned when no subject matches.
var DefaultClassification = Classification{
	Subject:     "GENERAL",
	Subcategory: "MIS",
	Code:        "GEN",
}

// DefaultTaxonomy returns the built-in classification taxonomy.
//
// Subject slice order is the tie-break for equal scores, so entries are kept
// alphabetical by code. Keywords are lowercase; matching is substring-based.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Subjects: []Subject{
			{
				Code: "CIV", Name: "CIVIL",
				Keywords: []string{"civil", "suit", "decree", "plaint"},
				Subcategories: []Subcategory{
					{Code: "CON", Name: "Contract", Keywords: []string{"contract", "agreement", "breach", "damages"}},
					{Code: "PRP", Name: "Property", Keywords: []string{"property", "title", "easement", "partition"}},
					{Code: "TOR", Name: "Tort", Keywords: []string{"negligence", "nuisance", "defamation"}},
				},
			},
			{
				Code: "COM", Name: "COMMERCIAL",
				Keywords: []string{"commercial", "trade", "business", "company"},
				Subcategories: []Subcategory{
					{Code: "BNK", Name: "Banking", Keywords: []string{"bank", "loan", "mortgage", "negotiable"}},
					{Code: "CMP", Name: "Company", Keywords: []string{"company", "shareholder", "director", "winding up"}},
					{Code: "INS", Name: "Insurance", Keywords: []string{"insurance", "policy", "premium"}},
				},
			},
			{
				Code: "CRM", Name: "CRIMINAL",
				Keywords: []string{"criminal", "penal", "offence", "prosecution"},
				Subcategories: []Subcategory{
					{Code: "PEN", Name: "Penal", Keywords: []string{"murder", "theft", "hurt", "penal code", "cheating"}},
					{Code: "PRO", Name: "Procedure", Keywords: []string{"bail", "charge", "investigation", "criminal procedure"}},
					{Code: "EVD", Name: "Evidence", Keywords: []string{"evidence", "witness", "confession"}},
				},
			},
			{
				Code: "CST", Name: "CONSTITUTIONAL",
				Keywords: []string{"constitution", "constitutional", "fundamental right"},
				Subcategories: []Subcategory{
					{Code: "FND", Name: "Fundamental Rights", Keywords: []string{"fundamental", "equality", "liberty", "freedom"}},
					{Code: "WRT", Name: "Writs", Keywords: []string{"writ", "mandamus", "certiorari", "habeas corpus"}},
				},
			},
			{
				Code: "FAM", Name: "FAMILY",
				Keywords: []string{"family", "marriage", "divorce", "custody"},
				Subcategories: []Subcategory{
					{Code: "MAR", Name: "Marriage", Keywords: []string{"marriage", "dower", "divorce", "maintenance"}},
					{Code: "INH", Name: "Inheritance", Keywords: []string{"inheritance", "succession", "heir", "will"}},
				},
			},
			{
				Code: "LAB", Name: "LABOUR",
				Keywords: []string{"labour", "labor", "worker", "employment"},
				Subcategories: []Subcategory{
					{Code: "IND", Name: "Industrial Disputes", Keywords: []string{"industrial", "strike", "lockout", "union"}},
					{Code: "WAG", Name: "Wages", Keywords: []string{"wages", "gratuity", "provident fund", "bonus"}},
				},
			},
			{
				Code: "LND", Name: "LAND",
				Keywords: []string{"land", "tenancy", "acquisition", "khatian"},
				Subcategories: []Subcategory{
					{Code: "TEN", Name: "Tenancy", Keywords: []string{"tenant", "tenancy", "eviction", "rent"}},
					{Code: "ACQ", Name: "Acquisition", Keywords: []string{"acquisition", "requisition", "compensation"}},
				},
			},
			{
				Code: "TAX", Name: "TAXATION",
				Keywords: []string{"tax", "taxation", "revenue", "duty"},
				Subcategories: []Subcategory{
					{Code: "CUS", Name: "Customs", Keywords: []string{"customs", "import", "export", "tariff"}},
					{Code: "INC", Name: "Income Tax", Keywords: []string{"income tax", "assessee", "assessment"}},
					{Code: "VAT", Name: "Value Added Tax", Keywords: []string{"vat", "value added", "excise"}},
				},
			},
		},
		Overrides: map[string][]ActOverride{
			"BD": {
				{Match: "penal code", Subject: "CRIMINAL", Subcategory: "PEN", Code: "CRM"},
				{Match: "code of criminal procedure", Subject: "CRIMINAL", Subcategory: "PRO", Code: "CRM"},
				{Match: "evidence act", Subject: "CRIMINAL", Subcategory: "EVD", Code: "CRM"},
				{Match: "contract act", Subject: "CIVIL", Subcategory: "CON", Code: "CIV"},
				{Match: "code of civil procedure", Subject: "CIVIL", Subcategory: "PRP", Code: "CIV"},
				{Match: "companies act", Subject: "COMMERCIAL", Subcategory: "CMP", Code: "COM"},
				{Match: "negotiable instruments", Subject: "COMMERCIAL", Subcategory: "BNK", Code: "COM"},
				{Match: "constitution", Subject: "CONSTITUTIONAL", Subcategory: "FND", Code: "CST"},
				{Match: "muslim family laws", Subject: "FAMILY", Subcategory: "MAR", Code: "FAM"},
				{Match: "labour act", Subject: "LABOUR", Subcategory: "IND", Code: "LAB"},
				{Match: "state acquisition", Subject: "LAND", Subcategory: "ACQ", Code: "LND"},
				{Match: "income tax", Subject: "TAXATION", Subcategory: "INC", Code: "TAX"},
				{Match: "value added tax", Subject: "TAXATION", Subcategory: "VAT", Code: "TAX"},
			},
			"IN": {
				{Match: "indian penal code", Subject: "CRIMINAL", Subcategory: "PEN", Code: "CRM"},
				{Match: "income tax", Subject: "TAXATION", Subcategory: "INC", Code: "TAX"},
				{Match: "companies act", Subject: "COMMERCIAL", Subcategory: "CMP", Code: "COM"},
				{Match: "constitution", Subject: "CONSTITUTIONAL", Subcategory: "FND", Code: "CST"},
			},
			"PK": {
				{Match: "pakistan penal code", Subject: "CRIMINAL", Subcategory: "PEN", Code: "CRM"},
				{Match: "constitution", Subject: "CONSTITUTIONAL", Subcategory: "FND", Code: "CST"},
			},
		},
	}
}

// IsSubjectCode reports whether code names a taxonomy subject (or the
// default GEN code).
func (t *Taxonomy) IsSubjectCode(code string) bool {
	if code == DefaultClassification.Code {
		return true
	}
	for _, s := range t.Subjects {
		if s.Code == code {
			return true
		}
	}
	return false
}

// LoadTaxonomy reads a YAML taxonomy file. Missing sections fall back to the
// defaults so partial override files stay valid.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	t := &Taxonomy{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	defaults := DefaultTaxonomy()
	if len(t.Subjects) == 0 {
		t.Subjects = defaults.Subjects
	}
	if len(t.Overrides) == 0 {
		t.Overrides = defaults.Overrides
	}
	return t, nil
}
