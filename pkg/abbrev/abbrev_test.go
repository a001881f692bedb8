// ABOUTME: Tests for the party/title abbreviator
// ABOUTME: Verifies pipeline stages, length budgets and versus splitting

package abbrev

import (
	"strings"
	"testing"
)

func TestPartyStripsHonorifics(t *testing.T) {
	if got := Party("Md. Rahman"); got != "Rahman" {
		t.Errorf("Expected Rahman, got %s", got)
	}
	if got := Party("Mr. Justice Abdul Karim"); got != "AbdulKarim" {
		t.Errorf("Expected AbdulKarim, got %s", got)
	}
	if got := Party("M/s Karim Traders"); got != "KarimTraders" {
		t.Errorf("Expected KarimTraders, got %s", got)
	}
}

func TestPartyDropsParentheticals(t *testing.T) {
	if got := Party("Abdul Karim (since deceased)"); got != "AbdulKarim" {
		t.Errorf("Expected AbdulKarim, got %s", got)
	}
}

func TestPartyInstitutionalDictionary(t *testing.T) {
	if got := Party("Ministry of Law"); got != "MinLaw" {
		t.Errorf("Expected MinLaw, got %s", got)
	}
	if got := Party("Bangladesh Bank"); got != "BBank" {
		t.Errorf("Expected BBank, got %s", got)
	}
	if got := Party("Government of Bangladesh"); got != "GovtBD" {
		t.Errorf("Expected GovtBD, got %s", got)
	}
}

func TestPartyStopwords(t *testing.T) {
	if got := Party("State of Bangladesh"); got != "StateBangladesh" {
		t.Errorf("Expected StateBangladesh, got %s", got)
	}
}

func TestPartyMultiPartyCollapse(t *testing.T) {
	if got := Party("Abdul Karim, Rahim Uddin and Salam Mia"); got != "Karimors" {
		t.Errorf("Expected Karimors, got %s", got)
	}
	if got := Party("Karim & Rahim"); got != "Karimors" {
		t.Errorf("Expected Karimors, got %s", got)
	}
}

func TestPartyCap(t *testing.T) {
	got := Party("Bangladesh Agricultural Development Corporation Employees Welfare Society")
	if len(got) > PartyCap {
		t.Errorf("Party result exceeds cap %d: %q (%d)", PartyCap, got, len(got))
	}
}

func TestPairBalancesBudget(t *testing.T) {
	got := Pair("Md. Rahman", "State of Bangladesh")
	if got != "RahmanvStateBangladesh" {
		t.Errorf("Expected RahmanvStateBangladesh, got %s", got)
	}
	if len(got) > IdentifierBudget {
		t.Errorf("Pair exceeds budget: %q (%d)", got, len(got))
	}
	if !strings.Contains(got, "vState") {
		t.Errorf("Expected respondent after separator, got %s", got)
	}
}

func TestPairBothSidesLong(t *testing.T) {
	got := Pair(
		"Bangladesh Environmental Lawyers Association Executive Committee",
		"Bangladesh Agricultural Development Corporation Welfare Trust",
	)
	if len(got) > IdentifierBudget {
		t.Errorf("Pair exceeds budget: %q (%d)", got, len(got))
	}
	if !strings.Contains(got, "v") {
		t.Errorf("Expected v separator in %s", got)
	}
}

func TestPairOneSideLong(t *testing.T) {
	got := Pair("Karim", "Bangladesh Agricultural Development Corporation Welfare Trust")
	if len(got) > IdentifierBudget {
		t.Errorf("Pair exceeds budget: %q (%d)", got, len(got))
	}
	if !strings.HasPrefix(got, "Karimv") {
		t.Errorf("Short side must survive untouched, got %s", got)
	}
}

func TestPairSingleParty(t *testing.T) {
	got := Pair("Abdul Karim", "")
	if got != "AbdulKarim" {
		t.Errorf("Expected AbdulKarim with no separator, got %s", got)
	}
}

func TestExtractParties(t *testing.T) {
	cases := []struct {
		title string
		pet   string
		resp  string
	}{
		{"Md. Rahman v. State of Bangladesh", "Md. Rahman", "State of Bangladesh"},
		{"Karim vs. Rahim", "Karim", "Rahim"},
		{"Karim versus Rahim", "Karim", "Rahim"},
		{"Karim -v- Rahim", "Karim", "Rahim"},
		{"Karim against Rahim", "Karim", "Rahim"},
		{"In re: Constitution Reference", "In re: Constitution Reference", ""},
	}
	for _, tc := range cases {
		pet, resp := ExtractParties(tc.title)
		if pet != tc.pet || resp != tc.resp {
			t.Errorf("ExtractParties(%q) = (%q, %q), want (%q, %q)",
				tc.title, pet, resp, tc.pet, tc.resp)
		}
	}
}

func TestExtractPartiesFirstSeparatorWins(t *testing.T) {
	pet, resp := ExtractParties("Karim v. Rahim vs. Salam")
	if pet != "Karim" {
		t.Errorf("Expected split at first separator, got petitioner %q", pet)
	}
	if resp != "Rahim vs. Salam" {
		t.Errorf("Expected remainder as respondent, got %q", resp)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("The Penal Code, 1860"); got != "PenalCode" {
		t.Errorf("Expected PenalCode, got %s", got)
	}
	if got := Title("The Code of Civil Procedure, 1908"); got != "CodeCivilProcedure" {
		t.Errorf("Expected CodeCivilProcedure, got %s", got)
	}
	got := Title("The Bangladesh Environment Conservation (Amendment) Act, 2010")
	if len(got) > IdentifierBudget {
		t.Errorf("Title exceeds budget: %q (%d)", got, len(got))
	}
	if strings.Contains(got, "Amendment") {
		t.Errorf("Parenthetical must be dropped, got %s", got)
	}
}

func TestTruncateAtBoundary(t *testing.T) {
	// Cut prefers the last word boundary at or past half the cap.
	got := truncateAtBoundary("AbdulKarimChowdhury", 15)
	if got != "AbdulKarim" {
		t.Errorf("Expected AbdulKarim, got %s", got)
	}
	// No boundary in range: hard cut.
	got = truncateAtBoundary("Abcdefghijklmnopqrstuvwxyz", 10)
	if got != "Abcdefghij" {
		t.Errorf("Expected hard cut, got %s", got)
	}
	if got := truncateAtBoundary("Short", 10); got != "Short" {
		t.Errorf("Expected passthrough, got %s", got)
	}
}
