// ABOUTME: Keyword-scored subject classification over the taxonomy
// ABOUTME: Country act-name overrides short-circuit; ties break in taxonomy order

package classify

import (
	"strings"

	"github.com/nainya/lexname/pkg/codes"
)

// Scoring weights. Subject-name hits in the title dominate; subcategory
// keywords refine.
const (
	subjectInTextWeight    = 5
	subjectInTitleWeight   = 10
	keywordInTextWeight    = 1
	keywordInTitleWeight   = 2
)

// Classifier assigns taxonomy subjects to documents.
type Classifier struct {
	taxonomy *codes.Taxonomy
}

// New creates a classifier over the given taxonomy. A nil taxonomy uses the
// built-in default.
func New(taxonomy *codes.Taxonomy) *Classifier {
	if taxonomy == nil {
		taxonomy = codes.DefaultTaxonomy()
	}
	return &Classifier{taxonomy: taxonomy}
}

// Classify scores the taxonomy against title and content and returns the
// winning subject triple. Country-specific act-name overrides are checked
// first and short-circuit scoring. With no signal at all the default
// (GENERAL, MIS, GEN) is returned.
//
// Subjects are scored in taxonomy declared order and the first highest
// score wins, so equal scores resolve deterministically.
func (c *Classifier) Classify(title, content, country string) codes.Classification {
	titleLower := strings.ToLower(title)
	combined := titleLower + " " + strings.ToLower(content)

	if cls, ok := c.override(titleLower, country); ok {
		return cls
	}

	var best *codes.Subject
	bestScore := 0
	for i := range c.taxonomy.Subjects {
		s := &c.taxonomy.Subjects[i]
		score := c.scoreSubject(s, titleLower, combined)
		if score > bestScore {
			best = s
			bestScore = score
		}
	}

	if best == nil {
		return codes.DefaultClassification
	}

	return codes.Classification{
		Subject:     best.Name,
		Subcategory: c.pickSubcategory(best, titleLower, combined),
		Code:        best.Code,
	}
}

func (c *Classifier) override(titleLower, country string) (codes.Classification, bool) {
	overrides := c.taxonomy.Overrides[codes.NormalizeCountry(country)]
	for _, o := range overrides {
		if strings.Contains(titleLower, o.Match) {
			return codes.Classification{
				Subject:     o.Subject,
				Subcategory: o.Subcategory,
				Code:        o.Code,
			}, true
		}
	}
	return codes.Classification{}, false
}

func (c *Classifier) scoreSubject(s *codes.Subject, titleLower, combined string) int {
	score := 0

	name := strings.ToLower(s.Name)
	if strings.Contains(combined, name) {
		score += subjectInTextWeight
	}
	if strings.Contains(titleLower, name) {
		score += subjectInTitleWeight
	}

	for _, kw := range s.Keywords {
		if strings.Contains(combined, kw) {
			score += keywordInTextWeight
		}
		if strings.Contains(titleLower, kw) {
			score += keywordInTitleWeight
		}
	}

	for _, sub := range s.Subcategories {
		for _, kw := range sub.Keywords {
			if strings.Contains(combined, kw) {
				score += keywordInTextWeight
			}
			if strings.Contains(titleLower, kw) {
				score += keywordInTitleWeight
			}
		}
	}

	return score
}

// pickSubcategory scores the winner's subcategories the same way; first
// highest wins, and a subject with no keyword hits keeps its first
// subcategory.
func (c *Classifier) pickSubcategory(s *codes.Subject, titleLower, combined string) string {
	if len(s.Subcategories) == 0 {
		return codes.DefaultClassification.Subcategory
	}

	best := s.Subcategories[0].Code
	bestScore := 0
	for _, sub := range s.Subcategories {
		score := 0
		for _, kw := range sub.Keywords {
			if strings.Contains(combined, kw) {
				score += keywordInTextWeight
			}
			if strings.Contains(titleLower, kw) {
				score += keywordInTitleWeight
			}
		}
		if score > bestScore {
			best = sub.Code
			bestScore = score
		}
	}
	return best
}
