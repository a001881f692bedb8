// ABOUTME: Global-ID and yearly sequence generation over the counter store
// ABOUTME: Global IDs render as country code plus 8-digit zero-padded counter

package sequence

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nainya/lexname/pkg/codes"
)

var globalIDRe = regexp.MustCompile(`^([A-Z]{2})(\d{8})$`)

// FormatGlobalID renders a counter value as a global identifier, e.g.
// ("BD", 42) -> "BD00000042".
func FormatGlobalID(country string, n uint64) string {
	return fmt.Sprintf("%s%08d", codes.NormalizeCountry(country), n)
}

// ParseGlobalID splits a global identifier into country and counter.
func ParseGlobalID(id string) (country string, n uint64, err error) {
	m := globalIDRe.FindStringSubmatch(id)
	if m == nil {
		return "", 0, fmt.Errorf("malformed global ID %q", id)
	}
	n, err = strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed global ID %q: %w", id, err)
	}
	return m[1], n, nil
}

// IsGlobalID reports whether id has global-identifier shape.
func IsGlobalID(id string) bool {
	return globalIDRe.MatchString(id)
}

// Generator mints identifiers from a durable counter store.
type Generator struct {
	store Store
}

// NewGenerator wraps a counter store.
func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// NextGlobalID assigns the next country-wide identifier. The raw counter
// value is returned alongside the rendered ID.
func (g *Generator) NextGlobalID(country string) (uint64, string, error) {
	cc := codes.NormalizeCountry(country)
	n, err := g.store.Next(GlobalKey(cc))
	if err != nil {
		return 0, "", err
	}
	return n, FormatGlobalID(cc, n), nil
}

// NextYearly assigns the next per-country/category/year sequence number.
func (g *Generator) NextYearly(country, category string, year int) (uint64, error) {
	cc := codes.NormalizeCountry(country)
	cat := string(codes.NormalizeDocType(category))
	return g.store.Next(YearlyKey(cc, cat, year))
}

// CurrentYearly reads a yearly counter without advancing it.
func (g *Generator) CurrentYearly(country, category string, year int) (uint64, error) {
	cc := codes.NormalizeCountry(country)
	cat := string(codes.NormalizeDocType(category))
	return g.store.Peek(YearlyKey(cc, cat, year))
}
