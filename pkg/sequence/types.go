// ABOUTME: Sequence key model and the durable counter store contract
// ABOUTME: Counters are scoped globally per country or per country/category/year

package sequence

import (
	"errors"
	"fmt"
)

// Scope selects the counter family a key belongs to.
type Scope string

const (
	// ScopeGlobal counts every document a country has ever registered.
	ScopeGlobal Scope = "GLOBAL"

	// ScopeYearly counts documents per country, category and year. Seeds
	// unreported-case numbering.
	ScopeYearly Scope = "YEARLY"
)

// Key identifies one counter. Category and Year are only meaningful for
// yearly scope and must be zero-valued for global keys.
type Key struct {
	Scope    Scope
	Country  string
	Category string
	Year     int
}

// GlobalKey builds the country-wide counter key.
func GlobalKey(country string) Key {
	return Key{Scope: ScopeGlobal, Country: country}
}

// YearlyKey builds a per-country/category/year counter key.
func YearlyKey(country, category string, year int) Key {
	return Key{Scope: ScopeYearly, Country: country, Category: category, Year: year}
}

// Bytes renders the storage key. Global: "seq/GLOBAL/BD".
// Yearly: "seq/YEARLY/BD/CAS/1998".
func (k Key) Bytes() []byte {
	if k.Scope == ScopeGlobal {
		return []byte(fmt.Sprintf("seq/%s/%s", k.Scope, k.Country))
	}
	return []byte(fmt.Sprintf("seq/%s/%s/%s/%04d", k.Scope, k.Country, k.Category, k.Year))
}

// Validate rejects malformed keys before they reach storage.
func (k Key) Validate() error {
	if k.Country == "" {
		return errors.New("sequence key requires a country")
	}
	switch k.Scope {
	case ScopeGlobal:
		if k.Category != "" || k.Year != 0 {
			return errors.New("global sequence key must not carry category or year")
		}
	case ScopeYearly:
		if k.Category == "" {
			return errors.New("yearly sequence key requires a category")
		}
		if k.Year <= 0 {
			return errors.New("yearly sequence key requires a year")
		}
	default:
		return fmt.Errorf("unknown sequence scope %q", k.Scope)
	}
	return nil
}

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("sequence store is closed")

// Store is a durable, strictly monotonic counter per key.
//
// Next must never silently restart a counter: any storage failure surfaces
// as an error so callers cannot mint colliding identifiers.
type Store interface {
	// Next increments the counter and returns the new value. The first
	// call for a key returns 1.
	Next(key Key) (uint64, error)

	// Peek returns the current value without incrementing. An untouched
	// counter reads 0.
	Peek(key Key) (uint64, error)

	// Reset forces the counter to a value. Administrative repair only.
	Reset(key Key, value uint64) error

	// Close releases the store. Further calls fail with ErrStoreClosed.
	Close() error
}
