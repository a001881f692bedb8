// ABOUTME: Content fingerprint component for generated filenames
// ABOUTME: 16 uppercase hex chars from SHA-256, advisory identity only

package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
)

// Length is the fingerprint length in hex characters.
const Length = 16

// EmptyHash is the fixed fingerprint for empty content.
const EmptyHash = "0000000000000000"

// Hash returns the first 16 hex characters of the SHA-256 digest of content,
// uppercased. Empty content maps to EmptyHash.
//
// This is an advisory fingerprint for change detection, not a dedup index;
// 64-bit collisions are tolerated.
func Hash(content []byte) string {
	if len(content) == 0 {
		return EmptyHash
	}
	sum := sha256.Sum256(content)
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:Length]
}

// HashString hashes the UTF-8 bytes of s.
func HashString(s string) string {
	return Hash([]byte(s))
}

// HashReader streams r through SHA-256 and returns the fingerprint.
// A reader that yields no bytes maps to EmptyHash.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return EmptyHash, nil
	}
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))[:Length], nil
}

// Validate reports whether h is exactly 16 hex characters.
func Validate(h string) bool {
	if len(h) != Length {
		return false
	}
	for _, r := range h {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
