// ABOUTME: Tests for the content fingerprint component
// ABOUTME: Verifies determinism, the empty-content constant and validation

package contenthash

import (
	"strings"
	"testing"
)

func TestHashDeterminism(t *testing.T) {
	a := Hash([]byte("The Penal Code, 1860"))
	b := Hash([]byte("The Penal Code, 1860"))
	if a != b {
		t.Errorf("Hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != Length {
		t.Errorf("Expected %d chars, got %d", Length, len(a))
	}
	if a != strings.ToUpper(a) {
		t.Errorf("Expected uppercase hash, got %s", a)
	}
}

func TestHashEmpty(t *testing.T) {
	if got := Hash(nil); got != EmptyHash {
		t.Errorf("Expected %s for nil content, got %s", EmptyHash, got)
	}
	if got := HashString(""); got != EmptyHash {
		t.Errorf("Expected %s for empty string, got %s", EmptyHash, got)
	}
}

func TestHashSensitivity(t *testing.T) {
	a := HashString("section 302 of the penal code")
	b := HashString("section 303 of the penal code")
	if a == b {
		t.Error("One-byte change produced identical fingerprints")
	}
}

func TestHashReader(t *testing.T) {
	want := HashString("gazette notification body")
	got, err := HashReader(strings.NewReader("gazette notification body"))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}
	if got != want {
		t.Errorf("HashReader = %s, want %s", got, want)
	}

	empty, err := HashReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("HashReader failed on empty input: %v", err)
	}
	if empty != EmptyHash {
		t.Errorf("Expected %s for empty reader, got %s", EmptyHash, empty)
	}
}

func TestValidate(t *testing.T) {
	if !Validate("0000000000000000") {
		t.Error("Expected empty-hash constant to validate")
	}
	if !Validate("A1B2C3D4E5F60718") {
		t.Error("Expected valid hash to validate")
	}
	if Validate("A1B2C3D4E5F6071") {
		t.Error("15 chars must not validate")
	}
	if Validate("A1B2C3D4E5F607189") {
		t.Error("17 chars must not validate")
	}
	if Validate("G1B2C3D4E5F60718") {
		t.Error("Non-hex chars must not validate")
	}
}
