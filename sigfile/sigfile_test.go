package sigfile

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/partylikeits1983/miden-client-tools/poly"
)

func TestBundleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	b := NewBundle()
	b.HCoeffs = make([]uint64, poly.N)
	b.S2Coeffs = make([]uint64, poly.N)
	for i := 0; i < poly.N; i++ {
		b.HCoeffs[i] = rng.Uint64() % 12289
		b.S2Coeffs[i] = rng.Uint64() % 12289
	}
	b.Message = "deadbeef"
	b.Nonce = "00112233"

	path := filepath.Join(t.TempDir(), "signature.json")
	if err := Save(path, b); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != b.Version || got.Message != b.Message || got.Nonce != b.Nonce {
		t.Fatalf("metadata mismatch after round trip")
	}
	for i := 0; i < poly.N; i++ {
		if got.HCoeffs[i] != b.HCoeffs[i] || got.S2Coeffs[i] != b.S2Coeffs[i] {
			t.Fatalf("coefficient mismatch at %d", i)
		}
	}
	h, s2, err := got.Polynomials()
	if err != nil {
		t.Fatalf("polynomials: %v", err)
	}
	if h[0].Uint64() != b.HCoeffs[0] || s2[0].Uint64() != b.S2Coeffs[0] {
		t.Fatalf("polynomial conversion mismatch")
	}
}

func TestLoadRejectsWrongDegree(t *testing.T) {
	b := NewBundle()
	b.HCoeffs = make([]uint64, 4)
	b.S2Coeffs = make([]uint64, poly.N)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, b); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("short h_coeffs accepted")
	}
}

// Tape entries are persisted as strings: a value above 2^53 must
// survive the round trip exactly.
func TestTapeRoundTrip(t *testing.T) {
	stack := []uint64{18446744069414584320, 1, 0, 12288, 1 << 60}
	path := filepath.Join(t.TempDir(), "advice.json")
	if err := SaveTape(path, stack); err != nil {
		t.Fatalf("save tape: %v", err)
	}
	got, err := LoadTape(path)
	if err != nil {
		t.Fatalf("load tape: %v", err)
	}
	if len(got) != len(stack) {
		t.Fatalf("length %d want %d", len(got), len(stack))
	}
	for i := range stack {
		if got[i] != stack[i] {
			t.Fatalf("entry %d: %d want %d", i, got[i], stack[i])
		}
	}
}
