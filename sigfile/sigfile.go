// Package sigfile persists signature bundles and generated advice
// tapes as JSON. Tape entries are written as decimal strings because
// canonical field representatives exceed the 53-bit precision of JSON
// numbers.
package sigfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/partylikeits1983/miden-client-tools/poly"
)

// Bundle is the on-disk form of a signature to generate advice for.
type Bundle struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp,omitempty"`
	Params    struct {
		N int    `json:"N"`
		Q uint64 `json:"Q"`
	} `json:"params"`
	HCoeffs  []uint64 `json:"h_coeffs"`
	S2Coeffs []uint64 `json:"s2_coeffs"`
	Message  string   `json:"message,omitempty"`
	Nonce    string   `json:"nonce,omitempty"`
}

// NewBundle creates a bundle with version and timestamp set.
func NewBundle() *Bundle {
	b := &Bundle{Version: "falcon-advice-v1"}
	b.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b.Params.N = poly.N
	b.Params.Q = 12289
	return b
}

// Load reads a bundle from path and checks the degree.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("sigfile: decode %s: %w", path, err)
	}
	if b.Params.N != 0 && b.Params.N != poly.N {
		return nil, fmt.Errorf("sigfile: bundle N=%d, want %d", b.Params.N, poly.N)
	}
	if len(b.HCoeffs) != poly.N || len(b.S2Coeffs) != poly.N {
		return nil, fmt.Errorf("sigfile: coefficient count h=%d s2=%d, want %d",
			len(b.HCoeffs), len(b.S2Coeffs), poly.N)
	}
	return &b, nil
}

// Save writes the bundle to path with indentation.
func Save(path string, b *Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Polynomials converts the bundle coefficients into fixed-size
// polynomials.
func (b *Bundle) Polynomials() (h, s2 poly.Polynomial, err error) {
	h, err = poly.FromUint64(b.HCoeffs)
	if err != nil {
		return
	}
	s2, err = poly.FromUint64(b.S2Coeffs)
	return
}

// Tape is the on-disk form of a generated advice stack.
type Tape struct {
	Version     string   `json:"version"`
	AdviceStack []string `json:"advice_stack"`
}

// SaveTape writes the advice stack to path as decimal strings.
func SaveTape(path string, stack []uint64) error {
	t := Tape{Version: "falcon-advice-v1"}
	t.AdviceStack = make([]string, len(stack))
	for i, v := range stack {
		t.AdviceStack[i] = strconv.FormatUint(v, 10)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadTape reads an advice stack back from path.
func LoadTape(path string) ([]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tape
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("sigfile: decode %s: %w", path, err)
	}
	stack := make([]uint64, len(t.AdviceStack))
	for i, s := range t.AdviceStack {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sigfile: advice_stack[%d]=%q: %w", i, s, err)
		}
		stack[i] = v
	}
	return stack, nil
}
