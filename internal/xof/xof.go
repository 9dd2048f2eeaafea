// Package xof wraps SHAKE-256 as a labeled extendable-output
// function. Callers key the stream with a domain-separation label and
// squeeze as many bytes as they need.
package xof

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Expand absorbs label and parts into SHAKE-256 and returns outLen
// squeezed bytes.
func Expand(label string, outLen int, parts ...[]byte) []byte {
	if outLen <= 0 {
		panic("xof.Expand: outLen must be > 0")
	}
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(label)); err != nil {
		panic(fmt.Errorf("xof: write label: %w", err))
	}
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("xof: write payload: %w", err))
		}
	}
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("xof: read output: %w", err))
	}
	return out
}

// Stream returns a SHAKE-256 reader seeded with label and parts, for
// callers that squeeze an unbounded number of bytes.
func Stream(label string, parts ...[]byte) sha3.ShakeHash {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte(label)); err != nil {
		panic(fmt.Errorf("xof: write label: %w", err))
	}
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("xof: write payload: %w", err))
		}
	}
	return h
}
