// SPDX-License-Identifier: GPL-2.0-only

package lzsshuff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dfgordon/retrocompressor/internal/lzhufref"
)

func roundTrip(t *testing.T, data []byte, opts *Options) []byte {
	t.Helper()
	compressed, inN, _, err := Compress(data, opts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if inN != uint64(len(data)) {
		t.Fatalf("inN = %d, want %d", inN, len(data))
	}
	expanded, _, _, err := Expand(compressed, opts)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	return expanded
}

func TestRoundTripLzhuf(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"short":      []byte("hello, world"),
		"repetitive": bytes.Repeat([]byte("abcabcabcabc "), 50),
		"literary":   []byte(strings.Repeat("to be or not to be, that is the question. ", 200)),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			got := roundTrip(t, data, &Options{Hdr: Lzhuf})
			if !bytes.Equal(got, data) {
				t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(data))
			}
		})
	}
}

func TestRoundTripNoneHeaderToleratesInput(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 100))
	compressed, _, _, err := Compress(data, &Options{Hdr: None})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, _, _, err := Expand(compressed, &Options{Hdr: None})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// None mode has no EOS symbol; decoding may yield up to one trailing
	// garbage byte from the zero-padded tail of the bit stream.
	if len(got) < len(data) || len(got) > len(data)+1 {
		t.Fatalf("got %d bytes, want %d or %d", len(got), len(data), len(data)+1)
	}
	if !bytes.Equal(got[:len(data)], data) {
		t.Fatalf("round trip mismatch in None mode")
	}
}

func TestCompressIsDeterministic(t *testing.T) {
	data := []byte(strings.Repeat("determinism check ", 37))
	a, _, _, _ := Compress(data, nil)
	b, _, _, _ := Compress(data, nil)
	if !bytes.Equal(a, b) {
		t.Fatalf("Compress is not deterministic")
	}
}

func TestExpandRejectsShortLzhufHeader(t *testing.T) {
	_, _, _, err := Expand([]byte{1, 2}, &Options{Hdr: Lzhuf})
	if err != ErrUnexpectedEOF {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestCompressRejectsOversizedInput(t *testing.T) {
	_, _, _, err := Compress(make([]byte, 100), &Options{Hdr: Lzhuf, MaxExpanded: 10})
	if err != ErrSizeExceeded {
		t.Fatalf("got %v, want ErrSizeExceeded", err)
	}
}

// TestMatchesReferencePort checks lzsshuff against internal/lzhufref, an
// independent oracle port of the same algorithm: for the same input under
// the Lzhuf header policy, both implementations must produce bit-identical
// compressed output, and each must be able to expand the other's output.
func TestMatchesReferencePort(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"short":      []byte("hello, world"),
		"repetitive": bytes.Repeat([]byte("abcabcabcabc "), 50),
		"literary":   []byte(strings.Repeat("to be or not to be, that is the question. ", 200)),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			ours, _, _, err := Compress(data, &Options{Hdr: Lzhuf})
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			ref := lzhufref.Compress(data)
			if !bytes.Equal(ours, ref) {
				t.Fatalf("bitstream mismatch vs reference port: %d bytes vs %d bytes", len(ours), len(ref))
			}

			backOurs, _, _, err := Expand(ref, &Options{Hdr: Lzhuf})
			if err != nil {
				t.Fatalf("Expand(ref): %v", err)
			}
			if !bytes.Equal(backOurs, data) {
				t.Fatalf("lzsshuff.Expand of reference-port output mismatch")
			}

			backRef := lzhufref.Expand(ours)
			if !bytes.Equal(backRef, data) {
				t.Fatalf("reference port Expand of our output mismatch")
			}
		})
	}
}

func TestExpandEnforcesMaxExpanded(t *testing.T) {
	data := []byte(strings.Repeat("x", 1000))
	compressed, _, _, err := Compress(data, &Options{Hdr: Lzhuf})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	_, _, _, err = Expand(compressed, &Options{Hdr: Lzhuf, MaxExpanded: 10})
	if err != ErrSizeExceeded {
		t.Fatalf("got %v, want ErrSizeExceeded", err)
	}
}
