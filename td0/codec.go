// SPDX-License-Identifier: GPL-2.0-only

package td0

import (
	"github.com/dfgordon/retrocompressor/lzsshuff"
	"github.com/dfgordon/retrocompressor/lzw"
)

// truncationLooksPathological is the compress-side truncation-hazard
// heuristic: if the last 4 bytes of the payload are pairwise equal, the
// v2.x advanced form's lack of an EOS symbol means Expand can't tell real
// data from this run, risking silent truncation or a spurious trailing
// byte on the eventual round trip.
func truncationLooksPathological(payload []byte) bool {
	if len(payload) < 4 {
		return false
	}
	tail := payload[len(payload)-4:]
	for i := 1; i < len(tail); i++ {
		if tail[i] != tail[0] {
			return false
		}
	}
	return true
}

// passthroughBytes truncates or zero-pads extra to exactly outOffset bytes,
// so the verbatim-copy length at the output always matches what the caller
// asked for regardless of how many bytes in_offset actually skipped.
func passthroughBytes(extra []byte, outOffset int) []byte {
	if len(extra) >= outOffset {
		return extra[:outOffset]
	}
	padded := make([]byte, outOffset)
	copy(padded, extra)
	return padded
}

// Compress transforms a normal ("TD") Teledisk image into advanced ("td")
// form, compressing its payload with the codec selected by the header's
// version byte.
func Compress(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)

	hdr, err := ParseHeader(input)
	if err != nil {
		return nil, 0, 0, err
	}
	if hdr.Advanced {
		return nil, 0, 0, ErrAlreadyInForm
	}

	start := headerLen + opts.InOffset
	if start > len(input) {
		return nil, 0, 0, ErrBadHeader
	}
	payload := input[start:]
	if int64(len(payload)) > opts.MaxExpanded {
		return nil, 0, 0, ErrSizeExceeded
	}

	if truncationLooksPathological(payload) {
		opts.Logger.Warn("td0: input tail looks pathologically uniform; v2.x advanced form has no EOS marker and may round-trip with a spurious trailing byte")
	}

	kind, err := codecFor(hdr.Version)
	if err != nil {
		return nil, 0, 0, err
	}

	var compressed []byte
	switch kind {
	case codecLZW:
		compressed, _, _, err = lzw.Compress(payload, &lzw.Options{AutoClearOnFull: true, MaxExpanded: opts.MaxExpanded})
	case codecLZSSHuff:
		compressed, _, _, err = lzsshuff.Compress(payload, &lzsshuff.Options{Hdr: lzsshuff.None, MaxExpanded: opts.MaxExpanded})
	}
	if err != nil {
		return nil, 0, 0, err
	}

	// Bytes between the 12-byte header and in_offset (e.g. an extended
	// comment block some Teledisk images carry) are not codec input; they
	// pass through unchanged, truncated/padded to out_offset bytes.
	extra := passthroughBytes(input[headerLen:start], opts.OutOffset)

	newHeader := hdr.bytes(true)
	out := make([]byte, 0, headerLen+len(extra)+len(compressed))
	out = append(out, newHeader...)
	out = append(out, extra...)
	out = append(out, compressed...)

	return out, uint64(len(input)), uint64(len(out)), nil
}

// Expand transforms an advanced ("td") Teledisk image back into normal
// ("TD") form.
func Expand(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)

	hdr, err := ParseHeader(input)
	if err != nil {
		return nil, 0, 0, err
	}
	if !hdr.Advanced {
		return nil, 0, 0, ErrAlreadyInForm
	}

	start := headerLen + opts.InOffset
	if start > len(input) {
		return nil, 0, 0, ErrBadHeader
	}
	payload := input[start:]

	kind, err := codecFor(hdr.Version)
	if err != nil {
		return nil, 0, 0, err
	}

	var expanded []byte
	switch kind {
	case codecLZW:
		expanded, _, _, err = lzw.Expand(payload, &lzw.Options{AutoClearOnFull: true, MaxExpanded: opts.MaxExpanded})
	case codecLZSSHuff:
		expanded, _, _, err = lzsshuff.Expand(payload, &lzsshuff.Options{Hdr: lzsshuff.None, MaxExpanded: opts.MaxExpanded})
	}
	if err != nil {
		return nil, 0, 0, err
	}
	if int64(len(expanded)) > opts.MaxExpanded {
		return nil, 0, 0, ErrSizeExceeded
	}

	extra := passthroughBytes(input[headerLen:start], opts.OutOffset)

	newHeader := hdr.bytes(false)
	out := make([]byte, 0, headerLen+len(extra)+len(expanded))
	out = append(out, newHeader...)
	out = append(out, extra...)
	out = append(out, expanded...)

	return out, uint64(len(input)), uint64(len(out)), nil
}
