// SPDX-License-Identifier: GPL-2.0-only

package lzsshuff

import (
	"encoding/binary"

	"github.com/dfgordon/retrocompressor/internal/bitio"
	"github.com/dfgordon/retrocompressor/internal/huffman"
	"github.com/dfgordon/retrocompressor/internal/window"
)

// Fixed LZHUF-compatible parameters; not configurable.
const (
	windowBits = 12
	windowN    = 1 << windowBits // 4096
	lookaheadF = 60
	threshold  = 2

	// nChar is the adaptive Huffman alphabet size: 256 literals, F-threshold
	// match-length symbols, and one EOS leaf (used only in Lzhuf mode; in
	// None mode the leaf exists but is never emitted).
	nChar     = 256 + lookaheadF - threshold + 1 // 315
	eosSymbol = 256 + lookaheadF - threshold     // 314

	headerLen = 4
)

// symbolToLength converts a match symbol (256..eosSymbol-1, or eosSymbol
// itself) to the match length it would represent were it a real match. The
// classic LZHUF formula is length = symbol - 256 + threshold + 1; applying
// it to eosSymbol yields lookaheadF+1, one past the maximum real match
// length, which is what lets decode reject a stray EOS symbol in None mode
// as InvalidData via the ordinary length bound check instead of needing a
// separate case.
func symbolToLength(symbol int) int {
	return symbol - 256 + threshold + 1
}

func lengthToSymbol(length int) int {
	return length - threshold - 1 + 256
}

// Compress encodes input with the LZSS+adaptive-Huffman codec. It returns
// the encoded bytes along with the number of input and output bytes.
func Compress(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)
	if int64(len(input)) > opts.MaxExpanded {
		return nil, 0, 0, ErrSizeExceeded
	}

	var header []byte
	if opts.Hdr == Lzhuf {
		header = make([]byte, headerLen)
		binary.LittleEndian.PutUint32(header, uint32(len(input)))
	}

	bw := bitio.NewWriter()
	tr := huffman.New(nChar)

	if len(input) > 0 {
		w := window.New(windowN, lookaheadF, threshold, 0x20)

		r := uint(windowN - lookaheadF)
		length := uint(0)
		srcPos := 0
		for length < lookaheadF && srcPos < len(input) {
			w.Put(r+length, input[srcPos])
			srcPos++
			length++
		}

		for i := uint(1); i <= lookaheadF; i++ {
			w.Insert(r - i)
		}
		w.Insert(r)

		s := uint(0)
		for length > 0 {
			matchLen := w.LastMatchLen
			matchPos := w.LastMatchPos
			if matchLen > length {
				matchLen = length
			}

			if matchLen <= threshold {
				matchLen = 1
				tr.Encode(bw, int(w.At(r)))
			} else {
				dist := (r - matchPos - 1) & (windowN - 1)
				tr.Encode(bw, lengthToSymbol(int(matchLen)))
				huffman.EncodeDistanceClass(bw, int(dist>>6))
				bw.PutBits(6, uint(dist&0x3f))
			}

			lastMatchLen := matchLen
			var i uint
			for ; i < lastMatchLen && srcPos < len(input); i++ {
				c := input[srcPos]
				srcPos++
				w.Delete(s)
				w.Put(s, c)
				if s < lookaheadF-1 {
					w.Put(s+windowN, c)
				}
				s = (s + 1) % windowN
				r = (r + 1) % windowN
				w.Insert(r)
			}
			for ; i < lastMatchLen; i++ {
				w.Delete(s)
				s = (s + 1) % windowN
				r = (r + 1) % windowN
				length--
				if length > 0 {
					w.Insert(r)
				}
			}
		}
	}

	if opts.Hdr == Lzhuf {
		tr.Encode(bw, eosSymbol)
	}

	payload := bw.Flush()
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)

	return out, uint64(len(input)), uint64(len(out)), nil
}

// Expand decodes a stream produced by Compress with matching Options.
func Expand(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)

	body := input
	if opts.Hdr == Lzhuf {
		if len(input) < headerLen {
			return nil, 0, 0, ErrUnexpectedEOF
		}
		body = input[headerLen:]
	}

	// The extra zero byte reads like the past-end fill but counts in BytesConsumed.
	r := bitio.NewReader(append(body[:len(body):len(body)], 0))
	tr := huffman.New(nChar)
	w := window.New(windowN, lookaheadF, threshold, 0x20)

	var out []byte
	writePos := uint(0)

	appendByte := func(c byte) error {
		if int64(len(out)+1) > opts.MaxExpanded {
			return ErrSizeExceeded
		}
		out = append(out, c)
		w.Put(writePos, c)
		writePos = (writePos + 1) % windowN
		return nil
	}

decodeLoop:
	for !r.Exhausted() {
		symbol := tr.Decode(r)

		switch {
		case symbol < 256:
			if err := appendByte(byte(symbol)); err != nil {
				return nil, 0, 0, err
			}

		case opts.Hdr == Lzhuf && symbol == eosSymbol:
			break decodeLoop

		default:
			length := symbolToLength(symbol)
			if length <= threshold || length > lookaheadF {
				return nil, 0, 0, ErrInvalidData
			}
			class := huffman.DecodeDistanceClass(r)
			low := r.GetBits(6)
			if r.BytesConsumed() > len(body) {
				break decodeLoop
			}
			dist := uint(class<<6) | low
			matchStart := (writePos - dist - 1) & (windowN - 1)

			for k := uint(0); k < uint(length); k++ {
				c := w.At((matchStart + k) % windowN)
				if err := appendByte(c); err != nil {
					return nil, 0, 0, err
				}
			}
		}
	}

	if r.BytesConsumed() > len(body) && opts.Hdr == Lzhuf {
		return nil, 0, 0, ErrUnexpectedEOF
	}

	return out, uint64(min(r.BytesConsumed(), len(body)) + len(input) - len(body)), uint64(len(out)), nil
}
