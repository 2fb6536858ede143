// SPDX-License-Identifier: GPL-2.0-only

package huffman

import "github.com/dfgordon/retrocompressor/internal/bitio"

// The LZSS+Huffman wire format encodes a match distance as a 6-bit
// "upper class" (the top 6 bits of the 12-bit distance, i.e. distance>>6)
// through a fixed prefix code of length 3..7, followed by the low 6 bits of
// distance raw. This file builds that fixed code: pLen/pCode are the
// per-class (length, code) pairs; dCode/dLen are the inverse tables mapping
// the next 8 bits of input straight to (class, bits consumed) the way the
// historical LZHUF d_code/d_len lookup tables do, avoiding a bit-by-bit
// tree walk on decode.
//
// distClassLengths assigns a length to each of the 64 classes: shorter
// distances (smaller class index) get shorter codes, the usual Huffman
// locality-of-reference win for LZ matches. The run lengths below were
// chosen to satisfy the Kraft equality exactly (1*2^-3 + 2*2^-4 + 4*2^-5 +
// 23*2^-6 + 34*2^-7 == 1), which is what makes the table a valid complete
// prefix code; the per-class codes are then assigned canonically (RFC 1951
// style: process lengths ascending, codes sequential within a length).
var distClassLengths = []struct {
	length byte
	count  int
}{
	{3, 1},
	{4, 2},
	{5, 4},
	{6, 23},
	{7, 34},
}

const maxPrefixBits = 8

var (
	pLen  [64]byte
	pCode [64]uint16
	dCode [256]byte
	dLen  [256]byte
)

func init() {
	idx := 0
	for _, c := range distClassLengths {
		for n := 0; n < c.count; n++ {
			pLen[idx] = c.length
			idx++
		}
	}
	if idx != 64 {
		panic("huffman: distance class length table does not cover all 64 classes")
	}

	var countByLen [maxPrefixBits + 1]int
	for _, l := range pLen {
		countByLen[l]++
	}
	var nextCode [maxPrefixBits + 1]uint16
	var code uint16
	for bits := 1; bits <= maxPrefixBits; bits++ {
		code = (code + uint16(countByLen[bits-1])) << 1
		nextCode[bits] = code
	}
	for i, l := range pLen {
		pCode[i] = nextCode[l]
		nextCode[l]++
	}

	for b := 0; b < 256; b++ {
		for class, l := range pLen {
			shift := uint(maxPrefixBits) - uint(l)
			if byte(uint(b)>>shift) == byte(pCode[class]) {
				dCode[b] = byte(class)
				dLen[b] = l
				break
			}
		}
	}
}

// EncodeDistanceClass writes the fixed prefix code for upper-distance class
// (0..63) to w.
func EncodeDistanceClass(w *bitio.Writer, class int) {
	w.PutBits(uint(pLen[class]), uint(pCode[class]))
}

// DecodeDistanceClass reads one fixed-prefix distance class from r.
func DecodeDistanceClass(r *bitio.Reader) int {
	peek := byte(r.Peek(uint(maxPrefixBits)))
	class := dCode[peek]
	r.GetBits(uint(dLen[peek]))
	return int(class)
}
