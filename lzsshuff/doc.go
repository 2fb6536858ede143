// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzsshuff implements the LZSS + adaptive Huffman codec used by the
classic LZHUF program and by Teledisk v2.x "advanced" disk images.

Compress finds literal-or-match symbols over a 4096-byte sliding window
(internal/window), Huffman-codes each symbol with a tree that adapts after
every update (internal/huffman), and Huffman-codes a match's distance as a
fixed 6-bit prefix class plus 6 raw low bits. Expand reverses the process.

	out, inN, outN, err := lzsshuff.Compress(data, lzsshuff.DefaultOptions())
	back, _, _, err := lzsshuff.Expand(out, lzsshuff.DefaultOptions())

Options.Hdr selects whether a 4-byte expanded-size header is emitted/consumed
(Lzhuf) or omitted, relying on input exhaustion to stop decoding (None, used
by Teledisk v2.x payloads once td0 has stripped the 12-byte disk header).
*/
package lzsshuff
