// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzw implements the fixed-code-width LZW variant used by Teledisk
v1.x disk images: 12-bit codes throughout (no GIF-style width escalation),
reserved Clear (256) and Stop (257) codes, and the classic KwKwK decoder
edge case.

	out, inN, outN, err := lzw.Compress(data, lzw.DefaultOptions())
	back, _, _, err := lzw.Expand(out, lzw.DefaultOptions())

This is a different wire format from Go's standard library compress/lzw,
which implements the GIF/TIFF/PDF variable-width variants; neither decodes
the other's output.
*/
package lzw
