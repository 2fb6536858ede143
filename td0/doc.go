// SPDX-License-Identifier: GPL-2.0-only

/*
Package td0 implements the Teledisk (TD0) image transformer: it parses and
re-signs the 12-byte Teledisk header, dispatches the payload to the lzw or
lzsshuff codec based on the header's version byte, and maintains the
header's CRC.

	out, inN, outN, err := td0.Compress(normalImage, td0.DefaultOptions())
	back, _, _, err := td0.Expand(advancedImage, td0.DefaultOptions())

Compress expects a "TD" (normal) image and produces a "td" (advanced,
compressed) one; Expand is the inverse. Calling either on an image already
in the requested form returns ErrAlreadyInForm, a non-fatal notice the
caller may choose to ignore.
*/
package td0
