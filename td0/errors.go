// SPDX-License-Identifier: GPL-2.0-only

package td0

import "errors"

// Sentinel errors for Compress and Expand.
var (
	// ErrBadHeader is returned when the 12-byte header is short, its
	// signature is unrecognized, its CRC doesn't match, or its version byte
	// doesn't map to a known codec.
	ErrBadHeader = errors.New("td0: bad header")
	// ErrAlreadyInForm is a non-fatal notice: the image's signature already
	// matches the requested direction (e.g. Expand called on a normal
	// image). Callers decide whether to treat it as failure.
	ErrAlreadyInForm = errors.New("td0: image already in requested form")
	// ErrSizeExceeded is returned when input or output would exceed MaxExpanded.
	ErrSizeExceeded = errors.New("td0: size exceeded")
)
