// SPDX-License-Identifier: GPL-2.0-only

package lzw

import "errors"

// Sentinel errors for Compress and Expand.
var (
	// ErrInvalidCode is returned when a decoded code exceeds the current
	// dictionary size and is not the KwKwK special case.
	ErrInvalidCode = errors.New("lzw: invalid code")
	// ErrSizeExceeded is returned when input or output would exceed MaxExpanded.
	ErrSizeExceeded = errors.New("lzw: size exceeded")
	// ErrUnexpectedEOF is returned when the stream ends before a Stop code.
	ErrUnexpectedEOF = errors.New("lzw: unexpected end of input")
)
