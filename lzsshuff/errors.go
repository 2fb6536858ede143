// SPDX-License-Identifier: GPL-2.0-only

package lzsshuff

import "errors"

// Sentinel errors for Compress and Expand.
var (
	// ErrInvalidData is returned when the decoder reads a symbol or distance
	// code outside the valid range for the configured options.
	ErrInvalidData = errors.New("lzsshuff: invalid data")
	// ErrSizeExceeded is returned when output would exceed MaxExpanded.
	ErrSizeExceeded = errors.New("lzsshuff: size exceeded")
	// ErrUnexpectedEOF is returned when the input ends mid-symbol where a
	// complete symbol was required (Lzhuf header mode only; None mode has no
	// way to distinguish a short stream from legacy trailing-byte garbage).
	ErrUnexpectedEOF = errors.New("lzsshuff: unexpected end of input")
)
