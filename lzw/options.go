// SPDX-License-Identifier: GPL-2.0-only

package lzw

// Options configures Compress/Expand. Code width is fixed at 12 bits;
// this is not a GIF/PDF-style variable-width codec.
type Options struct {
	// AutoClearOnFull, when true, re-emits Clear and resets the dictionary
	// the moment the table saturates (the Teledisk v1.x flavor). When
	// false, the table freezes at capacity and further codes are emitted
	// against the frozen dictionary until the caller's own stream inserts a
	// Clear code.
	AutoClearOnFull bool
	// MaxExpanded caps both input size (Compress) and output size (Expand).
	// Zero means DefaultOptions' 1 GiB cap.
	MaxExpanded int64
}

// DefaultOptions returns Options matching the Teledisk v1.x flavor:
// AutoClearOnFull true, 1 GiB size cap.
func DefaultOptions() *Options {
	return &Options{AutoClearOnFull: true, MaxExpanded: 1 << 30}
}

func resolveOptions(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	resolved := *o
	if resolved.MaxExpanded <= 0 {
		resolved.MaxExpanded = 1 << 30
	}
	return &resolved
}
