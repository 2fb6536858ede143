// SPDX-License-Identifier: GPL-2.0-only

package lzsshuff

// Header selects whether Compress emits (and Expand consumes) the LZHUF
// 4-byte little-endian expanded-size prefix.
type Header int

const (
	// Lzhuf emits/consumes the 4-byte expanded-size prefix and relies on the
	// end-of-stream symbol to terminate Expand.
	Lzhuf Header = iota
	// None omits the prefix; Expand runs until input exhaustion, matching
	// Teledisk v2.x advanced images, which carry no EOS symbol.
	None
)

// Options configures Compress/Expand. Window size, lookahead, and match
// threshold are fixed at their LZHUF-compatible values and are not
// configurable — varying them would desync against any other
// implementation of this wire format.
type Options struct {
	// Hdr selects the header policy (default Lzhuf).
	Hdr Header
	// MaxExpanded caps both input size (Compress) and output size (Expand).
	// Zero means DefaultOptions' 1 GiB cap.
	MaxExpanded int64
}

// DefaultOptions returns Options with Hdr: Lzhuf and a 1 GiB size cap.
func DefaultOptions() *Options {
	return &Options{Hdr: Lzhuf, MaxExpanded: 1 << 30}
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
