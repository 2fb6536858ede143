// SPDX-License-Identifier: GPL-2.0-only

package td0

import "go.uber.org/zap"

// Options configures Compress/Expand.
type Options struct {
	// InOffset is additional bytes to skip at the start of input, beyond
	// the fixed 12-byte Teledisk header that td0 always strips itself.
	InOffset int
	// OutOffset is additional bytes to copy verbatim ahead of output,
	// beyond the re-signed 12-byte header td0 always re-emits itself.
	OutOffset int
	// MaxExpanded caps the payload size on both directions. Zero means
	// DefaultOptions' 3 MiB cap.
	MaxExpanded int64
	// Logger receives non-fatal warnings (the v2.x truncation heuristic).
	// Nil defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a 3 MiB cap and a no-op logger.
func DefaultOptions() *Options {
	return &Options{MaxExpanded: 3 << 20, Logger: zap.NewNop()}
}

func resolveOptions(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	resolved := *o
	if resolved.MaxExpanded <= 0 {
		resolved.MaxExpanded = 3 << 20
	}
	if resolved.Logger == nil {
		resolved.Logger = zap.NewNop()
	}
	return &resolved
}
