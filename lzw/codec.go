// SPDX-License-Identifier: GPL-2.0-only

package lzw

import "github.com/dfgordon/retrocompressor/internal/bitio"

const (
	codeWidth = 12
	tableSize = 1 << codeWidth // 4096
	clearCode = 256
	stopCode  = 257
	firstCode = 258
)

type dictKey struct {
	prefix int
	suffix byte
}

// Compress encodes input with fixed-width LZW, returning the encoded bytes
// and the input/output byte counts.
func Compress(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)
	if int64(len(input)) > opts.MaxExpanded {
		return nil, 0, 0, ErrSizeExceeded
	}

	bw := bitio.NewWriter()
	writeCode := func(c int) { bw.PutBits(codeWidth, uint(c)) }

	dict := make(map[dictKey]int)
	nextCode := firstCode

	writeCode(clearCode)

	if len(input) > 0 {
		cur := int(input[0])
		for i := 1; i < len(input); i++ {
			c := input[i]
			k := dictKey{cur, c}
			if code, ok := dict[k]; ok {
				cur = code
				continue
			}

			writeCode(cur)
			if nextCode < tableSize {
				dict[k] = nextCode
				nextCode++
			}
			if nextCode >= tableSize && opts.AutoClearOnFull {
				writeCode(clearCode)
				dict = make(map[dictKey]int)
				nextCode = firstCode
			}
			cur = int(c)
		}
		writeCode(cur)
	}

	writeCode(stopCode)
	out := bw.Flush()
	return out, uint64(len(input)), uint64(len(out)), nil
}

type tableEntry struct {
	prefix int
	suffix byte
}

// Expand decodes a stream produced by Compress.
func Expand(input []byte, opts *Options) ([]byte, uint64, uint64, error) {
	opts = resolveOptions(opts)
	r := bitio.NewReader(input)

	var table [tableSize]tableEntry
	resetTable := func() {
		for i := 0; i < 256; i++ {
			table[i] = tableEntry{prefix: -1, suffix: byte(i)}
		}
	}
	resetTable()
	nextCode := firstCode

	var scratch []byte
	getString := func(code int) []byte {
		scratch = scratch[:0]
		for code >= 0 {
			e := table[code]
			scratch = append(scratch, e.suffix)
			code = e.prefix
		}
		for i, j := 0, len(scratch)-1; i < j; i, j = i+1, j-1 {
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}
		return scratch
	}

	var out []byte
	appendBytes := func(s []byte) error {
		if int64(len(out)+len(s)) > opts.MaxExpanded {
			return ErrSizeExceeded
		}
		out = append(out, s...)
		return nil
	}

	prevCode := -1
	stopped := false

	for !r.Exhausted() {
		code := int(r.GetBits(codeWidth))

		if code == stopCode {
			stopped = true
			break
		}
		if code == clearCode {
			resetTable()
			nextCode = firstCode
			prevCode = -1
			continue
		}

		if prevCode == -1 {
			if code > 255 {
				return nil, 0, 0, ErrInvalidCode
			}
			if err := appendBytes([]byte{byte(code)}); err != nil {
				return nil, 0, 0, err
			}
			prevCode = code
			continue
		}

		var s []byte
		switch {
		case code < nextCode:
			s = append([]byte(nil), getString(code)...)
		case code == nextCode:
			prev := getString(prevCode)
			s = append(append([]byte(nil), prev...), prev[0])
		default:
			return nil, 0, 0, ErrInvalidCode
		}

		if err := appendBytes(s); err != nil {
			return nil, 0, 0, err
		}

		if nextCode < tableSize {
			table[nextCode] = tableEntry{prefix: prevCode, suffix: s[0]}
			nextCode++
		}
		prevCode = code
	}

	if !stopped {
		return nil, 0, 0, ErrUnexpectedEOF
	}

	return out, uint64(r.BytesConsumed()), uint64(len(out)), nil
}
