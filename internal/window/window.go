// SPDX-License-Identifier: GPL-2.0-only

// Package window implements the LZSS sliding-window dictionary: a ring
// buffer of recent output plus a set of binary search trees (one per
// first-byte value) used to find the longest match for the lookahead at a
// given window position.
//
// The BST layout follows the classic Okumura/LZHUF arrangement: parallel
// int slices (lson, rson, dad) addressed by window position, with one
// synthetic root node per
// possible first byte (positions N+1..N+256 in rson). Insertion performs the
// same tree descent the encoder needs to find the best match, so Insert
// reports the match it found as a side effect — this mirrors the original
// InsertNode, which both inserts the string at pos and updates MatchPos/
// MatchLen, rather than doing two independent tree walks.
package window

// Window is a sliding-window dictionary over a ring buffer of size N with
// lookahead F and a match-length Threshold (the encoder codes matches no
// longer than Threshold as literals).
type Window struct {
	N         uint
	F         uint
	Threshold uint

	buf []byte // ring buffer, size N+F

	lson []int // left children, size N+1
	rson []int // right children, size N+257 (N+1..N+256 are per-first-byte roots)
	dad  []int // parents, size N+1

	// LastMatchPos/LastMatchLen report the result of the most recent Insert.
	LastMatchPos uint
	LastMatchLen uint
}

// New creates a Window of the given size with the ring initialized to fillByte.
func New(n, f, threshold uint, fillByte byte) *Window {
	w := &Window{
		N:         n,
		F:         f,
		Threshold: threshold,
		buf:       make([]byte, n+f),
		lson:      make([]int, n+1),
		rson:      make([]int, n+257),
		dad:       make([]int, n+1),
	}
	for i := range w.buf {
		w.buf[i] = fillByte
	}
	for i := uint(0); i <= n; i++ {
		w.dad[i] = int(n)
	}
	for i := n + 1; i <= n+256; i++ {
		w.rson[i] = int(n)
	}
	return w
}

// nul reports the sentinel "no child/parent" value used throughout the tree
// (position N, which can never be a real window position).
func (w *Window) nul() int {
	return int(w.N)
}

// At returns the byte at ring position pos (mod buffer length is the
// caller's responsibility via Put/ring wraparound semantics — pos must
// already be in [0, len(buf))).
func (w *Window) At(pos uint) byte {
	return w.buf[pos]
}

// Put writes c at ring position pos.
func (w *Window) Put(pos uint, c byte) {
	w.buf[pos] = c
}

// Buf exposes the raw ring buffer for callers that need to read runs of
// bytes directly (e.g. the LZSS decoder copying a match).
func (w *Window) Buf() []byte {
	return w.buf
}

// Insert inserts the string beginning at window position pos (its first F
// bytes, wrapping into the ring as needed by the caller's buffer layout)
// into the BST keyed by first byte. As a side effect it records, in
// LastMatchPos/LastMatchLen, the longest match found along the insertion
// path — this is the match the encoder should consider for position pos.
// LastMatchLen is 0 if no match at least 1 byte long was found.
func (w *Window) Insert(pos uint) {
	key := w.buf[pos:]
	cmp := 1
	p := w.N + 1 + uint(key[0])
	w.rson[pos] = w.nul()
	w.lson[pos] = w.nul()
	matchLen := uint(0)

	for {
		if cmp >= 0 {
			if w.rson[p] != w.nul() {
				p = uint(w.rson[p])
			} else {
				w.rson[p] = int(pos)
				w.dad[pos] = int(p)
				w.LastMatchLen = matchLen
				return
			}
		} else {
			if w.lson[p] != w.nul() {
				p = uint(w.lson[p])
			} else {
				w.lson[p] = int(pos)
				w.dad[pos] = int(p)
				w.LastMatchLen = matchLen
				return
			}
		}

		i := uint(1)
		for ; i < w.F; i++ {
			cmp = int(key[i]) - int(w.buf[p+i])
			if cmp != 0 {
				break
			}
		}

		if i > matchLen {
			w.LastMatchPos = p
			matchLen = i
			if i >= w.F {
				break
			}
		}
	}

	w.LastMatchLen = matchLen

	// p has an identical (or F-byte-prefix-identical) string already in the
	// tree; splice pos into p's place and retire p.
	w.dad[pos] = w.dad[p]
	w.lson[pos] = w.lson[p]
	w.rson[pos] = w.rson[p]
	w.dad[w.lson[p]] = int(pos)
	w.dad[w.rson[p]] = int(pos)
	if w.rson[w.dad[p]] == int(p) {
		w.rson[w.dad[p]] = int(pos)
	} else {
		w.lson[w.dad[p]] = int(pos)
	}
	w.dad[p] = w.nul()
}

// Delete removes the string at window position pos from its BST.
func (w *Window) Delete(pos uint) {
	if w.dad[pos] == w.nul() {
		return // not in the tree (e.g. never inserted, or beyond buffer start)
	}

	var q int
	switch {
	case w.rson[pos] == w.nul():
		q = w.lson[pos]
	case w.lson[pos] == w.nul():
		q = w.rson[pos]
	default:
		q = w.lson[pos]
		if w.rson[q] != w.nul() {
			for w.rson[q] != w.nul() {
				q = w.rson[q]
			}
			w.rson[w.dad[q]] = w.lson[q]
			w.dad[w.lson[q]] = w.dad[q]
			w.lson[q] = w.lson[pos]
			w.dad[w.lson[pos]] = q
		}
		w.rson[q] = w.rson[pos]
		w.dad[w.rson[pos]] = q
	}

	w.dad[q] = w.dad[pos]
	if w.rson[w.dad[pos]] == int(pos) {
		w.rson[w.dad[pos]] = q
	} else {
		w.lson[w.dad[pos]] = q
	}
	w.dad[pos] = w.nul()
}
