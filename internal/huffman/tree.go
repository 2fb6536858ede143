// SPDX-License-Identifier: GPL-2.0-only

// Package huffman implements the adaptive Huffman tree used by the
// LZSS+Huffman codec, plus the fixed distance-prefix tables from the LZHUF
// wire format.
//
// The tree follows Okumura's LZHUF arrangement: symbols 0..nChar-1 start as
// "leaf slots", internal nodes occupy nChar..t-1, node t is a frequency
// sentinel (kept at maxFreq so it never looks like a legitimate sibling),
// and node r = t-1 is the root. A symbol's current tree position is tracked
// through a reverse-lookup slice (leafNode) instead of pointers, using
// Okumura's parallel-array style for indexed tree/graph structures instead
// of a pointer-based tree.
package huffman

import "github.com/dfgordon/retrocompressor/internal/bitio"

// maxFreq is the frequency ceiling that triggers a rescale.
const maxFreq = 1 << 15

// Tree is an adaptive Huffman tree over nChar symbols (0..nChar-1).
type Tree struct {
	nChar int
	t     int // total node count (nChar leaves + nChar-1 internal)
	root  int // t - 1

	freq   []uint32 // size t+1; freq[t] is the sentinel, always maxFreq
	parent []int    // size t+nChar; parent[i] for i<t is i's parent; parent[t+c] is leaf node of symbol c
	son    []int    // size t; son[i] is i's left child for internal i, or t+c for leaf i representing symbol c
}

// New builds a fresh adaptive Huffman tree over nChar symbols, each starting
// at frequency 1 (StartHuff in the original LZHUF).
func New(nChar int) *Tree {
	t := nChar*2 - 1
	tr := &Tree{
		nChar:  nChar,
		t:      t,
		root:   t - 1,
		freq:   make([]uint32, t+1),
		parent: make([]int, t+nChar),
		son:    make([]int, t),
	}

	for i := 0; i < nChar; i++ {
		tr.freq[i] = 1
		tr.son[i] = i + t
		tr.parent[i+t] = i
	}

	i, j := 0, nChar
	for j <= tr.root {
		tr.freq[j] = tr.freq[i] + tr.freq[i+1]
		tr.son[j] = i
		tr.parent[i] = j
		tr.parent[i+1] = j
		i += 2
		j++
	}
	tr.freq[t] = maxFreq
	tr.parent[tr.root] = 0

	return tr
}

// leafNode returns symbol c's current node index in the tree.
func (tr *Tree) leafNode(c int) int {
	return tr.parent[tr.t+c]
}

// Encode writes the current code for symbol c to w, then updates the tree.
func (tr *Tree) Encode(w *bitio.Writer, c int) {
	// Walk leaf to root collecting bits, then emit root to leaf (MSB first):
	// each step up, a node that is its parent's right child (odd son index
	// relative to son[parent]) contributes a 1 bit, the left child a 0 bit.
	var bits []uint
	i := tr.leafNode(c)
	for i != tr.root {
		p := tr.parent[i]
		if tr.son[p] == i {
			bits = append(bits, 0)
		} else {
			bits = append(bits, 1)
		}
		i = p
	}
	for k := len(bits) - 1; k >= 0; k-- {
		w.PutBit(bits[k])
	}

	tr.update(c)
}

// Decode reads one symbol from r by walking the tree root to leaf, then
// updates the tree.
func (tr *Tree) Decode(r *bitio.Reader) int {
	node := tr.son[tr.root]
	for node < tr.t {
		node += int(r.GetBit())
		node = tr.son[node]
	}
	c := node - tr.t
	tr.update(c)
	return c
}

// update increments symbol c's frequency and restores the sibling property
// on the path from its leaf to the root, rescaling first if the root would
// overflow.
func (tr *Tree) update(c int) {
	if tr.freq[tr.root] == maxFreq {
		tr.reconstruct()
	}

	node := tr.leafNode(c)
	for {
		k := tr.freq[node] + 1
		tr.freq[node] = k

		// Sibling property: node and node+1 (in sort order) must stay a
		// matched pair with non-decreasing frequency after node+1. If
		// incrementing broke that, swap node with the furthest node whose
		// frequency is still below k.
		if k > tr.freq[node+1] {
			l := node + 1
			for k > tr.freq[l+1] {
				l++
			}
			tr.freq[node] = tr.freq[l]
			tr.freq[l] = k

			tr.swapSubtrees(node, l)
			node = l
		}

		node = tr.parent[node]
		if node == 0 {
			break
		}
	}
}

// swapSubtrees exchanges the subtrees rooted at node a and node l (l is the
// node a is being relocated to), fixing up son/parent for both.
func (tr *Tree) swapSubtrees(a, l int) {
	i := tr.son[a]
	tr.parent[i] = l
	if i < tr.t {
		tr.parent[i+1] = l
	}

	j := tr.son[l]
	tr.son[l] = i

	tr.parent[j] = a
	if j < tr.t {
		tr.parent[j+1] = a
	}
	tr.son[a] = j
}

// reconstruct halves every frequency (rounded up) and rebuilds the tree
// bottom-up, preserving relative order — the mandatory rescale when a
// frequency would saturate maxFreq.
func (tr *Tree) reconstruct() {
	// Collect leaves into the front of freq/son, halving their frequency.
	j := 0
	for i := 0; i < tr.t; i++ {
		if tr.son[i] >= tr.t {
			tr.freq[j] = (tr.freq[i] + 1) / 2
			tr.son[j] = tr.son[i]
			j++
		}
	}

	// Rebuild internal nodes by pairing adjacent entries and inserting each
	// new parent in frequency order among the nodes built so far.
	i := 0
	for j := tr.nChar; j <= tr.root; j++ {
		k := i + 1
		f := tr.freq[i] + tr.freq[k]
		tr.freq[j] = f

		pos := j - 1
		for pos >= 0 && f < tr.freq[pos] {
			pos--
		}
		pos++

		copy(tr.freq[pos+1:j+1], tr.freq[pos:j])
		tr.freq[pos] = f
		copy(tr.son[pos+1:j+1], tr.son[pos:j])
		tr.son[pos] = i

		i += 2
	}

	// Rebuild parent pointers from the freshly rebuilt son array.
	for i := 0; i < tr.t; i++ {
		k := tr.son[i]
		if k >= tr.t {
			tr.parent[k] = i
		} else {
			tr.parent[k] = i
			tr.parent[k+1] = i
		}
	}
}

// Freq returns node i's current frequency (for tests asserting invariants).
func (tr *Tree) Freq(i int) uint32 {
	return tr.freq[i]
}

// Root returns the root node index.
func (tr *Tree) Root() int {
	return tr.root
}

// Son returns node i's left child (i's right child is Son(i)+1).
func (tr *Tree) Son(i int) int {
	return tr.son[i]
}

// NChar returns the number of distinct symbols the tree encodes.
func (tr *Tree) NChar() int {
	return tr.nChar
}
