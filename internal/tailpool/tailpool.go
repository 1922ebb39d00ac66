// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package tailpool implements the write-once suffix pool used by the
// TAIL (MP) compression variant: every unique-suffix chain is pushed
// once during the DFS build, then Build merges suffixes that share a
// common tail and lays them out back to back, reverse-sorted so that
// adjacent entries are candidates for sharing bytes.
//
// Grounded on original_source/tail.hpp's TailConstructor::Construct
// (reverse-lexicographic sort via reverse-iterator comparison, a
// pending-id queue flushed whenever the next suffix stops extending
// the previous one), reworked with sort.Slice and a plain queue slice
// instead of std::queue, in the teacher's small-package style
// (internal/sparse, internal/bitset: one focused type per file, doc
// comments on the exported surface only).
package tailpool

import (
	"bytes"
	"sort"
)

// leafByte is the end-of-key sentinel, also used as the pool's record
// terminator.
const leafByte = 0x00

type entry struct {
	suffix []byte
	id     int32
}

// Pool accumulates suffixes via Push and lays them out via Build. It
// is write-once: Push after Build panics.
type Pool struct {
	entries []entry
	arr     []byte
	index   []int32
	built   bool
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Push records suffix and returns its monotonically increasing 1-based
// id. Push copies suffix, so the caller may reuse it afterwards.
func (p *Pool) Push(suffix []byte) int32 {
	if p.built {
		panic("tailpool: Push called after Build")
	}
	id := int32(len(p.entries)) + 1
	cp := make([]byte, len(suffix))
	copy(cp, suffix)
	p.entries = append(p.entries, entry{suffix: cp, id: id})
	return id
}

// Build sorts the pushed suffixes by the reverse of their bytes,
// merges consecutive suffixes where one is a tail-extension of the
// previous, and emits the packed pool array. Build is idempotent.
func (p *Pool) Build() {
	if p.built {
		return
	}
	p.built = true

	p.index = make([]int32, len(p.entries)+1)
	if len(p.entries) == 0 {
		return
	}

	sort.Slice(p.entries, func(i, j int) bool {
		return reverseLess(p.entries[i].suffix, p.entries[j].suffix)
	})

	p.arr = make([]byte, 0, len(p.entries)*4)
	p.arr = append(p.arr, leafByte) // leading sentinel, per spec

	type pending struct {
		id     int32
		length int
	}
	var queue []pending

	flush := func(last []byte) {
		p.arr = append(p.arr, last...)
		p.arr = append(p.arr, leafByte)
		for _, pd := range queue {
			p.index[pd.id] = int32(len(p.arr) - 1 - pd.length)
		}
		queue = queue[:0]
	}

	prev := p.entries[0].suffix
	queue = append(queue, pending{id: p.entries[0].id, length: len(prev)})

	for _, e := range p.entries[1:] {
		// e.suffix is a tail-extension of prev iff prev is no longer
		// than e.suffix and prev's bytes are exactly e.suffix's tail.
		mergeable := len(prev) <= len(e.suffix) && bytes.HasSuffix(e.suffix, prev)
		if !mergeable {
			flush(prev)
		}
		prev = e.suffix
		queue = append(queue, pending{id: e.id, length: len(prev)})
	}
	flush(prev)
}

// Offset returns the pool offset assigned to id by the last Build.
func (p *Pool) Offset(id int32) int32 {
	return p.index[id]
}

// Len returns the total size of the packed pool array.
func (p *Pool) Len() int {
	return len(p.arr)
}

// MatchSuffix reports whether key matches the suffix recorded at
// offset: every byte of key matches the pool bytes starting at offset,
// and the following pool byte is the leaf terminator.
func (p *Pool) MatchSuffix(offset int32, key []byte) bool {
	i := int(offset)
	for _, b := range key {
		if i >= len(p.arr) || p.arr[i] != b {
			return false
		}
		i++
	}
	return i < len(p.arr) && p.arr[i] == leafByte
}

// reverseLess orders a before b by comparing their bytes from the end,
// i.e. lexicographic order on the reversed byte strings.
func reverseLess(a, b []byte) bool {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	for i := 1; i <= n; i++ {
		ca, cb := a[la-i], b[lb-i]
		if ca != cb {
			return ca < cb
		}
	}
	return la < lb
}
