package suffixtree

import (
	"github.com/hideo55/go-popcount"
)

// Node is an inner node of the tree. Leaves are implicit and never allocated.
type Node struct {
	// begin, end - the half-open payload range labeling the incoming edge.
	begin uint32
	end   uint32
	// suffix links to the inner node spelling this node's string minus its
	// first character. The top sentinel's slot doubles as the per-phase
	// scratch target and is never read.
	suffix   Ref
	children childSet
}

// childSet maps byte values to child Refs: a 256-bit bitmap plus a
// rank-ordered slice holding only the occupied slots.
type childSet struct {
	bitmap [4]uint64 // 256 bits representing 2**8 entries
	refs   []Ref     // one Ref per set bit, in ascending byte order
}

// rank counts the occupied slots below byte value c.
func (cs *childSet) rank(c byte) uint64 {
	ofs := c >> 6
	idx := c & 0x3F // the lowest 6 bits (2**6 == 64)
	cnt := popcount.Count(cs.bitmap[ofs] & ((1 << idx) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(cs.bitmap[j])
	}
	return cnt
}

func (cs *childSet) has(c byte) bool {
	return (cs.bitmap[c>>6]>>(c&0x3F))&0x01 != 0
}

// get returns the child keyed by c, or NoRef.
func (cs *childSet) get(c byte) Ref {
	if !cs.has(c) {
		return NoRef
	}
	return cs.refs[cs.rank(c)]
}

// set inserts or replaces the child keyed by c.
func (cs *childSet) set(c byte, r Ref) {
	cnt := cs.rank(c)
	if cs.has(c) {
		cs.refs[cnt] = r
		return
	}
	cs.bitmap[c>>6] |= 1 << (c & 0x3F)
	cs.refs = append(cs.refs, NoRef)
	copy(cs.refs[cnt+1:], cs.refs[cnt:])
	cs.refs[cnt] = r
}

// fill points every slot at r. Only the top sentinel needs this.
func (cs *childSet) fill(r Ref) {
	for i := range cs.bitmap {
		cs.bitmap[i] = ^uint64(0)
	}
	cs.refs = make([]Ref, 256)
	for i := range cs.refs {
		cs.refs[i] = r
	}
}

// each visits the occupied slots in ascending byte order until fn returns
// false.
func (cs *childSet) each(fn func(c byte, child Ref) bool) {
	cnt := 0
	for c := 0; c < 256; c++ {
		if !cs.has(byte(c)) {
			continue
		}
		if !fn(byte(c), cs.refs[cnt]) {
			return
		}
		cnt++
	}
}

func (cs *childSet) count() int {
	return len(cs.refs)
}
