package suffixtree

// cursor is the active point: node is the last explicitly reached inner node,
// pos an absolute payload offset such that payload[pos:newEnd] is the tail
// still to be matched below node. pos only ever grows across a build, which
// bounds total canonicalization work by the payload length.
type cursor struct {
	node uint32
	pos  uint32
}

// canonicalize descends from cur.node while whole edges fit into the
// remaining span [cur.pos, newEnd). It stops at a leaf edge (implicit leaves
// absorb the rest of the payload), at an absent child (a mismatch the
// extension step will deal with), or when the match ends inside an edge.
func (t *Tree) canonicalize(cur cursor, newEnd uint32) cursor {
	for cur.pos < newEnd {
		child := t.arena.at(cur.node).children.get(t.payload[cur.pos])
		if !child.IsInner() {
			break
		}
		idx := child.Index()
		n := t.arena.at(idx)
		length := n.end - n.begin
		if length > newEnd-cur.pos {
			break
		}
		cur.node = idx
		cur.pos += length
	}
	return cur
}
