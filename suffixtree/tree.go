package suffixtree

import "errors"

// ErrPayloadTooLarge is returned by Build when the payload cannot be
// addressed by the Ref encoding.
var ErrPayloadTooLarge = errors.New("suffixtree: payload exceeds MaxPayloadLen")

// MaxPayloadLen bounds the payload so that every leaf offset and every arena
// index (at most two sentinels plus one inner node per character) stays
// within the 31-bit Ref value range.
const MaxPayloadLen = 1 << 30

// Sentinel arena indices.
const (
	top  = 0 // parent-of-root; every child slot resolves to the root
	root = 1 // spells the empty string
)

// Tree is a suffix tree over a borrowed byte payload. The payload must stay
// alive and unmodified for as long as the tree is in use. A finished Tree is
// immutable and safe for concurrent readers.
type Tree struct {
	payload []byte
	arena   arena
}

// Build constructs the suffix tree of payload in amortized linear time.
//
// For every suffix to surface as a distinct leaf the payload should end with
// a byte that occurs nowhere else in it; Build does not enforce this.
func Build(payload []byte) (*Tree, error) {
	if err := checkCapacity(len(payload)); err != nil {
		return nil, err
	}

	t := &Tree{payload: payload}

	// Top is node 0: every child slot resolves to the root so that a suffix
	// link followed off the root needs no special case. Root is node 1; its
	// incoming range has length one so a top-to-root descent consumes exactly
	// one character.
	topNode := Node{suffix: innerRef(top)}
	topNode.children.fill(innerRef(root))
	t.arena.alloc(topNode)
	t.arena.alloc(Node{begin: 0, end: 1, suffix: innerRef(top)})

	cur := cursor{node: root, pos: 0}
	for i := uint32(0); i < uint32(len(payload)); i++ {
		cur = t.extend(cur, i)
	}

	return t, nil
}

func checkCapacity(n int) error {
	if n > MaxPayloadLen {
		return ErrPayloadTooLarge
	}
	return nil
}

// Root returns the reference of the root node.
func (t *Tree) Root() Ref {
	return innerRef(root)
}

// Len returns the number of allocated inner nodes, sentinels included.
func (t *Tree) Len() int {
	return t.arena.len()
}

// Payload returns the borrowed payload buffer.
func (t *Tree) Payload() []byte {
	return t.payload
}

// LabelRange returns the half-open payload range labeling ref's incoming
// edge. A leaf's range runs from its offset to the end of the payload.
func (t *Tree) LabelRange(ref Ref) (begin, end uint32) {
	if ref.IsLeaf() {
		return ref.Offset(), uint32(len(t.payload))
	}
	n := t.arena.at(ref.Index())
	return n.begin, n.end
}

// Label returns the payload bytes labeling ref's incoming edge. The
// sentinels' ranges are synthetic placeholders, so Label is meaningful only
// for leaves and real inner nodes.
func (t *Tree) Label(ref Ref) []byte {
	begin, end := t.LabelRange(ref)
	return t.payload[begin:end]
}

// SuffixLink returns the suffix link of an inner node. The link of every
// inner node except the sentinels resolves to another inner node; the root's
// link exists only to make suffix walks uniform and leads to the top
// sentinel.
func (t *Tree) SuffixLink(ref Ref) Ref {
	if !ref.IsInner() {
		panic("suffixtree: SuffixLink called on a non-inner reference")
	}
	return t.arena.at(ref.Index()).suffix
}

// VisitChildren calls fn for each child of an inner node in ascending byte
// order, stopping early when fn returns false.
func (t *Tree) VisitChildren(ref Ref, fn func(c byte, child Ref) bool) {
	if !ref.IsInner() {
		panic("suffixtree: VisitChildren called on a non-inner reference")
	}
	t.arena.at(ref.Index()).children.each(fn)
}

// NumChildren returns the number of children of an inner node.
func (t *Tree) NumChildren(ref Ref) int {
	if !ref.IsInner() {
		panic("suffixtree: NumChildren called on a non-inner reference")
	}
	return t.arena.at(ref.Index()).children.count()
}
