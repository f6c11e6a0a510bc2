package suffixtree

// arena is an append-only, index-addressed store of inner nodes. Indices are
// stable for the lifetime of the tree; nothing is ever removed or reordered.
type arena struct {
	nodes []Node
}

// alloc appends n and returns its index.
func (a *arena) alloc(n Node) uint32 {
	idx := uint32(len(a.nodes))
	if idx > MaxNodeIndex {
		panic("suffixtree: arena overflow")
	}
	a.nodes = append(a.nodes, n)
	return idx
}

// at returns the node at idx. The pointer is valid until the next alloc.
func (a *arena) at(idx uint32) *Node {
	return &a.nodes[idx]
}

func (a *arena) len() int {
	return len(a.nodes)
}
