package suffixtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the finished tree for debugging. Implicit leaves are resolved
// here, at read time: a leaf prints the payload from its offset to the end.
// Children appear in ascending byte order. Recursion depth is bounded by the
// longest suffix, i.e. the payload length.
func (t *Tree) Dump() string {
	tp := treeprint.New()
	tp.SetValue("(root)")
	t.dump(t.Root(), tp)
	return tp.String()
}

func (t *Tree) dump(ref Ref, branch treeprint.Tree) {
	t.VisitChildren(ref, func(_ byte, child Ref) bool {
		if child.IsLeaf() {
			branch.AddNode(fmt.Sprintf("%q (leaf)", t.Label(child)))
			return true
		}
		idx := child.Index()
		sub := branch.AddBranch(fmt.Sprintf(
			"%q (inner %d, suffix=%d)",
			t.Label(child), idx, t.arena.at(idx).suffix.Index(),
		))
		t.dump(child, sub)
		return true
	})
}
