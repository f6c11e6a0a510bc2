package suffixtree

// extend runs one phase of Ukkonen's construction: it inserts every suffix
// still pending once the character at newEnd has been appended, and returns
// the cursor to carry into the next phase.
//
// Each round canonicalizes the active point, checks whether the new character
// is already implicitly present (rule 3, which ends the phase), otherwise
// attaches a new implicit leaf - splitting the current edge first when the
// active point sits mid-edge - then chains the suffix link of the previous
// insertion point and hops to the next shorter suffix via cur.node's link.
func (t *Tree) extend(cur cursor, newEnd uint32) cursor {
	newCh := t.payload[newEnd]

	// The previous insertion point of this phase. Seeded with the top
	// sentinel: its suffix slot takes the first chaining write and is never
	// read back.
	prevInsert := uint32(top)

	for {
		cur = t.canonicalize(cur, newEnd)

		var insertIdx uint32
		if cur.pos == newEnd {
			if !t.arena.at(cur.node).children.get(newCh).IsNone() {
				// Rule 3: the suffix is already present implicitly. The
				// active node spells the previous insertion point's string
				// minus its first character, so it closes that node's
				// suffix link; without this write a node split right
				// before the stop would keep its placeholder link to the
				// root and later phases would skip suffixes.
				t.arena.at(prevInsert).suffix = innerRef(cur.node)
				break
			}
			// The new leaf goes right below the active node.
			insertIdx = cur.node
		} else {
			// Mid-edge: find the label character facing the new one.
			edgeCh := t.payload[cur.pos]
			edgeRef := t.arena.at(cur.node).children.get(edgeCh)
			if edgeRef.IsNone() {
				panic("suffixtree: missing edge at a canonical active point")
			}

			var labelBegin uint32
			if edgeRef.IsLeaf() {
				labelBegin = edgeRef.Offset()
			} else {
				labelBegin = t.arena.at(edgeRef.Index()).begin
			}
			splitPos := labelBegin + (newEnd - cur.pos)

			if t.payload[splitPos] == newCh {
				// Rule 3, mid-edge flavor. No suffix link to close here: a
				// node split in the previous round spells a branching
				// string, so its one-shorter string branches too and the
				// walk would have stopped at that explicit node instead.
				break
			}

			// Mismatch inside the edge: split it. The new inner node takes
			// the matched label prefix and re-homes the old target under the
			// continuing character.
			n := Node{begin: labelBegin, end: splitPos, suffix: innerRef(root)}
			if edgeRef.IsLeaf() {
				n.children.set(t.payload[splitPos], leafRef(splitPos))
			} else {
				old := t.arena.at(edgeRef.Index())
				if !(old.begin < splitPos && splitPos < old.end) {
					panic("suffixtree: edge split point outside the target label")
				}
				old.begin = splitPos
				n.children.set(t.payload[splitPos], edgeRef)
			}
			insertIdx = t.arena.alloc(n)
			t.arena.at(cur.node).children.set(edgeCh, innerRef(insertIdx))
		}

		// Chain the suffix link from the previous insertion point.
		t.arena.at(prevInsert).suffix = innerRef(insertIdx)
		prevInsert = insertIdx

		// Attach the new implicit leaf.
		if !t.arena.at(insertIdx).children.get(newCh).IsNone() {
			panic("suffixtree: leaf slot already occupied")
		}
		t.arena.at(insertIdx).children.set(newCh, leafRef(newEnd))

		// Move on to the next, one-shorter pending suffix.
		suffix := t.arena.at(cur.node).suffix
		if !suffix.IsInner() {
			panic("suffixtree: suffix link does not resolve to an inner node")
		}
		cur.node = suffix.Index()
	}

	return cur
}
