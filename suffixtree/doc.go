// Package suffixtree defines a suffix tree over a byte payload, built online
// with Ukkonen's algorithm in amortized linear time.
//
// The tree consists of an append-only arena of inner Nodes plus implicit
// leaves. A leaf is never allocated: it is just a payload offset, and its edge
// label implicitly runs from that offset to the current end of the payload.
// Both kinds (and the absent case) are packed into a single Ref.
//
// Ref structure:
// -------------
//
//	[ 1:31 ] [       31:30-00       ]
//	<T:tag>  <VVVV...VVVV:value>
//
//	tag 1 = leaf,  value is a payload offset
//	tag 0 = inner, value is an arena index
//
//	NoRef (absent) is the all-ones pattern: leaf tag with the maximum value,
//	which is therefore excluded from the legal leaf offset range.
//
// Node fields:
// -----------
//
//   - begin, end - half-open payload range labeling the edge from the parent;
//   - suffix     - Ref of the inner node spelling this node's string minus its
//     first character;
//   - children   - at most one child Ref per leading label byte, kept in a
//     256-bit bitmap plus a rank-ordered slice.
//
// Two sentinel nodes occupy arena indices 0 and 1:
//
//   - node 0 ("top") has every child slot pointing at the root, so a suffix
//     link followed off the root lands somewhere a plain canonicalization step
//     can handle;
//   - node 1 ("root") spells the empty string; its incoming range has length
//     one so that a top-to-root descent always consumes one character.
//
// Example tree for "abcab$":
// -------------------------
//
//	(root) --+-- [inner:"ab"] --+-- [leaf:"cab$"]
//	         |                  `-- [leaf:"$"]
//	         +-- [inner:"b"]  --+-- [leaf:"cab$"]
//	         |                  `-- [leaf:"$"]
//	         +-- [leaf:"cab$"]
//	         `-- [leaf:"$"]
//
// The payload is borrowed, not copied: every label is an offset range into the
// caller's buffer, which must stay alive and unmodified for as long as the
// tree is in use. A finished tree is immutable and safe for concurrent
// readers.
package suffixtree
