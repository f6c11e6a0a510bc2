package suffixtree

import "errors"

var (
	ErrOffsetRange = errors.New("suffixtree: leaf offset exceeds the representable range")
	ErrIndexRange  = errors.New("suffixtree: node index exceeds the representable range")
)

const (
	refTagOffset = 31 // most significant bit in an uint32

	refTagMask   uint32 = 1 << refTagOffset       // 0b_1000...0
	refValueMask uint32 = (1 << refTagOffset) - 1 // 0b_0111...1

	// MaxLeafOffset is the largest payload offset a leaf Ref can carry.
	// The all-ones value is reserved for NoRef.
	MaxLeafOffset = refValueMask - 1

	// MaxNodeIndex is the largest arena index an inner Ref can carry.
	MaxNodeIndex = refValueMask
)

// Ref is a tagged reference to either an implicit leaf (payload offset) or an
// inner node (arena index). The zero value is a valid inner reference to the
// top sentinel; use NoRef for "absent".
type Ref uint32

// NoRef denotes an absent child or suffix link.
const NoRef = ^Ref(0)

// LeafRef packs a payload offset into a leaf reference.
func LeafRef(offset uint32) (Ref, error) {
	if offset > MaxLeafOffset {
		return NoRef, ErrOffsetRange
	}
	return leafRef(offset), nil
}

// InnerRef packs an arena index into an inner-node reference.
func InnerRef(index uint32) (Ref, error) {
	if index > MaxNodeIndex {
		return NoRef, ErrIndexRange
	}
	return innerRef(index), nil
}

// leafRef and innerRef skip the range check; the caller must have bounded the
// value already (Build caps the payload length, alloc caps the arena size).
func leafRef(offset uint32) Ref { return Ref(offset | refTagMask) }
func innerRef(index uint32) Ref { return Ref(index) }

func (r Ref) IsNone() bool  { return r == NoRef }
func (r Ref) IsLeaf() bool  { return r != NoRef && uint32(r)&refTagMask != 0 }
func (r Ref) IsInner() bool { return uint32(r)&refTagMask == 0 }

// Offset returns the payload offset of a leaf reference.
func (r Ref) Offset() uint32 {
	if !r.IsLeaf() {
		panic("suffixtree: Offset called on a non-leaf reference")
	}
	return uint32(r) & refValueMask
}

// Index returns the arena index of an inner-node reference.
func (r Ref) Index() uint32 {
	if !r.IsInner() {
		panic("suffixtree: Index called on a non-inner reference")
	}
	return uint32(r)
}
