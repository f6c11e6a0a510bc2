package suffixtree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafRef(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Offset uint32
		ExpErr error
	}{
		{0, nil},
		{1, nil},
		{12345, nil},
		{MaxLeafOffset, nil},
		{MaxLeafOffset + 1, ErrOffsetRange},
		{^uint32(0), ErrOffsetRange},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%#x", tcase.Offset), func(t *testing.T) {
			ref, err := LeafRef(tcase.Offset)

			if tcase.ExpErr != nil {
				require.ErrorIs(t, err, tcase.ExpErr)
				assert.True(t, ref.IsNone())
				return
			}

			require.NoError(t, err)
			assert.True(t, ref.IsLeaf())
			assert.False(t, ref.IsInner())
			assert.False(t, ref.IsNone())
			assert.Equal(t, tcase.Offset, ref.Offset())
		})
	}
}

func TestInnerRef(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Index  uint32
		ExpErr error
	}{
		{0, nil},
		{1, nil},
		{98765, nil},
		{MaxNodeIndex, nil},
		{MaxNodeIndex + 1, ErrIndexRange},
		{^uint32(0), ErrIndexRange},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%#x", tcase.Index), func(t *testing.T) {
			ref, err := InnerRef(tcase.Index)

			if tcase.ExpErr != nil {
				require.ErrorIs(t, err, tcase.ExpErr)
				assert.True(t, ref.IsNone())
				return
			}

			require.NoError(t, err)
			assert.True(t, ref.IsInner())
			assert.False(t, ref.IsLeaf())
			assert.False(t, ref.IsNone())
			assert.Equal(t, tcase.Index, ref.Index())
		})
	}
}

func TestNoRef(t *testing.T) {
	t.Parallel()

	assert.True(t, NoRef.IsNone())
	assert.False(t, NoRef.IsLeaf())
	assert.False(t, NoRef.IsInner())
}

func TestRef_KindMismatchPanics(t *testing.T) {
	t.Parallel()

	leaf, err := LeafRef(7)
	require.NoError(t, err)

	inner, err := InnerRef(7)
	require.NoError(t, err)

	assert.Panics(t, func() { leaf.Index() })
	assert.Panics(t, func() { inner.Offset() })
	assert.Panics(t, func() { NoRef.Offset() })
}
