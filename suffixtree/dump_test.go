package suffixtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	t.Parallel()

	st, err := Build([]byte("abab$"))
	require.NoError(t, err)

	dump := st.Dump()

	assert.True(t, strings.HasPrefix(dump, "(root)"))

	// inner nodes come with their arena index and suffix link target
	assert.Contains(t, dump, `"ab" (inner 2, suffix=3)`)
	assert.Contains(t, dump, `"b" (inner 3, suffix=1)`)

	// implicit leaves resolve to the end of the payload
	assert.Contains(t, dump, `"ab$" (leaf)`)
	assert.Contains(t, dump, `"$" (leaf)`)

	// one line per node plus the root
	assert.Len(t, strings.Split(strings.TrimRight(dump, "\n"), "\n"), 8)
}

func TestDump_Empty(t *testing.T) {
	t.Parallel()

	st, err := Build(nil)
	require.NoError(t, err)

	assert.Equal(t, "(root)\n", st.Dump())
}
