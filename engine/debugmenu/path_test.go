package debugmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	segs, err := ParsePath("Game[-1000]>Dear ImGui Demo")
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{Name: "Game", Priority: -1000, Explicit: true},
		{Name: "Dear ImGui Demo"},
	}, segs)

	segs, err = ParsePath("A>B[0]>C[+3]")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.True(t, segs[1].Explicit)
	assert.Equal(t, 3, segs[2].Priority)
}

func TestParsePathRejects(t *testing.T) {
	for _, p := range []string{
		"",
		"NoSeparator[1]",
		">Leaf",
		"Menu>",
		"Menu>[5]",
		"Menu[x]>Leaf",
		"Menu[]>Leaf",
		"Menu]>Leaf",
		"Menu>>Leaf",
	} {
		_, err := ParsePath(p)
		assert.ErrorIs(t, err, ErrInvalidPath, "path %q", p)
	}
}
