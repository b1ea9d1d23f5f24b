package illustration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, i Illustration) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, i.Node().Render(&b))
	return b.String()
}

func TestFromIndexCoversEveryDrawing(t *testing.T) {
	for idx, want := range All() {
		got, err := FromIndex(idx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFromIndexRejectsOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		_, err := FromIndex(idx)
		assert.ErrorIs(t, err, ErrUnknown, "index %d", idx)
	}
}

func TestPathsAreDistinct(t *testing.T) {
	seen := make(map[Paths]Illustration)
	for _, ill := range All() {
		p, ok := ill.Paths()
		require.True(t, ok, ill.String())
		assert.NotEmpty(t, p.Tool)
		assert.NotEmpty(t, p.Hand)
		if prev, dup := seen[p]; dup {
			t.Errorf("%s shares paths with %s", ill, prev)
		}
		seen[p] = ill
	}
}

func TestNodeIsDeterministic(t *testing.T) {
	for _, ill := range All() {
		first := render(t, ill)
		assert.Equal(t, first, render(t, ill))

		p, _ := ill.Paths()
		assert.Contains(t, first, `d="`+p.Tool+`"`)
		assert.Contains(t, first, `d="`+p.Hand+`"`)
		assert.Contains(t, first, `viewBox="0 0 60 180"`)
	}
}

func TestUnknownRendersNothing(t *testing.T) {
	bad := Illustration(7)
	assert.False(t, bad.Valid())
	_, ok := bad.Paths()
	assert.False(t, ok)
	assert.Empty(t, render(t, bad))
	assert.Equal(t, "illustration(7)", bad.String())
}
