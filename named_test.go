package colors

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestNamed(t *testing.T) {
	c, err := Named("DarkOrange")
	require.NoError(t, err)
	assert.Equal(t, "#ff8c00", c.Hex(false))
	c, err = Named(" white ")
	require.NoError(t, err)
	assert.Equal(t, white, c)
	_, err = Named("notacolor")
	require.ErrorContains(t, err, "unknown color name")
}

func TestNamedColors(t *testing.T) {
	names := NamedColors()
	assert.Greater(t, len(names), 100)
	assert.True(t, sort.StringsAreSorted(names))
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", NamedColors()[0])
	for _, n := range names[1:] {
		_, err := Named(n)
		require.NoError(t, err, n)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("teal")
	require.NoError(t, err)
	assert.Equal(t, "#008080", c.Hex(false))
	c, err = Parse("#abc")
	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", c.Hex(false))
	_, err = Parse("nope")
	require.Error(t, err)
}
