package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsAtFirstImage(t *testing.T) {
	g := New(5)
	assert.Equal(t, 0, g.Cursor)
}

func TestNextWrapsToStartAfterFullCycle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		g := New(n)
		for i := 0; i < n; i++ {
			g = g.Next()
		}
		assert.Equalf(t, 0, g.Cursor, "gallery of size %d", n)
	}
}

func TestPrevFromStartWrapsToLast(t *testing.T) {
	g := New(4).Prev()
	assert.Equal(t, 3, g.Cursor)

	// Size 1 wraps onto itself in both directions.
	g = New(1)
	assert.Equal(t, 0, g.Next().Cursor)
	assert.Equal(t, 0, g.Prev().Cursor)
}

func TestSelectJumpsDirectly(t *testing.T) {
	g := New(3).Select(2)
	assert.Equal(t, 2, g.Cursor)
	assert.Equal(t, 0, g.Next().Cursor)
	assert.Equal(t, 1, g.Prev().Cursor)
}

func TestValid(t *testing.T) {
	g := New(3)
	assert.True(t, g.Valid(0))
	assert.True(t, g.Valid(2))
	assert.False(t, g.Valid(3))
	assert.False(t, g.Valid(-1))
}

// Detail view over ["a","b","c"]: three next clicks land back on the
// first image.
func TestThreeImageCycleScenario(t *testing.T) {
	images := []string{"a", "b", "c"}
	g := New(len(images))
	assert.Equal(t, "a", images[g.Cursor])

	g = g.Next().Next().Next()
	assert.Equal(t, 0, g.Cursor)
	assert.Equal(t, "a", images[g.Cursor])
}
