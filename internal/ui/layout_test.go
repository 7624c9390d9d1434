package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutControlAnchorsBottomRight(t *testing.T) {
	c := layoutControl(200, 300)
	assert.Equal(t, image.Rect(164, 258, 188, 282), c.plusRect)
	assert.Equal(t, image.Rect(134, 258, 158, 282), c.minusRect)
	assert.Equal(t, 252, c.top)
}

func TestControlHit(t *testing.T) {
	c := layoutControl(200, 300)
	assert.Equal(t, 1, c.hit(170, 260))
	assert.Equal(t, -1, c.hit(134, 258))
	assert.Equal(t, 0, c.hit(158, 260), "gap between buttons")
	assert.Equal(t, 0, c.hit(10, 10))
}

func TestVisibleLines(t *testing.T) {
	lines := make([]string, 20)
	// (252-12-18)/16 = 13 rows fit above the control
	assert.Len(t, visibleLines(lines, 300), 13)
	assert.Len(t, visibleLines(lines[:5], 300), 5)
	assert.Empty(t, visibleLines(lines, 40))
}
