package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_Score(t *testing.T) {
	out := RenderHeader("Explorer", 0, 0, 90)
	assert.Contains(t, out, "GeoMotion")
	assert.Contains(t, out, "Explorer")
	assert.NotContains(t, out, "★")

	out = RenderHeader("Explorer", 3, 5, 90)
	assert.Contains(t, out, "★ 3 / 5")
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Space", Description: "Play"}, {Key: "q", Description: "Quit"}}, 80)
	assert.Contains(t, out, "Space")
	assert.Contains(t, out, "Play")
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
}

func TestSizes(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
	assert.True(t, IsCompactWidth(99))
	assert.False(t, IsCompactHeight(30))
}
