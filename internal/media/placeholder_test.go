package media

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesDecodablePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "youtube", "How to Boost Productivity with AI Tools"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())
}

func TestRender_UnknownPlatformUsesFallbackColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "myspace", "Hello"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(fallbackColor.R), r>>8)
	assert.Equal(t, uint32(fallbackColor.G), g>>8)
	assert.Equal(t, uint32(fallbackColor.B), b>>8)
}

func TestWrapTitle(t *testing.T) {
	assert.Equal(t, []string{"Untitled"}, wrapTitle("", 20))
	assert.Equal(t, []string{"short"}, wrapTitle("short", 20))

	lines := wrapTitle("The ROI of AI-Powered Teams in Modern Organizations", 20)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
}
