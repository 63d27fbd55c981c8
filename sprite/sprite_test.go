package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawBlock(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	drawBlock(img)

	black := color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	for i := 0; i < size; i++ {
		assert.Equal(t, black, img.NRGBAAt(i, 0))
		assert.Equal(t, black, img.NRGBAAt(i, size-1))
		assert.Equal(t, black, img.NRGBAAt(0, i))
		assert.Equal(t, black, img.NRGBAAt(size-1, i))
	}
	assert.Equal(t, white, img.NRGBAAt(1, 1))
	assert.Equal(t, white, img.NRGBAAt(size/2, size/2))
	assert.Equal(t, white, img.NRGBAAt(size-2, size-2))
}

func TestLoadFonts(t *testing.T) {
	require.NoError(t, loadFonts())
	require.NotNil(t, Regular)
	require.NotNil(t, Monospace)
	assert.Positive(t, Regular.NumGlyphs())
	assert.Positive(t, Monospace.NumGlyphs())
}
