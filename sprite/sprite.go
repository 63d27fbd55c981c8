package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// size is the edge length of the generated block images in pixels. They are
// scaled to the on-screen cell size when drawn.
const size = 32

// Cell is a white block with a dark outline, tinted with the block color when
// drawn.
var Cell *ebiten.Image

var spriteMap = map[string]struct {
	img  **ebiten.Image
	draw func(*image.NRGBA)
}{
	"cell": {&Cell, drawBlock},
}

// Load builds the sprites and parses the fonts. It must run before the first frame.
func Load() (err error) {
	for _, s := range spriteMap {
		src := image.NewNRGBA(image.Rect(0, 0, size, size))
		s.draw(src)
		*s.img = ebiten.NewImageFromImage(src)
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

// drawBlock fills the block white with a one pixel black outline, matching
// the outline drawn around every block.
func drawBlock(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBA{0xff, 0xff, 0xff, 0xff}
			if x == b.Min.X || y == b.Min.Y || x == b.Max.X-1 || y == b.Max.Y-1 {
				c = color.NRGBA{0x00, 0x00, 0x00, 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
}
