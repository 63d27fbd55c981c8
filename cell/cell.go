package cell

import "image/color"

// Kind is the content of a single grid cell.
type Kind uint8

const (
	Empty Kind = iota
	// Border marks the permanent walls and floor of the field.
	Border
	Red
	Green
	Blue
	Yellow
	Pink
	Cyan
	Orange
)

var tints = [...]color.NRGBA{
	Empty:  {0x00, 0x00, 0x00, 0xff},
	Border: {0x80, 0x80, 0x80, 0xff},
	Red:    {0xff, 0x00, 0x00, 0xff},
	Green:  {0x00, 0xff, 0x00, 0xff},
	Blue:   {0x00, 0x00, 0xff, 0xff},
	Yellow: {0xff, 0xff, 0x00, 0xff},
	Pink:   {0xff, 0x69, 0xb4, 0xff},
	Cyan:   {0x00, 0xff, 0xff, 0xff},
	Orange: {0xff, 0xa5, 0x00, 0xff},
}

var names = [...]string{
	Empty:  "empty",
	Border: "border",
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
	Pink:   "pink",
	Cyan:   "cyan",
	Orange: "orange",
}

// Filled reports whether the cell blocks movement.
func (k Kind) Filled() bool {
	return k != Empty
}

// Tint returns the color the cell is drawn with. Unknown kinds are drawn black.
func (k Kind) Tint() color.NRGBA {
	if int(k) >= len(tints) {
		return tints[Empty]
	}
	return tints[k]
}

func (k Kind) String() string {
	if int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}
