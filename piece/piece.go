package piece

import (
	"github.com/deitrix/tetrominoes/cell"
)

// Size is the width and height of the box every tetromino is defined in.
const Size = 4

// Count is the number of distinct tetrominoes.
const Count = 7

// ID identifies one of the seven tetrominoes.
type ID int

// None is the id held before the first spawn, so that the first Next yields I.
const None ID = -1

const (
	I ID = iota
	T
	O
	Z
	S
	L
	J
)

const (
	rd = cell.Red
	gn = cell.Green
	bl = cell.Blue
	yl = cell.Yellow
	pk = cell.Pink
	cy = cell.Cyan
	or = cell.Orange
)

// shapes holds the canonical (rotation 0) layout of each tetromino, row-major.
var shapes = [Count][Size * Size]cell.Kind{
	I: {
		0, 0, rd, 0,
		0, 0, rd, 0,
		0, 0, rd, 0,
		0, 0, rd, 0,
	},
	T: {
		0, 0, gn, 0,
		0, gn, gn, 0,
		0, 0, gn, 0,
		0, 0, 0, 0,
	},
	O: {
		0, 0, 0, 0,
		0, bl, bl, 0,
		0, bl, bl, 0,
		0, 0, 0, 0,
	},
	Z: {
		0, 0, yl, 0,
		0, yl, yl, 0,
		0, yl, 0, 0,
		0, 0, 0, 0,
	},
	S: {
		0, pk, 0, 0,
		0, pk, pk, 0,
		0, 0, pk, 0,
		0, 0, 0, 0,
	},
	L: {
		0, cy, 0, 0,
		0, cy, 0, 0,
		0, cy, cy, 0,
		0, 0, 0, 0,
	},
	J: {
		0, 0, or, 0,
		0, 0, or, 0,
		0, or, or, 0,
		0, 0, 0, 0,
	},
}

var names = [Count]string{I: "I", T: "T", O: "O", Z: "Z", S: "S", L: "L", J: "J"}

// Index maps cell (x, y) of a piece turned r quarter turns clockwise onto the
// index of the canonical layout it reads from. x and y must lie in [0, Size).
func Index(x, y, r int) int {
	switch r & 3 {
	case 1:
		return 12 + y - x*4
	case 2:
		return 15 - y*4 - x
	case 3:
		return 3 - y + x*4
	default:
		return y*4 + x
	}
}

// At returns the kind at cell (x, y) of the piece at rotation r.
func (id ID) At(x, y, r int) cell.Kind {
	if !id.Valid() {
		return cell.Empty
	}
	return shapes[id][Index(x, y, r)]
}

// Kind returns the color the piece is drawn and locked with.
func (id ID) Kind() cell.Kind {
	if !id.Valid() {
		return cell.Empty
	}
	return cell.Red + cell.Kind(id)
}

// Next returns the id that follows in the fixed spawn cycle.
func (id ID) Next() ID {
	if id < 0 {
		return I
	}
	return (id + 1) % Count
}

func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

func (id ID) String() string {
	if !id.Valid() {
		return "none"
	}
	return names[id]
}

// Bounds is the box, in piece-local coordinates, that holds the filled cells
// of a piece at some rotation.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Trim returns the smallest box holding the filled cells of the piece at
// rotation r, used to center a piece in a preview.
func (id ID) Trim(r int) Bounds {
	minX, minY, maxX, maxY := Size, Size, -1, -1
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !id.At(x, y, r).Filled() {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return Bounds{}
	}
	return Bounds{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}
