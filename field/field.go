package field

import (
	"errors"
	"fmt"

	"github.com/deitrix/tetrominoes/cell"
)

const (
	// wallThickness is the thickness of the walls on the left and right sides of the field.
	wallThickness = 1
	// floorThickness is the thickness of the floor at the bottom of the field.
	floorThickness = 1
	// guardRows is the number of rows at the top that are never scanned for completed lines.
	guardRows = 1
	// MaxCompleted is the most rows a single piece can complete at once.
	MaxCompleted = 4
)

// ErrSize is returned when a field is too small to hold its border and one interior cell.
var ErrSize = errors.New("field too small")

// Field is the bordered grid of locked blocks, stored row-major.
type Field struct {
	width, height int
	cells         []cell.Kind
}

// New allocates a width x height field with its border in place.
func New(width, height int) (*Field, error) {
	if width < 2*wallThickness+1 || height < floorThickness+guardRows+1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	f := &Field{
		width:  width,
		height: height,
		cells:  make([]cell.Kind, width*height),
	}
	f.Reset()
	return f, nil
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// InBounds reports whether (x, y) addresses a cell of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// IsBorder reports whether (x, y) is part of the walls or the floor.
func (f *Field) IsBorder(x, y int) bool {
	return x < wallThickness || x >= f.width-wallThickness || y >= f.height-floorThickness
}

// At returns the cell at (x, y). Out of range coordinates read as Empty.
func (f *Field) At(x, y int) cell.Kind {
	if !f.InBounds(x, y) {
		return cell.Empty
	}
	return f.cells[y*f.width+x]
}

// Set stores k at (x, y). Border cells and out of range coordinates are left
// untouched and Set reports false.
func (f *Field) Set(x, y int, k cell.Kind) bool {
	if !f.InBounds(x, y) || f.IsBorder(x, y) {
		return false
	}
	f.cells[y*f.width+x] = k
	return true
}

// Reset empties the interior and marks the border.
func (f *Field) Reset() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			k := cell.Empty
			if f.IsBorder(x, y) {
				k = cell.Border
			}
			f.cells[y*f.width+x] = k
		}
	}
}

// RowComplete reports whether every interior cell of row y is filled.
func (f *Field) RowComplete(y int) bool {
	if y < 0 || y >= f.height-floorThickness {
		return false
	}
	for x := wallThickness; x < f.width-wallThickness; x++ {
		if !f.cells[y*f.width+x].Filled() {
			return false
		}
	}
	return true
}

// CompletedRows scans the playfield from the bottom up and returns the
// completed rows in the order they were found, at most MaxCompleted of them.
func (f *Field) CompletedRows() []int {
	var rows []int
	for y := f.height - floorThickness - 1; y >= guardRows && len(rows) < MaxCompleted; y-- {
		if f.RowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Collapse removes rows, which must be ordered bottom to top as returned by
// CompletedRows. Everything above a removed row drops by one. The i-th row has
// already been shifted down by the i removals before it, hence the offset.
func (f *Field) Collapse(rows []int) {
	for k, row := range rows {
		for y := row - 1 + k; y >= guardRows; y-- {
			f.shiftDown(y)
		}
	}
}

// shiftDown moves the interior of row y into row y+1 and empties row y.
func (f *Field) shiftDown(y int) {
	for x := wallThickness; x < f.width-wallThickness; x++ {
		f.cells[(y+1)*f.width+x] = f.cells[y*f.width+x]
		f.cells[y*f.width+x] = cell.Empty
	}
}

// Count returns the number of filled interior cells.
func (f *Field) Count() int {
	n := 0
	for y := 0; y < f.height-floorThickness; y++ {
		for x := wallThickness; x < f.width-wallThickness; x++ {
			if f.cells[y*f.width+x].Filled() {
				n++
			}
		}
	}
	return n
}

// String renders the field one row per line: '#' for border, '.' for empty
// and the first letter of the color otherwise.
func (f *Field) String() string {
	b := make([]byte, 0, (f.width+1)*f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			switch k := f.cells[y*f.width+x]; k {
			case cell.Empty:
				b = append(b, '.')
			case cell.Border:
				b = append(b, '#')
			default:
				b = append(b, k.String()[0])
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
