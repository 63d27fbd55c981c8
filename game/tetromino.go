package game

import (
	"github.com/deitrix/tetrominoes/cell"
	"github.com/deitrix/tetrominoes/piece"
)

// Tetromino is the falling piece: the field offset of its 4x4 box, which
// shape it is and how often it has been turned.
type Tetromino struct {
	X, Y     int
	ID       piece.ID
	Rotation int
}

// At returns the piece's cell at absolute field position (x, y), Empty if the
// piece does not cover it.
func (t Tetromino) At(x, y int) cell.Kind {
	i, j := x-t.X, y-t.Y
	if i < 0 || i >= piece.Size || j < 0 || j >= piece.Size {
		return cell.Empty
	}
	return t.ID.At(i, j, t.Rotation)
}

// Collides reports whether the active piece would overlap a filled field cell
// at (x, y) turned r times. Piece cells outside the field are not checked;
// the border keeps pieces inside.
func (g *Game) Collides(x, y, r int) bool {
	id := g.piece.ID
	for j := 0; j < piece.Size; j++ {
		for i := 0; i < piece.Size; i++ {
			if !g.field.InBounds(x+i, y+j) {
				continue
			}
			if id.At(i, j, r).Filled() && g.field.At(x+i, y+j).Filled() {
				return true
			}
		}
	}
	return false
}

// spawn brings in the next piece of the cycle at the spawn anchor. If there
// is no room for it the game is lost.
func (g *Game) spawn() {
	g.piece = Tetromino{
		X:  SpawnX,
		Y:  SpawnY,
		ID: g.piece.ID.Next(),
	}
	if g.Collides(g.piece.X, g.piece.Y, g.piece.Rotation) {
		g.state = GameOver
		g.notify(Event{Kind: EventGameOver})
	}
}

// lock writes the active piece into the field.
func (g *Game) lock() {
	p := g.piece
	for j := 0; j < piece.Size; j++ {
		for i := 0; i < piece.Size; i++ {
			if k := p.ID.At(i, j, p.Rotation); k.Filled() {
				g.field.Set(p.X+i, p.Y+j, k)
			}
		}
	}
}
