package game

import (
	"fmt"
	"time"

	"github.com/deitrix/tetrominoes/cell"
	"github.com/deitrix/tetrominoes/field"
	"github.com/deitrix/tetrominoes/piece"
)

const (
	// FieldWidth is the width of the field including both walls.
	FieldWidth = 12
	// FieldHeight is the height of the field: a guard row, 20 playfield rows
	// and the floor.
	FieldHeight = 22
	// SpawnX and SpawnY anchor the 4x4 box of a freshly spawned piece.
	SpawnX = FieldWidth/2 - piece.Size/2
	SpawnY = 0
	// GravityInterval is the virtual time between two forced descents.
	GravityInterval = 500 * time.Millisecond
	// MaxScore caps the score. Reaching it wins the game.
	MaxScore = 999999
)

// State is the phase of the game.
type State int

const (
	Playing State = iota
	GameOver
	// Win is a finished game that reached MaxScore.
	Win
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Win:
		return "win"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Board is the read-only view of the field handed to renderers.
type Board interface {
	Width() int
	Height() int
	At(x, y int) cell.Kind
}

// Game is one engine instance. It owns the field and the active piece; all
// mutation goes through Apply, Update, Step and Reset.
type Game struct {
	field    *field.Field
	piece    Tetromino
	score    int
	state    State
	gravity  time.Duration
	notifier Notifier
}

// New allocates the field and starts a game. n may be nil.
func New(n Notifier) (*Game, error) {
	f, err := field.New(FieldWidth, FieldHeight)
	if err != nil {
		return nil, fmt.Errorf("allocating field: %w", err)
	}
	g := &Game{
		field:    f,
		notifier: n,
	}
	g.Reset()
	return g, nil
}

// Reset starts a new game on an empty field.
func (g *Game) Reset() {
	g.field.Reset()
	g.score = 0
	g.state = Playing
	g.gravity = 0
	g.piece = Tetromino{ID: piece.None}
	g.notify(Event{Kind: EventMusicStart})
	g.spawn()
}

// Step runs one tick: cmd is applied, then gravity advances by dt. It reports
// whether the run loop should continue.
func (g *Game) Step(cmd Command, dt time.Duration) bool {
	if !g.Apply(cmd) {
		return false
	}
	g.Update(dt)
	return true
}

// Update advances the simulation by dt of virtual time. A piece that cannot
// move down is locked, completed lines are cleared and the next piece spawns.
// Otherwise, once GravityInterval has accumulated, the piece drops one row;
// that drop needs no check of its own since the row below was just found free.
func (g *Game) Update(dt time.Duration) {
	if g.state != Playing {
		return
	}
	g.gravity += dt
	p := g.piece
	if g.Collides(p.X, p.Y+1, p.Rotation) {
		g.lock()
		g.clearLines()
		if g.state == Playing {
			g.spawn()
		}
		return
	}
	if g.gravity >= GravityInterval {
		g.piece.Y++
		g.gravity = 0
	}
}

func (g *Game) Field() Board     { return g.field }
func (g *Game) Piece() Tetromino { return g.piece }
func (g *Game) Score() int       { return g.score }
func (g *Game) State() State     { return g.state }

// Won reports whether the game ended by reaching MaxScore.
func (g *Game) Won() bool { return g.state == Win }

// Over reports whether the game is finished, won or lost.
func (g *Game) Over() bool { return g.state != Playing }

// Next returns the piece shown in the preview: the one that spawns next while
// playing, the last one once the game is over.
func (g *Game) Next() piece.ID {
	if g.state != Playing {
		return g.piece.ID
	}
	return g.piece.ID.Next()
}

// Visible returns what is drawn at field cell (x, y): the active piece while
// playing, the field otherwise.
func (g *Game) Visible(x, y int) cell.Kind {
	if g.state == Playing {
		if k := g.piece.At(x, y); k.Filled() {
			return k
		}
	}
	return g.field.At(x, y)
}

func (g *Game) notify(e Event) {
	if g.notifier != nil {
		g.notifier.Notify(e)
	}
}
