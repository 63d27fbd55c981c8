package game

// Command is a discrete input delivered to the engine, at most one per tick.
type Command int

const (
	None Command = iota
	MoveLeft
	MoveRight
	MoveDown
	Rotate
	// Quit ends the run loop in every state.
	Quit
	// AnyKey is a key with no meaning while playing. It restarts a finished game.
	AnyKey
	// Resize reports a change of the output size. It never restarts a game.
	Resize
)

var commandNames = [...]string{
	None:      "none",
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	MoveDown:  "move-down",
	Rotate:    "rotate",
	Quit:      "quit",
	AnyKey:    "any-key",
	Resize:    "resize",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// restarts reports whether c counts as a key press in a finished game.
func (c Command) restarts() bool {
	switch c {
	case MoveLeft, MoveRight, MoveDown, Rotate, AnyKey:
		return true
	}
	return false
}

// Apply executes cmd and reports whether the run loop should keep going.
// While playing, moves and rotations happen only if the result does not
// collide; otherwise they are ignored. In a finished game any key restarts.
func (g *Game) Apply(cmd Command) bool {
	if cmd == Quit {
		return false
	}
	if g.state != Playing {
		if cmd.restarts() {
			g.Reset()
		}
		return true
	}
	p := g.piece
	switch cmd {
	case MoveLeft:
		g.try(p.X-1, p.Y, p.Rotation)
	case MoveRight:
		g.try(p.X+1, p.Y, p.Rotation)
	case MoveDown:
		g.try(p.X, p.Y+1, p.Rotation)
	case Rotate:
		g.try(p.X, p.Y, (p.Rotation+1)%4)
	}
	return true
}

// try moves the active piece to (x, y, r) unless it would collide there.
func (g *Game) try(x, y, r int) bool {
	if g.Collides(x, y, r) {
		return false
	}
	g.piece.X, g.piece.Y, g.piece.Rotation = x, y, r
	return true
}
