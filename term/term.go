// Package term plays the game in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/deitrix/tetrominoes/cell"
	"github.com/deitrix/tetrominoes/game"
	"github.com/deitrix/tetrominoes/piece"
)

const (
	// cellWidth is the number of terminal columns a block takes, which keeps
	// blocks roughly square.
	cellWidth = 2
	// panelGap is the space between the field and the score panel.
	panelGap = 2
	// panelWidth is the width reserved for the score panel.
	panelWidth = 14
)

// Terminal is the input source and renderer for one game on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	game   *game.Game
	tick   time.Duration
	events chan tcell.Event
}

// New creates a terminal frontend. screen must already be initialised; the
// caller finalises it after Run returns.
func New(screen tcell.Screen, g *game.Game, tick time.Duration) *Terminal {
	return &Terminal{
		screen: screen,
		game:   g,
		tick:   tick,
		events: make(chan tcell.Event, 100),
	}
}

// Run drives the game until a quit command or until ctx is done. Every tick
// takes at most one pending event, steps the game and redraws.
func (t *Terminal) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go t.poll(done)

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		cmd := game.None
		select {
		case ev := <-t.events:
			cmd = Command(ev)
		default:
		}
		if cmd == game.Resize {
			t.screen.Sync()
		}
		if !t.game.Step(cmd, t.tick) {
			return nil
		}
		t.Draw()
	}
}

// poll forwards screen events until the screen is finalised or done closes.
func (t *Terminal) poll(done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-done:
			return
		}
	}
}

// Command maps a terminal event onto a game command. Arrow keys, hjkl and wasd
// move and rotate; Escape, Ctrl-C and q quit.
func Command(ev tcell.Event) game.Command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return game.Resize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.Quit
		case tcell.KeyLeft:
			return game.MoveLeft
		case tcell.KeyRight:
			return game.MoveRight
		case tcell.KeyDown:
			return game.MoveDown
		case tcell.KeyUp:
			return game.Rotate
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return game.Quit
			case 'h', 'a':
				return game.MoveLeft
			case 'l', 'd':
				return game.MoveRight
			case 'j', 's':
				return game.MoveDown
			case 'k', 'w':
				return game.Rotate
			}
		}
		return game.AnyKey
	}
	return game.None
}

// origin returns the top-left corner of the field for a w x h screen, centering
// the field and the panel together.
func origin(w, h int) (x, y int) {
	total := game.FieldWidth*cellWidth + panelGap + panelWidth
	return max(0, (w-total)/2), max(0, (h-game.FieldHeight)/2)
}

// Draw renders the current game state.
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	ox, oy := origin(w, h)

	b := t.game.Field()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			t.drawBlock(ox+x*cellWidth, oy+y, t.game.Visible(x, y))
		}
	}

	px := ox + b.Width()*cellWidth + panelGap
	t.drawText(px, oy+1, tcell.StyleDefault, fmt.Sprintf("SCORE: %06d", t.game.Score()))
	t.drawText(px, oy+3, tcell.StyleDefault, "NEXT:")
	t.drawPreview(px, oy+5, t.game.Next())

	if t.game.Over() {
		msg := "GAME OVER"
		if t.game.Won() {
			msg = "YOU WIN!"
		}
		t.drawCentered(ox, oy+b.Height()/2-1, b.Width()*cellWidth, msg)
		t.drawCentered(ox, oy+b.Height()/2+1, b.Width()*cellWidth, "press any key")
	}
	t.screen.Show()
}

func (t *Terminal) drawPreview(x, y int, id piece.ID) {
	bounds := id.Trim(0)
	for j := 0; j < bounds.Height; j++ {
		for i := 0; i < bounds.Width; i++ {
			if k := id.At(bounds.X+i, bounds.Y+j, 0); k.Filled() {
				t.drawBlock(x+i*cellWidth, y+j, k)
			}
		}
	}
}

func (t *Terminal) drawBlock(x, y int, k cell.Kind) {
	if !k.Filled() {
		return
	}
	style := tcell.StyleDefault.Background(color(k)).Foreground(tcell.ColorBlack)
	r := ' '
	if k == cell.Border {
		r = '░'
	}
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) drawCentered(x, y, width int, s string) {
	n := len([]rune(s))
	style := tcell.StyleDefault.Reverse(true).Bold(true)
	t.drawText(x+(width-n)/2, y, style, s)
}

// color converts the tint of a block to a terminal color.
func color(k cell.Kind) tcell.Color {
	c := k.Tint()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
