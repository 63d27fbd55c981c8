package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/deitrix/tetrominoes/audio"
	"github.com/deitrix/tetrominoes/cell"
	"github.com/deitrix/tetrominoes/game"
	"github.com/deitrix/tetrominoes/piece"
	"github.com/deitrix/tetrominoes/sprite"
	"github.com/deitrix/tetrominoes/term"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 32
	// panelCells is the width of the score and preview panel, in cells
	panelCells = 6
	// tps is the number of engine steps per second
	tps = 60
	// repeatTicks is how long a side key must be held before it starts repeating
	repeatTicks = 10
)

const (
	screenWidth  = (game.FieldWidth + panelCells) * cellSize
	screenHeight = game.FieldHeight * cellSize
)

// Game adapts the engine to ebiten.
type Game struct {
	engine *game.Game
	keys   keyState
	// windowWidth and windowHeight are the last seen window size, used to
	// notice resizes.
	windowWidth, windowHeight int
}

func (g *Game) Update() error {
	cmd := keyCommand(g.keys)
	if cmd == game.None {
		if w, h := ebiten.WindowSize(); w != g.windowWidth || h != g.windowHeight {
			if g.windowWidth != 0 {
				cmd = game.Resize
				w, h = fitAspect(w, h)
				ebiten.SetWindowSize(w, h)
			}
			g.windowWidth, g.windowHeight = w, h
		}
	}
	if !g.engine.Step(cmd, time.Second/tps) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawField(screen)
	g.drawPanel(screen)
	if g.engine.Over() {
		g.drawBanner(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) drawField(screen *ebiten.Image) {
	b := g.engine.Field()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			k := g.engine.Visible(x, y)
			if !k.Filled() {
				continue
			}
			drawCell(screen, sprite.Cell, x*cellSize, y*cellSize, cellSize, cellSize, k, 255)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	left := game.FieldWidth*cellSize + cellSize/2
	drawText(screen, sprite.Monospace, fmt.Sprintf("SCORE: %06d", g.engine.Score()), 20, left, 2*cellSize, color.White)
	drawText(screen, sprite.Monospace, "NEXT:", 20, left, 4*cellSize, color.White)

	// The preview is drawn at half size, centered in the panel.
	id := g.engine.Next()
	bounds := id.Trim(0)
	size := cellSize / 2
	xoff := game.FieldWidth*cellSize + panelCells*cellSize/2 - bounds.Width*size/2
	yoff := 6*cellSize - bounds.Height*size/2
	renderPiece(screen, id, bounds, xoff, yoff, size)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	msg := "GAME OVER"
	if g.engine.Won() {
		msg = "YOU WIN!"
	}
	y := screenHeight / 2
	drawText(screen, sprite.Regular, msg, 40, 2*cellSize, y, color.White)
	drawText(screen, sprite.Regular, "press any key", 20, 3*cellSize, y+cellSize, color.White)
}

func renderPiece(screen *ebiten.Image, id piece.ID, bounds piece.Bounds, xoff, yoff, size int) {
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			k := id.At(bounds.X+x, bounds.Y+y, 0)
			if !k.Filled() {
				continue
			}
			drawCell(screen, sprite.Cell, xoff+x*size, yoff+y*size, size, size, k, 255)
		}
	}
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, k cell.Kind, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(k.Tint())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

// fitAspect shrinks a w x h window so that it keeps the aspect ratio of the
// logical screen.
func fitAspect(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return screenWidth, screenHeight
	}
	if w*screenHeight > h*screenWidth {
		return h * screenWidth / screenHeight, h
	}
	return w, w * screenHeight / screenWidth
}

// keyState is the keyboard as seen during one tick.
type keyState interface {
	JustPressed(ebiten.Key) bool
	// Duration is the number of ticks the key has been held, zero if it is up.
	Duration(ebiten.Key) int
	// AnyJustPressed reports whether some key went down this tick.
	AnyJustPressed() bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Duration(k ebiten.Key) int     { return inpututil.KeyPressDuration(k) }
func (ebitenKeys) AnyJustPressed() bool          { return len(inpututil.AppendJustPressedKeys(nil)) > 0 }

// keyCommand picks the command for this tick. At most one command is issued;
// quitting wins over moving, moving over rotating, rotating over dropping.
// Held side keys repeat after repeatTicks, a held down key drops every tick.
func keyCommand(keys keyState) game.Command {
	switch {
	case keys.JustPressed(ebiten.KeyEscape):
		return game.Quit
	case keys.JustPressed(ebiten.KeyLeft) || keys.Duration(ebiten.KeyLeft) > repeatTicks:
		return game.MoveLeft
	case keys.JustPressed(ebiten.KeyRight) || keys.Duration(ebiten.KeyRight) > repeatTicks:
		return game.MoveRight
	case keys.JustPressed(ebiten.KeyUp):
		return game.Rotate
	case keys.Duration(ebiten.KeyDown) > 0:
		return game.MoveDown
	case keys.AnyJustPressed():
		return game.AnyKey
	}
	return game.None
}

// logNotifier logs every engine event.
func logNotifier() game.Notifier {
	return game.NotifierFunc(func(e game.Event) {
		log.Printf("event: %v", e)
	})
}

func main() {
	var (
		termMode = flag.Bool("term", false, "play in the terminal instead of a window")
		mute     = flag.Bool("mute", false, "disable sound")
		volume   = flag.Float64("volume", 0.5, "sound volume between 0 and 1")
		debug    = flag.Bool("debug", false, "log engine events")
		logFile  = flag.String("log", "", "write the log to this file")
		scale    = flag.Float64("scale", 1, "initial window scale")
	)
	flag.Parse()

	log.SetFlags(0)
	if *debug {
		log.SetFlags(log.Lshortfile)
	}
	switch {
	case *logFile != "":
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	case *termMode:
		// The terminal is the screen; log lines would corrupt it.
		log.SetOutput(io.Discard)
	}

	var notifiers game.Notifiers
	if !*mute {
		player := audio.NewPlayer(*volume)
		if err := player.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			notifiers = append(notifiers, player)
		}
	}
	if *debug {
		notifiers = append(notifiers, logNotifier())
	}

	engine, err := game.New(notifiers)
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}

	if *termMode {
		if err := runTerm(engine); err != nil {
			log.Fatalf("failed to run game: %v", err)
		}
		return
	}

	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}
	ebiten.SetWindowTitle("Tetrominoes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(fitAspect(int(screenWidth*(*scale)), int(screenHeight*(*scale))))
	if err := ebiten.RunGame(&Game{engine: engine, keys: ebitenKeys{}}); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}

func runTerm(engine *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.New(screen, engine, time.Second/tps).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
