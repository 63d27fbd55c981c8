package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	rest = 0.0
	c4   = 261.63
	d4   = 293.66
	e4   = 329.63
	g4   = 392.00
	a4   = 440.00
	b4   = 493.88
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	f5   = 698.46
	g5   = 783.99
	a5   = 880.00
	c6   = 1046.50
)

// musicBeat is the length of a quarter note in the background tune.
const musicBeat = 300 * time.Millisecond

// theme is the background tune, looped while a game is being played.
var theme = []Note{
	{e5, 1}, {b4, .5}, {c5, .5}, {d5, 1}, {c5, .5}, {b4, .5},
	{a4, 1}, {a4, .5}, {c5, .5}, {e5, 1}, {d5, .5}, {c5, .5},
	{b4, 1.5}, {c5, .5}, {d5, 1}, {e5, 1},
	{c5, 1}, {a4, 1}, {a4, 1}, {rest, 1},
	{rest, .5}, {d5, 1}, {f5, .5}, {a5, 1}, {g5, .5}, {f5, .5},
	{e5, 1.5}, {c5, .5}, {e5, 1}, {d5, .5}, {c5, .5},
	{b4, 1}, {b4, .5}, {c5, .5}, {d5, 1}, {e5, 1},
	{c5, 1}, {a4, 1}, {a4, 1}, {rest, 1},
}

// clearNotes rises one step further for every line cleared at once.
var clearNotes = []float64{c5, e5, g5, c6}

// Music returns the background tune as an endless stream.
func Music(rate beep.SampleRate) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return Phrase(theme, musicBeat, Triangle, rate)
	})
}

// ClearCue returns the chime for clearing lines rows at once.
func ClearCue(lines int, rate beep.SampleRate) beep.Streamer {
	lines = max(1, min(lines, len(clearNotes)))
	notes := make([]Note, 0, lines)
	for _, f := range clearNotes[:lines] {
		notes = append(notes, Note{f, 1})
	}
	return Phrase(notes, 70*time.Millisecond, Square, rate)
}

// GameOverCue returns the falling tune played when the stack reaches the top.
func GameOverCue(rate beep.SampleRate) beep.Streamer {
	return Phrase([]Note{{g4, 1}, {e4, 1}, {d4, 1}, {c4, 3}}, 180*time.Millisecond, Square, rate)
}

// WinCue returns the fanfare played when the score cap is reached.
func WinCue(rate beep.SampleRate) beep.Streamer {
	return Phrase([]Note{{c5, 1}, {e5, 1}, {g5, 1}, {rest, .5}, {e5, .5}, {c6, 4}}, 150*time.Millisecond, Square, rate)
}
