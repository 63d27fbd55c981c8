package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/deitrix/tetrominoes/game"
)

// SampleRate is the rate the speaker is opened with.
const SampleRate = beep.SampleRate(44100)

// Player turns engine events into sound. It implements game.Notifier. Until
// Init succeeds every event is dropped, so a game can run without audio.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewPlayer creates a player with volume in [0, 1]. Zero mutes it.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Init opens the speaker and starts mixing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Notify plays the cue for e.
func (p *Player) Notify(e game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	switch e.Kind {
	case game.EventMusicStart:
		p.stopMusic()
		p.music = &beep.Ctrl{Streamer: Music(SampleRate)}
		p.mixer.Add(p.withVolume(p.music))
	case game.EventGameOver, game.EventWin:
		p.stopMusic()
	}
	if cue := Cue(e, SampleRate); cue != nil {
		p.mixer.Add(p.withVolume(cue))
	}
}

// stopMusic silences the background tune. The paused Ctrl is dropped from
// the mixer once its streamer is replaced with nil.
func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	p.music.Paused = true
	p.music.Streamer = nil
	p.music = nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return Volume(s, p.volume)
}

// Cue returns the one-shot sound for an event, nil if the event has none.
func Cue(e game.Event, rate beep.SampleRate) beep.Streamer {
	switch e.Kind {
	case game.EventLinesCleared:
		return ClearCue(e.Lines, rate)
	case game.EventGameOver:
		return GameOverCue(rate)
	case game.EventWin:
		return WinCue(rate)
	}
	return nil
}

// Volume scales s by vol in [0, 1] on a logarithmic curve. Zero is silent.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
