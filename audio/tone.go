package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// fade is the attack and release applied to every tone to avoid clicks.
const fade = 5 * time.Millisecond

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	length   int
	ramp     int
	gain     float64
}

// Tone returns a streamer playing freq for d. A zero freq is a rest.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	if freq <= 0 {
		return beep.Silence(rate.N(d))
	}
	length := rate.N(d)
	return &tone{
		freq:   freq,
		wave:   wave,
		rate:   rate,
		length: length,
		ramp:   min(rate.N(fade), length/2),
		gain:   0.3,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Triangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.gain * t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.ramp == 0 {
		return 1
	}
	if t.position < t.ramp {
		return float64(t.position) / float64(t.ramp)
	}
	if left := t.length - t.position; left < t.ramp {
		return float64(left) / float64(t.ramp)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// Note is a pitch held for a number of beats.
type Note struct {
	Freq  float64
	Beats float64
}

// Phrase plays notes back to back at the given tempo.
func Phrase(notes []Note, beat time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, Tone(n.Freq, time.Duration(n.Beats*float64(beat)), wave, rate))
	}
	return beep.Seq(streamers...)
}
