package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deitrix/tetrominoes/game"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end, failing if it runs past limit samples.
func drain(t *testing.T, s beep.Streamer, limit int) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for n < limit {
		m, ok := s.Stream(buf)
		for i := 0; i < m; i++ {
			require.GreaterOrEqual(t, buf[i][0], -1.0)
			require.LessOrEqual(t, buf[i][0], 1.0)
			assert.Equal(t, buf[i][0], buf[i][1], "channels differ")
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		n += m
		if !ok {
			return n, peak
		}
	}
	t.Fatalf("stream still running after %d samples", limit)
	return n, peak
}

func TestTone_Length(t *testing.T) {
	for _, wave := range []Wave{Sine, Square, Triangle} {
		n, peak := drain(t, Tone(440, 100*time.Millisecond, wave, testRate), testRate.N(time.Second))
		assert.Equal(t, testRate.N(100*time.Millisecond), n, "wave %d", wave)
		assert.Greater(t, peak, 0.1, "wave %d", wave)
	}
}

func TestTone_Rest(t *testing.T) {
	n, peak := drain(t, Tone(0, 50*time.Millisecond, Sine, testRate), testRate.N(time.Second))
	assert.Equal(t, testRate.N(50*time.Millisecond), n)
	assert.Zero(t, peak)
}

func TestTone_Envelope(t *testing.T) {
	s := Tone(440, 100*time.Millisecond, Square, testRate)
	buf := make([][2]float64, 1)
	_, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Zero(t, buf[0][0], "tones start silent")
	assert.NoError(t, s.Err())
}

func TestPhrase(t *testing.T) {
	notes := []Note{{a4, 1}, {rest, .5}, {c5, 2}}
	n, _ := drain(t, Phrase(notes, 100*time.Millisecond, Sine, testRate), testRate.N(time.Second))
	want := testRate.N(100*time.Millisecond) + testRate.N(50*time.Millisecond) + testRate.N(200*time.Millisecond)
	assert.Equal(t, want, n)
}

func TestMusic_Loops(t *testing.T) {
	var beats float64
	for _, n := range theme {
		beats += n.Beats
	}
	once := time.Duration(beats * float64(musicBeat))

	s := Music(testRate)
	buf := make([][2]float64, testRate.N(once)*2+10)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
}

func TestClearCue_GrowsWithLines(t *testing.T) {
	limit := testRate.N(time.Second)
	prev := 0
	for lines := 1; lines <= 4; lines++ {
		n, _ := drain(t, ClearCue(lines, testRate), limit)
		assert.Greater(t, n, prev, "%d lines", lines)
		prev = n
	}
	n, _ := drain(t, ClearCue(9, testRate), limit)
	assert.Equal(t, prev, n, "more than four lines plays the tetris chime")
}

func TestCue(t *testing.T) {
	assert.Nil(t, Cue(game.Event{Kind: game.EventMusicStart}, testRate))
	for _, e := range []game.Event{
		{Kind: game.EventLinesCleared, Lines: 2},
		{Kind: game.EventGameOver},
		{Kind: game.EventWin},
	} {
		cue := Cue(e, testRate)
		require.NotNil(t, cue, "%s", e)
		n, _ := drain(t, cue, testRate.N(5*time.Second))
		assert.Positive(t, n, "%s", e)
	}
}

func TestVolume_Mute(t *testing.T) {
	_, peak := drain(t, Volume(Tone(440, 50*time.Millisecond, Square, testRate), 0), testRate.N(time.Second))
	assert.Zero(t, peak)

	_, full := drain(t, Volume(Tone(440, 50*time.Millisecond, Square, testRate), 1), testRate.N(time.Second))
	_, half := drain(t, Volume(Tone(440, 50*time.Millisecond, Square, testRate), .5), testRate.N(time.Second))
	assert.InDelta(t, full/2, half, 1e-9)
}

func TestPlayer_DropsEventsBeforeInit(t *testing.T) {
	p := NewPlayer(2)
	assert.Equal(t, 1.0, p.volume)

	var n game.Notifier = p
	n.Notify(game.Event{Kind: game.EventMusicStart})
	n.Notify(game.Event{Kind: game.EventLinesCleared, Lines: 1})

	assert.Zero(t, p.mixer.Len())
	assert.Nil(t, p.music)
	p.Close()
}
