// Package sound synthesizes the audible tick of the second hand.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	// SampleRate is used for the speaker and every click.
	SampleRate beep.SampleRate = 44100

	clickDuration = 15 * time.Millisecond
	clickFreq     = 2000.0
	// decay per second of the click envelope
	clickDecay = 300.0
)

// Click returns a short decaying sine burst at the given volume (clamped to
// [0, 1]). The streamer drains after clickDuration.
func Click(sr beep.SampleRate, volume float64) beep.Streamer {
	volume = clamp01(volume)
	total := sr.N(clickDuration)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(sr)
			v := volume * math.Exp(-clickDecay*t) * math.Sin(2*math.Pi*clickFreq*t)
			samples[n][0] = v
			samples[n][1] = v
			n++
			pos++
		}
		return n, true
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Metronome decides when the second hand has moved.
type Metronome struct {
	last int
	seen bool
}

// Due reports whether second differs from the one seen last time. The first
// call only primes the metronome.
func (m *Metronome) Due(second int) bool {
	if !m.seen {
		m.seen = true
		m.last = second
		return false
	}
	if second == m.last {
		return false
	}
	m.last = second
	return true
}
