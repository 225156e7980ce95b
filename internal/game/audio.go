package game

import (
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/analog-clock/internal/sound"
)

// tickPlayer plays a click on the speaker each time the shown second moves.
type tickPlayer struct {
	volume    float64
	metronome sound.Metronome
}

func newTickPlayer(volume float64) (*tickPlayer, error) {
	bufferSize := sound.SampleRate.N(time.Second / 20)
	if err := speaker.Init(sound.SampleRate, bufferSize); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &tickPlayer{volume: volume}, nil
}

func (p *tickPlayer) observe(second int) {
	if !p.metronome.Due(second) {
		return
	}
	speaker.Play(sound.Click(sound.SampleRate, p.volume))
}

func (p *tickPlayer) close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
