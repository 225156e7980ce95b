// Package game runs the analog clock inside an ebiten window.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/analog-clock/internal/clock"
	"github.com/iburimskiy/analog-clock/internal/config"
	"github.com/iburimskiy/analog-clock/internal/face"
	"github.com/iburimskiy/analog-clock/internal/render"
	"github.com/iburimskiy/analog-clock/internal/ticker"
)

type Game struct {
	width, height int

	face   *face.Face
	src    clock.Source
	ticker ticker.Ticker
	ticks  *tickPlayer

	// input edge detection
	prevKey map[ebiten.Key]bool

	log zerolog.Logger
}

// New builds the face and arms the ticker. The first tick runs immediately so
// the hands never show the start-up pose for a whole interval.
func New(cfg *config.Config, src clock.Source, log zerolog.Logger) (*Game, error) {
	g := &Game{
		width:   cfg.Width,
		height:  cfg.Height,
		face:    face.New(float64(cfg.Width), float64(cfg.Height), face.WithLogger(log)),
		src:     src,
		prevKey: map[ebiten.Key]bool{},
		log:     log,
	}

	if cfg.TickSound {
		p, err := newTickPlayer(cfg.Volume)
		if err != nil {
			// the clock still works without sound
			log.Warn().Err(err).Msg("tick sound disabled")
		} else {
			g.ticks = p
		}
	}

	if err := g.ticker.Start(time.Now(), cfg.Interval, g.onTick); err != nil {
		return nil, err
	}
	g.onTick()

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("interval", cfg.Interval).
		Bool("tick_sound", g.ticks != nil).
		Msg("clock started")
	return g, nil
}

func (g *Game) onTick() {
	if !g.face.Tick(g.src) {
		return
	}
	if g.ticks != nil {
		g.ticks.observe(g.face.Shown().Second)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if ebiten.IsWindowBeingClosed() || justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	g.ticker.Advance(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Paint(canvas{dst: screen}, g.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the ticker and silences the speaker. No callback runs after
// Close returns.
func (g *Game) Close() {
	if !g.ticker.Running() {
		return
	}
	g.ticker.Stop()
	if g.ticks != nil {
		g.ticks.close()
	}
	g.log.Info().Msg("clock stopped")
}
