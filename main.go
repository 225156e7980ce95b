package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/analog-clock/internal/clock"
	"github.com/iburimskiy/analog-clock/internal/config"
	"github.com/iburimskiy/analog-clock/internal/game"
	"github.com/iburimskiy/analog-clock/internal/logging"
)

func run(log *zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	*log = log.Level(level)

	g, err := game.New(cfg, clock.System{}, *log)
	if err != nil {
		return errors.Wrap(err, "init clock")
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

func main() {
	log := logging.New(os.Stderr, zerolog.InfoLevel)

	if err := run(&log); err != nil {
		log.Error().Err(err).Msg("analog clock failed")
		_ = zenity.Error(fmt.Sprintf("Analog clock failed:\n%v", err), zenity.Title("Analog Clock"))
		os.Exit(1)
	}
}
