// Package app wires a session to its config, photo, audio and frame driver.
// Front-ends own the window or terminal and call into App for everything else.
package app

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"
	"time"

	"fortio.org/log"
	"fortio.org/safecast"

	"photobreak/internal/audio"
	"photobreak/internal/game"
	"photobreak/internal/photo"
)

// SeedEnv overrides the RNG seed when -seed is not given.
const SeedEnv = "PHOTOBREAK_SEED"

// Demo photo size.
const (
	DemoW = 640
	DemoH = 640
)

// DefaultVolume is used when Options.Volume is negative.
const DefaultVolume = 0.8

type Options struct {
	PhotoPath  string
	ConfigPath string
	Seed       uint64
	Mute       bool
	Demo       bool
	// Volume runs from 0 (silent) to 1. Negative selects DefaultVolume.
	Volume float64
	// NoAudio skips opening the device entirely.
	NoAudio bool
}

type App struct {
	Session *game.Session
	Events  *game.EventBus
	Audio   *audio.Player
	Driver  *game.Driver
	Queue   game.FrameQueue
}

// ResolveSeed picks the flag value, then the environment, then the clock.
func ResolveSeed(flagSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err == nil && v != 0 {
			return v
		}
		log.Warnf("Ignoring invalid %s=%q", SeedEnv, s)
	}
	return safecast.MustConv[uint64](time.Now().UnixNano())
}

// New loads config and photo and opens the audio device. input and render
// are called once per driven frame; render may be nil when the front-end
// redraws on its own schedule.
func New(o Options, input func() game.Input, render func(*game.Session)) (*App, error) {
	cfg, err := game.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 || o.Seed != 0 {
		cfg.Seed = ResolveSeed(o.Seed)
	}
	log.S(log.Info, "session config", log.Attr("seed", cfg.Seed), log.Attr("stages", len(cfg.Stages)),
		log.Attr("lives", cfg.Lives), log.Attr("symmetric_blast", cfg.SymmetricBlast))

	a := &App{Events: game.NewEventBus()}
	a.Session = game.NewSession(cfg, a.Events)
	a.Driver = game.NewDriver(a.Session, &a.Queue, input, render)
	a.Audio = openAudio(o)
	a.Audio.Attach(a.Events)

	switch {
	case o.PhotoPath != "":
		if err := a.LoadPhoto(o.PhotoPath); err != nil {
			return nil, err
		}
	case o.Demo:
		a.Session.AttachPhoto(photo.Demo(DemoW, DemoH, cfg.Seed))
	}
	return a, nil
}

func openAudio(o Options) *audio.Player {
	if o.NoAudio {
		return audio.Silent()
	}
	p, err := audio.New(o.volume())
	if err != nil {
		log.Warnf("Audio init failed, continuing without sound: %v", err)
		p = audio.Silent()
	}
	p.SetMuted(o.Mute)
	return p
}

func (o Options) volume() float64 {
	if o.Volume < 0 {
		return DefaultVolume
	}
	return min(o.Volume, 1)
}

// LoadPhoto decodes path and attaches it to the session.
func (a *App) LoadPhoto(path string) error {
	img, err := photo.Load(path)
	if err != nil {
		return err
	}
	return a.SetPhoto(img)
}

// SetPhoto attaches img. A photo can only be swapped outside of play; from an
// end state it goes back to the title first.
func (a *App) SetPhoto(img image.Image) error {
	s := a.Session
	if s.State.Final() {
		if err := s.Reselect(); err != nil {
			return err
		}
	}
	if s.State != game.StateNotStarted {
		return fmt.Errorf("%w: photo change from %s", game.ErrBadTransition, s.State)
	}
	s.AttachPhoto(img)
	return nil
}

// Continue runs the single "go" action. Presses that mean nothing in the
// current state are ignored.
func (a *App) Continue() {
	err := a.Session.Continue()
	switch {
	case err == nil:
	case errors.Is(err, game.ErrBadTransition), errors.Is(err, game.ErrNoPhoto):
		log.Debugf("continue ignored: %v", err)
	default:
		log.Errf("continue: %v", err)
	}
}

// Reselect returns to the title screen from an end state.
func (a *App) Reselect() {
	if err := a.Session.Reselect(); err != nil {
		log.Debugf("reselect ignored: %v", err)
	}
}

func (a *App) ToggleMute() {
	m := !a.Audio.Muted()
	a.Audio.SetMuted(m)
	log.S(log.Info, "audio", log.Attr("muted", m))
}

// Tick runs the pending frame, if any. now is in milliseconds.
func (a *App) Tick(now float64) bool {
	return a.Queue.Run(now)
}
