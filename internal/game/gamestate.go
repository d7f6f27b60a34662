package game

import (
	"errors"
	"fmt"
	"image"
	"math"

	"fortio.org/log"
)

type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateBallLost       // a life was lost, the stage goes on after Retry
	StateStageCleared   // more stages follow
	StateAllCleared     // last stage cleared
	StateLivesExhausted // out of lives
)

var stateNames = [...]string{
	StateNotStarted:     "not-started",
	StatePlaying:        "playing",
	StateBallLost:       "ball-lost",
	StateStageCleared:   "stage-cleared",
	StateAllCleared:     "all-cleared",
	StateLivesExhausted: "lives-exhausted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Final reports whether the run is over and only Restart or Reselect apply.
func (s State) Final() bool {
	return s == StateAllCleared || s == StateLivesExhausted
}

var (
	ErrNoPhoto       = errors.New("no photo attached")
	ErrBadTransition = errors.New("bad state transition")
)

// Input is the player's intent for one step. TargetX wins over Dir when set.
type Input struct {
	TargetX   float64
	HasTarget bool
	Dir       int // -1 left, 0 none, 1 right
}

// Session is the whole game: progression, ball, paddle, bricks and effects.
type Session struct {
	Cfg Config

	State      State
	Score      int // cumulative over the run
	StageScore int // points earned on the current grid
	Lives      int
	MaxLives   int
	Stage      int
	MaxStage   int
	Banner     string

	Ball    Ball
	Paddle  Paddle
	Grid    *Grid
	Effects *Effects
	Shake   Shake

	CanvasW, CanvasH float64
	Photo            image.Image

	Events *EventBus

	seed  uint64
	rng   *Rand
	runs  int
	frame uint64
}

func NewSession(cfg Config, events *EventBus) *Session {
	if events == nil {
		events = NewEventBus()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	s := &Session{
		Cfg:      cfg,
		State:    StateNotStarted,
		Lives:    cfg.Lives,
		MaxLives: cfg.Lives,
		Stage:    1,
		MaxStage: len(cfg.Stages),
		Grid:     NewGrid(cfg.Grid),
		Effects:  NewEffects(MaxParticles, splitmix64(seed^0xEFFEC7)),
		CanvasW:  CanvasWidth,
		CanvasH:  CanvasHeight,
		Events:   events,
		seed:     seed,
		rng:      NewRand(splitmix64(seed)),
	}
	s.Paddle = Paddle{
		Width:  GetStageConfig(cfg.Stages, 1).PaddleWidth,
		Height: cfg.Paddle.Height,
		Gap:    cfg.Paddle.BottomGap,
	}
	s.Paddle.Center(s.CanvasW)
	s.Ball.Radius = cfg.Ball.Radius
	return s
}

// AttachPhoto sets the picture the bricks are cut from. A nil image detaches.
func (s *Session) AttachPhoto(img image.Image) {
	s.Photo = img
	if img != nil {
		b := img.Bounds()
		log.S(log.Info, "photo attached", log.Attr("width", b.Dx()), log.Attr("height", b.Dy()))
	}
}

// Resize reports the current canvas size. Layout follows on the next step.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.CanvasW, s.CanvasH = w, h
	s.Grid.Layout(w)
	s.Paddle.Clamp(w)
	if s.State != StateNotStarted {
		s.Ball.ClampTo(w)
	}
}

func (s *Session) HUD() HUD {
	return HUD{Score: s.Score, Lives: s.Lives, MaxLives: s.MaxLives, Stage: s.Stage, MaxStage: s.MaxStage}
}

// Start begins the first stage once a photo is attached.
func (s *Session) Start() error {
	if s.State != StateNotStarted {
		return s.badTransition("start")
	}
	if s.Photo == nil {
		return ErrNoPhoto
	}
	s.newRun()
	return nil
}

// Retry relaunches the ball on the same stage. Bricks stay as they are.
func (s *Session) Retry() error {
	if s.State != StateBallLost {
		return s.badTransition("retry")
	}
	s.Events.Play(CueMenuSelect)
	s.relaunch()
	s.setState(StatePlaying)
	return nil
}

// Advance moves to the next stage, keeping score and lives.
func (s *Session) Advance() error {
	if s.State != StateStageCleared {
		return s.badTransition("advance")
	}
	s.Events.Play(CueMenuSelect)
	s.Stage++
	s.buildStage()
	s.emitHUD()
	s.setState(StatePlaying)
	return nil
}

// Restart starts a new run from stage 1 with the same photo.
func (s *Session) Restart() error {
	if !s.State.Final() {
		return s.badTransition("restart")
	}
	if s.Photo == nil {
		return ErrNoPhoto
	}
	s.Events.Play(CueMenuSelect)
	s.newRun()
	return nil
}

// Reselect drops the photo and returns to the title screen.
func (s *Session) Reselect() error {
	if !s.State.Final() {
		return s.badTransition("reselect")
	}
	s.Events.Play(CueMenuSelect)
	s.Photo = nil
	s.Effects.Clear()
	s.Banner = ""
	s.setState(StateNotStarted)
	return nil
}

// Continue performs whatever transition leads back into play from the current
// state. Front-ends bind it to their single "go" action.
func (s *Session) Continue() error {
	switch s.State {
	case StateNotStarted:
		return s.Start()
	case StateBallLost:
		return s.Retry()
	case StateStageCleared:
		return s.Advance()
	case StateAllCleared, StateLivesExhausted:
		return s.Restart()
	}
	return s.badTransition("continue")
}

func (s *Session) badTransition(op string) error {
	return fmt.Errorf("%w: %s from %s", ErrBadTransition, op, s.State)
}

func (s *Session) newRun() {
	s.runs++
	s.Score = 0
	s.Lives = s.MaxLives
	s.Stage = 1
	s.buildStage()
	s.emitHUD()
	s.setState(StatePlaying)
}

// buildStage lays out a fresh grid for s.Stage and relaunches the ball.
func (s *Session) buildStage() {
	st := GetStageConfig(s.Cfg.Stages, s.Stage)
	s.StageScore = 0
	s.Paddle.Width = st.PaddleWidth
	rng := NewRand(stageSeed(s.seed, s.Stage, s.runs))
	s.Grid.Initialize(s.Cfg.Grid.Cols, s.Cfg.Grid.Rows, s.CanvasW, st.Bombs, rng)
	s.relaunch()
	log.S(log.Info, "stage built",
		log.Attr("stage", s.Stage), log.Attr("bricks", s.Grid.Total()),
		log.Attr("bombs", s.Grid.Bombs()), log.Attr("paddle", st.PaddleWidth))
}

func (s *Session) relaunch() {
	s.Effects.Clear()
	s.Shake.Reset()
	s.Banner = ""
	s.Paddle.Center(s.CanvasW)
	spread := s.Cfg.Ball.LaunchSpread * math.Pi / 180
	angle := (s.rng.Float64() - 0.5) * spread
	s.Ball.Radius = s.Cfg.Ball.Radius
	s.Ball.Launch(s.CanvasW/2, s.CanvasH-LaunchYOffset, s.Cfg.Ball.BaseSpeed, angle)
}

func (s *Session) setState(to State) {
	from := s.State
	s.State = to
	log.S(log.Info, "state change",
		log.Str("from", from.String()), log.Str("to", to.String()),
		log.Attr("stage", s.Stage), log.Attr("score", s.Score), log.Attr("lives", s.Lives))
	s.Events.Emit(Event{Type: EventStateChanged, State: to, From: from})
}

func (s *Session) emitHUD() {
	s.Events.Emit(Event{Type: EventHUD, HUD: s.HUD()})
}

// Step advances the game by dt nominal frames. Effects and shake animate in
// every state; the ball and bricks only move while playing.
func (s *Session) Step(dt float64, in Input) {
	s.frame++
	s.Effects.Update(dt)
	s.Shake.Update(dt/TargetFPS, s.seed^s.frame)
	if s.State != StatePlaying || dt <= 0 {
		return
	}

	s.Grid.Layout(s.CanvasW)
	if in.HasTarget {
		s.Paddle.MoveTo(in.TargetX, s.CanvasW)
	} else {
		s.Paddle.Clamp(s.CanvasW)
	}

	if s.collideBricks(dt) && s.State != StatePlaying {
		return
	}
	s.collideWalls(dt)
	if s.collideVertical(dt) {
		return
	}

	s.Paddle.Nudge(in.Dir, s.Cfg.Paddle.KeySpeed, dt, s.CanvasW)
	s.Ball.Commit(dt)
	s.Ball.ClampTo(s.CanvasW)
}

// award destroys b and pays for it. It reports false when b was already gone.
func (s *Session) award(b *Brick) bool {
	if !s.Grid.MarkDestroyed(b.Col, b.Row) {
		return false
	}
	s.Score += PointsPerBrick
	s.StageScore += PointsPerBrick
	s.Effects.SpawnShatter(b)
	return true
}

// pan maps a canvas x to the stereo field.
func (s *Session) pan(x float64) float64 {
	if s.CanvasW <= 0 {
		return 0
	}
	return clampF(2*x/s.CanvasW-1, -1, 1)
}

func (s *Session) loseLife() {
	s.Lives--
	s.Events.Play(CueLoseLife)
	s.emitHUD()
	if s.Lives <= 0 {
		s.Lives = 0
		s.Banner = pickBanner(s.rng, loseBanners, 0)
		s.setState(StateLivesExhausted)
		return
	}
	s.Banner = pickBanner(s.rng, retryBanners, s.Lives)
	s.setState(StateBallLost)
}

func (s *Session) checkCleared() {
	if !s.Grid.Cleared() {
		return
	}
	if s.Stage < s.MaxStage {
		s.Events.Play(CueStageClear)
		s.Banner = pickBanner(s.rng, stageBanners, s.Stage)
		s.setState(StateStageCleared)
		return
	}
	s.Events.Play(CueWin)
	s.Banner = pickBanner(s.rng, winBanners, 0)
	s.setState(StateAllCleared)
}
