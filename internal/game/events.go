package game

type EventType int

const (
	EventCue EventType = iota
	EventHUD
	EventStateChanged
)

// Cue names a sound effect. The audio package maps cues to synthesized
// buffers; the core only names them.
type Cue int

const (
	CueShatter Cue = iota
	CueWallBounce
	CueLoseLife
	CueWin
	CueBombExplosion
	CueStageClear
	CueMenuSelect
)

var cueNames = [...]string{
	CueShatter:       "shatter",
	CueWallBounce:    "wallBounce",
	CueLoseLife:      "loseLife",
	CueWin:           "win",
	CueBombExplosion: "bombExplosion",
	CueStageClear:    "stageClear",
	CueMenuSelect:    "menuSelect",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// HUD is the display snapshot pushed on every score, life or stage change.
type HUD struct {
	Score    int
	Lives    int
	MaxLives int
	Stage    int
	MaxStage int
}

type Event struct {
	Type  EventType
	Cue   Cue
	Pan   float64 // cue position, -1 left to 1 right
	HUD   HUD
	State State
	From  State
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// Play emits a centred cue event.
func (eb *EventBus) Play(c Cue) {
	eb.Emit(Event{Type: EventCue, Cue: c})
}

// PlayAt emits a cue positioned across the stereo field.
func (eb *EventBus) PlayAt(c Cue, pan float64) {
	eb.Emit(Event{Type: EventCue, Cue: c, Pan: pan})
}
