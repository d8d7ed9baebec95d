package core

// RuntimeConfig is what the platform hands a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal width in cells
	ScreenH  int   // terminal height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock

	ConfigPath string // optional tuning file; empty uses the search path
	Difficulty string // difficulty preset name; empty means normal
}

// DefaultConfig returns the settings used when nothing is specified.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score     int
	HighScore int
	Level     int
	GameOver  bool
	Paused    bool
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShot        EventKind = iota // player fired
	EventAlienShot                    // an alien fired
	EventAlienHit                     // an alien lost a hit point but survived
	EventAlienKilled                  // an alien was destroyed
	EventWaveCleared                  // the last alien of a wave died
	EventGameOver                     // the ship was hit or reached
	EventReset                        // a new game started
)

var eventNames = map[EventKind]string{
	EventShot:        "shot",
	EventAlienShot:   "alien_shot",
	EventAlienHit:    "alien_hit",
	EventAlienKilled: "alien_killed",
	EventWaveCleared: "wave_cleared",
	EventGameOver:    "game_over",
	EventReset:       "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single occurrence reported by Step. Value carries the points
// awarded for scoring events and the wave number for EventWaveCleared.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
