package core

// Action is a logical input intent, decoupled from the physical key.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, A, H
	ActionMoveRight        // Right, D, L
	ActionFire             // Space
	ActionConfirm          // Enter - start a new game after game over
	ActionRestart          // R - same as confirm
	ActionPause            // P
	ActionBack             // Esc - return to menu
	ActionQuit             // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionFire:      "Fire",
	ActionConfirm:   "Confirm",
	ActionRestart:   "Restart",
	ActionPause:     "Pause",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the ordered list of intents applied during one tick.
// Repeated actions are kept, so two MoveLeft presses move twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame builds a frame from the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: append([]Action(nil), actions...)}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether the action occurs at least once.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action occurs.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, got := range f.Actions {
		if got == a {
			n++
		}
	}
	return n
}

// Empty reports whether the frame carries no intents.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// InputQueue collects intents as they arrive and hands them to the simulation
// in one batch per tick. It is not safe for concurrent use: the terminal loop
// delivers key and tick messages on a single goroutine.
type InputQueue struct {
	pending []Action
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push enqueues an intent. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Drain removes every queued intent and returns them as one frame,
// in arrival order.
func (q *InputQueue) Drain() InputFrame {
	pending := q.pending
	q.pending = nil
	return InputFrame{Actions: pending}
}
