package core

// Direction is a bit set of held directional inputs.
// The four bits are independent: any combination may be held at once.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// String returns a compact representation such as "U.L." for debug HUDs.
func (d Direction) String() string {
	b := []byte("....")
	if d&DirUp != 0 {
		b[0] = 'U'
	}
	if d&DirDown != 0 {
		b[1] = 'D'
	}
	if d&DirLeft != 0 {
		b[2] = 'L'
	}
	if d&DirRight != 0 {
		b[3] = 'R'
	}
	return string(b)
}

// Action represents a platform-level request that is not a direction,
// abstracted from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - respawn the actor at the level start
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled once for a single simulation tick:
// the four held directions plus any one-shot platform actions.
type InputFrame struct {
	Held    Direction
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Hold marks a direction as held for this frame.
func (f *InputFrame) Hold(d Direction) {
	f.Held |= d
}

// Up reports whether "up" is held.
func (f InputFrame) Up() bool { return f.Held&DirUp != 0 }

// Down reports whether "down" is held.
func (f InputFrame) Down() bool { return f.Held&DirDown != 0 }

// Left reports whether "left" is held.
func (f InputFrame) Left() bool { return f.Held&DirLeft != 0 }

// Right reports whether "right" is held.
func (f InputFrame) Right() bool { return f.Held&DirRight != 0 }

// Horizontal returns -1 for left, +1 for right and 0 when neither or both
// are held.
func (f InputFrame) Horizontal() int {
	h := 0
	if f.Left() {
		h--
	}
	if f.Right() {
		h++
	}
	return h
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets held directions and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Held = 0
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Held = f.Held
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
