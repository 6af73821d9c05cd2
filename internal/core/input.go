package core

// Key names a keyboard key. Printable keys use their character ("a", "f").
type Key string

const (
	KeyNone   Key = ""
	KeyEscape Key = "esc"
	KeyEnter  Key = "enter"
	KeySpace  Key = "space"
	KeyTab    Key = "tab"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
)

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventQuit        EventKind = iota // Window/session close request
	EventKeyDown                      // A key was pressed
	EventMouseDown                    // A mouse button was pressed
	EventMouseMotion                  // The pointer moved
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseMotion:
		return "MouseMotion"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

// Event is a single discrete input event. Pointer positions are in screen
// cells; games translate them to play-field units through a Viewport.
type Event struct {
	Kind     EventKind
	Key      Key
	Button   MouseButton
	Col, Row int // Pointer position
	DCol     int // Relative motion since the previous motion event
	DRow     int
}

// InputFrame is the batch of events collected between two simulation ticks.
// Games consume the whole batch synchronously once per tick.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an event to the frame.
func (f *InputFrame) Add(e Event) {
	f.Events = append(f.Events, e)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// HasKey returns true if the given key was pressed this frame.
func (f InputFrame) HasKey(k Key) bool {
	for _, e := range f.Events {
		if e.Kind == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.Events) == 0 {
		return InputFrame{}
	}
	events := make([]Event, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
