// Package input implements the per-frame input sampler: it drains the
// platform event queue, tracks keyboard and mouse state, and maps raw keys
// to named actions that game logic consumes.
package input

// Key identifies a physical key. Printable keys are their rune value;
// special keys use negative codes so they can never collide with runes.
type Key int32

// KeyNone means "no key"; actions bound to it are never key-triggered.
const KeyNone Key = 0

// Special (non-printable) keys.
const (
	KeyEscape Key = -(iota + 1)
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF11
)

// KeyRune wraps a printable rune as a Key.
func KeyRune(r rune) Key {
	return Key(r)
}

// EventKind discriminates platform events.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseMotion
	EventMouseButtonDown
	EventMouseButtonUp
	EventWindowClose
	EventResize
)

// Event is a single platform event. Fields are populated per kind:
// Key for key events, X/Y for mouse events, Button for button events,
// Width/Height for resize events.
type Event struct {
	Kind   EventKind
	Key    Key
	X, Y   int
	Button int
	Width  int
	Height int
}

// Source is a non-blocking event queue. PollEvent returns the next pending
// event, or ok=false when the queue is empty. The sampler drains a Source
// completely on every poll cycle.
type Source interface {
	PollEvent() (Event, bool)
}

// Queue is a simple FIFO Source. The terminal window adapter pushes
// translated platform events into it; tests push scripted events.
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event to the queue.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// PollEvent removes and returns the oldest pending event.
func (q *Queue) PollEvent() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
