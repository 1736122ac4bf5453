package input

// ActionState is the read-only view of sampled input that game logic
// receives each frame.
type ActionState interface {
	// IsActionActive reports whether the action's key is currently held.
	IsActionActive(a Action) bool
	// IsActionJustPressed reports whether the action's key went down during
	// the most recent Poll call. Reset at the start of every poll cycle.
	IsActionJustPressed(a Action) bool
}

type actionState struct {
	key         Key
	active      bool
	justPressed bool
}

// Sampler polls the platform event queue once per frame and maintains
// keyboard, mouse, and action state. It is single-threaded by design: Poll
// and all queries must run on the frame loop goroutine.
type Sampler struct {
	src     Source
	actions map[Action]*actionState

	mouseX, mouseY int
	mouseButtons   map[int]bool

	quitRequested bool
}

// NewSampler creates a sampler reading from src with the given bindings.
func NewSampler(src Source, bindings Bindings) *Sampler {
	s := &Sampler{
		src:          src,
		actions:      make(map[Action]*actionState, len(Actions)),
		mouseButtons: make(map[int]bool),
	}
	for _, a := range Actions {
		s.actions[a] = &actionState{key: bindings[a]}
	}
	return s
}

// Poll resets edge state and fully drains the event source, updating action,
// mouse, and quit state. It returns true when a quit was requested (window
// close). The drain is complete within this single call so events can never
// back up across frames.
func (s *Sampler) Poll() bool {
	for _, st := range s.actions {
		st.justPressed = false
	}

	for {
		ev, ok := s.src.PollEvent()
		if !ok {
			break
		}
		s.handle(ev)
	}

	return s.quitRequested
}

func (s *Sampler) handle(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		for _, st := range s.actions {
			if st.key != KeyNone && st.key == ev.Key {
				st.active = true
				st.justPressed = true
			}
		}
	case EventKeyUp:
		// Key-up never clears justPressed; that flag is frame-scoped.
		for _, st := range s.actions {
			if st.key != KeyNone && st.key == ev.Key {
				st.active = false
			}
		}
	case EventMouseMotion:
		s.mouseX, s.mouseY = ev.X, ev.Y
	case EventMouseButtonDown:
		s.mouseX, s.mouseY = ev.X, ev.Y
		s.mouseButtons[ev.Button] = true
	case EventMouseButtonUp:
		s.mouseX, s.mouseY = ev.X, ev.Y
		s.mouseButtons[ev.Button] = false
	case EventWindowClose:
		s.TriggerAction(ActionQuit)
		s.quitRequested = true
	}
}

// TriggerAction programmatically activates an action for the current frame.
// This is the only path for actions with no key binding, such as quit.
func (s *Sampler) TriggerAction(a Action) {
	if st, ok := s.actions[a]; ok {
		st.active = true
		st.justPressed = true
	}
}

// IsActionActive reports whether the action is currently held.
func (s *Sampler) IsActionActive(a Action) bool {
	st, ok := s.actions[a]
	return ok && st.active
}

// IsActionJustPressed reports whether the action went down this frame.
func (s *Sampler) IsActionJustPressed(a Action) bool {
	st, ok := s.actions[a]
	return ok && st.justPressed
}

// ActiveActions returns the currently active actions in definition order.
func (s *Sampler) ActiveActions() []Action {
	var active []Action
	for _, a := range Actions {
		if s.actions[a].active {
			active = append(active, a)
		}
	}
	return active
}

// MousePosition returns the last observed mouse position.
func (s *Sampler) MousePosition() (int, int) {
	return s.mouseX, s.mouseY
}

// IsMouseButtonPressed reports whether the given mouse button is held.
func (s *Sampler) IsMouseButtonPressed(button int) bool {
	return s.mouseButtons[button]
}

var _ ActionState = (*Sampler)(nil)
