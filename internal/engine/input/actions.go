package input

// Action is a semantic game action, decoupled from the physical key that
// triggers it. Game logic queries actions, never raw keys.
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFire
	ActionToggleFullscreen
	ActionOpenSettings
	ActionQuit
)

// Actions lists every defined action in a stable order.
var Actions = []Action{
	ActionMoveForward,
	ActionMoveBackward,
	ActionMoveLeft,
	ActionMoveRight,
	ActionJump,
	ActionFire,
	ActionToggleFullscreen,
	ActionOpenSettings,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveForward:
		return "move_forward"
	case ActionMoveBackward:
		return "move_backward"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionJump:
		return "jump"
	case ActionFire:
		return "fire"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	case ActionOpenSettings:
		return "open_settings"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Bindings maps actions to the key that triggers them. An action bound to
// KeyNone can only be triggered programmatically.
type Bindings map[Action]Key

// DefaultBindings returns the standard key layout.
// Quit is deliberately unbound: quitting happens only on window close, while
// Escape opens the settings action instead.
func DefaultBindings() Bindings {
	return Bindings{
		ActionMoveForward:      KeyRune('w'),
		ActionMoveBackward:     KeyRune('s'),
		ActionMoveLeft:         KeyRune('a'),
		ActionMoveRight:        KeyRune('d'),
		ActionJump:             KeyRune(' '),
		ActionFire:             KeyRune('f'),
		ActionToggleFullscreen: KeyF11,
		ActionOpenSettings:     KeyEscape,
		ActionQuit:             KeyNone,
	}
}
