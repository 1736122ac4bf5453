// Package game contains the world simulation: entities, the player, and the
// world orchestration that brackets the physics step.
package game

import (
	"github.com/google/uuid"

	"github.com/threenigma/marsx/internal/core"
	"github.com/threenigma/marsx/internal/engine/input"
	"github.com/threenigma/marsx/internal/engine/renderer"
	"github.com/threenigma/marsx/internal/physics"
)

// Entity is a game object managed by the World. Start runs exactly once,
// when the entity is added; the returned body (if any) joins the world's
// physics collection for batch integration. Update may mutate only the
// entity's own state. Render must not mutate game state.
type Entity interface {
	ID() string
	Pos() (float64, float64)
	SetPos(x, y float64)
	Active() bool
	Body() *physics.Body
	Start(w *World) (*physics.Body, error)
	Update(actions input.ActionState, dt float64)
	Render(r renderer.Renderer)
}

// BaseEntity implements the common entity state. All motion fields are
// always present and defaulted at construction; there is no optional
// attribute probing anywhere.
type BaseEntity struct {
	id       string
	X, Y     float64 // center position in world pixels
	W, H     float64 // bounding extents
	VX, VY   float64
	Mass     float64
	Rotation float64
	Color    core.Color
	active   bool
	body     *physics.Body
}

// NewBaseEntity creates an active entity centered at (x, y).
func NewBaseEntity(x, y, w, h float64) BaseEntity {
	return BaseEntity{
		id:     uuid.NewString(),
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Mass:   1.0,
		Color:  core.ColorWhite,
		active: true,
	}
}

// ID returns the entity's stable unique identifier.
func (e *BaseEntity) ID() string {
	return e.id
}

// Pos returns the entity's center position.
func (e *BaseEntity) Pos() (float64, float64) {
	return e.X, e.Y
}

// SetPos moves the entity's center position.
func (e *BaseEntity) SetPos(x, y float64) {
	e.X = x
	e.Y = y
}

// Active reports whether the entity participates in update and render.
func (e *BaseEntity) Active() bool {
	return e.active
}

// SetActive toggles the entity's activity flag.
func (e *BaseEntity) SetActive(active bool) {
	e.active = active
	if e.body != nil {
		e.body.Active = active
	}
}

// Body returns the entity's physics body, or nil when it has none.
func (e *BaseEntity) Body() *physics.Body {
	return e.body
}

// Rect returns the render rect derived from the center position.
func (e *BaseEntity) Rect() core.Rect {
	return core.RectAround(e.X, e.Y, e.W, e.H)
}

// Start creates the entity's physics body, pre-populated from its position,
// velocity, mass, and rotation, with a radius derived from the bounding
// extents. Subclassing entities that override Start must run this first.
// On allocation failure the entity stays bodiless and moves only through
// its own Update.
func (e *BaseEntity) Start(w *World) (*physics.Body, error) {
	body, err := w.allocBody()
	if err != nil {
		return nil, err
	}

	body.X = e.X
	body.Y = e.Y
	body.VX = e.VX
	body.VY = e.VY
	body.Mass = e.Mass
	body.Rotation = e.Rotation
	body.Radius = maxf(e.W, e.H) / 2
	body.Active = e.active

	e.body = body
	return body, nil
}

// Update is a no-op by default.
func (e *BaseEntity) Update(actions input.ActionState, dt float64) {}

// Render draws the entity's bounding rect in its color when active.
func (e *BaseEntity) Render(r renderer.Renderer) {
	if !e.active {
		return
	}
	r.DrawRect(e.Rect(), e.Color)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
