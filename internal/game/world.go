package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/threenigma/marsx/internal/engine/input"
	"github.com/threenigma/marsx/internal/engine/renderer"
	"github.com/threenigma/marsx/internal/physics"
)

// DefaultMaxBodies bounds the physics body pool. The batch step is linear in
// body count, so the cap exists to surface leaks, not performance limits.
const DefaultMaxBodies = 1024

// World owns the entity sequence and the physics body collection. It is the
// sole mutator of both; entities never touch the collections directly.
// Insertion order is update and render order, which keeps the simulation
// deterministic for a given input and delta-time sequence.
type World struct {
	renderer  renderer.Renderer
	logger    *log.Logger
	entities  []Entity
	bodies    []*physics.Body
	maxBodies int
}

// NewWorld creates an empty world rendering to r.
func NewWorld(r renderer.Renderer, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	return &World{
		renderer:  r,
		logger:    logger,
		maxBodies: DefaultMaxBodies,
	}
}

// SetMaxBodies overrides the physics body cap.
func (w *World) SetMaxBodies(n int) {
	w.maxBodies = n
}

// allocBody hands out a fresh body, or an error once the pool is exhausted.
func (w *World) allocBody() (*physics.Body, error) {
	if len(w.bodies) >= w.maxBodies {
		return nil, fmt.Errorf("game: physics body pool exhausted (%d bodies)", w.maxBodies)
	}
	return physics.NewBody(0, 0), nil
}

// AddEntity appends e and starts it. Adding an entity that is already
// present is a no-op returning false. If Start fails to create a body the
// entity is kept without one and moves only through its own Update.
func (w *World) AddEntity(e Entity) bool {
	if w.contains(e) {
		return false
	}
	w.entities = append(w.entities, e)

	body, err := e.Start(w)
	if err != nil {
		w.logger.Warn("entity started without physics body", "entity", e.ID(), "error", err)
		return true
	}
	if body != nil {
		w.bodies = append(w.bodies, body)
	}
	return true
}

// RemoveEntity removes e and its physics body, if it owns one. Removing an
// absent entity is a no-op returning false.
func (w *World) RemoveEntity(e Entity) bool {
	idx := -1
	for i, other := range w.entities {
		if other.ID() == e.ID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	w.entities = append(w.entities[:idx], w.entities[idx+1:]...)

	if body := e.Body(); body != nil {
		for i, b := range w.bodies {
			if b == body {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
	}
	return true
}

// Update advances every entity by dt, then runs the batch physics step.
// Entity positions are copied into their bodies immediately after each
// entity updates (entity-authored movement wins before physics runs) and
// copied back after the step so physics-authored movement is visible to
// rendering this frame.
func (w *World) Update(actions input.ActionState, dt float64) {
	for _, e := range w.entities {
		e.Update(actions, dt)
		if body := e.Body(); body != nil {
			body.X, body.Y = e.Pos()
		}
	}

	if len(w.bodies) > 0 {
		physics.Integrate(w.bodies, dt)
	}

	for _, e := range w.entities {
		if body := e.Body(); body != nil {
			e.SetPos(body.X, body.Y)
		}
	}
}

// Render draws every active entity in insertion order.
func (w *World) Render() {
	for _, e := range w.entities {
		if e.Active() {
			e.Render(w.renderer)
		}
	}
}

// EntityCount returns the number of entities in the world.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// BodyCount returns the number of bodies in the physics collection.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

func (w *World) contains(e Entity) bool {
	for _, other := range w.entities {
		if other.ID() == e.ID() {
			return true
		}
	}
	return false
}
