package game

import (
	"github.com/threenigma/marsx/internal/core"
	"github.com/threenigma/marsx/internal/engine/input"
	"github.com/threenigma/marsx/internal/physics"
)

// Player defaults. Speed is in world pixels per second.
const (
	PlayerStartX = 400.0
	PlayerStartY = 300.0
	PlayerWidth  = 50.0
	PlayerHeight = 50.0
	PlayerSpeed  = 300.0
	PlayerMass   = 80.0
)

// Player is the controllable ship entity.
type Player struct {
	BaseEntity
	Speed float64
}

// NewPlayer creates the player at its spawn position.
func NewPlayer() *Player {
	p := &Player{
		BaseEntity: NewBaseEntity(PlayerStartX, PlayerStartY, PlayerWidth, PlayerHeight),
		Speed:      PlayerSpeed,
	}
	p.Color = core.ColorRed
	return p
}

// Start creates the base physics body, then forces the ship mass.
func (p *Player) Start(w *World) (*physics.Body, error) {
	body, err := p.BaseEntity.Start(w)
	if err != nil {
		return nil, err
	}
	body.Mass = PlayerMass
	return body, nil
}

// Update moves the player according to the active movement actions,
// scaled by the frame's delta time.
func (p *Player) Update(actions input.ActionState, dt float64) {
	movement := p.Speed * dt

	if actions.IsActionActive(input.ActionMoveForward) {
		p.Y -= movement
	}
	if actions.IsActionActive(input.ActionMoveBackward) {
		p.Y += movement
	}
	if actions.IsActionActive(input.ActionMoveLeft) {
		p.X -= movement
	}
	if actions.IsActionActive(input.ActionMoveRight) {
		p.X += movement
	}
}
