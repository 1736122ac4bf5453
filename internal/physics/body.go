// Package physics provides rigid bodies and the batch position-integration
// step. The step is the narrow boundary the game core depends on: bodies go
// in with velocities and accumulated forces, positions come out updated.
package physics

// Body is the simulation counterpart of a game entity. Position is a working
// copy: the world copies entity positions in before the step and back out
// after it.
type Body struct {
	X, Y   float64
	VX, VY float64
	// Force accumulator, consumed and reset by the next Integrate call.
	FX, FY   float64
	Mass     float64
	Rotation float64
	Radius   float64
	Active   bool
}

// NewBody creates an active body at the given position.
// A non-positive mass is defaulted to 1 so force application stays defined.
func NewBody(x, y float64) *Body {
	return &Body{X: x, Y: y, Mass: 1.0, Active: true}
}

// ApplyForce accumulates a force to be applied on the next integration step.
func (b *Body) ApplyForce(fx, fy float64) {
	b.FX += fx
	b.FY += fy
}

// ApplyImpulse adds directly to the body's velocity (momentum transfer).
func (b *Body) ApplyImpulse(vx, vy float64) {
	b.VX += vx
	b.VY += vy
}

// SetVelocity overrides the body's velocity.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}
