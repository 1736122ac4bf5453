package physics

import "testing"

func TestIntegrateBatch(t *testing.T) {
	a := NewBody(0, 0)
	a.SetVelocity(10, 0)
	b := NewBody(100, 100)
	b.SetVelocity(0, -5)

	Integrate([]*Body{a, b}, 0.5)

	if a.X != 5.0 || a.Y != 0.0 {
		t.Errorf("body a = (%v, %v), expected (5, 0)", a.X, a.Y)
	}
	if b.X != 100.0 || b.Y != 97.5 {
		t.Errorf("body b = (%v, %v), expected (100, 97.5)", b.X, b.Y)
	}
}

func TestIntegrateSkipsInactive(t *testing.T) {
	b := NewBody(10, 10)
	b.SetVelocity(100, 100)
	b.Active = false

	Integrate([]*Body{b, nil}, 1.0)

	if b.X != 10 || b.Y != 10 {
		t.Errorf("inactive body moved to (%v, %v)", b.X, b.Y)
	}
}

func TestIntegrateAppliesAndResetsForce(t *testing.T) {
	b := NewBody(0, 0)
	b.Mass = 2.0
	b.ApplyForce(4, 0)
	b.ApplyForce(0, 8)

	Integrate([]*Body{b}, 1.0)

	// v = F/m * dt = (2, 4); p = v * dt = (2, 4).
	if b.VX != 2.0 || b.VY != 4.0 {
		t.Errorf("velocity = (%v, %v), expected (2, 4)", b.VX, b.VY)
	}
	if b.X != 2.0 || b.Y != 4.0 {
		t.Errorf("position = (%v, %v), expected (2, 4)", b.X, b.Y)
	}
	if b.FX != 0 || b.FY != 0 {
		t.Error("force accumulator should reset after integration")
	}

	// Second step with no new force: velocity persists, no re-application.
	Integrate([]*Body{b}, 1.0)
	if b.VX != 2.0 || b.X != 4.0 {
		t.Errorf("after second step, vx=%v x=%v, expected vx=2 x=4", b.VX, b.X)
	}
}

func TestIntegrateZeroMassDefaults(t *testing.T) {
	b := NewBody(0, 0)
	b.Mass = 0
	b.ApplyForce(3, 0)

	Integrate([]*Body{b}, 1.0)

	if b.VX != 3.0 {
		t.Errorf("vx = %v, expected 3 (mass defaulted to 1)", b.VX)
	}
}

func TestIntegrateEmptyBatch(t *testing.T) {
	// Must not panic.
	Integrate(nil, 0.016)
	Integrate([]*Body{}, 0.016)
}

func TestApplyImpulse(t *testing.T) {
	b := NewBody(0, 0)
	b.ApplyImpulse(5, -3)
	b.ApplyImpulse(1, 1)

	if b.VX != 6 || b.VY != -2 {
		t.Errorf("velocity = (%v, %v), expected (6, -2)", b.VX, b.VY)
	}
}
