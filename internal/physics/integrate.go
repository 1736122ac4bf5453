package physics

// Integrate advances every active body by dt seconds: accumulated forces are
// converted to velocity (v += F/m * dt, accumulator reset), then positions
// advance by velocity (p += v * dt). Inactive bodies are skipped, not
// removed. Cost is linear in body count; bodies never interact.
func Integrate(bodies []*Body, dt float64) {
	for _, b := range bodies {
		if b == nil || !b.Active {
			continue
		}

		mass := b.Mass
		if mass <= 0 {
			mass = 1.0
		}
		if b.FX != 0 || b.FY != 0 {
			b.VX += b.FX / mass * dt
			b.VY += b.FY / mass * dt
			b.FX = 0
			b.FY = 0
		}

		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
}
