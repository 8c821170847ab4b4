package physics

// Integrate advances a body by dt with explicit Euler:
// velocity += acceleration*dt, position += velocity*dt, then the box is
// recomputed so any collision test afterwards sees the new position.
func Integrate(b *Body, dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Mult(dt))
	b.Position = b.Position.Add(b.Velocity.Mult(dt))
	b.SyncBox()
}
