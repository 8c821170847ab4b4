package physics

// Resolve pushes an integrated body out of every obstacle it overlaps and
// returns the resulting contact state, which is also stored in b.Contact.
//
// The contact starts at (neutral, neutral) and every overlapping obstacle is
// processed in slice order; a correction moves the body, zeroes the velocity
// on that axis and overwrites that axis tag, so the last obstacle hit on an
// axis wins. The box is re-derived after each correction, so later
// obstacles are tested against the corrected position.
func Resolve(b *Body, obstacles []Obstacle) ContactState {
	var contact ContactState

	for i := range obstacles {
		if !Overlaps(b.Box, obstacles[i].Box) {
			continue
		}

		pv := Penetrate(b.Box, obstacles[i].Box)
		if pv.X != 0 {
			b.Position.X -= pv.X
			b.Velocity.X = 0
			if pv.X < 0 {
				contact.X = XLeft
			} else {
				contact.X = XRight
			}
		}
		if pv.Y != 0 {
			b.Position.Y -= pv.Y
			b.Velocity.Y = 0
			if pv.Y < 0 {
				contact.Y = YDown
			} else {
				contact.Y = YUp
			}
		}
		b.SyncBox()
	}

	b.SyncBox()
	b.Contact = contact
	return contact
}
