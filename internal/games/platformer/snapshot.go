package platformer

// Snapshot contains the complete actor state for tests and debug output.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Level    string
	Tick     uint64
	Elapsed  float64
	X, Y     float64
	VX, VY   float64
	ContactX string
	ContactY string
	Mode     string
	Anim     string
	Frame    int
	FlipX    bool
	Respawns int
	Paused   bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Level:    g.level.ID,
		Tick:     g.ticks,
		Elapsed:  g.elapsed,
		X:        g.actor.Position.X,
		Y:        g.actor.Position.Y,
		VX:       g.actor.Velocity.X,
		VY:       g.actor.Velocity.Y,
		ContactX: g.actor.Contact.X.String(),
		ContactY: g.actor.Contact.Y.String(),
		Mode:     g.mode.String(),
		Anim:     g.anim.State().String(),
		Frame:    g.anim.Frame(),
		FlipX:    g.anim.FlipX(),
		Respawns: g.respawns,
		Paused:   g.paused,
	}
}
