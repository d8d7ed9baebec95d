package invaders

// Formation moves the aliens as one group. All aliens share one horizontal
// velocity; when any of them touches a side wall the whole group reverses
// and drops one row.
type Formation struct {
	VelocityX int

	initialVelocity int
	boardWidth      int
	rowHeight       int
}

// NewFormation creates a formation moving right at speed pixels per tick.
func NewFormation(speed, boardWidth, rowHeight int) *Formation {
	return &Formation{
		VelocityX:       speed,
		initialVelocity: speed,
		boardWidth:      boardWidth,
		rowHeight:       rowHeight,
	}
}

// Reset restores the starting direction and speed.
func (f *Formation) Reset() {
	f.VelocityX = f.initialVelocity
}

// Advance moves every live alien by the current velocity, in slice order.
// The first alien to reach a wall reverses the formation, is pushed back
// by twice the new velocity, and drags every alien (dead ones included)
// down one row. Aliens later in the pass already move the new way. At most
// one bounce happens per call.
//
// It reports whether a live alien has reached shipY.
func (f *Formation) Advance(aliens []*Entity, shipY int) (reached bool) {
	bounced := false

	for _, alien := range aliens {
		if !alien.Alive {
			continue
		}

		alien.X += f.VelocityX

		if !bounced && (alien.Right() >= f.boardWidth || alien.X <= 0) {
			bounced = true
			f.VelocityX = -f.VelocityX
			alien.X += f.VelocityX * 2

			for _, a := range aliens {
				a.Y += f.rowHeight
			}
		}

		if alien.Y >= shipY {
			reached = true
		}
	}
	return reached
}
