// Package core holds the pieces shared by the simulation and the terminal
// front end: rectangles, the character screen, input actions and step results.
// Nothing in here imports Bubble Tea, so game logic stays testable on its own.
package core

// Rect is an axis-aligned box in whatever unit the caller works in.
// The simulation uses board pixels, the renderer uses terminal cells.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect builds a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether the two rectangles overlap.
// Shared edges do not count, and an empty rectangle overlaps nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
