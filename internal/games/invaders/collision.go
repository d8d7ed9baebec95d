package invaders

// Collides reports whether two entities overlap. Touching edges and
// zero-sized entities never collide.
func Collides(a, b *Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Rect.Intersects(b.Rect)
}
