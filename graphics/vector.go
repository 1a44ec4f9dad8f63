package graphics

// Vector2f is a point or extent in world units
type Vector2f struct {
	X, Y float32
}

// Vec2 is shorthand for Vector2f{X: x, Y: y}
func Vec2(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Add returns v+o
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*s
func (v Vector2f) Scale(s float32) Vector2f {
	return Vector2f{X: v.X * s, Y: v.Y * s}
}
