package vector2

import "fmt"

// Vector2 is a 2-D integer displacement (dx, dy).
type Vector2 struct {
	X, Y int64
}

// New constructs a Vector2.
func New(x, y int64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Neg returns the additive inverse.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by k.
func (v Vector2) Scale(k int64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Cross returns the 2-D cross product x1*y2 - x2*y1.
func (v Vector2) Cross(other Vector2) int64 {
	return v.X*other.Y - v.Y*other.X
}

// Dot returns the standard dot product.
func (v Vector2) Dot(other Vector2) int64 {
	return v.X*other.X + v.Y*other.Y
}

// Equal reports component-wise equality.
func (v Vector2) Equal(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
