package geometry

import "math"

// Vector3 is an immutable point or direction in game-world units.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Zero is the origin of the world frame.
var Zero = Vector3{}

// Vec creates a new Vector3.
func Vec(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the Euclidean distance between v and o.
func (v Vector3) Dist(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Flat drops the vertical component.
func (v Vector3) Flat() Vector3 {
	return Vector3{v.X, v.Y, 0}
}

// FlatDist returns the ground-plane distance between v and o.
func (v Vector3) FlatDist(o Vector3) float64 {
	return v.Flat().Dist(o.Flat())
}

// Normalized returns the unit vector in the direction of v.
// A zero-length input yields the zero vector.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return v.Scale(1 / l)
}

// IsZero reports whether all components are zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
