package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is a body rotation in radians as reported by the host.
type Rotator struct {
	Pitch float64 `json:"pitch" yaml:"pitch"`
	Yaw   float64 `json:"yaw" yaml:"yaw"`
	Roll  float64 `json:"roll" yaml:"roll"`
}

// Orientation holds the body basis derived from a Rotator.
// Forward is the local x axis, Right the local y axis and Up the local z axis.
//
// The basis is composed yaw, then pitch, then roll. A degenerate rotator
// (NaN or infinite angles) still yields a basis, it is just meaningless.
type Orientation struct {
	Forward Vector3
	Right   Vector3
	Up      Vector3

	world mgl64.Mat3
}

// NewOrientation builds the body basis for r.
func NewOrientation(r Rotator) Orientation {
	cp, sp := math.Cos(r.Pitch), math.Sin(r.Pitch)
	cy, sy := math.Cos(r.Yaw), math.Sin(r.Yaw)
	cr, sr := math.Cos(r.Roll), math.Sin(r.Roll)

	forward := Vector3{cp * cy, cp * sy, sp}
	right := Vector3{cy*sp*sr - cr*sy, sy*sp*sr + cr*cy, -cp * sr}
	up := Vector3{-cr*cy*sp - sr*sy, -cr*sy*sp + sr*cy, cp * cr}

	return Orientation{
		Forward: forward,
		Right:   right,
		Up:      up,
		world:   mgl64.Mat3FromRows(toMgl(forward), toMgl(right), toMgl(up)),
	}
}

// ToLocal rotates a world-space offset into the body frame.
func (o Orientation) ToLocal(offset Vector3) Vector3 {
	return fromMgl(o.world.Mul3x1(toMgl(offset)))
}

// Heading returns the compass direction the body faces, in degrees.
func (o Orientation) Heading() float64 {
	return RadiansToDegrees(math.Atan2(o.Forward.Y, o.Forward.X))
}

func toMgl(v Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}
