package geometry

import "math"

// NormalizeAngleDegrees folds a into (-180, 180].
// NaN and infinities come back as NaN.
func NormalizeAngleDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// RadiansToDegrees converts r to degrees folded into (-180, 180].
func RadiansToDegrees(r float64) float64 {
	return NormalizeAngleDegrees(r * 180 / math.Pi)
}

// AngleDifference returns the signed smallest rotation from b to a in degrees.
func AngleDifference(a, b float64) float64 {
	return NormalizeAngleDegrees(a - b)
}

// RelativeLocation expresses target in the local frame of a body at origin.
func RelativeLocation(origin Vector3, orientation Orientation, target Vector3) Vector3 {
	return orientation.ToLocal(target.Sub(origin))
}

// AngleToTargetRadians is the bearing of target in the body frame.
// 0 is straight ahead and positive angles are to the body's right.
func AngleToTargetRadians(origin Vector3, orientation Orientation, target Vector3) float64 {
	rel := RelativeLocation(origin, orientation, target)
	return math.Atan2(rel.Y, rel.X)
}

// AngleToTargetDegrees is AngleToTargetRadians in degrees.
func AngleToTargetDegrees(origin Vector3, orientation Orientation, target Vector3) float64 {
	return RadiansToDegrees(AngleToTargetRadians(origin, orientation, target))
}

// CompassBearing is the world-frame direction from one point to another in degrees.
func CompassBearing(from, to Vector3) float64 {
	return RadiansToDegrees(math.Atan2(to.Y-from.Y, to.X-from.X))
}
