package geom

import (
	"math"
)

// WrapAngle maps any angle into [-π, π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleDelta returns the shortest signed rotation taking from onto to
func AngleDelta(from, to float64) float64 {
	return WrapAngle(to - from)
}

// HeadingToAngle converts a compass heading (0 = screen up, clockwise positive) to the
// atan2 convention used by Line.Angle
func HeadingToAngle(heading float64) float64 {
	return WrapAngle(heading - math.Pi/2)
}

// AngleToHeading is the inverse of HeadingToAngle
func AngleToHeading(angle float64) float64 {
	return WrapAngle(angle + math.Pi/2)
}

// Deg converts degrees to radians
func Deg(d float64) float64 {
	return d * math.Pi / 180
}
