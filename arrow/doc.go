// Package arrow implements a directional indicator made of a shaft line and an
// equilateral triangular head, for heading and velocity vectors in a simulation view.
//
// Angles follow the atan2 convention of geom.Line.Angle in screen space: 0 points
// right, +π/2 points down. Convert compass headings with geom.HeadingToAngle.
//
// All geometry is held by value; drawing goes through the Target injected at
// construction. An Arrow is not safe for concurrent mutation.
package arrow
