// Package curve provides the parametric path props are laid along and the
// fixed-step sampling used by the placement passes.
package curve

import (
	"cogentcore.org/core/math32"
)

// Curve is a parametric 3D path with normalized parameter t in [0, 1].
// Implementations are read-only from the caller's point of view during a pass.
type Curve interface {
	// Length returns the total arc length in curve-local units.
	Length() float32
	// Position returns the curve-local position at t.
	Position(t float32) math32.Vector3
	// Tangent returns the curve-local tangent at t. Magnitude is unspecified.
	Tangent(t float32) math32.Vector3
}

// Sample is a single evaluation of a curve.
type Sample struct {
	Position math32.Vector3
	Tangent  math32.Vector3
}

// SampleAt evaluates position and tangent of c at t.
func SampleAt(c Curve, t float32) Sample {
	return Sample{
		Position: c.Position(t),
		Tangent:  c.Tangent(t),
	}
}

// Param returns the parameter of the i-th of n samples: i/n.
// The last sample lands at (n-1)/n; t=1 is never produced.
func Param(i, n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(i) / float32(n)
}

// ObjectCount returns the number of sample slots for a curve of the given
// length at density samples per unit: max(1, floor(length*density)).
func ObjectCount(length, density float32) int {
	n := int(math32.Floor(length * density))
	if n < 1 {
		return 1
	}
	return n
}
