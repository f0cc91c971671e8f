// Package vec implements 2-, 3- and 4-dimensional float64 vectors for
// geometry, physics and graphics code.
//
// Each dimensionality has a mutable type (Vector2, Vector3, Vector4) and a
// read-only counterpart (Immutable2, Immutable3, Immutable4). Mutable
// instance methods modify the receiver in place and return it so that calls
// can be chained:
//
//	v := vec.NewVector2(3, 4)
//	v.Normalize().Scale(10).RotateZ(math.Pi / 2)
//
// The package-level functions (Add2, Sub3, Lerp4, ...) are the allocating
// counterparts: they leave their operands untouched and return a new vector.
//
// Operations whose result is undefined for the given input (the angle
// between vectors when one has zero magnitude, a Minkowski distance of
// order p <= 0) report ErrDegenerate instead of silently producing NaN.
package vec

import (
	"math"
	"math/rand"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SetRandSource replaces the random source used by the Random methods and
// the RandomN functions. Pass a seeded source for reproducible results:
//
//	vec.SetRandSource(rand.NewSource(1))
func SetRandSource(src rand.Source) {
	rng = rand.New(src)
}

// clamp01 restricts t to the interpolation range [0, 1].
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// wrap2Pi shifts a raw atan2 result into [0, 2π).
func wrap2Pi(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// clampCos restricts a cosine to [-1, 1] so that rounding in the dot
// product cannot push math.Acos out of its domain.
func clampCos(c float64) float64 {
	if c < -1 {
		return -1
	}
	if c > 1 {
		return 1
	}
	return c
}
