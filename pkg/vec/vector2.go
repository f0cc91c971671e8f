package vec

import (
	"fmt"
	"math"
)

// Vector2 is a mutable 2D vector. Two vectors with equal components are
// interchangeable; the type carries no state beyond X and Y. The zero
// value is the zero vector, ready to use.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector.
func NewVector2(x, y float64) *Vector2 {
	return &Vector2{X: x, Y: y}
}

// FromPolar creates a 2D vector from polar coordinates, with theta in
// radians measured from the +x axis.
func FromPolar(r, theta float64) *Vector2 {
	return &Vector2{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
	}
}

// Add2 returns v + w as a new vector.
func Add2(v, w *Vector2) *Vector2 {
	return &Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub2 returns v - w as a new vector.
func Sub2(v, w *Vector2) *Vector2 {
	return &Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Lerp2 returns the componentwise interpolation from v to w as a new
// vector. t is clamped to [0, 1].
func Lerp2(v, w *Vector2, t float64) *Vector2 {
	t = clamp01(t)
	return &Vector2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Project2 returns the orthogonal projection of v onto w as a new vector.
// If w is the zero vector the projection has no direction and the result
// is the zero vector.
func Project2(v, w *Vector2) *Vector2 {
	d := w.MagnitudeSq()
	if d == 0 {
		return &Vector2{}
	}
	s := v.Dot(w) / d
	return &Vector2{X: w.X * s, Y: w.Y * s}
}

// Random2 returns a new unit vector pointing in a uniformly random
// direction.
func Random2() *Vector2 {
	theta := 2 * math.Pi * rng.Float64()
	return &Vector2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Add adds w to v in place.
func (v *Vector2) Add(w *Vector2) *Vector2 {
	v.X += w.X
	v.Y += w.Y
	return v
}

// Sub subtracts w from v in place.
func (v *Vector2) Sub(w *Vector2) *Vector2 {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

// Scale multiplies every component by c. Zero, negative and non-finite
// factors follow IEEE-754 semantics.
func (v *Vector2) Scale(c float64) *Vector2 {
	v.X *= c
	v.Y *= c
	return v
}

// Negate flips the sign of every component.
func (v *Vector2) Negate() *Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Normalize scales v to unit magnitude. A zero vector has no direction and
// is left zero rather than becoming NaN.
func (v *Vector2) Normalize() *Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Zero sets all components to 0.
func (v *Vector2) Zero() *Vector2 {
	v.X = 0
	v.Y = 0
	return v
}

// Copy overwrites v's components with w's.
func (v *Vector2) Copy(w *Vector2) *Vector2 {
	*v = *w
	return v
}

// Clone returns a new vector with the same components.
func (v *Vector2) Clone() *Vector2 {
	c := *v
	return &c
}

// Set assigns both components.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X = x
	v.Y = y
	return v
}

// SetComponents assigns the components from a slice in declared order.
// It reports ErrShapeMismatch unless exactly 2 values are given.
func (v *Vector2) SetComponents(vals []float64) error {
	if len(vals) != 2 {
		return fmt.Errorf("vector2: want 2 components, got %d: %w", len(vals), ErrShapeMismatch)
	}
	v.X = vals[0]
	v.Y = vals[1]
	return nil
}

// Lerp interpolates v toward w componentwise. t is clamped to [0, 1].
func (v *Vector2) Lerp(w *Vector2, t float64) *Vector2 {
	t = clamp01(t)
	v.X += (w.X - v.X) * t
	v.Y += (w.Y - v.Y) * t
	return v
}

// LookAt points v in the direction of w while preserving v's magnitude.
// If w is the zero vector the direction is undefined and v is zeroed.
func (v *Vector2) LookAt(w *Vector2) *Vector2 {
	m := v.Magnitude()
	d := w.Clone().Normalize()
	v.X = d.X * m
	v.Y = d.Y * m
	return v
}

// SetMagnitude rescales v to the given magnitude, keeping its direction.
// A zero vector has no direction and is left zero.
func (v *Vector2) SetMagnitude(m float64) *Vector2 {
	cur := v.Magnitude()
	if cur == 0 {
		return v
	}
	return v.Scale(m / cur)
}

// Clamp rescales v so its magnitude lies within [min, max]. At most one
// bound is applied per call: max when over, otherwise min when under.
func (v *Vector2) Clamp(min, max float64) *Vector2 {
	if v.Magnitude() > max {
		return v.LimitMax(max)
	}
	return v.LimitMin(min)
}

// LimitMax rescales v to the given magnitude if it is currently larger.
func (v *Vector2) LimitMax(max float64) *Vector2 {
	if v.Magnitude() > max {
		return v.SetMagnitude(max)
	}
	return v
}

// LimitMin rescales v to the given magnitude if it is currently smaller.
// A zero vector cannot be scaled up and is left zero.
func (v *Vector2) LimitMin(min float64) *Vector2 {
	m := v.Magnitude()
	if m != 0 && m < min {
		return v.SetMagnitude(min)
	}
	return v
}

// Random replaces v's direction with a uniformly random one, preserving
// its magnitude.
func (v *Vector2) Random() *Vector2 {
	m := v.Magnitude()
	theta := 2 * math.Pi * rng.Float64()
	v.X = m * math.Cos(theta)
	v.Y = m * math.Sin(theta)
	return v
}

// TurnLeft rotates v by exactly +90°. The components are swapped and
// negated directly, so there is no trigonometric rounding error.
func (v *Vector2) TurnLeft() *Vector2 {
	v.X, v.Y = -v.Y, v.X
	return v
}

// TurnRight rotates v by exactly -90°.
func (v *Vector2) TurnRight() *Vector2 {
	v.X, v.Y = v.Y, -v.X
	return v
}

// RotateZ rotates v by phi radians counterclockwise.
func (v *Vector2) RotateZ(phi float64) *Vector2 {
	sin, cos := math.Sincos(phi)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// Magnitude returns the Euclidean length of v.
func (v *Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// MagnitudeSq returns the squared Euclidean length of v. Prefer it over
// Magnitude when only comparing lengths.
func (v *Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the dot product of v and w: positive when they point the
// same general direction, zero at perpendicular, negative when opposed.
func (v *Vector2) Dot(w *Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Distance returns the Euclidean distance between v and w.
func (v *Vector2) Distance(w *Vector2) float64 {
	return math.Sqrt(v.DistanceSq(w))
}

// DistanceSq returns the squared Euclidean distance between v and w.
func (v *Vector2) DistanceSq(w *Vector2) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	return dx*dx + dy*dy
}

// DistanceChebyshev returns the maximum absolute componentwise difference
// between v and w.
func (v *Vector2) DistanceChebyshev(w *Vector2) float64 {
	return math.Max(math.Abs(v.X-w.X), math.Abs(v.Y-w.Y))
}

// DistanceManhattan returns the sum of absolute componentwise differences
// between v and w.
func (v *Vector2) DistanceManhattan(w *Vector2) float64 {
	return math.Abs(v.X-w.X) + math.Abs(v.Y-w.Y)
}

// DistanceMinkowski returns the Minkowski distance of order p between v
// and w. Orders p <= 0 have no usable exponent and report ErrDegenerate;
// p >= 1 gives a true metric.
func (v *Vector2) DistanceMinkowski(w *Vector2, p float64) (float64, error) {
	if p <= 0 {
		return 0, fmt.Errorf("minkowski order %v: %w", p, ErrDegenerate)
	}
	sum := math.Pow(math.Abs(v.X-w.X), p) + math.Pow(math.Abs(v.Y-w.Y), p)
	return math.Pow(sum, 1/p), nil
}

// AngleX returns the signed angle of v relative to the +x axis, shifted
// into [0, 2π).
func (v *Vector2) AngleX() float64 {
	return wrap2Pi(math.Atan2(v.Y, v.X))
}

// AngleY returns the signed angle of v relative to the +y axis, shifted
// into [0, 2π).
func (v *Vector2) AngleY() float64 {
	return wrap2Pi(math.Atan2(v.X, v.Y))
}

// AngleBetween returns the signed angle from v to w in (-π, π], positive
// toward counterclockwise.
func (v *Vector2) AngleBetween(w *Vector2) float64 {
	return math.Atan2(v.X*w.Y-v.Y*w.X, v.X*w.X+v.Y*w.Y)
}

// IsZero reports whether every component is exactly 0.
func (v *Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsNaN reports whether any component is NaN.
func (v *Vector2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// IsInfinite reports whether any component is ±Inf and none is NaN.
func (v *Vector2) IsInfinite() bool {
	if v.IsNaN() {
		return false
	}
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// Equals reports exact componentwise equality with w. No tolerance is
// applied.
func (v *Vector2) Equals(w *Vector2) bool {
	return v.X == w.X && v.Y == w.Y
}

// Opposes reports whether w is the exact componentwise negation of v.
func (v *Vector2) Opposes(w *Vector2) bool {
	return v.X == -w.X && v.Y == -w.Y
}

// Components returns the components in declared order. The array is a
// copy; re-invoke to restart iteration over current values.
func (v *Vector2) Components() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// String implements fmt.Stringer.
func (v *Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
