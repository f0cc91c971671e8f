package vec

import (
	"fmt"
	"math"
)

// Vector4 is a mutable 4D vector. Rotation in 4D is plane-based rather
// than axis-based, so the type carries no rotation methods; arithmetic,
// metrics and randomization generalize from the lower dimensions.
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 creates a new 4D vector.
func NewVector4(x, y, z, w float64) *Vector4 {
	return &Vector4{X: x, Y: y, Z: z, W: w}
}

// Add4 returns v + w as a new vector.
func Add4(v, w *Vector4) *Vector4 {
	return &Vector4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub4 returns v - w as a new vector.
func Sub4(v, w *Vector4) *Vector4 {
	return &Vector4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Lerp4 returns the componentwise interpolation from v to w as a new
// vector. t is clamped to [0, 1].
func Lerp4(v, w *Vector4, t float64) *Vector4 {
	t = clamp01(t)
	return &Vector4{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
		W: v.W + (w.W-v.W)*t,
	}
}

// Project4 returns the orthogonal projection of v onto w as a new vector.
// If w is the zero vector the projection has no direction and the result
// is the zero vector.
func Project4(v, w *Vector4) *Vector4 {
	d := w.MagnitudeSq()
	if d == 0 {
		return &Vector4{}
	}
	s := v.Dot(w) / d
	return &Vector4{X: w.X * s, Y: w.Y * s, Z: w.Z * s, W: w.W * s}
}

// Random4 returns a new unit vector uniformly distributed on the unit
// 3-sphere, sampled with Marsaglia's method extended to 4D: two
// independent unit-disk rejection samples combined.
func Random4() *Vector4 {
	x, y, z, w := randomOn3Sphere()
	return &Vector4{X: x, Y: y, Z: z, W: w}
}

func randomOn3Sphere() (x, y, z, w float64) {
	u1, v1, s1 := randomInDisk()
	u2, v2, s2 := randomInDisk()
	f := math.Sqrt((1 - s1) / s2)
	return u1, v1, u2 * f, v2 * f
}

// randomInDisk rejection-samples a point strictly inside the unit disk,
// excluding the origin so the caller can divide by s.
func randomInDisk() (u, v, s float64) {
	for {
		u = 2*rng.Float64() - 1
		v = 2*rng.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			return u, v, s
		}
	}
}

// Add adds w to v in place.
func (v *Vector4) Add(w *Vector4) *Vector4 {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	v.W += w.W
	return v
}

// Sub subtracts w from v in place.
func (v *Vector4) Sub(w *Vector4) *Vector4 {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	v.W -= w.W
	return v
}

// Scale multiplies every component by c.
func (v *Vector4) Scale(c float64) *Vector4 {
	v.X *= c
	v.Y *= c
	v.Z *= c
	v.W *= c
	return v
}

// Negate flips the sign of every component.
func (v *Vector4) Negate() *Vector4 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
	return v
}

// Normalize scales v to unit magnitude. A zero vector has no direction and
// is left zero rather than becoming NaN.
func (v *Vector4) Normalize() *Vector4 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Zero sets all components to 0.
func (v *Vector4) Zero() *Vector4 {
	v.X = 0
	v.Y = 0
	v.Z = 0
	v.W = 0
	return v
}

// Copy overwrites v's components with w's.
func (v *Vector4) Copy(w *Vector4) *Vector4 {
	*v = *w
	return v
}

// Clone returns a new vector with the same components.
func (v *Vector4) Clone() *Vector4 {
	c := *v
	return &c
}

// Set assigns all four components.
func (v *Vector4) Set(x, y, z, w float64) *Vector4 {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
	return v
}

// SetComponents assigns the components from a slice in declared order.
// It reports ErrShapeMismatch unless exactly 4 values are given.
func (v *Vector4) SetComponents(vals []float64) error {
	if len(vals) != 4 {
		return fmt.Errorf("vector4: want 4 components, got %d: %w", len(vals), ErrShapeMismatch)
	}
	v.X = vals[0]
	v.Y = vals[1]
	v.Z = vals[2]
	v.W = vals[3]
	return nil
}

// Lerp interpolates v toward w componentwise. t is clamped to [0, 1].
func (v *Vector4) Lerp(w *Vector4, t float64) *Vector4 {
	t = clamp01(t)
	v.X += (w.X - v.X) * t
	v.Y += (w.Y - v.Y) * t
	v.Z += (w.Z - v.Z) * t
	v.W += (w.W - v.W) * t
	return v
}

// LookAt points v in the direction of w while preserving v's magnitude.
// If w is the zero vector the direction is undefined and v is zeroed.
func (v *Vector4) LookAt(w *Vector4) *Vector4 {
	m := v.Magnitude()
	d := w.Clone().Normalize()
	v.X = d.X * m
	v.Y = d.Y * m
	v.Z = d.Z * m
	v.W = d.W * m
	return v
}

// SetMagnitude rescales v to the given magnitude, keeping its direction.
// A zero vector has no direction and is left zero.
func (v *Vector4) SetMagnitude(m float64) *Vector4 {
	cur := v.Magnitude()
	if cur == 0 {
		return v
	}
	return v.Scale(m / cur)
}

// Clamp rescales v so its magnitude lies within [min, max]. At most one
// bound is applied per call: max when over, otherwise min when under.
func (v *Vector4) Clamp(min, max float64) *Vector4 {
	if v.Magnitude() > max {
		return v.LimitMax(max)
	}
	return v.LimitMin(min)
}

// LimitMax rescales v to the given magnitude if it is currently larger.
func (v *Vector4) LimitMax(max float64) *Vector4 {
	if v.Magnitude() > max {
		return v.SetMagnitude(max)
	}
	return v
}

// LimitMin rescales v to the given magnitude if it is currently smaller.
// A zero vector cannot be scaled up and is left zero.
func (v *Vector4) LimitMin(min float64) *Vector4 {
	m := v.Magnitude()
	if m != 0 && m < min {
		return v.SetMagnitude(min)
	}
	return v
}

// Random replaces v's direction with a uniformly random one on the unit
// 3-sphere, preserving its magnitude.
func (v *Vector4) Random() *Vector4 {
	m := v.Magnitude()
	x, y, z, w := randomOn3Sphere()
	v.X = x * m
	v.Y = y * m
	v.Z = z * m
	v.W = w * m
	return v
}

// Magnitude returns the Euclidean length of v.
func (v *Vector4) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// MagnitudeSq returns the squared Euclidean length of v.
func (v *Vector4) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Dot returns the dot product of v and w.
func (v *Vector4) Dot(w *Vector4) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Distance returns the Euclidean distance between v and w.
func (v *Vector4) Distance(w *Vector4) float64 {
	return math.Sqrt(v.DistanceSq(w))
}

// DistanceSq returns the squared Euclidean distance between v and w.
func (v *Vector4) DistanceSq(w *Vector4) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	dz := v.Z - w.Z
	dw := v.W - w.W
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// DistanceChebyshev returns the maximum absolute componentwise difference
// between v and w.
func (v *Vector4) DistanceChebyshev(w *Vector4) float64 {
	return math.Max(
		math.Max(math.Abs(v.X-w.X), math.Abs(v.Y-w.Y)),
		math.Max(math.Abs(v.Z-w.Z), math.Abs(v.W-w.W)),
	)
}

// DistanceManhattan returns the sum of absolute componentwise differences
// between v and w.
func (v *Vector4) DistanceManhattan(w *Vector4) float64 {
	return math.Abs(v.X-w.X) + math.Abs(v.Y-w.Y) + math.Abs(v.Z-w.Z) + math.Abs(v.W-w.W)
}

// DistanceMinkowski returns the Minkowski distance of order p between v
// and w. Orders p <= 0 report ErrDegenerate; p >= 1 gives a true metric.
func (v *Vector4) DistanceMinkowski(w *Vector4, p float64) (float64, error) {
	if p <= 0 {
		return 0, fmt.Errorf("minkowski order %v: %w", p, ErrDegenerate)
	}
	sum := math.Pow(math.Abs(v.X-w.X), p) +
		math.Pow(math.Abs(v.Y-w.Y), p) +
		math.Pow(math.Abs(v.Z-w.Z), p) +
		math.Pow(math.Abs(v.W-w.W), p)
	return math.Pow(sum, 1/p), nil
}

// AngleX returns the unsigned angle of v relative to the +x axis, in
// [0, π], computed against the magnitude of the other three components.
func (v *Vector4) AngleX() float64 {
	return math.Atan2(math.Sqrt(v.Y*v.Y+v.Z*v.Z+v.W*v.W), v.X)
}

// AngleY returns the unsigned angle of v relative to the +y axis, in
// [0, π].
func (v *Vector4) AngleY() float64 {
	return math.Atan2(math.Sqrt(v.X*v.X+v.Z*v.Z+v.W*v.W), v.Y)
}

// AngleZ returns the unsigned angle of v relative to the +z axis, in
// [0, π].
func (v *Vector4) AngleZ() float64 {
	return math.Atan2(math.Sqrt(v.X*v.X+v.Y*v.Y+v.W*v.W), v.Z)
}

// AngleW returns the unsigned angle of v relative to the +w axis, in
// [0, π].
func (v *Vector4) AngleW() float64 {
	return math.Atan2(math.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z), v.W)
}

// AngleBetween returns the unsigned angle between v and w in [0, π]. It
// reports ErrDegenerate when either vector has zero magnitude.
func (v *Vector4) AngleBetween(w *Vector4) (float64, error) {
	mm := v.Magnitude() * w.Magnitude()
	if mm == 0 {
		return 0, fmt.Errorf("angle between zero-magnitude vectors: %w", ErrDegenerate)
	}
	return math.Acos(clampCos(v.Dot(w) / mm)), nil
}

// IsZero reports whether every component is exactly 0.
func (v *Vector4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// IsNaN reports whether any component is NaN.
func (v *Vector4) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) || math.IsNaN(v.W)
}

// IsInfinite reports whether any component is ±Inf and none is NaN.
func (v *Vector4) IsInfinite() bool {
	if v.IsNaN() {
		return false
	}
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0) || math.IsInf(v.W, 0)
}

// Equals reports exact componentwise equality with w.
func (v *Vector4) Equals(w *Vector4) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z && v.W == w.W
}

// Opposes reports whether w is the exact componentwise negation of v.
func (v *Vector4) Opposes(w *Vector4) bool {
	return v.X == -w.X && v.Y == -w.Y && v.Z == -w.Z && v.W == -w.W
}

// R returns the x component under its color alias.
func (v *Vector4) R() float64 { return v.X }

// G returns the y component under its color alias.
func (v *Vector4) G() float64 { return v.Y }

// B returns the z component under its color alias.
func (v *Vector4) B() float64 { return v.Z }

// A returns the w component under its color alias.
func (v *Vector4) A() float64 { return v.W }

// Components returns the components in declared order.
func (v *Vector4) Components() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

// String implements fmt.Stringer.
func (v *Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
