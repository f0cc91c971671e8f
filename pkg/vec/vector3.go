package vec

import (
	"fmt"
	"math"
)

// Vector3 is a mutable 3D vector. The zero value is the zero vector,
// ready to use.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector.
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

// FromCylindrical creates a 3D vector from cylindrical coordinates, with
// phi in radians measured from the +x axis in the xy-plane.
func FromCylindrical(r, phi, z float64) *Vector3 {
	return &Vector3{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
		Z: z,
	}
}

// FromSpherical creates a 3D vector from spherical coordinates in the
// physics convention: theta is the polar angle from the +z axis, phi the
// azimuthal angle from the +x axis in the xy-plane.
func FromSpherical(r, theta, phi float64) *Vector3 {
	sinTheta := math.Sin(theta)
	return &Vector3{
		X: r * sinTheta * math.Cos(phi),
		Y: r * sinTheta * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}

// Add3 returns v + w as a new vector.
func Add3(v, w *Vector3) *Vector3 {
	return &Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub3 returns v - w as a new vector.
func Sub3(v, w *Vector3) *Vector3 {
	return &Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Cross3 returns the cross product v × w as a new vector. It is zero when
// v and w are parallel or antiparallel and maximal at perpendicular.
func Cross3(v, w *Vector3) *Vector3 {
	return &Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Lerp3 returns the componentwise interpolation from v to w as a new
// vector. t is clamped to [0, 1].
func Lerp3(v, w *Vector3, t float64) *Vector3 {
	t = clamp01(t)
	return &Vector3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Project3 returns the orthogonal projection of v onto w as a new vector.
// If w is the zero vector the projection has no direction and the result
// is the zero vector.
func Project3(v, w *Vector3) *Vector3 {
	d := w.MagnitudeSq()
	if d == 0 {
		return &Vector3{}
	}
	s := v.Dot(w) / d
	return &Vector3{X: w.X * s, Y: w.Y * s, Z: w.Z * s}
}

// Random3 returns a new unit vector uniformly distributed on the unit
// sphere, sampled with Marsaglia's rejection method (1972).
func Random3() *Vector3 {
	x, y, z := randomOnSphere()
	return &Vector3{X: x, Y: y, Z: z}
}

// randomOnSphere picks a uniform point on the unit sphere. Candidates are
// drawn from the unit disk and rejected until one falls inside it, then
// projected onto the sphere.
func randomOnSphere() (x, y, z float64) {
	for {
		u := 2*rng.Float64() - 1
		v := 2*rng.Float64() - 1
		s := u*u + v*v
		if s >= 1 {
			continue
		}
		f := 2 * math.Sqrt(1-s)
		return u * f, v * f, 1 - 2*s
	}
}

// Add adds w to v in place.
func (v *Vector3) Add(w *Vector3) *Vector3 {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	return v
}

// Sub subtracts w from v in place.
func (v *Vector3) Sub(w *Vector3) *Vector3 {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	return v
}

// Scale multiplies every component by c.
func (v *Vector3) Scale(c float64) *Vector3 {
	v.X *= c
	v.Y *= c
	v.Z *= c
	return v
}

// Negate flips the sign of every component.
func (v *Vector3) Negate() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// Normalize scales v to unit magnitude. A zero vector has no direction and
// is left zero rather than becoming NaN.
func (v *Vector3) Normalize() *Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Cross replaces v with the cross product v × w.
func (v *Vector3) Cross(w *Vector3) *Vector3 {
	x := v.Y*w.Z - v.Z*w.Y
	y := v.Z*w.X - v.X*w.Z
	z := v.X*w.Y - v.Y*w.X
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Zero sets all components to 0.
func (v *Vector3) Zero() *Vector3 {
	v.X = 0
	v.Y = 0
	v.Z = 0
	return v
}

// Copy overwrites v's components with w's.
func (v *Vector3) Copy(w *Vector3) *Vector3 {
	*v = *w
	return v
}

// Clone returns a new vector with the same components.
func (v *Vector3) Clone() *Vector3 {
	c := *v
	return &c
}

// Set assigns all three components.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// SetComponents assigns the components from a slice in declared order.
// It reports ErrShapeMismatch unless exactly 3 values are given.
func (v *Vector3) SetComponents(vals []float64) error {
	if len(vals) != 3 {
		return fmt.Errorf("vector3: want 3 components, got %d: %w", len(vals), ErrShapeMismatch)
	}
	v.X = vals[0]
	v.Y = vals[1]
	v.Z = vals[2]
	return nil
}

// Lerp interpolates v toward w componentwise. t is clamped to [0, 1].
func (v *Vector3) Lerp(w *Vector3, t float64) *Vector3 {
	t = clamp01(t)
	v.X += (w.X - v.X) * t
	v.Y += (w.Y - v.Y) * t
	v.Z += (w.Z - v.Z) * t
	return v
}

// LookAt points v in the direction of w while preserving v's magnitude.
// If w is the zero vector the direction is undefined and v is zeroed.
func (v *Vector3) LookAt(w *Vector3) *Vector3 {
	m := v.Magnitude()
	d := w.Clone().Normalize()
	v.X = d.X * m
	v.Y = d.Y * m
	v.Z = d.Z * m
	return v
}

// SetMagnitude rescales v to the given magnitude, keeping its direction.
// A zero vector has no direction and is left zero.
func (v *Vector3) SetMagnitude(m float64) *Vector3 {
	cur := v.Magnitude()
	if cur == 0 {
		return v
	}
	return v.Scale(m / cur)
}

// Clamp rescales v so its magnitude lies within [min, max]. At most one
// bound is applied per call: max when over, otherwise min when under.
func (v *Vector3) Clamp(min, max float64) *Vector3 {
	if v.Magnitude() > max {
		return v.LimitMax(max)
	}
	return v.LimitMin(min)
}

// LimitMax rescales v to the given magnitude if it is currently larger.
func (v *Vector3) LimitMax(max float64) *Vector3 {
	if v.Magnitude() > max {
		return v.SetMagnitude(max)
	}
	return v
}

// LimitMin rescales v to the given magnitude if it is currently smaller.
// A zero vector cannot be scaled up and is left zero.
func (v *Vector3) LimitMin(min float64) *Vector3 {
	m := v.Magnitude()
	if m != 0 && m < min {
		return v.SetMagnitude(min)
	}
	return v
}

// Random replaces v's direction with a uniformly random one on the unit
// sphere, preserving its magnitude.
func (v *Vector3) Random() *Vector3 {
	m := v.Magnitude()
	x, y, z := randomOnSphere()
	v.X = x * m
	v.Y = y * m
	v.Z = z * m
	return v
}

// RotateX rotates v by phi radians about the x axis, moving +y toward +z.
func (v *Vector3) RotateX(phi float64) *Vector3 {
	sin, cos := math.Sincos(phi)
	v.Y, v.Z = v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos
	return v
}

// RotateY rotates v by phi radians about the y axis, moving +x toward +z.
func (v *Vector3) RotateY(phi float64) *Vector3 {
	sin, cos := math.Sincos(phi)
	v.X, v.Z = v.X*cos-v.Z*sin, v.X*sin+v.Z*cos
	return v
}

// RotateZ rotates v by phi radians about the z axis, moving +x toward +y.
func (v *Vector3) RotateZ(phi float64) *Vector3 {
	sin, cos := math.Sincos(phi)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// Magnitude returns the Euclidean length of v.
func (v *Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// MagnitudeSq returns the squared Euclidean length of v.
func (v *Vector3) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of v and w.
func (v *Vector3) Dot(w *Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Distance returns the Euclidean distance between v and w.
func (v *Vector3) Distance(w *Vector3) float64 {
	return math.Sqrt(v.DistanceSq(w))
}

// DistanceSq returns the squared Euclidean distance between v and w.
func (v *Vector3) DistanceSq(w *Vector3) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	dz := v.Z - w.Z
	return dx*dx + dy*dy + dz*dz
}

// DistanceChebyshev returns the maximum absolute componentwise difference
// between v and w.
func (v *Vector3) DistanceChebyshev(w *Vector3) float64 {
	return math.Max(math.Abs(v.X-w.X), math.Max(math.Abs(v.Y-w.Y), math.Abs(v.Z-w.Z)))
}

// DistanceManhattan returns the sum of absolute componentwise differences
// between v and w.
func (v *Vector3) DistanceManhattan(w *Vector3) float64 {
	return math.Abs(v.X-w.X) + math.Abs(v.Y-w.Y) + math.Abs(v.Z-w.Z)
}

// DistanceMinkowski returns the Minkowski distance of order p between v
// and w. Orders p <= 0 report ErrDegenerate; p >= 1 gives a true metric.
func (v *Vector3) DistanceMinkowski(w *Vector3, p float64) (float64, error) {
	if p <= 0 {
		return 0, fmt.Errorf("minkowski order %v: %w", p, ErrDegenerate)
	}
	sum := math.Pow(math.Abs(v.X-w.X), p) +
		math.Pow(math.Abs(v.Y-w.Y), p) +
		math.Pow(math.Abs(v.Z-w.Z), p)
	return math.Pow(sum, 1/p), nil
}

// AngleX returns the unsigned angle of v relative to the +x axis, in
// [0, π].
func (v *Vector3) AngleX() float64 {
	return math.Atan2(math.Hypot(v.Y, v.Z), v.X)
}

// AngleY returns the unsigned angle of v relative to the +y axis, in
// [0, π].
func (v *Vector3) AngleY() float64 {
	return math.Atan2(math.Hypot(v.X, v.Z), v.Y)
}

// AngleZ returns the unsigned angle of v relative to the +z axis, in
// [0, π].
func (v *Vector3) AngleZ() float64 {
	return math.Atan2(math.Hypot(v.X, v.Y), v.Z)
}

// AngleBetween returns the unsigned angle between v and w in [0, π]. It
// reports ErrDegenerate when either vector has zero magnitude.
func (v *Vector3) AngleBetween(w *Vector3) (float64, error) {
	mm := v.Magnitude() * w.Magnitude()
	if mm == 0 {
		return 0, fmt.Errorf("angle between zero-magnitude vectors: %w", ErrDegenerate)
	}
	return math.Acos(clampCos(v.Dot(w) / mm)), nil
}

// IsZero reports whether every component is exactly 0.
func (v *Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNaN reports whether any component is NaN.
func (v *Vector3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsInfinite reports whether any component is ±Inf and none is NaN.
func (v *Vector3) IsInfinite() bool {
	if v.IsNaN() {
		return false
	}
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// Equals reports exact componentwise equality with w.
func (v *Vector3) Equals(w *Vector3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// Opposes reports whether w is the exact componentwise negation of v.
func (v *Vector3) Opposes(w *Vector3) bool {
	return v.X == -w.X && v.Y == -w.Y && v.Z == -w.Z
}

// R returns the x component under its color alias.
func (v *Vector3) R() float64 { return v.X }

// G returns the y component under its color alias.
func (v *Vector3) G() float64 { return v.Y }

// B returns the z component under its color alias.
func (v *Vector3) B() float64 { return v.Z }

// Components returns the components in declared order.
func (v *Vector3) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// String implements fmt.Stringer.
func (v *Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
