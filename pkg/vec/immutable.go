package vec

import "fmt"

// The immutable types trade construction cost for repeated-read speed:
// every derived value (magnitude, axis angles, the structural predicates)
// is computed exactly once, when the value is built. The fields are
// unexported, so writes are rejected at compile time and instances are
// safe to share between goroutines.

// Immutable2 is a read-only 2D vector with precomputed derived values.
type Immutable2 struct {
	x, y        float64
	magnitude   float64
	magnitudeSq float64
	angleX      float64
	angleY      float64
	zero        bool
	nan         bool
	inf         bool
}

// NewImmutable2 creates a read-only 2D vector.
func NewImmutable2(x, y float64) *Immutable2 {
	v := Vector2{X: x, Y: y}
	return &Immutable2{
		x:           x,
		y:           y,
		magnitude:   v.Magnitude(),
		magnitudeSq: v.MagnitudeSq(),
		angleX:      v.AngleX(),
		angleY:      v.AngleY(),
		zero:        v.IsZero(),
		nan:         v.IsNaN(),
		inf:         v.IsInfinite(),
	}
}

func (v *Immutable2) X() float64 { return v.x }
func (v *Immutable2) Y() float64 { return v.y }

// Magnitude returns the Euclidean length, computed at construction.
func (v *Immutable2) Magnitude() float64 { return v.magnitude }

// MagnitudeSq returns the squared Euclidean length, computed at
// construction.
func (v *Immutable2) MagnitudeSq() float64 { return v.magnitudeSq }

// AngleX returns the angle relative to the +x axis in [0, 2π).
func (v *Immutable2) AngleX() float64 { return v.angleX }

// AngleY returns the angle relative to the +y axis in [0, 2π).
func (v *Immutable2) AngleY() float64 { return v.angleY }

func (v *Immutable2) IsZero() bool     { return v.zero }
func (v *Immutable2) IsNaN() bool      { return v.nan }
func (v *Immutable2) IsInfinite() bool { return v.inf }

// Mutable returns a mutable copy of v.
func (v *Immutable2) Mutable() *Vector2 {
	return &Vector2{X: v.x, Y: v.y}
}

// Components returns the components in declared order.
func (v *Immutable2) Components() [2]float64 {
	return [2]float64{v.x, v.y}
}

// String implements fmt.Stringer.
func (v *Immutable2) String() string {
	return fmt.Sprintf("(%g, %g)", v.x, v.y)
}

// Immutable3 is a read-only 3D vector with precomputed derived values.
type Immutable3 struct {
	x, y, z     float64
	magnitude   float64
	magnitudeSq float64
	angleX      float64
	angleY      float64
	angleZ      float64
	zero        bool
	nan         bool
	inf         bool
}

// NewImmutable3 creates a read-only 3D vector.
func NewImmutable3(x, y, z float64) *Immutable3 {
	v := Vector3{X: x, Y: y, Z: z}
	return &Immutable3{
		x:           x,
		y:           y,
		z:           z,
		magnitude:   v.Magnitude(),
		magnitudeSq: v.MagnitudeSq(),
		angleX:      v.AngleX(),
		angleY:      v.AngleY(),
		angleZ:      v.AngleZ(),
		zero:        v.IsZero(),
		nan:         v.IsNaN(),
		inf:         v.IsInfinite(),
	}
}

func (v *Immutable3) X() float64 { return v.x }
func (v *Immutable3) Y() float64 { return v.y }
func (v *Immutable3) Z() float64 { return v.z }

// R, G and B return the components under their color aliases.
func (v *Immutable3) R() float64 { return v.x }
func (v *Immutable3) G() float64 { return v.y }
func (v *Immutable3) B() float64 { return v.z }

// Magnitude returns the Euclidean length, computed at construction.
func (v *Immutable3) Magnitude() float64 { return v.magnitude }

// MagnitudeSq returns the squared Euclidean length, computed at
// construction.
func (v *Immutable3) MagnitudeSq() float64 { return v.magnitudeSq }

// AngleX returns the unsigned angle relative to the +x axis in [0, π].
func (v *Immutable3) AngleX() float64 { return v.angleX }

// AngleY returns the unsigned angle relative to the +y axis in [0, π].
func (v *Immutable3) AngleY() float64 { return v.angleY }

// AngleZ returns the unsigned angle relative to the +z axis in [0, π].
func (v *Immutable3) AngleZ() float64 { return v.angleZ }

func (v *Immutable3) IsZero() bool     { return v.zero }
func (v *Immutable3) IsNaN() bool      { return v.nan }
func (v *Immutable3) IsInfinite() bool { return v.inf }

// Mutable returns a mutable copy of v.
func (v *Immutable3) Mutable() *Vector3 {
	return &Vector3{X: v.x, Y: v.y, Z: v.z}
}

// Components returns the components in declared order.
func (v *Immutable3) Components() [3]float64 {
	return [3]float64{v.x, v.y, v.z}
}

// String implements fmt.Stringer.
func (v *Immutable3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}

// Immutable4 is a read-only 4D vector with precomputed derived values.
type Immutable4 struct {
	x, y, z, w  float64
	magnitude   float64
	magnitudeSq float64
	angleX      float64
	angleY      float64
	angleZ      float64
	angleW      float64
	zero        bool
	nan         bool
	inf         bool
}

// NewImmutable4 creates a read-only 4D vector.
func NewImmutable4(x, y, z, w float64) *Immutable4 {
	v := Vector4{X: x, Y: y, Z: z, W: w}
	return &Immutable4{
		x:           x,
		y:           y,
		z:           z,
		w:           w,
		magnitude:   v.Magnitude(),
		magnitudeSq: v.MagnitudeSq(),
		angleX:      v.AngleX(),
		angleY:      v.AngleY(),
		angleZ:      v.AngleZ(),
		angleW:      v.AngleW(),
		zero:        v.IsZero(),
		nan:         v.IsNaN(),
		inf:         v.IsInfinite(),
	}
}

func (v *Immutable4) X() float64 { return v.x }
func (v *Immutable4) Y() float64 { return v.y }
func (v *Immutable4) Z() float64 { return v.z }
func (v *Immutable4) W() float64 { return v.w }

// R, G, B and A return the components under their color aliases.
func (v *Immutable4) R() float64 { return v.x }
func (v *Immutable4) G() float64 { return v.y }
func (v *Immutable4) B() float64 { return v.z }
func (v *Immutable4) A() float64 { return v.w }

// Magnitude returns the Euclidean length, computed at construction.
func (v *Immutable4) Magnitude() float64 { return v.magnitude }

// MagnitudeSq returns the squared Euclidean length, computed at
// construction.
func (v *Immutable4) MagnitudeSq() float64 { return v.magnitudeSq }

// AngleX returns the unsigned angle relative to the +x axis in [0, π].
func (v *Immutable4) AngleX() float64 { return v.angleX }

// AngleY returns the unsigned angle relative to the +y axis in [0, π].
func (v *Immutable4) AngleY() float64 { return v.angleY }

// AngleZ returns the unsigned angle relative to the +z axis in [0, π].
func (v *Immutable4) AngleZ() float64 { return v.angleZ }

// AngleW returns the unsigned angle relative to the +w axis in [0, π].
func (v *Immutable4) AngleW() float64 { return v.angleW }

func (v *Immutable4) IsZero() bool     { return v.zero }
func (v *Immutable4) IsNaN() bool      { return v.nan }
func (v *Immutable4) IsInfinite() bool { return v.inf }

// Mutable returns a mutable copy of v.
func (v *Immutable4) Mutable() *Vector4 {
	return &Vector4{X: v.x, Y: v.y, Z: v.z, W: v.w}
}

// Components returns the components in declared order.
func (v *Immutable4) Components() [4]float64 {
	return [4]float64{v.x, v.y, v.z, v.w}
}

// String implements fmt.Stringer.
func (v *Immutable4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.x, v.y, v.z, v.w)
}
