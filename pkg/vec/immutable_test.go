package vec

import (
	"math"
	"testing"
)

func TestImmutable2(t *testing.T) {
	v := NewImmutable2(3, 4)

	if v.X() != 3 || v.Y() != 4 {
		t.Errorf("components failed: got (%v, %v)", v.X(), v.Y())
	}
	if math.Abs(v.Magnitude()-5) > tol {
		t.Errorf("Magnitude failed: expected 5, got %v", v.Magnitude())
	}
	if math.Abs(v.MagnitudeSq()-25) > tol {
		t.Errorf("MagnitudeSq failed: expected 25, got %v", v.MagnitudeSq())
	}
	if want := NewVector2(3, 4).AngleX(); math.Abs(v.AngleX()-want) > tol {
		t.Errorf("AngleX failed: expected %v, got %v", want, v.AngleX())
	}
	if v.IsZero() || v.IsNaN() || v.IsInfinite() {
		t.Errorf("predicates failed for %v", v)
	}
}

func TestImmutable2MutableCopy(t *testing.T) {
	v := NewImmutable2(1, 2)
	m := v.Mutable()
	m.Scale(10)

	// The mutable copy is detached: the immutable value is unaffected.
	if v.X() != 1 || v.Y() != 2 {
		t.Errorf("Mutable failed: immutable changed to %v", v)
	}
	if !m.Equals(NewVector2(10, 20)) {
		t.Errorf("Mutable failed: expected (10, 20), got %v", m)
	}
}

func TestImmutable3(t *testing.T) {
	v := NewImmutable3(0, 3, 4)

	if math.Abs(v.Magnitude()-5) > tol {
		t.Errorf("Magnitude failed: expected 5, got %v", v.Magnitude())
	}
	if v.R() != 0 || v.G() != 3 || v.B() != 4 {
		t.Errorf("color aliases failed: got (%v, %v, %v)", v.R(), v.G(), v.B())
	}
	if want := NewVector3(0, 3, 4).AngleZ(); math.Abs(v.AngleZ()-want) > tol {
		t.Errorf("AngleZ failed: expected %v, got %v", want, v.AngleZ())
	}
	if v.Components() != [3]float64{0, 3, 4} {
		t.Errorf("Components failed: got %v", v.Components())
	}
}

func TestImmutable4(t *testing.T) {
	v := NewImmutable4(1, 1, 1, 1)

	if math.Abs(v.Magnitude()-2) > tol {
		t.Errorf("Magnitude failed: expected 2, got %v", v.Magnitude())
	}
	if v.A() != 1 {
		t.Errorf("alias A failed: got %v", v.A())
	}
	if want := NewVector4(1, 1, 1, 1).AngleW(); math.Abs(v.AngleW()-want) > tol {
		t.Errorf("AngleW failed: expected %v, got %v", want, v.AngleW())
	}

	m := v.Mutable()
	m.Zero()
	if v.IsZero() {
		t.Error("Mutable failed: immutable affected by copy mutation")
	}
}

func TestImmutableZeroAndNaN(t *testing.T) {
	z := NewImmutable3(0, 0, 0)
	if !z.IsZero() || z.Magnitude() != 0 {
		t.Errorf("zero predicate failed: IsZero=%v, magnitude=%v", z.IsZero(), z.Magnitude())
	}

	n := NewImmutable4(math.NaN(), 0, 0, math.Inf(1))
	if !n.IsNaN() {
		t.Error("IsNaN failed: expected true")
	}
	if n.IsInfinite() {
		t.Error("IsInfinite failed: NaN takes precedence")
	}
	if !math.IsNaN(n.Magnitude()) {
		t.Errorf("Magnitude failed: expected NaN, got %v", n.Magnitude())
	}
}
