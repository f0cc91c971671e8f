package vec

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))
	if !v.Equals(NewVector3(5, 7, 9)) {
		t.Errorf("Add failed: expected (5, 7, 9), got %v", v)
	}

	s := Add3(NewVector3(1, 2, 3), NewVector3(4, 5, 6))
	if !s.Equals(NewVector3(5, 7, 9)) {
		t.Errorf("Add3 failed: expected (5, 7, 9), got %v", s)
	}
}

func TestVector3Sub(t *testing.T) {
	v := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))
	if !v.Equals(NewVector3(4, 5, 6)) {
		t.Errorf("Sub failed: expected (4, 5, 6), got %v", v)
	}
}

func TestVector3Cross(t *testing.T) {
	v := NewVector3(0, 1, 0).Cross(NewVector3(0, 0, 1))
	if !v.Equals(NewVector3(1, 0, 0)) {
		t.Errorf("Cross failed: expected (1, 0, 0), got %v", v)
	}

	s := Cross3(NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if !s.Equals(NewVector3(0, 0, 1)) {
		t.Errorf("Cross3 failed: expected (0, 0, 1), got %v", s)
	}

	// Parallel and antiparallel inputs give the zero vector.
	if got := Cross3(NewVector3(2, 4, 6), NewVector3(1, 2, 3)); !got.IsZero() {
		t.Errorf("Cross3 failed: expected zero for parallel vectors, got %v", got)
	}
	if got := Cross3(NewVector3(1, 2, 3), NewVector3(-1, -2, -3)); !got.IsZero() {
		t.Errorf("Cross3 failed: expected zero for antiparallel vectors, got %v", got)
	}
}

func TestVector3CrossOrthogonality(t *testing.T) {
	SetRandSource(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		v := Random3().Scale(1 + 9*rng.Float64())
		w := Random3().Scale(1 + 9*rng.Float64())
		c := Cross3(v, w)

		if math.Abs(c.Dot(v)) > 1e-9 || math.Abs(c.Dot(w)) > 1e-9 {
			t.Fatalf("Cross3 failed: %v not orthogonal to %v and %v", c, v, w)
		}
	}
}

func TestVector3Distances(t *testing.T) {
	v := NewVector3(1, 2, 3)
	w := NewVector3(4, 6, 3)

	if got := v.Distance(w); math.Abs(got-5) > tol {
		t.Errorf("Distance failed: expected 5, got %v", got)
	}
	if got := v.DistanceSq(w); math.Abs(got-25) > tol {
		t.Errorf("DistanceSq failed: expected 25, got %v", got)
	}
	if got := v.DistanceManhattan(w); math.Abs(got-7) > tol {
		t.Errorf("DistanceManhattan failed: expected 7, got %v", got)
	}
	if got := v.DistanceChebyshev(w); math.Abs(got-4) > tol {
		t.Errorf("DistanceChebyshev failed: expected 4, got %v", got)
	}

	d, err := v.DistanceMinkowski(w, 3)
	if err != nil {
		t.Fatalf("DistanceMinkowski failed: unexpected error %v", err)
	}
	want := math.Pow(27+64, 1.0/3)
	if math.Abs(d-want) > tol {
		t.Errorf("DistanceMinkowski p=3 failed: expected %v, got %v", want, d)
	}
	if _, err := v.DistanceMinkowski(w, 0); !errors.Is(err, ErrDegenerate) {
		t.Errorf("DistanceMinkowski p=0 failed: expected ErrDegenerate, got %v", err)
	}
}

func TestVector3AxisAngles(t *testing.T) {
	v := NewVector3(1, 0, 0)
	if got := v.AngleX(); math.Abs(got) > tol {
		t.Errorf("AngleX failed: expected 0, got %v", got)
	}
	if got := v.AngleY(); math.Abs(got-math.Pi/2) > tol {
		t.Errorf("AngleY failed: expected π/2, got %v", got)
	}
	if got := v.AngleZ(); math.Abs(got-math.Pi/2) > tol {
		t.Errorf("AngleZ failed: expected π/2, got %v", got)
	}

	// Unsigned: the opposite direction gives π, never a negative angle.
	if got := NewVector3(-1, 0, 0).AngleX(); math.Abs(got-math.Pi) > tol {
		t.Errorf("AngleX failed: expected π, got %v", got)
	}
	if got := NewVector3(0, 0, -2).AngleZ(); math.Abs(got-math.Pi) > tol {
		t.Errorf("AngleZ failed: expected π, got %v", got)
	}
}

func TestVector3AngleBetween(t *testing.T) {
	got, err := NewVector3(1, 0, 0).AngleBetween(NewVector3(0, 1, 0))
	if err != nil {
		t.Fatalf("AngleBetween failed: unexpected error %v", err)
	}
	if math.Abs(got-math.Pi/2) > tol {
		t.Errorf("AngleBetween failed: expected π/2, got %v", got)
	}

	// Parallel vectors: the clamped cosine keeps acos in domain.
	same, err := NewVector3(1, 2, 3).AngleBetween(NewVector3(2, 4, 6))
	if err != nil {
		t.Fatalf("AngleBetween failed: unexpected error %v", err)
	}
	if math.Abs(same) > tol {
		t.Errorf("AngleBetween failed: expected 0 for parallel vectors, got %v", same)
	}

	if _, err := NewVector3(0, 0, 0).AngleBetween(NewVector3(1, 0, 0)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("AngleBetween failed: expected ErrDegenerate for zero vector, got %v", err)
	}
}

func TestVector3RotateX(t *testing.T) {
	// RotateX moves +y toward +z.
	v := NewVector3(0, 1, 0).RotateX(math.Pi / 2)
	if v.Distance(NewVector3(0, 0, 1)) > tol {
		t.Errorf("RotateX failed: expected (0, 0, 1), got %v", v)
	}
}

func TestVector3RotateY(t *testing.T) {
	// RotateY moves +x toward +z.
	v := NewVector3(1, 0, 0).RotateY(math.Pi / 2)
	if v.Distance(NewVector3(0, 0, 1)) > tol {
		t.Errorf("RotateY failed: expected (0, 0, 1), got %v", v)
	}
}

func TestVector3RotateZ(t *testing.T) {
	// RotateZ moves +x toward +y.
	v := NewVector3(1, 0, 0).RotateZ(math.Pi / 2)
	if v.Distance(NewVector3(0, 1, 0)) > tol {
		t.Errorf("RotateZ failed: expected (0, 1, 0), got %v", v)
	}
}

func TestVector3RotationComposition(t *testing.T) {
	v := NewVector3(1, 2, 3)
	v.RotateX(0.4).RotateY(1.1).RotateZ(-0.3)
	v.RotateZ(0.3).RotateY(-1.1).RotateX(-0.4)
	if v.Distance(NewVector3(1, 2, 3)) > 1e-9 {
		t.Errorf("rotation composition failed: expected (1, 2, 3), got %v", v)
	}
}

func TestVector3FromCylindrical(t *testing.T) {
	v := FromCylindrical(2, math.Pi/2, 5)
	if v.Distance(NewVector3(0, 2, 5)) > tol {
		t.Errorf("FromCylindrical failed: expected (0, 2, 5), got %v", v)
	}
}

func TestVector3FromSpherical(t *testing.T) {
	// theta from the +z axis, phi from the +x axis in the xy-plane.
	pole := FromSpherical(3, 0, 0)
	if pole.Distance(NewVector3(0, 0, 3)) > tol {
		t.Errorf("FromSpherical failed: expected (0, 0, 3), got %v", pole)
	}

	equator := FromSpherical(2, math.Pi/2, math.Pi/2)
	if equator.Distance(NewVector3(0, 2, 0)) > tol {
		t.Errorf("FromSpherical failed: expected (0, 2, 0), got %v", equator)
	}

	v := FromSpherical(7, 1.1, 2.3)
	if math.Abs(v.Magnitude()-7) > tol {
		t.Errorf("FromSpherical failed: expected magnitude 7, got %v", v.Magnitude())
	}
	if math.Abs(v.AngleZ()-1.1) > tol {
		t.Errorf("FromSpherical failed: expected polar angle 1.1, got %v", v.AngleZ())
	}
}

func TestVector3ColorAliases(t *testing.T) {
	v := NewVector3(0.1, 0.5, 0.9)
	if v.R() != v.X || v.G() != v.Y || v.B() != v.Z {
		t.Errorf("color aliases failed for %v: got (%v, %v, %v)", v, v.R(), v.G(), v.B())
	}
}

func TestVector3Random(t *testing.T) {
	SetRandSource(rand.NewSource(3))

	// Marsaglia sampling always lands on the sphere.
	for i := 0; i < 1000; i++ {
		u := Random3()
		if math.Abs(u.Magnitude()-1) > tol {
			t.Fatalf("Random3 failed: expected unit magnitude, got %v", u.Magnitude())
		}
	}

	// Uniformity: the mean of many unit samples is close to the origin.
	var sum Vector3
	const n = 20000
	for i := 0; i < n; i++ {
		sum.Add(Random3())
	}
	sum.Scale(1.0 / n)
	if sum.Magnitude() > 0.03 {
		t.Errorf("Random3 failed: sample mean %v too far from origin", &sum)
	}

	// The instance form keeps the magnitude.
	v := NewVector3(0, 3, 4)
	if v.Random(); math.Abs(v.Magnitude()-5) > tol {
		t.Errorf("Random failed: magnitude changed to %v", v.Magnitude())
	}
}

func TestVector3LerpSetComponents(t *testing.T) {
	v := NewVector3(0, 0, 0).Lerp(NewVector3(2, 4, 6), 0.5)
	if !v.Equals(NewVector3(1, 2, 3)) {
		t.Errorf("Lerp failed: expected (1, 2, 3), got %v", v)
	}

	if err := v.SetComponents([]float64{7, 8, 9}); err != nil {
		t.Fatalf("SetComponents failed: unexpected error %v", err)
	}
	if !v.Equals(NewVector3(7, 8, 9)) {
		t.Errorf("SetComponents failed: expected (7, 8, 9), got %v", v)
	}
	if err := v.SetComponents([]float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("SetComponents failed: expected ErrShapeMismatch, got %v", err)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := NewVector3(0, 0, 0).Normalize()
	if !v.IsZero() {
		t.Errorf("Normalize failed: expected zero vector to stay zero, got %v", v)
	}
}

func TestVector3Project(t *testing.T) {
	got := Project3(NewVector3(2, 3, 4), NewVector3(0, 0, 2))
	if got.Distance(NewVector3(0, 0, 4)) > tol {
		t.Errorf("Project3 failed: expected (0, 0, 4), got %v", got)
	}
	if z := Project3(NewVector3(1, 1, 1), NewVector3(0, 0, 0)); !z.IsZero() {
		t.Errorf("Project3 failed: expected zero vector, got %v", z)
	}
}

func TestVector3Components(t *testing.T) {
	if got := NewVector3(1, 2, 3).Components(); got != [3]float64{1, 2, 3} {
		t.Errorf("Components failed: expected [1 2 3], got %v", got)
	}
}
