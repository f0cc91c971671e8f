package main

import (
	"fmt"

	"github.com/philipparndt/govec/pkg/vec"
)

// The evaluators bridge untyped CLI/batch input (component slices) to the
// typed vec API. Dimensionality is taken from the first operand.

func checkOperands(op string, a, b []float64) error {
	if b == nil {
		return fmt.Errorf("%s needs a second operand", op)
	}
	if len(a) != len(b) {
		return fmt.Errorf("operands have %d and %d components: %w", len(a), len(b), vec.ErrShapeMismatch)
	}
	return nil
}

// evalVectorOp applies a vector-valued operation and returns the result
// components. b is nil for unary operations; scalar is the factor for
// scale and t the interpolation parameter for lerp.
func evalVectorOp(op string, a, b []float64, scalar, t float64) ([]float64, error) {
	switch op {
	case "add", "sub", "cross", "project", "lerp":
		if err := checkOperands(op, a, b); err != nil {
			return nil, err
		}
	}
	if op == "cross" && len(a) != 3 {
		return nil, fmt.Errorf("cross is only defined for 3D vectors")
	}

	switch len(a) {
	case 2:
		v := vec.NewVector2(a[0], a[1])
		var w *vec.Vector2
		if b != nil {
			w = vec.NewVector2(b[0], b[1])
		}
		switch op {
		case "add":
			v.Add(w)
		case "sub":
			v.Sub(w)
		case "scale":
			v.Scale(scalar)
		case "normalize":
			v.Normalize()
		case "negate":
			v.Negate()
		case "lerp":
			v.Lerp(w, t)
		case "project":
			v = vec.Project2(v, w)
		default:
			return nil, fmt.Errorf("unknown operation %q", op)
		}
		c := v.Components()
		return c[:], nil

	case 3:
		v := vec.NewVector3(a[0], a[1], a[2])
		var w *vec.Vector3
		if b != nil {
			w = vec.NewVector3(b[0], b[1], b[2])
		}
		switch op {
		case "add":
			v.Add(w)
		case "sub":
			v.Sub(w)
		case "cross":
			v.Cross(w)
		case "scale":
			v.Scale(scalar)
		case "normalize":
			v.Normalize()
		case "negate":
			v.Negate()
		case "lerp":
			v.Lerp(w, t)
		case "project":
			v = vec.Project3(v, w)
		default:
			return nil, fmt.Errorf("unknown operation %q", op)
		}
		c := v.Components()
		return c[:], nil

	case 4:
		v := vec.NewVector4(a[0], a[1], a[2], a[3])
		var w *vec.Vector4
		if b != nil {
			w = vec.NewVector4(b[0], b[1], b[2], b[3])
		}
		switch op {
		case "add":
			v.Add(w)
		case "sub":
			v.Sub(w)
		case "scale":
			v.Scale(scalar)
		case "normalize":
			v.Normalize()
		case "negate":
			v.Negate()
		case "lerp":
			v.Lerp(w, t)
		case "project":
			v = vec.Project4(v, w)
		default:
			return nil, fmt.Errorf("unknown operation %q", op)
		}
		c := v.Components()
		return c[:], nil
	}
	return nil, fmt.Errorf("unsupported dimensionality %d", len(a))
}

// evalDistance computes the named distance metric between a and b; p is
// the Minkowski order.
func evalDistance(metric string, a, b []float64, p float64) (float64, error) {
	if err := checkOperands("distance", a, b); err != nil {
		return 0, err
	}

	switch len(a) {
	case 2:
		v, w := vec.NewVector2(a[0], a[1]), vec.NewVector2(b[0], b[1])
		switch metric {
		case "euclidean":
			return v.Distance(w), nil
		case "sq":
			return v.DistanceSq(w), nil
		case "manhattan":
			return v.DistanceManhattan(w), nil
		case "chebyshev":
			return v.DistanceChebyshev(w), nil
		case "minkowski":
			return v.DistanceMinkowski(w, p)
		}
	case 3:
		v, w := vec.NewVector3(a[0], a[1], a[2]), vec.NewVector3(b[0], b[1], b[2])
		switch metric {
		case "euclidean":
			return v.Distance(w), nil
		case "sq":
			return v.DistanceSq(w), nil
		case "manhattan":
			return v.DistanceManhattan(w), nil
		case "chebyshev":
			return v.DistanceChebyshev(w), nil
		case "minkowski":
			return v.DistanceMinkowski(w, p)
		}
	case 4:
		v, w := vec.NewVector4(a[0], a[1], a[2], a[3]), vec.NewVector4(b[0], b[1], b[2], b[3])
		switch metric {
		case "euclidean":
			return v.Distance(w), nil
		case "sq":
			return v.DistanceSq(w), nil
		case "manhattan":
			return v.DistanceManhattan(w), nil
		case "chebyshev":
			return v.DistanceChebyshev(w), nil
		case "minkowski":
			return v.DistanceMinkowski(w, p)
		}
	}
	return 0, fmt.Errorf("unknown metric %q", metric)
}

// evalDot computes the dot product of a and b.
func evalDot(a, b []float64) (float64, error) {
	if err := checkOperands("dot", a, b); err != nil {
		return 0, err
	}
	switch len(a) {
	case 2:
		return vec.NewVector2(a[0], a[1]).Dot(vec.NewVector2(b[0], b[1])), nil
	case 3:
		return vec.NewVector3(a[0], a[1], a[2]).Dot(vec.NewVector3(b[0], b[1], b[2])), nil
	case 4:
		return vec.NewVector4(a[0], a[1], a[2], a[3]).Dot(vec.NewVector4(b[0], b[1], b[2], b[3])), nil
	}
	return 0, fmt.Errorf("unsupported dimensionality %d", len(a))
}

// evalAngleBetween computes the angle between a and b: signed in (-π, π]
// for 2D, unsigned in [0, π] for 3D and 4D.
func evalAngleBetween(a, b []float64) (float64, error) {
	if err := checkOperands("angle", a, b); err != nil {
		return 0, err
	}
	switch len(a) {
	case 2:
		return vec.NewVector2(a[0], a[1]).AngleBetween(vec.NewVector2(b[0], b[1])), nil
	case 3:
		return vec.NewVector3(a[0], a[1], a[2]).AngleBetween(vec.NewVector3(b[0], b[1], b[2]))
	case 4:
		return vec.NewVector4(a[0], a[1], a[2], a[3]).AngleBetween(vec.NewVector4(b[0], b[1], b[2], b[3]))
	}
	return 0, fmt.Errorf("unsupported dimensionality %d", len(a))
}

// evalAxisAngles returns the per-axis angles of a, labeled in declared
// component order.
func evalAxisAngles(a []float64) ([]string, []float64, error) {
	switch len(a) {
	case 2:
		v := vec.NewVector2(a[0], a[1])
		return []string{"x", "y"}, []float64{v.AngleX(), v.AngleY()}, nil
	case 3:
		v := vec.NewVector3(a[0], a[1], a[2])
		return []string{"x", "y", "z"}, []float64{v.AngleX(), v.AngleY(), v.AngleZ()}, nil
	case 4:
		v := vec.NewVector4(a[0], a[1], a[2], a[3])
		return []string{"x", "y", "z", "w"}, []float64{v.AngleX(), v.AngleY(), v.AngleZ(), v.AngleW()}, nil
	}
	return nil, nil, fmt.Errorf("unsupported dimensionality %d", len(a))
}
