// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"cogentcore.org/core/math32"
)

// Funcs are the built-in functions that can be called by name.
type Funcs int32 //enums:enum

const (
	Sin Funcs = iota
	Cos
	Tan
	Abs
	Sqrt
	Floor
	Ceil
	Min
	Max
	Pow

	// ToFloat converts to float, componentwise.
	ToFloat

	// ToInt converts to int, componentwise, truncating.
	ToInt

	// ToUint converts to uint, componentwise, truncating.
	ToUint
)

var funcNames = map[string]Funcs{
	"sin": Sin, "cos": Cos, "tan": Tan, "abs": Abs, "sqrt": Sqrt,
	"floor": Floor, "ceil": Ceil, "min": Min, "max": Max, "pow": Pow,
	"float": ToFloat, "int": ToInt, "uint": ToUint,
}

// LookupFunc returns the function of the given name, if any.
func LookupFunc(name string) (Funcs, bool) {
	fn, ok := funcNames[name]
	return fn, ok
}

// Name returns the name the function is called by.
func (fn Funcs) Name() string {
	for nm, f := range funcNames {
		if f == fn {
			return nm
		}
	}
	return fn.String()
}

// NumArgs returns the number of arguments the function takes.
func (fn Funcs) NumArgs() int {
	switch fn {
	case Min, Max, Pow:
		return 2
	}
	return 1
}

// IsConversion returns true for the type conversion functions.
func (fn Funcs) IsConversion() bool {
	return fn >= ToFloat
}

func (fn Funcs) resultType(arg Type) Type {
	if arg.Matrix || !arg.IsValid() {
		return Type{}
	}
	switch fn {
	case ToFloat:
		return Vec(Float, arg.N)
	case ToInt:
		return Vec(Int, arg.N)
	case ToUint:
		return Vec(Uint, arg.N)
	}
	return arg
}

// floatFunc1 returns the componentwise float function of a one
// argument built-in.
func floatFunc1(fn Funcs) func(float32) float32 {
	switch fn {
	case Sin:
		return math32.Sin
	case Cos:
		return math32.Cos
	case Tan:
		return math32.Tan
	case Abs:
		return math32.Abs
	case Sqrt:
		return math32.Sqrt
	case Floor:
		return math32.Floor
	case Ceil:
		return math32.Ceil
	}
	return nil
}

func floatFunc2(fn Funcs) func(a, b float32) float32 {
	switch fn {
	case Min:
		return math32.Min
	case Max:
		return math32.Max
	case Pow:
		return math32.Pow
	}
	return nil
}

// call evaluates fn on already evaluated arguments.
func call(n *Node, fn Funcs, args []Value) (Value, error) {
	if len(args) != fn.NumArgs() {
		return Value{}, errorf(n, "%s expects %d arguments, got %d", fn.Name(), fn.NumArgs(), len(args))
	}
	a := args[0]
	if a.Type.Matrix || !a.Type.IsValid() || a.Type.Kind == Bool {
		return Value{}, errorf(n, "%s expected numeric scalar or vector, got %s", fn.Name(), a.Type)
	}
	if fn.IsConversion() {
		r := Value{Type: fn.resultType(a.Type)}
		for i := range a.Type.N {
			switch r.Type.Kind {
			case Float:
				r.F[i] = float32(a.Float64(i))
			case Int:
				r.I[i] = int32(a.Int64(i))
			case Uint:
				r.U[i] = uint32(a.Int64(i))
			}
		}
		return r, nil
	}
	if fn.NumArgs() == 2 {
		b := args[1]
		if b.Type != a.Type {
			return Value{}, errorf(n, "%s expected %s, got %s", fn.Name(), a.Type, b.Type)
		}
		if a.Type.Kind != Float {
			if fn == Pow {
				return Value{}, errorf(n, "pow expected float, got %s", a.Type)
			}
			return minMaxInt(fn, a, b), nil
		}
		f := floatFunc2(fn)
		r := Value{Type: a.Type}
		for i := range a.Type.N {
			r.F[i] = f(a.F[i], b.F[i])
		}
		return r, nil
	}
	if a.Type.Kind != Float {
		switch fn {
		case Abs:
			r := a
			for i := range a.Type.N {
				if r.I[i] < 0 {
					r.I[i] = -r.I[i]
				}
			}
			return r, nil
		case Floor, Ceil:
			return a, nil
		}
		return Value{}, errorf(n, "%s expected float, got %s", fn.Name(), a.Type)
	}
	f := floatFunc1(fn)
	r := Value{Type: a.Type}
	for i := range a.Type.N {
		r.F[i] = f(a.F[i])
	}
	return r, nil
}

func minMaxInt(fn Funcs, a, b Value) Value {
	r := Value{Type: a.Type}
	for i := range a.Type.N {
		var takeB bool
		if a.Type.Kind == Uint {
			takeB = (b.U[i] < a.U[i]) == (fn == Min)
		} else {
			takeB = (b.I[i] < a.I[i]) == (fn == Min)
		}
		if takeB {
			r.I[i], r.U[i] = b.I[i], b.U[i]
		} else {
			r.I[i], r.U[i] = a.I[i], a.U[i]
		}
	}
	return r
}

// LookAtMatrix returns the view transform for an eye at from looking
// at to, with world up (0, 1, 0).  The rows are the right, up and
// forward axes, each followed by -dot(axis, from), and a last row
// of (0, 0, 0, 1), for column vectors.
func LookAtMatrix(from, to math32.Vector3) math32.Matrix4 {
	fwd := to.Sub(from).Normal()
	right := math32.Vec3(0, 1, 0).Cross(fwd).Normal()
	up := fwd.Cross(right)
	v := Value{Type: Float4x4}
	for r, axis := range []math32.Vector3{right, up, fwd} {
		v.SetAt(r, 0, axis.X)
		v.SetAt(r, 1, axis.Y)
		v.SetAt(r, 2, axis.Z)
		v.SetAt(r, 3, -axis.Dot(from))
	}
	v.SetAt(3, 3, 1)
	return v.Matrix()
}

// ProjectionMatrix returns the symmetric perspective transform for the
// given vertical field of view in degrees, aspect ratio (width / height)
// and near and far planes, mapping depth to [0, 1].
func ProjectionMatrix(fovDegrees, aspect, zn, zf float32) math32.Matrix4 {
	ys := 1 / math32.Tan(math32.DegToRad(fovDegrees)/2)
	xs := ys / aspect
	v := Value{Type: Float4x4}
	v.SetAt(0, 0, xs)
	v.SetAt(1, 1, ys)
	v.SetAt(2, 2, zf/(zf-zn))
	v.SetAt(2, 3, -zn*zf/(zf-zn))
	v.SetAt(3, 2, 1)
	return v.Matrix()
}

// matMul returns the matrix product a * b.
func matMul(a, b Value) Value {
	r := Value{Type: Float4x4}
	for i := range 4 {
		for j := range 4 {
			var s float32
			for k := range 4 {
				s += a.At(i, k) * b.At(k, j)
			}
			r.SetAt(i, j, s)
		}
	}
	return r
}

// matVec returns the matrix product m * v for a float4 column vector.
func matVec(m, v Value) Value {
	mat := m.Matrix()
	p := math32.Vec4(v.F[0], v.F[1], v.F[2], v.F[3]).MulMatrix4(&mat)
	return FloatVec(p.X, p.Y, p.Z, p.W)
}
