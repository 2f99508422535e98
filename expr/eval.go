// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/rdl/token"
)

// Context is the per-frame input to evaluation.
type Context struct {
	// Time is the elapsed time in seconds.
	Time float32

	// DisplaySize is the display size in pixels.
	DisplaySize [2]int32

	// Tunables are the tunable values, indexed by [Tunable.Index].
	Tunables []*Tunable
}

// Error is an evaluation type error at the position of the failing node.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s (offset %d): %s", e.Pos, e.Pos.Off, e.Msg)
}

func errorf(n *Node, format string, args ...any) *Error {
	return &Error{Pos: n.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Eval evaluates the expression tree rooted at n in the given context.
// Evaluation has no side effects: children are evaluated first, and
// tunables are only read.
func Eval(n *Node, ctx *Context) (Value, error) {
	var args []Value
	if len(n.Args) > 0 {
		args = make([]Value, len(n.Args))
		for i, a := range n.Args {
			v, err := Eval(a, ctx)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
	}
	switch n.Kind {
	case Literal:
		return n.Value, nil
	case Vector:
		return evalVector(n, args)
	case Subscript:
		x := args[0]
		if !x.Type.IsVector() {
			return Value{}, errorf(n, "subscript expected vector, got %s", x.Type)
		}
		if n.Index < 0 || n.Index >= x.Type.N {
			return Value{}, errorf(n, "subscript %d out of range for %s", n.Index, x.Type)
		}
		return x.Component(n.Index), nil
	case Negate:
		return negate(n, args[0])
	case Binary:
		return binaryOp(n, args[0], args[1])
	case Time:
		return FloatValue(ctx.Time), nil
	case DisplaySize:
		return IntVec(ctx.DisplaySize[0], ctx.DisplaySize[1]), nil
	case LookAt:
		f3 := Vec(Float, 3)
		for _, a := range args {
			if a.Type != f3 {
				return Value{}, errorf(n, "LookAt expected %s, got %s", f3, a.Type)
			}
		}
		from := math32.Vec3(args[0].F[0], args[0].F[1], args[0].F[2])
		to := math32.Vec3(args[1].F[0], args[1].F[1], args[1].F[2])
		return MatrixValue(LookAtMatrix(from, to)), nil
	case Projection:
		var p [4]float32
		for i, a := range args {
			if !a.Type.IsScalar() || a.Type.Kind == Bool {
				return Value{}, errorf(n, "Projection expected float, got %s", a.Type)
			}
			p[i] = float32(a.Float64(0))
		}
		return MatrixValue(ProjectionMatrix(p[0], p[1], p[2], p[3])), nil
	case TunableRef:
		if ctx == nil || n.Index >= len(ctx.Tunables) || ctx.Tunables[n.Index] == nil {
			return Value{}, errorf(n, "tunable %s has no value", n.Name)
		}
		return ctx.Tunables[n.Index].Value, nil
	case Call:
		return call(n, n.Func, args)
	}
	return Value{}, errorf(n, "invalid expression kind %s", n.Kind)
}

func evalVector(n *Node, elems []Value) (Value, error) {
	if len(elems) == 0 {
		return Value{}, errorf(n, "empty vector")
	}
	et := elems[0].Type
	for _, e := range elems[1:] {
		if e.Type != et {
			return Value{}, errorf(n, "vector element expected %s, got %s", et, e.Type)
		}
	}
	f4 := Vec(Float, 4)
	switch {
	case et == f4 && len(elems) == 4:
		r := Value{Type: Float4x4}
		for row, e := range elems {
			for col := range 4 {
				r.SetAt(row, col, e.F[col])
			}
		}
		return r, nil
	case !et.IsScalar():
		return Value{}, errorf(n, "vector element expected scalar, got %s", et)
	case len(elems) < 2 || len(elems) > 4:
		return Value{}, errorf(n, "vector expected 2 to 4 components, got %d", len(elems))
	}
	r := Value{Type: Vec(et.Kind, len(elems))}
	for i, e := range elems {
		r.F[i], r.I[i], r.U[i] = e.F[0], e.I[0], e.U[0]
	}
	return r, nil
}

func negate(n *Node, x Value) (Value, error) {
	if !x.Type.IsValid() || x.Type.Kind == Bool {
		return Value{}, errorf(n, "negate expected numeric, got %s", x.Type)
	}
	r := x
	for i := range x.Type.Components() {
		switch x.Type.Kind {
		case Float:
			r.F[i] = -x.F[i]
		case Uint:
			r.U[i] = -x.U[i]
		default:
			r.I[i] = -x.I[i]
		}
	}
	return r, nil
}

// BinaryType returns the result type of op applied to operands
// of types a and b.  Operands must have identical types, except that
// a scalar may multiply or divide a vector of the same kind, and a
// matrix may multiply a float4.
func BinaryType(op BinaryOps, a, b Type) (Type, error) {
	if !a.IsValid() || !b.IsValid() {
		return Type{}, nil
	}
	if a.Kind == Bool || b.Kind == Bool {
		return Type{}, fmt.Errorf("operator %s expected numeric, got %s", op.Text(), BoolType)
	}
	switch {
	case a.Matrix && b == Vec(Float, 4) && op == Mul:
		return b, nil
	case a.Matrix && b.Matrix:
		if op == Div || op == Mod {
			return Type{}, fmt.Errorf("operator %s expected %s, got %s", op.Text(), FloatType, a)
		}
		return a, nil
	case a == b:
		return a, nil
	case a.Kind == b.Kind && (op == Mul || op == Div) && !a.Matrix && !b.Matrix:
		if a.IsScalar() {
			return b, nil
		}
		if b.IsScalar() {
			return a, nil
		}
	}
	return Type{}, fmt.Errorf("operator %s expected %s, got %s", op.Text(), a, b)
}

func binaryOp(n *Node, a, b Value) (Value, error) {
	rt, err := BinaryType(n.Op, a.Type, b.Type)
	if err != nil {
		return Value{}, &Error{Pos: n.Pos, Msg: err.Error()}
	}
	if !rt.IsValid() {
		return Value{}, errorf(n, "operator %s expected %s, got %s", n.Op.Text(), a.Type, b.Type)
	}
	switch {
	case a.Type.Matrix && b.Type.Matrix && n.Op == Mul:
		return matMul(a, b), nil
	case a.Type.Matrix && !b.Type.Matrix:
		return matVec(a, b), nil
	}
	r := Value{Type: rt}
	for i := range rt.Components() {
		ai, bi := i, i
		if a.Type.IsScalar() && !rt.IsScalar() {
			ai = 0
		}
		if b.Type.IsScalar() && !rt.IsScalar() {
			bi = 0
		}
		switch rt.Kind {
		case Float:
			r.F[i] = floatOp(n.Op, a.F[ai], b.F[bi])
		case Uint:
			if (n.Op == Div || n.Op == Mod) && b.U[bi] == 0 {
				return Value{}, errorf(n, "integer division by zero")
			}
			r.U[i] = uintOp(n.Op, a.U[ai], b.U[bi])
		default:
			if (n.Op == Div || n.Op == Mod) && b.I[bi] == 0 {
				return Value{}, errorf(n, "integer division by zero")
			}
			r.I[i] = intOp(n.Op, a.I[ai], b.I[bi])
		}
	}
	return r, nil
}

func floatOp(op BinaryOps, a, b float32) float32 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	return math32.Mod(a, b)
}

func intOp(op BinaryOps, a, b int32) int32 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	return a % b
}

func uintOp(op BinaryOps, a, b uint32) uint32 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	return a % b
}
