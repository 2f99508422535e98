// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/rdl/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pos = token.Pos{}

func lit(v Value) *Node { return NewLiteral(pos, v) }

func flt(f float32) *Node { return lit(FloatValue(f)) }

func eval(t *testing.T, n *Node, ctx *Context) Value {
	t.Helper()
	v, err := Eval(n, ctx)
	require.NoError(t, err)
	return v
}

func TestArithmetic(t *testing.T) {
	ctx := &Context{}
	v := eval(t, NewBinary(pos, Add, flt(1.5), flt(2)), ctx)
	assert.Equal(t, FloatValue(3.5), v)

	v = eval(t, NewBinary(pos, Mod, lit(IntValue(7)), lit(IntValue(3))), ctx)
	assert.Equal(t, IntValue(1), v)

	v = eval(t, NewNegate(pos, lit(IntVec(1, -2))), ctx)
	assert.Equal(t, IntVec(-1, 2), v)

	// scalar times vector broadcasts
	v = eval(t, NewBinary(pos, Mul, flt(2), lit(FloatVec(1, 2, 3))), ctx)
	assert.Equal(t, FloatVec(2, 4, 6), v)
	v = eval(t, NewBinary(pos, Div, lit(FloatVec(2, 4)), flt(2)), ctx)
	assert.Equal(t, FloatVec(1, 2), v)

	_, err := Eval(NewBinary(pos, Div, lit(IntValue(1)), lit(IntValue(0))), ctx)
	assert.ErrorContains(t, err, "division by zero")
}

func TestTypeMismatch(t *testing.T) {
	ctx := &Context{}
	_, err := Eval(NewBinary(pos, Add, flt(1), lit(IntValue(1))), ctx)
	assert.ErrorContains(t, err, "expected float, got int")

	_, err = Eval(NewBinary(pos, Add, lit(FloatVec(1, 2, 3)), lit(FloatVec(1, 2, 3, 4))), ctx)
	assert.ErrorContains(t, err, "expected float3, got float4")

	_, err = Eval(NewBinary(pos, Add, flt(1), lit(FloatVec(1, 2))), ctx)
	assert.Error(t, err)

	_, err = Eval(NewSubscript(pos, lit(FloatVec(1, 2)), 2), ctx)
	assert.ErrorContains(t, err, "out of range")

	_, err = Eval(NewSubscript(pos, flt(1), 0), ctx)
	assert.ErrorContains(t, err, "expected vector")

	var eerr *Error
	_, err = Eval(NewVector(token.Pos{Off: 7, Ln: 1, Ch: 2}, flt(1), lit(IntValue(2))), ctx)
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, 7, eerr.Pos.Off)
}

func TestVectors(t *testing.T) {
	ctx := &Context{}
	v := eval(t, NewVector(pos, flt(1), flt(2), flt(3)), ctx)
	assert.Equal(t, FloatVec(1, 2, 3), v)
	assert.Equal(t, "float3(1, 2, 3)", v.String())

	s := eval(t, NewSubscript(pos, NewVector(pos, flt(1), flt(2), flt(3)), 1), ctx)
	assert.Equal(t, FloatValue(2), s)

	rows := make([]*Node, 4)
	for i := range rows {
		rows[i] = lit(FloatVec(float32(4*i), float32(4*i+1), float32(4*i+2), float32(4*i+3)))
	}
	m := eval(t, NewVector(pos, rows...), ctx)
	assert.Equal(t, Float4x4, m.Type)
	assert.Equal(t, float32(6), m.At(1, 2))

	id := NewVector(pos,
		lit(FloatVec(1, 0, 0, 0)), lit(FloatVec(0, 1, 0, 0)),
		lit(FloatVec(0, 0, 1, 0)), lit(FloatVec(0, 0, 0, 1)))
	p := eval(t, NewBinary(pos, Mul, NewBinary(pos, Mul, id, NewVector(pos, rows...)), lit(FloatVec(0, 0, 0, 1))), ctx)
	assert.Equal(t, FloatVec(3, 7, 11, 15), p)
}

func TestBuiltins(t *testing.T) {
	tn := &Tunable{Name: "Speed", Index: 0, Value: FloatValue(2), Default: FloatValue(2)}
	ctx := &Context{Time: 1.5, DisplaySize: [2]int32{640, 480}, Tunables: []*Tunable{tn}}

	assert.Equal(t, FloatValue(1.5), eval(t, NewTime(pos), ctx))
	assert.Equal(t, IntVec(640, 480), eval(t, NewDisplaySize(pos), ctx))

	ref := NewTunableRef(pos, tn)
	assert.Equal(t, FloatValue(3), eval(t, NewBinary(pos, Mul, ref, NewTime(pos)), ctx))
	assert.Equal(t, FloatValue(2), tn.Value)

	fn, ok := LookupFunc("max")
	require.True(t, ok)
	assert.Equal(t, FloatValue(2), eval(t, NewCall(pos, fn, flt(1), flt(2)), ctx))
	assert.Equal(t, IntValue(5), eval(t, NewCall(pos, Abs, lit(IntValue(-5))), ctx))
	assert.Equal(t, UintVec(640, 480), eval(t, NewCall(pos, ToUint, NewDisplaySize(pos)), ctx))
	assert.Equal(t, FloatValue(3), eval(t, NewCall(pos, Floor, flt(3.7)), ctx))

	_, err := Eval(NewCall(pos, Sqrt, lit(BoolValue(true))), ctx)
	assert.Error(t, err)
	_, ok = LookupFunc("exp")
	assert.False(t, ok)
}

func TestProjectionDeterministic(t *testing.T) {
	n := NewProjection(pos, lit(IntValue(90)), flt(1), flt(0.1), flt(100))
	ctx := &Context{}
	a := eval(t, n, ctx)
	b := eval(t, n, ctx)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Bytes(), b.Bytes())

	assert.InDelta(t, 1, a.At(0, 0), 1e-6)
	assert.InDelta(t, 1, a.At(1, 1), 1e-6)
	assert.InDelta(t, 100/99.9, a.At(2, 2), 1e-5)
	assert.InDelta(t, -0.1*100/99.9, a.At(2, 3), 1e-5)
	assert.Equal(t, float32(1), a.At(3, 2))
	assert.Equal(t, float32(0), a.At(3, 3))
}

func TestLookAt(t *testing.T) {
	m := LookAtMatrix(math32.Vec3(0, 0, -5), math32.Vec3(0, 0, 0))
	v := MatrixValue(m)
	// looking down +z from z=-5: identity rotation, translation of 5 in z
	assert.InDelta(t, 1, v.At(0, 0), 1e-6)
	assert.InDelta(t, 1, v.At(1, 1), 1e-6)
	assert.InDelta(t, 1, v.At(2, 2), 1e-6)
	assert.InDelta(t, 5, v.At(2, 3), 1e-6)
	assert.InDelta(t, 0, v.At(0, 3), 1e-6)
	assert.Equal(t, float32(1), v.At(3, 3))

	n := NewLookAt(pos, lit(FloatVec(0, 0, -5)), lit(FloatVec(0, 0, 0)))
	assert.True(t, v.Equal(eval(t, n, &Context{})))

	_, err := Eval(NewLookAt(pos, lit(FloatVec(0, 0)), lit(FloatVec(0, 0, 0))), &Context{})
	assert.ErrorContains(t, err, "expected float3, got float2")
}

func TestDepsMonotonic(t *testing.T) {
	t0 := &Tunable{Name: "A", Index: 0, Value: FloatValue(1)}
	t5 := &Tunable{Name: "B", Index: 5, Value: FloatValue(1)}
	tree := NewBinary(pos, Add,
		NewBinary(pos, Mul, NewTime(pos), NewTunableRef(pos, t0)),
		NewCall(pos, ToFloat, NewSubscript(pos, NewDisplaySize(pos), 0)))
	tree = NewBinary(pos, Sub, tree, NewTunableRef(pos, t5))

	tree.Walk(func(n *Node) {
		var union Deps
		for _, a := range n.Args {
			union |= a.Deps
		}
		assert.Equal(t, union, n.Deps&union, n.Kind.String())
	})
	assert.True(t, tree.Deps.Has(TimeDep))
	assert.True(t, tree.Deps.Has(DisplaySizeDep))
	assert.True(t, tree.Deps.Has(t0.Dep()))
	assert.True(t, tree.Deps.Has(t5.Dep()))
	assert.False(t, tree.Deps.Has(TunableDep(1)))
	assert.Equal(t, "Time|DisplaySize|Tunable0|Tunable5", tree.Deps.String())

	assert.True(t, flt(1).IsConstant())
	assert.True(t, NewVector(pos, flt(1), flt(2)).IsConstant())
	assert.Equal(t, NoDeps, TunableDep(MaxTunables))
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "float4x4", Float4x4.String())
	assert.Equal(t, "int2", Vec(Int, 2).String())
	assert.Equal(t, "uint", UintType.String())
	assert.Equal(t, 64, Float4x4.Size())
	assert.Equal(t, 12, Vec(Float, 3).Size())

	n := NewBinary(pos, Mul, flt(2), lit(FloatVec(1, 2, 3)))
	assert.Equal(t, Vec(Float, 3), n.Type)
	assert.Equal(t, Vec(Float, 1), NewSubscript(pos, n, 2).Type)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, FloatValue(1).Bytes())
}

func TestTunableSet(t *testing.T) {
	tn := &Tunable{Name: "Speed", Value: FloatValue(2), Default: FloatValue(2), Min: 0, Max: 10}
	ch, err := tn.Set(FloatValue(20))
	require.NoError(t, err)
	assert.True(t, ch)
	assert.Equal(t, FloatValue(10), tn.Value)

	ch, err = tn.Set(FloatValue(10))
	require.NoError(t, err)
	assert.False(t, ch)

	_, err = tn.Set(IntValue(1))
	assert.ErrorContains(t, err, "expected float, got int")

	assert.True(t, tn.Reset())
	assert.Equal(t, FloatValue(2), tn.Value)
}
