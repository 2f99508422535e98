// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/math32"
)

// Value is a typed evaluation result.  Float components (including
// matrices, in column-major order) are stored in F, int and bool
// components in I, and uint components in U.
type Value struct {
	Type Type

	F [16]float32

	I [4]int32

	U [4]uint32
}

// FloatValue returns a float scalar.
func FloatValue(f float32) Value {
	v := Value{Type: FloatType}
	v.F[0] = f
	return v
}

// IntValue returns an int scalar.
func IntValue(i int32) Value {
	v := Value{Type: IntType}
	v.I[0] = i
	return v
}

// UintValue returns a uint scalar.
func UintValue(u uint32) Value {
	v := Value{Type: UintType}
	v.U[0] = u
	return v
}

// BoolValue returns a bool scalar.
func BoolValue(b bool) Value {
	v := Value{Type: BoolType}
	if b {
		v.I[0] = 1
	}
	return v
}

// FloatVec returns a float vector of the given components.
func FloatVec(fs ...float32) Value {
	v := Value{Type: Vec(Float, len(fs))}
	copy(v.F[:], fs)
	return v
}

// IntVec returns an int vector of the given components.
func IntVec(is ...int32) Value {
	v := Value{Type: Vec(Int, len(is))}
	copy(v.I[:], is)
	return v
}

// UintVec returns a uint vector of the given components.
func UintVec(us ...uint32) Value {
	v := Value{Type: Vec(Uint, len(us))}
	copy(v.U[:], us)
	return v
}

// MatrixValue returns a float4x4 value from the given matrix.
func MatrixValue(m math32.Matrix4) Value {
	return Value{Type: Float4x4, F: m}
}

// Matrix returns the float4x4 value as a [math32.Matrix4].
func (v Value) Matrix() math32.Matrix4 {
	return math32.Matrix4(v.F)
}

// At returns the matrix element at given row and column.
func (v Value) At(row, col int) float32 {
	return v.F[col*4+row]
}

// SetAt sets the matrix element at given row and column.
func (v *Value) SetAt(row, col int, f float32) {
	v.F[col*4+row] = f
}

// Float64 returns component i converted to float64, for any kind.
func (v Value) Float64(i int) float64 {
	switch v.Type.Kind {
	case Float:
		return float64(v.F[i])
	case Uint:
		return float64(v.U[i])
	default:
		return float64(v.I[i])
	}
}

// Int64 returns component i converted to int64, truncating floats.
func (v Value) Int64(i int) int64 {
	switch v.Type.Kind {
	case Float:
		return int64(v.F[i])
	case Uint:
		return int64(v.U[i])
	default:
		return int64(v.I[i])
	}
}

// Component returns component i as a scalar value of the same kind.
func (v Value) Component(i int) Value {
	r := Value{Type: Vec(v.Type.Kind, 1)}
	r.F[0] = v.F[i]
	if i < 4 {
		r.I[0] = v.I[i]
		r.U[0] = v.U[i]
	}
	return r
}

// Equal returns true if both values have the same type and
// bit-identical components.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	n := v.Type.Components()
	for i := range n {
		switch v.Type.Kind {
		case Float:
			if math.Float32bits(v.F[i]) != math.Float32bits(o.F[i]) {
				return false
			}
		case Uint:
			if v.U[i] != o.U[i] {
				return false
			}
		default:
			if v.I[i] != o.I[i] {
				return false
			}
		}
	}
	return true
}

// Bytes returns the little-endian constant buffer representation of the
// value: 4 bytes per component, bools as 0 or 1.
func (v Value) Bytes() []byte {
	n := v.Type.Components()
	b := make([]byte, 0, 4*n)
	for i := range n {
		switch v.Type.Kind {
		case Float:
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.F[i]))
		case Uint:
			b = binary.LittleEndian.AppendUint32(b, v.U[i])
		default:
			b = binary.LittleEndian.AppendUint32(b, uint32(v.I[i]))
		}
	}
	return b
}

func (v Value) String() string {
	n := v.Type.Components()
	parts := make([]string, n)
	for i := range n {
		switch v.Type.Kind {
		case Float:
			parts[i] = fmt.Sprintf("%g", v.F[i])
		case Uint:
			parts[i] = fmt.Sprintf("%d", v.U[i])
		case Bool:
			parts[i] = fmt.Sprintf("%t", v.I[i] != 0)
		default:
			parts[i] = fmt.Sprintf("%d", v.I[i])
		}
	}
	if n == 1 {
		return parts[0]
	}
	return v.Type.String() + "(" + strings.Join(parts, ", ") + ")"
}
