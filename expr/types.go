// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"
)

// ScalarKinds are the kinds of scalar components of a [Type].
type ScalarKinds int32 //enums:enum

const (
	// Undefined is the kind of a type that could not be determined.
	Undefined ScalarKinds = iota

	Bool

	Int

	Uint

	Float
)

// Type is the result type of an expression: a scalar, a vector
// of 2 to 4 components of the same scalar kind, or a 4x4 float matrix.
type Type struct {
	// Kind is the scalar kind of the components.
	Kind ScalarKinds

	// N is the number of components: 1 for scalars,
	// 2 to 4 for vectors, and 4 (columns) for a matrix.
	N int

	// Matrix is set for the float4x4 matrix type.
	Matrix bool
}

var (
	BoolType  = Type{Kind: Bool, N: 1}
	IntType   = Type{Kind: Int, N: 1}
	UintType  = Type{Kind: Uint, N: 1}
	FloatType = Type{Kind: Float, N: 1}

	// Float4x4 is the 4x4 float transform matrix type.
	Float4x4 = Type{Kind: Float, N: 4, Matrix: true}
)

// Vec returns the vector type of given kind and number of components
// (a scalar type if n is 1).
func Vec(kind ScalarKinds, n int) Type {
	return Type{Kind: kind, N: n}
}

// IsValid returns true if the type is defined.
func (t Type) IsValid() bool {
	return t.Kind != Undefined && t.N >= 1 && t.N <= 4
}

// IsScalar returns true for a single component type.
func (t Type) IsScalar() bool {
	return t.N == 1 && !t.Matrix
}

// IsVector returns true for a 2 to 4 component vector type.
func (t Type) IsVector() bool {
	return t.N > 1 && !t.Matrix
}

// Components returns the total number of components, 16 for a matrix.
func (t Type) Components() int {
	if t.Matrix {
		return 16
	}
	return t.N
}

// Size returns the size of a value of this type in bytes, as laid
// out in a constant buffer: 4 bytes per component.
func (t Type) Size() int {
	return 4 * t.Components()
}

// String returns the type name in shader style, e.g. float3 or float4x4.
func (t Type) String() string {
	if !t.IsValid() {
		return "undefined"
	}
	nm := strings.ToLower(t.Kind.String())
	switch {
	case t.Matrix:
		return fmt.Sprintf("%s%dx%d", nm, t.N, t.N)
	case t.N > 1:
		return fmt.Sprintf("%s%d", nm, t.N)
	}
	return nm
}
