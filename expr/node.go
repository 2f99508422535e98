// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr provides the small typed expression language of render
// descriptions: a closed set of node kinds evaluated against a per-frame
// [Context] of elapsed time, display size and tunable values, with each
// node carrying the [Deps] of the inputs it reads.
package expr

//go:generate core generate

import (
	"cogentcore.org/rdl/token"
)

// NodeKinds are the kinds of expression [Node]s.
type NodeKinds int32 //enums:enum

const (
	// Literal is a constant value.
	Literal NodeKinds = iota

	// Vector builds a vector from 2 to 4 scalars, or a float4x4
	// from 4 float4 rows.
	Vector

	// Subscript extracts component Index of a vector.
	Subscript

	// Negate is unary minus.
	Negate

	// Binary is an arithmetic operator, given by Op.
	Binary

	// Time is the elapsed time in seconds.
	Time

	// DisplaySize is the display size in pixels, as an int2.
	DisplaySize

	// LookAt is a view transform from eye position to target position.
	LookAt

	// Projection is a perspective transform from field of view in
	// degrees, aspect ratio, near and far planes.
	Projection

	// TunableRef reads the value of tunable Index.
	TunableRef

	// Call calls built-in function Func.
	Call
)

// BinaryOps are the binary arithmetic operators.
type BinaryOps int32 //enums:enum

const (
	Add BinaryOps = iota
	Sub
	Mul
	Div
	Mod
)

var opText = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%"}

// Text returns the operator symbol.
func (op BinaryOps) Text() string {
	return opText[op]
}

// Node is one node of an expression tree.  It is a tagged variant over
// [NodeKinds]: which fields are meaningful depends on Kind.  A node
// owns its Args; trees have no sharing and no cycles.
type Node struct {
	Kind NodeKinds

	// Pos is the source position of the node.
	Pos token.Pos

	// Type is the result type, established at construction for
	// literals and propagated from the children otherwise.  It is
	// the zero Type when it cannot be determined statically, and the
	// evaluator always checks the actual operand types.
	Type Type

	// Deps are the inputs this node transitively reads, computed
	// once at construction.
	Deps Deps

	// Value is the constant of a Literal.
	Value Value

	// Op is the operator of a Binary.
	Op BinaryOps

	// Index is the component of a Subscript or the tunable of a TunableRef.
	Index int

	// Name is the tunable name of a TunableRef, for messages.
	Name string

	// Func is the function of a Call.
	Func Funcs

	// Args are the children.
	Args []*Node
}

// newNode returns a node whose Deps is the union of own and the
// Deps of all args.
func newNode(kind NodeKinds, pos token.Pos, own Deps, args ...*Node) *Node {
	n := &Node{Kind: kind, Pos: pos, Deps: own, Args: args}
	for _, a := range args {
		n.Deps |= a.Deps
	}
	return n
}

// NewLiteral returns a constant node.
func NewLiteral(pos token.Pos, v Value) *Node {
	n := newNode(Literal, pos, NoDeps)
	n.Value = v
	n.Type = v.Type
	return n
}

// NewVector returns a vector construction node over the given elements.
func NewVector(pos token.Pos, elems ...*Node) *Node {
	n := newNode(Vector, pos, NoDeps, elems...)
	if len(elems) == 0 {
		return n
	}
	et := elems[0].Type
	for _, e := range elems[1:] {
		if e.Type != et {
			return n
		}
	}
	switch {
	case et.IsScalar() && len(elems) >= 2 && len(elems) <= 4:
		n.Type = Vec(et.Kind, len(elems))
	case et == Vec(Float, 4) && len(elems) == 4:
		n.Type = Float4x4
	}
	return n
}

// NewSubscript returns a node extracting component index of x.
func NewSubscript(pos token.Pos, x *Node, index int) *Node {
	n := newNode(Subscript, pos, NoDeps, x)
	n.Index = index
	if x.Type.IsVector() && index >= 0 && index < x.Type.N {
		n.Type = Vec(x.Type.Kind, 1)
	}
	return n
}

// NewNegate returns a unary minus node.
func NewNegate(pos token.Pos, x *Node) *Node {
	n := newNode(Negate, pos, NoDeps, x)
	n.Type = x.Type
	return n
}

// NewBinary returns an arithmetic node.
func NewBinary(pos token.Pos, op BinaryOps, a, b *Node) *Node {
	n := newNode(Binary, pos, NoDeps, a, b)
	n.Op = op
	n.Type, _ = BinaryType(op, a.Type, b.Type)
	return n
}

// NewTime returns an elapsed time node.
func NewTime(pos token.Pos) *Node {
	n := newNode(Time, pos, TimeDep)
	n.Type = FloatType
	return n
}

// NewDisplaySize returns a display size node.
func NewDisplaySize(pos token.Pos) *Node {
	n := newNode(DisplaySize, pos, DisplaySizeDep)
	n.Type = Vec(Int, 2)
	return n
}

// NewLookAt returns a view transform node.
func NewLookAt(pos token.Pos, from, to *Node) *Node {
	n := newNode(LookAt, pos, NoDeps, from, to)
	n.Type = Float4x4
	return n
}

// NewProjection returns a perspective transform node.
func NewProjection(pos token.Pos, fov, aspect, near, far *Node) *Node {
	n := newNode(Projection, pos, NoDeps, fov, aspect, near, far)
	n.Type = Float4x4
	return n
}

// NewTunableRef returns a node reading the given tunable.
func NewTunableRef(pos token.Pos, tn *Tunable) *Node {
	n := newNode(TunableRef, pos, TunableDep(tn.Index))
	n.Index = tn.Index
	n.Name = tn.Name
	n.Type = tn.Value.Type
	return n
}

// NewCall returns a built-in function call node.
func NewCall(pos token.Pos, fn Funcs, args ...*Node) *Node {
	n := newNode(Call, pos, NoDeps, args...)
	n.Func = fn
	if len(args) > 0 {
		n.Type = fn.resultType(args[0].Type)
	}
	return n
}

// Walk calls fun for n and all of its descendants, parents first.
func (n *Node) Walk(fun func(n *Node)) {
	fun(n)
	for _, a := range n.Args {
		a.Walk(fun)
	}
}

// IsConstant returns true if the node reads no runtime input.
func (n *Node) IsConstant() bool {
	return n.Deps.IsConstant()
}
