// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader provides the reflection metadata that render
// descriptions are resolved against, the [Compiler] interface that
// produces it, a WGSL implementation based on naga, and a scanner that
// computes struct sizes from shader source.
package shader

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/rdl/expr"
)

// Stages are the shader stages.
type Stages int32 //enums:enum

const (
	Compute Stages = iota
	Vertex
	Pixel
)

// ResourceKinds are the kinds of bound shader resources.
type ResourceKinds int32 //enums:enum

const (
	// ReadOnly is a resource that is only read: a sampled texture
	// or read-only storage buffer.
	ReadOnly ResourceKinds = iota

	// Writable is a resource that is written: a storage texture
	// or read-write storage buffer.
	Writable

	// Sampler is a texture sampler.
	Sampler
)

// Resource is a bound resource slot declared by a shader.
type Resource struct {
	Name string

	Kind ResourceKinds

	// Group and Slot are the bind group and binding index.
	Group, Slot int

	// Texture is set for texture resources, as opposed to buffers.
	Texture bool
}

// Variable is a variable in a constant buffer.
type Variable struct {
	Name string

	// Offset and Size are the byte range within the buffer.
	Offset, Size int

	// Type is the scalar, vector or matrix type of the variable.
	// It is not valid for struct and array members, which cannot be set.
	Type expr.Type

	// Default is the initial value, of length Size, or nil for zero.
	Default []byte
}

// ConstantBuffer is a uniform buffer declared by a shader.
type ConstantBuffer struct {
	Name string

	Group, Slot int

	// Size is the total size in bytes.
	Size int

	Variables []Variable
}

// Variable returns the variable of given name, or nil.
func (cb *ConstantBuffer) Variable(name string) *Variable {
	for i := range cb.Variables {
		if cb.Variables[i].Name == name {
			return &cb.Variables[i]
		}
	}
	return nil
}

// Reflection describes the resources and constants that a shader
// entry point declares.
type Reflection struct {
	// Path is the source file of the shader.
	Path string

	// Entry is the entry point function.
	Entry string

	Stage Stages

	Resources []Resource

	ConstantBuffers []*ConstantBuffer

	// Workgroup is the workgroup size of compute shaders.
	Workgroup [3]int
}

// Resource returns the resource of given name, or nil.
func (rf *Reflection) Resource(name string) *Resource {
	for i := range rf.Resources {
		if rf.Resources[i].Name == name {
			return &rf.Resources[i]
		}
	}
	return nil
}

// Variable returns the constant buffer variable of given name across
// all constant buffers, and the buffer containing it.
func (rf *Reflection) Variable(name string) (*ConstantBuffer, *Variable) {
	for _, cb := range rf.ConstantBuffers {
		if v := cb.Variable(name); v != nil {
			return cb, v
		}
	}
	return nil, nil
}

// Compiled is the result of compiling a shader entry point.
type Compiled struct {
	Reflection *Reflection

	// Binary is the compiled shader code.
	Binary []byte

	// Source is the shader source text.
	Source string
}

// Compiler compiles shader sources and reflects on them.
// It is the only way render descriptions access shader files.
type Compiler interface {
	// ReadFile returns the contents of the given shader file.
	ReadFile(path string) ([]byte, error)

	// Compile compiles the given entry point of the shader file
	// for the given stage.
	Compile(path, entry string, stage Stages) (*Compiled, error)
}

// Key returns the key that compiled shaders are cached under.
func Key(path, entry string, stage Stages) string {
	return fmt.Sprintf("%s:%s:%s", path, entry, stage)
}
