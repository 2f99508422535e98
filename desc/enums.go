// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"strings"

	"cogentcore.org/core/enums"
)

// Formats are the texture formats.
type Formats int32 //enums:enum

const (
	RGBA8Unorm Formats = iota
	RGBA8UnormSrgb
	BGRA8Unorm
	RGBA16Float
	RGBA32Float
	R32Float
	RG32Float
	R32Uint
	R32Sint
	Depth32Float
	Depth24PlusStencil8
)

// Bytes returns the size of one texel in bytes.
func (f Formats) Bytes() int {
	switch f {
	case RGBA16Float, RG32Float:
		return 8
	case RGBA32Float:
		return 16
	}
	return 4
}

// IsDepth returns true for depth formats.
func (f Formats) IsDepth() bool {
	return f == Depth32Float || f == Depth24PlusStencil8
}

// ViewKinds are the kinds of resource views.
type ViewKinds int32 //enums:enum

const (
	// Auto is decided by the first bind that uses the view:
	// SRV for shader inputs and UAV for outputs.
	Auto ViewKinds = iota

	// SRV is a read only shader resource view.
	SRV

	// UAV is a writable unordered access view.
	UAV

	// RTV is a render target view.
	RTV

	// DSV is a depth stencil view.
	DSV
)

// Filters are the sampler filters.
type Filters int32 //enums:enum

const (
	Point Filters = iota
	Linear
	Anisotropic
)

// AddressModes are the sampler address modes.
type AddressModes int32 //enums:enum

const (
	Wrap AddressModes = iota
	Clamp
	Mirror
)

// CompareFuncs are the comparison functions of comparison samplers
// and depth tests.
type CompareFuncs int32 //enums:enum

const (
	CompareNever CompareFuncs = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// CullModes are the rasterizer cull modes.
type CullModes int32 //enums:enum

const (
	CullNone CullModes = iota
	CullFront
	CullBack
)

// FillModes are the rasterizer fill modes.
type FillModes int32 //enums:enum

const (
	FillSolid FillModes = iota
	FillWireframe
)

// BlendFactors are the blend factors.
type BlendFactors int32 //enums:enum

const (
	BlendZero BlendFactors = iota
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDstColor
	BlendInvDstColor
	BlendDstAlpha
	BlendInvDstAlpha
)

// BlendOps are the blend operations.
type BlendOps int32 //enums:enum

const (
	OpAdd BlendOps = iota
	OpSubtract
	OpRevSubtract
	OpMin
	OpMax
)

// Topologies are the primitive topologies of draws.
type Topologies int32 //enums:enum

const (
	TriangleList Topologies = iota
	TriangleStrip
	LineList
	LineStrip
	PointList
)

// SystemValues are the resources provided by the frame driver
// that can be bound or rendered to by name.
type SystemValues int32 //enums:enum

const (
	// Backbuffer is the color target that is presented.
	Backbuffer SystemValues = iota

	// DepthBuffer is the depth target that goes with the Backbuffer.
	DepthBuffer
)

// BindKinds are the kinds of [Bind] targets.
type BindKinds int32 //enums:enum

const (
	// ViewBind binds a texture or buffer view.
	ViewBind BindKinds = iota

	// SamplerBind binds a sampler.
	SamplerBind

	// SystemBind binds a [SystemValues] resource.
	SystemBind
)

// PassKinds are the kinds of [Pass]es.
type PassKinds int32 //enums:enum

const (
	DispatchPass PassKinds = iota
	DrawPass
	ClearColorPass
	ClearDepthPass
	ResolvePass
)

// BufferUsages are bit flags of the ways a buffer is used.
type BufferUsages int64 //enums:bitflag

const (
	// VertexUsage is for vertex buffers of draws.
	VertexUsage BufferUsages = iota

	// IndexUsage is for index buffers of draws.
	IndexUsage

	// StorageUsage is for buffers bound to shaders.
	StorageUsage

	// UniformUsage is for uniform buffers.
	UniformUsage

	// IndirectUsage is for indirect dispatch and draw arguments.
	IndirectUsage
)

// parseEnum returns the value of the given enum type whose name,
// without the given prefix, matches name ignoring case,
// so that for example "lessEqual" is [CompareLessEqual].
func parseEnum[T enums.Enum](values []T, prefix, name string) (T, bool) {
	for _, v := range values {
		if strings.EqualFold(strings.TrimPrefix(v.String(), prefix), name) {
			return v, true
		}
	}
	var zv T
	return zv, false
}

// enumNames returns the names of the given enum values without
// the prefix, with a lower case first letter, for messages.
func enumNames[T enums.Enum](values []T, prefix string) string {
	nms := make([]string, len(values))
	for i, v := range values {
		nm := strings.TrimPrefix(v.String(), prefix)
		nms[i] = strings.ToLower(nm[:1]) + nm[1:]
	}
	return strings.Join(nms, "|")
}
