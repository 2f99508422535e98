// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desc provides render descriptions: GPU render pipelines of
// shaders, resources and passes described in a small declarative text
// format.  [Parse] turns a document into a [Description],
// [Description.ResolveBindings] resolves its binds and constants against
// shader reflection and creates its fixed resources on a [Backend], and
// [Description.Reevaluate] re-evaluates, every frame, the expressions
// whose inputs changed, recreating resources whose shape changed.
package desc

//go:generate core generate

import (
	"image"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/shader"
	"cogentcore.org/rdl/token"
)

// Debug enables logging of resource creation and release.
var Debug = false

// Description is a parsed render description.  It owns every structure
// declared in the document, named or anonymous, in declaration order,
// and the string table of the document.
type Description struct {
	ComputeShaders []*Shader
	VertexShaders  []*Shader
	PixelShaders   []*Shader

	Buffers  []*Buffer
	Textures []*Texture
	Views    []*View
	Samplers []*Sampler

	RasterizerStates   []*RasterizerState
	DepthStencilStates []*DepthStencilState
	BlendStates        []*BlendState

	// Tunables are the tunables, with Index the position in this list.
	Tunables []*expr.Tunable

	Dispatches  []*Dispatch
	Draws       []*Draw
	ClearColors []*ClearColor
	ClearDepths []*ClearDepth
	Resolves    []*Resolve

	// ConstantBuffers are created by ResolveBindings, one for each
	// constant buffer reflected by each shader of each dispatch and
	// draw that sets constants.
	ConstantBuffers []*ConstantBuffer

	// Passes is the execution order.
	Passes []Pass

	// Strings is the string table of the document.
	Strings *token.Strings

	// symbols are the named structures, all kinds in one namespace.
	symbols keylist.List[string, any]

	// backend is the backend that resources are created on.
	backend Backend

	// evaluated is set after the first Reevaluate.
	evaluated bool
}

// Symbol returns the structure defined with the given name, or nil.
func (d *Description) Symbol(name string) any {
	return d.symbols.At(name)
}

// Names returns the names of all named structures in definition order.
func (d *Description) Names() []string {
	return d.symbols.Keys
}

// Shaders returns all shaders of all stages.
func (d *Description) Shaders() []*Shader {
	shs := make([]*Shader, 0, len(d.ComputeShaders)+len(d.VertexShaders)+len(d.PixelShaders))
	shs = append(shs, d.ComputeShaders...)
	shs = append(shs, d.VertexShaders...)
	return append(shs, d.PixelShaders...)
}

// Shader is a shader entry point in a shader file.
type Shader struct {
	Name string
	Pos  token.Pos

	Stage shader.Stages

	// File is the shader file path.
	File string

	// Entry is the entry point function, "main" by default.
	Entry string

	// Compiled is set by compilation, before binds are resolved.
	Compiled *shader.Compiled
}

// Reflection returns the reflection of the compiled shader, or nil.
func (sh *Shader) Reflection() *shader.Reflection {
	if sh.Compiled == nil {
		return nil
	}
	return sh.Compiled.Reflection
}

// Buffer is a GPU buffer of Count elements of ElementSize bytes.
type Buffer struct {
	Name string
	Pos  token.Pos

	// ElementSize is the size of each element in bytes.  It is set from
	// the struct declaration in StructFile when Struct is given.
	ElementSize int

	// Count is the number of elements, an int or uint expression.
	Count *expr.Node

	// StructFile and Struct name a struct declared in a shader file
	// that gives the element size.
	StructFile string
	Struct     string

	// Data is the initial contents.
	Data []byte

	Usage BufferUsages

	// CurCount is the element count the buffer was created with.
	CurCount int

	// Handle is the backend buffer, or 0 before creation.
	Handle Handle
}

// Size returns the current size of the buffer in bytes.
func (bf *Buffer) Size() int {
	return bf.ElementSize * bf.CurCount
}

// Texture is a 2D or 3D texture.
type Texture struct {
	Name string
	Pos  token.Pos

	// Size is the width, height and optional depth, an int or uint
	// vector expression.  It is DisplaySize() by default, and the
	// image size for textures with a File.
	Size *expr.Node

	// File is an image file that the texture is initialized from,
	// relative to the document.
	File string

	// Image is the image of File, set by [Description.LoadImages].
	Image *image.RGBA

	Format Formats

	Mips, Samples int

	RenderTarget, DepthStencil, Storage bool

	// CurSize is the size the texture was created with.
	CurSize [3]int

	// Handle is the backend texture, or 0 before creation.
	Handle Handle
}

// View is a view of a texture or buffer.
type View struct {
	Name string
	Pos  token.Pos

	// Texture or Buffer is the viewed resource.
	Texture *Texture
	Buffer  *Buffer

	// Kind is the view kind.  An [Auto] kind is fixed to SRV or UAV
	// by the first bind that resolves against it.
	Kind ViewKinds

	// Implicit is set for views made for a texture or buffer
	// named directly in a bind or target.
	Implicit bool

	Mip, FirstElement, NumElements int

	// Handle is the backend view, or 0 before creation.
	Handle Handle
}

// Resource returns the name of the viewed resource.
func (vw *View) Resource() string {
	if vw.Texture != nil {
		return vw.Texture.Name
	}
	if vw.Buffer != nil {
		return vw.Buffer.Name
	}
	return ""
}

// Sampler is a texture sampler.
type Sampler struct {
	Name string
	Pos  token.Pos

	Filter Filters

	Address AddressModes

	// Compare is the comparison function if IsCompare is set.
	Compare   CompareFuncs
	IsCompare bool

	Handle Handle
}

// RasterizerState is the rasterizer configuration of a draw.
type RasterizerState struct {
	Name     string
	Cull     CullModes
	Fill     FillModes
	FrontCCW bool
}

// DepthStencilState is the depth test configuration of a draw.
type DepthStencilState struct {
	Name       string
	DepthTest  bool
	DepthWrite bool
	DepthFunc  CompareFuncs
}

// BlendState is the blend configuration of a draw.
type BlendState struct {
	Name     string
	Enable   bool
	Src, Dst BlendFactors
	Op       BlendOps
}

// Bind binds a view, sampler or system value to the shader resource
// of the given Name.  It is unresolved until [Description.ResolveBindings]
// sets Resolved.
type Bind struct {
	// Name is the shader resource name.
	Name string
	Pos  token.Pos

	Kind BindKinds

	View    *View
	Sampler *Sampler
	System  SystemValues

	// Resolved is the resolved slot, or nil while unresolved.
	// It is the first of Stages.
	Resolved *ResolvedBind

	// Stages has one resolved slot for each shader of the dispatch
	// or draw that declares the resource.
	Stages []*ResolvedBind
}

// ResolvedBind is the shader slot that a [Bind] is resolved to.
type ResolvedBind struct {
	Stage shader.Stages

	Group, Slot int

	// IsOutput is set for writable resources.
	IsOutput bool

	ResourceKind shader.ResourceKinds
}

// Target returns the name of the bound structure or system value.
func (b *Bind) Target() string {
	switch b.Kind {
	case SamplerBind:
		return b.Sampler.Name
	case SystemBind:
		return b.System.String()
	}
	if b.View.Name != "" {
		return b.View.Name
	}
	return b.View.Resource()
}

// SetConstant sets the constant buffer variable of the given Name to
// the value of Expr every frame that its inputs change.
type SetConstant struct {
	Name string
	Pos  token.Pos
	Expr *expr.Node

	// Resolved is the variable location, or nil while unresolved.
	Resolved *ResolvedConstant
}

// ResolvedConstant is the location of a [SetConstant] variable.
type ResolvedConstant struct {
	Buffer *ConstantBuffer

	Offset, Size int

	Type expr.Type
}

// ConstantBuffer is the CPU side copy of a shader constant buffer,
// uploaded to the backend whenever it changes.
type ConstantBuffer struct {
	Name   string
	Shader *Shader

	Group, Slot int

	Size int

	// Data is the current contents, initialized from the defaults.
	Data []byte

	Handle Handle

	// dirty is set when Data has changed since the last upload.
	dirty bool
}

// Target is a render target: a view or a system value.
type Target struct {
	View *View

	// System is the system value if IsSystem.
	System   SystemValues
	IsSystem bool
}

// IsSet returns true if the target has been given.
func (tg *Target) IsSet() bool {
	return tg.View != nil || tg.IsSystem
}

func (tg *Target) String() string {
	switch {
	case tg.IsSystem:
		return tg.System.String()
	case tg.View != nil && tg.View.Name != "":
		return tg.View.Name
	case tg.View != nil:
		return tg.View.Resource()
	}
	return "none"
}

// Dispatch is a compute shader dispatch.
type Dispatch struct {
	Name string
	Pos  token.Pos

	Shader *Shader

	// Groups is the number of workgroups, an int or uint scalar or vector.
	Groups *expr.Node

	// Threads is the number of threads, from which the number
	// of groups is computed using the reflected workgroup size.
	Threads *expr.Node

	// Indirect is the buffer of indirect dispatch arguments.
	Indirect *Buffer

	Binds []*Bind
	Sets  []*SetConstant

	// ConstantBuffers are the constant buffers of the shader, made by
	// ResolveBindings when there are Sets.
	ConstantBuffers []*ConstantBuffer

	// GroupCount is the evaluated number of workgroups.
	GroupCount [3]int
}

// Draw is a draw call.
type Draw struct {
	Name string
	Pos  token.Pos

	VertexShader, PixelShader *Shader

	VertexCount, InstanceCount *expr.Node

	VertexBuffer, IndexBuffer *Buffer

	Topology Topologies

	RenderTarget, DepthTarget Target

	// Viewport is the x, y, width and height, a float4 expression.
	Viewport *expr.Node

	RasterizerState   *RasterizerState
	DepthStencilState *DepthStencilState
	BlendState        *BlendState

	Binds []*Bind
	Sets  []*SetConstant

	// ConstantBuffers are the constant buffers of both shaders,
	// made by ResolveBindings when there are Sets.
	ConstantBuffers []*ConstantBuffer

	// CurVertexCount, CurInstanceCount and CurViewport are the
	// evaluated counts and viewport.  A zero CurViewport is the
	// whole render target.
	CurVertexCount, CurInstanceCount int
	CurViewport                      [4]float32
}

// ClearColor clears a color target.
type ClearColor struct {
	Name   string
	Pos    token.Pos
	Target Target

	// Color is a float4 expression.
	Color *expr.Node

	CurColor [4]float32
}

// ClearDepth clears a depth target.
type ClearDepth struct {
	Name   string
	Pos    token.Pos
	Target Target

	// Depth is a float expression, 1 by default.
	Depth *expr.Node

	Stencil int

	CurDepth float32
}

// Resolve resolves a multisampled texture into another texture.
type Resolve struct {
	Name     string
	Pos      token.Pos
	Src, Dst *Texture
}

// Pass is one entry of the execution order: exactly one of the
// structure pointers is set, as given by Kind.
type Pass struct {
	Kind PassKinds

	Dispatch   *Dispatch
	Draw       *Draw
	ClearColor *ClearColor
	ClearDepth *ClearDepth
	Resolve    *Resolve
}

// Name returns the name of the pass structure.
func (ps *Pass) Name() string {
	switch ps.Kind {
	case DispatchPass:
		return ps.Dispatch.Name
	case DrawPass:
		return ps.Draw.Name
	case ClearColorPass:
		return ps.ClearColor.Name
	case ClearDepthPass:
		return ps.ClearDepth.Name
	}
	return ps.Resolve.Name
}
