// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

// Handle identifies an object created by a [Backend].  The zero
// Handle is no object.
type Handle uint64

// Backend creates and releases the GPU objects of a [Description].
// All calls are made from the goroutine that drives the description.
type Backend interface {
	CreateBuffer(bd *BufferDesc) (Handle, error)

	CreateTexture(td *TextureDesc) (Handle, error)

	CreateView(vd *ViewDesc) (Handle, error)

	CreateSampler(sd *SamplerDesc) (Handle, error)

	// CreateConstantBuffer creates a uniform buffer of given size in bytes.
	CreateConstantBuffer(name string, size int) (Handle, error)

	// WriteConstantBuffer replaces the contents of a constant buffer.
	WriteConstantBuffer(h Handle, data []byte) error

	// Release releases any object created by the backend.
	Release(h Handle)
}

// BufferDesc describes a buffer to create.
type BufferDesc struct {
	Name        string
	ElementSize int
	Count       int
	Usage       BufferUsages

	// Data is the initial contents, which may be shorter than the buffer.
	Data []byte
}

// Size returns the total size in bytes.
func (bd *BufferDesc) Size() int {
	return bd.ElementSize * bd.Count
}

// TextureDesc describes a texture to create.
type TextureDesc struct {
	Name string

	// Size is the width, height and depth, with depth 1 for 2D textures.
	Size [3]int

	Format Formats

	Mips, Samples int

	RenderTarget, DepthStencil, Storage bool

	// Data is the initial contents of the first mip level of RGBA8
	// textures, 4 bytes per texel row by row, or nil.
	Data []byte
}

// ViewDesc describes a view to create over a texture or buffer.
type ViewDesc struct {
	Name string

	// Kind is never [Auto].
	Kind ViewKinds

	// Texture or Buffer is the viewed object.
	Texture Handle
	Buffer  Handle

	// Format is the texture format.
	Format Formats

	Mip, FirstElement, NumElements int
}

// SamplerDesc describes a sampler to create.
type SamplerDesc struct {
	Name      string
	Filter    Filters
	Address   AddressModes
	Compare   CompareFuncs
	IsCompare bool
}
