// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgpu provides a [desc.Backend] that creates the objects
// of render descriptions on a WebGPU device.
package webgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/rdl/desc"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables logging of object creation.
var Debug = false

// Texture is a created texture.
type Texture struct {
	Texture *wgpu.Texture
	Desc    desc.TextureDesc
}

// View is a created view: a texture view, or a range of a buffer,
// which WebGPU binds directly.
type View struct {
	View   *wgpu.TextureView
	Buffer *wgpu.Buffer
	Desc   desc.ViewDesc
}

// Backend is a [desc.Backend] on a [gpu.Device].  It is not safe for
// concurrent use: all calls must come from the frame goroutine.
type Backend struct {
	GPU    *gpu.GPU
	Device *gpu.Device

	// objects are the live objects by handle: *wgpu.Buffer,
	// *Texture, *View or *wgpu.Sampler.
	objects map[desc.Handle]any

	next desc.Handle
}

// NewBackend returns a backend on a new device that is not
// connected to a display.
func NewBackend() (*Backend, error) {
	gp, dev, err := gpu.NoDisplayGPU()
	if err != nil {
		return nil, errors.Log(err)
	}
	return NewDeviceBackend(gp, dev), nil
}

// NewDeviceBackend returns a backend on the given device.
func NewDeviceBackend(gp *gpu.GPU, dev *gpu.Device) *Backend {
	return &Backend{GPU: gp, Device: dev, objects: map[desc.Handle]any{}}
}

func (b *Backend) add(ob any) desc.Handle {
	b.next++
	b.objects[b.next] = ob
	return b.next
}

// Formats maps description formats to WebGPU texture formats.
var Formats = map[desc.Formats]wgpu.TextureFormat{
	desc.RGBA8Unorm:          wgpu.TextureFormatRGBA8Unorm,
	desc.RGBA8UnormSrgb:      wgpu.TextureFormatRGBA8UnormSrgb,
	desc.BGRA8Unorm:          wgpu.TextureFormatBGRA8Unorm,
	desc.RGBA16Float:         wgpu.TextureFormatRGBA16Float,
	desc.RGBA32Float:         wgpu.TextureFormatRGBA32Float,
	desc.R32Float:            wgpu.TextureFormatR32Float,
	desc.RG32Float:           wgpu.TextureFormatRG32Float,
	desc.R32Uint:             wgpu.TextureFormatR32Uint,
	desc.R32Sint:             wgpu.TextureFormatR32Sint,
	desc.Depth32Float:        wgpu.TextureFormatDepth32Float,
	desc.Depth24PlusStencil8: wgpu.TextureFormatDepth24PlusStencil8,
}

// BufferUsage returns the WebGPU usage of a buffer.  All buffers
// can be written and copied from.
func BufferUsage(u desc.BufferUsages) wgpu.BufferUsage {
	usage := wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc
	if u.HasFlag(desc.VertexUsage) {
		usage |= wgpu.BufferUsageVertex
	}
	if u.HasFlag(desc.IndexUsage) {
		usage |= wgpu.BufferUsageIndex
	}
	if u.HasFlag(desc.StorageUsage) || u == 0 {
		usage |= wgpu.BufferUsageStorage
	}
	if u.HasFlag(desc.UniformUsage) {
		usage |= wgpu.BufferUsageUniform
	}
	if u.HasFlag(desc.IndirectUsage) {
		usage |= wgpu.BufferUsageIndirect
	}
	return usage
}

func (b *Backend) CreateBuffer(bd *desc.BufferDesc) (desc.Handle, error) {
	usage := BufferUsage(bd.Usage)
	size := bd.Size()
	var buf *wgpu.Buffer
	var err error
	if len(bd.Data) == size {
		buf, err = b.Device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    bd.Name,
			Contents: bd.Data,
			Usage:    usage,
		})
	} else {
		buf, err = b.Device.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: bd.Name,
			Size:  uint64(size),
			Usage: usage,
		})
		if err == nil && len(bd.Data) > 0 {
			err = b.Device.Queue.WriteBuffer(buf, 0, bd.Data[:min(len(bd.Data), size)])
		}
	}
	if err != nil {
		return 0, err
	}
	if Debug {
		slog.Info("webgpu: created buffer", "name", bd.Name, "size", size)
	}
	return b.add(buf), nil
}

func (b *Backend) CreateTexture(td *desc.TextureDesc) (desc.Handle, error) {
	format, ok := Formats[td.Format]
	if !ok {
		return 0, fmt.Errorf("webgpu: unsupported format %s", td.Format)
	}
	usage := wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst | wgpu.TextureUsageCopySrc
	if td.RenderTarget || td.DepthStencil {
		usage |= wgpu.TextureUsageRenderAttachment
	}
	if td.Storage {
		usage |= wgpu.TextureUsageStorageBinding
	}
	dim := wgpu.TextureDimension2D
	if td.Size[2] > 1 {
		dim = wgpu.TextureDimension3D
	}
	t, err := b.Device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: td.Name,
		Size: wgpu.Extent3D{
			Width:              uint32(td.Size[0]),
			Height:             uint32(td.Size[1]),
			DepthOrArrayLayers: uint32(td.Size[2]),
		},
		MipLevelCount: uint32(max(td.Mips, 1)),
		SampleCount:   uint32(max(td.Samples, 1)),
		Dimension:     dim,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		return 0, err
	}
	if len(td.Data) > 0 {
		size := wgpu.Extent3D{Width: uint32(td.Size[0]), Height: uint32(td.Size[1]), DepthOrArrayLayers: 1}
		err = b.Device.Queue.WriteTexture(
			&wgpu.ImageCopyTexture{
				Aspect:   wgpu.TextureAspectAll,
				Texture:  t,
				MipLevel: 0,
				Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
			},
			td.Data,
			&wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  4 * uint32(td.Size[0]),
				RowsPerImage: uint32(td.Size[1]),
			},
			&size,
		)
		if err != nil {
			t.Release()
			return 0, err
		}
	}
	if Debug {
		slog.Info("webgpu: created texture", "name", td.Name, "size", td.Size, "format", td.Format)
	}
	return b.add(&Texture{Texture: t, Desc: *td}), nil
}

func (b *Backend) CreateView(vd *desc.ViewDesc) (desc.Handle, error) {
	if vd.Buffer != 0 {
		buf, ok := b.objects[vd.Buffer].(*wgpu.Buffer)
		if !ok {
			return 0, fmt.Errorf("webgpu: view %s of invalid buffer %d", vd.Name, vd.Buffer)
		}
		return b.add(&View{Buffer: buf, Desc: *vd}), nil
	}
	tx, ok := b.objects[vd.Texture].(*Texture)
	if !ok {
		return 0, fmt.Errorf("webgpu: view %s of invalid texture %d", vd.Name, vd.Texture)
	}
	vw, err := tx.Texture.CreateView(&wgpu.TextureViewDescriptor{
		Label:           vd.Name,
		Format:          Formats[tx.Desc.Format],
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    uint32(vd.Mip),
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectAll,
	})
	if err != nil {
		return 0, err
	}
	return b.add(&View{View: vw, Desc: *vd}), nil
}

var addressModes = map[desc.AddressModes]wgpu.AddressMode{
	desc.Wrap:   wgpu.AddressModeRepeat,
	desc.Clamp:  wgpu.AddressModeClampToEdge,
	desc.Mirror: wgpu.AddressModeMirrorRepeat,
}

var compareFuncs = map[desc.CompareFuncs]wgpu.CompareFunction{
	desc.CompareNever:        wgpu.CompareFunctionNever,
	desc.CompareLess:         wgpu.CompareFunctionLess,
	desc.CompareEqual:        wgpu.CompareFunctionEqual,
	desc.CompareLessEqual:    wgpu.CompareFunctionLessEqual,
	desc.CompareGreater:      wgpu.CompareFunctionGreater,
	desc.CompareNotEqual:     wgpu.CompareFunctionNotEqual,
	desc.CompareGreaterEqual: wgpu.CompareFunctionGreaterEqual,
	desc.CompareAlways:       wgpu.CompareFunctionAlways,
}

func (b *Backend) CreateSampler(sd *desc.SamplerDesc) (desc.Handle, error) {
	filter, mip := wgpu.FilterModeLinear, wgpu.MipmapFilterModeLinear
	anisotropy := uint16(1)
	switch sd.Filter {
	case desc.Point:
		filter, mip = wgpu.FilterModeNearest, wgpu.MipmapFilterModeNearest
	case desc.Anisotropic:
		anisotropy = 16
	}
	am := addressModes[sd.Address]
	sdesc := &wgpu.SamplerDescriptor{
		Label:         sd.Name,
		AddressModeU:  am,
		AddressModeV:  am,
		AddressModeW:  am,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  mip,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: anisotropy,
	}
	if sd.IsCompare {
		sdesc.Compare = compareFuncs[sd.Compare]
	}
	s, err := b.Device.Device.CreateSampler(sdesc)
	if err != nil {
		return 0, err
	}
	return b.add(s), nil
}

func (b *Backend) CreateConstantBuffer(name string, size int) (desc.Handle, error) {
	buf, err := b.Device.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: name,
		Size:  uint64(size),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return 0, err
	}
	return b.add(buf), nil
}

func (b *Backend) WriteConstantBuffer(h desc.Handle, data []byte) error {
	buf, ok := b.objects[h].(*wgpu.Buffer)
	if !ok {
		return fmt.Errorf("webgpu: write to invalid constant buffer %d", h)
	}
	return b.Device.Queue.WriteBuffer(buf, 0, data)
}

func (b *Backend) Release(h desc.Handle) {
	ob, ok := b.objects[h]
	if !ok {
		return
	}
	delete(b.objects, h)
	switch x := ob.(type) {
	case *wgpu.Buffer:
		x.Release()
	case *Texture:
		x.Texture.Release()
	case *View:
		if x.View != nil {
			x.View.Release()
		}
	case *wgpu.Sampler:
		x.Release()
	}
}

// Buffer returns the buffer or constant buffer of a handle, or nil.
func (b *Backend) Buffer(h desc.Handle) *wgpu.Buffer {
	buf, _ := b.objects[h].(*wgpu.Buffer)
	return buf
}

// View returns the view of a handle, or nil.
func (b *Backend) View(h desc.Handle) *View {
	vw, _ := b.objects[h].(*View)
	return vw
}

// Sampler returns the sampler of a handle, or nil.
func (b *Backend) Sampler(h desc.Handle) *wgpu.Sampler {
	s, _ := b.objects[h].(*wgpu.Sampler)
	return s
}

// Close releases every remaining object and the device.
func (b *Backend) Close() {
	for h := range b.objects {
		b.Release(h)
	}
	if b.Device != nil {
		b.Device.Release()
	}
	if b.GPU != nil {
		b.GPU.Release()
	}
}
