// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"testing"

	"cogentcore.org/rdl/desc"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	for _, f := range desc.FormatsValues() {
		_, ok := Formats[f]
		assert.True(t, ok, "format %s", f)
	}
	for _, c := range desc.CompareFuncsValues() {
		_, ok := compareFuncs[c]
		assert.True(t, ok, "compare %s", c)
	}
}

func TestBufferUsage(t *testing.T) {
	var du desc.BufferUsages
	du.SetFlag(true, desc.VertexUsage, desc.IndexUsage)
	u := BufferUsage(du)
	assert.NotZero(t, u&wgpu.BufferUsageVertex)
	assert.NotZero(t, u&wgpu.BufferUsageIndex)
	assert.NotZero(t, u&wgpu.BufferUsageCopyDst)
	assert.Zero(t, u&wgpu.BufferUsageStorage)
	assert.Zero(t, u&wgpu.BufferUsageIndirect)

	assert.NotZero(t, BufferUsage(0)&wgpu.BufferUsageStorage)

	du = 0
	du.SetFlag(true, desc.IndirectUsage)
	assert.NotZero(t, BufferUsage(du)&wgpu.BufferUsageIndirect)
	assert.Zero(t, BufferUsage(du)&wgpu.BufferUsageStorage)
}

func TestBackend(t *testing.T) {
	t.Skip("Need software GPU on CI")

	be, err := NewBackend()
	require.NoError(t, err)
	defer be.Close()

	bd := &desc.BufferDesc{Name: "b", ElementSize: 4, Count: 4, Data: make([]byte, 8)}
	bd.Usage.SetFlag(true, desc.StorageUsage)
	bh, err := be.CreateBuffer(bd)
	require.NoError(t, err)
	assert.NotNil(t, be.Buffer(bh))

	th, err := be.CreateTexture(&desc.TextureDesc{Name: "t", Size: [3]int{64, 64, 1}, Format: desc.RGBA8Unorm, Mips: 1, Samples: 1, Storage: true})
	require.NoError(t, err)
	vh, err := be.CreateView(&desc.ViewDesc{Name: "v", Kind: desc.UAV, Texture: th})
	require.NoError(t, err)
	assert.NotNil(t, be.View(vh).View)

	sh, err := be.CreateSampler(&desc.SamplerDesc{Name: "s", Filter: desc.Point, Address: desc.Clamp})
	require.NoError(t, err)
	assert.NotNil(t, be.Sampler(sh))

	ch, err := be.CreateConstantBuffer("c", 16)
	require.NoError(t, err)
	assert.NoError(t, be.WriteConstantBuffer(ch, make([]byte, 16)))

	be.Release(vh)
	assert.Nil(t, be.View(vh))
	_, err = be.CreateView(&desc.ViewDesc{Name: "v", Kind: desc.SRV, Texture: vh})
	assert.Error(t, err)
}
