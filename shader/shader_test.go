// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/rdl/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructSizesWGSL(t *testing.T) {
	src := `
// particles
struct Particle {
	pos: vec3<f32>,
	life: f32,
	vel: vec2f,
	@align(16) color: vec4<f32>,
}

struct Light {
	dir: vec3f,
	intensity: array<f32, 3>,
	xform: mat4x4f,
	p: Particle,
}

@group(0) @binding(0) var<storage, read_write> particles: array<Particle>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
	let i = id.x & 1u;
}
`
	ls, err := StructSizes([]byte(src))
	require.NoError(t, err)
	// pos 0..12, life 12..16, vel 16..24, color 32..48
	assert.Equal(t, Layout{Size: 48, Align: 16}, ls["Particle"])
	// dir 0..12, intensity 12..24, xform 32..96, p 96..144
	assert.Equal(t, Layout{Size: 144, Align: 16}, ls["Light"])

	sz, err := StructSize([]byte(src), "Particle")
	require.NoError(t, err)
	assert.Equal(t, 48, sz)

	_, err = StructSize([]byte(src), "Missing")
	assert.ErrorContains(t, err, "couldn't find struct Missing")
}

func TestStructSizesHLSL(t *testing.T) {
	src := `
struct Vertex
{
	float3 pos : POSITION;
	float2 uv;
	uint id;
	float4x4 xform;
	int weights[4];
};
RWStructuredBuffer<Vertex> verts : register(u0);
`
	ls, err := StructSizes([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 12+8+4+64+16, ls["Vertex"].Size)
}

func TestStructSizesErrors(t *testing.T) {
	_, err := StructSizes([]byte(`struct A { x: Unknown, }`))
	assert.ErrorContains(t, err, "unknown type Unknown")

	_, err = StructSizes([]byte(`struct A { x: f32,`))
	assert.ErrorContains(t, err, "unterminated struct A")

	for _, src := range []string{"struct S { @", "struct S { @align", "struct S { @align(16", "struct S { x: f32, @"} {
		_, err = StructSizes([]byte(src))
		assert.ErrorContains(t, err, "unterminated struct S", src)
	}
}

func TestIncludeFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/main.wgsl":   {Data: []byte("#include \"common.wgsl\"\nfn main() {}")},
		"shaders/common.wgsl": {Data: []byte("#include \"common.wgsl\"\nconst PI = 3.14;")},
	}
	mc := NewWGSLCompiler(fsys)
	b, err := mc.ReadFile("shaders/main.wgsl")
	require.NoError(t, err)
	src := string(b)
	assert.Contains(t, src, "const PI = 3.14;")
	assert.Contains(t, src, "fn main() {}")
	assert.Equal(t, 1, strings.Count(src, "const PI"))
}

func TestMapCompiler(t *testing.T) {
	mc := &MapCompiler{
		Files: map[string]string{"a.wgsl": "struct S { a: f32, }"},
		Reflections: map[string]*Reflection{
			"a.wgsl": {
				Resources: []Resource{{Name: "Output", Kind: Writable, Slot: 1, Texture: true}},
				ConstantBuffers: []*ConstantBuffer{{
					Name: "Params", Size: 32,
					Variables: []Variable{
						{Name: "Color", Offset: 0, Size: 16, Type: expr.Vec(expr.Float, 4)},
						{Name: "Scale", Offset: 16, Size: 4, Type: expr.FloatType},
					},
				}},
			},
		},
	}
	c, err := mc.Compile("a.wgsl", "main", Compute)
	require.NoError(t, err)
	rf := c.Reflection
	assert.Equal(t, "a.wgsl", rf.Path)
	assert.Equal(t, "main", rf.Entry)
	assert.Equal(t, Writable, rf.Resource("Output").Kind)
	assert.Nil(t, rf.Resource("Input"))
	cb, v := rf.Variable("Scale")
	require.NotNil(t, v)
	assert.Equal(t, "Params", cb.Name)
	assert.Equal(t, 16, v.Offset)
	assert.Equal(t, 1, mc.Compiles[Key("a.wgsl", "main", Compute)])

	_, err = mc.Compile("b.wgsl", "main", Compute)
	assert.Error(t, err)
	_, err = mc.ReadFile("b.wgsl")
	assert.Error(t, err)
}

func TestWGSLReflection(t *testing.T) {
	src := `
struct Params {
	color: vec4<f32>,
	scale: f32,
	count: u32,
}

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var<storage, read> input: array<f32>;
@group(0) @binding(2) var<storage, read_write> output: array<f32>;
@group(1) @binding(0) var tex: texture_2d<f32>;
@group(1) @binding(1) var samp: sampler;

@compute @workgroup_size(64, 1, 1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
	let i = id.x;
	output[i] = input[i] * params.scale;
}
`
	wc := NewWGSLCompiler(fstest.MapFS{"fill.wgsl": {Data: []byte(src)}})
	c, err := wc.Compile("fill.wgsl", "main", Compute)
	require.NoError(t, err)
	rf := c.Reflection
	assert.Equal(t, "fill.wgsl", rf.Path)
	assert.Equal(t, [3]int{64, 1, 1}, rf.Workgroup)
	assert.NotEmpty(t, c.Binary)

	require.NotNil(t, rf.Resource("input"))
	assert.Equal(t, ReadOnly, rf.Resource("input").Kind)
	assert.Equal(t, Writable, rf.Resource("output").Kind)
	assert.Equal(t, 2, rf.Resource("output").Slot)
	assert.Equal(t, Sampler, rf.Resource("samp").Kind)
	assert.True(t, rf.Resource("tex").Texture)
	assert.Equal(t, 1, rf.Resource("tex").Group)

	cb, v := rf.Variable("scale")
	require.NotNil(t, v)
	assert.Equal(t, "params", cb.Name)
	assert.Equal(t, 16, v.Offset)
	assert.Equal(t, expr.FloatType, v.Type)
	_, v = rf.Variable("color")
	require.NotNil(t, v)
	assert.Equal(t, 16, v.Size)
	assert.Equal(t, expr.Vec(expr.Float, 4), v.Type)

	_, err = wc.Compile("fill.wgsl", "other", Compute)
	assert.ErrorContains(t, err, "couldn't find entry point other")
	_, err = wc.Compile("fill.wgsl", "main", Pixel)
	assert.ErrorContains(t, err, "is not a Pixel shader")
}
