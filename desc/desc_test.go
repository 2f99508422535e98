// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
	"testing/fstest"

	"cogentcore.org/rdl/desc"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/memgpu"
	"cogentcore.org/rdl/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simDoc = `
ComputeShader Sim { file = "sim.wgsl"; }

Texture Color { format = RGBA8Unorm; }
Texture Fixed { size = {256, 256}; }

Buffer Particles { elementSize = 16; count = 1024; storage; }

Tunable Speed { value = 2.0; min = 0; max = 10; }

Dispatch Step {
	shader = Sim;
	threads = {1024, 1, 1};
	bind particles = Particles;
	bind output = Color;
	set time = Time() * @Speed;
}

Passes { Step, ClearColor { color = {0, 0, 0, 1}; } }
`

func simCompiler() *shader.MapCompiler {
	return &shader.MapCompiler{
		Files: map[string]string{"sim.wgsl": "struct P { x: vec4f, }"},
		Reflections: map[string]*shader.Reflection{
			"sim.wgsl": {
				Resources: []shader.Resource{
					{Name: "particles", Kind: shader.Writable, Group: 0, Slot: 0},
					{Name: "output", Kind: shader.Writable, Group: 0, Slot: 1, Texture: true},
					{Name: "samp", Kind: shader.Sampler, Group: 0, Slot: 3},
				},
				ConstantBuffers: []*shader.ConstantBuffer{{
					Name: "params", Group: 0, Slot: 2, Size: 32,
					Variables: []shader.Variable{
						{Name: "time", Offset: 0, Size: 4, Type: expr.FloatType},
						{Name: "scale", Offset: 4, Size: 4, Type: expr.FloatType, Default: expr.FloatValue(1.5).Bytes()},
						{Name: "color", Offset: 16, Size: 16, Type: expr.Vec(expr.Float, 4)},
					},
				}},
				Workgroup: [3]int{64, 1, 1},
			},
		},
	}
}

// load parses, resolves and evaluates the document for an 800x600 display.
func load(t *testing.T, src string) (*desc.Description, *memgpu.Backend, *expr.Context) {
	t.Helper()
	d, err := desc.Parse([]byte(src))
	require.NoError(t, err)
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(simCompiler(), be))
	ctx := &expr.Context{Time: 1, DisplaySize: [2]int32{800, 600}}
	require.NoError(t, d.Reevaluate(ctx, expr.AllDeps))
	return d, be, ctx
}

func float32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestParseResolve(t *testing.T) {
	d, be, _ := load(t, simDoc)

	assert.Len(t, d.ComputeShaders, 1)
	assert.Len(t, d.Textures, 2)
	assert.Len(t, d.Buffers, 1)
	assert.Len(t, d.Views, 2)
	assert.Equal(t, []string{"Sim", "Color", "Fixed", "Particles", "Speed", "Step"}, d.Names())
	require.Len(t, d.Passes, 2)
	assert.Equal(t, desc.DispatchPass, d.Passes[0].Kind)
	assert.Equal(t, "Step", d.Passes[0].Name())
	assert.Equal(t, desc.ClearColorPass, d.Passes[1].Kind)

	color := d.Symbol("Color").(*desc.Texture)
	assert.Equal(t, [3]int{800, 600, 1}, color.CurSize)
	assert.True(t, color.Storage)
	fixed := d.Symbol("Fixed").(*desc.Texture)
	assert.Equal(t, [3]int{256, 256, 1}, fixed.CurSize)

	step := d.Symbol("Step").(*desc.Dispatch)
	assert.Equal(t, [3]int{16, 1, 1}, step.GroupCount)
	require.Len(t, step.Binds, 2)
	for _, b := range step.Binds {
		require.NotNil(t, b.Resolved)
		assert.True(t, b.Resolved.IsOutput)
		assert.Equal(t, desc.UAV, b.View.Kind)
		assert.True(t, b.View.Implicit)
		assert.NotZero(t, b.View.Handle)
	}
	assert.Equal(t, 1, step.Binds[1].Resolved.Slot)

	require.Len(t, step.ConstantBuffers, 1)
	cb := step.ConstantBuffers[0]
	assert.Equal(t, "Step.params", cb.Name)
	ob := be.Object(cb.Handle)
	require.NotNil(t, ob)
	assert.Equal(t, float32(2), float32At(ob.Data, 0))
	assert.Equal(t, float32(1.5), float32At(ob.Data, 4))
	assert.Equal(t, 1, ob.Writes)

	assert.Equal(t, [4]float32{0, 0, 0, 1}, d.ClearColors[0].CurColor)
	assert.True(t, d.ClearColors[0].Target.IsSystem)

	// constants buffer, buffer, 2 textures, 2 views
	assert.Equal(t, 6, be.Live())
	d.Release()
	assert.Equal(t, 0, be.Live())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind desc.ErrorKinds
		msg  string
	}{
		{`Texture T { sise = {1, 1}; }`, desc.Syntactic, "unknown field sise in Texture"},
		{`Buffer B { elementSize = 4; count = 1; } Buffer B { elementSize = 4; count = 1; }`, desc.Syntactic, "duplicate definition of B"},
		{`Dispatch { shader = Nope; }`, desc.Syntactic, "undefined ComputeShader Nope"},
		{`Texture T { mips = -1; }`, desc.Syntactic, "expected unsigned integer, got '-'"},
		{`Texture T { format = Purple; }`, desc.Syntactic, "unknown format Purple"},
		{`Frobnicate X { }`, desc.Syntactic, "unknown structure kind Frobnicate"},
		{`Texture Backbuffer { }`, desc.Syntactic, "Backbuffer is a reserved name"},
		{`Buffer B { elementSize = 4; count = 1 + 2.0; }`, desc.Type, "operator + expected int, got float"},
		{`Texture T { size = {1, 2, 3, 4, 5}; }`, desc.Syntactic, "vector expected 2 to 4 components, got 5"},
		{`Texture T { size = {1, 2}.z; }`, desc.Type, "subscript 2 out of range for int2"},
		{`Buffer B { elementSize = 4; count = frob(2); }`, desc.Syntactic, "unknown function frob"},
		{`Buffer B { elementSize = 4; count = min(2); }`, desc.Syntactic, "min expected 2 arguments, got 1"},
		{`Tunable T { value = Time(); }`, desc.Type, "Tunable T value must be constant"},
		{`Texture T { size = "big"; }`, desc.Syntactic, "expected expression, got string"},
		{`Texture T { size = 1.5; }`, desc.Type, "texture size expected int2 or int3, got float"},
		{`Texture T { $ }`, desc.Lexical, ""},
		{`ComputeShader S { file = "unterminated; }`, desc.Lexical, ""},
	}
	for _, tt := range tests {
		d, err := desc.Parse([]byte(tt.src))
		assert.Nil(t, d, tt.src)
		require.Error(t, err, tt.src)
		assert.True(t, desc.IsKind(err, tt.kind), "%s: %v", tt.src, err)
		if tt.msg != "" {
			assert.ErrorContains(t, err, tt.msg, tt.src)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := desc.Parse([]byte("Texture T {\n\tsise = {1, 1};\n}"))
	require.Error(t, err)
	var de *desc.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 13, de.Pos.Off)
	assert.Equal(t, "2:2", de.Pos.String())
	assert.Equal(t, "2:2 (offset 13): unknown field sise in Texture", err.Error())
}

func TestExpressions(t *testing.T) {
	d, err := desc.Parse([]byte(`
Tunable Scale { value = {1, 2.5}; }
Buffer A { elementSize = 4; count = -(-3) * 2 + 10 % 4; }
Buffer B { elementSize = 4; count = DisplaySize().x / 8; }
Buffer C { elementSize = 4; count = int(@Scale.y * 4.0); }
Texture T { size = DisplaySize() / 2; }
`))
	require.NoError(t, err)
	ctx := &expr.Context{DisplaySize: [2]int32{640, 480}, Tunables: d.Tunables}

	tn := d.Tunables[0]
	assert.Equal(t, expr.FloatVec(1, 2.5), tn.Value)

	a := d.Buffers[0].Count
	assert.True(t, a.IsConstant())
	v, err := expr.Eval(a, ctx)
	require.NoError(t, err)
	assert.Equal(t, expr.IntValue(8), v)

	b := d.Buffers[1].Count
	assert.Equal(t, expr.DisplaySizeDep, b.Deps)
	v, err = expr.Eval(b, ctx)
	require.NoError(t, err)
	assert.Equal(t, expr.IntValue(80), v)

	c := d.Buffers[2].Count
	assert.Equal(t, tn.Dep(), c.Deps)
	v, err = expr.Eval(c, ctx)
	require.NoError(t, err)
	assert.Equal(t, expr.IntValue(10), v)

	v, err = expr.Eval(d.Textures[0].Size, ctx)
	require.NoError(t, err)
	assert.Equal(t, expr.IntVec(320, 240), v)
}

func TestDisplaySizeRecreate(t *testing.T) {
	d, be, ctx := load(t, simDoc)
	color := d.Symbol("Color").(*desc.Texture)
	fixed := d.Symbol("Fixed").(*desc.Texture)
	parts := d.Symbol("Particles").(*desc.Buffer)
	colorView := d.Dispatches[0].Binds[1].View
	ch, fh, ph, vh := color.Handle, fixed.Handle, parts.Handle, colorView.Handle

	// only time changed
	be.ResetLog()
	ctx.Time = 2
	require.NoError(t, d.Reevaluate(ctx, expr.TimeDep))
	assert.Equal(t, ch, color.Handle)
	assert.Equal(t, vh, colorView.Handle)
	assert.Equal(t, fh, fixed.Handle)
	assert.Equal(t, ph, parts.Handle)
	assert.Equal(t, []string{"write Step.params"}, be.Log)

	// display size reported as changed but equal
	require.NoError(t, d.Reevaluate(ctx, expr.DisplaySizeDep))
	assert.Equal(t, ch, color.Handle)

	ctx.DisplaySize = [2]int32{1024, 768}
	require.NoError(t, d.Reevaluate(ctx, expr.DisplaySizeDep))
	assert.NotEqual(t, ch, color.Handle)
	assert.NotEqual(t, vh, colorView.Handle)
	assert.Equal(t, [3]int{1024, 768, 1}, color.CurSize)
	assert.Equal(t, fh, fixed.Handle)
	assert.Equal(t, ph, parts.Handle)
	assert.Nil(t, be.Object(ch))
	assert.Nil(t, be.Object(vh))
	ob := be.Object(colorView.Handle)
	require.NotNil(t, ob)
	assert.Equal(t, color.Handle, ob.View.Texture)
	assert.Equal(t, desc.UAV, ob.View.Kind)
}

func TestTunableChange(t *testing.T) {
	d, be, ctx := load(t, simDoc)
	step := d.Dispatches[0]
	ob := be.Object(step.ConstantBuffers[0].Handle)
	require.NotNil(t, ob)

	speed := d.Symbol("Speed").(*expr.Tunable)
	changed, err := speed.Set(expr.FloatValue(20))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, expr.FloatValue(10), speed.Value)
	require.NoError(t, d.Reevaluate(ctx, speed.Dep()))
	assert.Equal(t, float32(10), float32At(ob.Data, 0))
	assert.Equal(t, 2, ob.Writes)

	require.NoError(t, d.Reevaluate(ctx, expr.DisplaySizeDep))
	assert.Equal(t, 2, ob.Writes)

	_, err = speed.Set(expr.IntValue(1))
	assert.ErrorContains(t, err, "tunable Speed expected float, got int")
}

func TestConstantSizeMismatch(t *testing.T) {
	src := bytes.Replace([]byte(simDoc), []byte("set time = Time() * @Speed;"), []byte("set color = {1.0, 0.5, 0.25};"), 1)
	d, err := desc.Parse(src)
	require.NoError(t, err)
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(simCompiler(), be))
	err = d.Reevaluate(&expr.Context{DisplaySize: [2]int32{8, 8}}, expr.AllDeps)
	require.Error(t, err)
	assert.True(t, desc.IsKind(err, desc.Type))
	assert.ErrorContains(t, err, "constant color does not match size: expected 16, actual 12")
	// the failing constant does not stop the rest of the frame
	assert.NotZero(t, d.Symbol("Color").(*desc.Texture).Handle)
}

func TestResolveErrors(t *testing.T) {
	replace := func(bind string) []byte {
		return bytes.Replace([]byte(simDoc), []byte("bind output = Color;"), []byte(bind), 1)
	}
	tests := []struct {
		src  []byte
		kind desc.ErrorKinds
		msg  string
	}{
		{replace("bind missing = Color;"), desc.Resolution, "couldn't find resource missing in shader sim.wgsl"},
		{replace("bind output = Sampler { filter = point; };"), desc.Type, "mismatched bind output: expected UAV, got Sampler"},
		{replace("bind samp = Color;"), desc.Type, "mismatched bind samp: expected Sampler, got view"},
		{replace("bind output = Particles;"), desc.Type, "mismatched bind output: expected texture, got buffer"},
		{replace("bind output = View { texture = Color; kind = srv; };"), desc.Type, "mismatched bind output: expected UAV, got SRV"},
		{replace("set nope = 1.0;"), desc.Resolution, "couldn't find constant nope in shader sim.wgsl"},
	}
	for _, tt := range tests {
		d, err := desc.Parse(tt.src)
		require.NoError(t, err)
		err = d.ResolveBindings(simCompiler(), memgpu.New())
		require.Error(t, err, tt.msg)
		assert.True(t, desc.IsKind(err, tt.kind), "%s: %v", tt.msg, err)
		assert.ErrorContains(t, err, tt.msg)
	}

	d, err := desc.Parse([]byte(`ComputeShader S { file = "none.wgsl"; }`))
	require.NoError(t, err)
	err = d.ResolveBindings(simCompiler(), memgpu.New())
	assert.True(t, desc.IsKind(err, desc.Resolution))
	assert.ErrorContains(t, err, "none.wgsl")
}

func TestStructBuffer(t *testing.T) {
	d, err := desc.Parse([]byte(`
ComputeShader Sim { file = "sim.wgsl"; }
Buffer P { structFile = "sim.wgsl"; struct = P; count = 10; }
Buffer Q { data = {1, 2.5, -3}; vertex; }
`))
	require.NoError(t, err)
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(simCompiler(), be))
	require.NoError(t, d.Reevaluate(&expr.Context{}, expr.AllDeps))
	assert.Equal(t, 16, d.Buffers[0].ElementSize)
	assert.Equal(t, 160, d.Buffers[0].Size())

	q := d.Buffers[1]
	assert.Equal(t, 3, q.CurCount)
	ob := be.Object(q.Handle)
	require.NotNil(t, ob)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(ob.Data))
	assert.Equal(t, float32(2.5), float32At(ob.Data, 4))
	assert.Equal(t, int32(-3), int32(binary.LittleEndian.Uint32(ob.Data[8:])))
	assert.True(t, ob.Buffer.Usage.HasFlag(desc.VertexUsage))
	assert.False(t, ob.Buffer.Usage.HasFlag(desc.StorageUsage))
	assert.Equal(t, "VertexUsage", ob.Buffer.Usage.String())

	p := d.Buffers[0]
	assert.Equal(t, "", p.Usage.String())
}

func TestDraw(t *testing.T) {
	src := `
VertexShader VS { file = "sim.wgsl"; entry = "vs_main"; }
PixelShader PS { file = "sim.wgsl"; entry = "fs_main"; }
Texture Scene { format = RGBA16Float; }
Texture Depth { format = Depth32Float; }
Draw Main {
	vertexShader = VS;
	pixelShader = PS;
	vertexCount = 3;
	instanceCount = 2 * 2;
	topology = triangleStrip;
	renderTarget = Scene;
	depthTarget = Depth;
	viewport = {0, 0, 400, 300};
	rasterizerState = RasterizerState { cull = none; };
	blendState = BlendState { enable; src = srcAlpha; dst = invSrcAlpha; };
}
Passes { ClearDepth { target = Depth; }, Main, }
`
	d, be, _ := load(t, src)
	dr := d.Draws[0]
	assert.Equal(t, "vs_main", dr.VertexShader.Entry)
	assert.Equal(t, 3, dr.CurVertexCount)
	assert.Equal(t, 4, dr.CurInstanceCount)
	assert.Equal(t, desc.TriangleStrip, dr.Topology)
	assert.Equal(t, [4]float32{0, 0, 400, 300}, dr.CurViewport)
	assert.Equal(t, desc.CullNone, dr.RasterizerState.Cull)
	assert.Equal(t, desc.BlendInvSrcAlpha, dr.BlendState.Dst)
	assert.Nil(t, dr.DepthStencilState)

	scene := d.Symbol("Scene").(*desc.Texture)
	assert.True(t, scene.RenderTarget)
	assert.Equal(t, desc.RTV, dr.RenderTarget.View.Kind)
	ob := be.Object(dr.RenderTarget.View.Handle)
	require.NotNil(t, ob)
	assert.Equal(t, desc.RGBA16Float, ob.View.Format)
	assert.True(t, d.Symbol("Depth").(*desc.Texture).DepthStencil)

	require.Len(t, d.Passes, 2)
	assert.Equal(t, desc.ClearDepthPass, d.Passes[0].Kind)
	assert.Equal(t, float32(1), d.Passes[0].ClearDepth.CurDepth)
	assert.Contains(t, d.Summary(), "DrawPass Main vertices 3 instances 4")
}

func TestShaderStageMismatch(t *testing.T) {
	_, err := desc.Parse([]byte(`
PixelShader PS { file = "a.wgsl"; }
Draw { vertexShader = PS; vertexCount = 3; }
`))
	assert.ErrorContains(t, err, "PS is not a VertexShader")
}

func TestDump(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, desc.Dump(&b, []byte(`Texture T { size = {1, 2}; }`)))
	out := b.String()
	assert.Contains(t, out, "identifier Texture")
	assert.Contains(t, out, "integer 2")
	assert.Contains(t, out, "'{'")
}

func TestTextureFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	var pb bytes.Buffer
	require.NoError(t, png.Encode(&pb, img))
	fsys := fstest.MapFS{"noise.png": {Data: pb.Bytes()}}

	d, err := desc.Parse([]byte(`Texture Noise { file = "noise.png"; format = RGBA8UnormSrgb; }`))
	require.NoError(t, err)
	require.NoError(t, d.LoadImages(fsys))
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(simCompiler(), be))
	require.NoError(t, d.Reevaluate(&expr.Context{}, expr.AllDeps))

	noise := d.Symbol("Noise").(*desc.Texture)
	assert.Equal(t, [3]int{3, 2, 1}, noise.CurSize)
	ob := be.Object(noise.Handle)
	require.NotNil(t, ob)
	require.Len(t, ob.Data, 3*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, ob.Data[4:8])
	assert.Contains(t, d.Summary(), "Texture Noise: 3x2x1 RGBA8UnormSrgb from noise.png")

	_, err = desc.Parse([]byte(`Texture T { file = "a.png"; size = {1, 1}; }`))
	assert.ErrorContains(t, err, "file or size, not both")
	_, err = desc.Parse([]byte(`Texture T { file = "a.png"; format = R32Float; }`))
	assert.ErrorContains(t, err, "requires format RGBA8Unorm")

	d, err = desc.Parse([]byte(`Texture T { file = "missing.png"; }`))
	require.NoError(t, err)
	assert.True(t, desc.IsKind(d.LoadImages(fsys), desc.Resolution))
}

func TestFailedRecreateKeepsPrevious(t *testing.T) {
	d, be, ctx := load(t, simDoc)
	color := d.Symbol("Color").(*desc.Texture)
	colorView := d.Dispatches[0].Binds[1].View
	ch, vh := color.Handle, colorView.Handle

	be.Fail = "Color"
	ctx.DisplaySize = [2]int32{1024, 768}
	err := d.Reevaluate(ctx, expr.DisplaySizeDep)
	assert.True(t, desc.IsKind(err, desc.Resolution))
	assert.ErrorContains(t, err, "creating texture Color")
	assert.Equal(t, ch, color.Handle)
	assert.Equal(t, vh, colorView.Handle)
	assert.Equal(t, [3]int{800, 600, 1}, color.CurSize)
	assert.NotNil(t, be.Object(ch))
	assert.NotNil(t, be.Object(vh))

	be.Fail = ""
	require.NoError(t, d.Reevaluate(ctx, expr.DisplaySizeDep))
	assert.NotEqual(t, ch, color.Handle)
	assert.Equal(t, [3]int{1024, 768, 1}, color.CurSize)
	assert.Nil(t, be.Object(ch))
	assert.Nil(t, be.Object(vh))
	assert.NotZero(t, colorView.Handle)
}

func TestReevaluateBeforeResolve(t *testing.T) {
	d, err := desc.Parse([]byte(simDoc))
	require.NoError(t, err)
	assert.ErrorContains(t, d.Reevaluate(&expr.Context{}, expr.AllDeps), "before ResolveBindings")
}

// stageCompiler has a vertex and a pixel shader that both read tex,
// and compute shaders that read src and write dst.
func stageCompiler() *shader.MapCompiler {
	tex := shader.Resource{Name: "tex", Kind: shader.ReadOnly, Texture: true}
	ptex := tex
	ptex.Slot = 3
	return &shader.MapCompiler{
		Reflections: map[string]*shader.Reflection{
			"vs.wgsl": {Resources: []shader.Resource{tex}},
			"ps.wgsl": {Resources: []shader.Resource{ptex, {Name: "samp", Kind: shader.Sampler, Slot: 4}}},
			"read.wgsl": {
				Resources: []shader.Resource{{Name: "src", Kind: shader.ReadOnly, Texture: true}},
				Workgroup: [3]int{8, 8, 1},
			},
			"write.wgsl": {
				Resources: []shader.Resource{{Name: "dst", Kind: shader.Writable, Texture: true}},
				Workgroup: [3]int{8, 8, 1},
			},
		},
	}
}

const terrainDoc = `
VertexShader VS { file = "vs.wgsl"; }
PixelShader PS { file = "ps.wgsl"; }
Texture Height { size = {64, 64}; }
Texture Scene { format = RGBA16Float; }
View SceneRT { texture = Scene; }
Draw Terrain {
	vertexShader = VS;
	pixelShader = PS;
	vertexCount = 6;
	renderTarget = SceneRT;
	bind tex = Height;
	bind samp = Sampler { filter = linear; };
}
`

func TestDrawBindStages(t *testing.T) {
	d, err := desc.Parse([]byte(terrainDoc))
	require.NoError(t, err)
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(stageCompiler(), be))
	require.NoError(t, d.Reevaluate(&expr.Context{DisplaySize: [2]int32{320, 200}}, expr.AllDeps))

	dr := d.Draws[0]
	require.Len(t, dr.Binds, 2)
	tex := dr.Binds[0]
	require.Len(t, tex.Stages, 2)
	assert.Same(t, tex.Stages[0], tex.Resolved)
	assert.Equal(t, shader.Vertex, tex.Stages[0].Stage)
	assert.Equal(t, 0, tex.Stages[0].Slot)
	assert.Equal(t, shader.Pixel, tex.Stages[1].Stage)
	assert.Equal(t, 3, tex.Stages[1].Slot)
	assert.Equal(t, desc.SRV, tex.View.Kind)

	samp := dr.Binds[1]
	require.Len(t, samp.Stages, 1)
	assert.Equal(t, shader.Pixel, samp.Resolved.Stage)
	assert.Equal(t, 4, samp.Resolved.Slot)

	src := bytes.Replace([]byte(terrainDoc), []byte("bind tex = Height;"), []byte("bind nope = Height;"), 1)
	d, err = desc.Parse(src)
	require.NoError(t, err)
	err = d.ResolveBindings(stageCompiler(), memgpu.New())
	assert.True(t, desc.IsKind(err, desc.Resolution))
	assert.ErrorContains(t, err, "couldn't find resource nope in shader vs.wgsl, ps.wgsl")
}

func TestNamedViewTarget(t *testing.T) {
	d, err := desc.Parse([]byte(terrainDoc))
	require.NoError(t, err)
	be := memgpu.New()
	require.NoError(t, d.ResolveBindings(stageCompiler(), be))
	require.NoError(t, d.Reevaluate(&expr.Context{DisplaySize: [2]int32{320, 200}}, expr.AllDeps))

	rt := d.Symbol("SceneRT").(*desc.View)
	assert.Equal(t, desc.RTV, rt.Kind)
	assert.True(t, d.Symbol("Scene").(*desc.Texture).RenderTarget)
	ob := be.Object(rt.Handle)
	require.NotNil(t, ob)
	assert.Equal(t, desc.RTV, ob.View.Kind)

	replace := func(from, to string) []byte {
		return bytes.Replace([]byte(terrainDoc), []byte(from), []byte(to), 1)
	}
	_, err = desc.Parse(replace("View SceneRT { texture = Scene; }", "View SceneRT { texture = Scene; kind = srv; }"))
	assert.True(t, desc.IsKind(err, desc.Type))
	assert.ErrorContains(t, err, "mismatched target SceneRT: expected RTV, got SRV")

	_, err = desc.Parse(replace("View SceneRT { texture = Scene; }", "Buffer B { elementSize = 4; count = 4; } View SceneRT { buffer = B; }"))
	assert.ErrorContains(t, err, "mismatched target SceneRT: expected texture, got buffer")

	d, err = desc.Parse(replace("bind tex = Height;", "bind tex = SceneRT;"))
	require.NoError(t, err)
	err = d.ResolveBindings(stageCompiler(), memgpu.New())
	assert.True(t, desc.IsKind(err, desc.Type))
	assert.ErrorContains(t, err, "mismatched bind tex: expected SRV, got RTV")
}

func TestAutoViewInputThenOutput(t *testing.T) {
	d, err := desc.Parse([]byte(`
ComputeShader Read { file = "read.wgsl"; }
ComputeShader Write { file = "write.wgsl"; }
Texture Color { size = {8, 8}; }
View ColorView { texture = Color; }
Dispatch A { shader = Read; threads = {8, 8, 1}; bind src = ColorView; }
Dispatch B { shader = Write; threads = {8, 8, 1}; bind dst = ColorView; }
`))
	require.NoError(t, err)
	err = d.ResolveBindings(stageCompiler(), memgpu.New())
	assert.True(t, desc.IsKind(err, desc.Type))
	assert.ErrorContains(t, err, "mismatched bind dst: expected UAV, got SRV")
	assert.Equal(t, desc.SRV, d.Symbol("ColorView").(*desc.View).Kind)
}
