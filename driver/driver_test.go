// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/rdl/desc"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/memgpu"
	"cogentcore.org/rdl/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waveDoc = `
ComputeShader Wave { file = "wave.wgsl"; }
ComputeShader Blur { file = "blur.wgsl"; }

Texture Screen { format = RGBA16Float; }

Tunable Speed { value = 2.0; min = 0; max = 10; }
Tunable Tint { value = {1.0, 0.5, 0.25}; }

Dispatch Step {
	shader = Wave;
	threads = {DisplaySize().x, DisplaySize().y, 1};
	bind output = Screen;
	set time = Time() * @Speed;
}

Passes { Step, Dispatch { shader = Blur; groups = 1; bind output = Screen; } }
`

func waveCompiler() *shader.MapCompiler {
	rf := func() *shader.Reflection {
		return &shader.Reflection{
			Resources: []shader.Resource{
				{Name: "output", Kind: shader.Writable, Slot: 0, Texture: true},
			},
			ConstantBuffers: []*shader.ConstantBuffer{{
				Name: "params", Slot: 1, Size: 16,
				Variables: []shader.Variable{
					{Name: "time", Offset: 0, Size: 4, Type: expr.FloatType},
				},
			}},
			Workgroup: [3]int{8, 8, 1},
		}
	}
	return &shader.MapCompiler{
		Reflections: map[string]*shader.Reflection{"wave.wgsl": rf(), "blur.wgsl": rf()},
	}
}

// newDriver writes the document to a temporary directory and loads it.
func newDriver(t *testing.T, src string) (*Driver, *memgpu.Backend) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wave.rdl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0666))
	be := memgpu.New()
	dr := New(path, waveCompiler(), be)
	require.NoError(t, dr.Load())
	dr.SetDisplaySize(640, 480)
	dr.SetTime(1)
	require.NoError(t, dr.Frame())
	t.Cleanup(dr.Close)
	return dr, be
}

func timeConstant(t *testing.T, dr *Driver, be *memgpu.Backend) float32 {
	t.Helper()
	step := dr.Desc.Symbol("Step").(*desc.Dispatch)
	ob := be.Object(step.ConstantBuffers[0].Handle)
	require.NotNil(t, ob)
	return math.Float32frombits(binary.LittleEndian.Uint32(ob.Data))
}

func TestLoadFrame(t *testing.T) {
	dr, be := newDriver(t, waveDoc)

	comp := dr.Compiler.(*shader.MapCompiler)
	assert.Equal(t, 1, comp.Compiles[shader.Key("wave.wgsl", "main", shader.Compute)])
	assert.Equal(t, 1, comp.Compiles[shader.Key("blur.wgsl", "main", shader.Compute)])

	screen := dr.Desc.Symbol("Screen").(*desc.Texture)
	assert.Equal(t, [3]int{640, 480, 1}, screen.CurSize)
	step := dr.Desc.Symbol("Step").(*desc.Dispatch)
	assert.Equal(t, [3]int{80, 60, 1}, step.GroupCount)
	assert.Equal(t, float32(2), timeConstant(t, dr, be))
	assert.Equal(t, expr.NoDeps, dr.Changed())

	dr.SetTime(1.5)
	assert.Equal(t, expr.TimeDep, dr.Changed())
	handle := screen.Handle
	require.NoError(t, dr.Frame())
	assert.Equal(t, float32(3), timeConstant(t, dr, be))
	assert.Equal(t, handle, screen.Handle)

	dr.SetDisplaySize(640, 480)
	assert.Equal(t, expr.NoDeps, dr.Changed())
	dr.SetDisplaySize(320, 240)
	require.NoError(t, dr.Frame())
	assert.NotEqual(t, handle, screen.Handle)
	assert.Equal(t, [3]int{320, 240, 1}, screen.CurSize)
	assert.Equal(t, [3]int{40, 30, 1}, step.GroupCount)
}

func TestSetTunable(t *testing.T) {
	dr, be := newDriver(t, waveDoc)

	require.NoError(t, dr.SetTunable("Speed", expr.FloatValue(4)))
	assert.Equal(t, dr.Tunable("Speed").Dep(), dr.Changed())
	require.NoError(t, dr.Frame())
	assert.Equal(t, float32(4), timeConstant(t, dr, be))

	require.NoError(t, dr.SetTunable("Speed", expr.FloatValue(100)))
	require.NoError(t, dr.Frame())
	assert.Equal(t, float32(10), timeConstant(t, dr, be))

	assert.Error(t, dr.SetTunable("Nope", expr.FloatValue(1)))
	assert.Error(t, dr.SetTunable("Speed", expr.IntValue(1)))

	dr.ResetTunables()
	require.NoError(t, dr.Frame())
	assert.Equal(t, float32(2), timeConstant(t, dr, be))
}

func TestReloadKeepsPrevious(t *testing.T) {
	dr, be := newDriver(t, waveDoc)
	require.NoError(t, dr.SetTunable("Speed", expr.FloatValue(3)))
	require.NoError(t, dr.Frame())
	old := dr.Desc

	require.NoError(t, os.WriteFile(dr.Path, []byte(`Texture T { sise = 1; }`), 0666))
	dr.RequestReload(dr.Path)
	dr.RequestReload(dr.Path)
	err := dr.Frame()
	assert.True(t, desc.IsKind(err, desc.Syntactic), "%v", err)
	assert.Same(t, old, dr.Desc)
	assert.True(t, desc.IsKind(dr.Err, desc.Syntactic))
	assert.Equal(t, float32(3), timeConstant(t, dr, be))
	// the previous description keeps running
	require.NoError(t, dr.Frame())

	bad := `ComputeShader S { file = "missing.wgsl"; } Dispatch { shader = S; }`
	assert.Error(t, dr.LoadSource([]byte(bad)))
	assert.True(t, desc.IsKind(dr.Err, desc.Resolution))
	assert.Same(t, old, dr.Desc)

	require.NoError(t, os.WriteFile(dr.Path, []byte(waveDoc), 0666))
	dr.RequestReload(dr.Path)
	require.NoError(t, dr.Frame())
	assert.NotSame(t, old, dr.Desc)
	assert.NoError(t, dr.Err)
	assert.Equal(t, float32(3), dr.Tunable("Speed").Value.F[0])
	assert.Equal(t, float32(3), timeConstant(t, dr, be))

	// the constants of Step, the texture and the view of each bind
	assert.Equal(t, 4, be.Live())
}

func TestPresets(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			dr, _ := newDriver(t, waveDoc)
			require.NoError(t, dr.SetTunable("Speed", expr.FloatValue(5)))
			require.NoError(t, dr.SetTunable("Tint", expr.FloatVec(0, 1, 0.5)))
			fn := filepath.Join(t.TempDir(), "preset"+ext)
			require.NoError(t, dr.SavePreset(fn))

			dr.ResetTunables()
			require.NoError(t, dr.Frame())
			assert.Equal(t, float32(2), dr.Tunable("Speed").Value.F[0])

			require.NoError(t, dr.LoadPreset(fn))
			assert.Equal(t, float32(5), dr.Tunable("Speed").Value.F[0])
			assert.Equal(t, expr.FloatVec(0, 1, 0.5), dr.Tunable("Tint").Value)
			assert.True(t, dr.Changed().Has(dr.Tunable("Tint").Dep()))
		})
	}
}

func TestApplyPresetErrors(t *testing.T) {
	dr, _ := newDriver(t, waveDoc)
	err := dr.ApplyPreset(Preset{"Speed": 7.0, "Nope": 1.0, "Tint": []any{1.0, 2.0}})
	assert.ErrorContains(t, err, "unknown tunable Nope")
	assert.ErrorContains(t, err, "expected float3, got 2 numbers")
	assert.Equal(t, float32(7), dr.Tunable("Speed").Value.F[0])
}

func TestWatch(t *testing.T) {
	dr, _ := newDriver(t, waveDoc)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- dr.Watch(ctx) }()

	// the watcher may not be running yet, so keep touching the file
	require.Eventually(t, func() bool {
		os.WriteFile(dr.Path, []byte(waveDoc), 0666)
		return len(dr.reload) == 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
	require.NoError(t, dr.Frame())
	assert.Empty(t, dr.reload)
}
