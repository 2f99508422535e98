// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/rdl/driver"
	"cogentcore.org/rdl/memgpu"
	"cogentcore.org/rdl/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clearDoc = `
Tunable Fade { value = 0.5; }
Texture Target { size = DisplaySize() / 2; renderTarget; }
Passes { ClearColor { target = View { texture = Target; kind = rtv; }; color = {@Fade, 0, 0, 1}; } }
`

func writeDoc(t *testing.T, src string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "clear.rdl")
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	return fn
}

func TestRun(t *testing.T) {
	c := &Config{Input: writeDoc(t, clearDoc), Width: 64, Height: 32, FPS: 1000, Frames: 3}
	dr := driver.New(c.Input, &shader.MapCompiler{}, memgpu.New())
	require.NoError(t, dr.Load())
	defer dr.Close()
	dr.SetDisplaySize(c.Width, c.Height)

	var b bytes.Buffer
	require.NoError(t, run(context.Background(), c, dr, &b))
	assert.Contains(t, b.String(), "Texture Target: 32x16x1 RGBA8Unorm")
	assert.Contains(t, b.String(), "Tunable Fade = 0.5")
	assert.Equal(t, [4]float32{0.5, 0, 0, 1}, dr.Desc.ClearColors[0].CurColor)
}

func TestCheck(t *testing.T) {
	c := &Config{Input: writeDoc(t, clearDoc), Width: 64, Height: 32}
	assert.NoError(t, Check(c))

	c.Input = writeDoc(t, `Texture T { size = {1, 1} + 1.0; }`)
	assert.Error(t, Check(c))
}

func TestTokens(t *testing.T) {
	c := &Config{Input: writeDoc(t, clearDoc)}
	assert.NoError(t, Tokens(c))
	c.Input = writeDoc(t, `Texture "T`)
	assert.Error(t, Tokens(c))
}
