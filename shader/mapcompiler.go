// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"io/fs"
	"sync"
)

// MapCompiler is an in-memory [Compiler] that returns given
// reflections instead of compiling, for tests and tools that
// check descriptions without a shader toolchain.  It is safe
// for concurrent use.
type MapCompiler struct {
	// Files are the shader sources by path.
	Files map[string]string

	// Reflections are the reflections by path.  The Entry and
	// Stage of a reflection are set from each Compile call.
	Reflections map[string]*Reflection

	mu sync.Mutex

	// Compiles counts the Compile calls by [Key].
	Compiles map[string]int
}

func (mc *MapCompiler) ReadFile(path string) ([]byte, error) {
	src, ok := mc.Files[path]
	if !ok {
		if _, ok := mc.Reflections[path]; !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
	}
	return []byte(src), nil
}

func (mc *MapCompiler) Compile(path, entry string, stage Stages) (*Compiled, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.Compiles == nil {
		mc.Compiles = map[string]int{}
	}
	mc.Compiles[Key(path, entry, stage)]++
	rf, ok := mc.Reflections[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	r := *rf
	r.Path = path
	r.Entry = entry
	r.Stage = stage
	return &Compiled{Reflection: &r, Source: mc.Files[path]}, nil
}
