// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver drives a render description from frame to frame:
// it loads and reloads the document, tracks which inputs changed since
// the last frame, and keeps the last good description running when a
// reload or a frame fails.
package driver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/rdl/desc"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/shader"
	"golang.org/x/sync/errgroup"
)

// Debug enables logging of loads and change masks.
var Debug = false

// Driver runs the description of one document on one backend.
// Except for [Driver.Watch], all methods must be called from the
// frame goroutine.
type Driver struct {
	// Path is the document file.
	Path string

	// Compiler compiles the shaders of the document.
	Compiler shader.Compiler

	// Backend creates the objects of the description.
	Backend desc.Backend

	// Desc is the running description, or nil before the first
	// successful [Driver.Load].
	Desc *desc.Description

	// Err is the error of the last load or frame, or nil.
	Err error

	// ctx is the evaluation context of the running description.
	ctx expr.Context

	// changed accumulates the inputs changed since the last frame.
	changed expr.Deps

	// reload receives reload requests from the watcher.
	reload chan string
}

// New returns a new driver for the given document.
func New(path string, comp shader.Compiler, be desc.Backend) *Driver {
	return &Driver{Path: path, Compiler: comp, Backend: be, reload: make(chan string, 1)}
}

// Load reads, parses and resolves the document.  On success the new
// description replaces the running one, which is released, and the
// tunables keep the values they had under the same name.  On failure
// the running description is kept and the error is returned.
func (dr *Driver) Load() error {
	src, err := os.ReadFile(dr.Path)
	if err != nil {
		return dr.fail(err)
	}
	return dr.LoadSource(src)
}

// LoadSource is [Driver.Load] with the given document source.  Image
// files are still read relative to Path.
func (dr *Driver) LoadSource(src []byte) error {
	d, err := desc.Parse(src)
	if err != nil {
		return dr.fail(err)
	}
	if err := d.LoadImages(os.DirFS(filepath.Dir(dr.Path))); err != nil {
		return dr.fail(err)
	}
	if err := Compile(d, dr.Compiler); err != nil {
		return dr.fail(err)
	}
	if err := d.ResolveBindings(dr.Compiler, dr.Backend); err != nil {
		d.Release()
		return dr.fail(err)
	}
	if dr.Desc != nil {
		keepTunables(dr.Desc, d)
		dr.Desc.Release()
	}
	dr.Desc = d
	dr.ctx.Tunables = d.Tunables
	dr.changed = expr.AllDeps
	dr.Err = nil
	if Debug {
		slog.Info("driver: loaded", "path", dr.Path, "passes", len(d.Passes), "tunables", len(d.Tunables))
	}
	return nil
}

// fail records err, logging it when a running description is kept.
func (dr *Driver) fail(err error) error {
	dr.Err = err
	if dr.Desc != nil {
		slog.Error("driver: keeping previous description", "path", dr.Path, "err", err)
	}
	return err
}

// Compile compiles the shaders of the description that have not been
// compiled yet, concurrently.
func Compile(d *desc.Description, comp shader.Compiler) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, sh := range d.Shaders() {
		if sh.Compiled != nil {
			continue
		}
		g.Go(func() error {
			cp, err := comp.Compile(sh.File, sh.Entry, sh.Stage)
			if err != nil {
				return &desc.Error{Kind: desc.Resolution, Pos: sh.Pos, Path: sh.File, Msg: err.Error()}
			}
			sh.Compiled = cp
			return nil
		})
	}
	return g.Wait()
}

// keepTunables copies the values of the tunables of old into the
// tunables of d with the same name and type.
func keepTunables(old, d *desc.Description) {
	for _, tn := range d.Tunables {
		ot, ok := old.Symbol(tn.Name).(*expr.Tunable)
		if !ok {
			continue
		}
		tn.Set(ot.Value)
	}
}

// SetTime sets the time in seconds that Time() returns.
func (dr *Driver) SetTime(t float32) {
	if t == dr.ctx.Time {
		return
	}
	dr.ctx.Time = t
	dr.changed |= expr.TimeDep
}

// SetDisplaySize sets the size that DisplaySize() returns.
func (dr *Driver) SetDisplaySize(width, height int) {
	sz := [2]int32{int32(width), int32(height)}
	if sz == dr.ctx.DisplaySize {
		return
	}
	dr.ctx.DisplaySize = sz
	dr.changed |= expr.DisplaySizeDep
}

// Tunable returns the tunable of given name, or nil.
func (dr *Driver) Tunable(name string) *expr.Tunable {
	if dr.Desc == nil {
		return nil
	}
	tn, _ := dr.Desc.Symbol(name).(*expr.Tunable)
	return tn
}

// SetTunable sets the value of the named tunable.
func (dr *Driver) SetTunable(name string, v expr.Value) error {
	tn := dr.Tunable(name)
	if tn == nil {
		return fmt.Errorf("driver: unknown tunable %s", name)
	}
	ch, err := tn.Set(v)
	if err != nil {
		return err
	}
	if ch {
		dr.changed |= tn.Dep()
	}
	return nil
}

// Changed returns the inputs changed since the last frame.
func (dr *Driver) Changed() expr.Deps {
	return dr.changed
}

// Frame prepares the running description for the next frame: it
// performs any reload requested by [Driver.Watch], then re-evaluates
// everything that reads an input changed since the last frame.
// A failing frame is logged and the description keeps running with
// the items that failed left at their previous state.  The error of a
// failed reload is returned along with that of the frame.
func (dr *Driver) Frame() error {
	var rerr error
	select {
	case <-dr.reload:
		rerr = dr.Load()
	default:
	}
	if dr.Desc == nil {
		return dr.Err
	}
	if Debug {
		slog.Info("driver: frame", "time", dr.ctx.Time, "changed", dr.changed)
	}
	err := dr.Desc.Reevaluate(&dr.ctx, dr.changed)
	dr.changed = 0
	if err != nil {
		slog.Error("driver: frame", "path", dr.Path, "err", err)
	}
	err = errors.Join(rerr, err)
	if err != nil {
		dr.Err = err
	}
	return err
}

// Close releases the running description.
func (dr *Driver) Close() {
	if dr.Desc != nil {
		dr.Desc.Release()
		dr.Desc = nil
	}
}
