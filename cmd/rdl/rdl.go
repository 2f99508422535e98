// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rdl checks, inspects and runs render description documents.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/rdl/desc"
	"cogentcore.org/rdl/driver"
	"cogentcore.org/rdl/memgpu"
	"cogentcore.org/rdl/shader"
	"cogentcore.org/rdl/webgpu"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the rdl cli.
type Config struct {

	// Input is the render description document.
	Input string `posarg:"0"`

	// Shaders is the directory that shader files are relative to.
	// It defaults to the directory of the Input file.
	Shaders string `flag:"s,shaders"`

	// Width is the display width.
	Width int `default:"1280"`

	// Height is the display height.
	Height int `default:"720"`

	// Time is the time in seconds that the check command
	// evaluates at, and that the run command starts from.
	Time float32

	// Preset is a file of tunable values to apply after loading,
	// in TOML or YAML.
	Preset string `flag:"p,preset"`

	// Frames is the number of frames to run, with 0 for no limit.
	Frames int `cmd:"run"`

	// FPS is the number of frames per second to run at.
	FPS int `cmd:"run" default:"60"`

	// Watch reloads the document when it or a shader changes.
	Watch bool `cmd:"run" default:"true"`

	// GPU runs on the GPU instead of in memory.
	GPU bool `cmd:"run" default:"true"`

	// Debug enables debug logging.
	Debug bool `flag:"d,debug"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("rdl", "Checks, inspects and runs render description documents.")
	opts.DefaultFiles = []string{".rdl/config.toml"}
	cli.Run(opts, &Config{}, Check, Tokens, Run)
}

// out is the terminal output of diagnostics.
var out = termenv.NewOutput(os.Stderr)

// report prints a diagnostic for err in the document.
func report(c *Config, err error) {
	kind := "error"
	var de *desc.Error
	if errors.As(err, &de) {
		kind = de.Kind.String() + " error"
	}
	fmt.Fprintf(out, "%s %s: %s\n", out.String(kind).Foreground(out.Color("1")).Bold(), out.String(c.Input).Bold(), err)
}

func (c *Config) compiler() shader.Compiler {
	dir := c.Shaders
	if dir == "" {
		dir = filepath.Dir(c.Input)
	}
	return shader.NewWGSLCompiler(os.DirFS(dir))
}

func (c *Config) setDebug() {
	desc.Debug = c.Debug
	driver.Debug = c.Debug
	shader.Debug = c.Debug
	webgpu.Debug = c.Debug
}

// load loads the document into a new driver on the given backend
// and applies the preset, if any.
func (c *Config) load(be desc.Backend) (*driver.Driver, error) {
	dr := driver.New(c.Input, c.compiler(), be)
	if err := dr.Load(); err != nil {
		return nil, err
	}
	dr.SetDisplaySize(c.Width, c.Height)
	dr.SetTime(c.Time)
	if c.Preset != "" {
		if err := dr.LoadPreset(c.Preset); err != nil {
			dr.Close()
			return nil, err
		}
	}
	return dr, nil
}

// Check parses, resolves and evaluates the document without a GPU,
// and prints a summary of the result.
func Check(c *Config) error { //cli:cmd -root
	c.setDebug()
	be := memgpu.New()
	dr, err := c.load(be)
	if err != nil {
		report(c, err)
		return err
	}
	defer dr.Close()
	if err := dr.Frame(); err != nil {
		report(c, err)
		return err
	}
	fmt.Print(dr.Desc.Summary())
	fmt.Fprintln(out, out.String(fmt.Sprintf("ok: %d objects", be.Live())).Foreground(out.Color("2")))
	return nil
}

// Tokens prints the tokens of the document.
func Tokens(c *Config) error { //types:add
	src, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	if err := desc.Dump(os.Stdout, src); err != nil {
		report(c, err)
		return err
	}
	return nil
}

// Run runs the document frame by frame, reloading it when it changes,
// until interrupted or until the given number of frames has run.
func Run(c *Config) error { //types:add
	c.setDebug()
	var be desc.Backend = memgpu.New()
	if c.GPU {
		gb, err := webgpu.NewBackend()
		if err != nil {
			return err
		}
		defer gb.Close()
		be = gb
	}
	dr, err := c.load(be)
	if err != nil {
		report(c, err)
		return err
	}
	defer dr.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if c.Watch {
		var dirs []string
		if c.Shaders != "" {
			dirs = append(dirs, c.Shaders)
		}
		go func() {
			errors.Log(dr.Watch(ctx, dirs...))
		}()
	}
	return run(ctx, c, dr, os.Stdout)
}

// run runs the frames of the driver, printing a summary to w
// whenever the description is reloaded.
func run(ctx context.Context, c *Config, dr *driver.Driver, w io.Writer) error {
	fps := max(c.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()
	var last *desc.Description
	for frame := 0; c.Frames == 0 || frame < c.Frames; frame++ {
		dr.SetTime(c.Time + float32(time.Since(start).Seconds()))
		if err := dr.Frame(); err != nil {
			report(c, err)
		}
		if dr.Desc != last {
			last = dr.Desc
			fmt.Fprint(w, last.Summary())
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
