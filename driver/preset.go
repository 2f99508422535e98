// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/rdl/expr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Preset is a set of tunable values by tunable name.  Scalar values
// are numbers and vector values are lists of numbers, with bools as
// 0 or 1.
type Preset map[string]any

// Preset returns the current values of all tunables.
func (dr *Driver) Preset() Preset {
	p := Preset{}
	if dr.Desc == nil {
		return p
	}
	for _, tn := range dr.Desc.Tunables {
		v := tn.Value
		if v.Type.IsScalar() {
			p[tn.Name] = v.Float64(0)
			continue
		}
		fs := make([]float64, v.Type.N)
		for i := range fs {
			fs[i] = v.Float64(i)
		}
		p[tn.Name] = fs
	}
	return p
}

// ApplyPreset sets the tunables named in the preset.  Values for
// unknown tunables and values of the wrong shape are reported in the
// returned error, and the other values are still applied.
func (dr *Driver) ApplyPreset(p Preset) error {
	var errs []error
	for name, pv := range p {
		tn := dr.Tunable(name)
		if tn == nil {
			errs = append(errs, fmt.Errorf("driver: preset has unknown tunable %s", name))
			continue
		}
		v, err := presetValue(tn.Default.Type, pv)
		if err != nil {
			errs = append(errs, fmt.Errorf("driver: preset tunable %s: %w", name, err))
			continue
		}
		if err := dr.SetTunable(name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResetTunables restores the declared values of all tunables.
func (dr *Driver) ResetTunables() {
	if dr.Desc == nil {
		return
	}
	for _, tn := range dr.Desc.Tunables {
		if tn.Reset() {
			dr.changed |= tn.Dep()
		}
	}
}

// presetValue converts a decoded preset value to a value of type t.
func presetValue(t expr.Type, pv any) (expr.Value, error) {
	var fs []float64
	switch x := pv.(type) {
	case []any:
		for _, e := range x {
			f, err := presetNumber(e)
			if err != nil {
				return expr.Value{}, err
			}
			fs = append(fs, f)
		}
	case []float64:
		fs = x
	default:
		f, err := presetNumber(x)
		if err != nil {
			return expr.Value{}, err
		}
		fs = []float64{f}
	}
	if len(fs) != t.N || t.Matrix {
		return expr.Value{}, fmt.Errorf("expected %s, got %d numbers", t, len(fs))
	}
	v := expr.Value{Type: t}
	for i, f := range fs {
		switch t.Kind {
		case expr.Float:
			v.F[i] = float32(f)
		case expr.Int, expr.Bool:
			v.I[i] = int32(f)
		case expr.Uint:
			v.U[i] = uint32(f)
		}
	}
	return v, nil
}

func presetNumber(x any) (float64, error) {
	switch n := x.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("expected a number, got %v", x)
}

// SavePreset saves the current tunable values to the given file,
// as YAML for .yaml and .yml files and as TOML otherwise.
func (dr *Driver) SavePreset(filename string) error {
	var b []byte
	var err error
	if isYAML(filename) {
		b, err = yaml.Marshal(dr.Preset())
	} else {
		b, err = toml.Marshal(dr.Preset())
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// LoadPreset applies the tunable values saved in the given file by
// [Driver.SavePreset].
func (dr *Driver) LoadPreset(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	p := Preset{}
	if isYAML(filename) {
		err = yaml.Unmarshal(b, &p)
	} else {
		err = toml.Unmarshal(b, &p)
	}
	if err != nil {
		return fmt.Errorf("driver: reading preset %s: %w", filename, err)
	}
	return dr.ApplyPreset(p)
}

func isYAML(filename string) bool {
	ext := filepath.Ext(filename)
	return ext == ".yaml" || ext == ".yml"
}
