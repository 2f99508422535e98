// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Tunable is a named, live-editable scalar or vector value read by
// expressions through [TunableRef] nodes.  Only the frame driver
// changes its Value, and it must then report [Tunable.Dep] as changed.
type Tunable struct {
	// Name is the name the tunable is declared and referenced by.
	Name string

	// Index is the position in [Context.Tunables] and the dependency bit.
	Index int

	// Value is the current value.
	Value Value

	// Default is the declared value, restored by Reset.
	Default Value

	// Min and Max bound every component of float and int values,
	// unless both are zero.
	Min, Max float32

	// Step is the increment used by editors.
	Step float32
}

// Dep returns the dependency bit of the tunable.
func (tn *Tunable) Dep() Deps {
	return TunableDep(tn.Index)
}

// Set sets the value, which must have the declared type, clamping each
// component to the range.  It returns true if the value changed.
func (tn *Tunable) Set(v Value) (bool, error) {
	if v.Type != tn.Default.Type {
		return false, fmt.Errorf("tunable %s expected %s, got %s", tn.Name, tn.Default.Type, v.Type)
	}
	if tn.Min != 0 || tn.Max != 0 {
		for i := range v.Type.N {
			switch v.Type.Kind {
			case Float:
				v.F[i] = math32.Clamp(v.F[i], tn.Min, tn.Max)
			case Int:
				v.I[i] = min(max(v.I[i], int32(tn.Min)), int32(tn.Max))
			}
		}
	}
	if v.Equal(tn.Value) {
		return false, nil
	}
	tn.Value = v
	return true, nil
}

// Reset restores the declared value, returning true if it changed.
func (tn *Tunable) Reset() bool {
	ch, _ := tn.Set(tn.Default)
	return ch
}
