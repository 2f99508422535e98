// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"
)

// Deps is a set of the runtime varying inputs that an expression
// transitively reads: elapsed time, display size, and each tunable.
// A parent node's Deps is always the union of its children's Deps
// plus its own bit, if any.
type Deps uint64

const (
	// TimeDep is set for expressions reading the elapsed time.
	TimeDep Deps = 1 << iota

	// DisplaySizeDep is set for expressions reading the display size.
	DisplaySizeDep

	// tunableShift is the bit of the first tunable.
	tunableShift = iota
)

// NoDeps is the empty set: the expression is constant.
const NoDeps Deps = 0

// AllDeps has every input set, which forces re-evaluation of every
// expression, as is done on the first frame.
const AllDeps Deps = ^Deps(0)

// MaxTunables is the number of distinct tunables that can be tracked.
const MaxTunables = 64 - tunableShift

// TunableDep returns the dependency bit of the tunable with given index.
func TunableDep(index int) Deps {
	if index < 0 || index >= MaxTunables {
		return NoDeps
	}
	return 1 << (tunableShift + index)
}

// Has returns true if any input in o is also in d.
func (d Deps) Has(o Deps) bool {
	return d&o != 0
}

// IsConstant returns true if d depends on no input.
func (d Deps) IsConstant() bool {
	return d == NoDeps
}

// String returns a readable list of the inputs, e.g. "Time|Tunable2".
func (d Deps) String() string {
	if d == NoDeps {
		return "None"
	}
	var parts []string
	if d.Has(TimeDep) {
		parts = append(parts, "Time")
	}
	if d.Has(DisplaySizeDep) {
		parts = append(parts, "DisplaySize")
	}
	for i := range MaxTunables {
		if d.Has(TunableDep(i)) {
			parts = append(parts, fmt.Sprintf("Tunable%d", i))
		}
	}
	return strings.Join(parts, "|")
}
