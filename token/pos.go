// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"fmt"
)

// Pos is a position within the source: the byte offset, plus the
// line and column (in bytes), all recorded as 0 based offsets,
// but converted into 1,1 offset for public consumption.
type Pos struct {
	Off int
	Ln  int
	Ch  int
}

// String satisfies the fmt.Stringer interface
func (ps Pos) String() string {
	return fmt.Sprintf("%d:%d", ps.Ln+1, ps.Ch+1)
}

// PosErr represents an error position, used where no
// source position is available.
var PosErr = Pos{-1, -1, -1}

// IsValid returns true if the position is not [PosErr].
func (ps Pos) IsValid() bool {
	return ps.Off >= 0
}

// IsLess returns true if receiver position is less than given comparison
func (ps Pos) IsLess(cmp Pos) bool {
	return ps.Off < cmp.Off
}

// Error is a lexical error at a given source position.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d): %s", e.Pos, e.Pos.Off, e.Msg)
}

// Errorf returns a new [Error] at given position.
func Errorf(pos Pos, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
