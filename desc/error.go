// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/token"
)

// ErrorKinds are the kinds of description errors.
type ErrorKinds int32 //enums:enum

const (
	// Lexical is a bad character or an unterminated string or comment.
	Lexical ErrorKinds = iota

	// Syntactic is an unexpected token, an unknown field, or a
	// duplicate or undefined name.
	Syntactic

	// Type is an expression type mismatch, a constant size mismatch,
	// or a bind kind mismatch.
	Type

	// Resolution is a shader resource or variable that was not found.
	Resolution
)

// Error is an error in a description, at a position in the document
// during parsing, and in the shader at Path during resolution.
type Error struct {
	Kind ErrorKinds

	// Pos is the document position, if valid.
	Pos token.Pos

	// Path is the shader file, if any.
	Path string

	Msg string
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Pos.IsValid():
		return fmt.Sprintf("%s (offset %d): %s: %s", e.Pos, e.Pos.Off, e.Path, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	case e.Pos.IsValid():
		return fmt.Sprintf("%s (offset %d): %s", e.Pos, e.Pos.Off, e.Msg)
	}
	return e.Msg
}

// errorf returns an [Error] of the given kind at the given position.
func errorf(kind ErrorKinds, pos token.Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// typeError returns an evaluation error as a Type [Error].
func typeError(err error) *Error {
	var ee *expr.Error
	if errors.As(err, &ee) {
		return &Error{Kind: Type, Pos: ee.Pos, Msg: ee.Msg}
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Kind: Type, Pos: token.PosErr, Msg: err.Error()}
}

// IsKind returns true if err is an [Error] of the given kind.
func IsKind(err error, kind ErrorKinds) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
