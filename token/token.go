// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical tokens of render description
// documents, and of the struct scanner that reads shader sources,
// along with source positions and the interned string table that
// is shared by all of the tokens of one parse.
package token

//go:generate core generate

import (
	"fmt"
)

// Kinds are the kinds of lexical tokens.
type Kinds int32 //enums:enum

// The list of token kinds.
const (
	// EOF is the end of the input.
	EOF Kinds = iota

	// Ident is an identifier, with its text in the string table.
	Ident

	// String is a double-quoted string, with its text in the string table.
	String

	// Int is an integer literal.
	Int

	// Float is a floating point literal.
	Float

	// LParen is (
	LParen

	// RParen is )
	RParen

	// LBrace is {
	LBrace

	// RBrace is }
	RBrace

	// LBrack is [
	LBrack

	// RBrack is ]
	RBrack

	// Less is <
	Less

	// Greater is >
	Greater

	// Comma is ,
	Comma

	// Assign is =
	Assign

	// Plus is +
	Plus

	// Minus is -
	Minus

	// Colon is :
	Colon

	// Semicolon is ;
	Semicolon

	// At is @
	At

	// Dot is .
	Dot

	// Slash is /
	Slash

	// Star is *
	Star

	// Hash is #
	Hash

	// Percent is %
	Percent

	// Struct is the struct keyword, only produced in struct scanning mode.
	Struct

	// TypeName is a shader type keyword such as f32 or float4,
	// only produced in struct scanning mode.
	TypeName
)

// punctText is the source text of each punctuation token.
var punctText = map[Kinds]string{
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBrack:    "[",
	RBrack:    "]",
	Less:      "<",
	Greater:   ">",
	Comma:     ",",
	Assign:    "=",
	Plus:      "+",
	Minus:     "-",
	Colon:     ":",
	Semicolon: ";",
	At:        "@",
	Dot:       ".",
	Slash:     "/",
	Star:      "*",
	Hash:      "#",
	Percent:   "%",
}

// Text returns the source text of a punctuation token kind,
// or a lower-case descriptive name for the other kinds,
// for use in diagnostics.
func (tk Kinds) Text() string {
	if s, ok := punctText[tk]; ok {
		return "'" + s + "'"
	}
	switch tk {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Struct:
		return "struct"
	case TypeName:
		return "type name"
	}
	return tk.String()
}

// IsPunct returns true if this is one of the single character
// punctuation tokens.
func (tk Kinds) IsPunct() bool {
	return tk >= LParen && tk <= Percent
}

// Token is one lexical token.  Only one of the payload fields is
// meaningful, depending on Kind: Str for Ident, String, TypeName;
// Int for Int; Float for Float.
type Token struct {
	Kind Kinds

	// Pos is the location of the first byte of the token.
	Pos Pos

	// Str is the index of the identifier or string text in the
	// [Strings] table of the parse.
	Str StringID

	Int int64

	Float float64
}

// Is returns true if the token is of the given kind.
func (tk *Token) Is(kind Kinds) bool {
	return tk.Kind == kind
}

// Describe returns a human readable description of the token,
// using the given string table for identifier and string text.
func (tk *Token) Describe(st *Strings) string {
	switch tk.Kind {
	case Ident, TypeName:
		return fmt.Sprintf("identifier %s", st.Get(tk.Str))
	case String:
		return fmt.Sprintf("string %q", st.Get(tk.Str))
	case Int:
		return fmt.Sprintf("integer %d", tk.Int)
	case Float:
		return fmt.Sprintf("float %g", tk.Float)
	}
	return tk.Kind.Text()
}
