// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer turns source bytes into a flat stream of [token.Token]s.
// The same machine serves render description documents and, in
// [StructScan] mode, the scanning of shader sources for struct
// declarations.
package lexer

//go:generate core generate

import (
	"math"

	"cogentcore.org/rdl/token"
)

// Modes are the tokenizing modes.
type Modes int32 //enums:enum

const (
	// Document tokenizes a render description document: any byte
	// that does not start a token is an error.
	Document Modes = iota

	// StructScan tokenizes shader source for struct declarations:
	// the struct keyword and type names are recognized, and bytes
	// that do not start a token are skipped.
	StructScan
)

// punct maps the first byte of a single character punctuation
// token to its kind; EOF (0) means the byte is not punctuation.
var punct [256]token.Kinds

func init() {
	for k := token.LParen; k <= token.Percent; k++ {
		txt := k.Text()
		punct[txt[1]] = k
	}
}

// Lexer produces tokens lazily from Src.
type Lexer struct {
	// Src is the source being tokenized.
	Src []byte

	// Mode is the tokenizing mode.
	Mode Modes

	// Strings is the string table that identifiers and strings
	// are interned into.
	Strings *token.Strings

	// off is the current byte offset.
	off int

	// ln is the current line, and lnStart the offset where it starts.
	ln      int
	lnStart int
}

// New returns a new [Lexer] for given source and mode, interning
// strings into the given table, which is created if nil.
func New(src []byte, mode Modes, strs *token.Strings) *Lexer {
	if strs == nil {
		strs = &token.Strings{}
	}
	return &Lexer{Src: src, Mode: mode, Strings: strs}
}

// Tokenize returns all tokens of given source, ending with an EOF token.
func Tokenize(src []byte, mode Modes, strs *token.Strings) ([]token.Token, error) {
	lx := New(src, mode, strs)
	var toks []token.Token
	for {
		tk, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tk)
		if tk.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Pos returns the current position.
func (lx *Lexer) Pos() token.Pos {
	return lx.posAt(lx.off)
}

func (lx *Lexer) posAt(off int) token.Pos {
	return token.Pos{Off: off, Ln: lx.ln, Ch: off - lx.lnStart}
}

// newline records a line break at offset off (the '\n' byte).
func (lx *Lexer) newline(off int) {
	lx.ln++
	lx.lnStart = off + 1
}

// Next returns the next token, or an EOF token at the end of input.
func (lx *Lexer) Next() (token.Token, error) {
	for {
		if err := lx.skipSpace(); err != nil {
			return token.Token{}, err
		}
		if lx.off >= len(lx.Src) {
			return token.Token{Kind: token.EOF, Pos: lx.Pos(), Str: token.NoString}, nil
		}
		c := lx.Src[lx.off]
		switch {
		case isLetter(c):
			return lx.readIdent(), nil
		case isDigit(c):
			return lx.readNumber()
		case c == '"':
			return lx.readString()
		}
		if k := punct[c]; k != token.EOF {
			tk := token.Token{Kind: k, Pos: lx.Pos(), Str: token.NoString}
			lx.off++
			return tk, nil
		}
		if lx.Mode == StructScan {
			lx.off++
			continue
		}
		return token.Token{}, token.Errorf(lx.Pos(), "unexpected character %q", c)
	}
}

// skipSpace skips white space, line comments and block comments.
func (lx *Lexer) skipSpace() error {
	for lx.off < len(lx.Src) {
		c := lx.Src[lx.off]
		switch {
		case c == '\n':
			lx.newline(lx.off)
			lx.off++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			lx.off++
		case c == '/' && lx.peek(1) == '/':
			for lx.off < len(lx.Src) && lx.Src[lx.off] != '\n' {
				lx.off++
			}
		case c == '/' && lx.peek(1) == '*':
			st := lx.Pos()
			lx.off += 2
			closed := false
			for lx.off < len(lx.Src) {
				if lx.Src[lx.off] == '*' && lx.peek(1) == '/' {
					lx.off += 2
					closed = true
					break
				}
				if lx.Src[lx.off] == '\n' {
					lx.newline(lx.off)
				}
				lx.off++
			}
			if !closed {
				return token.Errorf(st, "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

// peek returns the byte n past the current one, or 0 at the end.
func (lx *Lexer) peek(n int) byte {
	if lx.off+n < len(lx.Src) {
		return lx.Src[lx.off+n]
	}
	return 0
}

func (lx *Lexer) readIdent() token.Token {
	pos := lx.Pos()
	st := lx.off
	for lx.off < len(lx.Src) && (isLetter(lx.Src[lx.off]) || isDigit(lx.Src[lx.off])) {
		lx.off++
	}
	word := lx.Src[st:lx.off]
	tk := token.Token{Kind: token.Ident, Pos: pos, Str: lx.Strings.InternBytes(word)}
	if lx.Mode == StructScan {
		switch {
		case string(word) == "struct":
			tk.Kind = token.Struct
		case IsTypeName(string(word)):
			tk.Kind = token.TypeName
		}
	}
	return tk
}

// readNumber reads an integer literal, which becomes a float literal
// when followed by a '.' and at least one digit.  The fraction is
// accumulated digit by digit as integer + digit * 10^-k.
func (lx *Lexer) readNumber() (token.Token, error) {
	pos := lx.Pos()
	var iv int64
	for lx.off < len(lx.Src) && isDigit(lx.Src[lx.off]) {
		d := int64(lx.Src[lx.off] - '0')
		if iv > (math.MaxInt64-d)/10 {
			return token.Token{}, token.Errorf(pos, "integer literal overflows")
		}
		iv = iv*10 + d
		lx.off++
	}
	if lx.off+1 < len(lx.Src) && lx.Src[lx.off] == '.' && isDigit(lx.Src[lx.off+1]) {
		lx.off++
		fv := float64(iv)
		scale := 0.1
		for lx.off < len(lx.Src) && isDigit(lx.Src[lx.off]) {
			fv += float64(lx.Src[lx.off]-'0') * scale
			scale *= 0.1
			lx.off++
		}
		return token.Token{Kind: token.Float, Pos: pos, Str: token.NoString, Float: fv}, nil
	}
	return token.Token{Kind: token.Int, Pos: pos, Str: token.NoString, Int: iv}, nil
}

// readString reads a double-quoted string, without escape processing.
func (lx *Lexer) readString() (token.Token, error) {
	pos := lx.Pos()
	lx.off++
	st := lx.off
	for lx.off < len(lx.Src) {
		c := lx.Src[lx.off]
		if c == '"' {
			tk := token.Token{Kind: token.String, Pos: pos, Str: lx.Strings.InternBytes(lx.Src[st:lx.off])}
			lx.off++
			return tk, nil
		}
		if c == '\n' {
			lx.newline(lx.off)
		}
		lx.off++
	}
	return token.Token{}, token.Errorf(pos, "unterminated string")
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
