// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"strings"

	"cogentcore.org/rdl/lexer"
	"cogentcore.org/rdl/token"
)

// Layout is the size and alignment of a type in bytes.
type Layout struct {
	Size, Align int
}

// Stride returns the array element stride of the type.
func (l Layout) Stride() int {
	return roundUp(l.Size, l.Align)
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

// StructSizes scans shader source for struct declarations and returns
// the layout of each struct by name.  Both WGSL members (name: type)
// and HLSL members (type name;) are recognized: WGSL members are laid
// out with WGSL storage alignment, and HLSL members are tightly packed
// as in structured buffers.  Everything outside of struct declarations
// is skipped.
func StructSizes(src []byte) (map[string]Layout, error) {
	strs := &token.Strings{}
	toks, err := lexer.Tokenize(src, lexer.StructScan, strs)
	if err != nil {
		return nil, err
	}
	sc := &structScanner{toks: toks, strs: strs, layouts: map[string]Layout{}}
	for sc.cur().Kind != token.EOF {
		if sc.cur().Kind != token.Struct {
			sc.pos++
			continue
		}
		if err := sc.structDecl(); err != nil {
			return nil, err
		}
	}
	return sc.layouts, nil
}

// StructSize returns the size of the named struct in the given source.
func StructSize(src []byte, name string) (int, error) {
	ls, err := StructSizes(src)
	if err != nil {
		return 0, err
	}
	l, ok := ls[name]
	if !ok {
		return 0, fmt.Errorf("couldn't find struct %s", name)
	}
	return l.Size, nil
}

type structScanner struct {
	toks    []token.Token
	strs    *token.Strings
	pos     int
	layouts map[string]Layout
}

func (sc *structScanner) cur() token.Token {
	return sc.peek(0)
}

func (sc *structScanner) peek(n int) token.Token {
	if sc.pos+n >= len(sc.toks) {
		return sc.toks[len(sc.toks)-1]
	}
	return sc.toks[sc.pos+n]
}

func (sc *structScanner) tryConsume(kind token.Kinds) bool {
	if sc.cur().Kind != kind {
		return false
	}
	sc.pos++
	return true
}

func (sc *structScanner) expect(kind token.Kinds) (token.Token, error) {
	tk := sc.cur()
	if tk.Kind != kind {
		return tk, token.Errorf(tk.Pos, "expected %s, got %s", kind.Text(), tk.Describe(sc.strs))
	}
	sc.pos++
	return tk, nil
}

func (sc *structScanner) str(tk token.Token) string {
	return sc.strs.Get(tk.Str)
}

// skipAttributes skips WGSL attributes such as @align(16) or @location(0).
func (sc *structScanner) skipAttributes() {
	for sc.cur().Kind == token.At {
		sc.pos++
		if sc.cur().Kind == token.EOF {
			return
		}
		sc.pos++
		if sc.cur().Kind != token.LParen {
			continue
		}
		depth := 0
		for sc.cur().Kind != token.EOF {
			k := sc.cur().Kind
			sc.pos++
			if k == token.LParen {
				depth++
			} else if k == token.RParen {
				depth--
				if depth == 0 {
					break
				}
			}
		}
	}
}

func (sc *structScanner) structDecl() error {
	sc.pos++ // struct
	nm, err := sc.expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := sc.expect(token.LBrace); err != nil {
		return err
	}
	var size, align int
	for !sc.tryConsume(token.RBrace) {
		sc.skipAttributes()
		if sc.cur().Kind == token.EOF {
			return token.Errorf(nm.Pos, "unterminated struct %s", sc.str(nm))
		}
		var l Layout
		var err error
		if sc.peek(1).Kind == token.Colon {
			sc.pos += 2
			l, err = sc.typ(true)
			if err == nil {
				sc.tryConsume(token.Comma)
			}
		} else {
			l, err = sc.hlslMember()
		}
		if err != nil {
			return err
		}
		size = roundUp(size, l.Align) + l.Size
		align = max(align, l.Align)
	}
	sc.tryConsume(token.Semicolon)
	sc.layouts[sc.str(nm)] = Layout{Size: roundUp(size, align), Align: max(align, 1)}
	return nil
}

// hlslMember parses "type name ([N])? (: SEMANTIC)? ;".
func (sc *structScanner) hlslMember() (Layout, error) {
	l, err := sc.typ(false)
	if err != nil {
		return l, err
	}
	if _, err := sc.expect(token.Ident); err != nil {
		return l, err
	}
	if sc.tryConsume(token.LBrack) {
		n, err := sc.expect(token.Int)
		if err != nil {
			return l, err
		}
		if _, err := sc.expect(token.RBrack); err != nil {
			return l, err
		}
		l.Size = int(n.Int) * l.Stride()
	}
	if sc.tryConsume(token.Colon) {
		if _, err := sc.expect(token.Ident); err != nil {
			return l, err
		}
	}
	_, err = sc.expect(token.Semicolon)
	return l, err
}

// scalarSizes are the sizes of the scalar type names.
var scalarSizes = map[string]int{
	"f32": 4, "i32": 4, "u32": 4, "bool": 4, "f16": 2,
	"float": 4, "int": 4, "uint": 4, "dword": 4, "half": 2,
}

// suffixSizes are the sizes of the WGSL vector and matrix shorthand suffixes.
var suffixSizes = map[byte]int{'f': 4, 'i': 4, 'u': 4, 'h': 2}

// typ parses a type and returns its layout, with WGSL alignment
// rules if wgsl is set, or tight packing otherwise.
func (sc *structScanner) typ(wgsl bool) (Layout, error) {
	tk := sc.cur()
	if tk.Kind != token.TypeName && tk.Kind != token.Ident {
		return Layout{}, token.Errorf(tk.Pos, "expected type, got %s", tk.Describe(sc.strs))
	}
	sc.pos++
	nm := sc.str(tk)
	if tk.Kind == token.Ident {
		l, ok := sc.layouts[nm]
		if !ok {
			return l, token.Errorf(tk.Pos, "unknown type %s", nm)
		}
		return l, nil
	}
	if sz, ok := scalarSizes[nm]; ok {
		return Layout{sz, sz}, nil
	}
	switch {
	case nm == "array":
		return sc.array(wgsl)
	case nm == "atomic":
		return sc.templateArg(wgsl)
	case strings.HasPrefix(nm, "vec"):
		el, err := sc.element(nm[4:], wgsl)
		if err != nil {
			return el, err
		}
		return vecLayout(int(nm[3]-'0'), el.Size, wgsl), nil
	case strings.HasPrefix(nm, "mat") && len(nm) >= 6 && nm != "matrix":
		el, err := sc.element(nm[6:], wgsl)
		if err != nil {
			return el, err
		}
		cols, rows := int(nm[3]-'0'), int(nm[5]-'0')
		col := vecLayout(rows, el.Size, wgsl)
		return Layout{cols * col.Stride(), col.Align}, nil
	case nm == "matrix":
		return Layout{64, 4}, nil
	}
	// HLSL floatN, intN, floatNxM and the like
	base := strings.TrimRight(nm, "0123456789x")
	sz, ok := scalarSizes[base]
	if !ok {
		return Layout{}, token.Errorf(tk.Pos, "unknown type %s", nm)
	}
	n := 1
	for _, d := range strings.Split(nm[len(base):], "x") {
		n *= int(d[0] - '0')
	}
	return Layout{n * sz, sz}, nil
}

// element returns the component layout of a vector or matrix type from
// its shorthand suffix, or from a template argument if there is none.
func (sc *structScanner) element(suffix string, wgsl bool) (Layout, error) {
	if suffix != "" {
		sz := suffixSizes[suffix[0]]
		return Layout{sz, sz}, nil
	}
	return sc.templateArg(wgsl)
}

func (sc *structScanner) templateArg(wgsl bool) (Layout, error) {
	if _, err := sc.expect(token.Less); err != nil {
		return Layout{}, err
	}
	l, err := sc.typ(wgsl)
	if err != nil {
		return l, err
	}
	_, err = sc.expect(token.Greater)
	return l, err
}

// array parses array<T> or array<T, N>; runtime sized arrays have size 0.
func (sc *structScanner) array(wgsl bool) (Layout, error) {
	if _, err := sc.expect(token.Less); err != nil {
		return Layout{}, err
	}
	el, err := sc.typ(wgsl)
	if err != nil {
		return el, err
	}
	n := 0
	if sc.tryConsume(token.Comma) {
		nt, err := sc.expect(token.Int)
		if err != nil {
			return el, err
		}
		n = int(nt.Int)
	}
	if _, err := sc.expect(token.Greater); err != nil {
		return el, err
	}
	return Layout{n * el.Stride(), el.Align}, nil
}

// vecLayout returns the layout of an n component vector; WGSL
// aligns vec3 like vec4.
func vecLayout(n, el int, wgsl bool) Layout {
	if !wgsl {
		return Layout{n * el, el}
	}
	align := n * el
	if n == 3 {
		align = 4 * el
	}
	return Layout{n * el, align}
}
