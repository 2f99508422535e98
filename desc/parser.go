// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/enums"
	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/lexer"
	"cogentcore.org/rdl/token"
)

// Parse parses a render description document.  Parsing stops at the
// first error, which is returned as an [*Error] with no description.
func Parse(src []byte) (*Description, error) {
	d := &Description{Strings: &token.Strings{}}
	toks, err := lexer.Tokenize(src, lexer.Document, d.Strings)
	if err != nil {
		var te *token.Error
		if errors.As(err, &te) {
			return nil, &Error{Kind: Lexical, Pos: te.Pos, Msg: te.Msg}
		}
		return nil, err
	}
	p := &parser{d: d, toks: toks}
	if err := p.document(); err != nil {
		return nil, err
	}
	return d, nil
}

// parser is the state of one parse.  Every structure is appended to
// the description as soon as it is created, before its body is parsed.
type parser struct {
	d    *Description
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	tk := p.toks[p.pos]
	if tk.Kind != token.EOF {
		p.pos++
	}
	return tk
}

func (p *parser) str(tk token.Token) string {
	return p.d.Strings.Get(tk.Str)
}

// isIdent returns true if the current token is the given identifier.
func (p *parser) isIdent(s string) bool {
	tk := p.cur()
	return tk.Kind == token.Ident && p.str(tk) == s
}

// tryConsume consumes the current token if it is of the given kind.
func (p *parser) tryConsume(kind token.Kinds) bool {
	if p.cur().Kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(kind token.Kinds) (token.Token, error) {
	tk := p.cur()
	if tk.Kind != kind {
		return tk, p.unexpected(kind.Text())
	}
	p.pos++
	return tk, nil
}

// unexpected returns an error for the current token where the
// given thing was expected.
func (p *parser) unexpected(expected string) error {
	tk := p.cur()
	return errorf(Syntactic, tk.Pos, "expected %s, got %s", expected, tk.Describe(p.d.Strings))
}

func (p *parser) assign() error {
	_, err := p.expect(token.Assign)
	return err
}

func (p *parser) stringValue() (string, error) {
	if err := p.assign(); err != nil {
		return "", err
	}
	tk, err := p.expect(token.String)
	return p.str(tk), err
}

func (p *parser) identValue() (string, error) {
	if err := p.assign(); err != nil {
		return "", err
	}
	tk, err := p.expect(token.Ident)
	return p.str(tk), err
}

// uint consumes an unsigned integer literal.
func (p *parser) uint() (int, error) {
	if p.cur().Kind == token.Minus {
		return 0, p.unexpected("unsigned integer")
	}
	tk, err := p.expect(token.Int)
	return int(tk.Int), err
}

func (p *parser) uintValue() (int, error) {
	if err := p.assign(); err != nil {
		return 0, err
	}
	return p.uint()
}

// number consumes an optionally negative integer or float literal.
func (p *parser) number() (v float64, isFloat bool, err error) {
	neg := p.tryConsume(token.Minus)
	tk := p.cur()
	switch tk.Kind {
	case token.Int:
		v = float64(tk.Int)
	case token.Float:
		v, isFloat = tk.Float, true
	default:
		return 0, false, p.unexpected("number")
	}
	p.pos++
	if neg {
		v = -v
	}
	return v, isFloat, nil
}

func (p *parser) numberValue() (float32, error) {
	if err := p.assign(); err != nil {
		return 0, err
	}
	v, _, err := p.number()
	return float32(v), err
}

func (p *parser) exprValue() (*expr.Node, error) {
	if err := p.assign(); err != nil {
		return nil, err
	}
	return p.expr()
}

// enumValue consumes "= name" for one of the given enum values,
// named without prefix.
func enumValue[T enums.Enum](p *parser, what string, values []T, prefix string) (T, error) {
	var zv T
	if err := p.assign(); err != nil {
		return zv, err
	}
	tk, err := p.expect(token.Ident)
	if err != nil {
		return zv, err
	}
	v, ok := parseEnum(values, prefix, p.str(tk))
	if !ok {
		return zv, errorf(Syntactic, tk.Pos, "unknown %s %s, expected %s", what, p.str(tk), enumNames(values, prefix))
	}
	return v, nil
}

// document parses the top level statements.
func (p *parser) document() error {
	for p.cur().Kind != token.EOF {
		tk := p.cur()
		if tk.Kind != token.Ident {
			return p.unexpected("structure kind")
		}
		if p.isIdent("Passes") {
			p.next()
			if err := p.passes(); err != nil {
				return err
			}
		} else if err := p.definition(p.str(tk)); err != nil {
			return err
		}
		p.tryConsume(token.Semicolon)
	}
	return nil
}

// definition parses the top level definition of a structure of the given kind.
func (p *parser) definition(kind string) error {
	var err error
	switch kind {
	case "ComputeShader", "VertexShader", "PixelShader":
		_, err = p.shader(kind)
	case "Buffer":
		_, err = p.buffer()
	case "Texture":
		_, err = p.texture()
	case "View":
		_, err = p.view()
	case "Sampler":
		_, err = p.sampler()
	case "RasterizerState":
		_, err = p.rasterizerState()
	case "DepthStencilState":
		_, err = p.depthStencilState()
	case "BlendState":
		_, err = p.blendState()
	case "Tunable":
		_, err = p.tunable()
	default:
		if _, ok, err := p.passDefinition(kind); ok {
			return err
		}
		return errorf(Syntactic, p.cur().Pos, "unknown structure kind %s", kind)
	}
	return err
}

// header consumes the kind keyword and the optional name of a structure.
func (p *parser) header() (name string, pos token.Pos) {
	pos = p.next().Pos
	if tk := p.cur(); tk.Kind == token.Ident {
		p.next()
		return p.str(tk), tk.Pos
	}
	return "", pos
}

// define registers a named structure.
func (p *parser) define(name string, pos token.Pos, val any) error {
	if name == "" {
		return nil
	}
	if _, ok := p.d.symbols.AtTry(name); ok {
		return errorf(Syntactic, pos, "duplicate definition of %s", name)
	}
	if _, ok := systemValue(name); ok {
		return errorf(Syntactic, pos, "%s is a reserved name", name)
	}
	p.d.symbols.Add(name, val)
	return nil
}

// body parses the brace delimited fields of a structure of the given kind,
// calling field for each field name.  Each field is terminated by a semicolon.
func (p *parser) body(kind string, field func(name string, tk token.Token) (bool, error)) error {
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}
	for !p.tryConsume(token.RBrace) {
		tk, err := p.expect(token.Ident)
		if err != nil {
			return err
		}
		nm := p.str(tk)
		ok, err := field(nm, tk)
		if err != nil {
			return err
		}
		if !ok {
			return errorf(Syntactic, tk.Pos, "unknown field %s in %s", nm, kind)
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return err
		}
	}
	return nil
}

// lookup consumes a name and returns the structure it names,
// which must be of type T.
func lookup[T any](p *parser, kind string) (T, error) {
	var zv T
	tk := p.cur()
	if tk.Kind != token.Ident {
		return zv, p.unexpected(kind)
	}
	p.next()
	nm := p.str(tk)
	sym, ok := p.d.symbols.AtTry(nm)
	if !ok {
		return zv, errorf(Syntactic, tk.Pos, "undefined %s %s", kind, nm)
	}
	v, ok := sym.(T)
	if !ok {
		return zv, errorf(Syntactic, tk.Pos, "%s is not a %s", nm, kind)
	}
	return v, nil
}

// refOrDefine parses "= ref" where ref is either an inline definition
// starting with the kind keyword, or the name of a defined structure.
func refOrDefine[T any](p *parser, kind string, define func() (T, error)) (T, error) {
	if err := p.assign(); err != nil {
		var zv T
		return zv, err
	}
	if p.isIdent(kind) {
		return define()
	}
	return lookup[T](p, kind)
}

func systemValue(name string) (SystemValues, bool) {
	for _, sv := range SystemValuesValues() {
		if sv.String() == name {
			return sv, true
		}
	}
	return 0, false
}

// implicitView returns a new view of given kind over a texture or
// buffer named directly in a bind or target.
func (p *parser) implicitView(pos token.Pos, tx *Texture, bf *Buffer, kind ViewKinds) *View {
	vw := &View{Pos: pos, Texture: tx, Buffer: bf, Kind: kind, Implicit: true}
	p.d.Views = append(p.d.Views, vw)
	return vw
}

// bind parses "Name = target" after the bind keyword.
func (p *parser) bind() (*Bind, error) {
	ntk, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	b := &Bind{Name: p.str(ntk), Pos: ntk.Pos}
	if err := p.assign(); err != nil {
		return nil, err
	}
	tk := p.cur()
	if tk.Kind != token.Ident {
		return nil, p.unexpected("bind target")
	}
	kw := p.str(tk)
	if sv, ok := systemValue(kw); ok {
		p.next()
		b.Kind, b.System = SystemBind, sv
		return b, nil
	}
	switch kw {
	case "View":
		b.View, err = p.view()
	case "Texture":
		var tx *Texture
		if tx, err = p.texture(); err == nil {
			b.View = p.implicitView(tk.Pos, tx, nil, Auto)
		}
	case "Buffer":
		var bf *Buffer
		if bf, err = p.buffer(); err == nil {
			b.View = p.implicitView(tk.Pos, nil, bf, Auto)
		}
	case "Sampler":
		b.Kind = SamplerBind
		b.Sampler, err = p.sampler()
	default:
		var sym any
		if sym, err = lookup[any](p, "bind target"); err != nil {
			return nil, err
		}
		switch v := sym.(type) {
		case *View:
			b.View = v
		case *Texture:
			b.View = p.implicitView(tk.Pos, v, nil, Auto)
		case *Buffer:
			b.View = p.implicitView(tk.Pos, nil, v, Auto)
		case *Sampler:
			b.Kind, b.Sampler = SamplerBind, v
		default:
			return nil, errorf(Syntactic, tk.Pos, "bind target %s is not a view, texture, buffer or sampler", kw)
		}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// target parses "= target" for a render target, making a view of the
// given kind for a texture.
func (p *parser) target(kind ViewKinds) (Target, error) {
	var tg Target
	if err := p.assign(); err != nil {
		return tg, err
	}
	tk := p.cur()
	if tk.Kind != token.Ident {
		return tg, p.unexpected("target")
	}
	kw := p.str(tk)
	if sv, ok := systemValue(kw); ok {
		p.next()
		tg.System, tg.IsSystem = sv, true
		return tg, nil
	}
	var err error
	switch kw {
	case "View":
		tg.View, err = p.view()
	case "Texture":
		var tx *Texture
		if tx, err = p.texture(); err == nil {
			tg.View = p.implicitView(tk.Pos, tx, nil, kind)
		}
	default:
		var sym any
		if sym, err = lookup[any](p, "target"); err != nil {
			return tg, err
		}
		switch v := sym.(type) {
		case *View:
			tg.View = v
		case *Texture:
			tg.View = p.implicitView(tk.Pos, v, nil, kind)
		default:
			return tg, errorf(Syntactic, tk.Pos, "target %s is not a view or texture", kw)
		}
	}
	if err != nil {
		return tg, err
	}
	return tg, fixTarget(tg.View, tk.Pos, kind)
}

// fixTarget fixes the kind of an auto view used as a render target
// of the given kind, and checks the kind of any other view.
func fixTarget(vw *View, pos token.Pos, kind ViewKinds) error {
	name := vw.Name
	if name == "" {
		name = vw.Resource()
	}
	if vw.Texture == nil {
		return errorf(Type, pos, "mismatched target %s: expected texture, got buffer", name)
	}
	switch vw.Kind {
	case Auto:
		vw.Kind = kind
	case kind:
	default:
		return errorf(Type, pos, "mismatched target %s: expected %s, got %s", name, strings.ToUpper(kind.String()), strings.ToUpper(vw.Kind.String()))
	}
	return nil
}

// setConstant parses "Name = expr" after the set keyword.
func (p *parser) setConstant() (*SetConstant, error) {
	ntk, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	n, err := p.exprValue()
	if err != nil {
		return nil, err
	}
	return &SetConstant{Name: p.str(ntk), Pos: ntk.Pos, Expr: n}, nil
}

// passes parses the "{ ref (, ref)* }" list after the Passes keyword.
func (p *parser) passes() error {
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}
	if p.tryConsume(token.RBrace) {
		return nil
	}
	for {
		ps, err := p.passRef()
		if err != nil {
			return err
		}
		p.d.Passes = append(p.d.Passes, ps)
		if p.tryConsume(token.Comma) {
			if p.tryConsume(token.RBrace) {
				return nil
			}
			continue
		}
		_, err = p.expect(token.RBrace)
		return err
	}
}

// passRef parses a pass definition or the name of a defined pass structure.
func (p *parser) passRef() (Pass, error) {
	tk := p.cur()
	if tk.Kind != token.Ident {
		return Pass{}, p.unexpected("pass")
	}
	if ps, ok, err := p.passDefinition(p.str(tk)); ok {
		return ps, err
	}
	sym, err := lookup[any](p, "pass")
	if err != nil {
		return Pass{}, err
	}
	switch v := sym.(type) {
	case *Dispatch:
		return Pass{Kind: DispatchPass, Dispatch: v}, nil
	case *Draw:
		return Pass{Kind: DrawPass, Draw: v}, nil
	case *ClearColor:
		return Pass{Kind: ClearColorPass, ClearColor: v}, nil
	case *ClearDepth:
		return Pass{Kind: ClearDepthPass, ClearDepth: v}, nil
	case *Resolve:
		return Pass{Kind: ResolvePass, Resolve: v}, nil
	}
	return Pass{}, errorf(Syntactic, tk.Pos, "%s is not a pass", p.str(tk))
}
