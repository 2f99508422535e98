// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"math"

	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/token"
)

// components are the component names of vector subscripts.
var components = map[string]int{
	"x": 0, "y": 1, "z": 2, "w": 3,
	"r": 0, "g": 1, "b": 2, "a": 3,
}

// expr parses an expression:
//
//	expr    = term (("+" | "-") term)*
//	term    = unary (("*" | "/" | "%") unary)*
//	unary   = "-" unary | postfix
//	postfix = primary ("." component | "[" int "]")*
//	primary = int | float | "(" expr ")" | "{" expr ("," expr)* "}"
//	        | "@" Name | true | false | Name "(" args ")"
func (p *parser) expr() (*expr.Node, error) {
	a, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tk := p.cur()
		var op expr.BinaryOps
		switch tk.Kind {
		case token.Plus:
			op = expr.Add
		case token.Minus:
			op = expr.Sub
		default:
			return a, nil
		}
		p.next()
		b, err := p.term()
		if err != nil {
			return nil, err
		}
		if a, err = binaryNode(tk.Pos, op, a, b); err != nil {
			return nil, err
		}
	}
}

func (p *parser) term() (*expr.Node, error) {
	a, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tk := p.cur()
		var op expr.BinaryOps
		switch tk.Kind {
		case token.Star:
			op = expr.Mul
		case token.Slash:
			op = expr.Div
		case token.Percent:
			op = expr.Mod
		default:
			return a, nil
		}
		p.next()
		b, err := p.unary()
		if err != nil {
			return nil, err
		}
		if a, err = binaryNode(tk.Pos, op, a, b); err != nil {
			return nil, err
		}
	}
}

// binaryNode returns a binary node, reporting a type error when
// both operand types are known and do not fit the operator.
func binaryNode(pos token.Pos, op expr.BinaryOps, a, b *expr.Node) (*expr.Node, error) {
	if _, err := expr.BinaryType(op, a.Type, b.Type); err != nil {
		return nil, errorf(Type, pos, "%s", err.Error())
	}
	return expr.NewBinary(pos, op, a, b), nil
}

func (p *parser) unary() (*expr.Node, error) {
	tk := p.cur()
	if tk.Kind != token.Minus {
		return p.postfix()
	}
	p.next()
	// a negative integer literal is folded so that the most negative
	// int is in range.
	if lit := p.cur(); lit.Kind == token.Int {
		p.next()
		if lit.Int > -math.MinInt32 {
			return nil, errorf(Syntactic, lit.Pos, "integer literal -%d out of range", lit.Int)
		}
		return p.postfixOf(expr.NewLiteral(tk.Pos, expr.IntValue(int32(-lit.Int))))
	}
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	if t := x.Type; t.Kind == expr.Bool {
		return nil, errorf(Type, tk.Pos, "negate expected numeric, got %s", t)
	}
	n := expr.NewNegate(tk.Pos, x)
	if x.Kind == expr.Literal {
		v, err := expr.Eval(n, nil)
		if err != nil {
			return nil, typeError(err)
		}
		return expr.NewLiteral(tk.Pos, v), nil
	}
	return n, nil
}

func (p *parser) postfix() (*expr.Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.postfixOf(x)
}

// postfixOf parses any subscripts applied to x.
func (p *parser) postfixOf(x *expr.Node) (*expr.Node, error) {
	for {
		tk := p.cur()
		idx := -1
		switch tk.Kind {
		case token.Dot:
			p.next()
			ctk, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			c, ok := components[p.str(ctk)]
			if !ok {
				return nil, errorf(Syntactic, ctk.Pos, "unknown component %s", p.str(ctk))
			}
			idx = c
		case token.LBrack:
			p.next()
			i, err := p.uint()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBrack); err != nil {
				return nil, err
			}
			idx = i
		default:
			return x, nil
		}
		if t := x.Type; t.IsValid() && (!t.IsVector() || idx >= t.N) {
			return nil, errorf(Type, tk.Pos, "subscript %d out of range for %s", idx, t)
		}
		x = expr.NewSubscript(tk.Pos, x, idx)
	}
}

func (p *parser) primary() (*expr.Node, error) {
	tk := p.cur()
	switch tk.Kind {
	case token.Int:
		p.next()
		if tk.Int > math.MaxInt32 {
			return nil, errorf(Syntactic, tk.Pos, "integer literal %d out of range", tk.Int)
		}
		return expr.NewLiteral(tk.Pos, expr.IntValue(int32(tk.Int))), nil
	case token.Float:
		p.next()
		return expr.NewLiteral(tk.Pos, expr.FloatValue(float32(tk.Float))), nil
	case token.LParen:
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		_, err = p.expect(token.RParen)
		return x, err
	case token.LBrace:
		return p.vector()
	case token.At:
		p.next()
		ntk := p.cur()
		tn, err := lookup[*expr.Tunable](p, "Tunable")
		if err != nil {
			return nil, err
		}
		return expr.NewTunableRef(ntk.Pos, tn), nil
	case token.Ident:
		return p.call()
	}
	return nil, p.unexpected("expression")
}

// vector parses "{ expr (, expr)* }".  Int literals in a vector with
// float components are promoted to float.
func (p *parser) vector() (*expr.Node, error) {
	pos := p.next().Pos
	var elems []*expr.Node
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if !p.tryConsume(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	hasFloat := false
	for _, e := range elems {
		hasFloat = hasFloat || e.Type == expr.FloatType
	}
	for i, e := range elems {
		if hasFloat && e.Kind == expr.Literal && e.Type == expr.IntType {
			elems[i] = expr.NewLiteral(e.Pos, expr.FloatValue(float32(e.Value.I[0])))
		}
	}
	n := expr.NewVector(pos, elems...)
	f4 := expr.Vec(expr.Float, 4)
	switch {
	case len(elems) == 4 && elems[0].Type == f4:
	case len(elems) < 2 || len(elems) > 4:
		return nil, errorf(Syntactic, pos, "vector expected 2 to 4 components, got %d", len(elems))
	}
	for _, e := range elems[1:] {
		if e.Type.IsValid() && elems[0].Type.IsValid() && e.Type != elems[0].Type {
			return nil, errorf(Type, e.Pos, "vector element expected %s, got %s", elems[0].Type, e.Type)
		}
	}
	return n, nil
}

// call parses a boolean literal or a call of a built-in.
func (p *parser) call() (*expr.Node, error) {
	tk := p.next()
	nm := p.str(tk)
	switch nm {
	case "true", "false":
		return expr.NewLiteral(tk.Pos, expr.BoolValue(nm == "true")), nil
	}
	nargs := 0
	fn, isFunc := expr.LookupFunc(nm)
	switch {
	case isFunc:
		nargs = fn.NumArgs()
	case nm == "Time", nm == "DisplaySize":
	case nm == "LookAt":
		nargs = 2
	case nm == "Projection":
		nargs = 4
	default:
		return nil, errorf(Syntactic, tk.Pos, "unknown function %s", nm)
	}
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	if len(args) != nargs {
		return nil, errorf(Syntactic, tk.Pos, "%s expected %d arguments, got %d", nm, nargs, len(args))
	}
	switch nm {
	case "Time":
		return expr.NewTime(tk.Pos), nil
	case "DisplaySize":
		return expr.NewDisplaySize(tk.Pos), nil
	case "LookAt":
		f3 := expr.Vec(expr.Float, 3)
		for _, a := range args {
			if a.Type.IsValid() && a.Type != f3 {
				return nil, errorf(Type, a.Pos, "LookAt expected %s, got %s", f3, a.Type)
			}
		}
		return expr.NewLookAt(tk.Pos, args[0], args[1]), nil
	case "Projection":
		for _, a := range args {
			if t := a.Type; t.IsValid() && (!t.IsScalar() || t.Kind == expr.Bool) {
				return nil, errorf(Type, a.Pos, "Projection expected float, got %s", t)
			}
		}
		return expr.NewProjection(tk.Pos, args[0], args[1], args[2], args[3]), nil
	}
	if t := args[0].Type; t.IsValid() && (t.Matrix || t.Kind == expr.Bool) && !fn.IsConversion() {
		return nil, errorf(Type, args[0].Pos, "%s expected numeric, got %s", nm, t)
	}
	if nargs == 2 && args[0].Type.IsValid() && args[1].Type.IsValid() && args[0].Type != args[1].Type {
		return nil, errorf(Type, args[1].Pos, "%s expected %s, got %s", nm, args[0].Type, args[1].Type)
	}
	return expr.NewCall(tk.Pos, fn, args...), nil
}

// args parses "( expr (, expr)* )" or "()".
func (p *parser) args() ([]*expr.Node, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	if p.tryConsume(token.RParen) {
		return nil, nil
	}
	var args []*expr.Node
	for {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.tryConsume(token.Comma) {
			break
		}
	}
	_, err := p.expect(token.RParen)
	return args, err
}
