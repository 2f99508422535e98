// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"encoding/binary"
	"math"

	"cogentcore.org/rdl/expr"
	"cogentcore.org/rdl/shader"
	"cogentcore.org/rdl/token"
)

var shaderStages = map[string]shader.Stages{
	"ComputeShader": shader.Compute,
	"VertexShader":  shader.Vertex,
	"PixelShader":   shader.Pixel,
}

// shader parses a shader definition of the given kind keyword.
func (p *parser) shader(kind string) (*Shader, error) {
	stage := shaderStages[kind]
	nm, pos := p.header()
	sh := &Shader{Name: nm, Pos: pos, Stage: stage, Entry: "main"}
	switch stage {
	case shader.Compute:
		p.d.ComputeShaders = append(p.d.ComputeShaders, sh)
	case shader.Vertex:
		p.d.VertexShaders = append(p.d.VertexShaders, sh)
	default:
		p.d.PixelShaders = append(p.d.PixelShaders, sh)
	}
	if err := p.define(nm, pos, sh); err != nil {
		return nil, err
	}
	err := p.body(kind, func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "file":
			sh.File, err = p.stringValue()
		case "entry":
			sh.Entry, err = p.stringValue()
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if sh.File == "" {
		return nil, errorf(Syntactic, pos, "%s requires a file", kind)
	}
	return sh, nil
}

// shaderRef parses "= ref" for a shader of the given kind keyword.
func (p *parser) shaderRef(kind string) (*Shader, error) {
	tk := p.toks[min(p.pos+1, len(p.toks)-1)]
	sh, err := refOrDefine(p, kind, func() (*Shader, error) { return p.shader(kind) })
	if err != nil {
		return nil, err
	}
	if sh.Stage != shaderStages[kind] {
		return nil, errorf(Syntactic, tk.Pos, "%s is not a %s", sh.Name, kind)
	}
	return sh, nil
}

func (p *parser) buffer() (*Buffer, error) {
	nm, pos := p.header()
	bf := &Buffer{Name: nm, Pos: pos}
	p.d.Buffers = append(p.d.Buffers, bf)
	if err := p.define(nm, pos, bf); err != nil {
		return nil, err
	}
	err := p.body("Buffer", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "elementSize":
			bf.ElementSize, err = p.uintValue()
		case "count":
			bf.Count, err = p.exprValue()
		case "structFile":
			bf.StructFile, err = p.stringValue()
		case "struct":
			bf.Struct, err = p.identValue()
		case "data":
			bf.Data, err = p.data()
		case "vertex":
			bf.Usage.SetFlag(true, VertexUsage)
		case "index":
			bf.Usage.SetFlag(true, IndexUsage)
		case "storage":
			bf.Usage.SetFlag(true, StorageUsage)
		case "uniform":
			bf.Usage.SetFlag(true, UniformUsage)
		case "indirect":
			bf.Usage.SetFlag(true, IndirectUsage)
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	switch {
	case bf.Struct != "" && bf.StructFile == "":
		return nil, errorf(Syntactic, pos, "Buffer struct %s requires a structFile", bf.Struct)
	case bf.Struct == "" && bf.ElementSize == 0 && bf.Data != nil:
		bf.ElementSize = 4
	case bf.Struct == "" && bf.ElementSize == 0:
		return nil, errorf(Syntactic, pos, "Buffer requires an elementSize or struct")
	case bf.Count == nil && bf.Data == nil:
		return nil, errorf(Syntactic, pos, "Buffer requires a count or data")
	}
	return bf, nil
}

// data parses "= { number (, number)* }" as 4 byte little endian
// values: floats for float literals and ints otherwise.
func (p *parser) data() ([]byte, error) {
	if err := p.assign(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var b []byte
	for {
		v, isFloat, err := p.number()
		if err != nil {
			return nil, err
		}
		if isFloat {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(v)))
		} else {
			b = binary.LittleEndian.AppendUint32(b, uint32(int32(v)))
		}
		if !p.tryConsume(token.Comma) {
			break
		}
	}
	_, err := p.expect(token.RBrace)
	return b, err
}

func (p *parser) bufferRef() (*Buffer, error) {
	return refOrDefine(p, "Buffer", p.buffer)
}

func (p *parser) texture() (*Texture, error) {
	nm, pos := p.header()
	tx := &Texture{Name: nm, Pos: pos, Mips: 1, Samples: 1}
	p.d.Textures = append(p.d.Textures, tx)
	if err := p.define(nm, pos, tx); err != nil {
		return nil, err
	}
	err := p.body("Texture", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "size":
			tx.Size, err = p.exprValue()
		case "file":
			tx.File, err = p.stringValue()
		case "format":
			tx.Format, err = enumValue(p, "format", FormatsValues(), "")
		case "mips":
			tx.Mips, err = p.uintValue()
		case "samples":
			tx.Samples, err = p.uintValue()
		case "renderTarget":
			tx.RenderTarget = true
		case "depthStencil":
			tx.DepthStencil = true
		case "storage":
			tx.Storage = true
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if tx.File != "" {
		if tx.Size != nil {
			return nil, errorf(Syntactic, pos, "Texture can have file or size, not both")
		}
		if tx.Format != RGBA8Unorm && tx.Format != RGBA8UnormSrgb {
			return nil, errorf(Type, pos, "texture file requires format RGBA8Unorm or RGBA8UnormSrgb, got %s", tx.Format)
		}
		return tx, nil
	}
	if tx.Size == nil {
		tx.Size = expr.NewDisplaySize(pos)
	}
	if t := tx.Size.Type; t.IsValid() && !isShapeType(t, 2, 3) {
		return nil, errorf(Type, tx.Size.Pos, "texture size expected int2 or int3, got %s", t)
	}
	if tx.Format.IsDepth() {
		tx.DepthStencil = true
	}
	return tx, nil
}

// isShapeType returns true for int or uint types of from to to components.
func isShapeType(t expr.Type, from, to int) bool {
	return (t.Kind == expr.Int || t.Kind == expr.Uint) && !t.Matrix && t.N >= from && t.N <= to
}

func (p *parser) textureRef() (*Texture, error) {
	return refOrDefine(p, "Texture", p.texture)
}

func (p *parser) view() (*View, error) {
	nm, pos := p.header()
	vw := &View{Name: nm, Pos: pos}
	p.d.Views = append(p.d.Views, vw)
	if err := p.define(nm, pos, vw); err != nil {
		return nil, err
	}
	err := p.body("View", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "texture":
			vw.Texture, err = p.textureRef()
		case "buffer":
			vw.Buffer, err = p.bufferRef()
		case "kind":
			vw.Kind, err = enumValue(p, "view kind", ViewKindsValues(), "")
		case "mip":
			vw.Mip, err = p.uintValue()
		case "firstElement":
			vw.FirstElement, err = p.uintValue()
		case "numElements":
			vw.NumElements, err = p.uintValue()
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if (vw.Texture == nil) == (vw.Buffer == nil) {
		return nil, errorf(Syntactic, pos, "View requires one of texture or buffer")
	}
	return vw, nil
}

func (p *parser) sampler() (*Sampler, error) {
	nm, pos := p.header()
	sm := &Sampler{Name: nm, Pos: pos, Filter: Linear}
	p.d.Samplers = append(p.d.Samplers, sm)
	if err := p.define(nm, pos, sm); err != nil {
		return nil, err
	}
	err := p.body("Sampler", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "filter":
			sm.Filter, err = enumValue(p, "filter", FiltersValues(), "")
		case "address":
			sm.Address, err = enumValue(p, "address mode", AddressModesValues(), "")
		case "compare":
			sm.Compare, err = enumValue(p, "compare function", CompareFuncsValues(), "Compare")
			sm.IsCompare = true
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return sm, nil
}

func (p *parser) rasterizerState() (*RasterizerState, error) {
	nm, pos := p.header()
	rs := &RasterizerState{Name: nm, Cull: CullBack}
	p.d.RasterizerStates = append(p.d.RasterizerStates, rs)
	if err := p.define(nm, pos, rs); err != nil {
		return nil, err
	}
	return rs, p.body("RasterizerState", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "cull":
			rs.Cull, err = enumValue(p, "cull mode", CullModesValues(), "Cull")
		case "fill":
			rs.Fill, err = enumValue(p, "fill mode", FillModesValues(), "Fill")
		case "frontCCW":
			rs.FrontCCW = true
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *parser) depthStencilState() (*DepthStencilState, error) {
	nm, pos := p.header()
	ds := &DepthStencilState{Name: nm, DepthFunc: CompareLess}
	p.d.DepthStencilStates = append(p.d.DepthStencilStates, ds)
	if err := p.define(nm, pos, ds); err != nil {
		return nil, err
	}
	return ds, p.body("DepthStencilState", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "depthTest":
			ds.DepthTest = true
		case "depthWrite":
			ds.DepthWrite = true
		case "depthFunc":
			ds.DepthFunc, err = enumValue(p, "compare function", CompareFuncsValues(), "Compare")
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *parser) blendState() (*BlendState, error) {
	nm, pos := p.header()
	bs := &BlendState{Name: nm, Src: BlendOne, Dst: BlendZero}
	p.d.BlendStates = append(p.d.BlendStates, bs)
	if err := p.define(nm, pos, bs); err != nil {
		return nil, err
	}
	return bs, p.body("BlendState", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "enable":
			bs.Enable = true
		case "src":
			bs.Src, err = enumValue(p, "blend factor", BlendFactorsValues(), "Blend")
		case "dst":
			bs.Dst, err = enumValue(p, "blend factor", BlendFactorsValues(), "Blend")
		case "op":
			bs.Op, err = enumValue(p, "blend op", BlendOpsValues(), "Op")
		default:
			return false, nil
		}
		return true, err
	})
}

func (p *parser) tunable() (*expr.Tunable, error) {
	nm, pos := p.header()
	if nm == "" {
		return nil, errorf(Syntactic, pos, "Tunable requires a name")
	}
	if len(p.d.Tunables) >= expr.MaxTunables {
		return nil, errorf(Syntactic, pos, "too many tunables, the limit is %d", expr.MaxTunables)
	}
	tn := &expr.Tunable{Name: nm, Index: len(p.d.Tunables)}
	p.d.Tunables = append(p.d.Tunables, tn)
	if err := p.define(nm, pos, tn); err != nil {
		return nil, err
	}
	var value *expr.Node
	err := p.body("Tunable", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "value":
			value, err = p.exprValue()
		case "min":
			tn.Min, err = p.numberValue()
		case "max":
			tn.Max, err = p.numberValue()
		case "step":
			tn.Step, err = p.numberValue()
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errorf(Syntactic, pos, "Tunable %s requires a value", nm)
	}
	if !value.IsConstant() {
		return nil, errorf(Type, value.Pos, "Tunable %s value must be constant", nm)
	}
	v, err := expr.Eval(value, &expr.Context{})
	if err != nil {
		return nil, typeError(err)
	}
	tn.Value, tn.Default = v, v
	return tn, nil
}

// passDefinition parses a definition of a pass structure if kind is
// one, returning the pass and true.
func (p *parser) passDefinition(kind string) (Pass, bool, error) {
	var ps Pass
	var err error
	switch kind {
	case "Dispatch":
		ps.Kind = DispatchPass
		ps.Dispatch, err = p.dispatch()
	case "Draw":
		ps.Kind = DrawPass
		ps.Draw, err = p.draw()
	case "ClearColor":
		ps.Kind = ClearColorPass
		ps.ClearColor, err = p.clearColor()
	case "ClearDepth":
		ps.Kind = ClearDepthPass
		ps.ClearDepth, err = p.clearDepth()
	case "Resolve":
		ps.Kind = ResolvePass
		ps.Resolve, err = p.resolve()
	default:
		return ps, false, nil
	}
	return ps, true, err
}

func (p *parser) dispatch() (*Dispatch, error) {
	nm, pos := p.header()
	dp := &Dispatch{Name: nm, Pos: pos, GroupCount: [3]int{1, 1, 1}}
	p.d.Dispatches = append(p.d.Dispatches, dp)
	if err := p.define(nm, pos, dp); err != nil {
		return nil, err
	}
	err := p.body("Dispatch", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "shader":
			dp.Shader, err = p.shaderRef("ComputeShader")
		case "groups":
			dp.Groups, err = p.exprValue()
		case "threads":
			dp.Threads, err = p.exprValue()
		case "indirect":
			dp.Indirect, err = p.bufferRef()
		case "bind":
			var b *Bind
			if b, err = p.bind(); err == nil {
				dp.Binds = append(dp.Binds, b)
			}
		case "set":
			var sc *SetConstant
			if sc, err = p.setConstant(); err == nil {
				dp.Sets = append(dp.Sets, sc)
			}
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	switch {
	case dp.Shader == nil:
		return nil, errorf(Syntactic, pos, "Dispatch requires a shader")
	case dp.Groups != nil && dp.Threads != nil:
		return nil, errorf(Syntactic, pos, "Dispatch can have groups or threads, not both")
	}
	for _, n := range []*expr.Node{dp.Groups, dp.Threads} {
		if n != nil && n.Type.IsValid() && !isShapeType(n.Type, 1, 3) {
			return nil, errorf(Type, n.Pos, "dispatch size expected int, int2 or int3, got %s", n.Type)
		}
	}
	return dp, nil
}

func (p *parser) draw() (*Draw, error) {
	nm, pos := p.header()
	dr := &Draw{Name: nm, Pos: pos, CurInstanceCount: 1}
	p.d.Draws = append(p.d.Draws, dr)
	if err := p.define(nm, pos, dr); err != nil {
		return nil, err
	}
	err := p.body("Draw", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "vertexShader":
			dr.VertexShader, err = p.shaderRef("VertexShader")
		case "pixelShader":
			dr.PixelShader, err = p.shaderRef("PixelShader")
		case "vertexCount":
			dr.VertexCount, err = p.exprValue()
		case "instanceCount":
			dr.InstanceCount, err = p.exprValue()
		case "vertexBuffer":
			dr.VertexBuffer, err = p.bufferRef()
		case "indexBuffer":
			dr.IndexBuffer, err = p.bufferRef()
		case "topology":
			dr.Topology, err = enumValue(p, "topology", TopologiesValues(), "")
		case "renderTarget":
			dr.RenderTarget, err = p.target(RTV)
		case "depthTarget":
			dr.DepthTarget, err = p.target(DSV)
		case "viewport":
			if dr.Viewport, err = p.exprValue(); err == nil {
				dr.Viewport, err = requireFloat4(dr.Viewport, "viewport")
			}
		case "rasterizerState":
			dr.RasterizerState, err = refOrDefine(p, "RasterizerState", p.rasterizerState)
		case "depthStencilState":
			dr.DepthStencilState, err = refOrDefine(p, "DepthStencilState", p.depthStencilState)
		case "blendState":
			dr.BlendState, err = refOrDefine(p, "BlendState", p.blendState)
		case "bind":
			var b *Bind
			if b, err = p.bind(); err == nil {
				dr.Binds = append(dr.Binds, b)
			}
		case "set":
			var sc *SetConstant
			if sc, err = p.setConstant(); err == nil {
				dr.Sets = append(dr.Sets, sc)
			}
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	switch {
	case dr.VertexShader == nil:
		return nil, errorf(Syntactic, pos, "Draw requires a vertexShader")
	case dr.VertexCount == nil:
		return nil, errorf(Syntactic, pos, "Draw requires a vertexCount")
	case !dr.RenderTarget.IsSet():
		dr.RenderTarget = Target{System: Backbuffer, IsSystem: true}
	}
	return dr, nil
}

// requireFloat4 checks that n is a float4 expression, converting
// constant int4 vectors such as {0, 0, 1, 1} to float4.
func requireFloat4(n *expr.Node, what string) (*expr.Node, error) {
	f4 := expr.Vec(expr.Float, 4)
	if n.Type == expr.Vec(expr.Int, 4) && n.IsConstant() {
		n = expr.NewCall(n.Pos, expr.ToFloat, n)
	}
	if n.Type.IsValid() && n.Type != f4 {
		return nil, errorf(Type, n.Pos, "%s expected %s, got %s", what, f4, n.Type)
	}
	return n, nil
}

func (p *parser) clearColor() (*ClearColor, error) {
	nm, pos := p.header()
	cc := &ClearColor{Name: nm, Pos: pos, CurColor: [4]float32{0, 0, 0, 1}}
	p.d.ClearColors = append(p.d.ClearColors, cc)
	if err := p.define(nm, pos, cc); err != nil {
		return nil, err
	}
	err := p.body("ClearColor", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "target":
			cc.Target, err = p.target(RTV)
		case "color":
			if cc.Color, err = p.exprValue(); err == nil {
				cc.Color, err = requireFloat4(cc.Color, "color")
			}
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if !cc.Target.IsSet() {
		cc.Target = Target{System: Backbuffer, IsSystem: true}
	}
	return cc, nil
}

func (p *parser) clearDepth() (*ClearDepth, error) {
	nm, pos := p.header()
	cd := &ClearDepth{Name: nm, Pos: pos, CurDepth: 1}
	p.d.ClearDepths = append(p.d.ClearDepths, cd)
	if err := p.define(nm, pos, cd); err != nil {
		return nil, err
	}
	err := p.body("ClearDepth", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "target":
			cd.Target, err = p.target(DSV)
		case "depth":
			cd.Depth, err = p.exprValue()
		case "stencil":
			cd.Stencil, err = p.uintValue()
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if !cd.Target.IsSet() {
		cd.Target = Target{System: DepthBuffer, IsSystem: true}
	}
	return cd, nil
}

func (p *parser) resolve() (*Resolve, error) {
	nm, pos := p.header()
	rs := &Resolve{Name: nm, Pos: pos}
	p.d.Resolves = append(p.d.Resolves, rs)
	if err := p.define(nm, pos, rs); err != nil {
		return nil, err
	}
	err := p.body("Resolve", func(field string, tk token.Token) (bool, error) {
		var err error
		switch field {
		case "src":
			rs.Src, err = p.textureRef()
		case "dst":
			rs.Dst, err = p.textureRef()
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if rs.Src == nil || rs.Dst == nil {
		return nil, errorf(Syntactic, pos, "Resolve requires a src and dst")
	}
	return rs, nil
}
