// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/rdl/shader"
)

// ResolveBindings resolves every bind and set constant of every
// dispatch and draw against the reflection of their shaders, compiling
// any shader that has not been compiled yet with comp.  It computes
// struct element sizes of buffers, allocates the constant buffers
// with their default contents, and creates the samplers and constant
// buffers on be.  Textures, buffers and views are created by the
// first [Description.Reevaluate].
func (d *Description) ResolveBindings(comp shader.Compiler, be Backend) error {
	d.backend = be
	for _, sh := range d.Shaders() {
		if sh.Compiled != nil {
			continue
		}
		cp, err := comp.Compile(sh.File, sh.Entry, sh.Stage)
		if err != nil {
			return &Error{Kind: Resolution, Pos: sh.Pos, Path: sh.File, Msg: err.Error()}
		}
		sh.Compiled = cp
	}
	for _, bf := range d.Buffers {
		if bf.Struct == "" {
			continue
		}
		if err := structSize(comp, bf); err != nil {
			return err
		}
	}
	for _, dp := range d.Dispatches {
		shs := []*Shader{dp.Shader}
		if err := d.resolveBinds(dp.Binds, shs); err != nil {
			return err
		}
		cbs, err := d.resolveSets(dp.Name, dp.Sets, shs)
		if err != nil {
			return err
		}
		dp.ConstantBuffers = cbs
	}
	for _, dr := range d.Draws {
		shs := []*Shader{dr.VertexShader}
		if dr.PixelShader != nil {
			shs = append(shs, dr.PixelShader)
		}
		if err := d.resolveBinds(dr.Binds, shs); err != nil {
			return err
		}
		cbs, err := d.resolveSets(dr.Name, dr.Sets, shs)
		if err != nil {
			return err
		}
		dr.ConstantBuffers = cbs
	}
	for _, vw := range d.Views {
		switch {
		case vw.Texture == nil:
		case vw.Kind == RTV:
			vw.Texture.RenderTarget = true
		case vw.Kind == DSV:
			vw.Texture.DepthStencil = true
		}
	}
	for _, sm := range d.Samplers {
		h, err := be.CreateSampler(&SamplerDesc{Name: sm.Name, Filter: sm.Filter, Address: sm.Address, Compare: sm.Compare, IsCompare: sm.IsCompare})
		if err != nil {
			return err
		}
		sm.Handle = h
	}
	for _, cb := range d.ConstantBuffers {
		h, err := be.CreateConstantBuffer(cb.Name, cb.Size)
		if err != nil {
			return err
		}
		cb.Handle = h
		cb.dirty = true
	}
	return nil
}

// structSize sets the element size of a buffer from its struct declaration.
func structSize(comp shader.Compiler, bf *Buffer) error {
	src, err := comp.ReadFile(bf.StructFile)
	if err != nil {
		return &Error{Kind: Resolution, Pos: bf.Pos, Path: bf.StructFile, Msg: err.Error()}
	}
	ls, err := shader.StructSizes(src)
	if err != nil {
		return &Error{Kind: Resolution, Pos: bf.Pos, Path: bf.StructFile, Msg: err.Error()}
	}
	l, ok := ls[bf.Struct]
	if !ok {
		return &Error{Kind: Resolution, Pos: bf.Pos, Path: bf.StructFile, Msg: fmt.Sprintf("couldn't find struct %s", bf.Struct)}
	}
	bf.ElementSize = l.Stride()
	return nil
}

// shaderPaths returns the file paths of the given shaders, for messages.
func shaderPaths(shs []*Shader) string {
	paths := make([]string, len(shs))
	for i, sh := range shs {
		paths[i] = sh.File
	}
	return strings.Join(paths, ", ")
}

// resolveBinds resolves each bind to every one of the shaders that
// declares a resource of its name.
func (d *Description) resolveBinds(binds []*Bind, shs []*Shader) error {
	for _, b := range binds {
		b.Resolved, b.Stages = nil, nil
		for _, sh := range shs {
			res := sh.Reflection().Resource(b.Name)
			if res == nil {
				continue
			}
			if err := checkBind(b, res); err != nil {
				err.Path = sh.File
				return err
			}
			rb := &ResolvedBind{Stage: sh.Stage, Group: res.Group, Slot: res.Slot, IsOutput: res.Kind == shader.Writable, ResourceKind: res.Kind}
			b.Stages = append(b.Stages, rb)
			if Debug {
				slog.Info("desc: resolved bind", "name", b.Name, "target", b.Target(), "shader", sh.File, "group", res.Group, "slot", res.Slot)
			}
		}
		if len(b.Stages) == 0 {
			return &Error{Kind: Resolution, Pos: b.Pos, Path: shaderPaths(shs), Msg: fmt.Sprintf("couldn't find resource %s in shader %s", b.Name, shaderPaths(shs))}
		}
		b.Resolved = b.Stages[0]
	}
	return nil
}

// bindKindName returns the name of the kind of resource that a bind
// provides, in the terms of [mismatchError].
func bindKindName(b *Bind) string {
	switch b.Kind {
	case SamplerBind:
		return "Sampler"
	case SystemBind:
		return b.System.String()
	}
	if b.View.Kind == Auto {
		return "view"
	}
	return strings.ToUpper(b.View.Kind.String())
}

func mismatchError(b *Bind, expected, got string) *Error {
	return errorf(Type, b.Pos, "mismatched bind %s: expected %s, got %s", b.Name, expected, got)
}

// checkBind checks that the bind fits the resource, fixing the kind
// of an auto view to the one the resource needs.
func checkBind(b *Bind, res *shader.Resource) *Error {
	want := SRV
	switch res.Kind {
	case shader.Sampler:
		if b.Kind != SamplerBind {
			return mismatchError(b, "Sampler", bindKindName(b))
		}
		return nil
	case shader.Writable:
		want = UAV
	}
	switch b.Kind {
	case SamplerBind:
		return mismatchError(b, want.String(), "Sampler")
	case SystemBind:
		if want != SRV || !res.Texture {
			return mismatchError(b, want.String(), b.System.String())
		}
		return nil
	}
	vw := b.View
	switch {
	case res.Texture && vw.Texture == nil:
		return mismatchError(b, "texture", "buffer")
	case !res.Texture && vw.Buffer == nil:
		return mismatchError(b, "buffer", "texture")
	case vw.Kind == Auto:
		vw.Kind = want
	case vw.Kind != want:
		return mismatchError(b, want.String(), vw.Kind.String())
	}
	if want == UAV && vw.Texture != nil {
		vw.Texture.Storage = true
	}
	if want == UAV && vw.Buffer != nil {
		vw.Buffer.Usage.SetFlag(true, StorageUsage)
	}
	return nil
}

// resolveSets allocates the constant buffers of the shaders of the
// named dispatch or draw and resolves each set constant to the first
// variable of its name.  There are no constant buffers without sets.
func (d *Description) resolveSets(owner string, sets []*SetConstant, shs []*Shader) ([]*ConstantBuffer, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	var cbs []*ConstantBuffer
	type key struct {
		sh   *Shader
		name string
	}
	byName := map[key]*ConstantBuffer{}
	for _, sh := range shs {
		for _, rcb := range sh.Reflection().ConstantBuffers {
			nm := rcb.Name
			if owner != "" {
				nm = owner + "." + nm
			}
			cb := &ConstantBuffer{Name: nm, Shader: sh, Group: rcb.Group, Slot: rcb.Slot, Size: rcb.Size, Data: make([]byte, rcb.Size)}
			for _, v := range rcb.Variables {
				if v.Default != nil && v.Offset+len(v.Default) <= len(cb.Data) {
					copy(cb.Data[v.Offset:], v.Default)
				}
			}
			byName[key{sh, rcb.Name}] = cb
			cbs = append(cbs, cb)
			d.ConstantBuffers = append(d.ConstantBuffers, cb)
		}
	}
	for _, sc := range sets {
		var rcb *shader.ConstantBuffer
		var v *shader.Variable
		var sh *Shader
		for _, s := range shs {
			if rcb, v = s.Reflection().Variable(sc.Name); v != nil {
				sh = s
				break
			}
		}
		if v == nil {
			return nil, &Error{Kind: Resolution, Pos: sc.Pos, Path: shaderPaths(shs), Msg: fmt.Sprintf("couldn't find constant %s in shader %s", sc.Name, shaderPaths(shs))}
		}
		if !v.Type.IsValid() {
			return nil, &Error{Kind: Type, Pos: sc.Pos, Path: sh.File, Msg: fmt.Sprintf("constant %s cannot be set", sc.Name)}
		}
		sc.Resolved = &ResolvedConstant{Buffer: byName[key{sh, rcb.Name}], Offset: v.Offset, Size: v.Size, Type: v.Type}
	}
	return cbs, nil
}
