// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/rdl/expr"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
)

// Debug enables logging of shader reflection.
var Debug = false

// WGSLCompiler is a [Compiler] for WGSL shaders that compiles them to
// SPIR-V with naga, reflecting on the naga IR.  Shader files are read
// from FS, with #include "file" lines replaced by the included file.
type WGSLCompiler struct {
	// FS is the file system that shader paths are relative to.
	FS fs.FS
}

// NewWGSLCompiler returns a new [WGSLCompiler] reading from the given
// file system.
func NewWGSLCompiler(fsys fs.FS) *WGSLCompiler {
	return &WGSLCompiler{FS: fsys}
}

func (wc *WGSLCompiler) ReadFile(fname string) ([]byte, error) {
	b, err := fs.ReadFile(wc.FS, fname)
	if err != nil {
		return nil, err
	}
	return []byte(IncludeFS(wc.FS, path.Dir(fname), string(b))), nil
}

func (wc *WGSLCompiler) Compile(fname, entry string, stage Stages) (*Compiled, error) {
	src, err := wc.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	ast, err := naga.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	mod, err := naga.LowerWithSource(ast, string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	rf, err := Reflect(mod, entry, stage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	rf.Path = fname
	// naga does not keep the storage access mode in the IR
	for _, gv := range ast.GlobalVars {
		if gv.AddressSpace != "storage" || gv.AccessMode == "" || gv.AccessMode == "read" {
			continue
		}
		if r := rf.Resource(gv.Name); r != nil {
			r.Kind = Writable
		}
	}
	bin, err := naga.GenerateSPIRV(mod, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if Debug {
		slog.Info("compiled shader", "path", fname, "entry", entry, "resources", len(rf.Resources), "constantBuffers", len(rf.ConstantBuffers))
	}
	return &Compiled{Reflection: rf, Binary: bin, Source: string(src)}, nil
}

var nagaStages = map[Stages]ir.ShaderStage{
	Compute: ir.StageCompute,
	Vertex:  ir.StageVertex,
	Pixel:   ir.StageFragment,
}

// Reflect returns the reflection of the given entry point of a naga
// module.  Uniform globals become constant buffers, with the members
// of a uniform struct as variables.  Storage buffers are read only
// resources, and textures are read only if sampled and writable if
// storage textures.
func Reflect(mod *ir.Module, entry string, stage Stages) (*Reflection, error) {
	rf := &Reflection{Entry: entry, Stage: stage}
	found := false
	for _, ep := range mod.EntryPoints {
		if ep.Name != entry {
			continue
		}
		if ep.Stage != nagaStages[stage] {
			return nil, fmt.Errorf("entry point %s is not a %s shader", entry, stage)
		}
		found = true
		for i, w := range ep.Workgroup {
			rf.Workgroup[i] = int(w)
		}
	}
	if !found {
		return nil, fmt.Errorf("couldn't find entry point %s", entry)
	}
	for _, gv := range mod.GlobalVariables {
		if gv.Binding == nil {
			continue
		}
		group, slot := int(gv.Binding.Group), int(gv.Binding.Binding)
		inner := mod.Types[gv.Type].Inner
		switch gv.Space {
		case ir.SpaceUniform:
			rf.ConstantBuffers = append(rf.ConstantBuffers, constantBuffer(mod, gv.Name, group, slot, inner))
		case ir.SpaceStorage:
			rf.Resources = append(rf.Resources, Resource{Name: gv.Name, Kind: ReadOnly, Group: group, Slot: slot})
		case ir.SpaceHandle:
			r := Resource{Name: gv.Name, Group: group, Slot: slot}
			switch it := inner.(type) {
			case ir.SamplerType:
				r.Kind = Sampler
			case ir.ImageType:
				r.Texture = true
				if it.Class == ir.ImageClassStorage {
					r.Kind = Writable
				}
			default:
				errors.Log(fmt.Errorf("shader.Reflect: unexpected handle type for %s", gv.Name))
				continue
			}
			rf.Resources = append(rf.Resources, r)
		}
	}
	return rf, nil
}

func constantBuffer(mod *ir.Module, name string, group, slot int, inner ir.TypeInner) *ConstantBuffer {
	cb := &ConstantBuffer{Name: name, Group: group, Slot: slot}
	st, ok := inner.(ir.StructType)
	if !ok {
		t, sz := irType(mod, inner)
		cb.Size = sz
		cb.Variables = []Variable{{Name: name, Size: sz, Type: t}}
		return cb
	}
	cb.Size = int(st.Span)
	for _, m := range st.Members {
		t, sz := irType(mod, mod.Types[m.Type].Inner)
		cb.Variables = append(cb.Variables, Variable{Name: m.Name, Offset: int(m.Offset), Size: sz, Type: t})
	}
	return cb
}

var scalarKinds = map[ir.ScalarKind]expr.ScalarKinds{
	ir.ScalarSint:  expr.Int,
	ir.ScalarUint:  expr.Uint,
	ir.ScalarFloat: expr.Float,
	ir.ScalarBool:  expr.Bool,
}

// irType returns the expression type and byte size of a naga type.
// The type is not valid for types that expressions cannot produce.
func irType(mod *ir.Module, inner ir.TypeInner) (expr.Type, int) {
	switch it := inner.(type) {
	case ir.ScalarType:
		return expr.Vec(scalarKinds[it.Kind], 1), int(it.Width)
	case ir.VectorType:
		return expr.Vec(scalarKinds[it.Scalar.Kind], int(it.Size)), int(it.Size) * int(it.Scalar.Width)
	case ir.MatrixType:
		col := vecLayout(int(it.Rows), int(it.Scalar.Width), true)
		sz := int(it.Columns) * col.Stride()
		if it.Columns == 4 && it.Rows == 4 && it.Scalar.Kind == ir.ScalarFloat {
			return expr.Float4x4, sz
		}
		return expr.Type{}, sz
	case ir.StructType:
		return expr.Type{}, int(it.Span)
	case ir.ArrayType:
		_, esz := irType(mod, mod.Types[it.Base].Inner)
		n := 0
		if it.Size.Constant != nil {
			n = int(*it.Size.Constant)
		}
		return expr.Type{}, n * max(int(it.Stride), esz)
	}
	return expr.Type{}, 0
}
