// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/rdl/lexer"
	"cogentcore.org/rdl/token"
)

// Dump writes the tokens of the given document to w, one per line.
func Dump(w io.Writer, src []byte) error {
	st := &token.Strings{}
	toks, err := lexer.Tokenize(src, lexer.Document, st)
	if err != nil {
		return err
	}
	for _, tk := range toks {
		if _, err := fmt.Fprintf(w, "%-10s %-10s %s\n", tk.Pos, tk.Kind, tk.Describe(st)); err != nil {
			return err
		}
	}
	return nil
}

// Summary returns a readable listing of the structures of the
// description and its passes, with the current evaluated values.
func (d *Description) Summary() string {
	var b strings.Builder
	for _, sh := range d.Shaders() {
		fmt.Fprintf(&b, "%s %s: %s:%s\n", sh.Stage, name(sh.Name), sh.File, sh.Entry)
	}
	for _, bf := range d.Buffers {
		fmt.Fprintf(&b, "Buffer %s: %d x %d bytes\n", name(bf.Name), bf.CurCount, bf.ElementSize)
	}
	for _, tx := range d.Textures {
		fmt.Fprintf(&b, "Texture %s: %dx%dx%d %s", name(tx.Name), tx.CurSize[0], tx.CurSize[1], tx.CurSize[2], tx.Format)
		if tx.File != "" {
			fmt.Fprintf(&b, " from %s", tx.File)
		}
		if tx.Size != nil && !tx.Size.IsConstant() {
			fmt.Fprintf(&b, " (%s)", tx.Size.Deps)
		}
		b.WriteString("\n")
	}
	for _, tn := range d.Tunables {
		fmt.Fprintf(&b, "Tunable %s = %s\n", tn.Name, tn.Value)
	}
	for i := range d.Passes {
		ps := &d.Passes[i]
		fmt.Fprintf(&b, "%d: %s %s", i, ps.Kind, name(ps.Name()))
		switch ps.Kind {
		case DispatchPass:
			gc := ps.Dispatch.GroupCount
			fmt.Fprintf(&b, " groups %d,%d,%d", gc[0], gc[1], gc[2])
		case DrawPass:
			fmt.Fprintf(&b, " vertices %d instances %d to %s", ps.Draw.CurVertexCount, ps.Draw.CurInstanceCount, &ps.Draw.RenderTarget)
		case ClearColorPass:
			fmt.Fprintf(&b, " %s to %v", &ps.ClearColor.Target, ps.ClearColor.CurColor)
		case ClearDepthPass:
			fmt.Fprintf(&b, " %s to %g", &ps.ClearDepth.Target, ps.ClearDepth.CurDepth)
		case ResolvePass:
			fmt.Fprintf(&b, " %s to %s", name(ps.Resolve.Src.Name), name(ps.Resolve.Dst.Name))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// name returns the name, or a placeholder for anonymous structures.
func name(nm string) string {
	if nm == "" {
		return "<anonymous>"
	}
	return nm
}
