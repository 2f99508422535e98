// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"bytes"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/rdl/expr"
)

// Reevaluate re-evaluates the expressions of the description that read
// any of the changed inputs, and everything on the first call.  Set
// constants are refreshed first, then the shapes of buffers and
// textures: an object whose shape changed is recreated, and the old
// object and its views are released once the new one exists.  Objects whose shape does not read a
// changed input keep their handles.  Then dispatch, draw and clear
// values are refreshed and each changed constant buffer is uploaded
// once.  An item that fails keeps its previous state, and the first
// error is returned after every item has been visited.
func (d *Description) Reevaluate(ctx *expr.Context, changed expr.Deps) error {
	if d.backend == nil {
		return errors.New("desc: Reevaluate called before ResolveBindings")
	}
	if ctx.Tunables == nil {
		c := *ctx
		c.Tunables = d.Tunables
		ctx = &c
	}
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	for _, dp := range d.Dispatches {
		for _, sc := range dp.Sets {
			keep(d.setConstant(sc, ctx, changed))
		}
	}
	for _, dr := range d.Draws {
		for _, sc := range dr.Sets {
			keep(d.setConstant(sc, ctx, changed))
		}
	}
	for _, bf := range d.Buffers {
		keep(d.evalBuffer(bf, ctx, changed))
	}
	for _, tx := range d.Textures {
		keep(d.evalTexture(tx, ctx, changed))
	}
	for _, vw := range d.Views {
		if vw.Handle != 0 {
			continue
		}
		if (vw.Texture != nil && vw.Texture.Handle == 0) || (vw.Buffer != nil && vw.Buffer.Handle == 0) {
			continue
		}
		keep(d.createView(vw))
	}
	for _, dp := range d.Dispatches {
		keep(d.evalDispatch(dp, ctx, changed))
	}
	for _, dr := range d.Draws {
		keep(d.evalDraw(dr, ctx, changed))
	}
	for _, cc := range d.ClearColors {
		if !d.stale(cc.Color, changed) {
			continue
		}
		v, err := eval(cc.Color, ctx)
		if err != nil {
			keep(err)
			continue
		}
		copy(cc.CurColor[:], v.F[:4])
	}
	for _, cd := range d.ClearDepths {
		if !d.stale(cd.Depth, changed) {
			continue
		}
		v, err := eval(cd.Depth, ctx)
		if err != nil {
			keep(err)
			continue
		}
		if !v.Type.IsScalar() || v.Type.Kind == expr.Bool {
			keep(errorf(Type, cd.Depth.Pos, "depth expected float, got %s", v.Type))
			continue
		}
		cd.CurDepth = float32(v.Float64(0))
	}
	for _, cb := range d.ConstantBuffers {
		if !cb.dirty || cb.Handle == 0 {
			continue
		}
		if err := d.backend.WriteConstantBuffer(cb.Handle, cb.Data); err != nil {
			keep(errorf(Resolution, cb.Shader.Pos, "writing constant buffer %s: %v", cb.Name, err))
			continue
		}
		cb.dirty = false
	}
	d.evaluated = true
	return first
}

// eval evaluates n, returning errors as [Error]s.
func eval(n *expr.Node, ctx *expr.Context) (expr.Value, error) {
	v, err := expr.Eval(n, ctx)
	if err != nil {
		return v, typeError(err)
	}
	return v, nil
}

// stale returns true if n must be evaluated for the changed inputs,
// which is always the case on the first frame.
func (d *Description) stale(n *expr.Node, changed expr.Deps) bool {
	return n != nil && (!d.evaluated || n.Deps.Has(changed))
}

// setConstant writes the value of a resolved set constant into its
// constant buffer, marking the buffer dirty when the bytes change.
func (d *Description) setConstant(sc *SetConstant, ctx *expr.Context, changed expr.Deps) error {
	rc := sc.Resolved
	if rc == nil || rc.Buffer == nil || !d.stale(sc.Expr, changed) {
		return nil
	}
	v, err := eval(sc.Expr, ctx)
	if err != nil {
		return err
	}
	if sz := v.Type.Size(); sz != rc.Size {
		return errorf(Type, sc.Pos, "constant %s does not match size: expected %d, actual %d", sc.Name, rc.Size, sz)
	}
	if v.Type != rc.Type {
		return errorf(Type, sc.Pos, "constant %s expected %s, got %s", sc.Name, rc.Type, v.Type)
	}
	b := v.Bytes()
	dst := rc.Buffer.Data[rc.Offset : rc.Offset+rc.Size]
	if !bytes.Equal(dst, b) {
		copy(dst, b)
		rc.Buffer.dirty = true
	}
	return nil
}

// evalBuffer creates the buffer, or recreates it when its count changed.
func (d *Description) evalBuffer(bf *Buffer, ctx *expr.Context, changed expr.Deps) error {
	if bf.Handle != 0 && !d.stale(bf.Count, changed) {
		return nil
	}
	count := 0
	if bf.Count == nil {
		count = (len(bf.Data) + bf.ElementSize - 1) / bf.ElementSize
	} else {
		v, err := eval(bf.Count, ctx)
		if err != nil {
			return err
		}
		if !isShapeType(v.Type, 1, 1) {
			return errorf(Type, bf.Count.Pos, "buffer count expected int, got %s", v.Type)
		}
		count = int(v.Int64(0))
	}
	if count <= 0 {
		return errorf(Type, bf.Pos, "buffer %s count must be positive, got %d", bf.Name, count)
	}
	if bf.Handle != 0 && count == bf.CurCount {
		return nil
	}
	if bf.Handle != 0 {
		if Debug {
			slog.Info("desc: recreating buffer", "name", bf.Name, "count", count, "was", bf.CurCount)
		}
	}
	return d.createBuffer(bf, count)
}

// evalTexture creates the texture, or recreates it when its size changed.
func (d *Description) evalTexture(tx *Texture, ctx *expr.Context, changed expr.Deps) error {
	if tx.Size == nil {
		return errorf(Resolution, tx.Pos, "image %s of texture %s is not loaded", tx.File, tx.Name)
	}
	if tx.Handle != 0 && !d.stale(tx.Size, changed) {
		return nil
	}
	v, err := eval(tx.Size, ctx)
	if err != nil {
		return err
	}
	if !isShapeType(v.Type, 2, 3) {
		return errorf(Type, tx.Size.Pos, "texture size expected int2 or int3, got %s", v.Type)
	}
	size := [3]int{1, 1, 1}
	for i := range v.Type.N {
		size[i] = int(v.Int64(i))
		if size[i] <= 0 {
			return errorf(Type, tx.Size.Pos, "texture %s size must be positive, got %s", tx.Name, v)
		}
	}
	if tx.Handle != 0 && size == tx.CurSize {
		return nil
	}
	if tx.Handle != 0 {
		if Debug {
			slog.Info("desc: recreating texture", "name", tx.Name, "size", size, "was", tx.CurSize)
		}
	}
	return d.createTexture(tx, size)
}

// shape returns the 1 to 3 component int value as 3 counts, with
// missing components 1.
func shape(n *expr.Node, ctx *expr.Context, what string) ([3]int, error) {
	r := [3]int{1, 1, 1}
	v, err := eval(n, ctx)
	if err != nil {
		return r, err
	}
	if !isShapeType(v.Type, 1, 3) {
		return r, errorf(Type, n.Pos, "%s expected int, int2 or int3, got %s", what, v.Type)
	}
	for i := range v.Type.N {
		r[i] = int(v.Int64(i))
		if r[i] < 0 {
			return r, errorf(Type, n.Pos, "%s must not be negative, got %s", what, v)
		}
	}
	return r, nil
}

func (d *Description) evalDispatch(dp *Dispatch, ctx *expr.Context, changed expr.Deps) error {
	switch {
	case d.stale(dp.Groups, changed):
		gc, err := shape(dp.Groups, ctx, "dispatch groups")
		if err != nil {
			return err
		}
		dp.GroupCount = gc
	case d.stale(dp.Threads, changed):
		th, err := shape(dp.Threads, ctx, "dispatch threads")
		if err != nil {
			return err
		}
		var wg [3]int
		if rf := dp.Shader.Reflection(); rf != nil {
			wg = rf.Workgroup
		}
		for i := range 3 {
			dp.GroupCount[i] = (th[i] + max(wg[i], 1) - 1) / max(wg[i], 1)
		}
	}
	return nil
}

func (d *Description) evalDraw(dr *Draw, ctx *expr.Context, changed expr.Deps) error {
	if d.stale(dr.VertexCount, changed) {
		v, err := eval(dr.VertexCount, ctx)
		if err != nil {
			return err
		}
		if !isShapeType(v.Type, 1, 1) || v.Int64(0) < 0 {
			return errorf(Type, dr.VertexCount.Pos, "vertex count expected non-negative int, got %s", v)
		}
		dr.CurVertexCount = int(v.Int64(0))
	}
	if d.stale(dr.InstanceCount, changed) {
		v, err := eval(dr.InstanceCount, ctx)
		if err != nil {
			return err
		}
		if !isShapeType(v.Type, 1, 1) || v.Int64(0) < 0 {
			return errorf(Type, dr.InstanceCount.Pos, "instance count expected non-negative int, got %s", v)
		}
		dr.CurInstanceCount = int(v.Int64(0))
	}
	if d.stale(dr.Viewport, changed) {
		v, err := eval(dr.Viewport, ctx)
		if err != nil {
			return err
		}
		copy(dr.CurViewport[:], v.F[:4])
	}
	return nil
}
