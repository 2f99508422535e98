// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"log/slog"
)

// createBuffer creates the buffer with count elements.
func (d *Description) createBuffer(bf *Buffer, count int) error {
	h, err := d.backend.CreateBuffer(&BufferDesc{Name: bf.Name, ElementSize: bf.ElementSize, Count: count, Usage: bf.Usage, Data: bf.Data})
	if err != nil {
		return errorf(Resolution, bf.Pos, "creating buffer %s: %v", bf.Name, err)
	}
	if bf.Handle != 0 {
		d.releaseViews(nil, bf)
		d.release(&bf.Handle)
	}
	bf.Handle, bf.CurCount = h, count
	if Debug {
		slog.Info("desc: created buffer", "name", bf.Name, "count", count, "elementSize", bf.ElementSize)
	}
	return nil
}

// createTexture creates the texture with the given size, replacing
// any previous texture and its views only once the new one exists.
func (d *Description) createTexture(tx *Texture, size [3]int) error {
	td := &TextureDesc{Name: tx.Name, Size: size, Format: tx.Format, Mips: tx.Mips, Samples: tx.Samples,
		RenderTarget: tx.RenderTarget, DepthStencil: tx.DepthStencil, Storage: tx.Storage}
	if tx.Image != nil {
		td.Data = tx.Image.Pix
	}
	h, err := d.backend.CreateTexture(td)
	if err != nil {
		return errorf(Resolution, tx.Pos, "creating texture %s: %v", tx.Name, err)
	}
	if tx.Handle != 0 {
		d.releaseViews(tx, nil)
		d.release(&tx.Handle)
	}
	tx.Handle, tx.CurSize = h, size
	if Debug {
		slog.Info("desc: created texture", "name", tx.Name, "size", size, "format", tx.Format)
	}
	return nil
}

// createView creates the view over its texture or buffer, which must
// have been created.  An auto view that no bind resolved is a
// shader resource view.
func (d *Description) createView(vw *View) error {
	vd := &ViewDesc{Name: vw.Name, Kind: vw.Kind, Mip: vw.Mip, FirstElement: vw.FirstElement, NumElements: vw.NumElements}
	if vd.Kind == Auto {
		vd.Kind = SRV
	}
	if vw.Texture != nil {
		vd.Texture, vd.Format = vw.Texture.Handle, vw.Texture.Format
	} else {
		vd.Buffer = vw.Buffer.Handle
		if vd.NumElements == 0 {
			vd.NumElements = vw.Buffer.CurCount - vw.FirstElement
		}
	}
	h, err := d.backend.CreateView(vd)
	if err != nil {
		return errorf(Resolution, vw.Pos, "creating view of %s: %v", vw.Resource(), err)
	}
	vw.Handle = h
	return nil
}

// release releases the backend object of the handle, if any.
func (d *Description) release(h *Handle) {
	if *h == 0 {
		return
	}
	d.backend.Release(*h)
	*h = 0
}

// releaseViews releases every view of the given texture or buffer,
// which are recreated by the next view pass of Reevaluate.
func (d *Description) releaseViews(tx *Texture, bf *Buffer) {
	for _, vw := range d.Views {
		if (tx != nil && vw.Texture == tx) || (bf != nil && vw.Buffer == bf) {
			d.release(&vw.Handle)
		}
	}
}

// Release releases all of the backend objects of the description.
// The description can be evaluated again after ResolveBindings.
func (d *Description) Release() {
	if d.backend == nil {
		return
	}
	for _, vw := range d.Views {
		d.release(&vw.Handle)
	}
	for _, tx := range d.Textures {
		d.release(&tx.Handle)
	}
	for _, bf := range d.Buffers {
		d.release(&bf.Handle)
	}
	for _, sm := range d.Samplers {
		d.release(&sm.Handle)
	}
	for _, cb := range d.ConstantBuffers {
		d.release(&cb.Handle)
	}
	d.ConstantBuffers = nil
	d.evaluated = false
	if Debug {
		slog.Info("desc: released description")
	}
}
