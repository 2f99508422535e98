// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memgpu provides a [desc.Backend] that keeps objects in memory
// and records every call, for tests and for checking descriptions
// without a GPU.
package memgpu

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/rdl/desc"
)

// Object is one object created by a [Backend].
type Object struct {
	Handle desc.Handle

	// Kind is buffer, texture, view, sampler or constants.
	Kind string

	Name string

	Buffer  *desc.BufferDesc
	Texture *desc.TextureDesc
	View    *desc.ViewDesc
	Sampler *desc.SamplerDesc

	// Data is the contents of buffers and constant buffers, and the
	// initial contents of textures.
	Data []byte

	// Writes counts the writes to a constant buffer.
	Writes int
}

// Backend is an in-memory [desc.Backend].  It is safe for concurrent use.
type Backend struct {
	// Objects are the live objects by handle, in creation order.
	Objects keylist.List[desc.Handle, *Object]

	// Log is every call made, as "create texture Name", "release 3" etc.
	Log []string

	// Fail makes the creation of objects with this name fail.
	Fail string

	mu   sync.Mutex
	next desc.Handle
}

// New returns a new backend.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) add(ob *Object) (desc.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Log = append(b.Log, fmt.Sprintf("create %s %s", ob.Kind, ob.Name))
	if b.Fail != "" && ob.Name == b.Fail {
		return 0, fmt.Errorf("memgpu: creation of %s %s failed", ob.Kind, ob.Name)
	}
	b.next++
	ob.Handle = b.next
	b.Objects.Add(ob.Handle, ob)
	return ob.Handle, nil
}

func (b *Backend) CreateBuffer(bd *desc.BufferDesc) (desc.Handle, error) {
	data := make([]byte, bd.Size())
	copy(data, bd.Data)
	return b.add(&Object{Kind: "buffer", Name: bd.Name, Buffer: bd, Data: data})
}

func (b *Backend) CreateTexture(td *desc.TextureDesc) (desc.Handle, error) {
	var data []byte
	if td.Data != nil {
		data = append(data, td.Data...)
	}
	return b.add(&Object{Kind: "texture", Name: td.Name, Texture: td, Data: data})
}

func (b *Backend) CreateView(vd *desc.ViewDesc) (desc.Handle, error) {
	if vd.Texture == 0 && vd.Buffer == 0 {
		return 0, fmt.Errorf("memgpu: view %s has no resource", vd.Name)
	}
	return b.add(&Object{Kind: "view", Name: vd.Name, View: vd})
}

func (b *Backend) CreateSampler(sd *desc.SamplerDesc) (desc.Handle, error) {
	return b.add(&Object{Kind: "sampler", Name: sd.Name, Sampler: sd})
}

func (b *Backend) CreateConstantBuffer(name string, size int) (desc.Handle, error) {
	return b.add(&Object{Kind: "constants", Name: name, Data: make([]byte, size)})
}

func (b *Backend) WriteConstantBuffer(h desc.Handle, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	ob, ok := b.Objects.AtTry(h)
	if !ok {
		return fmt.Errorf("memgpu: write to released constant buffer %d", h)
	}
	if len(data) != len(ob.Data) {
		return fmt.Errorf("memgpu: constant buffer %s is %d bytes, got %d", ob.Name, len(ob.Data), len(data))
	}
	copy(ob.Data, data)
	ob.Writes++
	b.Log = append(b.Log, fmt.Sprintf("write %s", ob.Name))
	return nil
}

func (b *Backend) Release(h desc.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Log = append(b.Log, fmt.Sprintf("release %d", h))
	b.Objects.DeleteByKey(h)
}

// Object returns the live object of given handle, or nil.
func (b *Backend) Object(h desc.Handle) *Object {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Objects.At(h)
}

// Live returns the number of live objects.
func (b *Backend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Objects.Len()
}

// ResetLog clears the call log.
func (b *Backend) ResetLog() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Log = nil
}
