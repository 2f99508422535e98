// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"io/fs"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/rdl/expr"
)

// LoadImages opens the image files of the textures that have one,
// from fsys, setting their Image and making their Size the image size.
// It must be called before the first [Description.Reevaluate].
func (d *Description) LoadImages(fsys fs.FS) error {
	for _, tx := range d.Textures {
		if tx.File == "" {
			continue
		}
		img, _, err := imagex.OpenFS(fsys, tx.File)
		if err != nil {
			return &Error{Kind: Resolution, Pos: tx.Pos, Path: tx.File, Msg: err.Error()}
		}
		tx.Image = imagex.AsRGBA(img)
		sz := tx.Image.Rect.Size()
		tx.Size = expr.NewLiteral(tx.Pos, expr.IntVec(int32(sz.X), int32(sz.Y)))
	}
	return nil
}
