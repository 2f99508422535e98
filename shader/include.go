// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/stringsx"
)

// IncludeFS processes #include "file" lines in the given shader code,
// replacing each with the contents of the file, which is looked up in
// fsys first as given and then relative to dir.  Included files are
// processed recursively, and each file is included at most once.
func IncludeFS(fsys fs.FS, dir, code string) string {
	return includeFS(fsys, dir, code, map[string]bool{})
}

func includeFS(fsys fs.FS, dir, code string, seen map[string]bool) string {
	fl := stringsx.SplitLines(code)
	for li := len(fl) - 1; li >= 0; li-- {
		ln := fl[li]
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("shader.IncludeFS: malformed #include: no final quote", "line", li+1)
			continue
		}
		fname := fn[:qi]
		fl[li] = "// " + ln
		if seen[fname] {
			continue
		}
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			b, err = fs.ReadFile(fsys, path.Join(dir, fname))
			if err != nil {
				slog.Error("shader.IncludeFS: could not find include", "file", fname, "dir", dir)
				continue
			}
		}
		seen[fname] = true
		inc := includeFS(fsys, dir, string(b), seen)
		fl = slices.Insert(fl, li+1, stringsx.SplitLines(inc)...)
	}
	return strings.Join(fl, "\n")
}
