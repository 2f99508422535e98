// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "fmt"

// typeNames are the shader type keywords recognized in [StructScan] mode,
// covering both WGSL and HLSL spellings.
var typeNames = map[string]struct{}{}

func init() {
	for _, nm := range []string{"f32", "i32", "u32", "f16", "bool", "array", "atomic",
		"float", "int", "uint", "half", "dword", "matrix"} {
		typeNames[nm] = struct{}{}
	}
	for n := 2; n <= 4; n++ {
		typeNames[fmt.Sprintf("vec%d", n)] = struct{}{}
		for _, s := range []string{"f", "i", "u", "h"} {
			typeNames[fmt.Sprintf("vec%d%s", n, s)] = struct{}{}
		}
		for _, s := range []string{"float", "int", "uint", "half", "bool"} {
			typeNames[fmt.Sprintf("%s%d", s, n)] = struct{}{}
		}
		for m := 2; m <= 4; m++ {
			typeNames[fmt.Sprintf("mat%dx%d", n, m)] = struct{}{}
			typeNames[fmt.Sprintf("mat%dx%df", n, m)] = struct{}{}
			typeNames[fmt.Sprintf("mat%dx%dh", n, m)] = struct{}{}
			typeNames[fmt.Sprintf("float%dx%d", n, m)] = struct{}{}
		}
	}
}

// IsTypeName returns true if the given word is a shader type keyword.
func IsTypeName(word string) bool {
	_, ok := typeNames[word]
	return ok
}

// TypeNames returns all of the shader type keywords, in no particular order.
func TypeNames() []string {
	nms := make([]string, 0, len(typeNames))
	for nm := range typeNames {
		nms = append(nms, nm)
	}
	return nms
}
