// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"cogentcore.org/rdl/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kinds {
	ks := make([]token.Kinds, len(toks))
	for i, tk := range toks {
		ks[i] = tk.Kind
	}
	return ks
}

func TestTokenizeDocument(t *testing.T) {
	src := `Texture Scene { // the scene
	size = DisplaySize(); /* a
	block */ format = "rgba";
}`
	strs := &token.Strings{}
	toks, err := Tokenize([]byte(src), Document, strs)
	require.NoError(t, err)
	assert.Equal(t, []token.Kinds{
		token.Ident, token.Ident, token.LBrace,
		token.Ident, token.Assign, token.Ident, token.LParen, token.RParen, token.Semicolon,
		token.Ident, token.Assign, token.String, token.Semicolon,
		token.RBrace, token.EOF,
	}, kinds(toks))

	assert.Equal(t, "Texture", strs.Get(toks[0].Str))
	assert.Equal(t, "rgba", strs.Get(toks[11].Str))
	assert.Equal(t, 2, toks[9].Pos.Ln)
	assert.Equal(t, 10, toks[9].Pos.Ch)
}

func TestInterning(t *testing.T) {
	strs := &token.Strings{}
	toks, err := Tokenize([]byte(`a b a "a" b`), Document, strs)
	require.NoError(t, err)
	assert.Equal(t, toks[0].Str, toks[2].Str)
	assert.Equal(t, toks[0].Str, toks[3].Str)
	assert.Equal(t, toks[1].Str, toks[4].Str)
	assert.Equal(t, 2, strs.Len())
}

func TestNumbers(t *testing.T) {
	toks, err := Tokenize([]byte(`42 3.25 0.5 7.x 12345678901`), Document, nil)
	require.NoError(t, err)
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].Int)
	assert.Equal(t, token.Float, toks[1].Kind)
	assert.InDelta(t, 3.25, toks[1].Float, 1e-12)
	assert.InDelta(t, 0.5, toks[2].Float, 1e-12)
	// a dot not followed by a digit is a separate token
	assert.Equal(t, token.Int, toks[3].Kind)
	assert.Equal(t, token.Dot, toks[4].Kind)
	assert.Equal(t, token.Ident, toks[5].Kind)
	assert.Equal(t, int64(12345678901), toks[6].Int)

	_, err = Tokenize([]byte(`99999999999999999999`), Document, nil)
	assert.ErrorContains(t, err, "overflows")
}

func TestPunctuation(t *testing.T) {
	toks, err := Tokenize([]byte(`( ) { } [ ] < > , = + - : ; @ . / * # %`), Document, nil)
	require.NoError(t, err)
	require.Len(t, toks, 21)
	for i, tk := range toks[:20] {
		assert.True(t, tk.Kind.IsPunct(), "token %d", i)
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
		off int
	}{
		{"a /* open", "unterminated block comment", 2},
		{"a = 1;\n/* open\n * still open", "unterminated block comment", 7},
		{`x = "open`, "unterminated string", 4},
		{"a = $b", "unexpected character", 4},
		{"a = \x80", "unexpected character", 4},
	}
	for _, test := range tests {
		_, err := Tokenize([]byte(test.src), Document, nil)
		var terr *token.Error
		require.ErrorAs(t, err, &terr, test.src)
		assert.Contains(t, terr.Msg, test.msg)
		assert.Equal(t, test.off, terr.Pos.Off, test.src)
	}
}

func TestStructScan(t *testing.T) {
	src := `// some shader
struct Particle {
	pos: vec3<f32>,
	vel: vec3f,
	life: f32,
}
@compute @workgroup_size(64) fn main() { let a = b & c; }`
	strs := &token.Strings{}
	toks, err := Tokenize([]byte(src), StructScan, strs)
	require.NoError(t, err)
	assert.Equal(t, token.Struct, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, "Particle", strs.Get(toks[1].Str))
	assert.Equal(t, token.TypeName, toks[5].Kind)
	assert.Equal(t, "vec3", strs.Get(toks[5].Str))

	// the same source is an error as a document
	_, err = Tokenize([]byte(src), Document, nil)
	assert.Error(t, err)
}

func TestTypeNames(t *testing.T) {
	for _, nm := range []string{"f32", "vec4f", "mat4x4f", "float4", "float4x4", "uint2"} {
		assert.True(t, IsTypeName(nm), nm)
	}
	assert.False(t, IsTypeName("Particle"))
}
