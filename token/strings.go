// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// StringID is the index of an interned string in a [Strings] table.
// It is valid as long as the table that produced it.
type StringID int32

// NoString is the StringID of a token without string payload.
const NoString StringID = -1

// Strings is an interning string table: each distinct identifier or
// string literal text is stored once, and tokens refer to it by index.
// The zero value is ready to use.
type Strings struct {
	strs  []string
	index map[string]StringID
}

// InternBytes returns the id of the given text, adding it if new.
func (st *Strings) InternBytes(b []byte) StringID {
	if id, ok := st.index[string(b)]; ok {
		return id
	}
	return st.add(string(b))
}

// Intern returns the id of the given text, adding it if new.
func (st *Strings) Intern(s string) StringID {
	if id, ok := st.index[s]; ok {
		return id
	}
	return st.add(s)
}

func (st *Strings) add(s string) StringID {
	if st.index == nil {
		st.index = make(map[string]StringID)
	}
	id := StringID(len(st.strs))
	st.strs = append(st.strs, s)
	st.index[s] = id
	return id
}

// Lookup returns the id of the given text if it has been interned.
func (st *Strings) Lookup(s string) (StringID, bool) {
	id, ok := st.index[s]
	return id, ok
}

// Get returns the text for given id, or "" for [NoString]
// or an out of range id.
func (st *Strings) Get(id StringID) string {
	if id < 0 || int(id) >= len(st.strs) {
		return ""
	}
	return st.strs[id]
}

// Len returns the number of distinct strings in the table.
func (st *Strings) Len() int {
	return len(st.strs)
}
