// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"sort"

	"github.com/janasaade18/minipy/syntax"
)

// A Symbol is one named binding: a variable, a parameter, or a
// function. ReturnType is meaningful only for functions; it stays
// UndefinedType until the first return statement fixes it.
type Symbol struct {
	Name       string
	Type       syntax.DataType
	ReturnType syntax.DataType
}

// A SymbolTable is an ordered stack of scope frames, innermost last.
// Frame 0 is the global scope and holds the built-ins.
type SymbolTable struct {
	frames []map[string]*Symbol
}

// NewSymbolTable returns a table with a single empty global frame.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{frames: []map[string]*Symbol{{}}}
}

// Push opens a new innermost scope frame.
func (st *SymbolTable) Push() {
	st.frames = append(st.frames, map[string]*Symbol{})
}

// Pop discards the innermost scope frame.
func (st *SymbolTable) Pop() {
	st.frames = st.frames[:len(st.frames)-1]
}

// Define binds name in the innermost frame. It reports false if the
// name is already bound in that frame.
func (st *SymbolTable) Define(name string, typ syntax.DataType) bool {
	frame := st.frames[len(st.frames)-1]
	if _, ok := frame[name]; ok {
		return false
	}
	frame[name] = &Symbol{Name: name, Type: typ}
	return true
}

// Lookup searches the frames from innermost to outermost and returns
// the first binding of name, or nil.
func (st *SymbolTable) Lookup(name string) *Symbol {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if sym, ok := st.frames[i][name]; ok {
			return sym
		}
	}
	return nil
}

// Names returns every name reachable from the innermost scope,
// sorted so that callers behave identically across runs.
func (st *SymbolTable) Names() []string {
	var names []string
	for _, frame := range st.frames {
		for name := range frame {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
