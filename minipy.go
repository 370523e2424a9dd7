// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minipy translates a small indentation-structured scripting
// language into C++.
//
// The pipeline is a pure function from source text to target text,
// composed of four stages run in strict order: lexing, parsing,
// semantic analysis, and code emission. Repeating a call on the same
// input yields byte-identical outputs.
package minipy

import (
	"fmt"

	"github.com/janasaade18/minipy/cppgen"
	"github.com/janasaade18/minipy/resolve"
	"github.com/janasaade18/minipy/syntax"
)

// A Stage identifies the pipeline stage an error originated in.
type Stage uint8

const (
	StageLex Stage = iota
	StageParse
	StageSemantic
	StageTranslate
)

var stageNames = [...]string{
	StageLex:       "lex",
	StageParse:     "parse",
	StageSemantic:  "semantic",
	StageTranslate: "translate",
}

func (s Stage) String() string { return stageNames[s] }

// An Error is a structured pipeline diagnostic. Its message always
// contains the substring "line <N>" so surrounding tools can extract
// the position by simple pattern match.
type Error struct {
	Stage Stage
	Line  int32
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: line %d: %s", e.Stage, e.Line, e.Msg)
}

// A Result holds every artifact of a translation. On failure the
// artifacts produced before the failing stage are still populated,
// for display alongside the diagnostic.
type Result struct {
	Tokens  []syntax.Token
	AST     *syntax.Program
	Symbols *resolve.SymbolTable
	Code    string
}

// Translate runs the full pipeline over source text.
// On failure it returns the partial Result and a *Error.
func Translate(src []byte) (*Result, error) {
	res := &Result{}

	tokens, err := syntax.Tokenize(src)
	res.Tokens = tokens
	if err != nil {
		return res, stageError(StageLex, err)
	}

	prog, err := syntax.Parse(tokens, nil)
	res.AST = prog
	if err != nil {
		return res, stageError(StageParse, err)
	}

	symbols, err := resolve.Program(prog)
	res.Symbols = symbols
	if err != nil {
		return res, stageError(StageSemantic, err)
	}

	code, err := cppgen.Program(prog, symbols)
	if err != nil {
		return res, stageError(StageTranslate, err)
	}
	res.Code = code
	return res, nil
}

// ParseTrace lexes and parses source text with tracing enabled and
// returns the parser's state walk. The trace is observational; it is
// identical across repeated calls on the same input.
func ParseTrace(src []byte) ([]syntax.StateEvent, error) {
	tokens, err := syntax.Tokenize(src)
	if err != nil {
		return nil, stageError(StageLex, err)
	}
	tr := &syntax.Tracer{}
	if _, err := syntax.Parse(tokens, tr); err != nil {
		return tr.Events, stageError(StageParse, err)
	}
	return tr.Events, nil
}

func stageError(stage Stage, err error) *Error {
	if e, ok := err.(syntax.Error); ok {
		return &Error{Stage: stage, Line: e.Line, Msg: e.Msg}
	}
	return &Error{Stage: stage, Line: 1, Msg: err.Error()}
}
