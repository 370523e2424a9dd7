// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A ParserState names the grammar rule the parser is working in.
// States exist only for observation: a front end may animate them,
// but they never influence a parse decision.
type ParserState uint8

const (
	StateStart ParserState = iota
	StateExpectStatement
	StateInFunctionDef
	StateInFunctionParams
	StateInFunctionBody
	StateInIfCondition
	StateInIfBody
	StateInAssignment
	StateInExpression
	StateInTerm
	StateInFactor
	StateInFunctionCall
	StateInTryBlock
	StateInExceptBlock
	StateExpectOperand
	StateExpectOperator
	StateEndStatement
)

var stateNames = [...]string{
	StateStart:            "START",
	StateExpectStatement:  "EXPECT_STATEMENT",
	StateInFunctionDef:    "IN_FUNCTION_DEF",
	StateInFunctionParams: "IN_FUNCTION_PARAMS",
	StateInFunctionBody:   "IN_FUNCTION_BODY",
	StateInIfCondition:    "IN_IF_CONDITION",
	StateInIfBody:         "IN_IF_BODY",
	StateInAssignment:     "IN_ASSIGNMENT",
	StateInExpression:     "IN_EXPRESSION",
	StateInTerm:           "IN_TERM",
	StateInFactor:         "IN_FACTOR",
	StateInFunctionCall:   "IN_FUNCTION_CALL",
	StateInTryBlock:       "IN_TRY_BLOCK",
	StateInExceptBlock:    "IN_EXCEPT_BLOCK",
	StateExpectOperand:    "EXPECT_OPERAND",
	StateExpectOperator:   "EXPECT_OPERATOR",
	StateEndStatement:     "END_STATEMENT",
}

func (s ParserState) String() string { return stateNames[s] }

// A StateEvent records the parser entering a state while looking at a
// particular token.
type StateEvent struct {
	State ParserState
	Tok   Token
}

// A Transition records one edge of the parser's state walk.
type Transition struct {
	From, To ParserState
	Kind     Kind
}

// A Tracer accumulates the parser's state walk as an append-only log.
// A nil *Tracer discards all events.
type Tracer struct {
	Events      []StateEvent
	Transitions []Transition
	cur         ParserState
}

func (t *Tracer) enter(s ParserState, tok Token) {
	if t == nil {
		return
	}
	t.Events = append(t.Events, StateEvent{s, tok})
	t.Transitions = append(t.Transitions, Transition{t.cur, s, tok.Kind})
	t.cur = s
}
