// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minipy_test

import (
	"strings"
	"testing"

	"github.com/janasaade18/minipy"
	"github.com/janasaade18/minipy/syntax"
)

func TestIntegerAssignmentArithmetic(t *testing.T) {
	res, err := minipy.Translate([]byte("x = 2 + 3\ny = x * 4"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"int x = (2 + 3);", "int y = (x * 4);"} {
		if !strings.Contains(res.Code, want) {
			t.Errorf("code lacks %q:\n%s", want, res.Code)
		}
	}
	for _, stmt := range res.AST.Stmts {
		assign := stmt.(*syntax.AssignStmt)
		if got := assign.Value.Type(); got != syntax.IntegerType {
			t.Errorf("%s expression typed %s, want integer", assign.Name.Name, got)
		}
	}
}

func TestFloatPromotion(t *testing.T) {
	res, err := minipy.Translate([]byte("total = 0.0\ntotal = total + 5"))
	if err != nil {
		t.Fatal(err)
	}
	if sym := res.Symbols.Lookup("total"); sym.Type != syntax.FloatType {
		t.Errorf("total bound as %s, want float", sym.Type)
	}
	rhs := res.AST.Stmts[1].(*syntax.AssignStmt).Value
	if rhs.Type() != syntax.FloatType {
		t.Errorf("total + 5 typed %s, want float", rhs.Type())
	}
}

func TestStringConcat(t *testing.T) {
	res, err := minipy.Translate([]byte(`a = "hi"` + "\n" + `b = a + "!"`))
	if err != nil {
		t.Fatal(err)
	}
	for _, stmt := range res.AST.Stmts {
		if got := stmt.(*syntax.AssignStmt).Value.Type(); got != syntax.StringType {
			t.Errorf("expression typed %s, want string", got)
		}
	}
	if !strings.Contains(res.Code, `string a = "hi";`) {
		t.Errorf("code lacks string declaration:\n%s", res.Code)
	}
}

func TestStringArithmeticError(t *testing.T) {
	res, err := minipy.Translate([]byte(`s = "x"` + "\n" + `n = s - 1`))
	if err == nil {
		t.Fatal("translation succeeded, want semantic error")
	}
	e, ok := err.(*minipy.Error)
	if !ok {
		t.Fatalf("error is %T, want *minipy.Error", err)
	}
	if e.Stage != minipy.StageSemantic {
		t.Errorf("stage = %s, want semantic", e.Stage)
	}
	if !strings.Contains(e.Error(), "arithmetic on strings") {
		t.Errorf("error %q does not cite string arithmetic", e)
	}
	if !strings.Contains(e.Error(), "line 2") {
		t.Errorf("error %q does not cite line 2", e)
	}
	// A failed translation produces no target code, but the earlier
	// artifacts remain for display.
	if res.Code != "" {
		t.Error("failed translation produced target code")
	}
	if len(res.Tokens) == 0 || res.AST == nil {
		t.Error("partial artifacts missing from failed translation")
	}
}

func TestFunctionWithRangeLoop(t *testing.T) {
	src := `def sum_to(n):
    total = 0
    for i in range(1, n, 1):
        total = total + i
    return total
r = sum_to(10)`
	res, err := minipy.Translate([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	sym := res.Symbols.Lookup("sum_to")
	if sym == nil || sym.Type != syntax.FunctionType || sym.ReturnType != syntax.IntegerType {
		t.Errorf("sum_to = %+v, want integer-returning function", sym)
	}
	if r := res.Symbols.Lookup("r"); r.Type != syntax.IntegerType {
		t.Errorf("r bound as %s, want integer", r.Type)
	}
	if res.Symbols.Lookup("i") != nil {
		t.Error("loop iterator escaped into the global scope")
	}
	for _, want := range []string{
		"int sum_to(int n) {",
		"for (int i = 1; i < n; i++) {",
		"int r = sum_to(10);",
	} {
		if !strings.Contains(res.Code, want) {
			t.Errorf("code lacks %q:\n%s", want, res.Code)
		}
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, err := minipy.Translate([]byte("print(z)"))
	if err == nil {
		t.Fatal("translation succeeded, want semantic error")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not contain line 1", err)
	}
	if !strings.Contains(err.Error(), "variable 'z'") {
		t.Errorf("error %q does not name z", err)
	}
}

func TestLexErrorStage(t *testing.T) {
	_, err := minipy.Translate([]byte("if x:\n    y = 1\n  z = 2"))
	e, ok := err.(*minipy.Error)
	if !ok {
		t.Fatalf("error is %T, want *minipy.Error", err)
	}
	if e.Stage != minipy.StageLex {
		t.Errorf("stage = %s, want lex", e.Stage)
	}
	if e.Line != 3 {
		t.Errorf("line = %d, want 3", e.Line)
	}
}

// TestDeterminism checks the ordering guarantee: repeated calls on the
// same input yield byte-identical outputs.
func TestDeterminism(t *testing.T) {
	src := []byte(`def fib(n):
    if n <= 1:
        return n
    return fib(n - 1) + fib(n - 2)
print(fib(10))`)
	a, err := minipy.Translate(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := minipy.Translate(src)
	if err != nil {
		t.Fatal(err)
	}
	if a.Code != b.Code {
		t.Error("repeated translation differs")
	}
}

func TestParseTrace(t *testing.T) {
	events, err := minipy.ParseTrace([]byte("x = 1 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) == 0 {
		t.Fatal("no trace events")
	}
	if events[0].State != syntax.StateStart {
		t.Errorf("first state = %s, want START", events[0].State)
	}

	// The trace is itself deterministic.
	again, err := minipy.ParseTrace([]byte("x = 1 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(events) {
		t.Errorf("trace lengths differ: %d vs %d", len(events), len(again))
	}
}
