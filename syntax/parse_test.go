// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"strings"
	"testing"

	"github.com/janasaade18/minipy/syntax"
)

// parseTrees parses src and dumps each top-level statement on its own
// line using TreeString.
func parseTrees(t *testing.T, src string) string {
	t.Helper()
	prog, err := syntax.ParseProgram([]byte(src))
	if err != nil {
		t.Fatalf("parse %q failed: %v", src, err)
	}
	var lines []string
	for _, stmt := range prog.Stmts {
		lines = append(lines, syntax.TreeString(stmt))
	}
	return strings.Join(lines, "\n")
}

func TestExprParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`x = 2 + 3`,
			`(AssignStmt Name=x Value=(BinaryExpr X=2 Op=+ Y=3))`},
		{`x = y`,
			`(AssignStmt Name=x Value=y)`},
		{`x+y*z`,
			`(ExprStmt X=(BinaryExpr X=x Op=+ Y=(BinaryExpr X=y Op=* Y=z)))`},
		{`(x+y)*z`,
			`(ExprStmt X=(BinaryExpr X=(BinaryExpr X=x Op=+ Y=y) Op=* Y=z))`},
		{`a - b - c`, // left associative
			`(ExprStmt X=(BinaryExpr X=(BinaryExpr X=a Op=- Y=b) Op=- Y=c))`},
		{`a < b + 1`,
			`(ExprStmt X=(BinaryExpr X=a Op=< Y=(BinaryExpr X=b Op=+ Y=1)))`},
		{`a <= b == c`,
			`(ExprStmt X=(BinaryExpr X=(BinaryExpr X=a Op=<= Y=b) Op=== Y=c))`},
		// and and or share one flat left-associative level
		{`a or b and c`,
			`(ExprStmt X=(BinaryExpr X=(BinaryExpr X=a Op=or Y=b) Op=and Y=c))`},
		{`a and b or c`,
			`(ExprStmt X=(BinaryExpr X=(BinaryExpr X=a Op=and Y=b) Op=or Y=c))`},
		{`not -x`,
			`(ExprStmt X=(UnaryExpr Op=not X=(UnaryExpr Op=- X=x)))`},
		{`-1 * 2`,
			`(ExprStmt X=(BinaryExpr X=(UnaryExpr Op=- X=1) Op=* Y=2))`},
		{`f()`,
			`(ExprStmt X=(CallExpr Name=f))`},
		{`f(1, x)`,
			`(ExprStmt X=(CallExpr Name=f Args=(1 x)))`},
		{`f(g(1), 2)`,
			`(ExprStmt X=(CallExpr Name=f Args=((CallExpr Name=g Args=(1)) 2)))`},
		{`a = "hi"`,
			`(AssignStmt Name=a Value="hi")`},
		{`flag = True`,
			`(AssignStmt Name=flag Value=True)`},
		{`n = None`,
			`(AssignStmt Name=n Value=None)`},
		{`print x + 1`,
			`(PrintStmt X=(BinaryExpr X=x Op=+ Y=1))`},
		{`print(x)`,
			`(PrintStmt X=x)`},
	} {
		if got := parseTrees(t, test.input); got != test.want {
			t.Errorf("parse %q = %s, want %s", test.input, got, test.want)
		}
	}
}

// TestAugmentedAssignDesugar checks that x op= e produces an
// assignment whose value is BinaryOp(Identifier(x), op, e).
func TestAugmentedAssignDesugar(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`x += 1`, `(AssignStmt Name=x Value=(BinaryExpr X=x Op=+ Y=1))`},
		{`x -= y`, `(AssignStmt Name=x Value=(BinaryExpr X=x Op=- Y=y))`},
		{`x *= 2 + 1`, `(AssignStmt Name=x Value=(BinaryExpr X=x Op=* Y=(BinaryExpr X=2 Op=+ Y=1)))`},
		{`x /= 2`, `(AssignStmt Name=x Value=(BinaryExpr X=x Op=/ Y=2))`},
	} {
		if got := parseTrees(t, test.input); got != test.want {
			t.Errorf("parse %q = %s, want %s", test.input, got, test.want)
		}
	}

	// The desugared identifier is a distinct node with its own type
	// attribute, not a second reference to the target.
	prog, err := syntax.ParseProgram([]byte("x += 1"))
	if err != nil {
		t.Fatal(err)
	}
	assign := prog.Stmts[0].(*syntax.AssignStmt)
	inner := assign.Value.(*syntax.BinaryExpr).X.(*syntax.Ident)
	if inner == assign.Name {
		t.Error("desugared identifier aliases the assignment target")
	}
}

func TestStmtParseTrees(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{"if x:\n    print(1)",
			`(IfStmt Cond=x Body=(Block Stmts=((PrintStmt X=1))))`},
		{"if x:\n    print(1)\nelse:\n    print(2)",
			`(IfStmt Cond=x Body=(Block Stmts=((PrintStmt X=1))) Else=(Block Stmts=((PrintStmt X=2))))`},
		{"if a:\n    x = 1\nelif b:\n    x = 2\nelse:\n    x = 3",
			`(IfStmt Cond=a Body=(Block Stmts=((AssignStmt Name=x Value=1))) ` +
				`Else=(IfStmt Cond=b Body=(Block Stmts=((AssignStmt Name=x Value=2))) ` +
				`Else=(Block Stmts=((AssignStmt Name=x Value=3)))))`},
		{"while x > 0:\n    x = x - 1",
			`(WhileStmt Cond=(BinaryExpr X=x Op=> Y=0) Body=(Block Stmts=((AssignStmt Name=x Value=(BinaryExpr X=x Op=- Y=1)))))`},
		{"try:\n    x = 1\nexcept:\n    x = 0",
			`(TryStmt Body=(Block Stmts=((AssignStmt Name=x Value=1))) Handler=(Block Stmts=((AssignStmt Name=x Value=0))))`},
		{"try:\n    x = 1",
			`(TryStmt Body=(Block Stmts=((AssignStmt Name=x Value=1))))`},
		{"def f():\n    return",
			`(DefStmt Name=f Body=(Block Stmts=((ReturnStmt))))`},
		{"def add(a, b):\n    return a + b",
			`(DefStmt Name=add Params=(a b) Body=(Block Stmts=((ReturnStmt Result=(BinaryExpr X=a Op=+ Y=b)))))`},
		{"for c in s:\n    print(c)",
			`(ForGenericStmt Var=c X=s Body=(Block Stmts=((PrintStmt X=c))))`},
	} {
		if got := parseTrees(t, test.input); got != test.want {
			t.Errorf("parse %q = %s, want %s", test.input, got, test.want)
		}
	}
}

// TestRangeDesugar checks the three range() forms against their
// normalized start/stop/step.
func TestRangeDesugar(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{"for i in range(5):\n    print(i)",
			`(ForRangeStmt Var=i Start=0 Stop=5 Step=1 Body=(Block Stmts=((PrintStmt X=i))))`},
		{"for i in range(1, n):\n    print(i)",
			`(ForRangeStmt Var=i Start=1 Stop=n Step=1 Body=(Block Stmts=((PrintStmt X=i))))`},
		{"for i in range(1, n, 2):\n    print(i)",
			`(ForRangeStmt Var=i Start=1 Stop=n Step=2 Body=(Block Stmts=((PrintStmt X=i))))`},
		// range in expression position stays an ordinary call
		{"x = range(5)",
			`(AssignStmt Name=x Value=(CallExpr Name=range Args=(5)))`},
	} {
		if got := parseTrees(t, test.input); got != test.want {
			t.Errorf("parse %q = %s, want %s", test.input, got, test.want)
		}
	}
}

func TestFileParseTrees(t *testing.T) {
	src := `x = 1
print(x)

def f():
    return x
`
	want := `(AssignStmt Name=x Value=1)
(PrintStmt X=x)
(DefStmt Name=f Body=(Block Stmts=((ReturnStmt Result=x))))`
	if got := parseTrees(t, src); got != want {
		t.Errorf("parse = %s, want %s", got, want)
	}
}

// TestTraceObservational checks that the parse-state trace is a pure
// side channel: parsing with and without a tracer yields the same
// tree, and the trace starts in the START state.
func TestTraceObservational(t *testing.T) {
	src := "def f(a):\n    if a > 1:\n        return a\n    return 0\nr = f(3)"
	tokens, err := syntax.Tokenize([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	plain, err := syntax.Parse(tokens, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr := &syntax.Tracer{}
	traced, err := syntax.Parse(tokens, tr)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := syntax.TreeString(traced), syntax.TreeString(plain); got != want {
		t.Errorf("tracing changed the tree:\ngot  %s\nwant %s", got, want)
	}
	if len(tr.Events) == 0 {
		t.Fatal("tracer recorded no events")
	}
	if tr.Events[0].State != syntax.StateStart {
		t.Errorf("first state = %s, want START", tr.Events[0].State)
	}
	if len(tr.Transitions) != len(tr.Events) {
		t.Errorf("recorded %d transitions for %d events", len(tr.Transitions), len(tr.Events))
	}

	seen := map[syntax.ParserState]bool{}
	for _, ev := range tr.Events {
		seen[ev.State] = true
	}
	for _, want := range []syntax.ParserState{
		syntax.StateInFunctionDef,
		syntax.StateInFunctionParams,
		syntax.StateInIfCondition,
		syntax.StateInAssignment,
		syntax.StateInFunctionCall,
		syntax.StateEndStatement,
	} {
		if !seen[want] {
			t.Errorf("state %s never entered", want)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	// An ILLEGAL token surfaces as a parse error citing its line.
	_, err := syntax.ParseProgram([]byte("x = 1\ny = @"))
	if err == nil {
		t.Fatal("parse succeeded, want error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not cite line 2", err)
	}
}
