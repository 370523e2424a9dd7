// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cppgen emits a complete C++ translation unit from an
// analyzed syntax tree. Declaration forms are chosen from the types
// the analyzer recorded on the nodes and in the symbol table.
package cppgen

import (
	"fmt"
	"strings"

	"github.com/janasaade18/minipy/resolve"
	"github.com/janasaade18/minipy/syntax"
)

// preamble is the fixed head of every generated program. safe_divide
// turns a zero denominator into a catchable runtime_error instead of
// undefined behavior.
const preamble = `#include <iostream>
#include <string>
#include <vector>
#include <cmath>
#include <stdexcept>
using namespace std;

// Helper: safe division so a zero denominator can be caught
template <typename T, typename U>
double safe_divide(T a, U b) {
    if (b == 0) throw runtime_error("Division by zero error");
    return (double)a / (double)b;
}

`

// Program translates an analyzed program into C++ source text:
// the preamble, every function definition in source order, then a
// main() holding the remaining top-level statements.
func Program(prog *syntax.Program, symbols *resolve.SymbolTable) (string, error) {
	g := &generator{symbols: symbols, declared: map[string]bool{}}

	var functions, body strings.Builder
	for _, stmt := range prog.Stmts {
		text, err := g.stmt(stmt)
		if err != nil {
			return "", err
		}
		if _, ok := stmt.(*syntax.DefStmt); ok {
			functions.WriteString(text)
			functions.WriteString("\n")
			continue
		}
		// A block statement ends in '}' and takes no semicolon.
		if !strings.HasSuffix(text, "}") {
			text += ";"
		}
		body.WriteString("    " + text + "\n")
	}

	var out strings.Builder
	out.WriteString(preamble)
	out.WriteString(functions.String())
	out.WriteString("int main() {\n")
	out.WriteString(body.String())
	out.WriteString("\n    return 0;\n}\n")
	return out.String(), nil
}

type generator struct {
	symbols *resolve.SymbolTable

	// declared tracks names already declared in the current C++
	// scope, so later assignments re-assign instead of re-declaring.
	declared map[string]bool
}

// cppTypes maps inferred types to their C++ declaration forms.
var cppTypes = map[syntax.DataType]string{
	syntax.IntegerType: "int",
	syntax.FloatType:   "double",
	syntax.StringType:  "string",
	syntax.BooleanType: "bool",
	syntax.NoneType:    "nullptr_t",
}

func cppType(t syntax.DataType) string {
	if s, ok := cppTypes[t]; ok {
		return s
	}
	return "auto"
}

// cppOps maps operator kinds to C++ spellings. SLASH is absent: every
// division goes through safe_divide.
var cppOps = map[syntax.Kind]string{
	syntax.EQEQ:    "==",
	syntax.PLUS:    "+",
	syntax.MINUS:   "-",
	syntax.STAR:    "*",
	syntax.GREATER: ">",
	syntax.GEQ:     ">=",
	syntax.LESS:    "<",
	syntax.LEQ:     "<=",
	syntax.OR:      "||",
	syntax.AND:     "&&",
}

func (g *generator) stmt(s syntax.Stmt) (string, error) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		return g.assign(s)
	case *syntax.PrintStmt:
		x, err := g.expr(s.X)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("cout << %s << endl", x), nil
	case *syntax.ReturnStmt:
		if s.Result == nil {
			return "return", nil
		}
		x, err := g.expr(s.Result)
		if err != nil {
			return "", err
		}
		return "return " + x, nil
	case *syntax.ExprStmt:
		return g.expr(s.X)
	case *syntax.IfStmt:
		return g.ifStmt(s)
	case *syntax.WhileStmt:
		cond, err := g.expr(s.Cond)
		if err != nil {
			return "", err
		}
		body, err := g.blockBody(s.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("while (%s) {\n%s    }", cond, body), nil
	case *syntax.ForRangeStmt:
		return g.forRange(s)
	case *syntax.ForGenericStmt:
		return g.forGeneric(s)
	case *syntax.TryStmt:
		return g.tryStmt(s)
	case *syntax.DefStmt:
		return g.def(s)
	}
	return "", syntax.Error{Line: s.Line(), Msg: fmt.Sprintf("cannot translate %T", s)}
}

// assign emits a declaration the first time a name is assigned in the
// current C++ scope, and a plain assignment afterwards.
func (g *generator) assign(s *syntax.AssignStmt) (string, error) {
	t := s.Value.Type()
	if t == syntax.UndefinedType {
		return "", syntax.Error{Line: s.Line(),
			Msg: fmt.Sprintf("internal: undefined type reached translation for '%s'", s.Name.Name)}
	}
	value, err := g.expr(s.Value)
	if err != nil {
		return "", err
	}
	if !g.declared[s.Name.Name] {
		g.declared[s.Name.Name] = true
		return fmt.Sprintf("%s %s = %s", cppType(t), s.Name.Name, value), nil
	}
	return fmt.Sprintf("%s = %s", s.Name.Name, value), nil
}

func (g *generator) ifStmt(s *syntax.IfStmt) (string, error) {
	cond, err := g.expr(s.Cond)
	if err != nil {
		return "", err
	}
	body, err := g.blockBody(s.Body)
	if err != nil {
		return "", err
	}
	out := fmt.Sprintf("if (%s) {\n%s    }", cond, body)

	switch e := s.Else.(type) {
	case *syntax.IfStmt:
		nested, err := g.ifStmt(e)
		if err != nil {
			return "", err
		}
		out += " else " + nested
	case *syntax.Block:
		body, err := g.blockBody(e)
		if err != nil {
			return "", err
		}
		out += " else {\n" + body + "    }"
	}
	return out, nil
}

// forRange emits a counted loop. A step whose source text is exactly
// "1" becomes the ++ form.
func (g *generator) forRange(s *syntax.ForRangeStmt) (string, error) {
	start, err := g.expr(s.Start)
	if err != nil {
		return "", err
	}
	stop, err := g.expr(s.Stop)
	if err != nil {
		return "", err
	}
	step, err := g.expr(s.Step)
	if err != nil {
		return "", err
	}
	iter := s.Var.Name
	stepCode := iter + " += " + step
	if step == "1" {
		stepCode = iter + "++"
	}
	body, err := g.blockBody(s.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (int %s = %s; %s < %s; %s) {\n%s    }",
		iter, start, iter, stop, stepCode, body), nil
}

// forGeneric emits a range-based loop. A string literal iterable is
// wrapped in string(...) so iteration is over a string object rather
// than a char array.
func (g *generator) forGeneric(s *syntax.ForGenericStmt) (string, error) {
	iterable, err := g.expr(s.X)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(iterable, `"`) {
		iterable = "string(" + iterable + ")"
	}
	body, err := g.blockBody(s.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (auto %s : %s) {\n%s    }", s.Var.Name, iterable, body), nil
}

func (g *generator) tryStmt(s *syntax.TryStmt) (string, error) {
	body, err := g.blockBody(s.Body)
	if err != nil {
		return "", err
	}
	handler := "        cout << \"An error occurred.\" << endl;\n"
	if s.Handler != nil {
		if handler, err = g.blockBody(s.Handler); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("try {\n%s    } catch (...) {\n%s    }", body, handler), nil
}

// def emits a function definition. The return type comes from the
// symbol table; a function whose return type was never fixed is void.
// Parameters are int, matching the analyzer's default.
func (g *generator) def(s *syntax.DefStmt) (string, error) {
	returnType := "void"
	if sym := g.symbols.Lookup(s.Name.Name); sym != nil && sym.ReturnType != syntax.UndefinedType {
		returnType = cppType(sym.ReturnType)
	}

	saved := g.declared
	g.declared = map[string]bool{}
	defer func() { g.declared = saved }()

	var params []string
	for _, param := range s.Params {
		params = append(params, "int "+param.Name)
		g.declared[param.Name] = true
	}

	body, err := g.blockBody(s.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s(%s) {\n%s}\n",
		returnType, s.Name.Name, strings.Join(params, ", "), body), nil
}

// blockBody renders a block's statements, one indented line each,
// with the semicolon-unless-brace rule applied.
func (g *generator) blockBody(b *syntax.Block) (string, error) {
	var out strings.Builder
	for _, stmt := range b.Stmts {
		text, err := g.stmt(stmt)
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(text, "}") {
			out.WriteString("        " + text + "\n")
		} else {
			out.WriteString("        " + text + ";\n")
		}
	}
	return out.String(), nil
}

func (g *generator) expr(e syntax.Expr) (string, error) {
	switch e := e.(type) {
	case *syntax.NumberLit:
		return e.Raw, nil
	case *syntax.StringLit:
		return quote(e.Value), nil
	case *syntax.BoolLit:
		if e.Value {
			return "true", nil
		}
		return "false", nil
	case *syntax.NoneLit:
		return "nullptr", nil
	case *syntax.Ident:
		return e.Name, nil
	case *syntax.UnaryExpr:
		x, err := g.expr(e.X)
		if err != nil {
			return "", err
		}
		op := "-"
		if e.Op == syntax.NOT {
			op = "!"
		}
		return "(" + op + x + ")", nil
	case *syntax.BinaryExpr:
		return g.binary(e)
	case *syntax.CallExpr:
		return g.call(e)
	}
	return "", syntax.Error{Line: e.Line(), Msg: fmt.Sprintf("cannot translate expression %T", e)}
}

func (g *generator) binary(e *syntax.BinaryExpr) (string, error) {
	left, err := g.expr(e.X)
	if err != nil {
		return "", err
	}
	right, err := g.expr(e.Y)
	if err != nil {
		return "", err
	}
	if e.Op == syntax.SLASH {
		return fmt.Sprintf("safe_divide(%s, %s)", left, right), nil
	}
	op, ok := cppOps[e.Op]
	if !ok {
		return "", syntax.Error{Line: e.Line(), Msg: fmt.Sprintf("cannot translate operator %s", e.Op)}
	}
	return fmt.Sprintf("(%s %s %s)", left, op, right), nil
}

// call emits a function call. The int, float, and str built-ins become
// casts and conversions; with no argument they become the type's zero
// value.
func (g *generator) call(e *syntax.CallExpr) (string, error) {
	var args []string
	for _, arg := range e.Args {
		text, err := g.expr(arg)
		if err != nil {
			return "", err
		}
		args = append(args, text)
	}

	switch e.Name.Name {
	case "int":
		if len(args) == 0 {
			return "0", nil
		}
		return "(int)(" + args[0] + ")", nil
	case "float":
		if len(args) == 0 {
			return "0.0", nil
		}
		return "(double)(" + args[0] + ")", nil
	case "str":
		if len(args) == 0 {
			return `""`, nil
		}
		return "to_string(" + args[0] + ")", nil
	}
	return fmt.Sprintf("%s(%s)", e.Name.Name, strings.Join(args, ", ")), nil
}

// quote re-adds quotes to a resolved string value, escaping the
// characters that would break the C++ literal.
func quote(s string) string {
	var out strings.Builder
	out.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			out.WriteByte('\\')
			out.WriteByte(c)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteByte(c)
		}
	}
	out.WriteByte('"')
	return out.String()
}
