// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve performs semantic analysis: it populates a lexically
// scoped symbol table, infers a data type for every expression node,
// and enforces the language's static-type discipline.
package resolve

import (
	"fmt"
	"strings"

	"github.com/janasaade18/minipy/syntax"
)

// Program analyzes a parsed program in a single source-order pass.
//
// On success it returns the symbol table, unwound to its global frame;
// every reachable expression node has been annotated with its inferred
// type. On failure it returns a syntax.Error citing the offending
// line.
//
// Scope discipline: function bodies and for-loop bodies open a new
// frame; if, while, and try/except do not.
func Program(prog *syntax.Program) (*SymbolTable, error) {
	a := &analyzer{st: NewSymbolTable()}
	a.defineBuiltins()
	for _, stmt := range prog.Stmts {
		if err := a.stmt(stmt); err != nil {
			return a.st, err
		}
	}
	return a.st, nil
}

type analyzer struct {
	st *SymbolTable
	fn *syntax.DefStmt // function whose body is being walked, or nil
}

// defineBuiltins seeds the global frame. print and range have no
// useful return type; the casts and input do.
func (a *analyzer) defineBuiltins() {
	for _, b := range []struct {
		name string
		ret  syntax.DataType
	}{
		{"print", syntax.UndefinedType},
		{"input", syntax.StringType},
		{"int", syntax.IntegerType},
		{"float", syntax.FloatType},
		{"str", syntax.StringType},
		{"range", syntax.UndefinedType},
	} {
		a.st.Define(b.name, syntax.FunctionType)
		a.st.Lookup(b.name).ReturnType = b.ret
	}
}

func errf(line int32, format string, args ...interface{}) error {
	return syntax.Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (a *analyzer) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		return a.assign(s)
	case *syntax.DefStmt:
		return a.def(s)
	case *syntax.ForRangeStmt:
		return a.forRange(s)
	case *syntax.ForGenericStmt:
		return a.forGeneric(s)
	case *syntax.IfStmt:
		return a.ifStmt(s)
	case *syntax.WhileStmt:
		if _, err := a.exprType(s.Cond); err != nil {
			return err
		}
		return a.block(s.Body)
	case *syntax.TryStmt:
		if err := a.block(s.Body); err != nil {
			return err
		}
		if s.Handler != nil {
			return a.block(s.Handler)
		}
		return nil
	case *syntax.ReturnStmt:
		return a.ret(s)
	case *syntax.PrintStmt:
		_, err := a.exprType(s.X)
		return err
	case *syntax.ExprStmt:
		_, err := a.exprType(s.X)
		return err
	}
	return nil
}

func (a *analyzer) block(b *syntax.Block) error {
	for _, stmt := range b.Stmts {
		if err := a.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// assign binds or re-binds a variable. Re-binding requires the same
// type, except that an integer value may be assigned to a float-bound
// name (int-to-float promotion).
func (a *analyzer) assign(s *syntax.AssignStmt) error {
	t, err := a.exprType(s.Value)
	if err != nil {
		return err
	}
	if sym := a.st.Lookup(s.Name.Name); sym != nil {
		if sym.Type != t && !(sym.Type == syntax.FloatType && t == syntax.IntegerType) {
			return errf(s.Line(), "type mismatch: variable '%s' is %s but assigned %s",
				s.Name.Name, sym.Type, t)
		}
	} else {
		a.st.Define(s.Name.Name, t)
	}
	s.Name.SetType(t)
	s.SetType(t)
	return nil
}

// def declares a function in the current frame and analyzes its body
// in a fresh frame. Parameters default to integer; there is no
// inference from call sites.
func (a *analyzer) def(s *syntax.DefStmt) error {
	if !a.st.Define(s.Name.Name, syntax.FunctionType) {
		return errf(s.Line(), "function '%s' already defined", s.Name.Name)
	}
	s.Name.SetType(syntax.FunctionType)
	s.SetType(syntax.FunctionType)

	outer := a.fn
	a.fn = s
	a.st.Push()
	for _, param := range s.Params {
		param.SetType(syntax.IntegerType)
		a.st.Define(param.Name, syntax.IntegerType)
	}
	err := a.block(s.Body)
	a.st.Pop()
	a.fn = outer
	return err
}

func (a *analyzer) forRange(s *syntax.ForRangeStmt) error {
	a.st.Push()
	defer a.st.Pop()

	start, err := a.exprType(s.Start)
	if err != nil {
		return err
	}
	if start != syntax.IntegerType {
		return errf(s.Line(), "loop range start must be integer, got %s", start)
	}
	stop, err := a.exprType(s.Stop)
	if err != nil {
		return err
	}
	if stop != syntax.IntegerType {
		return errf(s.Line(), "loop range stop must be integer, got %s", stop)
	}
	// The step is typed but deliberately not checked.
	if _, err := a.exprType(s.Step); err != nil {
		return err
	}

	s.Var.SetType(syntax.IntegerType)
	a.st.Define(s.Var.Name, syntax.IntegerType)
	return a.block(s.Body)
}

func (a *analyzer) forGeneric(s *syntax.ForGenericStmt) error {
	a.st.Push()
	defer a.st.Pop()

	t, err := a.exprType(s.X)
	if err != nil {
		return err
	}
	if t == syntax.StringType {
		s.Var.SetType(syntax.StringType)
		a.st.Define(s.Var.Name, syntax.StringType)
	} else {
		// Tolerated: the iterator is bound but carries no useful type.
		a.st.Define(s.Var.Name, syntax.UndefinedType)
	}
	return a.block(s.Body)
}

func (a *analyzer) ifStmt(s *syntax.IfStmt) error {
	if _, err := a.exprType(s.Cond); err != nil {
		return err
	}
	if err := a.block(s.Body); err != nil {
		return err
	}
	switch e := s.Else.(type) {
	case *syntax.Block:
		return a.block(e)
	case *syntax.IfStmt:
		return a.ifStmt(e)
	}
	return nil
}

// ret types a return statement. The first return in a function fixes
// its return type; later returns must match it, with an integer value
// tolerated where a float is expected. The recorded return type is
// never widened afterwards.
func (a *analyzer) ret(s *syntax.ReturnStmt) error {
	if a.fn == nil {
		return errf(s.Line(), "return statement outside of function")
	}

	t := syntax.NoneType
	if s.Result != nil {
		var err error
		if t, err = a.exprType(s.Result); err != nil {
			return err
		}
	}
	s.SetType(t)

	sym := a.st.Lookup(a.fn.Name.Name)
	if sym == nil {
		return errf(s.Line(), "function '%s' vanished from scope", a.fn.Name.Name)
	}
	if sym.ReturnType == syntax.UndefinedType {
		sym.ReturnType = t
	} else if sym.ReturnType != t &&
		!(sym.ReturnType == syntax.FloatType && t == syntax.IntegerType) {
		return errf(s.Line(), "inconsistent return types in function '%s': expected %s, got %s",
			a.fn.Name.Name, sym.ReturnType, t)
	}
	return nil
}

// exprType infers and records the type of an expression node.
func (a *analyzer) exprType(e syntax.Expr) (syntax.DataType, error) {
	switch e := e.(type) {
	case *syntax.NumberLit:
		t := syntax.IntegerType
		if strings.Contains(e.Raw, ".") {
			t = syntax.FloatType
		}
		e.SetType(t)
		return t, nil

	case *syntax.StringLit:
		e.SetType(syntax.StringType)
		return syntax.StringType, nil

	case *syntax.BoolLit:
		e.SetType(syntax.BooleanType)
		return syntax.BooleanType, nil

	case *syntax.NoneLit:
		e.SetType(syntax.NoneType)
		return syntax.NoneType, nil

	case *syntax.Ident:
		sym := a.st.Lookup(e.Name)
		if sym == nil {
			msg := fmt.Sprintf("variable '%s' is not defined", e.Name)
			if alt := suggest(e.Name, a.st.Names()); alt != "" {
				msg += fmt.Sprintf(" (did you mean '%s'?)", alt)
			}
			return syntax.UndefinedType, errf(e.Line(), "%s", msg)
		}
		e.SetType(sym.Type)
		return sym.Type, nil

	case *syntax.UnaryExpr:
		t, err := a.exprType(e.X)
		if err != nil {
			return syntax.UndefinedType, err
		}
		if e.Op == syntax.NOT {
			t = syntax.BooleanType
		}
		e.SetType(t)
		return t, nil

	case *syntax.BinaryExpr:
		return a.binaryType(e)

	case *syntax.CallExpr:
		return a.callType(e)
	}
	return syntax.UndefinedType, errf(e.Line(), "cannot type expression %T", e)
}

func (a *analyzer) binaryType(e *syntax.BinaryExpr) (syntax.DataType, error) {
	left, err := a.exprType(e.X)
	if err != nil {
		return syntax.UndefinedType, err
	}
	right, err := a.exprType(e.Y)
	if err != nil {
		return syntax.UndefinedType, err
	}

	switch e.Op {
	case syntax.PLUS, syntax.MINUS, syntax.STAR, syntax.SLASH:
		if left == syntax.StringType || right == syntax.StringType {
			if e.Op == syntax.PLUS {
				e.SetType(syntax.StringType)
				return syntax.StringType, nil
			}
			return syntax.UndefinedType,
				errf(e.Line(), "cannot perform arithmetic on strings (except +)")
		}
		if left == syntax.FloatType || right == syntax.FloatType {
			e.SetType(syntax.FloatType)
			return syntax.FloatType, nil
		}
		e.SetType(syntax.IntegerType)
		return syntax.IntegerType, nil

	case syntax.EQEQ, syntax.GREATER, syntax.GEQ, syntax.LESS, syntax.LEQ,
		syntax.AND, syntax.OR:
		e.SetType(syntax.BooleanType)
		return syntax.BooleanType, nil
	}
	return syntax.UndefinedType, errf(e.Line(), "unknown binary operator %s", e.Op)
}

// callType checks the callee and types each argument. Arity and
// argument types are not checked against the parameters. The result
// is the callee's recorded return type, or none if it has not been
// fixed yet.
func (a *analyzer) callType(e *syntax.CallExpr) (syntax.DataType, error) {
	sym := a.st.Lookup(e.Name.Name)
	if sym == nil {
		msg := fmt.Sprintf("function '%s' is not defined", e.Name.Name)
		if alt := suggest(e.Name.Name, a.st.Names()); alt != "" {
			msg += fmt.Sprintf(" (did you mean '%s'?)", alt)
		}
		return syntax.UndefinedType, errf(e.Line(), "%s", msg)
	}
	if sym.Type != syntax.FunctionType {
		return syntax.UndefinedType, errf(e.Line(), "'%s' is not a function", e.Name.Name)
	}
	e.Name.SetType(syntax.FunctionType)

	for _, arg := range e.Args {
		if _, err := a.exprType(arg); err != nil {
			return syntax.UndefinedType, err
		}
	}

	t := syntax.NoneType
	if sym.ReturnType != syntax.UndefinedType {
		t = sym.ReturnType
	}
	e.SetType(t)
	return t, nil
}
