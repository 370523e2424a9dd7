// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses the syntax tree in depth-first order.
// It calls f(n) for each node n before visiting its children.
// If f returns false, the children are skipped.
// After the children are visited, f(nil) is called once per node.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkStmts(n.Stmts, f)
	case *Block:
		walkStmts(n.Stmts, f)
	case *AssignStmt:
		Walk(n.Name, f)
		Walk(n.Value, f)
	case *PrintStmt:
		Walk(n.X, f)
	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, f)
		}
	case *ExprStmt:
		Walk(n.X, f)
	case *IfStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)
		if n.Else != nil {
			Walk(n.Else, f)
		}
	case *WhileStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)
	case *ForRangeStmt:
		Walk(n.Var, f)
		Walk(n.Start, f)
		Walk(n.Stop, f)
		Walk(n.Step, f)
		Walk(n.Body, f)
	case *ForGenericStmt:
		Walk(n.Var, f)
		Walk(n.X, f)
		Walk(n.Body, f)
	case *TryStmt:
		Walk(n.Body, f)
		if n.Handler != nil {
			Walk(n.Handler, f)
		}
	case *DefStmt:
		Walk(n.Name, f)
		for _, param := range n.Params {
			Walk(param, f)
		}
		Walk(n.Body, f)
	case *UnaryExpr:
		Walk(n.X, f)
	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)
	case *CallExpr:
		Walk(n.Name, f)
		for _, arg := range n.Args {
			Walk(arg, f)
		}
	case *NumberLit, *StringLit, *BoolLit, *NoneLit, *Ident:
		// no children
	}

	f(nil) // pop
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, f)
	}
}
