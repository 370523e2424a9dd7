// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
	"strconv"
)

// TreeString prints a syntax node as a parenthesized tree, for tests
// and for tree-view front ends. Identifiers print as bare names,
// literals as their values, and structures as (Name Field=value ...);
// empty fields are omitted.
func TreeString(n Node) string {
	var buf bytes.Buffer
	writeTree(&buf, n)
	return buf.String()
}

// operatorText maps operator token kinds back to their source spelling.
var operatorText = map[Kind]string{
	EQEQ:    "==",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	GREATER: ">",
	GEQ:     ">=",
	LESS:    "<",
	LEQ:     "<=",
	AND:     "and",
	OR:      "or",
	NOT:     "not",
}

func writeTree(out *bytes.Buffer, n Node) {
	switch n := n.(type) {
	case *NumberLit:
		out.WriteString(n.Raw)
	case *StringLit:
		out.WriteString(strconv.Quote(n.Value))
	case *BoolLit:
		if n.Value {
			out.WriteString("True")
		} else {
			out.WriteString("False")
		}
	case *NoneLit:
		out.WriteString("None")
	case *Ident:
		out.WriteString(n.Name)
	case *UnaryExpr:
		fmt.Fprintf(out, "(UnaryExpr Op=%s X=", operatorText[n.Op])
		writeTree(out, n.X)
		out.WriteByte(')')
	case *BinaryExpr:
		out.WriteString("(BinaryExpr X=")
		writeTree(out, n.X)
		fmt.Fprintf(out, " Op=%s Y=", operatorText[n.Op])
		writeTree(out, n.Y)
		out.WriteByte(')')
	case *CallExpr:
		fmt.Fprintf(out, "(CallExpr Name=%s", n.Name.Name)
		writeExprList(out, " Args=", n.Args)
		out.WriteByte(')')
	case *AssignStmt:
		fmt.Fprintf(out, "(AssignStmt Name=%s Value=", n.Name.Name)
		writeTree(out, n.Value)
		out.WriteByte(')')
	case *PrintStmt:
		out.WriteString("(PrintStmt X=")
		writeTree(out, n.X)
		out.WriteByte(')')
	case *ReturnStmt:
		out.WriteString("(ReturnStmt")
		if n.Result != nil {
			out.WriteString(" Result=")
			writeTree(out, n.Result)
		}
		out.WriteByte(')')
	case *ExprStmt:
		out.WriteString("(ExprStmt X=")
		writeTree(out, n.X)
		out.WriteByte(')')
	case *IfStmt:
		out.WriteString("(IfStmt Cond=")
		writeTree(out, n.Cond)
		out.WriteString(" Body=")
		writeTree(out, n.Body)
		if n.Else != nil {
			out.WriteString(" Else=")
			writeTree(out, n.Else)
		}
		out.WriteByte(')')
	case *WhileStmt:
		out.WriteString("(WhileStmt Cond=")
		writeTree(out, n.Cond)
		out.WriteString(" Body=")
		writeTree(out, n.Body)
		out.WriteByte(')')
	case *ForRangeStmt:
		fmt.Fprintf(out, "(ForRangeStmt Var=%s Start=", n.Var.Name)
		writeTree(out, n.Start)
		out.WriteString(" Stop=")
		writeTree(out, n.Stop)
		out.WriteString(" Step=")
		writeTree(out, n.Step)
		out.WriteString(" Body=")
		writeTree(out, n.Body)
		out.WriteByte(')')
	case *ForGenericStmt:
		fmt.Fprintf(out, "(ForGenericStmt Var=%s X=", n.Var.Name)
		writeTree(out, n.X)
		out.WriteString(" Body=")
		writeTree(out, n.Body)
		out.WriteByte(')')
	case *TryStmt:
		out.WriteString("(TryStmt Body=")
		writeTree(out, n.Body)
		if n.Handler != nil {
			out.WriteString(" Handler=")
			writeTree(out, n.Handler)
		}
		out.WriteByte(')')
	case *DefStmt:
		fmt.Fprintf(out, "(DefStmt Name=%s", n.Name.Name)
		if len(n.Params) > 0 {
			out.WriteString(" Params=(")
			for i, param := range n.Params {
				if i > 0 {
					out.WriteByte(' ')
				}
				out.WriteString(param.Name)
			}
			out.WriteByte(')')
		}
		out.WriteString(" Body=")
		writeTree(out, n.Body)
		out.WriteByte(')')
	case *Block:
		out.WriteString("(Block")
		writeStmtList(out, " Stmts=", n.Stmts)
		out.WriteByte(')')
	case *Program:
		out.WriteString("(Program")
		writeStmtList(out, " Stmts=", n.Stmts)
		out.WriteByte(')')
	default:
		fmt.Fprintf(out, "%T", n)
	}
}

func writeExprList(out *bytes.Buffer, label string, exprs []Expr) {
	if len(exprs) == 0 {
		return
	}
	out.WriteString(label)
	out.WriteByte('(')
	for i, x := range exprs {
		if i > 0 {
			out.WriteByte(' ')
		}
		writeTree(out, x)
	}
	out.WriteByte(')')
}

func writeStmtList(out *bytes.Buffer, label string, stmts []Stmt) {
	if len(stmts) == 0 {
		return
	}
	out.WriteString(label)
	out.WriteByte('(')
	for i, stmt := range stmts {
		if i > 0 {
			out.WriteByte(' ')
		}
		writeTree(out, stmt)
	}
	out.WriteByte(')')
}
