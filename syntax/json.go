// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes an indented JSON rendering of the syntax tree to
// w, for consumption by visualizing front ends.
func FprintJSON(w io.Writer, n Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(n))
}

// ToJSON converts a syntax node to a JSON-encodable value. Every node
// becomes a map with "node" and "line" keys plus an entry per child;
// the inferred type is included once the analyzer has run.
func ToJSON(n Node) interface{} {
	if n == nil {
		return nil
	}

	m := map[string]interface{}{"line": n.Line()}
	if t := n.Type(); t != UndefinedType {
		m["datatype"] = t.String()
	}

	switch n := n.(type) {
	case *Program:
		m["node"] = "Program"
		m["stmts"] = stmtsJSON(n.Stmts)
	case *Block:
		m["node"] = "Block"
		m["stmts"] = stmtsJSON(n.Stmts)
	case *NumberLit:
		m["node"] = "NumberLit"
		m["raw"] = n.Raw
	case *StringLit:
		m["node"] = "StringLit"
		m["value"] = n.Value
	case *BoolLit:
		m["node"] = "BoolLit"
		m["value"] = n.Value
	case *NoneLit:
		m["node"] = "NoneLit"
	case *Ident:
		m["node"] = "Ident"
		m["name"] = n.Name
	case *UnaryExpr:
		m["node"] = "UnaryExpr"
		m["op"] = operatorText[n.Op]
		m["x"] = ToJSON(n.X)
	case *BinaryExpr:
		m["node"] = "BinaryExpr"
		m["x"] = ToJSON(n.X)
		m["op"] = operatorText[n.Op]
		m["y"] = ToJSON(n.Y)
	case *CallExpr:
		m["node"] = "CallExpr"
		m["name"] = n.Name.Name
		args := make([]interface{}, len(n.Args))
		for i, arg := range n.Args {
			args[i] = ToJSON(arg)
		}
		m["args"] = args
	case *AssignStmt:
		m["node"] = "AssignStmt"
		m["name"] = n.Name.Name
		m["value"] = ToJSON(n.Value)
	case *PrintStmt:
		m["node"] = "PrintStmt"
		m["x"] = ToJSON(n.X)
	case *ReturnStmt:
		m["node"] = "ReturnStmt"
		if n.Result != nil {
			m["result"] = ToJSON(n.Result)
		}
	case *ExprStmt:
		m["node"] = "ExprStmt"
		m["x"] = ToJSON(n.X)
	case *IfStmt:
		m["node"] = "IfStmt"
		m["cond"] = ToJSON(n.Cond)
		m["body"] = ToJSON(n.Body)
		if n.Else != nil {
			m["else"] = ToJSON(n.Else)
		}
	case *WhileStmt:
		m["node"] = "WhileStmt"
		m["cond"] = ToJSON(n.Cond)
		m["body"] = ToJSON(n.Body)
	case *ForRangeStmt:
		m["node"] = "ForRangeStmt"
		m["var"] = n.Var.Name
		m["start"] = ToJSON(n.Start)
		m["stop"] = ToJSON(n.Stop)
		m["step"] = ToJSON(n.Step)
		m["body"] = ToJSON(n.Body)
	case *ForGenericStmt:
		m["node"] = "ForGenericStmt"
		m["var"] = n.Var.Name
		m["iterable"] = ToJSON(n.X)
		m["body"] = ToJSON(n.Body)
	case *TryStmt:
		m["node"] = "TryStmt"
		m["body"] = ToJSON(n.Body)
		if n.Handler != nil {
			m["handler"] = ToJSON(n.Handler)
		}
	case *DefStmt:
		m["node"] = "DefStmt"
		m["name"] = n.Name.Name
		params := make([]interface{}, len(n.Params))
		for i, param := range n.Params {
			params[i] = param.Name
		}
		m["params"] = params
		m["body"] = ToJSON(n.Body)
	default:
		m["node"] = "Unknown"
	}
	return m
}

func stmtsJSON(stmts []Stmt) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, stmt := range stmts {
		out[i] = ToJSON(stmt)
	}
	return out
}
