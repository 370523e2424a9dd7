// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A DataType is the static type the analyzer assigns to an expression.
// UndefinedType is the "not yet inferred" sentinel; it must not remain
// on any reachable expression node after a successful analysis.
type DataType uint8

const (
	UndefinedType DataType = iota
	IntegerType
	FloatType
	StringType
	BooleanType
	NoneType
	FunctionType
)

var typeNames = [...]string{
	UndefinedType: "undefined",
	IntegerType:   "integer",
	FloatType:     "float",
	StringType:    "string",
	BooleanType:   "boolean",
	NoneType:      "none",
	FunctionType:  "function",
}

func (t DataType) String() string { return typeNames[t] }
