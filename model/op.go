/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package model

/*
Op is the closed set of operator tags a Node can carry.
*/
type Op int

/*
The full operator tag set. NUM, VAR and CST are leaves; everything else is an
interior node with a fixed or variable arity enforced by New and IsBinaryOnly.
*/
const (
	OpInvalid Op = iota

	OpNum
	OpVar
	OpCst

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpFrac
	OpPM
	OpPow
	OpSubscript

	OpEql
	OpLt
	OpLe
	OpGt
	OpGe

	OpComma
	OpColon
	OpRightArrow
	OpIn
	OpTo

	OpSqrt
	OpVec
	OpAbs
	OpParen

	OpSin
	OpCos
	OpTan
	OpSec
	OpCot
	OpCsc
	OpArcsin
	OpArccos
	OpArctan

	OpLn
	OpLg
	OpLog
	OpExp

	OpLim
	OpSum
	OpInt
	OpProd

	OpPercent
	OpFact
	OpBinom

	OpForall
	OpExists

	OpM

	OpRow
	OpCol
	OpMatrix

	OpInterval
	OpList

	OpHighlight
)

/*
opNames gives the canonical name of each operator tag, used for diagnostics
and debug dumps.
*/
var opNames = map[Op]string{
	OpInvalid: "INVALID",

	OpNum: "NUM",
	OpVar: "VAR",
	OpCst: "CST",

	OpAdd:       "ADD",
	OpSub:       "SUB",
	OpMul:       "MUL",
	OpDiv:       "DIV",
	OpFrac:      "FRAC",
	OpPM:        "PM",
	OpPow:       "POW",
	OpSubscript: "SUBSCRIPT",

	OpEql: "EQL",
	OpLt:  "LT",
	OpLe:  "LE",
	OpGt:  "GT",
	OpGe:  "GE",

	OpComma:      "COMMA",
	OpColon:      "COLON",
	OpRightArrow: "RIGHTARROW",
	OpIn:         "IN",
	OpTo:         "TO",

	OpSqrt:  "SQRT",
	OpVec:   "VEC",
	OpAbs:   "ABS",
	OpParen: "PAREN",

	OpSin:    "SIN",
	OpCos:    "COS",
	OpTan:    "TAN",
	OpSec:    "SEC",
	OpCot:    "COT",
	OpCsc:    "CSC",
	OpArcsin: "ARCSIN",
	OpArccos: "ARCCOS",
	OpArctan: "ARCTAN",

	OpLn:  "LN",
	OpLg:  "LG",
	OpLog: "LOG",
	OpExp: "EXP",

	OpLim:  "LIM",
	OpSum:  "SUM",
	OpInt:  "INT",
	OpProd: "PROD",

	OpPercent: "PERCENT",
	OpFact:    "FACT",
	OpBinom:   "BINOM",

	OpForall: "FORALL",
	OpExists: "EXISTS",

	OpM: "M",

	OpRow:    "ROW",
	OpCol:    "COL",
	OpMatrix: "MATRIX",

	OpInterval: "INTERVAL",
	OpList:     "LIST",

	OpHighlight: "HIGHLIGHT",
}

/*
String returns the canonical name of an operator tag.
*/
func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "UNKNOWN"
}

/*
binaryOnly is the set of operators which always have arity exactly 2 when
first constructed (invariant I4).
*/
var binaryOnly = map[Op]bool{
	OpEql:        true,
	OpLt:         true,
	OpLe:         true,
	OpGt:         true,
	OpGe:         true,
	OpFrac:       true,
	OpRightArrow: true,
	OpIn:         true,
	OpTo:         true,
	OpColon:      true,
}

/*
IsBinaryOnly returns true if the operator must have exactly two children.
*/
func (o Op) IsBinaryOnly() bool {
	return binaryOnly[o]
}

/*
IsLeaf returns true if the operator carries a literal Payload instead of
Children.
*/
func (o Op) IsLeaf() bool {
	return o == OpNum || o == OpVar || o == OpCst
}
