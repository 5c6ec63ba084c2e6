/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package render converts an AST back to LaTeX: a dispatch table keyed by
// operator plus special-case functions for constructs that don't fit a
// flat template, and a precedence comparison that decides when a child
// needs parentheses.
package render

import (
	"fmt"
	"strings"

	"github.com/gradely/mexpr/model"
	"github.com/gradely/mexpr/util"
)

/*
precedence mirrors the parser's grammar levels, used to decide whether a
child must be parenthesized when rendered under a given parent.
*/
var precedence = map[model.Op]int{
	model.OpComma:      1,
	model.OpEql:        2,
	model.OpRightArrow: 2,
	model.OpLt:         3,
	model.OpLe:         3,
	model.OpGt:         3,
	model.OpGe:         3,
	model.OpColon:      3,
	model.OpIn:         3,
	model.OpTo:         3,
	model.OpAdd:        4,
	model.OpSub:        4,
	model.OpPM:         4,
	model.OpMul:        5,
	model.OpDiv:        5,
	model.OpPow:        6,
	model.OpSubscript:  6,
}

func prec(op model.Op) int {
	if p, ok := precedence[op]; ok {
		return p
	}
	return 100 // atoms and function-call-shaped nodes never need wrapping
}

/*
Render converts n into its LaTeX surface form.
*/
func Render(n *model.Node) (string, error) {
	return render(n, 0)
}

func render(n *model.Node, parentPrec int) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mexpr: render error: %v", r)
		}
	}()
	return renderNode(n), nil
}

func renderNode(n *model.Node) string {
	switch n.Op {
	case model.OpNum:
		if n.HasThousands {
			return groupThousands(n.Payload)
		}
		return n.Payload
	case model.OpVar, model.OpCst:
		return n.Payload

	case model.OpAdd:
		return joinInfix(n.Children, " + ", n.Op)
	case model.OpSub:
		if len(n.Children) == 1 {
			return "-" + wrap(n.Children[0], n.Op)
		}
		return joinInfix(n.Children, " - ", n.Op)
	case model.OpMul:
		if n.IsFraction {
			if frac, ok := fracParts(n); ok {
				return frac
			}
		}
		if n.IsBinomial {
			if binom, ok := binomParts(n); ok {
				return binom
			}
		}
		return renderMul(n)
	case model.OpFrac:
		return "\\dfrac{" + renderNode(n.Children[0]) + "}{" + renderNode(n.Children[1]) + "}"
	case model.OpBinom:
		return "\\binom{" + renderNode(n.Children[0]) + "}{" + renderNode(n.Children[1]) + "}"
	case model.OpDiv:
		return wrap(n.Children[0], n.Op) + " / " + wrap(n.Children[1], n.Op)
	case model.OpPM:
		return wrap(n.Children[0], n.Op) + " \\pm " + wrap(n.Children[1], n.Op)

	case model.OpPow:
		return renderPow(n)
	case model.OpSubscript:
		return fmt.Sprintf("%s_{%s}", wrap(n.Children[0], n.Op), renderNode(n.Children[1]))

	case model.OpEql:
		return wrap(n.Children[0], n.Op) + " = " + wrap(n.Children[1], n.Op)
	case model.OpLt:
		return wrap(n.Children[0], n.Op) + " < " + wrap(n.Children[1], n.Op)
	case model.OpLe:
		return wrap(n.Children[0], n.Op) + " \\leq " + wrap(n.Children[1], n.Op)
	case model.OpGt:
		return wrap(n.Children[0], n.Op) + " > " + wrap(n.Children[1], n.Op)
	case model.OpGe:
		return wrap(n.Children[0], n.Op) + " \\geq " + wrap(n.Children[1], n.Op)
	case model.OpRightArrow:
		return wrap(n.Children[0], n.Op) + " \\rightarrow " + wrap(n.Children[1], n.Op)
	case model.OpIn:
		return wrap(n.Children[0], n.Op) + " \\in " + wrap(n.Children[1], n.Op)
	case model.OpTo:
		return wrap(n.Children[0], n.Op) + " \\to " + wrap(n.Children[1], n.Op)
	case model.OpColon:
		return wrap(n.Children[0], n.Op) + " : " + wrap(n.Children[1], n.Op)

	case model.OpComma:
		return joinInfix(n.Children, ", ", n.Op)
	case model.OpList:
		return string(openBrk(n)) + renderNode(n.Children[0]) + string(closeBrk(n))
	case model.OpInterval:
		return string(openBrk(n)) + renderNode(n.Children[0]) + string(closeBrk(n))
	case model.OpParen:
		return "(" + renderNode(n.Children[0]) + ")"

	case model.OpSqrt:
		return renderSqrt(n)
	case model.OpVec:
		return "\\vec{" + renderNode(n.Children[0]) + "}"
	case model.OpAbs:
		return "|" + renderNode(n.Children[0]) + "|"

	case model.OpSin:
		return "\\sin{" + renderNode(n.Children[0]) + "}"
	case model.OpCos:
		return "\\cos{" + renderNode(n.Children[0]) + "}"
	case model.OpTan:
		return "\\tan{" + renderNode(n.Children[0]) + "}"
	case model.OpSec:
		return "\\sec{" + renderNode(n.Children[0]) + "}"
	case model.OpCot:
		return "\\cot{" + renderNode(n.Children[0]) + "}"
	case model.OpCsc:
		return "\\csc{" + renderNode(n.Children[0]) + "}"
	case model.OpArcsin:
		return "\\sin^{-1}{" + renderNode(n.Children[0]) + "}"
	case model.OpArccos:
		return "\\cos^{-1}{" + renderNode(n.Children[0]) + "}"
	case model.OpArctan:
		return "\\tan^{-1}{" + renderNode(n.Children[0]) + "}"

	case model.OpLn:
		return "\\ln{" + renderNode(n.Children[0]) + "}"
	case model.OpLg:
		return "\\lg{" + renderNode(n.Children[0]) + "}"
	case model.OpLog:
		return renderLog(n)
	case model.OpExp:
		return "\\exp{" + renderNode(n.Children[0]) + "}"
	case model.OpM:
		return "M(" + renderNode(n.Children[0]) + ")"

	case model.OpLim:
		return fmt.Sprintf("\\lim_{%s}{%s}", renderNode(n.Children[0]), renderNode(n.Children[1]))
	case model.OpSum:
		return renderBigOp("\\sum", n)
	case model.OpInt:
		return renderBigOp("\\int", n)
	case model.OpProd:
		return renderBigOp("\\prod", n)

	case model.OpPercent:
		return renderNode(n.Children[0]) + "\\%"
	case model.OpFact:
		return wrap(n.Children[0], n.Op) + "!"
	case model.OpForall:
		return "\\forall " + renderNode(n.Children[0])
	case model.OpExists:
		return "\\exists " + renderNode(n.Children[0])

	case model.OpMatrix:
		return renderMatrix(n)
	case model.OpRow:
		return renderRow(n)
	case model.OpCol:
		return renderNode(n.Children[0])

	case model.OpHighlight:
		return "\\colorbox{yellow}{" + renderNode(n.Children[0]) + "}"
	}

	util.Assert(false, fmt.Sprintf("mexpr: renderer has no rule for operator %v", n.Op))
	return ""
}

/*
renderPow special-cases the sqrt/nth-root sentinel shapes produced by the
parser's square-root normalization before falling back to plain "a^{b}".
*/
func renderPow(n *model.Node) string {
	if isSqrtSentinel(n) {
		return renderSqrtFromPow(n)
	}

	base := wrap(n.Children[0], n.Op)
	if n.Children[0].Op == model.OpSqrt {
		base = "(" + base + ")"
	}
	return fmt.Sprintf("{%s^{%s}}", base, renderNode(n.Children[1]))
}

func isSqrtSentinel(n *model.Node) bool {
	if len(n.Children) < 2 {
		return false
	}
	exp := n.Children[1]
	return exp.Op == model.OpPow && len(exp.Children) == 2 &&
		exp.Children[0].Op == model.OpNum && exp.Children[0].Payload == "2" &&
		exp.Children[1].Op == model.OpNum && exp.Children[1].Payload == "-1"
}

func renderSqrtFromPow(n *model.Node) string {
	radicand := renderNode(n.Children[0])
	if len(n.Children) == 3 {
		return fmt.Sprintf("\\sqrt[%s]{%s}", renderNode(n.Children[2]), radicand)
	}
	return fmt.Sprintf("\\sqrt{%s}", radicand)
}

/*
groupThousands re-inserts comma separators every three digits of the
integer part, reversing the lexer's thousands-separator stripping.
*/
func groupThousands(payload string) string {
	intPart, rest := payload, ""
	if i := strings.IndexByte(payload, '.'); i >= 0 {
		intPart, rest = payload[:i], payload[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out + rest
}

/*
fracParts reverses the fraction-to-reciprocal-multiplication normalization:
MUL(a, POW(b, -1)) tagged IsFraction renders as "\dfrac{a}{b}".
*/
func fracParts(n *model.Node) (string, bool) {
	if len(n.Children) != 2 {
		return "", false
	}
	den := n.Children[1]
	if den.Op != model.OpPow || len(den.Children) != 2 ||
		den.Children[1].Op != model.OpNum || den.Children[1].Payload != "-1" {
		return "", false
	}
	return fmt.Sprintf("\\dfrac{%s}{%s}", renderNode(n.Children[0]), renderNode(den.Children[0])), true
}

/*
binomParts reverses the binomial-expansion normalization, reconstructing
"\binom{n}{k}" from MUL(FACT(n), POW(MUL(FACT(k), FACT(n-k)), -1)).
*/
func binomParts(n *model.Node) (string, bool) {
	if len(n.Children) != 2 {
		return "", false
	}
	factN := n.Children[0]
	denomPow := n.Children[1]
	if factN.Op != model.OpFact || denomPow.Op != model.OpPow || len(denomPow.Children) != 2 {
		return "", false
	}
	denom := denomPow.Children[0]
	if denom.Op != model.OpMul || len(denom.Children) != 2 {
		return "", false
	}
	factK := denom.Children[0]
	if factK.Op != model.OpFact {
		return "", false
	}
	return fmt.Sprintf("\\binom{%s}{%s}", renderNode(factN.Children[0]), renderNode(factK.Children[0])), true
}

func renderSqrt(n *model.Node) string {
	if len(n.Children) == 2 {
		return fmt.Sprintf("\\sqrt[%s]{%s}", renderNode(n.Children[1]), renderNode(n.Children[0]))
	}
	return fmt.Sprintf("\\sqrt{%s}", renderNode(n.Children[0]))
}

func renderLog(n *model.Node) string {
	base := n.Children[0]
	if base.Op == model.OpVar && base.Payload == "e" {
		return "\\ln{" + renderNode(n.Children[1]) + "}"
	}
	if base.Op == model.OpNum && base.Payload == "10" {
		return "\\lg{" + renderNode(n.Children[1]) + "}"
	}
	return fmt.Sprintf("\\log_{%s}{%s}", renderNode(base), renderNode(n.Children[1]))
}

func renderBigOp(name string, n *model.Node) string {
	if len(n.Children) == 3 {
		return fmt.Sprintf("%s_{%s}^{%s}{%s}", name, renderNode(n.Children[0]), renderNode(n.Children[1]), renderNode(n.Children[2]))
	}
	return fmt.Sprintf("%s{%s}", name, renderNode(n.Children[0]))
}

func renderMatrix(n *model.Node) string {
	rows := make([]string, len(n.Children))
	for i, row := range n.Children {
		rows[i] = renderRow(row)
	}
	return "\\begin{matrix}" + strings.Join(rows, "\\\\") + "\\end{matrix}"
}

func renderRow(n *model.Node) string {
	cols := make([]string, len(n.Children))
	for i, col := range n.Children {
		cols[i] = renderNode(col)
	}
	return strings.Join(cols, "&")
}

/*
renderMul implements the multiplication-elision rules: \times is dropped
between a term and a following parenthesized, bare-variable, or
bare-constant factor, or between a numeric term and a following
non-numeric factor.
*/
func renderMul(n *model.Node) string {
	var buf strings.Builder
	for i, child := range n.Children {
		rendered := wrap(child, n.Op)

		if i == 0 {
			buf.WriteString(rendered)
			continue
		}

		prev := n.Children[i-1]
		if elideBetween(prev, child) {
			buf.WriteString(rendered)
		} else {
			buf.WriteString(" \\times ")
			buf.WriteString(rendered)
		}
	}
	return buf.String()
}

func elideBetween(prev, next *model.Node) bool {
	if next.Op == model.OpParen {
		return true
	}
	if next.Op == model.OpVar || next.Op == model.OpCst {
		return true
	}
	if prev.Op == model.OpNum && next.Op != model.OpNum {
		return true
	}
	return false
}

func joinInfix(children []*model.Node, sep string, parentOp model.Op) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = wrap(c, parentOp)
	}
	return strings.Join(parts, sep)
}

/*
wrap renders child and parenthesizes it if its precedence is lower than
parentOp's.
*/
func wrap(child *model.Node, parentOp model.Op) string {
	s := renderNode(child)
	if prec(child.Op) < prec(parentOp) {
		return "(" + s + ")"
	}
	return s
}

func openBrk(n *model.Node) byte {
	if n.LBrk != 0 {
		return n.LBrk
	}
	return '('
}

func closeBrk(n *model.Node) byte {
	if n.RBrk != 0 {
		return n.RBrk
	}
	return ')'
}
