/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package parser implements a recursive-descent parser over LaTeX
// expression source: one function per precedence level (comma, equal,
// relational, additive, multiplicative, exponential, subscript, unary,
// postfix, primary), plus the inline normalizations that canonicalize
// fractions, roots, binomials, and trig inverses at parse time.
package parser

import (
	"fmt"
	"strings"

	"github.com/gradely/mexpr/config"
	"github.com/gradely/mexpr/env"
	"github.com/gradely/mexpr/lexer"
	"github.com/gradely/mexpr/model"
	"github.com/gradely/mexpr/numscale"
	"github.com/gradely/mexpr/util"
)

/*
parser holds the state for a single parse: the token channel, one token of
lookahead, and the shared environment/options it consults for chemistry
mode and numeric canonicalization.
*/
type parser struct {
	tokens <-chan lexer.Token
	tok    lexer.Token

	env  *env.Stack
	opts config.Options
}

/*
Parse tokenizes and parses src, returning the root Node of the resulting
tree or a *util.ParseError describing the first failure.
*/
func Parse(src string, e *env.Stack, opts config.Options) (*model.Node, error) {
	if e == nil {
		e = env.NewStack()
	}

	p := &parser{
		tokens: lexer.Lex(src, e, lexer.Options{
			AllowThousandsSeparator: opts.AllowThousandsSeparator,
			IgnoreText:              opts.IgnoreText,
		}),
		env:  e,
		opts: opts,
	}
	p.advance()

	if p.tok.ID == lexer.TokenEOF {
		return nil, p.errorf(util.ErrCodeUnexpectedExpr, "empty expression")
	}

	root, err := p.parseComma()
	if err != nil {
		return nil, err
	}

	if p.tok.ID != lexer.TokenEOF {
		return nil, p.errorf(util.ErrCodeTrailingInput, "unexpected trailing input %q", p.tok.Val)
	}

	return root, nil
}

func (p *parser) advance() {
	tok, ok := <-p.tokens
	if !ok {
		p.tok = lexer.Token{ID: lexer.TokenEOF}
		return
	}
	if tok.ID == lexer.TokenError {
		p.tok = tok
		return
	}
	p.tok = tok
}

func (p *parser) errorf(code int, format string, args ...interface{}) error {
	return util.NewParseError(code, fmt.Sprintf(format, args...), p.tok.Line, p.tok.Pos)
}

func (p *parser) expect(id lexer.TokenID) error {
	if p.tok.ID == lexer.TokenError {
		return p.errorf(util.ErrCodeLexical, "%s", p.tok.Val)
	}
	if p.tok.ID != id {
		return p.errorf(util.ErrCodeSyntax, "expected %s but found %q", id, p.tok.Val)
	}
	p.advance()
	return nil
}

// ---------------------------------------------------------------------
// Grammar: comma > equal > relational > additive > multiplicative >
// exponential > subscript > unary > postfix > primary.
// ---------------------------------------------------------------------

func (p *parser) parseComma() (*model.Node, error) {
	first, err := p.parseEqual()
	if err != nil {
		return nil, err
	}

	if p.tok.ID != lexer.TokenCOMMA {
		return first, nil
	}

	children := []*model.Node{first}
	for p.tok.ID == lexer.TokenCOMMA {
		p.advance()
		next, err := p.parseEqual()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}

	return model.New(model.OpComma, children...), nil
}

func (p *parser) parseEqual() (*model.Node, error) {
	if isEqualOrRelational(p.tok.ID) {
		// Missing left operand: synthesize the underscore placeholder.
		left := model.NewLeaf(model.OpVar, "_")
		return p.parseEqualTail(left)
	}

	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	return p.parseEqualTail(left)
}

func (p *parser) parseEqualTail(left *model.Node) (*model.Node, error) {
	for p.tok.ID == lexer.TokenEQUALS || p.tok.ID == lexer.TokenRIGHTARROW {
		op := model.OpEql
		if p.tok.ID == lexer.TokenRIGHTARROW {
			op = model.OpRightArrow
		}
		p.advance()

		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = model.New(op, left, right)
	}
	return left, nil
}

func isEqualOrRelational(id lexer.TokenID) bool {
	switch id {
	case lexer.TokenEQUALS, lexer.TokenRIGHTARROW, lexer.TokenLT, lexer.TokenLE,
		lexer.TokenGT, lexer.TokenGE, lexer.TokenCOLON, lexer.TokenIN, lexer.TokenTO:
		return true
	}
	return false
}

func (p *parser) parseRelational() (*model.Node, error) {
	if isRelationalOnly(p.tok.ID) {
		left := model.NewLeaf(model.OpVar, "_")
		return p.parseRelationalTail(left)
	}

	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return p.parseRelationalTail(left)
}

func isRelationalOnly(id lexer.TokenID) bool {
	switch id {
	case lexer.TokenLT, lexer.TokenLE, lexer.TokenGT, lexer.TokenGE,
		lexer.TokenCOLON, lexer.TokenIN, lexer.TokenTO:
		return true
	}
	return false
}

func (p *parser) parseRelationalTail(left *model.Node) (*model.Node, error) {
	for isRelationalOnly(p.tok.ID) {
		op := relOp(p.tok.ID)
		p.advance()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = model.New(op, left, right)
	}
	return left, nil
}

func relOp(id lexer.TokenID) model.Op {
	switch id {
	case lexer.TokenLT:
		return model.OpLt
	case lexer.TokenLE:
		return model.OpLe
	case lexer.TokenGT:
		return model.OpGt
	case lexer.TokenGE:
		return model.OpGe
	case lexer.TokenCOLON:
		return model.OpColon
	case lexer.TokenIN:
		return model.OpIn
	case lexer.TokenTO:
		return model.OpTo
	}
	panic("mexpr: not a relational token")
}

func (p *parser) parseAdditive() (*model.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.tok.ID == lexer.TokenPLUS || p.tok.ID == lexer.TokenMINUS || p.tok.ID == lexer.TokenPM {
		op := model.OpAdd
		negate := p.tok.ID == lexer.TokenMINUS
		isPM := p.tok.ID == lexer.TokenPM
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		switch {
		case isPM:
			left = model.New(model.OpPM, left, right)
		case negate:
			left = addTerm(left, negateNode(right), op)
		default:
			left = addTerm(left, right, op)
		}
	}
	return left, nil
}

/*
addTerm appends right to left if left is already an ADD, otherwise starts a
new ADD node, keeping a flat n-ary addition chain (invariant I4).
*/
func addTerm(left, right *model.Node, op model.Op) *model.Node {
	if left.Op == model.OpAdd {
		left.Children = append(left.Children, right)
		return left
	}
	return model.New(model.OpAdd, left, right)
}

/*
negateNode implements unary-minus absorption: if e is already a product, -1
is pushed onto its argument list instead of wrapping it in a new MUL.
*/
func negateNode(e *model.Node) *model.Node {
	if e.Op == model.OpNum {
		return model.NewLeaf(model.OpNum, negateLexeme(e.Payload))
	}
	if e.Op == model.OpMul {
		children := append([]*model.Node{model.NewLeaf(model.OpNum, "-1")}, e.Children...)
		return model.New(model.OpMul, children...)
	}
	return model.New(model.OpMul, model.NewLeaf(model.OpNum, "-1"), e)
}

func negateLexeme(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + s
}

func (p *parser) parseMultiplicative() (*model.Node, error) {
	left, err := p.parseExponential()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.tok.ID == lexer.TokenTIMES:
			p.advance()
			right, err := p.parseExponential()
			if err != nil {
				return nil, err
			}
			left = mulTerm(left, right)
			left.ExplicitOp = true

		case p.tok.ID == lexer.TokenOVER:
			p.advance()
			right, err := p.parseExponential()
			if err != nil {
				return nil, err
			}
			left = model.New(model.OpMul, left, model.New(model.OpPow, right, model.NewLeaf(model.OpNum, "-1")))
			left.ExplicitOp = true

		case p.startsImplicitFactor():
			right, err := p.parseExponential()
			if err != nil {
				return nil, err
			}
			left = mulTerm(left, right)

		default:
			return left, nil
		}
	}
}

/*
mulTerm keeps a flat n-ary multiplication chain, matching addTerm's
treatment of ADD.
*/
func mulTerm(left, right *model.Node) *model.Node {
	if left.Op == model.OpMul {
		left.Children = append(left.Children, right)
		return left
	}
	return model.New(model.OpMul, left, right)
}

/*
startsImplicitFactor reports whether the current token can begin a factor
immediately following another factor with no explicit operator between
them, e.g. "2x" or "2(x+1)" or "2\sqrt{3}".
*/
func (p *parser) startsImplicitFactor() bool {
	switch p.tok.ID {
	case lexer.TokenNUMBER, lexer.TokenIDENTIFIER, lexer.TokenLPAREN, lexer.TokenLBRACKET,
		lexer.TokenFRAC, lexer.TokenSQRT, lexer.TokenVEC, lexer.TokenPIPE,
		lexer.TokenSIN, lexer.TokenCOS, lexer.TokenTAN, lexer.TokenSEC, lexer.TokenCOT, lexer.TokenCSC,
		lexer.TokenARCSIN, lexer.TokenARCCOS, lexer.TokenARCTAN,
		lexer.TokenLN, lexer.TokenLG, lexer.TokenLOG, lexer.TokenM, lexer.TokenEXP:
		return true
	}
	return false
}

func (p *parser) parseExponential() (*model.Node, error) {
	left, err := p.parseSubscript()
	if err != nil {
		return nil, err
	}

	for p.tok.ID == lexer.TokenCARET {
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		if isTrigFunction(left.Op) && isNegativeOne(right) {
			// Trigonometric inverse rewrite: sin^{-1}(x) -> ARCSIN(x).
			left = model.New(inverseOf(left.Op), left.Children...)
			continue
		}

		if isDegreeSentinel(unwrapParen(right)) {
			left = model.New(model.OpMul, left, model.NewLeaf(model.OpVar, "\\circ"))
			continue
		}

		left = model.New(model.OpPow, left, right)
	}
	return left, nil
}

func isTrigFunction(op model.Op) bool {
	switch op {
	case model.OpSin, model.OpCos, model.OpTan, model.OpSec, model.OpCot, model.OpCsc:
		return true
	}
	return false
}

func inverseOf(op model.Op) model.Op {
	switch op {
	case model.OpSin:
		return model.OpArcsin
	case model.OpCos:
		return model.OpArccos
	case model.OpTan:
		return model.OpArctan
	}
	return op
}

func isNegativeOne(n *model.Node) bool {
	return n.Op == model.OpNum && n.Payload == "-1"
}

func isDegreeSentinel(n *model.Node) bool {
	return n.Op == model.OpVar && n.Payload == "\\circ"
}

func (p *parser) parseSubscript() (*model.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.ID == lexer.TokenUNDERSCORE {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = model.New(model.OpSubscript, left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (*model.Node, error) {
	switch p.tok.ID {
	case lexer.TokenPLUS:
		p.advance()
		return p.parseUnary()
	case lexer.TokenMINUS:
		p.advance()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negateNode(e), nil
	case lexer.TokenPM:
		p.advance()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpPM, model.NewLeaf(model.OpNum, "0"), e), nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (*model.Node, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok.ID {
		case lexer.TokenPERCENT:
			p.advance()
			e = model.New(model.OpPercent, e)
		case lexer.TokenBANG:
			p.advance()
			e = model.New(model.OpFact, e)
		default:
			return p.maybeMixedFraction(e)
		}
	}
}

/*
maybeMixedFraction detects "n \frac{a}{b}" (no explicit operator between an
integer/chemistry coefficient and a following fraction) and rewrites it to
ADD(n, frac), tagged IsMixedFraction. A bare NUM lead is always accepted;
an ADD/SUB lead is accepted only when config.Options.PermissiveMixedFractions
is set, since that surface form is ambiguous with implicit multiplication.
Any other lead is returned unchanged, leaving the fraction to be read as an
implicit factor.
*/
func (p *parser) maybeMixedFraction(lead *model.Node) (*model.Node, error) {
	if p.tok.ID != lexer.TokenFRAC {
		return lead, nil
	}

	isBareInt := lead.Op == model.OpNum
	if !isBareInt && !p.opts.PermissiveMixedFractions {
		return lead, nil
	}
	if !isBareInt && lead.Op != model.OpAdd && lead.Op != model.OpSub {
		return lead, nil
	}

	frac, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if frac.Op != model.OpMul || !frac.IsFraction {
		return nil, p.errorf(util.ErrCodeUnexpectedExpr, "expected a fraction")
	}

	if strings.HasPrefix(lead.Payload, "-") && isBareInt {
		frac = negateNode(frac)
	}

	result := model.New(model.OpAdd, lead, frac)
	result.IsMixedFraction = true
	return result, nil
}

func (p *parser) parsePrimary() (*model.Node, error) {
	switch p.tok.ID {
	case lexer.TokenNUMBER:
		return p.parseNumber()

	case lexer.TokenIDENTIFIER:
		return p.parseIdentifierPrimary()

	case lexer.TokenLPAREN:
		return p.parseBracketed(lexer.TokenLPAREN, lexer.TokenRPAREN, '(', ')')

	case lexer.TokenLBRACKET:
		return p.parseBracketed(lexer.TokenLBRACKET, lexer.TokenRBRACKET, '[', ']')

	case lexer.TokenLBRACE:
		return p.parseBracketed(lexer.TokenLBRACE, lexer.TokenRBRACE, '{', '}')

	case lexer.TokenPIPE:
		p.advance()
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenPIPE); err != nil {
			return nil, err
		}
		return model.New(model.OpAbs, inner), nil

	case lexer.TokenFRAC:
		return p.parseFrac()

	case lexer.TokenBINOM:
		return p.parseBinom()

	case lexer.TokenSQRT:
		return p.parseSqrt()

	case lexer.TokenVEC:
		p.advance()
		arg, err := p.parseBraceGroup()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpVec, arg), nil

	case lexer.TokenSIN, lexer.TokenCOS, lexer.TokenTAN, lexer.TokenSEC, lexer.TokenCOT, lexer.TokenCSC:
		return p.parseTrig()

	case lexer.TokenLN:
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpLog, model.NewLeaf(model.OpVar, "e"), unwrapParen(arg)), nil

	case lexer.TokenLG:
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpLog, model.NewLeaf(model.OpNum, "10"), unwrapParen(arg)), nil

	case lexer.TokenLOG:
		return p.parseLog()

	case lexer.TokenEXP:
		p.advance()
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpExp, unwrapParen(arg)), nil

	case lexer.TokenLIM:
		return p.parseLim()

	case lexer.TokenSUM, lexer.TokenINT, lexer.TokenPROD:
		return p.parseBigOp()

	case lexer.TokenEXISTS:
		p.advance()
		inner, err := p.parseEqual()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpExists, inner), nil

	case lexer.TokenFORALL:
		p.advance()
		inner, err := p.parseComma()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpForall, inner), nil

	case lexer.TokenM:
		p.advance()
		arg, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		return model.New(model.OpM, arg), nil

	case lexer.TokenBEGIN:
		return p.parseMatrix()

	case lexer.TokenDEGREE:
		p.advance()
		return model.NewLeaf(model.OpVar, "\\circ"), nil

	case lexer.TokenError:
		code := util.ErrCodeLexical
		if strings.Contains(p.tok.Val, "thousands separator") {
			code = util.ErrCodeNumberFormat
		}
		return nil, p.errorf(code, "%s", p.tok.Val)
	}

	return nil, p.errorf(util.ErrCodeUnexpectedExpr, "unexpected token %q", p.tok.Val)
}

func (p *parser) parseNumber() (*model.Node, error) {
	lexeme := p.tok.Val
	hadThousands := p.tok.HadThousands
	loc := model.Location{Line: p.tok.Line, Column: p.tok.Pos}
	format := model.FormatInteger
	if strings.Contains(lexeme, ".") {
		format = model.FormatDecimal
	}
	p.advance()

	if p.opts.DecimalPlaces >= 0 {
		scaled, err := numscale.Scale(lexeme, p.opts.DecimalPlaces)
		if err != nil {
			return nil, p.errorf(util.ErrCodeNumberFormat, "invalid numeric literal %q", lexeme)
		}
		lexeme = scaled
	}

	n := model.NewLeaf(model.OpNum, lexeme)
	n.HasThousands = hadThousands
	n.NumberFormat = format
	n.Location = loc
	return n, nil
}

/*
parseIdentifierPrimary handles a bare variable and, when chemistry mode is
active (the environment has a registered element), the ion-exponent and
symbol-concatenation normalizations for chemical formulas.
*/
func (p *parser) parseIdentifierPrimary() (*model.Node, error) {
	name := p.tok.Val
	loc := model.Location{Line: p.tok.Line, Column: p.tok.Pos}
	p.advance()

	node := model.NewLeaf(model.OpVar, name)
	node.Location = loc

	if p.env != nil && p.env.HasChemistry() {
		if sym, ok := p.env.Lookup(name); ok && sym.IsElement {
			return p.parseChemistrySymbol(node)
		}
	}

	if p.tok.ID == lexer.TokenUNDERSCORE {
		return node, nil // let parseSubscript attach the subscript normally
	}

	return node, nil
}

/*
parseChemistrySymbol handles a trailing ion exponent (Al^{3+}, Na^+) by
rewriting it to POW(elem, ADD(coeff)) or POW(elem, SUB(coeff)), with a
coefficient of 1 when none is written, and concatenates adjacent
element symbols under ADD (NaCl -> ADD(Na, Cl)).
*/
func (p *parser) parseChemistrySymbol(elem *model.Node) (*model.Node, error) {
	result := elem

	if p.tok.ID == lexer.TokenCARET {
		p.advance()
		ion, err := p.parseIonExponentFor(elem)
		if err != nil {
			return nil, err
		}
		result = ion
	}

	for p.tok.ID == lexer.TokenIDENTIFIER {
		if sym, ok := p.env.Lookup(p.tok.Val); !ok || !sym.IsElement {
			break
		}
		next := model.NewLeaf(model.OpVar, p.tok.Val)
		p.advance()

		if p.tok.ID == lexer.TokenCARET {
			p.advance()
			ion, err := p.parseIonExponentFor(next)
			if err != nil {
				return nil, err
			}
			next = ion
		}

		result = addTerm(result, next, model.OpAdd)
	}

	return result, nil
}

func (p *parser) parseIonExponentFor(elem *model.Node) (*model.Node, error) {
	hasBrace := p.tok.ID == lexer.TokenLBRACE
	if hasBrace {
		p.advance()
	}

	coeff := "1"
	if p.tok.ID == lexer.TokenNUMBER {
		coeff = p.tok.Val
		p.advance()
	}

	node, err := p.ionSignedNode(elem, coeff)
	if err != nil {
		return nil, err
	}

	if hasBrace {
		if err := p.expect(lexer.TokenRBRACE); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) ionSignedNode(elem *model.Node, coeff string) (*model.Node, error) {
	switch p.tok.ID {
	case lexer.TokenPLUS:
		p.advance()
		return model.New(model.OpPow, elem, model.New(model.OpAdd, model.NewLeaf(model.OpNum, coeff))), nil
	case lexer.TokenMINUS:
		p.advance()
		return model.New(model.OpPow, elem, model.New(model.OpSub, model.NewLeaf(model.OpNum, coeff))), nil
	}
	return nil, p.errorf(util.ErrCodeSyntax, "expected ion charge sign after exponent")
}

func (p *parser) parseBraceGroup() (*model.Node, error) {
	if err := p.expect(lexer.TokenLBRACE); err != nil {
		return nil, err
	}
	inner, err := p.parseComma()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRBRACE); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *parser) parseBracketed(open, close lexer.TokenID, lb, rb byte) (*model.Node, error) {
	p.advance()
	inner, err := p.parseComma()
	if err != nil {
		return nil, err
	}
	if err := p.expect(close); err != nil {
		return nil, err
	}

	if inner.Op == model.OpComma {
		if len(inner.Children) != 2 && (open == lexer.TokenLBRACKET) {
			return nil, p.errorf(util.ErrCodeIntervalBracket, "expected exactly two elements inside brackets")
		}
		if p.opts.AllowInterval && len(inner.Children) == 2 && (open == lexer.TokenLBRACKET || open == lexer.TokenLPAREN) {
			iv := model.New(model.OpInterval, inner)
			iv.LBrk, iv.RBrk = lb, rb
			return iv, nil
		}
		list := model.New(model.OpList, inner)
		list.LBrk, list.RBrk = lb, rb
		return list, nil
	}

	wrapped := model.New(model.OpParen, inner)
	wrapped.LBrk, wrapped.RBrk = lb, rb
	return wrapped, nil
}

/*
parseFrac parses \frac{a}{b} and rewrites it to MUL(a, POW(b, -1)), tagged
IsFraction, per the fraction-to-reciprocal normalization.
*/
func (p *parser) parseFrac() (*model.Node, error) {
	p.advance()
	num, err := p.parseBraceGroup()
	if err != nil {
		return nil, err
	}
	den, err := p.parseBraceGroup()
	if err != nil {
		return nil, err
	}

	reciprocal := model.New(model.OpPow, den, model.NewLeaf(model.OpNum, "-1"))
	result := model.New(model.OpMul, num, reciprocal)
	result.IsFraction = true
	return result, nil
}

func (p *parser) parseBinom() (*model.Node, error) {
	p.advance()
	n, err := p.parseBraceGroup()
	if err != nil {
		return nil, err
	}
	k, err := p.parseBraceGroup()
	if err != nil {
		return nil, err
	}

	nMinusK := model.New(model.OpAdd, n, negateNode(k))
	denom := model.New(model.OpMul, model.New(model.OpFact, k), model.New(model.OpFact, nMinusK))
	result := model.New(model.OpMul, model.New(model.OpFact, n), model.New(model.OpPow, denom, model.NewLeaf(model.OpNum, "-1")))
	result.IsBinomial = true
	return result, nil
}

/*
parseSqrt parses \sqrt{x} and \sqrt[n]{x}, rewriting both to a POW node
whose third child (when present) is the explicit root index, per the
square-root-to-power normalization. The renderer (render.Render) inverts
this back into \sqrt / \sqrt[n]{} notation.
*/
func (p *parser) parseSqrt() (*model.Node, error) {
	p.advance()

	var index *model.Node
	if p.tok.ID == lexer.TokenLBRACKET {
		p.advance()
		idx, err := p.parseComma()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenRBRACKET); err != nil {
			return nil, err
		}
		index = idx
	}

	radicand, err := p.parseBraceGroup()
	if err != nil {
		return nil, err
	}

	exponent := model.New(model.OpPow, model.NewLeaf(model.OpNum, "2"), model.NewLeaf(model.OpNum, "-1"))
	if index != nil {
		return model.New(model.OpPow, radicand, exponent, index), nil
	}
	return model.New(model.OpPow, radicand, exponent), nil
}

func (p *parser) parseTrig() (*model.Node, error) {
	op := trigOp(p.tok.ID)
	p.advance()

	if p.tok.ID == lexer.TokenCARET {
		p.advance()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		arg, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		arg = unwrapParen(arg)
		if inv := inverseOf(op); inv != op && isNegativeOne(unwrapParen(exp)) {
			return model.New(inv, arg), nil
		}
		return model.New(model.OpPow, model.New(op, arg), exp), nil
	}

	arg, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	return model.New(op, unwrapParen(arg)), nil
}

/*
unwrapParen strips one layer of explicit PAREN wrapping from a function
argument: "sin(x)" and "sin{x}" both render identically since the function
notation already supplies its own enclosing braces.
*/
func unwrapParen(n *model.Node) *model.Node {
	if n.Op == model.OpParen && len(n.Children) == 1 {
		return n.Children[0]
	}
	return n
}

func trigOp(id lexer.TokenID) model.Op {
	switch id {
	case lexer.TokenSIN:
		return model.OpSin
	case lexer.TokenCOS:
		return model.OpCos
	case lexer.TokenTAN:
		return model.OpTan
	case lexer.TokenSEC:
		return model.OpSec
	case lexer.TokenCOT:
		return model.OpCot
	case lexer.TokenCSC:
		return model.OpCsc
	}
	panic("mexpr: not a trig token")
}

func (p *parser) parseLog() (*model.Node, error) {
	p.advance()

	base := model.NewLeaf(model.OpVar, "e")
	if p.tok.ID == lexer.TokenUNDERSCORE {
		p.advance()
		b, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		base = b
	}

	arg, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return model.New(model.OpLog, base, unwrapParen(arg)), nil
}

func (p *parser) parseLim() (*model.Node, error) {
	p.advance()
	if err := p.expect(lexer.TokenUNDERSCORE); err != nil {
		return nil, err
	}
	under, err := p.parseBraceOrRelational()
	if err != nil {
		return nil, err
	}
	body, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return model.New(model.OpLim, under, body), nil
}

/*
parseBraceOrRelational parses a brace-wrapped or bare relational
expression, used for "\lim_{x \to a}" where the braces are optional but
the "\to" must be parsed at relational precedence, not unary.
*/
func (p *parser) parseBraceOrRelational() (*model.Node, error) {
	if p.tok.ID != lexer.TokenLBRACE {
		return p.parseRelational()
	}
	p.advance()
	inner, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRBRACE); err != nil {
		return nil, err
	}
	return inner, nil
}

/*
parseBraceOrEqual is parseBraceOrRelational's sibling for the sum/product/
integral lower bound "i=1", where "=" must be parsed at equal precedence.
*/
func (p *parser) parseBraceOrEqual() (*model.Node, error) {
	if p.tok.ID != lexer.TokenLBRACE {
		return p.parseEqual()
	}
	p.advance()
	inner, err := p.parseEqual()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRBRACE); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *parser) parseBigOp() (*model.Node, error) {
	op := bigOp(p.tok.ID)
	p.advance()

	var lower, upper *model.Node
	if p.tok.ID == lexer.TokenUNDERSCORE {
		p.advance()
		l, err := p.parseBraceOrEqual()
		if err != nil {
			return nil, err
		}
		lower = l

		if err := p.expect(lexer.TokenCARET); err != nil {
			return nil, err
		}
		u, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		upper = u
	}

	body, err := p.parseComma()
	if err != nil {
		return nil, err
	}

	if lower != nil {
		return model.New(op, lower, upper, body), nil
	}
	return model.New(op, body), nil
}

func bigOp(id lexer.TokenID) model.Op {
	switch id {
	case lexer.TokenSUM:
		return model.OpSum
	case lexer.TokenINT:
		return model.OpInt
	case lexer.TokenPROD:
		return model.OpProd
	}
	panic("mexpr: not a big-operator token")
}

/*
parseMatrix parses \begin{...matrix} row (\\ row)* \end{...matrix} into
MATRIX(ROW(COL(e)...)...).
*/
func (p *parser) parseMatrix() (*model.Node, error) {
	p.advance()
	if err := p.expect(lexer.TokenLBRACE); err != nil {
		return nil, err
	}
	if p.tok.ID != lexer.TokenIDENTIFIER {
		return nil, p.errorf(util.ErrCodeSyntax, "expected environment name after \\begin{")
	}
	envName := ""
	for p.tok.ID == lexer.TokenIDENTIFIER {
		envName += p.tok.Val
		p.advance()
	}
	if err := p.expect(lexer.TokenRBRACE); err != nil {
		return nil, err
	}

	var rows []*model.Node
	row, err := p.parseMatrixRow()
	if err != nil {
		return nil, err
	}
	rows = append(rows, row)

	for p.tok.ID == lexer.TokenDBLBACKSLASH {
		p.advance()
		row, err := p.parseMatrixRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := p.expect(lexer.TokenEND); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenLBRACE); err != nil {
		return nil, err
	}
	endName := ""
	for p.tok.ID == lexer.TokenIDENTIFIER {
		endName += p.tok.Val
		p.advance()
	}
	if endName != envName {
		return nil, p.errorf(util.ErrCodeSyntax, "mismatched \\end{%s}, expected \\end{%s}", endName, envName)
	}
	if err := p.expect(lexer.TokenRBRACE); err != nil {
		return nil, err
	}

	return model.New(model.OpMatrix, rows...), nil
}

func (p *parser) parseMatrixRow() (*model.Node, error) {
	var cols []*model.Node

	cell, err := p.parseEqual()
	if err != nil {
		return nil, err
	}
	cols = append(cols, model.New(model.OpCol, cell))

	for p.tok.ID == lexer.TokenAMP {
		p.advance()
		cell, err := p.parseEqual()
		if err != nil {
			return nil, err
		}
		cols = append(cols, model.New(model.OpCol, cell))
	}

	return model.New(model.OpRow, cols...), nil
}
