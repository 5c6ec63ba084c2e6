package lexer

import (
	"testing"

	"github.com/gradely/mexpr/env"
	"github.com/stretchr/testify/assert"
)

func ids(toks []Token) []TokenID {
	var out []TokenID
	for _, t := range toks {
		out = append(out, t.ID)
	}
	return out
}

func TestLexSimpleAddition(t *testing.T) {
	toks := LexToList("10 + 20", nil, Options{})
	assert.Equal(t, []TokenID{TokenNUMBER, TokenPLUS, TokenNUMBER, TokenEOF}, ids(toks))
	assert.Equal(t, "10", toks[0].Val)
	assert.Equal(t, "20", toks[2].Val)
}

func TestLexWhitespaceCommandsAreSkipped(t *testing.T) {
	toks := LexToList(`\left(x\right)`, nil, Options{})
	assert.Equal(t, []TokenID{TokenLPAREN, TokenIDENTIFIER, TokenRPAREN, TokenEOF}, ids(toks))
}

func TestLexFracCommand(t *testing.T) {
	toks := LexToList(`\frac{1}{2}`, nil, Options{})
	assert.Equal(t, TokenFRAC, toks[0].ID)
}

func TestLexThousandsSeparator(t *testing.T) {
	toks := LexToList("1,234.5", nil, Options{AllowThousandsSeparator: true})
	assert.Equal(t, TokenNUMBER, toks[0].ID)
	assert.Equal(t, "1234.5", toks[0].Val)
	assert.True(t, toks[0].HadThousands)
}

func TestLexNbspIsWhitespace(t *testing.T) {
	toks := LexToList("1&nbsp;+&nbsp;2", nil, Options{})
	assert.Equal(t, []TokenID{TokenNUMBER, TokenPLUS, TokenNUMBER, TokenEOF}, ids(toks))
}

func TestLexMisplacedThousandsSeparator(t *testing.T) {
	toks := LexToList("1,23", nil, Options{AllowThousandsSeparator: true})
	assert.Equal(t, TokenError, toks[len(toks)-1].ID)
}

func TestLexIdentifierExtendedByEnvironment(t *testing.T) {
	s := env.NewStack()
	s.PushEnv(map[string]env.Symbol{"Na": {Name: "Sodium", IsElement: true}})

	toks := LexToList("Na", s, Options{})
	assert.Equal(t, TokenIDENTIFIER, toks[0].ID)
	assert.Equal(t, "Na", toks[0].Val)
}

func TestLexLeadingDotNumber(t *testing.T) {
	toks := LexToList(".5", nil, Options{})
	assert.Equal(t, "0.5", toks[0].Val)
}

func TestLexUnknownCommandIsIdentifier(t *testing.T) {
	toks := LexToList(`\theta`, nil, Options{})
	assert.Equal(t, TokenIDENTIFIER, toks[0].ID)
	assert.Equal(t, "theta", toks[0].Val)
}

func TestLexRelationalOperators(t *testing.T) {
	toks := LexToList("a <= b", nil, Options{})
	assert.Equal(t, []TokenID{TokenIDENTIFIER, TokenLE, TokenIDENTIFIER, TokenEOF}, ids(toks))
}
