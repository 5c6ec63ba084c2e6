package parser

import (
	"testing"

	"github.com/gradely/mexpr/config"
	"github.com/gradely/mexpr/env"
	"github.com/gradely/mexpr/model"
	"github.com/gradely/mexpr/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string, opts config.Options) *model.Node {
	t.Helper()
	n, err := Parse(src, nil, opts)
	require.NoError(t, err)
	return n
}

func TestAdditionIsSpaceInsensitive(t *testing.T) {
	p := pool.New()
	opts := config.Default()

	id1 := p.Intern(mustParse(t, "10 + 20", opts))
	id2 := p.Intern(mustParse(t, "10+20", opts))
	id3 := p.Intern(model.New(model.OpAdd, model.NewLeaf(model.OpNum, "10"), model.NewLeaf(model.OpNum, "20")))

	assert.Equal(t, id1, id2)
	assert.Equal(t, id1, id3)
}

func TestFractionRewrittenToReciprocalMultiplication(t *testing.T) {
	n := mustParse(t, `\frac{1}{2}`, config.Default())

	assert.Equal(t, model.OpMul, n.Op)
	assert.True(t, n.IsFraction)
	assert.Equal(t, model.OpPow, n.Children[1].Op)
	assert.Equal(t, "-1", n.Children[1].Children[1].Payload)
}

func TestSqrtRewrittenToPower(t *testing.T) {
	n := mustParse(t, `\sqrt{x}`, config.Default())

	assert.Equal(t, model.OpPow, n.Op)
	assert.Equal(t, "2", n.Children[1].Children[0].Payload)
}

func TestNthRootCarriesIndex(t *testing.T) {
	n := mustParse(t, `\sqrt[3]{x}`, config.Default())

	assert.Equal(t, model.OpPow, n.Op)
	require.Len(t, n.Children, 3)
	assert.Equal(t, "3", n.Children[2].Payload)
}

func TestUnaryMinusAbsorbedIntoProduct(t *testing.T) {
	n := mustParse(t, `-2x`, config.Default())

	assert.Equal(t, model.OpMul, n.Op)
	assert.Equal(t, "-2", n.Children[0].Payload)
}

func TestTrigInverseRewrite(t *testing.T) {
	n := mustParse(t, `\sin^{-1}(x)`, config.Default())
	assert.Equal(t, model.OpArcsin, n.Op)
}

func TestLnDefaultsToBaseE(t *testing.T) {
	n := mustParse(t, `\ln x`, config.Default())
	assert.Equal(t, model.OpLog, n.Op)
	assert.Equal(t, "e", n.Children[0].Payload)
}

func TestLogWithExplicitBase(t *testing.T) {
	n := mustParse(t, `\log_3 x`, config.Default())
	assert.Equal(t, model.OpLog, n.Op)
	assert.Equal(t, "3", n.Children[0].Payload)
}

func TestBinomialExpansion(t *testing.T) {
	n := mustParse(t, `\binom{5}{2}`, config.Default())
	assert.Equal(t, model.OpMul, n.Op)
	assert.True(t, n.IsBinomial)
}

func TestMixedFractionIsTagged(t *testing.T) {
	n := mustParse(t, `3\frac{1}{2}`, config.Default())
	assert.Equal(t, model.OpAdd, n.Op)
	assert.True(t, n.IsMixedFraction)
}

func TestThousandsSeparatorValid(t *testing.T) {
	opts := config.Default()
	opts.AllowThousandsSeparator = true
	n := mustParse(t, "1,234.5", opts)
	assert.Equal(t, "1234.5", n.Payload)
}

func TestThousandsSeparatorInvalidIsError(t *testing.T) {
	opts := config.Default()
	opts.AllowThousandsSeparator = true
	_, err := Parse("1,23", nil, opts)
	assert.Error(t, err)
}

func TestChemistryModeSymbolConcatenation(t *testing.T) {
	s := env.NewStack()
	s.PushEnv(map[string]env.Symbol{
		"Na": {Name: "Sodium", IsElement: true},
		"Cl": {Name: "Chlorine", IsElement: true},
	})

	n, err := Parse("NaCl", s, config.Default())
	require.NoError(t, err)
	assert.Equal(t, model.OpAdd, n.Op)
	assert.Equal(t, "Na", n.Children[0].Payload)
	assert.Equal(t, "Cl", n.Children[1].Payload)
}

func TestChemistryIonExponent(t *testing.T) {
	s := env.NewStack()
	s.PushEnv(map[string]env.Symbol{"Al": {Name: "Aluminium", IsElement: true}})

	n, err := Parse("Al^{3+}", s, config.Default())
	require.NoError(t, err)
	assert.Equal(t, model.OpPow, n.Op)
	assert.Equal(t, model.OpAdd, n.Children[1].Op)
	assert.Equal(t, "3", n.Children[1].Children[0].Payload)
}

func TestIntervalWhenAllowed(t *testing.T) {
	opts := config.Default()
	opts.AllowInterval = true
	n := mustParse(t, "[1,2]", opts)
	assert.Equal(t, model.OpInterval, n.Op)
}

func TestTripleElementBracketIsError(t *testing.T) {
	_, err := Parse("[1,2,3]", nil, config.Default())
	assert.Error(t, err)
}

func TestSynthesizedUnderscoreForMissingLeftOperand(t *testing.T) {
	n := mustParse(t, "= 5", config.Default())
	assert.Equal(t, model.OpEql, n.Op)
	assert.Equal(t, model.OpVar, n.Children[0].Op)
	assert.Equal(t, "_", n.Children[0].Payload)
}

func TestMatrixEnvironment(t *testing.T) {
	n := mustParse(t, `\begin{matrix}1&2\\3&4\end{matrix}`, config.Default())
	assert.Equal(t, model.OpMatrix, n.Op)
	require.Len(t, n.Children, 2)
	assert.Equal(t, model.OpRow, n.Children[0].Op)
	require.Len(t, n.Children[0].Children, 2)
}

func TestTrailingInputIsError(t *testing.T) {
	_, err := Parse("1 + 2 )", nil, config.Default())
	assert.Error(t, err)
}

func TestEmptyExpressionIsError(t *testing.T) {
	_, err := Parse("", nil, config.Default())
	assert.Error(t, err)
}

func TestLimitWithArrowBound(t *testing.T) {
	n := mustParse(t, `\lim_{x \to 0} x`, config.Default())
	assert.Equal(t, model.OpLim, n.Op)
	assert.Equal(t, model.OpTo, n.Children[0].Op)
}

func TestSumWithBounds(t *testing.T) {
	n := mustParse(t, `\sum_{i=1}^{n} i`, config.Default())
	assert.Equal(t, model.OpSum, n.Op)
	require.Len(t, n.Children, 3)
	assert.Equal(t, model.OpEql, n.Children[0].Op)
	assert.Equal(t, model.OpParen, n.Children[1].Op)
	assert.Equal(t, "n", n.Children[1].Children[0].Payload)
}

func TestVecWrapsArgument(t *testing.T) {
	n := mustParse(t, `\vec{v}`, config.Default())
	assert.Equal(t, model.OpVec, n.Op)
	assert.Equal(t, "v", n.Children[0].Payload)
}

func TestAbsoluteValue(t *testing.T) {
	n := mustParse(t, `|x|`, config.Default())
	assert.Equal(t, model.OpAbs, n.Op)
}

func TestPercentAndFactorial(t *testing.T) {
	pct := mustParse(t, `5%`, config.Default())
	assert.Equal(t, model.OpPercent, pct.Op)

	fact := mustParse(t, `5!`, config.Default())
	assert.Equal(t, model.OpFact, fact.Op)
}

func TestForallAndExists(t *testing.T) {
	n := mustParse(t, `\forall x`, config.Default())
	assert.Equal(t, model.OpForall, n.Op)

	m := mustParse(t, `\exists x=1`, config.Default())
	assert.Equal(t, model.OpExists, m.Op)
}

func TestMolarMassMarker(t *testing.T) {
	n := mustParse(t, `M(NaCl)`, config.Default())
	assert.Equal(t, model.OpM, n.Op)
}
