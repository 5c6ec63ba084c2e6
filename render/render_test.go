package render

import (
	"testing"

	"github.com/gradely/mexpr/config"
	"github.com/gradely/mexpr/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSrc(t *testing.T, src string) string {
	t.Helper()
	n, err := parser.Parse(src, nil, config.Default())
	require.NoError(t, err)
	out, err := Render(n)
	require.NoError(t, err)
	return out
}

func TestRenderPower(t *testing.T) {
	assert.Equal(t, "{e^{2}}", renderSrc(t, "e^2"))
}

func TestRenderFractionAsDfrac(t *testing.T) {
	assert.Equal(t, "\\dfrac{1}{2}", renderSrc(t, `\frac{1}{2}`))
}

func TestRenderEqualityWithParenthesizedAddition(t *testing.T) {
	assert.Equal(t, "x = 2(y + 1)", renderSrc(t, "x=2(y+1)"))
}

func TestRenderSqrtRoundTrip(t *testing.T) {
	assert.Equal(t, "\\sqrt{x}", renderSrc(t, `\sqrt{x}`))
}

func TestRenderNthRootRoundTrip(t *testing.T) {
	assert.Equal(t, "\\sqrt[3]{x}", renderSrc(t, `\sqrt[3]{x}`))
}

func TestRenderArcsin(t *testing.T) {
	assert.Equal(t, "\\sin^{-1}{x}", renderSrc(t, `\sin^{-1}(x)`))
}

func TestRenderBinomial(t *testing.T) {
	assert.Equal(t, "\\binom{5}{2}", renderSrc(t, `\binom{5}{2}`))
}

func TestRenderMultiplicationElidesBeforeParenthesis(t *testing.T) {
	assert.Equal(t, "2(y + 1)", renderSrc(t, "2(y+1)"))
}

func TestRenderThousandsSeparatorRoundTrip(t *testing.T) {
	opts := config.Default()
	opts.AllowThousandsSeparator = true

	n, err := parser.Parse("1,234,567.5", nil, opts)
	require.NoError(t, err)
	out, err := Render(n)
	require.NoError(t, err)
	assert.Equal(t, "1,234,567.5", out)
}
