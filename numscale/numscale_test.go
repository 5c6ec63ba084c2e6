package numscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleRoundsHalfUp(t *testing.T) {
	out, err := Scale("1.005", 2)
	assert.NoError(t, err)
	assert.Equal(t, "1.01", out)
}

func TestScaleStripsThousandsSeparators(t *testing.T) {
	out, err := Scale("1,234.5", 1)
	assert.NoError(t, err)
	assert.Equal(t, "1234.5", out)
}

func TestScaleNegativePlacesLeavesLexemeUnscaled(t *testing.T) {
	out, err := Scale("3.14159", -1)
	assert.NoError(t, err)
	assert.Equal(t, "3.14159", out)
}

func TestScaleRejectsInvalidLexeme(t *testing.T) {
	_, err := Scale("not-a-number", 2)
	assert.Error(t, err)
}
