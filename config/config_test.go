package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := Default()

	assert.Equal(t, -1, opts.DecimalPlaces)
	assert.False(t, opts.AllowThousandsSeparator)
	assert.False(t, opts.AllowInterval)
	assert.False(t, opts.IgnoreText)
	assert.False(t, opts.PermissiveMixedFractions)
}
