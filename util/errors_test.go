package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError(ErrCodeSyntax, "unexpected token '+'", 1, 4)

	assert.Equal(t, 1001, err.Code)
	assert.Contains(t, err.Error(), "1001")
	assert.Contains(t, err.Error(), "unexpected token")

	obj := err.ToJSONObject()
	assert.Equal(t, 1001, obj["code"])
}

func TestAssertPanicsOnFalse(t *testing.T) {
	assert.Panics(t, func() { Assert(false, "boom") })
	assert.NotPanics(t, func() { Assert(true, "fine") })
}

func TestAssertTruePanicsWithFormattedMessage(t *testing.T) {
	assert.PanicsWithValue(t, "bad value: 5", func() {
		AssertTrue(false, "bad value: %d", 5)
	})
}
