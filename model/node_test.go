package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsStructural(t *testing.T) {
	a := New(OpAdd, NewLeaf(OpNum, "1"), NewLeaf(OpVar, "x"))
	b := New(OpAdd, NewLeaf(OpNum, "1"), NewLeaf(OpVar, "x"))
	c := New(OpAdd, NewLeaf(OpNum, "2"), NewLeaf(OpVar, "x"))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNewPanicsOnBinaryArityMismatch(t *testing.T) {
	assert.Panics(t, func() {
		New(OpEql, NewLeaf(OpNum, "1"))
	})
}

func TestNewLeafPanicsOnNonLeafOp(t *testing.T) {
	assert.Panics(t, func() {
		NewLeaf(OpAdd, "x")
	})
}

func TestStringDump(t *testing.T) {
	n := New(OpAdd, NewLeaf(OpNum, "1"), NewLeaf(OpVar, "x"))
	s := n.String()
	assert.Contains(t, s, "ADD")
	assert.Contains(t, s, "NUM: 1")
	assert.Contains(t, s, "VAR: x")
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "ADD", OpAdd.String())
	assert.Equal(t, "NUM", OpNum.String())
}
