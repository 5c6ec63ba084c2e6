package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndCallPlugin(t *testing.T) {
	RegisterPlugin("mexpr_test_double", func(n *Node) (float64, error) {
		return 2, nil
	}, "returns the constant 2")

	n := NewLeaf(OpNum, "21")
	ret, err := n.Call("mexpr_test_double")

	require.NoError(t, err)
	assert.Equal(t, float64(2), ret)
}

func TestCallUnknownPluginErrors(t *testing.T) {
	n := NewLeaf(OpNum, "1")
	_, err := n.Call("mexpr_test_does_not_exist")
	assert.Error(t, err)
}

func TestCallPropagatesFunctionError(t *testing.T) {
	RegisterPlugin("mexpr_test_fails", func(n *Node) (interface{}, error) {
		return nil, errors.New("boom")
	}, "")

	n := NewLeaf(OpNum, "1")
	_, err := n.Call("mexpr_test_fails")
	assert.EqualError(t, err, "boom")
}

func TestCallTwoNodeEquivalencePredicate(t *testing.T) {
	RegisterPlugin("mexpr_test_equiv", func(a, b *Node) (bool, error) {
		return a.Payload == b.Payload, nil
	}, "")

	a := NewLeaf(OpNum, "1")
	b := NewLeaf(OpNum, "1")

	ret, err := a.Call("mexpr_test_equiv", a, b)
	require.NoError(t, err)
	assert.Equal(t, true, ret)
}

func TestDocString(t *testing.T) {
	RegisterPlugin("mexpr_test_doc", func(n *Node) (float64, error) { return 0, nil }, "a docstring")
	p, ok := LookupPlugin("mexpr_test_doc")
	require.True(t, ok)
	assert.Equal(t, "a docstring", p.DocString())
}
