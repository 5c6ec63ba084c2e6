package pool

import (
	"testing"

	"github.com/gradely/mexpr/model"
	"github.com/stretchr/testify/assert"
)

func num(s string) *model.Node { return model.NewLeaf(model.OpNum, s) }
func vr(s string) *model.Node  { return model.NewLeaf(model.OpVar, s) }

func TestInternUniqueness(t *testing.T) {
	p := New()

	t1 := model.New(model.OpAdd, num("10"), num("20"))
	t2 := model.New(model.OpAdd, num("10"), num("20"))

	id1 := p.Intern(t1)
	id2 := p.Intern(t2)

	assert.Equal(t, id1, id2)
}

func TestInternDistinguishesDifferentTrees(t *testing.T) {
	p := New()

	id1 := p.Intern(model.New(model.OpAdd, num("10"), num("20")))
	id2 := p.Intern(model.New(model.OpAdd, num("10"), num("21")))
	id3 := p.Intern(model.New(model.OpSub, num("10"), num("20")))

	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, id1, id3)
}

func TestNodeRoundTrip(t *testing.T) {
	p := New()

	original := model.New(model.OpAdd, vr("x"), num("20"))
	id := p.Intern(original)

	reconstructed := p.Node(id)
	assert.True(t, original.Equals(reconstructed))

	// Re-interning a reconstructed tree must produce the same id (P2).
	assert.Equal(t, id, p.Intern(reconstructed))
}

func TestMonotonicIDs(t *testing.T) {
	p := New()

	id1 := p.Intern(num("1"))
	id2 := p.Intern(num("2"))
	id3 := p.Intern(model.New(model.OpAdd, p.Node(id1), p.Node(id2)))

	assert.True(t, id1 > 0)
	assert.True(t, id2 > id1)
	assert.True(t, id3 > id2)
}

func TestChildIDLessThanParent(t *testing.T) {
	p := New()

	left := num("1")
	right := num("2")
	root := model.New(model.OpAdd, left, right)

	rootID := p.Intern(root)
	leftID := p.Intern(left)
	rightID := p.Intern(right)

	assert.True(t, leftID < rootID)
	assert.True(t, rightID < rootID)
}

func TestClearInvalidatesState(t *testing.T) {
	p := New()

	p.Intern(num("1"))
	p.Clear()

	id := p.Intern(num("1"))
	assert.Equal(t, 1, id)
}

func TestLeafCanonicalization(t *testing.T) {
	p := New()

	id1 := p.Intern(vr("x"))
	id2 := p.Intern(vr("x"))
	assert.Equal(t, id1, id2)
}

func TestDumpAll(t *testing.T) {
	p := New()
	p.Intern(model.New(model.OpAdd, num("1"), num("2")))

	dump := p.DumpAll()
	assert.Contains(t, dump, "ADD")
}

func TestInternPanicsOnArityMismatch(t *testing.T) {
	p := New()
	assert.Panics(t, func() {
		p.Intern(&model.Node{Op: model.OpEql, Children: []*model.Node{num("1")}})
	})
}
