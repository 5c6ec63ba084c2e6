/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package model

import (
	"fmt"
	"strings"
)

/*
NumberFormat records the surface shape a NUM leaf was written in (integer
or decimal). Thousands-separator reinsertion is driven by HasThousands, not
by this field.
*/
type NumberFormat int

const (
	FormatUnspecified NumberFormat = iota
	FormatInteger
	FormatDecimal
)

/*
Location is the source span a Node was parsed from.
*/
type Location struct {
	Line   int
	Column int
	Offset int
}

/*
Node is a single AST node: an operator tag plus either a literal Payload
(for leaves) or an ordered list of Children (for everything else). The
sideband attribute fields are informational only and never participate in
structural interning.
*/
type Node struct {
	Op       Op
	Payload  string
	Children []*Node

	LBrk, RBrk byte

	IsFraction      bool
	IsMixedFraction bool
	IsBinomial      bool
	HasThousands    bool
	NumberFormat    NumberFormat
	ExplicitOp      bool

	Location Location
}

/*
Pool is the subset of pool.Pool the model package depends on. Concrete
implementations live in package pool; model only needs the interface so
that Node factories can be parameterised over it without an import cycle.
*/
type Pool interface {
	Intern(n *Node) int
	Node(id int) *Node
}

/*
NewLeaf builds a leaf node carrying a literal payload.
*/
func NewLeaf(op Op, payload string) *Node {
	if !op.IsLeaf() {
		panic(fmt.Sprintf("mexpr: %v is not a leaf operator", op))
	}
	return &Node{Op: op, Payload: payload}
}

/*
New builds an interior node from its children. It panics if op has a fixed
binary arity and exactly two children were not given - this is a programmer
error, not a recoverable one, matching the pool's own invariant checks.
*/
func New(op Op, children ...*Node) *Node {
	if op.IsLeaf() {
		panic(fmt.Sprintf("mexpr: %v is a leaf operator, use NewLeaf", op))
	}
	if op.IsBinaryOnly() && len(children) != 2 {
		panic(fmt.Sprintf("mexpr: %v requires exactly 2 children, got %d", op, len(children)))
	}
	if len(children) == 0 {
		panic(fmt.Sprintf("mexpr: %v requires at least 1 child", op))
	}
	return &Node{Op: op, Children: children}
}

/*
Equals reports whether two nodes are structurally identical - same operator,
same payload (for leaves) or pointwise-equal children (for interior nodes).
Sideband attributes are ignored, matching the pool's interning key.
*/
func (n *Node) Equals(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Op != o.Op {
		return false
	}
	if n.Op.IsLeaf() {
		return n.Payload == o.Payload
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equals(o.Children[i]) {
			return false
		}
	}
	return true
}

/*
String renders a tree-indented debug dump of a node and its descendants.
*/
func (n *Node) String() string {
	var buf strings.Builder
	n.levelString(&buf, 0)
	return buf.String()
}

func (n *Node) levelString(buf *strings.Builder, level int) {
	buf.WriteString(strings.Repeat("  ", level))
	if n.Op.IsLeaf() {
		fmt.Fprintf(buf, "%s: %s\n", n.Op, n.Payload)
		return
	}
	fmt.Fprintf(buf, "%s\n", n.Op)
	for _, c := range n.Children {
		c.levelString(buf, level+1)
	}
}

/*
FromRecord reconstructs a freestanding tree rooted at id from a Pool.
Sideband attributes are not restored - they were never part of the node's
interned identity.
*/
func FromRecord(p Pool, id int) *Node {
	return p.Node(id)
}
