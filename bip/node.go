// Package bip - persistent search nodes.
//
// A Node is a parent pointer plus one fixed bit, so branching is O(1) and
// siblings share their whole prefix. Nodes are immutable once built.

package bip

import (
	"fmt"
	"strings"
)

// Node is a partial assignment: fixed binary values for variables 0..Len()-1.
//
// Nodes are immutable persistent lists. A child points at its parent and
// stores only the appended bit, so branching is O(1) and siblings share
// their whole prefix. Reading the full prefix costs O(Len()).
type Node struct {
	parent *Node
	bit    uint8
	depth  int
}

// Root returns the empty assignment.
func Root() *Node { return &Node{} }

// Len returns the number of fixed variables.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return n.depth
}

// Child returns a new node that extends n by one variable fixed to bit.
// Panics if bit is not 0 or 1.
func (n *Node) Child(bit int) *Node {
	if bit != 0 && bit != 1 {
		panic(fmt.Sprintf("bip: Node.Child(%d): bit must be 0 or 1", bit))
	}

	return &Node{parent: n, bit: uint8(bit), depth: n.Len() + 1}
}

// AppendValues appends the fixed values, in variable order, to dst.
func (n *Node) AppendValues(dst []float64) []float64 {
	k := n.Len()
	start := len(dst)
	for i := 0; i < k; i++ {
		dst = append(dst, 0)
	}
	for cur := n; cur != nil && cur.depth > 0; cur = cur.parent {
		dst[start+cur.depth-1] = float64(cur.bit)
	}

	return dst
}

// Values returns the fixed values as a new slice.
func (n *Node) Values() []float64 {
	return n.AppendValues(make([]float64, 0, n.Len()))
}

// Bits returns the fixed values as ints.
func (n *Node) Bits() []int {
	out := make([]int, n.Len())
	for cur := n; cur != nil && cur.depth > 0; cur = cur.parent {
		out[cur.depth-1] = int(cur.bit)
	}

	return out
}

// String renders the assignment as "[0 1 1]"; the root is "[]".
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range n.Bits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + v))
	}
	sb.WriteByte(']')

	return sb.String()
}
