package compact

import (
	"github.com/arloliu/arrayniac/format"
)

// NoShape is the ShapeID of nodes that are not objects.
const NoShape = -1

// Node is one value of the tree built by Walk.
//
// Only the fields matching Kind are meaningful: Bool for booleans, Text for
// numbers (the literal as written) and strings, Items for arrays and
// Fields/ShapeID for objects.
type Node struct {
	Kind    format.Kind
	Bool    bool
	Text    string
	Items   []Node
	Fields  map[string]*Node
	ShapeID int
}

// IsObject reports whether n is an object node.
func (n *Node) IsObject() bool {
	return n.Kind == format.KindObject
}

// Count returns the number of nodes of kind k in the subtree rooted at n.
func (n *Node) Count(k format.Kind) int {
	c := 0
	if n.Kind == k {
		c++
	}
	for i := range n.Items {
		c += n.Items[i].Count(k)
	}
	for _, child := range n.Fields {
		c += child.Count(k)
	}

	return c
}
