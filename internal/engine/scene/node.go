// Package scene implements the scene graph: a tree of nodes traversed once
// per pass with a shared State, each node applying its contribution for
// its own subtree and issuing draw calls through a Renderer.
package scene

// Node is implemented by every scene graph node kind.
//
// Children are drawn in insertion order. A node may appear under several
// parents (shared geometry and sub-assemblies); nodes must not be added to
// their own subtree.
type Node interface {
	AddChild(child Node)
	Children() []Node
	Draw(s *State)
}

// children is the ordered child list shared by all node kinds.
type children struct {
	nodes []Node
}

// AddChild appends child to the draw order.
func (c *children) AddChild(child Node) {
	c.nodes = append(c.nodes, child)
}

// Children returns the child nodes in draw order.
func (c *children) Children() []Node {
	return c.nodes
}

func (c *children) drawChildren(s *State) {
	for _, n := range c.nodes {
		n.Draw(s)
	}
}

// Group is a plain container.
type Group struct {
	children
}

// NewGroup returns a group holding the given nodes in order.
func NewGroup(nodes ...Node) *Group {
	g := &Group{}
	for _, n := range nodes {
		g.AddChild(n)
	}
	return g
}

// Draw draws the children in order with the same state.
func (g *Group) Draw(s *State) {
	g.drawChildren(s)
}

// Chain adds each node as the child of the one before it and returns the
// first. It is a shorthand for material, transform, geometry sub-trees.
func Chain(first Node, rest ...Node) Node {
	parent := first
	for _, n := range rest {
		parent.AddChild(n)
		parent = n
	}
	return first
}
