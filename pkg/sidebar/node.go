// Package sidebar models documentation sidebar navigation trees.
package sidebar

import (
	"fmt"
	"sort"
	"strings"
)

// Node is either a *Leaf or a *Section.
type Node interface {
	Label() string
	node()
}

// Leaf links directly to a content page.
type Leaf struct {
	Text string
	Link string
}

// Section groups child nodes.
type Section struct {
	Text        string
	Collapsed   bool
	Collapsible bool
	Items       []Node

	// Replace is only meaningful in overlays passed to Merge.
	Replace bool
}

func (l *Leaf) Label() string    { return l.Text }
func (s *Section) Label() string { return s.Text }

func (*Leaf) node()    {}
func (*Section) node() {}

// Tree maps a root key (usually a locale or path prefix such as "/") to
// its ordered entries.
type Tree struct {
	Roots map[string][]Node
}

func NewTree() *Tree {
	return &Tree{Roots: map[string][]Node{}}
}

// Keys returns the root keys in sorted order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.Roots))
	for k := range t.Roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of t. Cloning a nil tree yields an empty one.
func (t *Tree) Clone() *Tree {
	out := NewTree()
	if t == nil {
		return out
	}
	for k, nodes := range t.Roots {
		out.Roots[k] = cloneNodes(nodes)
	}
	return out
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		c := *n
		return &c
	case *Section:
		c := *n
		c.Items = cloneNodes(n.Items)
		if c.Items == nil {
			c.Items = []Node{}
		}
		return &c
	default:
		panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
	}
}

// Path identifies a node by the labels leading to it.
type Path struct {
	Root     string
	Elements []string
}

func (p Path) child(label string, index int) Path {
	if strings.TrimSpace(label) == "" {
		label = fmt.Sprintf("[%d]", index)
	}
	elems := make([]string, len(p.Elements), len(p.Elements)+1)
	copy(elems, p.Elements)
	return Path{Root: p.Root, Elements: append(elems, label)}
}

func (p Path) String() string {
	parts := append([]string{"sidebar." + p.Root}, p.Elements...)
	return strings.Join(parts, " > ")
}

// Depth is 1 for entries directly under a root.
func (p Path) Depth() int {
	return len(p.Elements)
}

// WalkFunc is called for every node in pre-order. Returning false skips
// the children of a section.
type WalkFunc func(path Path, n Node) bool

// Walk visits the tree depth-first in display order.
func Walk(t *Tree, fn WalkFunc) {
	for _, root := range t.Keys() {
		walkNodes(Path{Root: root}, t.Roots[root], fn)
	}
}

func walkNodes(parent Path, nodes []Node, fn WalkFunc) {
	for i, n := range nodes {
		p := parent.child(n.Label(), i)
		descend := fn(p, n)
		switch n := n.(type) {
		case *Leaf:
		case *Section:
			if descend {
				walkNodes(p, n.Items, fn)
			}
		default:
			panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
		}
	}
}
