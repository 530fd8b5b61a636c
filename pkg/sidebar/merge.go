package sidebar

import (
	"fmt"
	"strings"
)

// Merge layers overlay onto base and returns a new tree; neither input is
// modified. A nil tree is treated as empty.
//
// At each level, an overlay section is merged into the first base section
// with the same label: their items are merged recursively, base first. An
// overlay section with Replace set substitutes the base section in place
// instead. An overlay leaf replaces, in place, the base leaf with the same
// link. Anything unmatched is appended.
func Merge(base, overlay *Tree) *Tree {
	out := base.Clone()
	if overlay == nil {
		return out
	}
	for root, nodes := range overlay.Roots {
		out.Roots[root] = mergeNodes(out.Roots[root], nodes)
	}
	return out
}

// mergeNodes merges overlay into dst, which must already be a private copy.
func mergeNodes(dst, overlay []Node) []Node {
	baseLen := len(dst)
	for _, o := range overlay {
		switch o := o.(type) {
		case *Leaf:
			if i := indexLeaf(dst[:baseLen], o.Link); i >= 0 {
				dst[i] = cloneNode(o)
				continue
			}
		case *Section:
			if i := indexSection(dst[:baseLen], o.Text); i >= 0 {
				if o.Replace {
					c := cloneNode(o).(*Section)
					c.Replace = false
					dst[i] = c
					continue
				}
				s := dst[i].(*Section)
				s.Items = mergeNodes(s.Items, o.Items)
				s.Collapsed = s.Collapsed || o.Collapsed
				s.Collapsible = s.Collapsible || o.Collapsible
				continue
			}
		default:
			panic(fmt.Sprintf("sidebar: unexpected node type %T", o))
		}
		c := cloneNode(o)
		if s, ok := c.(*Section); ok {
			s.Replace = false
		}
		dst = append(dst, c)
	}
	return dst
}

func indexLeaf(nodes []Node, link string) int {
	for i, n := range nodes {
		if l, ok := n.(*Leaf); ok && l.Link == link {
			return i
		}
	}
	return -1
}

func indexSection(nodes []Node, label string) int {
	for i, n := range nodes {
		if s, ok := n.(*Section); ok && s.Text == label {
			return i
		}
	}
	return -1
}

// Rebase returns a copy of t with every internal absolute link moved under
// prefix, e.g. "/guides/intro" becomes "/kubedb/v1/guides/intro".
func Rebase(t *Tree, prefix string) *Tree {
	prefix = "/" + strings.Trim(prefix, "/")
	out := t.Clone()
	if prefix == "/" {
		return out
	}
	for _, nodes := range out.Roots {
		rebaseNodes(nodes, prefix)
	}
	return out
}

func rebaseNodes(nodes []Node, prefix string) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Leaf:
			n.Link = RebaseLink(n.Link, prefix)
		case *Section:
			rebaseNodes(n.Items, prefix)
		default:
			panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
		}
	}
}

// RebaseLink prefixes an internal absolute link; other links are returned
// unchanged.
func RebaseLink(link, prefix string) string {
	if !strings.HasPrefix(link, "/") || IsExternal(link) {
		return link
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return link
	}
	if link == "/" {
		return prefix + "/"
	}
	return prefix + link
}
