package sidebar

import (
	"fmt"
	"strings"
)

const DefaultMaxDepth = 4

// Validator checks the structural invariants of a tree.
type Validator struct {
	// MaxDepth caps section nesting; entries directly under a root are at
	// depth 1. Zero means DefaultMaxDepth, negative disables the check.
	MaxDepth int
}

// Validate runs a Validator with default settings.
func Validate(t *Tree, paths ContentPaths) []Issue {
	return Validator{}.Validate(t, paths)
}

// Validate walks t in display order and returns every issue found. A nil
// paths disables the dangling-link check; a nil t has no issues.
func (v Validator) Validate(t *Tree, paths ContentPaths) []Issue {
	maxDepth := v.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	var issues []Issue
	if t == nil {
		return issues
	}
	for _, root := range t.Keys() {
		issues = append(issues, v.validateRoot(root, t.Roots[root], paths, maxDepth)...)
	}
	return issues
}

type linkSite struct {
	index int // position of the issue in the output, -1 until duplicated
	link  string
	paths []string
}

// linkKey identifies the target of a link: internal links that resolve to
// the same page and fragment share a key, external links are compared as is.
func linkKey(link string) string {
	if IsExternal(link) {
		return link
	}
	var fragment string
	if i := strings.Index(link, "#"); i >= 0 {
		fragment = link[i:]
	}
	return ContentKey(link) + fragment
}

func (v Validator) validateRoot(root string, nodes []Node, paths ContentPaths, maxDepth int) []Issue {
	var issues []Issue
	links := map[string]*linkSite{}

	walkNodes(Path{Root: root}, nodes, func(p Path, n Node) bool {
		where := p.String()
		if strings.TrimSpace(n.Label()) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Kind:     KindEmptyLabel,
				Path:     where,
				Message:  "label is empty",
			})
		}
		// only the first node past the limit in a branch is flagged; the
		// rest of the branch is still checked
		if maxDepth > 0 && p.Depth() == maxDepth+1 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Kind:     KindExcessiveDepth,
				Path:     where,
				Message:  fmt.Sprintf("nested %d levels deep, limit is %d", p.Depth(), maxDepth),
			})
		}

		switch n := n.(type) {
		case *Leaf:
			issues = v.checkLink(issues, links, where, n.Link, paths)
		case *Section:
			if len(n.Items) == 0 {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Kind:     KindEmptyGroup,
					Path:     where,
					Message:  "section has no items",
				})
			}
		default:
			panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
		}
		return true
	})
	return issues
}

func (v Validator) checkLink(issues []Issue, links map[string]*linkSite, where, link string, paths ContentPaths) []Issue {
	if strings.TrimSpace(link) == "" {
		return append(issues, Issue{
			Severity: SeverityError,
			Kind:     KindEmptyLink,
			Path:     where,
			Message:  "link is empty",
		})
	}

	key := linkKey(link)
	if seen, ok := links[key]; ok {
		seen.paths = append(seen.paths, where)
		if seen.index < 0 {
			seen.index = len(issues)
			issues = append(issues, Issue{
				Severity: SeverityError,
				Kind:     KindDuplicateLink,
				Path:     seen.paths[0],
			})
		}
		dup := &issues[seen.index]
		dup.Related = append([]string(nil), seen.paths...)
		dup.Message = fmt.Sprintf("link %q is used %d times: %s", seen.link, len(seen.paths), joinPaths(seen.paths))
	} else {
		links[key] = &linkSite{index: -1, link: link, paths: []string{where}}
	}

	if paths != nil && strings.HasPrefix(link, "/") && !IsExternal(link) && !paths.Contains(link) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Kind:     KindDanglingLink,
			Path:     where,
			Message:  fmt.Sprintf("link %q does not match any content page", link),
		})
	}
	return issues
}
