package sidebar

import (
	"net/url"
	"strings"
)

var contentSuffixes = []string{".mdx", ".md", ".html"}

// IsExternal reports whether link points outside the site.
func IsExternal(link string) bool {
	if strings.HasPrefix(link, "//") {
		return true
	}
	u, err := url.Parse(link)
	return err == nil && u.Scheme != ""
}

// NormalizeLink turns a relative internal link into an absolute one.
// External and empty links are returned unchanged.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || IsExternal(link) || strings.HasPrefix(link, "/") {
		return link
	}
	if strings.HasPrefix(link, "#") || strings.HasPrefix(link, "?") {
		return link
	}
	return "/" + strings.TrimPrefix(link, "./")
}

// ContentKey reduces an internal link to the form used for content lookups:
// no fragment or query, no trailing slash and no page extension.
func ContentKey(link string) string {
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		link = link[:i]
	}
	for _, suffix := range contentSuffixes {
		if strings.HasSuffix(link, suffix) {
			link = strings.TrimSuffix(link, suffix)
			break
		}
	}
	if len(link) > 1 {
		link = strings.TrimRight(link, "/")
	}
	if link == "" {
		return "/"
	}
	return link
}

// ContentPaths is the set of pages that internal links may point at.
type ContentPaths interface {
	Contains(link string) bool
}

// PathSet is a ContentPaths backed by a map of content keys.
type PathSet map[string]struct{}

func NewPathSet(paths ...string) PathSet {
	s := PathSet{}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

func (s PathSet) Add(path string) {
	s[ContentKey(NormalizeLink(path))] = struct{}{}
}

func (s PathSet) Contains(link string) bool {
	_, ok := s[ContentKey(NormalizeLink(link))]
	return ok
}

// Union adds every path of o to s.
func (s PathSet) Union(o PathSet) {
	for k := range o {
		s[k] = struct{}{}
	}
}
