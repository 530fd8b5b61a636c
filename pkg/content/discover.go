// Package content discovers the pages a sidebar may link to.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/sidebar"
)

// Options controls Discover.
type Options struct {
	// IncludeDrafts keeps pages marked `draft: true`.
	IncludeDrafts bool
	// Prefix is prepended to every discovered path, e.g. "/kubedb/v1".
	Prefix string
}

var pageExts = map[string]bool{".md": true, ".mdx": true}

func isPage(name string) bool {
	return pageExts[strings.ToLower(filepath.Ext(name))]
}

func skipDir(name string) bool {
	return name != "." && (strings.HasPrefix(name, ".") || name == "node_modules")
}

// Discover walks dir and returns the link targets of every page found.
// "guides/intro.md" yields "/guides/intro"; index pages also yield their
// directory; front matter aliases are included.
func Discover(ctx context.Context, dir string, opts Options) (sidebar.PathSet, error) {
	logger := xlog.WithComponent("content")
	paths := sidebar.PathSet{}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isPage(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		page, err := readPage(p)
		if err != nil {
			logger.Warn().Err(err).Str("file", p).Msg("could not parse front matter, using defaults")
			page = Page{}
		}
		if page.Draft && !opts.IncludeDrafts {
			logger.Debug().Str("file", p).Msg("skipping draft")
			return nil
		}

		for _, link := range PageLinks(filepath.ToSlash(rel)) {
			paths.Add(sidebar.RebaseLink(link, opts.Prefix))
		}
		for _, alias := range page.Aliases {
			paths.Add(sidebar.RebaseLink(sidebar.NormalizeLink(alias), opts.Prefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover content in %s: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Int("paths", len(paths)).Msg("content discovered")
	return paths, nil
}

// PageLinks returns the links that resolve to the page at rel, a slash
// separated path relative to the content root.
func PageLinks(rel string) []string {
	ext := path.Ext(rel)
	stem := strings.TrimSuffix(rel, ext)
	dir, base := path.Split(stem)

	links := []string{"/" + stem}
	if base == "index" || base == "_index" {
		links = append(links, "/"+strings.TrimSuffix(dir, "/"))
	}
	if base == "_index" {
		links = links[1:]
	}
	return links
}
