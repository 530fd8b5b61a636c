// Package aggregate layers per-product sidebars onto a shared base sidebar.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/content"
	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"k8s.io/apimachinery/pkg/util/yaml"
)

const (
	defaultDocsDir = "docs"
	defaultSidebar = "sidebar.yaml"
)

// LoadConfig reads a JSON or YAML aggregator config. Relative Base and
// Content paths are resolved against the config's directory.
func LoadConfig(path string) (*DocAggregator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg DocAggregator
	if err := yaml.NewYAMLOrJSONDecoder(f, 4096).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Base, &cfg.Content} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	for name, p := range cfg.Products {
		p.Name = name
		cfg.Products[name] = p
	}
	return &cfg, nil
}

// Fetcher makes dir a copy of a product repository at a version.
type Fetcher interface {
	Fetch(ctx context.Context, p Product, v ProductVersion, dir string) error
}

// GitFetcher clones product repositories with git.
type GitFetcher struct{}

func (GitFetcher) Fetch(ctx context.Context, p Product, v ProductVersion, dir string) error {
	return content.Checkout(ctx, p.GithubURL, v.Branch, dir)
}

// Aggregator builds a combined sidebar for every hosted product version.
type Aggregator struct {
	Config  *DocAggregator
	WorkDir string
	Fetcher Fetcher
	Content content.Options
}

// Result is the merged sidebar and the content paths backing it.
type Result struct {
	Sidebar *sidebar.Tree
	Paths   sidebar.PathSet
}

// Run fetches every hosted product version in turn and layers its sidebar,
// rebased under /<product>/<branch>, onto the base sidebar.
func (a *Aggregator) Run(ctx context.Context) (*Result, error) {
	logger := xlog.WithComponent("aggregate")

	fetcher := a.Fetcher
	if fetcher == nil {
		fetcher = GitFetcher{}
	}

	res := &Result{Sidebar: sidebar.NewTree(), Paths: sidebar.PathSet{}}
	if a.Config.Base != "" {
		base, err := loadSidebar(a.Config.Base)
		if err != nil {
			return nil, err
		}
		res.Sidebar = base
	}
	if a.Config.Content != "" {
		paths, err := content.Discover(ctx, a.Config.Content, a.Content)
		if err != nil {
			return nil, err
		}
		res.Paths.Union(paths)
	}

	names := make([]string, 0, len(a.Config.Products))
	for name := range a.Config.Products {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := a.Config.Products[name]
		p.Name = name
		repoDir := filepath.Join(a.WorkDir, name, "repo")

		for _, v := range p.Versions {
			if !v.HostDocs {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if v.DocsDir == "" {
				v.DocsDir = defaultDocsDir
			}
			if v.Sidebar == "" {
				v.Sidebar = defaultSidebar
			}
			prefix := "/" + name + "/" + v.Branch
			vlog := logger.With().Str("product", name).Str("branch", v.Branch).Logger()

			if err := fetcher.Fetch(ctx, p, v, repoDir); err != nil {
				return nil, fmt.Errorf("fetch %s@%s: %w", name, v.Branch, err)
			}

			docsDir := filepath.Join(repoDir, v.DocsDir)
			opts := a.Content
			opts.Prefix = prefix
			paths, err := content.Discover(ctx, docsDir, opts)
			if err != nil {
				return nil, err
			}
			res.Paths.Union(paths)

			overlay, err := loadSidebar(filepath.Join(docsDir, v.Sidebar))
			if errors.Is(err, os.ErrNotExist) {
				vlog.Warn().Str("sidebar", v.Sidebar).Msg("product has no sidebar, skipping")
				continue
			}
			if err != nil {
				return nil, err
			}
			res.Sidebar = sidebar.Merge(res.Sidebar, sidebar.Rebase(overlay, prefix))
			vlog.Info().Int("paths", len(paths)).Msg("product merged")
		}
	}
	return res, nil
}

func loadSidebar(path string) (*sidebar.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := sidebar.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
