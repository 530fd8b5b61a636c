package content

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type entry struct {
	weight int
	name   string
	node   sidebar.Node
}

// Generate scaffolds a sidebar rooted at "/" from the layout of dir.
// Directories become sections and pages become leaves, ordered by front
// matter weight and then by name. Drafts are left out unless opts asks
// for them.
func Generate(ctx context.Context, dir string, opts Options) (*sidebar.Tree, error) {
	nodes, err := generateDir(ctx, dir, "", opts)
	if err != nil {
		return nil, fmt.Errorf("generate sidebar from %s: %w", dir, err)
	}
	t := sidebar.NewTree()
	t.Roots["/"] = nodes
	return t, nil
}

func generateDir(ctx context.Context, root, rel string, opts Options) ([]sidebar.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	des, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}

	var entries []entry
	for _, de := range des {
		name := de.Name()
		childRel := path.Join(rel, name)

		if de.IsDir() {
			if skipDir(name) {
				continue
			}
			children, err := generateDir(ctx, root, childRel, opts)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				continue
			}
			entries = append(entries, entry{
				weight: sectionWeight(root, childRel),
				name:   name,
				node:   &sidebar.Section{Text: TitleFromName(name), Items: children},
			})
			continue
		}

		if !isPage(name) || strings.TrimSuffix(name, path.Ext(name)) == "_index" {
			continue
		}
		page, err := readPage(filepath.Join(root, filepath.FromSlash(childRel)))
		if err != nil {
			page = Page{}
		}
		if page.Draft && !opts.IncludeDrafts {
			continue
		}
		title := page.Title
		if title == "" {
			title = TitleFromName(strings.TrimSuffix(name, path.Ext(name)))
		}
		weight := page.Weight
		if isIndex(name) && weight == 0 {
			weight = -1
		}
		entries = append(entries, entry{
			weight: weight,
			name:   name,
			node: &sidebar.Leaf{
				Text: title,
				Link: sidebar.RebaseLink(PageLinks(childRel)[0], opts.Prefix),
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight < entries[j].weight
		}
		return entries[i].name < entries[j].name
	})

	nodes := make([]sidebar.Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, e.node)
	}
	return nodes, nil
}

func isIndex(name string) bool {
	stem := strings.TrimSuffix(name, path.Ext(name))
	return stem == "index" || stem == "_index"
}

// sectionWeight reads the weight of a directory's index page, if any.
func sectionWeight(root, rel string) int {
	for _, name := range []string{"_index.md", "index.md", "index.mdx"} {
		page, err := readPage(filepath.Join(root, filepath.FromSlash(rel), name))
		if err == nil {
			return page.Weight
		}
	}
	return 0
}

// TitleFromName turns a file or directory name such as "first-steps" into
// a display label ("First Steps").
func TitleFromName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
