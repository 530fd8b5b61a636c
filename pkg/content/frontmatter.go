package content

import (
	"os"
	"strings"

	"github.com/gohugoio/hugo/parser/pageparser"
	"github.com/spf13/cast"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Page is the subset of a content page's front matter navcheck cares about.
type Page struct {
	Title   string
	Weight  int
	Draft   bool
	Aliases []string
}

func readPage(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, err
	}
	defer f.Close()

	cfm, err := pageparser.ParseFrontMatterAndContent(f)
	if err != nil {
		return Page{}, err
	}
	return pageFromMetadata(cfm.FrontMatter)
}

func pageFromMetadata(metadata map[string]interface{}) (Page, error) {
	var p Page
	if metadata == nil {
		return p, nil
	}

	title, _, err := unstructured.NestedString(metadata, "title")
	if err != nil {
		return p, err
	}
	p.Title = strings.TrimSpace(title)

	if v, ok, _ := unstructured.NestedFieldNoCopy(metadata, "weight"); ok {
		if p.Weight, err = cast.ToIntE(v); err != nil {
			return p, err
		}
	}
	if v, ok, _ := unstructured.NestedFieldNoCopy(metadata, "draft"); ok {
		if p.Draft, err = cast.ToBoolE(v); err != nil {
			return p, err
		}
	}

	aliases, ok, err := unstructured.NestedStringSlice(metadata, "aliases")
	if err != nil {
		return p, err
	}
	if ok {
		p.Aliases = aliases
	}
	return p, nil
}
