package sidebar

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Unmarshal decodes a YAML (or JSON) sidebar object and parses it.
func Unmarshal(data []byte) (*Tree, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode sidebar: %w", err)
	}
	return Parse(raw)
}

// Parse builds a typed tree from nested records keyed by root. It stops at
// the first malformed node and returns a *MalformedNodeError.
func Parse(raw map[string]interface{}) (*Tree, error) {
	obj, _ := Normalize(raw).(map[string]interface{})

	roots := make([]string, 0, len(obj))
	for k := range obj {
		roots = append(roots, k)
	}
	sort.Strings(roots)

	t := NewTree()
	for _, root := range roots {
		p := Path{Root: root}
		list, ok := obj[root].([]interface{})
		if !ok {
			return nil, malformed(p, "expected a list of entries, got %T", obj[root])
		}
		nodes, err := parseNodes(p, list)
		if err != nil {
			return nil, err
		}
		t.Roots[root] = nodes
	}
	return t, nil
}

func parseNodes(parent Path, list []interface{}) ([]Node, error) {
	nodes := make([]Node, 0, len(list))
	for i, v := range list {
		n, err := parseNode(parent, i, v)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func parseNode(parent Path, index int, v interface{}) (Node, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, malformed(parent.child("", index), "expected an object, got %T", v)
	}

	text, _, err := unstructured.NestedString(obj, "text")
	if err != nil {
		return nil, malformed(parent.child("", index), "text: %v", err)
	}
	p := parent.child(text, index)

	link, hasLink, _ := unstructured.NestedFieldNoCopy(obj, "link")
	items, hasItems, _ := unstructured.NestedFieldNoCopy(obj, "items")

	switch {
	case hasLink && hasItems:
		return nil, malformed(p, "node has both link and items")
	case hasLink:
		s, ok := link.(string)
		if !ok {
			return nil, malformed(p, "link must be a string, got %T", link)
		}
		return &Leaf{Text: text, Link: NormalizeLink(s)}, nil
	case hasItems:
		list, ok := items.([]interface{})
		if !ok {
			return nil, malformed(p, "items must be a list, got %T", items)
		}
		s := &Section{Text: text}
		for _, f := range []struct {
			name string
			dst  *bool
		}{
			{"collapsed", &s.Collapsed},
			{"collapsible", &s.Collapsible},
			{"replace", &s.Replace},
		} {
			if *f.dst, err = flag(obj, f.name); err != nil {
				return nil, malformed(p, "%s: %v", f.name, err)
			}
		}
		if s.Items, err = parseNodes(p, list); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, malformed(p, "node has neither link nor items")
	}
}

func flag(obj map[string]interface{}, name string) (bool, error) {
	v, found, _ := unstructured.NestedFieldNoCopy(obj, name)
	if !found {
		return false, nil
	}
	return cast.ToBoolE(v)
}

// Normalize converts the map[interface{}]interface{} values produced by
// YAML decoders into map[string]interface{} recursively.
func Normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := cast.ToStringMap(v)
		for k, e := range m {
			m[k] = Normalize(e)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, e := range v {
			m[k] = Normalize(e)
		}
		return m
	case []map[string]interface{}:
		list := make([]interface{}, len(v))
		for i, e := range v {
			list[i] = Normalize(e)
		}
		return list
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, e := range v {
			list[i] = Normalize(e)
		}
		return list
	}
	return v
}
