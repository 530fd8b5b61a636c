package sidebar

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// ToRaw converts t back into nested records accepted by Parse.
func ToRaw(t *Tree) map[string]interface{} {
	raw := make(map[string]interface{}, len(t.Roots))
	for root, nodes := range t.Roots {
		raw[root] = rawNodes(nodes)
	}
	return raw
}

func rawNodes(nodes []Node) []interface{} {
	list := make([]interface{}, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, rawNode(n))
	}
	return list
}

func rawNode(n Node) map[string]interface{} {
	switch n := n.(type) {
	case *Leaf:
		return map[string]interface{}{"text": n.Text, "link": n.Link}
	case *Section:
		obj := map[string]interface{}{"text": n.Text, "items": rawNodes(n.Items)}
		if n.Collapsed {
			obj["collapsed"] = true
		}
		if n.Collapsible {
			obj["collapsible"] = true
		}
		if n.Replace {
			obj["replace"] = true
		}
		return obj
	default:
		panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
	}
}

// Marshal encodes t as YAML with roots sorted and keys in a stable order.
func Marshal(t *Tree) ([]byte, error) {
	doc := yaml.MapSlice{}
	for _, root := range t.Keys() {
		doc = append(doc, yaml.MapItem{Key: root, Value: yamlNodes(t.Roots[root])})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode sidebar: %w", err)
	}
	return data, nil
}

func yamlNodes(nodes []Node) []yaml.MapSlice {
	list := make([]yaml.MapSlice, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, yamlNode(n))
	}
	return list
}

func yamlNode(n Node) yaml.MapSlice {
	switch n := n.(type) {
	case *Leaf:
		return yaml.MapSlice{
			{Key: "text", Value: n.Text},
			{Key: "link", Value: n.Link},
		}
	case *Section:
		obj := yaml.MapSlice{{Key: "text", Value: n.Text}}
		if n.Collapsed {
			obj = append(obj, yaml.MapItem{Key: "collapsed", Value: true})
		}
		if n.Collapsible {
			obj = append(obj, yaml.MapItem{Key: "collapsible", Value: true})
		}
		if n.Replace {
			obj = append(obj, yaml.MapItem{Key: "replace", Value: true})
		}
		return append(obj, yaml.MapItem{Key: "items", Value: yamlNodes(n.Items)})
	default:
		panic(fmt.Sprintf("sidebar: unexpected node type %T", n))
	}
}
