// Package site loads and checks documentation site descriptors.
package site

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/aymerick/raymond"
	"gopkg.in/yaml.v2"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const DefaultRoot = "docs"

type Logo struct {
	Light string `json:"light,omitempty"`
	Dark  string `json:"dark,omitempty"`
}

type SocialLink struct {
	Icon    string `json:"icon"`
	Mode    string `json:"mode"`
	Content string `json:"content"`
}

// Descriptor is the declarative configuration of a documentation site.
type Descriptor struct {
	Root          string
	Title         string
	Description   string
	Icon          string
	Logo          Logo
	LogoText      string
	Head          []string
	FooterMessage string
	LastUpdated   bool
	SocialLinks   []SocialLink
	Sidebar       *sidebar.Tree

	// Dir is the directory the descriptor was loaded from.
	Dir string
}

// Load reads a YAML or JSON descriptor file.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading site descriptor %s: %w", path, err)
	}

	var raw map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling site descriptor %s: %w", path, err)
	}

	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Dir = filepath.Dir(path)
	return d, nil
}

// ContentDir is the content root resolved against the descriptor's
// directory.
func (d *Descriptor) ContentDir() string {
	if filepath.IsAbs(d.Root) || d.Dir == "" {
		return d.Root
	}
	return filepath.Join(d.Dir, d.Root)
}

// Parse builds a descriptor from nested records. Theme fields are looked up
// under themeConfig first and then at the top level.
func Parse(raw map[string]interface{}) (*Descriptor, error) {
	obj, _ := sidebar.Normalize(raw).(map[string]interface{})
	d := &Descriptor{Root: DefaultRoot}

	var err error
	for _, f := range []struct {
		dst    *string
		fields []string
	}{
		{&d.Root, []string{"root"}},
		{&d.Title, []string{"title"}},
		{&d.Description, []string{"description"}},
		{&d.Icon, []string{"icon"}},
		{&d.Logo.Light, []string{"logo", "light"}},
		{&d.Logo.Dark, []string{"logo", "dark"}},
		{&d.LogoText, []string{"logoText"}},
		{&d.FooterMessage, []string{"footer", "message"}},
	} {
		if err = themeString(obj, f.dst, f.fields...); err != nil {
			return nil, err
		}
	}

	// a plain string logo serves both modes
	if s, ok, _ := unstructured.NestedFieldNoCopy(obj, "logo"); ok {
		if s, ok := s.(string); ok {
			d.Logo = Logo{Light: s, Dark: s}
		}
	}

	if d.Head, err = head(obj); err != nil {
		return nil, err
	}
	if v, ok := themeField(obj, "lastUpdated"); ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("lastUpdated: expected a boolean, got %T", v)
		}
		d.LastUpdated = b
	}
	if d.SocialLinks, err = socialLinks(obj); err != nil {
		return nil, err
	}

	if v, ok := themeField(obj, "sidebar"); ok {
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("sidebar: expected an object, got %T", v)
		}
		if d.Sidebar, err = sidebar.Parse(m); err != nil {
			return nil, err
		}
	} else {
		d.Sidebar = sidebar.NewTree()
	}
	return d, nil
}

func themeField(obj map[string]interface{}, fields ...string) (interface{}, bool) {
	if v, ok, _ := unstructured.NestedFieldNoCopy(obj, append([]string{"themeConfig"}, fields...)...); ok {
		return v, true
	}
	v, ok, _ := unstructured.NestedFieldNoCopy(obj, fields...)
	return v, ok
}

func themeString(obj map[string]interface{}, dst *string, fields ...string) error {
	v, ok := themeField(obj, fields...)
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%s: expected a string, got %T", strings.Join(fields, "."), v)
	}
	*dst = s
	return nil
}

func head(obj map[string]interface{}) ([]string, error) {
	v, ok := themeField(obj, "head")
	if !ok {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("head: expected a list, got %T", v)
	}
	out := make([]string, 0, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("head[%d]: expected a string, got %T", i, e)
		}
		out = append(out, s)
	}
	return out, nil
}

func socialLinks(obj map[string]interface{}) ([]SocialLink, error) {
	v, ok := themeField(obj, "socialLinks")
	if !ok {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("socialLinks: expected a list, got %T", v)
	}
	out := make([]SocialLink, 0, len(list))
	for i, e := range list {
		m, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("socialLinks[%d]: expected an object, got %T", i, e)
		}
		var link SocialLink
		for _, f := range []struct {
			name string
			dst  *string
		}{{"icon", &link.Icon}, {"mode", &link.Mode}, {"content", &link.Content}} {
			s, _, err := unstructured.NestedString(m, f.name)
			if err != nil {
				return nil, fmt.Errorf("socialLinks[%d]: %w", i, err)
			}
			*f.dst = s
		}
		out = append(out, link)
	}
	return out, nil
}

var socialModes = map[string]bool{"link": true, "text": true, "img": true, "dom": true}

// Validate checks the descriptor fields and its sidebar.
func (d *Descriptor) Validate(v sidebar.Validator, paths sidebar.ContentPaths) []sidebar.Issue {
	var issues []sidebar.Issue
	add := func(sev sidebar.Severity, kind sidebar.Kind, path, format string, args ...interface{}) {
		issues = append(issues, sidebar.Issue{
			Severity: sev,
			Kind:     kind,
			Path:     path,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if strings.TrimSpace(d.Title) == "" {
		add(sidebar.SeverityError, sidebar.KindMissingField, "title", "site title is empty")
	}
	if d.Logo.Light == "" {
		add(sidebar.SeverityWarning, sidebar.KindMissingField, "logo.light", "no light-mode logo")
	}
	if d.Logo.Dark == "" {
		add(sidebar.SeverityWarning, sidebar.KindMissingField, "logo.dark", "no dark-mode logo")
	}
	for i, l := range d.SocialLinks {
		where := "socialLinks[" + strconv.Itoa(i) + "]"
		if !socialModes[l.Mode] {
			add(sidebar.SeverityError, sidebar.KindInvalidValue, where+".mode", "unknown mode %q", l.Mode)
			continue
		}
		if l.Mode == "link" {
			if u, err := url.Parse(l.Content); err != nil || u.Scheme == "" || u.Host == "" {
				add(sidebar.SeverityError, sidebar.KindInvalidValue, where+".content", "%q is not an absolute URL", l.Content)
			}
		}
	}
	if d.FooterMessage != "" {
		if _, err := raymond.Parse(d.FooterMessage); err != nil {
			add(sidebar.SeverityError, sidebar.KindInvalidValue, "footer.message", "bad template: %v", err)
		}
	}

	if d.Sidebar != nil {
		issues = append(issues, v.Validate(d.Sidebar, paths)...)
	}
	return issues
}

// FooterText renders the footer message. Placeholders: {{year}}, {{title}}.
func (d *Descriptor) FooterText(now time.Time) (string, error) {
	if d.FooterMessage == "" {
		return "", nil
	}
	tpl, err := raymond.Parse(d.FooterMessage)
	if err != nil {
		return "", fmt.Errorf("parse footer message: %w", err)
	}
	out, err := tpl.Exec(map[string]interface{}{
		"year":  now.Year(),
		"title": d.Title,
	})
	if err != nil {
		return "", fmt.Errorf("render footer message: %w", err)
	}
	return out, nil
}
