// Package report prints validation issues for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Summary counts issues per severity.
type Summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

func Summarize(issues []sidebar.Issue) Summary {
	var s Summary
	for _, i := range issues {
		switch i.Severity {
		case sidebar.SeverityError:
			s.Errors++
		case sidebar.SeverityWarning:
			s.Warnings++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d error(s), %d warning(s)", s.Errors, s.Warnings)
}

type document struct {
	Summary Summary         `json:"summary" yaml:"summary"`
	Issues  []sidebar.Issue `json:"issues" yaml:"issues"`
}

// Write prints issues in the given format, preserving their order.
func Write(w io.Writer, issues []sidebar.Issue, format string) error {
	doc := document{Summary: Summarize(issues), Issues: issues}
	if doc.Issues == nil {
		doc.Issues = []sidebar.Issue{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatTable, "":
		return writeTable(w, issues)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, issues []sidebar.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Severity", "Kind", "Path", "Message")
	for _, i := range issues {
		if err := table.Append(string(i.Severity), string(i.Kind), i.Path, i.Message); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Summarize(issues))
	return err
}
