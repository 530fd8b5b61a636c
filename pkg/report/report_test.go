package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var issues = []sidebar.Issue{
	{
		Severity: sidebar.SeverityError,
		Kind:     sidebar.KindDanglingLink,
		Path:     "sidebar./ > TECHNIQUES > Caching",
		Message:  `link "/techniques/caching" does not match any content page`,
	},
	{
		Severity: sidebar.SeverityWarning,
		Kind:     sidebar.KindEmptyGroup,
		Path:     "sidebar./ > RECIPES",
		Message:  "section has no items",
	},
}

func TestSummarize(t *testing.T) {
	s := Summarize(issues)
	assert.Equal(t, Summary{Errors: 1, Warnings: 1}, s)
	assert.Equal(t, "1 error(s), 1 warning(s)", s.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, issues, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "TECHNIQUES")
	assert.Contains(t, out, "dangling-link")
	assert.Contains(t, out, "empty-group")
	assert.Contains(t, out, "1 error(s), 1 warning(s)")
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatTable))
	assert.Equal(t, "No issues found.\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, issues, FormatJSON))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, issues, doc.Issues)
	assert.Equal(t, 1, doc.Summary.Errors)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatYAML))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Empty(t, doc.Issues)
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, issues, "xml"))
}
