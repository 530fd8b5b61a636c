package sidebar

import (
	"fmt"
	"strings"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Kind string

const (
	KindEmptyLabel     Kind = "empty-label"
	KindEmptyLink      Kind = "empty-link"
	KindDuplicateLink  Kind = "duplicate-link"
	KindDanglingLink   Kind = "dangling-link"
	KindExcessiveDepth Kind = "excessive-depth"
	KindEmptyGroup     Kind = "empty-group"

	// Site descriptor kinds.
	KindMissingField Kind = "missing-field"
	KindInvalidValue Kind = "invalid-value"
)

// Issue is a single non-fatal validation finding.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`

	// Related lists every location involved, e.g. all occurrences of a
	// duplicated link. Path is always Related[0] when set.
	Related []string `json:"related,omitempty" yaml:"related,omitempty"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", i.Severity, i.Path, i.Message, i.Kind)
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// MalformedNodeError is returned by Parse when a node is neither a valid
// leaf nor a valid section.
type MalformedNodeError struct {
	Path   string
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed sidebar node at %s: %s", e.Path, e.Reason)
}

func malformed(p Path, format string, args ...interface{}) error {
	return &MalformedNodeError{Path: p.String(), Reason: fmt.Sprintf(format, args...)}
}

func joinPaths(paths []string) string {
	return strings.Join(paths, "; ")
}
