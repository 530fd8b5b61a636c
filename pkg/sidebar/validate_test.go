package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUnmarshal(t *testing.T, doc string) *Tree {
	t.Helper()
	tree, err := Unmarshal([]byte(doc))
	require.NoError(t, err)
	return tree
}

func kinds(issues []Issue) []Kind {
	out := make([]Kind, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Kind)
	}
	return out
}

func TestValidateDuplicateLink(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - text: OVERVIEW
    items:
      - text: Providers
        link: /overview/providers
  - text: FUNDAMENTALS
    items:
      - text: Custom providers
        link: /overview/providers
`)
	issues := Validate(tree, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, KindDuplicateLink, issues[0].Kind)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, []string{
		"sidebar./ > OVERVIEW > Providers",
		"sidebar./ > FUNDAMENTALS > Custom providers",
	}, issues[0].Related)
	assert.Equal(t, "sidebar./ > OVERVIEW > Providers", issues[0].Path)
}

func TestValidateDuplicateLinkThreeTimes(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: A, link: /a}
  - {text: B, link: /a}
  - {text: C, link: /a}
`)
	issues := Validate(tree, nil)
	require.Len(t, issues, 1)
	assert.Len(t, issues[0].Related, 3)
}

func TestValidateDuplicateLinkAcrossRootsIsFine(t *testing.T) {
	tree := mustUnmarshal(t, `
/en/:
  - {text: Providers, link: /overview/providers}
/zh/:
  - {text: Providers, link: /overview/providers}
`)
	assert.Empty(t, Validate(tree, nil))
}

func TestValidateDanglingLink(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: Missing, link: /missing/page}
  - {text: GitHub, link: https://github.com/nestjs/nest}
`)
	issues := Validate(tree, NewPathSet())
	require.Len(t, issues, 1)
	assert.Equal(t, KindDanglingLink, issues[0].Kind)
	assert.Equal(t, "sidebar./ > Missing", issues[0].Path)
}

func TestValidateResolvesContentPaths(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: Intro, link: /index}
  - {text: Pipes, link: "/overview/pipes#binding"}
`)
	issues := Validate(tree, NewPathSet("/index", "/overview/pipes"))
	assert.Empty(t, issues)
}

func TestValidateEmptyLabelAtAnyDepth(t *testing.T) {
	tests := []struct {
		name, doc, wantPath string
	}{
		{"top level", `
/:
  - {text: "", link: /a}
`, "sidebar./ > [0]"},
		{"nested", `
/:
  - text: A
    items:
      - text: B
        items:
          - {text: C, link: /c}
          - {text: "", link: /d}
`, "sidebar./ > A > B > [1]"},
		{"section", `
/:
  - text: "  "
    items:
      - {text: C, link: /c}
`, "sidebar./ > [0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(mustUnmarshal(t, tt.doc), nil)
			require.Equal(t, []Kind{KindEmptyLabel}, kinds(issues))
			assert.Equal(t, tt.wantPath, issues[0].Path)
		})
	}
}

func TestValidateEmptyGroup(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - text: TECHNIQUES
    items: []
`)
	issues := Validate(tree, NewPathSet())
	require.Len(t, issues, 1)
	assert.Equal(t, KindEmptyGroup, issues[0].Kind)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.False(t, HasErrors(issues))
}

func TestValidateEmptyLink(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: A, link: ""}
`)
	assert.Equal(t, []Kind{KindEmptyLink}, kinds(Validate(tree, NewPathSet())))
}

func TestValidateExcessiveDepth(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - text: L1
    items:
      - text: L2
        items:
          - text: L3
            items:
              - {text: L4, link: /l4}
              - text: L4b
                items:
                  - {text: L5, link: /l5}
                  - text: L5b
                    items:
                      - {text: L6, link: /l6}
`)
	issues := Validate(tree, NewPathSet("/l4", "/l5", "/l6"))
	require.Equal(t, []Kind{KindExcessiveDepth, KindExcessiveDepth}, kinds(issues))
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4b > L5", issues[0].Path)
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4b > L5b", issues[1].Path)

	// links past the limit are still resolved
	issues = Validate(tree, NewPathSet("/l4"))
	assert.Equal(t, []Kind{KindExcessiveDepth, KindDanglingLink, KindExcessiveDepth, KindDanglingLink}, kinds(issues))

	issues = Validator{MaxDepth: 5}.Validate(tree, nil)
	require.Equal(t, []Kind{KindExcessiveDepth}, kinds(issues))
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4b > L5b > L6", issues[0].Path)

	assert.Empty(t, Validator{MaxDepth: 6}.Validate(tree, nil))
	assert.Empty(t, Validator{MaxDepth: -1}.Validate(tree, nil))
}

func TestValidateChecksBranchesPastDepthLimit(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: Providers, link: /overview/providers}
  - text: L1
    items:
      - text: L2
        items:
          - text: L3
            items:
              - text: L4
                items:
                  - {text: L5, link: /overview/providers}
                  - text: L5b
                    items:
                      - {text: "", link: /missing/page}
`)
	issues := Validate(tree, NewPathSet("/overview/providers"))
	require.Equal(t, []Kind{
		KindExcessiveDepth,
		KindDuplicateLink,
		KindExcessiveDepth,
		KindEmptyLabel,
		KindDanglingLink,
	}, kinds(issues))

	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4 > L5", issues[0].Path)
	assert.Equal(t, []string{
		"sidebar./ > Providers",
		"sidebar./ > L1 > L2 > L3 > L4 > L5",
	}, issues[1].Related)
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4 > L5b", issues[2].Path)
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4 > L5b > [0]", issues[3].Path)
	assert.Equal(t, "sidebar./ > L1 > L2 > L3 > L4 > L5b > [0]", issues[4].Path)
	assert.True(t, HasErrors(issues))
}

func TestValidateDuplicateSamePageSpelledDifferently(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: A, link: /overview/providers}
  - {text: B, link: /overview/providers/}
  - {text: C, link: /overview/providers.md}
  - {text: D, link: /overview/providers#setup}
  - {text: E, link: https://example.com/a?x=1}
  - {text: F, link: https://example.com/a?x=2}
`)
	issues := Validate(tree, nil)
	require.Equal(t, []Kind{KindDuplicateLink}, kinds(issues))
	assert.Equal(t, []string{
		"sidebar./ > A",
		"sidebar./ > B",
		"sidebar./ > C",
	}, issues[0].Related)
	assert.Contains(t, issues[0].Message, `"/overview/providers" is used 3 times`)
}

func TestValidateNilTree(t *testing.T) {
	assert.Empty(t, Validate(nil, NewPathSet()))
}

func TestValidateCollectsEverythingInDisplayOrder(t *testing.T) {
	tree := mustUnmarshal(t, `
/:
  - {text: "", link: /a}
  - text: EMPTY
    items: []
  - {text: Dup, link: /a}
  - {text: Gone, link: /gone}
`)
	issues := Validate(tree, NewPathSet("/a"))
	assert.Equal(t, []Kind{KindEmptyLabel, KindEmptyGroup, KindDuplicateLink, KindDanglingLink}, kinds(issues))
	assert.True(t, HasErrors(issues))
}
