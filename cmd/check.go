package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/content"
	"github.com/appscodelabs/navcheck/pkg/report"
	"github.com/appscodelabs/navcheck/pkg/sidebar"
	"github.com/appscodelabs/navcheck/pkg/site"

	"github.com/spf13/cobra"
)

type checkOptions struct {
	sitePath    string
	sidebarPath string
	noContent   bool
}

func newCheckCmd(a *app) *cobra.Command {
	var o checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a site descriptor or a sidebar file",
		Long: `The check command parses a site descriptor (--site) or a bare sidebar
file (--sidebar), discovers the pages under the content directory and reports
empty labels, duplicate and dangling links, empty groups and sections nested
too deeply. It exits non-zero when any error is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := a.check(cmd.Context(), o)
			if err != nil {
				return err
			}
			return a.report(cmd.OutOrStdout(), issues)
		},
	}
	cmd.Flags().StringVar(&o.sitePath, "site", "site.yaml", "site descriptor (YAML or JSON)")
	cmd.Flags().StringVar(&o.sidebarPath, "sidebar", "", "check a bare sidebar file instead of a site descriptor")
	cmd.Flags().BoolVar(&o.noContent, "no-content", false, "skip the dangling link check")
	return cmd
}

func (a *app) validator() sidebar.Validator {
	return sidebar.Validator{MaxDepth: a.cfg.MaxDepth}
}

func (a *app) contentOptions() content.Options {
	return content.Options{IncludeDrafts: a.cfg.IncludeDrafts}
}

// contentPaths discovers pages under dir. A nil result disables the
// dangling link check.
func (a *app) contentPaths(ctx context.Context, dir string) (sidebar.ContentPaths, error) {
	logger := xlog.WithComponent("check")
	if a.cfg.ContentDir != "" {
		dir = a.cfg.ContentDir
	}
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		logger.Warn().Str("dir", dir).Msg("content directory not found, skipping dangling link check")
		return nil, nil
	}
	paths, err := content.Discover(ctx, dir, a.contentOptions())
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (a *app) check(ctx context.Context, o checkOptions) ([]sidebar.Issue, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if o.sidebarPath != "" {
		tree, err := readSidebar(o.sidebarPath)
		if err != nil {
			return nil, err
		}
		var paths sidebar.ContentPaths
		if !o.noContent {
			if paths, err = a.contentPaths(ctx, ""); err != nil {
				return nil, err
			}
		}
		return a.validator().Validate(tree, paths), nil
	}

	d, err := site.Load(o.sitePath)
	if err != nil {
		return nil, err
	}
	var paths sidebar.ContentPaths
	if !o.noContent {
		if paths, err = a.contentPaths(ctx, d.ContentDir()); err != nil {
			return nil, err
		}
	}
	return d.Validate(a.validator(), paths), nil
}

func (a *app) report(w io.Writer, issues []sidebar.Issue) error {
	if err := report.Write(w, issues, a.cfg.Output); err != nil {
		return err
	}
	if sidebar.HasErrors(issues) {
		return ErrIssues
	}
	return nil
}
