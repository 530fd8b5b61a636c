package cmd

import (
	"context"
	"errors"
	"fmt"

	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/report"
	"github.com/appscodelabs/navcheck/pkg/site"
	"github.com/appscodelabs/navcheck/pkg/watch"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var o checkOptions
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run check whenever the descriptor or content changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := xlog.WithComponent("watch")
			w := cmd.OutOrStdout()

			run := func(ctx context.Context) {
				issues, err := a.check(ctx, o)
				if err != nil {
					logger.Error().Err(err).Msg("check failed")
					return
				}
				if err := a.report(w, issues); err != nil && !errors.Is(err, ErrIssues) {
					logger.Error().Err(err).Msg("cannot write report")
					return
				}
				logger.Info().Str("result", report.Summarize(issues).String()).Msg("checked")
			}

			paths := []string{o.sitePath}
			if o.sidebarPath != "" {
				paths = []string{o.sidebarPath}
			}
			dir := a.cfg.ContentDir
			if dir == "" && o.sidebarPath == "" {
				d, err := site.Load(o.sitePath)
				if err != nil {
					return err
				}
				dir = d.ContentDir()
			}
			if dir != "" && !o.noContent {
				paths = append(paths, dir)
			}

			ctx := cmd.Context()
			run(ctx)
			watcher := &watch.Watcher{Paths: paths, OnChange: run}
			if err := watcher.Run(ctx); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&o.sitePath, "site", "site.yaml", "site descriptor (YAML or JSON)")
	cmd.Flags().StringVar(&o.sidebarPath, "sidebar", "", "watch a bare sidebar file instead of a site descriptor")
	cmd.Flags().BoolVar(&o.noContent, "no-content", false, "skip the dangling link check")
	return cmd
}
