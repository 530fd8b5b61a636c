package cmd

import (
	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/spf13/cobra"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		out      string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "merge BASE OVERLAY...",
		Short: "Layer one or more overlay sidebars onto a base sidebar",
		Long: `The merge command layers each overlay onto the base in order. Sections
with the same label at the same level are merged, base entries first; an
overlay section marked "replace: true" substitutes the base section; an
overlay leaf replaces the base leaf with the same link in place.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := xlog.WithComponent("merge")

			merged, err := readSidebar(args[0])
			if err != nil {
				return err
			}
			for _, path := range args[1:] {
				overlay, err := readSidebar(path)
				if err != nil {
					return err
				}
				merged = sidebar.Merge(merged, overlay)
				logger.Debug().Str("overlay", path).Msg("merged")
			}

			if validate {
				paths, err := a.contentPaths(cmd.Context(), "")
				if err != nil {
					return err
				}
				issues := a.validator().Validate(merged, paths)
				if err := a.report(cmd.ErrOrStderr(), issues); err != nil {
					return err
				}
			}
			return writeSidebar(cmd.OutOrStdout(), out, merged)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the merged sidebar to this file instead of stdout")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the merged sidebar and refuse to write it on errors")
	return cmd
}
