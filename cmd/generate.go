package cmd

import (
	"github.com/appscodelabs/navcheck/pkg/content"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scaffold a sidebar from a content directory",
		Long: `The generate command walks the content directory (--content) and writes a
sidebar where every directory is a section and every page a leaf. Entries are
ordered by front matter weight, then by file name; labels come from the front
matter title or the file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.ContentDir
			if dir == "" {
				dir = "docs"
			}
			tree, err := content.Generate(cmd.Context(), dir, a.contentOptions())
			if err != nil {
				return err
			}
			return writeSidebar(cmd.OutOrStdout(), out, tree)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the sidebar to this file instead of stdout")
	return cmd
}
