package cmd

import (
	"github.com/appscodelabs/navcheck/pkg/aggregate"

	"github.com/spf13/cobra"
)

func newAggregateCmd(a *app) *cobra.Command {
	var (
		products string
		workDir  string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Combine product sidebars from their repositories",
		Long: `The aggregate command reads a products file, checks out every hosted
version of every product, rebases the product sidebar under
/<product>/<branch> and layers it onto the base sidebar. The combined sidebar
is validated against the combined content of all products before it is
written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aggregate.LoadConfig(products)
			if err != nil {
				return err
			}
			if workDir == "" {
				workDir = a.cfg.WorkDir
			}

			agg := &aggregate.Aggregator{
				Config:  cfg,
				WorkDir: workDir,
				Content: a.contentOptions(),
			}
			res, err := agg.Run(cmd.Context())
			if err != nil {
				return err
			}

			issues := a.validator().Validate(res.Sidebar, res.Paths)
			if err := a.report(cmd.ErrOrStderr(), issues); err != nil {
				return err
			}
			return writeSidebar(cmd.OutOrStdout(), out, res.Sidebar)
		},
	}
	cmd.Flags().StringVar(&products, "products", "products.json", "products file (JSON or YAML)")
	cmd.Flags().StringVar(&workDir, "workdir", "", "directory for product checkouts (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "write the combined sidebar to this file instead of stdout")
	return cmd
}
