// Package cmd implements the navcheck command line.
package cmd

import (
	"context"
	"errors"

	"github.com/appscodelabs/navcheck/internal/config"
	xlog "github.com/appscodelabs/navcheck/internal/log"
	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrIssues is returned when validation reports at least one error.
var ErrIssues = errors.New("validation reported errors")

type app struct {
	cfgFile string
	viper   *viper.Viper
	cfg     *config.Config
}

// NewRootCommand builds the navcheck command tree.
func NewRootCommand() *cobra.Command {
	a := &app{viper: viper.New()}

	root := &cobra.Command{
		Use:   "navcheck",
		Short: "Validate, merge and scaffold documentation site sidebars",
		Long: `navcheck reads the declarative configuration of a documentation site
(title, logos, social links, footer and the sidebar navigation tree), checks
it against the content directory and reports every problem in one pass.

It can also merge sidebars from several sources, aggregate product sidebars
from their repositories and scaffold a sidebar from a content tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.viper, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			xlog.Configure(xlog.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: cmd.ErrOrStderr()})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.navcheck.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON lines")
	flags.Int("max-depth", sidebar.DefaultMaxDepth, "maximum sidebar nesting depth, negative disables the check")
	flags.String("content", "", "content directory used to resolve sidebar links")
	flags.Bool("include-drafts", false, "treat draft pages as existing content")
	flags.StringP("output", "o", "table", "report format (table, json, yaml)")
	for key, flag := range map[string]string{
		"log_level":      "log-level",
		"log_json":       "log-json",
		"max_depth":      "max-depth",
		"content_dir":    "content",
		"include_drafts": "include-drafts",
		"output":         "output",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newCheckCmd(a),
		newMergeCmd(a),
		newFmtCmd(a),
		newGenerateCmd(a),
		newAggregateCmd(a),
		newWatchCmd(a),
	)
	return root
}

// Execute runs the root command with os.Args. Long-running commands stop
// when ctx is cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
