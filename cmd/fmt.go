package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		write bool
		check bool
	)
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a sidebar file in canonical form",
		Long: `The fmt command re-encodes a sidebar file with sorted roots, a fixed key
order and relative links made absolute. Entry order is never changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			orig, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tree, err := sidebar.Unmarshal(orig)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			formatted, err := sidebar.Marshal(tree)
			if err != nil {
				return err
			}

			switch {
			case check:
				if !bytes.Equal(orig, formatted) {
					return fmt.Errorf("%s is not formatted", path)
				}
				return nil
			case write:
				if bytes.Equal(orig, formatted) {
					return nil
				}
				return writeFile(cmd.OutOrStdout(), path, formatted)
			default:
				_, err = cmd.OutOrStdout().Write(formatted)
				return err
			}
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&check, "check", false, "fail if the file is not already formatted")
	return cmd
}
