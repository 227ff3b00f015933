package assat

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assat/assat/internal/ignore"
)

var (
	flagIgnoreRoot      string
	flagIgnoreGenerated bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "ignore [pattern...]",
		Short: "Add patterns to the " + ignore.FileName + " file of a source tree",
		Example: `  assat ignore -p ./jadx-out --generated
  assat ignore -p ./jadx-out '/com/google/' '/kotlin/'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if flagIgnoreGenerated {
				patterns = append(ignore.GeneratedPatterns(), patterns...)
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no patterns given")
			}
			for _, p := range patterns {
				added, err := ignore.Append(flagIgnoreRoot, p)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintln(cmd.OutOrStdout(), "added", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagIgnoreRoot, "path", "p", ".", "root of the decompiled source tree")
	cmd.Flags().BoolVar(&flagIgnoreGenerated, "generated", false, "add patterns for generated and bundled library sources")
	rootCmd.AddCommand(cmd)
}
