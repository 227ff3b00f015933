package assat

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/assat/assat/internal/rules"
)

var flagRulesFile string

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List built-in rule sets, or check a rule set file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets := rules.Builtins()
			if flagRulesFile != "" {
				s, err := rules.LoadFile(flagRulesFile)
				if err != nil {
					return err
				}
				sets = []rules.Set{s}
			}
			return writeRuleSets(cmd.OutOrStdout(), sets)
		},
	}
	cmd.Flags().StringVar(&flagRulesFile, "file", "", "YAML rule set to validate and list instead of the built-ins")
	rootCmd.AddCommand(cmd)
}

// writeRuleSets prints one table row per rule; earlier rules win within a set.
func writeRuleSets(w io.Writer, sets []rules.Set) error {
	t := tablewriter.NewWriter(w)
	t.Header("SET", "CATEGORY", "PATTERN")
	for _, s := range sets {
		for _, r := range s.Rules {
			if err := t.Append([]string{s.Name, r.Name, r.Pattern.String()}); err != nil {
				return err
			}
		}
	}
	if err := t.Render(); err != nil {
		return err
	}
	for _, s := range sets {
		if s.Description != "" {
			if _, err := fmt.Fprintf(w, "%-9s %s\n", s.Name, s.Description); err != nil {
				return err
			}
		}
	}
	return nil
}
