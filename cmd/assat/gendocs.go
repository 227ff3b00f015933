package assat

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/assat/assat/internal/rules"
)

const (
	docsBegin = "<!-- BEGIN:RULE_SETS -->"
	docsEnd   = "<!-- END:RULE_SETS -->"
)

var flagDocsPath string

// gendocs regenerates the built-in rule set listing in README.md between the
// BEGIN/END:RULE_SETS markers.
func init() {
	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Regenerate the README rule set section",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := os.ReadFile(flagDocsPath)
			if err != nil {
				return err
			}
			nb, err := spliceRuleDocs(b, rules.Builtins())
			if err != nil {
				return fmt.Errorf("%s: %w", flagDocsPath, err)
			}
			return os.WriteFile(flagDocsPath, nb, 0644)
		},
	}
	cmd.Flags().StringVar(&flagDocsPath, "readme", "README.md", "file holding the markers")
	rootCmd.AddCommand(cmd)
}

func spliceRuleDocs(b []byte, sets []rules.Set) ([]byte, error) {
	i := bytes.Index(b, []byte(docsBegin))
	j := bytes.Index(b, []byte(docsEnd))
	if i < 0 || j < 0 || j <= i {
		return nil, fmt.Errorf("markers not found")
	}
	var nb bytes.Buffer
	nb.Write(b[:i])
	nb.WriteString(docsBegin)
	nb.WriteString("\n\n```\n")
	if err := writeRuleSets(&nb, sets); err != nil {
		return nil, err
	}
	nb.WriteString("```\n\n")
	nb.Write(b[j:])
	return nb.Bytes(), nil
}
