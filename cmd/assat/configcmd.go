package assat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/assat/assat/internal/config"
)

var (
	cfgOutput          string
	cfgForce           bool
	cfgExt             string
	cfgMaxBytes        int64
	cfgFormat          string
	cfgHighlight       bool
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgRules           string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .assat.yml with the selected options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", config.LocalNames[0], "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&cfgExt, "ext", "java", "comma-separated file extensions to scan")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	initCmd.Flags().StringVar(&cfgFormat, "format", "text", "default output format: text | table")
	initCmd.Flags().BoolVar(&cfgHighlight, "highlight", false, "syntax-highlight matched lines by default")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "skip VCS and IDE directories")
	initCmd.Flags().StringVar(&cfgRules, "rules", "", "YAML rule set used by --srules")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if cfgFormat != "text" && cfgFormat != "table" {
		return &config.ConfigError{Msg: fmt.Sprintf("unknown format %q, use text or table", cfgFormat)}
	}
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", cfgOutput)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	fc := config.FileConfig{
		Extensions:      splitList(cfgExt),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
		NoColor:         boolPtr(cfgNoColor),
		Format:          strPtr(cfgFormat),
		Highlight:       boolPtr(cfgHighlight),
		Rules:           optStrPtr(cfgRules),
	}
	b, err := fc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}
