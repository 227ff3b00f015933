package assat

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// mode switches, exactly one per run
	flagSXML   bool
	flagSKey   bool
	flagSCrypt bool
	flagSFind  bool
	flagSRules bool
	flagDXML   bool
	flagDBD    bool

	flagPath            string
	flagPattern         string
	flagRules           string
	flagNoColor         bool
	flagFormat          string
	flagHighlight       bool
	flagExt             string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagDefaultExcludes bool
	flagLogLevel        string
	flagLogFile         string

	version = "0.3.0"
)

// rootCmd is the base Cobra command for the assat CLI.
var rootCmd = &cobra.Command{
	Use:   "assat",
	Short: "Find secure-storage usage in decompiled Android sources",
	Long: "assat walks a directory of decompiled Java sources and reports lines that touch " +
		"SharedPreferences, KeyStore/KeyChain, JCA crypto or a pattern of your choice, grouped by file and category.",
	Example: `  assat --sxml -p ./jadx-out
  assat --sfind --pattern 'getExternalStorage' -p ./jadx-out --format table
  assat --srules --rules android-storage.yml -p ./jadx-out`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// Execute runs the assat CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagSXML, "sxml", false, "static: scan SharedPreferences usage")
	f.BoolVar(&flagSKey, "skey", false, "static: scan KeyStore and KeyChain usage")
	f.BoolVar(&flagSCrypt, "scrypt", false, "static: scan JCA cipher, digest and key usage")
	f.BoolVar(&flagSFind, "sfind", false, "static: scan for the --pattern regular expression")
	f.BoolVar(&flagSRules, "srules", false, "static: scan with the rule set in --rules")
	f.BoolVar(&flagDXML, "dxml", false, "dynamic: watch SharedPreferences files (not implemented)")
	f.BoolVar(&flagDBD, "dbd", false, "dynamic: watch databases (not implemented)")

	f.StringVarP(&flagPath, "path", "p", "", "path to the decompiled Java code directory")
	f.StringVar(&flagPattern, "pattern", "", "regular expression for --sfind (RE2 syntax, case-insensitive)")
	f.StringVar(&flagRules, "rules", "", "YAML rule set file for --srules")
	f.StringVar(&flagFormat, "format", "", "output format: text | table (default text)")
	f.BoolVar(&flagHighlight, "highlight", false, "syntax-highlight matched lines")
	f.StringVar(&flagExt, "ext", "", "comma-separated file extensions to scan (default java)")
	f.StringVar(&flagInclude, "include", "", "comma-separated include globs")
	f.StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	f.Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	f.BoolVar(&flagDefaultExcludes, "default-excludes", true, "skip VCS and IDE directories (.git, .idea, .gradle, ...)")

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagNoColor, "nocolor", false, "disable color output (use this when printing to a file)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug | info | warn | error (default info)")
	pf.StringVar(&flagLogFile, "log-file", "", "append logs to this file instead of stderr")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
}

// normalizeFlagName accepts --no-color as a spelling of --nocolor.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.EqualFold(name, "no-color") {
		name = "nocolor"
	}
	return pflag.NormalizedName(name)
}
