package assat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/assat/assat/internal/config"
	"github.com/assat/assat/internal/engine"
	"github.com/assat/assat/internal/logging"
	"github.com/assat/assat/internal/report"
	"github.com/assat/assat/internal/rules"
	"github.com/assat/assat/internal/source"
)

func runScan(cmd *cobra.Command, _ []string) error {
	modes := config.Modes{
		Prefs:        flagSXML,
		KeyStore:     flagSKey,
		Crypto:       flagSCrypt,
		Find:         flagSFind,
		Rules:        flagSRules,
		DynamicPrefs: flagDXML,
		DynamicDB:    flagDBD,
		Path:         flagPath,
		Pattern:      flagPattern,
		RulesFile:    flagRules,
	}
	// the rule file may come from config; anything else is decided on flags alone
	var lcfg, gcfg config.FileConfig
	loaded := false
	if modes.Rules && modes.RulesFile == "" && modes.Path != "" {
		lcfg, gcfg = loadConfigs(modes.Path)
		loaded = true
		modes.RulesFile = configRulesFile(modes.Path, lcfg, gcfg)
	}
	mode, err := modes.Select()
	if err != nil {
		return err
	}
	if !loaded {
		lcfg, gcfg = loadConfigs(modes.Path)
	}

	out := cmd.OutOrStdout()
	noColor := resolveNoColor(out, pickFlagBool(cmd, "nocolor", flagNoColor, lcfg.NoColor, gcfg.NoColor))
	log, closeLog, err := logging.Init(logging.Options{
		Level:   pickString(flagLogLevel, lcfg.LogLevel, gcfg.LogLevel),
		File:    flagLogFile,
		NoColor: noColor,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return &config.ConfigError{Msg: err.Error()}
	}
	defer closeLog()

	if !mode.Static() {
		log.WithField("mode", mode).Warn("dynamic analysis needs a connected device and is not implemented")
		return nil
	}

	format := pickString(flagFormat, lcfg.Format, gcfg.Format)
	if format == "" {
		format = report.FormatText
	}
	if !report.ValidFormat(format) {
		return &config.ConfigError{Msg: fmt.Sprintf("unknown format %q, use text or table", format)}
	}

	set, err := ruleSet(mode, flagPattern, modes.RulesFile)
	if err != nil {
		return err
	}

	exts := lcfg.Extensions
	if len(exts) == 0 {
		exts = gcfg.Extensions
	}
	if flagExt != "" {
		exts = []string{flagExt}
	}
	cfg := engine.Config{
		Root: flagPath,
		Set:  set,
		Source: source.Options{
			Extensions:      source.NormalizeExtensions(exts),
			IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
			ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
			MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
			DefaultExcludes: pickFlagBool(cmd, "default-excludes", flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
		},
		Logger: log,
	}
	rep, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return report.Render(out, rep, report.Options{
		Format:    format,
		NoColor:   noColor,
		Highlight: pickFlagBool(cmd, "highlight", flagHighlight, lcfg.Highlight, gcfg.Highlight),
	})
}

// ruleSet resolves the classification table for a static mode.
func ruleSet(mode config.Mode, pattern, rulesFile string) (rules.Set, error) {
	switch mode {
	case config.ModePrefs:
		return rules.Preferences, nil
	case config.ModeKeyStore:
		return rules.KeyStore, nil
	case config.ModeCrypto:
		return rules.Crypto, nil
	case config.ModeFind:
		return rules.Pattern(pattern)
	case config.ModeRules:
		return rules.LoadFile(rulesFile)
	}
	return rules.Set{}, fmt.Errorf("mode %q has no rule set", mode)
}

func loadConfigs(root string) (local, global config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if root == "" {
		return local, global
	}
	abs, _ := filepath.Abs(root)
	if c, err := config.LoadLocal(abs); err == nil {
		local = c
	}
	return local, global
}

// configRulesFile picks the rules key; a relative path in the local config is
// taken relative to the scan root.
func configRulesFile(root string, local, global config.FileConfig) string {
	if local.Rules != nil && *local.Rules != "" {
		if filepath.IsAbs(*local.Rules) {
			return *local.Rules
		}
		return filepath.Join(root, *local.Rules)
	}
	return pickString("", nil, global.Rules)
}

// resolveNoColor turns colour off when asked, when NO_COLOR is set or when
// out is not a terminal.
func resolveNoColor(out io.Writer, requested bool) bool {
	if requested || os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := out.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}
