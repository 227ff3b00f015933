package core

import (
	"io"

	"github.com/assat/assat/internal/engine"
	"github.com/assat/assat/internal/report"
	"github.com/assat/assat/internal/rules"
	"github.com/assat/assat/internal/source"
	"github.com/assat/assat/internal/types"
)

// Re-exported types. These are aliases so callers can depend on a stable path.
type (
	Config        = engine.Config
	SourceOptions = source.Options
	RuleSet       = rules.Set
	Report        = types.ScanReport
	FileResult    = types.FileResult
	MatchRecord   = types.MatchRecord
	RenderOptions = report.Options
)

// Built-in rule sets.
var (
	Preferences = rules.Preferences
	KeyStore    = rules.KeyStore
	Crypto      = rules.Crypto
)

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) (Report, error) {
	return engine.Scan(cfg)
}

// Pattern builds a one-rule set from a case-insensitive regular expression.
func Pattern(expr string) (RuleSet, error) { return rules.Pattern(expr) }

// LoadRules reads a YAML rule set file.
func LoadRules(path string) (RuleSet, error) { return rules.LoadFile(path) }

// RuleSets returns the built-in rule sets.
func RuleSets() []RuleSet { return rules.Builtins() }

// Render writes rep the way the CLI does.
func Render(w io.Writer, rep Report, opts RenderOptions) error {
	return report.Render(w, rep, opts)
}
