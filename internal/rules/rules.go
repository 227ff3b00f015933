package rules

import (
	"fmt"
	"regexp"
)

// Rule is a named classifier. Name doubles as the category label.
type Rule struct {
	Name            string
	Pattern         *regexp.Regexp
	CaseInsensitive bool
}

// Set is the ordered rule table for one scan mode.
type Set struct {
	Name        string
	Description string
	Rules       []Rule
}

// Categories returns rule names in declared order.
func (s Set) Categories() []string {
	out := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		out = append(out, r.Name)
	}
	return out
}

// Flat reports whether the set has a single category, in which case the label
// carries no information and reports list matches without a sub-header.
func (s Set) Flat() bool { return len(s.Rules) == 1 }

// Classify returns the name of the first rule matching line. Rules are
// evaluated strictly in order; matching is a substring search.
func Classify(line string, set []Rule) (string, bool) {
	for _, r := range set {
		if r.Pattern.MatchString(line) {
			return r.Name, true
		}
	}
	return "", false
}

// PatternError reports a pattern that does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Compile builds a case-insensitive rule from a raw expression.
func Compile(name, expr string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return Rule{}, &PatternError{Pattern: expr, Err: err}
	}
	return Rule{Name: name, Pattern: re, CaseInsensitive: true}, nil
}

func mustCompile(name, expr string) Rule {
	r, err := Compile(name, expr)
	if err != nil {
		panic(err)
	}
	return r
}

// FindCategory is the single bucket label used by ad-hoc pattern scans.
const FindCategory = "Match"

// Pattern builds the one-rule set for an ad-hoc scan. Syntax errors surface
// as *PatternError before any file is touched.
func Pattern(raw string) (Set, error) {
	r, err := Compile(FindCategory, raw)
	if err != nil {
		return Set{}, err
	}
	return Set{
		Name:        "find",
		Description: fmt.Sprintf("lines matching %q", raw),
		Rules:       []Rule{r},
	}, nil
}
