package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSet is the on-disk YAML shape of a custom rule set.
//
//	name: webview
//	description: risky WebView settings
//	rules:
//	  - name: JavaScript
//	    pattern: setJavaScriptEnabled\(true\)
type FileSet struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Rules       []FileRule `yaml:"rules"`
}

// FileRule is one entry of a FileSet.
type FileRule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// LoadFile reads and compiles a custom rule set.
func LoadFile(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	var fs FileSet
	if err := yaml.Unmarshal(b, &fs); err != nil {
		return Set{}, fmt.Errorf("parse %s: %w", path, err)
	}
	s, err := fs.Compile()
	if err != nil {
		return Set{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return s, nil
}

// Compile validates the file set and turns it into a Set.
func (fs FileSet) Compile() (Set, error) {
	if len(fs.Rules) == 0 {
		return Set{}, errors.New("no rules defined")
	}
	name := strings.TrimSpace(fs.Name)
	if name == "" {
		name = "custom"
	}
	seen := map[string]bool{}
	out := Set{Name: name, Description: fs.Description}
	for i, fr := range fs.Rules {
		label := strings.TrimSpace(fr.Name)
		if label == "" {
			return Set{}, fmt.Errorf("rule %d: missing name", i+1)
		}
		if seen[label] {
			return Set{}, fmt.Errorf("rule %d: duplicate name %q", i+1, label)
		}
		if fr.Pattern == "" {
			return Set{}, fmt.Errorf("rule %q: missing pattern", label)
		}
		seen[label] = true
		r, err := Compile(label, fr.Pattern)
		if err != nil {
			return Set{}, err
		}
		out.Rules = append(out.Rules, r)
	}
	return out, nil
}
