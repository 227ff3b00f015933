package source

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions selects decompiled Java sources.
var DefaultExtensions = []string{".java"}

// directories that never hold decompiled sources
var defaultExcludeDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	".idea":        true,
	".gradle":      true,
	"node_modules": true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

// NormalizeExtensions lower-cases extensions and ensures a leading dot.
// Entries may themselves be comma-separated.
func NormalizeExtensions(in []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, item := range in {
		for _, v := range strings.Split(item, ",") {
			v = strings.ToLower(strings.TrimSpace(v))
			v = strings.TrimPrefix(v, ".")
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, "."+v)
		}
	}
	return out
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// allowedByGlobs applies the comma-separated include globs as a positive
// filter, then subtracts the exclude globs.
func allowedByGlobs(relPath, include, exclude string) bool {
	rp := filepath.ToSlash(relPath)
	if includes := parseGlobsList(include); len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if excludes := parseGlobsList(exclude); len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
