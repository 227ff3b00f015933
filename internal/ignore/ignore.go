// Package ignore reads .assatignore files: one gitignore-style pattern per
// line, '#' comments, trailing '/' for directories and leading '!' to
// re-include.
package ignore

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// FileName is the ignore file looked up at the scan root.
const FileName = ".assatignore"

// Matcher decides whether a root-relative, slash-separated path is ignored.
// The zero value ignores nothing.
type Matcher struct {
	m gitignore.Matcher
}

// Load parses the ignore file at path. A missing file yields an empty matcher
// together with the open error.
func Load(path string) (Matcher, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Matcher{}, err
	}
	return Parse(b), nil
}

// Parse builds a matcher from ignore file content.
func Parse(b []byte) Matcher {
	var ps []gitignore.Pattern
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	if len(ps) == 0 {
		return Matcher{}
	}
	return Matcher{m: gitignore.NewMatcher(ps)}
}

// Match reports whether the file at rel is ignored. The last matching rule
// wins.
func (m Matcher) Match(rel string) bool { return m.match(rel, false) }

// MatchDir reports whether the directory at rel is ignored.
func (m Matcher) MatchDir(rel string) bool { return m.match(rel, true) }

func (m Matcher) match(rel string, isDir bool) bool {
	if m.m == nil {
		return false
	}
	rel = strings.TrimPrefix(strings.ReplaceAll(rel, "\\", "/"), "./")
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return false
	}
	return m.m.Match(strings.Split(rel, "/"), isDir)
}
