package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Append adds pattern to the ignore file at root unless an identical line is
// already present. The file is created when missing.
func Append(root, pattern string) (added bool, err error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false, nil
	}
	path := filepath.Join(root, FileName)
	endsWithNewline := true
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == pattern {
				_ = f.Close()
				return false, nil
			}
		}
		_ = f.Close()
		if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
			endsWithNewline = b[len(b)-1] == '\n'
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if !endsWithNewline {
		pattern = "\n" + pattern
	}
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return false, err
	}
	return true, nil
}

// GeneratedPatterns lists decompiler output that rarely holds app logic:
// resource tables, build config and bundled support libraries.
func GeneratedPatterns() []string {
	return []string{
		"R.java",
		"R$*.java",
		"BuildConfig.java",
		"**/android/support/",
		"**/androidx/",
	}
}
