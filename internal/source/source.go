// Package source enumerates decompiled source files under a root directory
// and hands them out one at a time.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/assat/assat/internal/ignore"
	"github.com/assat/assat/internal/types"
)

var (
	ErrNotDir   = errors.New("not a directory")
	ErrBinary   = errors.New("binary content")
	ErrTooLarge = errors.New("file exceeds size limit")
)

// PathError reports an unusable scan root. It is fatal for a scan.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return fmt.Sprintf("scan root %s: %v", e.Path, e.Err) }
func (e *PathError) Unwrap() error { return e.Err }

// FileReadError reports a single file that could not be read. The iterator
// remains usable after returning one.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *FileReadError) Unwrap() error { return e.Err }

// Options controls which files are selected.
type Options struct {
	// Extensions lists accepted extensions with leading dot; empty means
	// DefaultExtensions.
	Extensions      []string
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	DefaultExcludes bool
}

type entry struct {
	path string
	err  error
}

// Iterator yields the selected files in traversal order. It is finite and not
// restartable; call Open again for a fresh sequence.
type Iterator struct {
	entries  []entry
	pos      int
	maxBytes int64
}

// Open validates root and collects candidate paths without reading any file
// content. Directory walk order is lexical, so the sequence is reproducible.
func Open(root string, opts Options) (*Iterator, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}
	if !st.IsDir() {
		return nil, &PathError{Path: root, Err: ErrNotDir}
	}
	// a directory we cannot list is as useless as a missing one
	if _, err := os.ReadDir(root); err != nil {
		return nil, &PathError{Path: root, Err: err}
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ignPath := filepath.Join(root, ignore.FileName)
	ign, ierr := ignore.Load(ignPath)
	if ierr != nil && !errors.Is(ierr, fs.ErrNotExist) {
		return nil, &PathError{Path: ignPath, Err: ierr}
	}

	it := &Iterator{maxBytes: opts.MaxBytes}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			it.entries = append(it.entries, entry{path: p, err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if p == root {
				return nil
			}
			if opts.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			if ign.MatchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(d.Name(), exts) {
			return nil
		}
		if !allowedByGlobs(rel, opts.IncludeGlobs, opts.ExcludeGlobs) || ign.Match(rel) {
			return nil
		}
		// symlinked files are followed, symlinked directories are not
		if d.Type()&fs.ModeSymlink != 0 {
			target, serr := os.Stat(p)
			if serr != nil {
				it.entries = append(it.entries, entry{path: p, err: serr})
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		it.entries = append(it.entries, entry{path: p})
		return nil
	})
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}
	return it, nil
}

// Len returns the number of entries the iterator will yield in total.
func (it *Iterator) Len() int { return len(it.entries) }

// Next reads the next file. It returns io.EOF once the sequence is exhausted
// and *FileReadError for a file that could not be read.
func (it *Iterator) Next() (types.ScannedFile, error) {
	if it.pos >= len(it.entries) {
		return types.ScannedFile{}, io.EOF
	}
	e := it.entries[it.pos]
	it.pos++
	if e.err != nil {
		return types.ScannedFile{}, &FileReadError{Path: e.path, Err: e.err}
	}
	b, err := readFile(e.path, it.maxBytes)
	if err != nil {
		return types.ScannedFile{}, &FileReadError{Path: e.path, Err: err}
	}
	return types.ScannedFile{Path: e.path, Lines: SplitLines(string(b))}, nil
}

func readFile(p string, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if st.Size() > maxBytes {
			return nil, ErrTooLarge
		}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if looksBinary(b) {
		return nil, ErrBinary
	}
	return b, nil
}

// SplitLines splits after each '\n', keeping terminators. A trailing
// terminator does not produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
