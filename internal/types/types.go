package types

import (
	"strconv"
	"strings"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

// ScannedFile is one source file read into memory. Lines keep their original
// terminators; trimming happens when a line is recorded as a match.
type ScannedFile struct {
	Path  string
	Lines []string
}

// MatchRecord is a single classified line: its 0-based line number and the
// whitespace-trimmed text.
type MatchRecord struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// FileResult holds the per-category matches found in one file. Each line
// number appears in at most one bucket and buckets keep file line order.
type FileResult struct {
	Path    string                   `json:"path"`
	Buckets map[string][]MatchRecord `json:"buckets"`
}

// NewFileResult returns a FileResult with an empty bucket for every category.
func NewFileResult(path string, categories []string) FileResult {
	b := make(map[string][]MatchRecord, len(categories))
	for _, c := range categories {
		b[c] = nil
	}
	return FileResult{Path: path, Buckets: b}
}

// Add appends a match to the named bucket.
func (f *FileResult) Add(category string, rec MatchRecord) {
	if f.Buckets == nil {
		f.Buckets = map[string][]MatchRecord{}
	}
	f.Buckets[category] = append(f.Buckets[category], rec)
}

// Matches returns the number of records across all buckets.
func (f FileResult) Matches() int {
	n := 0
	for _, recs := range f.Buckets {
		n += len(recs)
	}
	return n
}

// Empty reports whether the file produced no matches at all.
func (f FileResult) Empty() bool { return f.Matches() == 0 }

// SkippedFile records a file left out of the scan under the skip-and-warn
// read policy.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ScanReport is the outcome of one scan invocation. Categories is the rule
// set's declared order and drives rendering order.
type ScanReport struct {
	Root         string        `json:"root"`
	Mode         string        `json:"mode"`
	Categories   []string      `json:"categories"`
	Results      []FileResult  `json:"results"`
	Skipped      []SkippedFile `json:"skipped,omitempty"`
	FilesScanned int           `json:"files_scanned"`
	Duration     time.Duration `json:"duration_ns"`
}

// Matches returns the number of records across all files.
func (r ScanReport) Matches() int {
	n := 0
	for _, f := range r.Results {
		n += f.Matches()
	}
	return n
}

// Empty reports whether no file produced any match.
func (r ScanReport) Empty() bool { return r.Matches() == 0 }

// Digest is a short hash of the match listing in render order. Two scans of an
// unmodified tree produce the same digest.
func (r ScanReport) Digest() string {
	h := xxhash.New()
	for _, f := range r.Results {
		if f.Empty() {
			continue
		}
		_, _ = h.WriteString(f.Path)
		_, _ = h.WriteString("\n")
		for _, c := range r.Categories {
			for _, rec := range f.Buckets[c] {
				var sb strings.Builder
				sb.WriteString(c)
				sb.WriteByte('\t')
				sb.WriteString(strconv.Itoa(rec.Line))
				sb.WriteByte('\t')
				sb.WriteString(rec.Text)
				sb.WriteByte('\n')
				_, _ = h.WriteString(sb.String())
			}
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
