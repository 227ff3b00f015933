package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/assat/assat/internal/types"
)

func renderTable(w io.Writer, rep types.ScanReport, p palette) error {
	if rep.Empty() {
		_, err := p.empty.Fprintln(w, noResults)
		return err
	}
	t := tablewriter.NewWriter(w)
	t.Header("FILE", "CATEGORY", "LINE", "TEXT")
	files := 0
	for _, f := range rep.Results {
		if f.Empty() {
			continue
		}
		files++
		for _, c := range rep.Categories {
			for _, r := range f.Buckets[c] {
				if err := t.Append([]string{f.Path, c, strconv.Itoa(r.Line), r.Text}); err != nil {
					return err
				}
			}
		}
	}
	if err := t.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nMatches: %d in %d files (%d scanned, %d skipped)\n",
		rep.Matches(), files, rep.FilesScanned, len(rep.Skipped))
	return err
}
