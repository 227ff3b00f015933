package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/assat/assat/internal/types"
)

// renderText prints the grouped layout:
//
//	Scan results
//	<path>
//		<Category>
//			   12 : <text>
//
// Single-category reports list matches one tab deep without the label.
func renderText(w io.Writer, rep types.ScanReport, p palette) error {
	bw := bufio.NewWriter(w)
	if rep.Empty() {
		p.empty.Fprintln(bw, noResults)
		return bw.Flush()
	}
	flat := len(rep.Categories) == 1
	p.header.Fprintln(bw, header)
	for _, f := range rep.Results {
		if f.Empty() {
			continue
		}
		p.path.Fprintln(bw, f.Path)
		for _, c := range rep.Categories {
			recs := f.Buckets[c]
			if len(recs) == 0 {
				continue
			}
			indent := "\t"
			if !flat {
				fmt.Fprintf(bw, "\t%s\n", p.category.Sprint(c))
				indent = "\t\t"
			}
			for _, r := range recs {
				fmt.Fprintf(bw, "%s%5d : %s\n", indent, r.Line, p.snippet(r.Text))
			}
		}
	}
	return bw.Flush()
}
