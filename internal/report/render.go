package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"

	"github.com/assat/assat/internal/types"
)

// Output formats accepted by Render.
const (
	FormatText  = "text"
	FormatTable = "table"
)

const (
	header    = "Scan results"
	noResults = "No results found"
)

// Options controls presentation. The zero value renders coloured text.
type Options struct {
	Format    string
	NoColor   bool
	Highlight bool
}

// Render writes rep to w in the requested format. Files without matches are
// omitted; a report with no matches at all prints a single notice line.
func Render(w io.Writer, rep types.ScanReport, opts Options) error {
	p := newPalette(opts)
	switch opts.Format {
	case "", FormatText:
		return renderText(w, rep, p)
	case FormatTable:
		return renderTable(w, rep, p)
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	return f == FormatText || f == FormatTable
}

type palette struct {
	header    *color.Color
	path      *color.Color
	category  *color.Color
	empty     *color.Color
	highlight bool
}

func newPalette(opts Options) palette {
	p := palette{
		header:    color.New(color.FgGreen),
		path:      color.New(color.FgGreen),
		category:  color.New(color.FgRed),
		empty:     color.New(color.FgRed),
		highlight: opts.Highlight && !opts.NoColor,
	}
	for _, c := range []*color.Color{p.header, p.path, p.category, p.empty} {
		if opts.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// snippet returns match text, syntax highlighted as Java when enabled.
func (p palette) snippet(text string) string {
	if !p.highlight || text == "" {
		return text
	}
	var sb strings.Builder
	if err := quick.Highlight(&sb, text, "java", "terminal", "monokai"); err != nil {
		return text
	}
	return strings.TrimRight(sb.String(), "\n")
}
