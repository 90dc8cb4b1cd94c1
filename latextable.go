package latextable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidRange     = errors.New("invalid range")
	ErrRegionOverlap    = errors.New("overlaps existing region")
	ErrNoRegion         = errors.New("no region at coordinate")
	ErrCellAbsorbed     = errors.New("cell is absorbed by a merged region")
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrMissingCaption   = errors.New("missing caption")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)

// Style selects the output dialect.
type Style string

const (
	Tabular   Style = "tabular"
	Longtable Style = "longtable"
	Booktabs  Style = "booktabs"
	Array     Style = "array"
	IEEE      Style = "ieee"
)

var styles = []Style{Tabular, Longtable, Booktabs, Array, IEEE}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style string, e.g. from a CLI flag.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// Alignment controls horizontal cell alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// token returns the LaTeX column-spec letter.
func (a Alignment) token() string {
	switch a {
	case AlignCenter:
		return "c"
	case AlignRight:
		return "r"
	default:
		return "l"
	}
}

// ParseAlignment parses the single-letter alignment tokens l, c, r.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "l":
		return AlignLeft, nil
	case "c":
		return AlignCenter, nil
	case "r":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// FontStyle is the per-cell emphasis override.
type FontStyle int

const (
	FontDefault FontStyle = iota // defer to table-level defaults
	FontNormal                   // explicitly plain, ignore defaults
	FontBold
	FontItalic
)

// Options control rendering. The zero value is valid for every style except
// IEEE, which requires a caption.
type Options struct {
	// ColumnAlign overrides the derived alignment for specific columns.
	ColumnAlign map[int]Alignment
	// Caption and Label are used by styles that emit a floating container.
	Caption string
	Label   string
	// BoldHeaderRow wraps row 0's visible content in \textbf. IEEE implies it.
	BoldHeaderRow bool
}

// Render generates LaTeX for the grid in the given style and writes it to w.
// Rendering is pure: the same grid state and options always produce identical
// output. The grid must not be mutated concurrently.
func Render(w io.Writer, g *Grid, style Style, opts Options) error {
	switch style {
	case Tabular:
		return renderTabular(w, g, opts)
	case Longtable:
		return renderLongtable(w, g, opts)
	case Booktabs:
		return renderBooktabs(w, g, opts)
	case Array:
		return renderArray(w, g, opts)
	case IEEE:
		return renderIEEE(w, g, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedStyle, style)
	}
}

// Generate is Render into a string.
func Generate(g *Grid, style Style, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, g, style, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
