package latextable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview renders the grid as a bordered monospace table with merged regions
// drawn as single wide cells. It is the textual stand-in for an image
// preview: no LaTeX semantics, no escaping.
func Preview(w io.Writer, g *Grid) error {
	widths := previewWidths(g)
	for row := 0; row < g.rows; row++ {
		if err := writePreviewSep(w, g, row-1, widths); err != nil {
			return err
		}
		if err := writePreviewRow(w, g, row, widths); err != nil {
			return err
		}
	}
	return writePreviewSep(w, g, g.rows-1, widths)
}

// PreviewString is Preview into a string.
func PreviewString(g *Grid) string {
	var sb strings.Builder
	_ = Preview(&sb, g)
	return sb.String()
}

func previewWidths(g *Grid) []int {
	widths := make([]int, g.cols)
	for i := range widths {
		widths[i] = 1
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v, err := g.Query(row, col)
			if err != nil || v.Role == RoleAbsorbed || v.SpanCols > 1 {
				continue
			}
			if w := runewidth.StringWidth(v.Content); w > widths[col] {
				widths[col] = w
			}
		}
	}
	// Widen the last spanned column when a wide master's content would not
	// fit the columns it covers.
	for _, r := range g.regions {
		if r.SpanCols() == 1 {
			continue
		}
		content := g.cells[r.top][r.left].content
		avail := spanWidth(widths, r.left, r.SpanCols())
		if deficit := runewidth.StringWidth(content) - avail; deficit > 0 {
			widths[r.right] += deficit
		}
	}
	return widths
}

// spanWidth is the printable width of s consecutive column slots, counting
// the swallowed " | " separators between them.
func spanWidth(widths []int, col, s int) int {
	n := 0
	for i := col; i < col+s; i++ {
		n += widths[i]
	}
	return n + 3*(s-1)
}

// writePreviewSep draws the horizontal rule below row `above` (-1 for the top
// border). Cells of a region spanning the boundary stay open.
func writePreviewSep(w io.Writer, g *Grid, above int, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for col := 0; col < g.cols; col++ {
		fill := "-"
		if spansBoundary(g, above, col) {
			fill = " "
		}
		sb.WriteString(strings.Repeat(fill, widths[col]+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func spansBoundary(g *Grid, above, col int) bool {
	if above < 0 || above+1 >= g.rows {
		return false
	}
	r, ok := g.index[coord{above, col}]
	if !ok {
		return false
	}
	return r == g.index[coord{above + 1, col}]
}

func writePreviewRow(w io.Writer, g *Grid, row int, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	col := 0
	for col < g.cols {
		v, err := g.Query(row, col)
		if err != nil {
			return err
		}
		if v.Role == RoleAbsorbed && !(col == v.MasterCol && row > v.MasterRow) {
			col++
			continue
		}
		content := ""
		if v.Role == RoleMaster || v.Role == RoleIndependent {
			content = v.Content
		}
		master, err := g.Query(v.MasterRow, v.MasterCol)
		if err != nil {
			return err
		}
		sb.WriteString(" ")
		sb.WriteString(alignPreviewCell(content, spanWidth(widths, col, v.SpanCols), master.Align))
		sb.WriteString(" |")
		col += v.SpanCols
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignPreviewCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
