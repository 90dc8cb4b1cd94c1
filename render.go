package latextable

import (
	"fmt"
	"strings"
)

// columnSpec derives the per-column alignment tokens: an explicit override
// wins, otherwise the majority alignment among the column's visible cells,
// otherwise left. Ties resolve in l, c, r order.
func columnSpec(g *Grid, opts Options) string {
	var sb strings.Builder
	for col := 0; col < g.cols; col++ {
		if a, ok := opts.ColumnAlign[col]; ok {
			sb.WriteString(a.token())
			continue
		}
		sb.WriteString(majorityAlignment(g, col).token())
	}
	return sb.String()
}

func majorityAlignment(g *Grid, col int) Alignment {
	var counts [3]int
	for row := 0; row < g.rows; row++ {
		v, err := g.Query(row, col)
		if err != nil || v.Role == RoleAbsorbed {
			continue
		}
		counts[v.Align]++
	}
	best := AlignLeft
	for a := AlignLeft; a <= AlignRight; a++ {
		if counts[a] > counts[best] {
			best = a
		}
	}
	return best
}

// renderRow emits one table row as "cell & cell & cell". Masters of wide
// regions become \multicolumn, masters of tall regions \multirow, and the
// rows below a tall region get empty placeholder cells so every row carries
// the full column count. escape is false only for the array style.
func renderRow(g *Grid, row int, opts Options, escape bool) string {
	var cells []string
	col := 0
	for col < g.cols {
		v, err := g.Query(row, col)
		if err != nil {
			break
		}
		if v.Role == RoleAbsorbed {
			if col == v.MasterCol && row > v.MasterRow {
				cells = append(cells, spanPlaceholder(g, v))
				col += v.SpanCols
			} else {
				col++
			}
			continue
		}
		content := v.Content
		if escape {
			content = escapeLaTeX(content)
		}
		content = applyFont(content, v.Font, row == 0 && opts.BoldHeaderRow)
		if v.SpanCols > 1 {
			content = fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, v.SpanCols, v.Align.token(), content)
		}
		if v.SpanRows > 1 {
			content = fmt.Sprintf(`\multirow{%d}{*}{%s}`, v.SpanRows, content)
		}
		cells = append(cells, content)
		col += v.SpanCols
	}
	return strings.Join(cells, " & ")
}

// spanPlaceholder fills the leftmost coordinate of a vertical span's
// continuation row. Regions wider than one column need an empty \multicolumn
// to keep the alignment separators balanced.
func spanPlaceholder(g *Grid, v CellView) string {
	if v.SpanCols == 1 {
		return ""
	}
	master, err := g.Query(v.MasterRow, v.MasterCol)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`\multicolumn{%d}{%s}{}`, v.SpanCols, master.Align.token())
}

func applyFont(content string, f FontStyle, boldDefault bool) string {
	switch f {
	case FontBold:
		return `\textbf{` + content + `}`
	case FontItalic:
		return `\textit{` + content + `}`
	case FontNormal:
		return content
	}
	if boldDefault {
		return `\textbf{` + content + `}`
	}
	return content
}

// hasRowSpan reports whether any region spans more than one row, which is
// what decides the multirow package requirement.
func hasRowSpan(g *Grid) bool {
	for _, r := range g.regions {
		if r.SpanRows() > 1 {
			return true
		}
	}
	return false
}
