package latextable

import (
	"fmt"
	"io"
	"strings"
)

// renderLongtable emits the paginating longtable environment. Row 0 is the
// header block and is declared twice: once for the first page and once as the
// repeating per-page header.
func renderLongtable(w io.Writer, g *Grid, opts Options) error {
	lines := []string{
		`\begin{longtable}{` + columnSpec(g, opts) + `}`,
		`\hline`,
	}
	header := renderRow(g, 0, opts, true)
	lines = append(lines,
		header+` \\`,
		`\hline`,
		`\endfirsthead`,
		``,
		`\hline`,
		header+` \\`,
		`\hline`,
		`\endhead`,
		``,
		`\hline`,
		`\endfoot`,
		``,
		`\hline`,
		`\endlastfoot`,
		``,
	)
	for row := 1; row < g.Rows(); row++ {
		lines = append(lines, renderRow(g, row, opts, true)+` \\`, `\hline`)
	}
	lines = append(lines, `\end{longtable}`)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
