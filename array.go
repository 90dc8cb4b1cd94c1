package latextable

import (
	"fmt"
	"io"
	"strings"
)

// renderArray emits the math-mode array environment. Content is written
// verbatim: array cells are math, and escaping would mangle operators like ^
// and _. Callers own the validity of their math content.
func renderArray(w io.Writer, g *Grid, opts Options) error {
	lines := []string{`\begin{array}{` + columnSpec(g, opts) + `}`}
	for row := 0; row < g.Rows(); row++ {
		content := renderRow(g, row, opts, false)
		if row < g.Rows()-1 {
			content += ` \\`
		}
		lines = append(lines, content)
	}
	lines = append(lines, `\end{array}`)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
