package latextable

import (
	"fmt"
	"io"
	"strings"
)

// renderBooktabs emits a tabular with booktabs rules: \toprule, a single
// \midrule after the header row, and \bottomrule. The column spec carries no
// vertical separators, per booktabs convention.
func renderBooktabs(w io.Writer, g *Grid, opts Options) error {
	lines := []string{
		`\begin{tabular}{` + columnSpec(g, opts) + `}`,
		`\toprule`,
	}
	for row := 0; row < g.Rows(); row++ {
		lines = append(lines, renderRow(g, row, opts, true)+` \\`)
		if row == 0 && g.Rows() > 1 {
			lines = append(lines, `\midrule`)
		}
	}
	lines = append(lines, `\bottomrule`, `\end{tabular}`)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
