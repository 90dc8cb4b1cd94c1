package latextable

import (
	"fmt"
	"io"
	"strings"
)

func renderTabular(w io.Writer, g *Grid, opts Options) error {
	lines := []string{
		`\begin{tabular}{` + columnSpec(g, opts) + `}`,
		`\hline`,
	}
	for row := 0; row < g.Rows(); row++ {
		lines = append(lines, renderRow(g, row, opts, true)+` \\`, `\hline`)
	}
	lines = append(lines, `\end{tabular}`)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
