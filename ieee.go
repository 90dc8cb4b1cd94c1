package latextable

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// renderIEEE emits a floating table container around a booktabs grid, the
// layout IEEE journal templates expect. A caption is mandatory; the label
// falls back to a generic one. The header row is bold regardless of
// Options.BoldHeaderRow.
func renderIEEE(w io.Writer, g *Grid, opts Options) error {
	if opts.Caption == "" {
		return fmt.Errorf("%w: style %q requires one", ErrMissingCaption, IEEE)
	}
	label := opts.Label
	if label == "" {
		label = "tab:table"
	}

	inner := opts
	inner.BoldHeaderRow = true
	var body bytes.Buffer
	if err := renderBooktabs(&body, g, inner); err != nil {
		return err
	}

	lines := []string{
		`\begin{table}[htbp]`,
		`\caption{` + escapeLaTeX(opts.Caption) + `}`,
		`\label{` + label + `}`,
		`\centering`,
		strings.TrimRight(body.String(), "\n"),
		`\end{table}`,
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
