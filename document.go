package latextable

import (
	"slices"
	"strings"
)

// DocumentOptions control the standalone-document wrapper.
type DocumentOptions struct {
	// Class is the \documentclass, defaulting to article.
	Class string
	// Packages are extra \usepackage entries, appended after the ones the
	// style itself requires.
	Packages []string
}

// RequiredPackages returns the packages a style needs beyond the document
// class. multirow is a per-grid concern, not a per-style one; Document adds
// it when the grid has vertical spans.
func RequiredPackages(style Style) []string {
	switch style {
	case Longtable:
		return []string{"longtable"}
	case Booktabs, IEEE:
		return []string{"booktabs"}
	case Array:
		return []string{"array"}
	default:
		return nil
	}
}

// Document renders the grid and wraps it in a minimal compilable document:
// \documentclass, the \usepackage lines the style and grid require, and the
// document body. External preview tooling consumes this output.
func Document(g *Grid, style Style, opts Options, docOpts DocumentOptions) (string, error) {
	table, err := Generate(g, style, opts)
	if err != nil {
		return "", err
	}

	class := docOpts.Class
	if class == "" {
		class = "article"
	}
	packages := slices.Clone(RequiredPackages(style))
	if hasRowSpan(g) {
		packages = append(packages, "multirow")
	}
	for _, p := range docOpts.Packages {
		if !slices.Contains(packages, p) {
			packages = append(packages, p)
		}
	}

	lines := []string{`\documentclass{` + class + `}`, ``}
	for _, p := range packages {
		lines = append(lines, `\usepackage{`+p+`}`)
	}
	if len(packages) > 0 {
		lines = append(lines, ``)
	}
	lines = append(lines,
		`\begin{document}`,
		``,
		strings.TrimRight(table, "\n"),
		``,
		`\end{document}`,
	)
	return strings.Join(lines, "\n") + "\n", nil
}
