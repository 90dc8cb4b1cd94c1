package latextable

import "strings"

// latexEscaper rewrites LaTeX special characters. A single Replacer pass
// guarantees that replacement text is never itself re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

func escapeLaTeX(s string) string {
	if s == "" {
		return ""
	}
	return latexEscaper.Replace(s)
}
