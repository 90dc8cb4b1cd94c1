package latextable_test

import (
	"strings"
	"testing"

	latextable "github.com/Marble-GP/LatexTableBuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewPlainGrid(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 2, 2)
	fill(t, g, [][]string{{"A", "B"}, {"C", "D"}})

	out := latextable.PreviewString(g)
	assert.Equal(t, strings.Join([]string{
		"+---+---+",
		"| A | B |",
		"+---+---+",
		"| C | D |",
		"+---+---+",
		"",
	}, "\n"), out)
}

func TestPreviewColumnSpan(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 2, 2)
	fill(t, g, [][]string{{"A", "B"}, {"C", "D"}})
	_, err := g.Merge(0, 0, 0, 1)
	require.NoError(t, err)

	out := latextable.PreviewString(g)
	assert.Contains(t, out, "| A     |", "merged cell spans both column slots")
	assert.Contains(t, out, "| C | D |")
}

func TestPreviewRowSpanOpenBoundary(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 2, 2)
	fill(t, g, [][]string{{"A", "B"}, {"C", "D"}})
	_, err := g.Merge(0, 0, 1, 0)
	require.NoError(t, err)

	out := latextable.PreviewString(g)
	// The separator between the spanned rows stays open in the merged column.
	assert.Contains(t, out, "+   +---+")
}

func TestPreviewAlignment(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 2, 2)
	fill(t, g, [][]string{{"x", "cd"}, {"ab", "ef"}})
	require.NoError(t, g.SetAlignment(0, 0, latextable.AlignRight))

	out := latextable.PreviewString(g)
	assert.Contains(t, out, "|  x | cd |")
}

func TestPreviewWideContent(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 2, 2)
	fill(t, g, [][]string{{"wide header", "B"}, {"C", "D"}})
	_, err := g.Merge(0, 0, 0, 1)
	require.NoError(t, err)

	out := latextable.PreviewString(g)
	assert.Contains(t, out, "wide header")
	// Every line of the frame has the same width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[1:] {
		assert.Len(t, line, len(lines[0]))
	}
}
