package latextable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLaTeX(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":        "",
		"plain":   "plain",
		"a&b":     `a\&b`,
		"100%":    `100\%`,
		"$5":      `\$5`,
		"#1":      `\#1`,
		"a_b":     `a\_b`,
		"{x}":     `\{x\}`,
		"~":       `\textasciitilde{}`,
		"^":       `\textasciicircum{}`,
		`\`:       `\textbackslash{}`,
		`\&`:      `\textbackslash{}\&`,
		"a & b%c": `a \& b\%c`,
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeLaTeX(in), "input %q", in)
	}
}

func TestAlignmentToken(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "l", AlignLeft.token())
	assert.Equal(t, "c", AlignCenter.token())
	assert.Equal(t, "r", AlignRight.token())
	assert.Equal(t, "l", Alignment(99).token())
}

func TestMajorityAlignmentTieBreaksLeftward(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetAlignment(0, 0, AlignCenter))
	require.NoError(t, g.SetAlignment(1, 0, AlignLeft))
	// One left, one center: the earlier token wins.
	assert.Equal(t, AlignLeft, majorityAlignment(g, 0))
}

func TestMajorityAlignmentSkipsAbsorbed(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetAlignment(0, 0, AlignRight))
	_, err = g.Merge(1, 0, 2, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetAlignment(1, 0, AlignRight))
	// Column 0 sees the independent cell and the master, not the absorbed one.
	assert.Equal(t, AlignRight, majorityAlignment(g, 0))
}

func TestApplyFont(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `\textbf{x}`, applyFont("x", FontBold, false))
	assert.Equal(t, `\textit{x}`, applyFont("x", FontItalic, false))
	assert.Equal(t, "x", applyFont("x", FontNormal, true), "explicit normal beats the header default")
	assert.Equal(t, `\textbf{x}`, applyFont("x", FontDefault, true))
	assert.Equal(t, "x", applyFont("x", FontDefault, false))
}

func TestFontNameParseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, f := range []FontStyle{FontDefault, FontNormal, FontBold, FontItalic} {
		parsed, err := parseFont(fontName(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	_, err := parseFont("wavy")
	assert.Error(t, err)
}

func TestRegionAccessors(t *testing.T) {
	t.Parallel()
	r := &Region{top: 1, left: 2, bottom: 3, right: 5}
	assert.Equal(t, 1, r.Top())
	assert.Equal(t, 2, r.Left())
	assert.Equal(t, 3, r.Bottom())
	assert.Equal(t, 5, r.Right())
	assert.Equal(t, 3, r.SpanRows())
	assert.Equal(t, 4, r.SpanCols())
	assert.Equal(t, 12, r.area())
	assert.True(t, r.contains(2, 4))
	assert.False(t, r.contains(0, 2))
}

func TestRebuildIndexAfterStructuralEdit(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	r, err := g.Merge(1, 1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.InsertRow(0))

	for i := r.top; i <= r.bottom; i++ {
		for j := r.left; j <= r.right; j++ {
			assert.Same(t, r, g.index[coord{i, j}])
		}
	}
	assert.Nil(t, g.index[coord{0, 0}])
	assert.Len(t, g.index, r.area())
}

func TestValidPresetName(t *testing.T) {
	t.Parallel()
	assert.True(t, validPresetName("table-1"))
	assert.True(t, validPresetName("résumé data"))
	for _, name := range []string{"", "   ", "a/b", `a\b`, "a:b", "a?b", "a|b", `a"b`, "a<b"} {
		assert.False(t, validPresetName(name), "name %q", name)
	}
}

func TestSpanWidth(t *testing.T) {
	t.Parallel()
	widths := []int{3, 1, 4}
	assert.Equal(t, 3, spanWidth(widths, 0, 1))
	assert.Equal(t, 7, spanWidth(widths, 0, 2))
	assert.Equal(t, 14, spanWidth(widths, 0, 3))
}

func TestHasRowSpan(t *testing.T) {
	t.Parallel()
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	assert.False(t, hasRowSpan(g))
	_, err = g.Merge(0, 0, 0, 1)
	require.NoError(t, err)
	assert.False(t, hasRowSpan(g), "column span alone does not need multirow")
	_, err = g.Merge(1, 0, 2, 0)
	require.NoError(t, err)
	assert.True(t, hasRowSpan(g))
}
