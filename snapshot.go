package latextable

import "fmt"

// Snapshot is a serializable copy of a grid's full state. Cell records are
// sparse: coordinates with default content, alignment, and font are omitted.
// The encoding on disk (JSON, YAML, ...) is the caller's choice; the struct
// carries tags for both codecs the preset store uses.
type Snapshot struct {
	Rows    int              `json:"rows" yaml:"rows"`
	Cols    int              `json:"cols" yaml:"cols"`
	Cells   []CellSnapshot   `json:"cells,omitempty" yaml:"cells,omitempty"`
	Regions []RegionSnapshot `json:"regions,omitempty" yaml:"regions,omitempty"`
}

// CellSnapshot records one non-default cell. Align uses the column-spec
// letters l, c, r (empty means l); Font is normal, bold, or italic (empty
// means default).
type CellSnapshot struct {
	Row     int    `json:"row" yaml:"row"`
	Col     int    `json:"col" yaml:"col"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Align   string `json:"align,omitempty" yaml:"align,omitempty"`
	Font    string `json:"font,omitempty" yaml:"font,omitempty"`
}

// RegionSnapshot records one merge region, bounds inclusive.
type RegionSnapshot struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Right  int `json:"right" yaml:"right"`
}

func fontName(f FontStyle) string {
	switch f {
	case FontNormal:
		return "normal"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	default:
		return ""
	}
}

func parseFont(s string) (FontStyle, error) {
	switch s {
	case "":
		return FontDefault, nil
	case "normal":
		return FontNormal, nil
	case "bold":
		return FontBold, nil
	case "italic":
		return FontItalic, nil
	}
	return 0, fmt.Errorf("font %q", s)
}

// Snapshot captures the grid's state for persistence or for handing a stable
// copy to a renderer running outside the edit session.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{Rows: g.rows, Cols: g.cols}
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			c := g.cells[i][j]
			if c.content == "" && c.align == AlignLeft && c.font == FontDefault {
				continue
			}
			rec := CellSnapshot{Row: i, Col: j, Content: c.content, Font: fontName(c.font)}
			if c.align != AlignLeft {
				rec.Align = c.align.token()
			}
			s.Cells = append(s.Cells, rec)
		}
	}
	for _, r := range g.regions {
		s.Regions = append(s.Regions, RegionSnapshot{Top: r.top, Left: r.left, Bottom: r.bottom, Right: r.right})
	}
	return s
}

// FromSnapshot reconstructs a grid. Every record is validated; dimensions
// below 1, out-of-range cells, malformed alignment or font names, and
// degenerate or overlapping regions all fail with ErrInvalidSnapshot.
func FromSnapshot(s Snapshot) (*Grid, error) {
	g, err := NewGrid(s.Rows, s.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSnapshot, s.Rows, s.Cols)
	}
	for _, rec := range s.Cells {
		if err := g.checkBounds(rec.Row, rec.Col); err != nil {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrInvalidSnapshot, rec.Row, rec.Col)
		}
		align := AlignLeft
		if rec.Align != "" {
			align, err = ParseAlignment(rec.Align)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d) alignment %q", ErrInvalidSnapshot, rec.Row, rec.Col, rec.Align)
			}
		}
		font, err := parseFont(rec.Font)
		if err != nil {
			return nil, fmt.Errorf("%w: cell (%d,%d) %v", ErrInvalidSnapshot, rec.Row, rec.Col, err)
		}
		g.cells[rec.Row][rec.Col] = cell{content: rec.Content, align: align, font: font}
	}
	for _, rec := range s.Regions {
		if _, err := g.Merge(rec.Top, rec.Left, rec.Bottom, rec.Right); err != nil {
			return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d): %v",
				ErrInvalidSnapshot, rec.Top, rec.Left, rec.Bottom, rec.Right, err)
		}
	}
	return g, nil
}
