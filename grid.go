package latextable

import "fmt"

type cell struct {
	content string
	align   Alignment
	font    FontStyle
}

// Grid is a dense rows×cols cell store with rectangular merge regions.
// It is not safe for concurrent mutation; callers must serialize edits and
// must not mutate the grid while a Render call is reading it.
type Grid struct {
	rows, cols int
	cells      [][]cell
	regions    []*Region
	index      map[coord]*Region
}

type coord struct{ row, col int }

// Role classifies a coordinate's relationship to merge regions.
type Role int

const (
	RoleIndependent Role = iota
	RoleMaster
	RoleAbsorbed
)

// CellView is the read contract used by the renderer. For coordinates inside
// a merged region, SpanRows/SpanCols describe the whole region and
// MasterRow/MasterCol locate its top-left corner; for independent cells the
// spans are 1 and the master coordinates are the cell's own.
type CellView struct {
	Content   string
	Align     Alignment
	Font      FontStyle
	Role      Role
	SpanRows  int
	SpanCols  int
	MasterRow int
	MasterCol int
}

// NewGrid returns a rows×cols grid of empty, left-aligned, independent cells.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: makeCells(rows, cols),
		index: make(map[coord]*Region),
	}
	return g, nil
}

func makeCells(rows, cols int) [][]cell {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
	}
	return cells
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) checkBounds(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return nil
}

// SetContent writes text into the cell at (row, col). Writing to a coordinate
// absorbed by a merged region fails; callers must resolve to the region's
// master first.
func (g *Grid) SetContent(row, col int, text string) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if g.roleAt(row, col) == RoleAbsorbed {
		return fmt.Errorf("%w: (%d,%d)", ErrCellAbsorbed, row, col)
	}
	g.cells[row][col].content = text
	return nil
}

// SetAlignment sets the cell's horizontal alignment. Same absorbed-coordinate
// rule as SetContent.
func (g *Grid) SetAlignment(row, col int, a Alignment) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if g.roleAt(row, col) == RoleAbsorbed {
		return fmt.Errorf("%w: (%d,%d)", ErrCellAbsorbed, row, col)
	}
	g.cells[row][col].align = a
	return nil
}

// SetFontStyle sets the cell's emphasis override. Same absorbed-coordinate
// rule as SetContent.
func (g *Grid) SetFontStyle(row, col int, f FontStyle) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if g.roleAt(row, col) == RoleAbsorbed {
		return fmt.Errorf("%w: (%d,%d)", ErrCellAbsorbed, row, col)
	}
	g.cells[row][col].font = f
	return nil
}

// Clear resets every cell to empty, left-aligned, default font and dissolves
// all merge regions. Dimensions are unchanged.
func (g *Grid) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = cell{}
		}
	}
	g.regions = nil
	g.rebuildIndex()
}

// Query returns the renderer's view of the coordinate.
func (g *Grid) Query(row, col int) (CellView, error) {
	if err := g.checkBounds(row, col); err != nil {
		return CellView{}, err
	}
	c := g.cells[row][col]
	view := CellView{
		Content:   c.content,
		Align:     c.align,
		Font:      c.font,
		Role:      RoleIndependent,
		SpanRows:  1,
		SpanCols:  1,
		MasterRow: row,
		MasterCol: col,
	}
	r, ok := g.index[coord{row, col}]
	if !ok {
		return view, nil
	}
	view.SpanRows = r.SpanRows()
	view.SpanCols = r.SpanCols()
	view.MasterRow = r.top
	view.MasterCol = r.left
	if row == r.top && col == r.left {
		view.Role = RoleMaster
	} else {
		view.Role = RoleAbsorbed
	}
	return view, nil
}

// Resize grows the grid with empty independent cells or shrinks it by
// truncation. Regions partially cut by truncation are clipped to the new
// bounds and dissolved if clipping leaves them with a single cell.
func (g *Grid) Resize(newRows, newCols int) error {
	if newRows < 1 || newCols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, newRows, newCols)
	}
	cells := makeCells(newRows, newCols)
	for i := 0; i < min(g.rows, newRows); i++ {
		copy(cells[i], g.cells[i][:min(g.cols, newCols)])
	}
	g.cells = cells
	g.rows = newRows
	g.cols = newCols

	var kept []*Region
	for _, r := range g.regions {
		if r.top >= newRows || r.left >= newCols {
			continue
		}
		r.bottom = min(r.bottom, newRows-1)
		r.right = min(r.right, newCols-1)
		if r.area() > 1 {
			kept = append(kept, r)
		}
	}
	g.regions = kept
	g.rebuildIndex()
	return nil
}

// InsertRow inserts an empty row before index at; at may equal Rows to
// append. A region whose row span contains the insertion point grows by one
// row of absorbed cells.
func (g *Grid) InsertRow(at int) error {
	if at < 0 || at > g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrOutOfBounds, at, g.rows, g.cols)
	}
	row := make([]cell, g.cols)
	g.cells = append(g.cells[:at], append([][]cell{row}, g.cells[at:]...)...)
	g.rows++
	for _, r := range g.regions {
		switch {
		case at <= r.top:
			r.top++
			r.bottom++
		case at <= r.bottom:
			r.bottom++
		}
	}
	g.rebuildIndex()
	return nil
}

// DeleteRow removes the row at index at. Regions covering the row shrink by
// one row; a region whose master row is removed promotes the cell below the
// old master and keeps the master's content. A region reduced to a single
// cell is dissolved.
func (g *Grid) DeleteRow(at int) error {
	if at < 0 || at >= g.rows {
		return fmt.Errorf("%w: row %d in %dx%d grid", ErrOutOfBounds, at, g.rows, g.cols)
	}
	if g.rows == 1 {
		return fmt.Errorf("%w: cannot delete the only row", ErrInvalidDimension)
	}
	// Promote masters out of the doomed row before it disappears.
	for _, r := range g.regions {
		if r.top == at && r.bottom > at {
			g.cells[at+1][r.left] = g.cells[at][r.left]
		}
	}
	g.cells = append(g.cells[:at], g.cells[at+1:]...)
	g.rows--

	var kept []*Region
	for _, r := range g.regions {
		switch {
		case at < r.top:
			r.top--
			r.bottom--
		case at <= r.bottom:
			r.bottom--
		}
		if r.bottom < r.top {
			continue // region lived entirely in the deleted row
		}
		if r.area() > 1 {
			kept = append(kept, r)
		}
	}
	g.regions = kept
	g.rebuildIndex()
	return nil
}

// InsertColumn inserts an empty column before index at; at may equal Cols to
// append. A region whose column span contains the insertion point grows by
// one column of absorbed cells.
func (g *Grid) InsertColumn(at int) error {
	if at < 0 || at > g.cols {
		return fmt.Errorf("%w: column %d in %dx%d grid", ErrOutOfBounds, at, g.rows, g.cols)
	}
	for i := range g.cells {
		g.cells[i] = append(g.cells[i][:at], append([]cell{{}}, g.cells[i][at:]...)...)
	}
	g.cols++
	for _, r := range g.regions {
		switch {
		case at <= r.left:
			r.left++
			r.right++
		case at <= r.right:
			r.right++
		}
	}
	g.rebuildIndex()
	return nil
}

// DeleteColumn removes the column at index at, with the same region policy as
// DeleteRow: masters in the doomed column are promoted one column right with
// their content, and single-cell leftovers are dissolved.
func (g *Grid) DeleteColumn(at int) error {
	if at < 0 || at >= g.cols {
		return fmt.Errorf("%w: column %d in %dx%d grid", ErrOutOfBounds, at, g.rows, g.cols)
	}
	if g.cols == 1 {
		return fmt.Errorf("%w: cannot delete the only column", ErrInvalidDimension)
	}
	for _, r := range g.regions {
		if r.left == at && r.right > at {
			g.cells[r.top][at+1] = g.cells[r.top][at]
		}
	}
	for i := range g.cells {
		g.cells[i] = append(g.cells[i][:at], g.cells[i][at+1:]...)
	}
	g.cols--

	var kept []*Region
	for _, r := range g.regions {
		switch {
		case at < r.left:
			r.left--
			r.right--
		case at <= r.right:
			r.right--
		}
		if r.right < r.left {
			continue
		}
		if r.area() > 1 {
			kept = append(kept, r)
		}
	}
	g.regions = kept
	g.rebuildIndex()
	return nil
}

func (g *Grid) roleAt(row, col int) Role {
	r, ok := g.index[coord{row, col}]
	if !ok {
		return RoleIndependent
	}
	if row == r.top && col == r.left {
		return RoleMaster
	}
	return RoleAbsorbed
}
