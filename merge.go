package latextable

import "fmt"

// Region is a rectangular merged range. Bounds are inclusive and the area is
// always greater than one cell. The top-left coordinate is the master: it
// holds the visible content, and every other covered coordinate is absorbed.
type Region struct {
	top, left, bottom, right int
}

// Top returns the region's first row.
func (r *Region) Top() int { return r.top }

// Left returns the region's first column.
func (r *Region) Left() int { return r.left }

// Bottom returns the region's last row, inclusive.
func (r *Region) Bottom() int { return r.bottom }

// Right returns the region's last column, inclusive.
func (r *Region) Right() int { return r.right }

// SpanRows returns the number of rows the region covers.
func (r *Region) SpanRows() int { return r.bottom - r.top + 1 }

// SpanCols returns the number of columns the region covers.
func (r *Region) SpanCols() int { return r.right - r.left + 1 }

func (r *Region) area() int { return r.SpanRows() * r.SpanCols() }

func (r *Region) contains(row, col int) bool {
	return r.top <= row && row <= r.bottom && r.left <= col && col <= r.right
}

// Merge merges the inclusive rectangle (top,left)-(bottom,right) into a
// single region. The top-left cell's content becomes the region's visible
// content; the content of every other covered cell is discarded. Merging
// fails without modifying the grid if the range is inverted, out of bounds,
// covers a single cell, or touches an existing region.
func (g *Grid) Merge(top, left, bottom, right int) (*Region, error) {
	if top > bottom || left > right {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d) is inverted", ErrInvalidRange, top, left, bottom, right)
	}
	if top < 0 || left < 0 || bottom >= g.rows || right >= g.cols {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d) exceeds %dx%d grid", ErrInvalidRange, top, left, bottom, right, g.rows, g.cols)
	}
	if top == bottom && left == right {
		return nil, fmt.Errorf("%w: single cell (%d,%d)", ErrInvalidRange, top, left)
	}
	for i := top; i <= bottom; i++ {
		for j := left; j <= right; j++ {
			if other, ok := g.index[coord{i, j}]; ok {
				return nil, fmt.Errorf("%w: (%d,%d) belongs to (%d,%d)-(%d,%d)",
					ErrRegionOverlap, i, j, other.top, other.left, other.bottom, other.right)
			}
		}
	}

	r := &Region{top: top, left: left, bottom: bottom, right: right}
	for i := top; i <= bottom; i++ {
		for j := left; j <= right; j++ {
			g.index[coord{i, j}] = r
			if i != top || j != left {
				g.cells[i][j] = cell{}
			}
		}
	}
	g.regions = append(g.regions, r)
	return r, nil
}

// Unmerge dissolves the region covering (row, col). Every covered coordinate
// becomes an independent cell again; only the former master keeps its
// content, the rest come back empty.
func (g *Grid) Unmerge(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	r, ok := g.index[coord{row, col}]
	if !ok {
		return fmt.Errorf("%w: (%d,%d)", ErrNoRegion, row, col)
	}
	for i, other := range g.regions {
		if other == r {
			g.regions = append(g.regions[:i], g.regions[i+1:]...)
			break
		}
	}
	for i := r.top; i <= r.bottom; i++ {
		for j := r.left; j <= r.right; j++ {
			delete(g.index, coord{i, j})
		}
	}
	return nil
}

// Regions returns the grid's merge regions in creation order. The returned
// slice is a copy; the regions themselves are live views.
func (g *Grid) Regions() []*Region {
	out := make([]*Region, len(g.regions))
	copy(out, g.regions)
	return out
}

// rebuildIndex recomputes the coordinate → region side table. Structural
// edits call this after adjusting region bounds.
func (g *Grid) rebuildIndex() {
	g.index = make(map[coord]*Region)
	for _, r := range g.regions {
		for i := r.top; i <= r.bottom; i++ {
			for j := r.left; j <= r.right; j++ {
				g.index[coord{i, j}] = r
			}
		}
	}
}
