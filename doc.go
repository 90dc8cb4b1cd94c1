// Package latextable builds tabular layouts and renders them as LaTeX in
// several table styles.
//
// The two central pieces are [Grid], an editable 2-D cell store with
// rectangular merge support, and [Render]/[Generate], which turn a grid plus
// [Options] into dialect-correct LaTeX text.
//
// # Grid
//
// A grid is a dense rows×cols store of cells, each holding raw (unescaped)
// content, a horizontal [Alignment], and an optional [FontStyle]. Cells can
// be merged into rectangular regions:
//
//	g, _ := latextable.NewGrid(2, 2)
//	g.SetContent(0, 0, "A")
//	g.Merge(0, 0, 0, 1) // A spans both header columns
//
// The top-left cell of a region is its master and holds the visible content;
// the other covered coordinates are absorbed and reject direct writes with
// [ErrCellAbsorbed]. Structural edits (Resize, InsertRow, DeleteColumn, ...)
// keep every region consistent: regions shift with the cells around them,
// grow when a row or column is inserted inside them, and dissolve when an
// edit would reduce them to a single cell. Every mutation either applies
// fully or fails with a sentinel error, leaving the grid untouched.
//
// # Rendering
//
// [Generate] produces LaTeX for one of five styles:
//
//   - [Tabular] — plain grid environment with \hline rules
//   - [Longtable] — paginating environment with a repeating header block
//   - [Booktabs] — \toprule/\midrule/\bottomrule, no vertical rules
//   - [Array] — math-mode environment; content is NOT escaped
//   - [IEEE] — floating table container around a booktabs grid; requires
//     Options.Caption and forces a bold header row
//
// Column spans render as \multicolumn, row spans as \multirow. Content is
// escaped for LaTeX special characters in every style except Array.
// Rendering is deterministic: identical grid state and options yield
// byte-identical output.
//
// [Document] wraps the generated table in a minimal compilable document with
// the \usepackage lines the style and grid require.
//
// # Persistence and import
//
// [Grid.Snapshot] and [FromSnapshot] convert a grid to and from a
// serializable record, and [PresetStore] keeps named snapshots on disk as
// JSON or YAML files. [ParsePaste] imports spreadsheet clipboard text (TSV,
// CSV, Markdown pipe tables, or plain text) as a block of cell values for
// [Grid.ApplyPaste].
//
// # Errors
//
// All failures are sentinel errors ([ErrOutOfBounds], [ErrInvalidRange],
// [ErrRegionOverlap], [ErrUnsupportedStyle], ...) wrapped with context; test
// with errors.Is.
package latextable
