package latextable

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PasteFormat identifies what kind of tabular text was pasted.
type PasteFormat string

const (
	PasteTSV      PasteFormat = "tsv" // Excel / LibreOffice clipboard default
	PasteCSV      PasteFormat = "csv"
	PasteMarkdown PasteFormat = "markdown" // GitHub-style pipe table
	PasteText     PasteFormat = "text"     // plain text, one cell per line
	PasteEmpty    PasteFormat = "empty"
)

// PasteInfo reports what ParsePaste found.
type PasteInfo struct {
	Format PasteFormat
	Rows   int
	Cols   int
}

// DetectPasteFormat classifies clipboard text. Tabs win over commas because
// spreadsheet applications put TSV on the clipboard even for cells that
// contain commas.
func DetectPasteFormat(text string) PasteFormat {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return PasteEmpty
	}
	first := strings.SplitN(trimmed, "\n", 2)[0]
	switch {
	case strings.HasPrefix(strings.TrimSpace(first), "|"):
		return PasteMarkdown
	case strings.Contains(first, "\t"):
		return PasteTSV
	case strings.Contains(first, ","):
		return PasteCSV
	}
	return PasteText
}

// ParsePaste converts clipboard text into a rectangular block of cell values.
// Short rows are padded with empty strings so every row has the same length.
func ParsePaste(text string) ([][]string, PasteInfo) {
	format := DetectPasteFormat(text)
	var data [][]string
	switch format {
	case PasteTSV:
		data = parseTSV(text)
	case PasteCSV:
		data = parseCSV(text)
	case PasteMarkdown:
		data = parseMarkdownTable(text)
	case PasteText:
		data = parsePlainText(text)
	}
	info := PasteInfo{Format: format, Rows: len(data)}
	for _, row := range data {
		if len(row) > info.Cols {
			info.Cols = len(row)
		}
	}
	for i, row := range data {
		for len(row) < info.Cols {
			row = append(row, "")
		}
		data[i] = row
	}
	return data, info
}

func parseTSV(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Split(line, "\t")
		cells := make([]string, len(fields))
		for i, f := range fields {
			f = strings.TrimSpace(f)
			if len(f) > 1 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
				f = f[1 : len(f)-1]
			}
			cells[i] = strings.ReplaceAll(f, `""`, `"`)
		}
		rows = append(rows, cells)
	}
	return rows
}

func parseCSV(text string) [][]string {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		// Malformed quoting; fall back to a naive comma split.
		var rows [][]string
		for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
			fields := strings.Split(line, ",")
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			rows = append(rows, fields)
		}
		return rows
	}
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records
}

var markdownSepRe = regexp.MustCompile(`^:?-+:?$`)

func parseMarkdownTable(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, "|")
		line = strings.TrimSuffix(line, "|")
		fields := strings.Split(line, "|")
		cells := make([]string, len(fields))
		sep := true
		for i, f := range fields {
			cells[i] = strings.TrimSpace(f)
			if cells[i] != "" && !markdownSepRe.MatchString(cells[i]) {
				sep = false
			}
		}
		if sep && len(rows) > 0 {
			continue // alignment separator row under the header
		}
		rows = append(rows, cells)
	}
	return rows
}

var columnGapRe = regexp.MustCompile(`\s{2,}`)

func parsePlainText(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 1 {
		var rows [][]string
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				rows = append(rows, []string{line})
			}
		}
		return rows
	}
	line := strings.TrimSpace(lines[0])
	// Runs of spaces usually mean column-aligned text.
	if strings.Count(line, " ") <= 10 {
		if cells := columnGapRe.Split(line, -1); len(cells) > 1 {
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			return [][]string{cells}
		}
	}
	return [][]string{{line}}
}

// ApplyPaste writes a block of values into the grid starting at (row, col).
// Values falling outside the grid are clipped; values landing on absorbed
// coordinates are skipped. The grid's dimensions never change.
func (g *Grid) ApplyPaste(row, col int, data [][]string) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	for i, line := range data {
		if row+i >= g.rows {
			break
		}
		for j, value := range line {
			if col+j >= g.cols {
				break
			}
			if g.roleAt(row+i, col+j) == RoleAbsorbed {
				continue
			}
			g.cells[row+i][col+j].content = value
		}
	}
	return nil
}

const previewCellWidth = 20

// PreviewPaste renders a short human-readable description of what a paste
// would import: detected format, dimensions, and the first few cells.
func PreviewPaste(text string, maxLen int) string {
	if strings.TrimSpace(text) == "" {
		return "No data to paste"
	}
	data, info := ParsePaste(text)
	if len(data) == 0 {
		return "No table data found"
	}

	lines := []string{
		fmt.Sprintf("Format: %s", strings.ToUpper(string(info.Format))),
		fmt.Sprintf("Dimensions: %d rows × %d columns", info.Rows, info.Cols),
		"",
		"Preview (first few cells):",
	}
	maxRows := min(5, len(data))
	maxCols := min(4, info.Cols)
	for i := 0; i < maxRows; i++ {
		var cells []string
		for j := 0; j < min(maxCols, len(data[i])); j++ {
			cell := data[i][j]
			if runewidth.StringWidth(cell) > previewCellWidth {
				cell = runewidth.Truncate(cell, previewCellWidth, "...")
			}
			cells = append(cells, fmt.Sprintf("%q", cell))
		}
		if len(data[i]) > maxCols {
			cells = append(cells, "...")
		}
		lines = append(lines, "  "+strings.Join(cells, " | "))
	}
	if len(data) > maxRows {
		lines = append(lines, "  ...")
	}

	out := strings.Join(lines, "\n")
	if maxLen > 0 && len(out) > maxLen {
		out = out[:maxLen] + "..."
	}
	return out
}
