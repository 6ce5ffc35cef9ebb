package upload

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"sheet-template-api/internal/schemagen"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order on formatted cell text.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"2-Jan-06",
	"2-Jan-2006",
	"Jan 2, 2006",
}

// ReadWorkbook extracts header-keyed rows from every sheet in workbook order.
// A sheet with headers but no data yields one row of nulls.
func ReadWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		s, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func readSheet(f *excelize.File, name string) (Sheet, error) {
	grid, err := f.GetRows(name)
	if err != nil {
		return Sheet{}, err
	}

	dim, err := readDimension(f, name)
	if err != nil {
		return Sheet{}, err
	}

	headerIdx := -1
	for i := dim.startRow - 1; i < len(grid); i++ {
		if i >= 0 && !isBlankRow(grid[i]) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return Sheet{Name: name}, nil
	}

	firstCol := dim.startCol - 1
	header := cellsFrom(grid[headerIdx], firstCol)

	// GetRows trims trailing empty cells, so a blank trailing header would
	// otherwise drop the data beneath it.
	width := len(header)
	if w := dim.endCol - dim.startCol + 1; w > width {
		width = w
	}
	for _, raw := range grid[headerIdx+1:] {
		if n := len(cellsFrom(raw, firstCol)); n > width {
			width = n
		}
	}
	padded := make([]string, width)
	copy(padded, header)
	keys := headerKeys(padded)

	var rows []schemagen.SheetRow
	for _, raw := range grid[headerIdx+1:] {
		cells := cellsFrom(raw, firstCol)
		if isBlankRow(cells) {
			continue
		}
		row := orderedmap.New()
		for c, key := range keys {
			var v any
			if c < len(cells) {
				v = coerceCell(cells[c])
			}
			row.Set(key, v)
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		return Sheet{Name: name, Rows: rows}, nil
	}

	headerRow, err := headerOnlyRow(f, name, dim, headerIdx+1, len(grid[headerIdx]))
	if err != nil {
		return Sheet{}, err
	}
	if headerRow == nil {
		return Sheet{Name: name}, nil
	}
	return Sheet{Name: name, Rows: []schemagen.SheetRow{headerRow}, HeaderOnly: true}, nil
}

// headerOnlyRow reads the header cells across the used range and maps each
// non-empty header to nil.
func headerOnlyRow(f *excelize.File, sheet string, dim dimension, headerRow, rowLen int) (schemagen.SheetRow, error) {
	lastCol := dim.endCol
	if rowLen > lastCol {
		lastCol = rowLen
	}

	row := orderedmap.New()
	for col := dim.startCol; col <= lastCol; col++ {
		cell, err := excelize.CoordinatesToCellName(col, headerRow)
		if err != nil {
			return nil, err
		}
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		row.Set(v, nil)
	}

	if len(row.Keys()) == 0 {
		return nil, nil
	}
	return row, nil
}

type dimension struct {
	startCol, startRow int
	endCol, endRow     int
}

// readDimension parses the declared used range. A missing range means A1.
func readDimension(f *excelize.File, sheet string) (dimension, error) {
	ref, err := f.GetSheetDimension(sheet)
	if err != nil {
		return dimension{}, err
	}
	if ref == "" {
		ref = "A1"
	}

	parts := strings.SplitN(ref, ":", 2)
	sc, sr, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return dimension{}, err
	}
	d := dimension{startCol: sc, startRow: sr, endCol: sc, endRow: sr}
	if len(parts) == 2 {
		ec, er, err := excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return dimension{}, err
		}
		d.endCol, d.endRow = ec, er
	}
	return d, nil
}

// headerKeys names columns the way spreadsheet-to-JSON exports do: blank
// headers become __EMPTY, __EMPTY_1, ... and repeats get a _n suffix.
func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	seen := map[string]int{}
	for i, h := range header {
		base := h
		if strings.TrimSpace(h) == "" {
			base = "__EMPTY"
		}
		key := base
		if n, ok := seen[base]; ok {
			key = base + "_" + strconv.Itoa(n)
			seen[base] = n + 1
		} else {
			seen[base] = 1
		}
		keys[i] = key
	}
	return keys
}

func cellsFrom(row []string, firstCol int) []string {
	if firstCol <= 0 {
		return row
	}
	if firstCol >= len(row) {
		return nil
	}
	return row[firstCol:]
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// coerceCell converts formatted cell text into a JSON scalar: number, bool,
// date, or the original string. Blank cells become nil.
func coerceCell(s string) any {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return float64(n)
	}
	if n, err := strconv.ParseFloat(t, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return n
	}
	switch t {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, t); err == nil {
			return d
		}
	}
	return s
}
