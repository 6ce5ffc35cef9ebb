package upload

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]any
	// dimension, when set, overrides the used range written to the file.
	dimension string
}

func buildWorkbook(t *testing.T, sheets ...testSheet) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("SetSheetName: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}

		for r, row := range s.rows {
			if row == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			values := row
			if err := f.SetSheetRow(s.name, cell, &values); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
		if s.dimension != "" {
			if err := f.SetSheetDimension(s.name, s.dimension); err != nil {
				t.Fatalf("SetSheetDimension: %v", err)
			}
		}
	}
	return f
}

func writeWorkbook(t *testing.T, sheets ...testSheet) string {
	t.Helper()
	f := buildWorkbook(t, sheets...)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func keysOf(row *orderedmap.OrderedMap) []string {
	return append([]string(nil), row.Keys()...)
}
