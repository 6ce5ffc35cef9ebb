package schemagen

import "github.com/iancoleman/orderedmap"

// SheetRow maps column headers to cell values in column order. Empty cells
// are nil.
type SheetRow = *orderedmap.OrderedMap

// SampleSize bounds how many rows are shown to the model.
const SampleSize = 5

// Sample returns the first SampleSize rows.
func Sample(rows []SheetRow) []SheetRow {
	if len(rows) > SampleSize {
		return rows[:SampleSize]
	}
	return rows
}

// EmptySchema is {"type":"object","properties":{}}.
func EmptySchema() *orderedmap.OrderedMap {
	s := orderedmap.New()
	s.Set("type", "object")
	s.Set("properties", orderedmap.New())
	return s
}
