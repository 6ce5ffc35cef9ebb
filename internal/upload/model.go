package upload

import (
	"sheet-template-api/internal/schemagen"

	"github.com/iancoleman/orderedmap"
)

type Sheet struct {
	Name string
	Rows []schemagen.SheetRow
	// HeaderOnly marks a sheet whose single row was synthesized from headers.
	HeaderOnly bool
}

type SubComponent struct {
	Key        string                 `json:"key"`
	Title      string                 `json:"title"`
	SchemaJSON *orderedmap.OrderedMap `json:"schema_json"`
}

type ComponentDraft struct {
	Key           string                 `json:"key"`
	Title         string                 `json:"title"`
	SchemaJSON    *orderedmap.OrderedMap `json:"schema_json"`
	Subcomponents []SubComponent         `json:"subcomponents,omitempty"`
}

type ProcessResult struct {
	FileName   string           `json:"fileName"`
	Components []ComponentDraft `json:"components"`
}
