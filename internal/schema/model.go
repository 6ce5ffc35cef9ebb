package schema

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

type SubComponentInput struct {
	Key        string          `json:"key"`
	Title      string          `json:"title"`
	SchemaJSON json.RawMessage `json:"schema_json"`
}

type ComponentInput struct {
	Key           string              `json:"key"`
	Title         string              `json:"title"`
	SchemaJSON    json.RawMessage     `json:"schema_json"`
	Subcomponents []SubComponentInput `json:"subcomponents,omitempty"`
}

type NormalizeRequest struct {
	Components []ComponentInput `json:"components" binding:"required"`
}

type NormalizedSubComponent struct {
	Key        string                 `json:"key"`
	Title      string                 `json:"title"`
	SchemaJSON *orderedmap.OrderedMap `json:"schema_json"`
}

type NormalizedComponent struct {
	Key           string                   `json:"key"`
	Title         string                   `json:"title"`
	SchemaJSON    *orderedmap.OrderedMap   `json:"schema_json"`
	Subcomponents []NormalizedSubComponent `json:"subcomponents,omitempty"`
}
