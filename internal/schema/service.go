package schema

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

type SchemaService struct{}

// NormalizeComponents normalizes every component schema and subcomponent
// schema. Schemas that are missing or not JSON objects become empty object
// schemas.
func (ss *SchemaService) NormalizeComponents(in []ComponentInput) []NormalizedComponent {
	out := make([]NormalizedComponent, 0, len(in))
	for _, c := range in {
		nc := NormalizedComponent{
			Key:        c.Key,
			Title:      c.Title,
			SchemaJSON: Normalize(decodeObject(c.SchemaJSON)),
		}
		for _, sub := range c.Subcomponents {
			nc.Subcomponents = append(nc.Subcomponents, NormalizedSubComponent{
				Key:        sub.Key,
				Title:      sub.Title,
				SchemaJSON: Normalize(decodeObject(sub.SchemaJSON)),
			})
		}
		out = append(out, nc)
	}
	return out
}

// decodeObject returns nil unless raw holds a JSON object.
func decodeObject(raw json.RawMessage) *orderedmap.OrderedMap {
	if len(raw) == 0 {
		return nil
	}
	o := orderedmap.New()
	if err := json.Unmarshal(raw, o); err != nil {
		return nil
	}
	return o
}
