package schemagen

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/iancoleman/orderedmap"
)

// FallbackSchema derives a schema from the first row alone without calling
// the model. It never fails.
func FallbackSchema(sample []SheetRow) *orderedmap.OrderedMap {
	schema := EmptySchema()
	if len(sample) == 0 || sample[0] == nil {
		return schema
	}

	props := orderedmap.New()
	first := sample[0]
	for _, key := range first.Keys() {
		v, _ := first.Get(key)
		props.Set(key, propertyFor(key, v))
	}
	schema.Set("properties", props)
	return schema
}

func propertyFor(key string, v any) *orderedmap.OrderedMap {
	p := orderedmap.New()
	switch {
	case isNumeric(v):
		p.Set("type", "number")
	case isDate(v):
		p.Set("type", "string")
		p.Set("format", "date")
	case isSequence(v):
		items := orderedmap.New()
		items.Set("type", "string")
		p.Set("type", "array")
		p.Set("items", items)
	default:
		p.Set("type", "string")
	}
	p.Set("title", key)
	return p
}

func isNumeric(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isDate(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
