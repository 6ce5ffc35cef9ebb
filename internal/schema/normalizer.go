package schema

import (
	"strings"

	"sheet-template-api/internal/util"

	"github.com/iancoleman/orderedmap"
)

// Normalize repairs an inferred schema into the single-record shape the
// editor and form renderer work with. The input is never modified and the
// result is a fixed point: Normalize(Normalize(s)) equals Normalize(s).
func Normalize(in *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	out := orderedmap.New()
	if in == nil {
		out.Set("type", "object")
		out.Set("properties", orderedmap.New())
		return out
	}

	if unwrapped, ok := unwrapArray(in); ok {
		out.Set("type", "object")
		out.Set("properties", unwrapped)
	} else {
		for _, k := range in.Keys() {
			v, _ := in.Get(k)
			out.Set(k, v)
		}
	}

	raw, _ := out.Get("properties")
	props, ok := util.AsObject(raw)
	if !ok {
		out.Set("properties", orderedmap.New())
		return out
	}

	fixed := orderedmap.New()
	for _, key := range props.Keys() {
		v, _ := props.Get(key)
		fixed.Set(key, normalizeProperty(key, v))
	}
	out.Set("properties", fixed)
	return out
}

// unwrapArray returns items.properties for a list-of-records schema.
func unwrapArray(s *orderedmap.OrderedMap) (any, bool) {
	if t, _ := s.Get("type"); t != "array" {
		return nil, false
	}
	rawItems, _ := s.Get("items")
	items, ok := util.AsObject(rawItems)
	if !ok {
		return nil, false
	}
	props, ok := items.Get("properties")
	if !ok {
		return nil, false
	}
	return props, true
}

func normalizeProperty(key string, v any) *orderedmap.OrderedMap {
	src, ok := util.AsObject(v)
	if !ok {
		p := orderedmap.New()
		p.Set("type", "string")
		p.Set("title", key)
		return p
	}

	p := orderedmap.New()
	for _, k := range src.Keys() {
		val, _ := src.Get(k)
		p.Set(k, val)
	}

	if t, ok := p.Get("type"); ok {
		if tags, isList := t.([]any); isList {
			p.Set("type", firstNonNullTag(tags))
		}
	}
	if t, _ := p.Get("type"); t == "integer" {
		p.Set("type", "number")
	}

	if t, _ := p.Get("type"); t == "string" && !truthy(p, "format") {
		lower := strings.ToLower(key)
		switch {
		case strings.Contains(lower, "date"):
			p.Set("format", "date")
		case strings.Contains(lower, "email"):
			p.Set("format", "email")
		}
	}

	if !truthy(p, "title") {
		p.Set("title", key)
	}
	return p
}

func firstNonNullTag(tags []any) string {
	for _, t := range tags {
		if s, ok := t.(string); ok && s != "null" {
			return s
		}
	}
	return "string"
}

// truthy reports whether key holds a value other than nil, "", 0 or false.
func truthy(m *orderedmap.OrderedMap, key string) bool {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return false
	}
	switch x := v.(type) {
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	}
	return true
}
