package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SplitCommaList splits "a, b,,c" into trimmed, non-empty parts.
func SplitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StripExtension drops the final ".ext" of a file name. A name that is only an
// extension (".xlsx") becomes empty.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// SanitizeKey turns a sheet or group name into a component key: trimmed,
// whitespace runs collapsed to "_", lower-cased.
func SanitizeKey(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_"))
}
