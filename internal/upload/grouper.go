package upload

import (
	"regexp"
	"strings"
)

var (
	parenSuffixRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	partSuffixRe  = regexp.MustCompile(`(?i)\s*\bpart\s*\d+\s*$`)
	// Digits glued to a word ("Sheet1") are part of the name; only a
	// separate trailing number ("Sheet 2") is a suffix.
	numberSuffixRe = regexp.MustCompile(`\s+\d+$`)
)

// GroupBaseName derives the grouping key of a sheet name. It never returns an
// empty string.
func GroupBaseName(sheetName string) string {
	base := sheetName
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(base)
	base = parenSuffixRe.ReplaceAllString(base, "")
	base = partSuffixRe.ReplaceAllString(base, "")
	base = numberSuffixRe.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)

	if base == "" {
		return sheetName
	}
	return base
}

type SheetGroup struct {
	BaseName string
	Sheets   []Sheet
}

// GroupSheets clusters sheets by base name. Groups appear in order of their
// first sheet and keep workbook order inside.
func GroupSheets(sheets []Sheet) []SheetGroup {
	var groups []SheetGroup
	index := map[string]int{}

	for _, s := range sheets {
		base := GroupBaseName(s.Name)
		i, ok := index[base]
		if !ok {
			i = len(groups)
			index[base] = i
			groups = append(groups, SheetGroup{BaseName: base})
		}
		groups[i].Sheets = append(groups[i].Sheets, s)
	}
	return groups
}
