package util

import (
	"path"
	"strings"
)

const (
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeXLS  = "application/vnd.ms-excel"
	MimeODS  = "application/vnd.oasis.opendocument.spreadsheet"
)

// AllowedSpreadsheetMimes lists the upload content types accepted by the API.
var AllowedSpreadsheetMimes = []string{MimeXLS, MimeXLSX, MimeODS}

func IsSpreadsheetMime(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	for _, m := range AllowedSpreadsheetMimes {
		if mime == m {
			return true
		}
	}
	return false
}

// MimeFromFilenameOrMime prefers a known spreadsheet mime, then falls back to
// the file extension.
func MimeFromFilenameOrMime(filename, mime string) string {
	if IsSpreadsheetMime(mime) {
		return strings.ToLower(strings.TrimSpace(mime))
	}
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return MimeXLSX
	case ".xls":
		return MimeXLS
	case ".ods":
		return MimeODS
	default:
		return "application/octet-stream"
	}
}
