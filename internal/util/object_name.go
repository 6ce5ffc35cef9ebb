package util

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var unsafeObjectChars = regexp.MustCompile(`[^a-z0-9_\-.]`)

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeObjectChars.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// UploadObjectName is the bucket path an uploaded workbook is archived under.
func UploadObjectName(id, originalFileName string) string {
	return fmt.Sprintf("uploads/%s-%s", id, SanitizePart(path.Base(originalFileName)))
}

// GCSURL returns the gs:// form of an object location.
func GCSURL(bucket, objectName string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectName)
}
