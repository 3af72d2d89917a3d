package utils

import (
	"path/filepath"
	"strings"
)

// DocTypeFromFilename classifies an uploaded file by extension. Link
// documents never pass through here; they are created with doc_type "url"
// directly.
func DocTypeFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx", ".doc":
		return "docx"
	case ".xlsx", ".xls":
		return "xlsx"
	default:
		return "other"
	}
}
