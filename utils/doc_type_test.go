package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTypeFromFilename(t *testing.T) {
	assert.Equal(t, "pdf", DocTypeFromFilename("Report.PDF"))
	assert.Equal(t, "docx", DocTypeFromFilename("notes.doc"))
	assert.Equal(t, "docx", DocTypeFromFilename("notes.docx"))
	assert.Equal(t, "xlsx", DocTypeFromFilename("budget.xlsx"))
	assert.Equal(t, "other", DocTypeFromFilename("archive.zip"))
	assert.Equal(t, "other", DocTypeFromFilename("README"))
}
