package export

import (
	"strings"
	"time"
)

// Placeholder is the base name used when the source file name is unknown.
const Placeholder = "transcription"

// FileName derives "{base}_{YYYY-MM-DD}.{ext}" from the source file name.
// The base drops the final extension; a missing name uses Placeholder.
func FileName(source, ext string, date time.Time) string {
	return baseName(source) + "_" + date.Format(time.DateOnly) + "." + strings.TrimPrefix(ext, ".")
}

func baseName(source string) string {
	source = strings.TrimSpace(source)
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		source = source[i+1:]
	}
	if i := strings.LastIndexByte(source, '.'); i >= 0 {
		source = source[:i]
	}
	if source == "" {
		return Placeholder
	}
	return source
}
