// Package export renders the current transcript as TXT, PDF or DOCX, the
// history list as XLSX, and stores the results in a Sink.
package export

import (
	"fmt"
	"strings"
	"time"

	apperrors "verbaflow/internal/app/errors"
)

// Format is an export file format.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
)

// TextFormats are the formats a single transcript can be exported to.
var TextFormats = []Format{FormatTXT, FormatPDF, FormatDOCX}

var contentTypes = map[Format]string{
	FormatTXT:  "text/plain; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ParseFormat accepts "txt", "pdf", "docx" or "xlsx", case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if _, ok := contentTypes[f]; !ok {
		return "", apperrors.Describe(apperrors.ErrUnknownFormat, "unknown export format %q (use txt, pdf or docx)", s)
	}
	return f, nil
}

// ParseFormats splits a comma separated list such as "txt,pdf".
func ParseFormats(list string) ([]Format, error) {
	var formats []Format
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	return contentTypes[f]
}

// Document is the transcript being exported.
type Document struct {
	Text     string
	FileName string
	Date     time.Time
}

func (d Document) sourceLabel() string {
	if d.FileName == "" {
		return "Unknown"
	}
	return d.FileName
}

func exportFailed(format Format, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrExportFailed, format, err)
}
