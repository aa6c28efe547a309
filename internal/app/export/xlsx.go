package export

import (
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"verbaflow/internal/app/model"
)

// HistoryToExcel writes one row per history entry, newest first.
func HistoryToExcel(w io.Writer, entries []model.HistoryEntry) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("History")
	if err != nil {
		return exportFailed(FormatXLSX, err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Date"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "Text"

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().Value = e.ID
		row.AddCell().Value = e.FileName
		row.AddCell().Value = e.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = string(e.Language)
		row.AddCell().Value = e.Text
	}

	if err := file.Write(w); err != nil {
		return exportFailed(FormatXLSX, err)
	}
	return nil
}
