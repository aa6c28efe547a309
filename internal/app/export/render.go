package export

import (
	"bytes"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"

	apperrors "verbaflow/internal/app/errors"
)

const title = "Transcription - VerbaFlow"

// Render encodes doc in format f.
func Render(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatTXT:
		return renderTXT(w, doc)
	case FormatPDF:
		return renderPDF(w, doc)
	case FormatDOCX:
		return renderDOCX(w, doc)
	default:
		return apperrors.Describe(apperrors.ErrUnknownFormat, "format %q cannot render a transcript", f)
	}
}

// RenderBytes is Render into memory.
func RenderBytes(f Format, doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, f, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderTXT(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, doc.Text); err != nil {
		return exportFailed(FormatTXT, err)
	}
	return nil
}

// renderPDF lays out an A4 page with a title, a source header and the text.
// The core fonts cover cp1252 only; other runes are replaced by the translator.
func renderPDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("VerbaFlow", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr("File: "+doc.sourceLabel()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Generated on: "+doc.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(7)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, tr(doc.Text), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return exportFailed(FormatPDF, err)
	}
	return nil
}

// renderDOCX writes a centered bold title, an italic source line and one
// paragraph per line of text.
func renderDOCX(w io.Writer, doc Document) error {
	d := docx.New().WithDefaultTheme()

	d.AddParagraph().Justification("center").AddText(title).Bold().Size("32")
	d.AddParagraph().AddText("File: " + doc.sourceLabel()).Italic().Color("666666").Size("20")
	d.AddParagraph().AddText("Generated on: " + doc.Date.Format("2006-01-02")).Italic().Color("666666").Size("20")

	for _, line := range strings.Split(doc.Text, "\n") {
		d.AddParagraph().AddText(strings.TrimRight(line, "\r")).Size("24")
	}

	if _, err := d.WriteTo(w); err != nil {
		return exportFailed(FormatDOCX, err)
	}
	return nil
}
