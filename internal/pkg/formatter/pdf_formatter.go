package formatter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/futig/property-estimator/internal/pkg/render"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"
)

type PDFFormatter struct {
	fontPath string
}

// NewPDFFormatter renders reports with the TTF font at fontPath
func NewPDFFormatter(fontPath string) *PDFFormatter {
	return &PDFFormatter{fontPath: fontPath}
}

// resolveFontPath returns the first existing font file among the
// configured path and the source layout, or "" when there is none.
func resolveFontPath(configured string) string {
	for _, path := range []string{configured, pdfFontSourcePath} {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (mf *PDFFormatter) Format(report *Report) ([]byte, error) {
	view := render.ResultView(report.Result)

	font, err := os.ReadFile(mf.fontPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	// Register regular and bold styles under the same family name
	pdf.AddUTF8FontFromBytes(pdfFontName, "", font)
	pdf.AddUTF8FontFromBytes(pdfFontName, "B", font)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load pdf font %q: %w", mf.fontPath, err)
	}

	pdf.AddPage()

	pdf.SetFont(pdfFontName, "B", 20)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(14)

	pdf.SetFont(pdfFontName, "B", 14)
	pdf.Cell(0, 8, "Дані про об'єкт")
	pdf.Ln(10)

	pdf.SetFont(pdfFontName, "", 12)
	_, lineHeight := pdf.GetFontSize()
	for _, line := range propertyLines(report.Property) {
		pdf.MultiCell(0, lineHeight*1.5, line.label+": "+line.value, "", "", false)
	}
	pdf.Ln(6)

	pdf.SetFont(pdfFontName, "B", 14)
	pdf.Cell(0, 8, "Результат оцінки")
	pdf.Ln(10)

	pdf.SetFont(pdfFontName, "B", 16)
	pdf.Cell(0, 10, view.FormattedPrice)
	pdf.Ln(10)

	pdf.SetFont(pdfFontName, "", 12)
	pdf.MultiCell(0, lineHeight*1.5, "Діапазон цін: "+view.PriceRange, "", "", false)
	pdf.Ln(4)
	pdf.MultiCell(0, lineHeight*1.5, view.Justification, "", "", false)

	if err := pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (mf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
