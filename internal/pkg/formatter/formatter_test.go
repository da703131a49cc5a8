package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *Report {
	property := entity.DefaultPropertyDescription()
	property.Location = "Київ, Печерський район"

	return &Report{
		Property: &property,
		Result: &entity.EstimationResult{
			EstimatedPriceUAH: 1500000,
			PriceRangeUAH:     "1450000 - 1550000",
			Justification:     "Порівняння з оголошеннями на DIM.RIA та ЛУН.",
		},
	}
}

func TestFactory_Create(t *testing.T) {
	fontPath := writeFile(t, "font.ttf")
	f := NewFactory(fontPath)

	tests := []struct {
		format    entity.ReportFormat
		extension string
		hasErr    bool
	}{
		{format: entity.FormatMarkdown, extension: ".md"},
		{format: "", extension: ".md"},
		{format: entity.FormatPDF, extension: ".pdf"},
		{format: "docx", hasErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			formatter, err := f.Create(tt.format)
			if tt.hasErr {
				assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.extension, formatter.FileExtension())
		})
	}
}

func TestFactory_Create_PDFWithoutFont(t *testing.T) {
	f := NewFactory(filepath.Join(t.TempDir(), "missing.ttf"))

	_, err := f.Create(entity.FormatPDF)
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)

	// Markdown stays available
	_, err = f.Create(entity.FormatMarkdown)
	assert.NoError(t, err)
}

func TestFactory_Create_FontPathIsDirectory(t *testing.T) {
	f := NewFactory(t.TempDir())

	_, err := f.Create(entity.FormatPDF)
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# "+baseTitle)
	assert.Contains(t, text, "- **Місцезнаходження:** Київ, Печерський район")
	assert.Contains(t, text, "- **Додатковий опис:** Немає")
	assert.Contains(t, text, "Діапазон цін: 1450000 - 1550000 ₴")
	assert.Contains(t, text, "Порівняння з оголошеннями на DIM.RIA та ЛУН.")
}

func TestPDFFormatter_Format(t *testing.T) {
	fontPath := resolveFontPath(os.Getenv("REPORT_FONT_PATH"))
	if fontPath == "" {
		t.Skip("no DejaVuSans.ttf available, set REPORT_FONT_PATH to run")
	}
	formatter := NewPDFFormatter(fontPath)

	out, err := formatter.Format(testReport())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, "application/pdf", formatter.ContentType())
}

func TestPDFFormatter_Format_MissingFont(t *testing.T) {
	formatter := NewPDFFormatter(filepath.Join(t.TempDir(), "missing.ttf"))

	out, err := formatter.Format(testReport())
	require.Error(t, err)
	assert.Nil(t, out)
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("font"), 0o600))
	return path
}
