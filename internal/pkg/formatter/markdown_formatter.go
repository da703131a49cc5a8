package formatter

import (
	"bytes"
	"fmt"

	"github.com/futig/property-estimator/internal/pkg/render"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report *Report) ([]byte, error) {
	view := render.ResultView(report.Result)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", baseTitle)

	buf.WriteString("## Дані про об'єкт\n\n")
	for _, line := range propertyLines(report.Property) {
		fmt.Fprintf(&buf, "- **%s:** %s\n", line.label, line.value)
	}

	buf.WriteString("\n## Результат оцінки\n\n")
	fmt.Fprintf(&buf, "Орієнтовна ринкова вартість: **%s**\n\n", view.FormattedPrice)
	fmt.Fprintf(&buf, "Діапазон цін: %s\n\n", view.PriceRange)
	buf.WriteString("### Обґрунтування ціни\n\n")
	fmt.Fprintf(&buf, "%s\n", view.Justification)

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
