package formatter

import (
	"fmt"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/pkg/render"
)

const baseTitle = "Оцінка вартості нерухомості"

// Report is an estimation result together with the form it was computed from
type Report struct {
	Property *entity.PropertyDescription
	Result   *entity.EstimationResult
}

type Formatter interface {
	Format(report *Report) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// Factory creates report formatters. PDF export is offered only when a
// UTF-8 font is available, since core PDF fonts cannot render Cyrillic.
type Factory struct {
	fontPath string
}

// NewFactory looks up the PDF font at fontPath, falling back to the
// source-tree location. An empty result disables PDF export.
func NewFactory(fontPath string) *Factory {
	return &Factory{fontPath: resolveFontPath(fontPath)}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown, "":
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		if f.fontPath == "" {
			return nil, fmt.Errorf("%w: %s export needs a UTF-8 font", entity.ErrUnsupportedFormat, format)
		}
		return NewPDFFormatter(f.fontPath), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}

// reportLine is one labelled row of the property summary
type reportLine struct {
	label string
	value string
}

func propertyLines(p *entity.PropertyDescription) []reportLine {
	description := p.Description
	if description == "" {
		description = "Немає"
	}
	return []reportLine{
		{"Тип", string(p.Type)},
		{"Місцезнаходження", p.Location},
		{"Площа", render.FormatNumber(p.Area) + " м²"},
		{"Кількість кімнат", render.FormatNumber(p.Rooms)},
		{"Стан", string(p.Condition)},
		{"Додатковий опис", description},
	}
}
