package render

import (
	"math"

	"github.com/futig/property-estimator/internal/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	MsgEmptyState   = "Заповніть форму, щоб отримати оцінку вашої нерухомості."
	MsgLoading      = "Оцінюємо..."
	LabelSubmit     = "Розрахувати вартість"
	LabelSubmitBusy = "Оцінюємо..."

	hryvniaSign = "₴"
)

var printer = message.NewPrinter(language.Ukrainian)

// SessionView maps session state to exactly one display state.
// Precedence: loading, error, result, empty.
func SessionView(id string, state entity.SessionState) *entity.SessionView {
	view := &entity.SessionView{
		SessionID:     id,
		Form:          formView(state.Form),
		SubmitEnabled: !state.Loading,
		SubmitLabel:   LabelSubmit,
	}

	switch {
	case state.Loading:
		view.Kind = entity.ViewLoading
		view.SubmitLabel = LabelSubmitBusy
		view.Message = MsgLoading
	case state.Error != nil:
		view.Kind = entity.ViewError
		view.Message = *state.Error
	case state.Result != nil:
		view.Kind = entity.ViewResult
		view.Result = ResultView(state.Result)
	default:
		view.Kind = entity.ViewEmpty
		view.Message = MsgEmptyState
	}

	return view
}

// ResultView formats an estimation result for display
func ResultView(result *entity.EstimationResult) *entity.ResultView {
	return &entity.ResultView{
		EstimatedPrice: result.EstimatedPriceUAH,
		FormattedPrice: FormatUAH(result.EstimatedPriceUAH),
		PriceRange:     result.PriceRangeUAH + " " + hryvniaSign,
		Justification:  result.Justification,
	}
}

// FormatUAH renders an amount with Ukrainian digit grouping, no fractional
// digits and the hryvnia sign
func FormatUAH(amount float64) string {
	return printer.Sprint(number.Decimal(math.Round(amount), number.MaxFractionDigits(0))) + " " + hryvniaSign
}

// FormatNumber renders a plain number with Ukrainian digit grouping
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func formView(form entity.PropertyDescription) entity.FormView {
	return entity.FormView{
		Type:        form.Type,
		Location:    form.Location,
		Area:        finite(form.Area),
		Rooms:       finite(form.Rooms),
		Condition:   form.Condition,
		Description: form.Description,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
