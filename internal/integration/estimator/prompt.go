package estimator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/futig/property-estimator/internal/entity"
	"google.golang.org/genai"
)

const noDescription = "Немає"

// Response field names, shared by the schema and the decoder
const (
	fieldEstimatedPrice = "estimated_price_uah"
	fieldPriceRange     = "price_range_uah"
	fieldJustification  = "justification"
)

// responseSchema constrains the model output to the three estimation fields
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		fieldEstimatedPrice: {
			Type:        genai.TypeNumber,
			Description: "Розрахункова вартість об'єкта в українських гривнях (UAH).",
		},
		fieldPriceRange: {
			Type:        genai.TypeString,
			Description: `Діапазон можливих цін, наприклад "1450000 - 1550000".`,
		},
		fieldJustification: {
			Type:        genai.TypeString,
			Description: "Коротке обґрунтування ціни на основі ринкових даних та наданих характеристик.",
		},
	},
	Required:         []string{fieldEstimatedPrice, fieldPriceRange, fieldJustification},
	PropertyOrdering: []string{fieldEstimatedPrice, fieldPriceRange, fieldJustification},
}

// buildPrompt renders the instruction sent to the model for one property
func buildPrompt(details *entity.PropertyDescription) string {
	description := details.Description
	if description == "" {
		description = noDescription
	}

	var b strings.Builder
	b.WriteString("Ти — досвідчений експерт з нерухомості в Україні. ")
	b.WriteString("Твоє завдання — оцінити ринкову вартість нерухомості на основі наданих даних.\n\n")
	b.WriteString("Для оцінки використовуй актуальні дані з провідних українських сайтів нерухомості, ")
	b.WriteString("таких як DIM.RIA та ЛУН. Проаналізуй ринок для вказаного міста/регіону.\n\n")

	b.WriteString("**Дані про об'єкт:**\n")
	fmt.Fprintf(&b, "- Тип: %s\n", details.Type)
	fmt.Fprintf(&b, "- Місцезнаходження (місто, район): %s\n", details.Location)
	fmt.Fprintf(&b, "- Площа: %s кв.м.\n", formatNumber(details.Area))
	fmt.Fprintf(&b, "- Кількість кімнат: %s\n", formatNumber(details.Rooms))
	fmt.Fprintf(&b, "- Стан: %s\n", details.Condition)
	fmt.Fprintf(&b, "- Додатковий опис: %s\n\n", description)

	b.WriteString("**Вимоги до відповіді:**\n")
	b.WriteString("Надай відповідь у форматі JSON, що відповідає наданій схемі.\n")
	b.WriteString("Відповідь повинна містити орієнтовну вартість в гривнях (UAH), діапазон цін та коротке ")
	b.WriteString("обґрунтування цієї ціни, враховуючи поточну ситуацію на ринку нерухомості України ")
	b.WriteString("для даного типу об'єкта та регіону.\n")

	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
