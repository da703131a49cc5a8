package entity

// PropertyType is a real estate category offered in the form
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "Квартира"
	PropertyTypeHouse      PropertyType = "Будинок"
	PropertyTypeCommercial PropertyType = "Комерційна нерухомість"
	PropertyTypeLand       PropertyType = "Земельна ділянка"
)

// PropertyTypes is the ordered list of selectable property types.
// The first entry is the form default.
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeCommercial,
	PropertyTypeLand,
}

// Valid reports whether t belongs to PropertyTypes
func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Condition describes the state of repair of a property
type Condition string

const (
	ConditionNewBuild    Condition = "Новобудова (без ремонту)"
	ConditionLivable     Condition = "Житловий стан"
	ConditionRenovated   Condition = "Євроремонт"
	ConditionNeedsRepair Condition = "Потребує ремонту"
)

// Conditions is the ordered list of selectable conditions.
// The first entry is the form default.
var Conditions = []Condition{
	ConditionNewBuild,
	ConditionLivable,
	ConditionRenovated,
	ConditionNeedsRepair,
}

// Valid reports whether c belongs to Conditions
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// Form field names accepted by the controller
const (
	FieldType        = "type"
	FieldLocation    = "location"
	FieldArea        = "area"
	FieldRooms       = "rooms"
	FieldCondition   = "condition"
	FieldDescription = "description"
)

// PropertyDescription is the user supplied description of a property.
// Area and Rooms may hold NaN after a failed numeric parse; validation rejects it.
type PropertyDescription struct {
	Type        PropertyType `json:"type" validate:"property_type"`
	Location    string       `json:"location" validate:"required"`
	Area        float64      `json:"area" validate:"gt=0"`
	Rooms       float64      `json:"rooms" validate:"gte=1"`
	Condition   Condition    `json:"condition" validate:"condition"`
	Description string       `json:"description"`
}

// DefaultPropertyDescription returns the initial form values
func DefaultPropertyDescription() PropertyDescription {
	return PropertyDescription{
		Type:      PropertyTypes[0],
		Area:      50,
		Rooms:     2,
		Condition: Conditions[0],
	}
}

// EstimationResult is the valuation returned by the estimation service
type EstimationResult struct {
	EstimatedPriceUAH float64 `json:"estimated_price_uah"`
	PriceRangeUAH     string  `json:"price_range_uah"`
	Justification     string  `json:"justification"`
}
