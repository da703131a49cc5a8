package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/go-playground/validator/v10"
)

// Validator checks a property form before it may be submitted
type Validator struct {
	validate *validator.Validate
}

func NewPropertyValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Closed sets are validated against their single source of truth
	_ = v.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
		return entity.PropertyType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return entity.Condition(fl.Field().String()).Valid()
	})

	return &Validator{validate: v}
}

// ValidateProperty enforces the required-field invariant.
// NaN area or rooms fail the numeric comparisons.
func (v *Validator) ValidateProperty(details *entity.PropertyDescription) error {
	if err := v.validate.Struct(details); err != nil {
		return &entity.ValidationError{Err: fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)}
	}
	return nil
}

// ParseField converts a raw form value for the named field.
// Numeric fields keep NaN on parse failure; closed-set fields reject unknown values.
func ParseField(name, raw string) (func(*entity.PropertyDescription), error) {
	switch name {
	case entity.FieldType:
		t := entity.PropertyType(raw)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown property type %q", entity.ErrInvalidParameter, raw)
		}
		return func(d *entity.PropertyDescription) { d.Type = t }, nil
	case entity.FieldCondition:
		c := entity.Condition(raw)
		if !c.Valid() {
			return nil, fmt.Errorf("%w: unknown condition %q", entity.ErrInvalidParameter, raw)
		}
		return func(d *entity.PropertyDescription) { d.Condition = c }, nil
	case entity.FieldLocation:
		return func(d *entity.PropertyDescription) { d.Location = raw }, nil
	case entity.FieldDescription:
		return func(d *entity.PropertyDescription) { d.Description = raw }, nil
	case entity.FieldArea:
		area := parseNumber(raw)
		return func(d *entity.PropertyDescription) { d.Area = area }, nil
	case entity.FieldRooms:
		rooms := parseNumber(raw)
		return func(d *entity.PropertyDescription) { d.Rooms = rooms }, nil
	default:
		return nil, fmt.Errorf("%w: unknown field %q", entity.ErrInvalidParameter, name)
	}
}

func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
