package estimation

import (
	"context"

	"github.com/futig/property-estimator/internal/entity"
)

type Estimator interface {
	Estimate(ctx context.Context, details *entity.PropertyDescription) (*entity.EstimationResult, error)
}

type PropertyValidator interface {
	ValidateProperty(details *entity.PropertyDescription) error
}
