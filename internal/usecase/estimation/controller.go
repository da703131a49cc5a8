package estimation

import (
	"context"
	"fmt"
	"sync"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Controller owns the form state of one session and drives the estimator.
// At most one estimate is in flight per controller.
type Controller struct {
	mu       sync.Mutex
	state    entity.SessionState
	inflight entity.PropertyDescription

	estimator Estimator
	validator PropertyValidator
}

// NewController creates a controller with the default form
func NewController(estimator Estimator, validator PropertyValidator) *Controller {
	return &Controller{
		state:     entity.SessionState{Form: entity.DefaultPropertyDescription()},
		estimator: estimator,
		validator: validator,
	}
}

// State returns a copy of the current session state
func (c *Controller) State() entity.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// UpdateField merges one raw form value into the form
func (c *Controller) UpdateField(name, raw string) error {
	apply, err := validator.ParseField(name, raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	apply(&c.state.Form)
	return nil
}

// Reset restores the default form and clears the last outcome
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return entity.ErrSessionBusy
	}
	c.state = entity.SessionState{Form: entity.DefaultPropertyDescription()}
	return nil
}

// Submit validates the form and runs one estimate. It returns the settled state.
// While an estimate is in flight it is a no-op returning the current state.
func (c *Controller) Submit(ctx context.Context) (state entity.SessionState) {
	form, release, ok := c.acquire(ctx)
	if !ok {
		return c.State()
	}

	// The estimate runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	var (
		result *entity.EstimationResult
		err    error
	)
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, &entity.ServiceError{Err: fmt.Errorf("estimator panic: %v", r)}
		}
		release(ctx, result, err)
		state = c.State()
	}()

	result, err = c.estimator.Estimate(ctx, &form)
	return
}

// acquire validates the form and marks the session as loading.
// The returned release settles the session and must be called exactly once.
func (c *Controller) acquire(ctx context.Context) (
	entity.PropertyDescription,
	func(context.Context, *entity.EstimationResult, error),
	bool,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		ctxzap.Warn(ctx, "submit ignored, estimation already in progress")
		return entity.PropertyDescription{}, nil, false
	}

	if err := c.validator.ValidateProperty(&c.state.Form); err != nil {
		ctxzap.Info(ctx, "form validation failed", zap.Error(err))
		msg := entity.UserMessage(err)
		c.state.Error = &msg
		return entity.PropertyDescription{}, nil, false
	}

	c.state.Error = nil
	c.state.Result = nil
	c.state.Estimated = nil
	c.state.Loading = true
	c.inflight = c.state.Form

	return c.state.Form, c.release, true
}

func (c *Controller) release(ctx context.Context, result *entity.EstimationResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Loading = false
	if err != nil || result == nil {
		if err == nil {
			err = &entity.ServiceError{Err: fmt.Errorf("estimator returned no result")}
		}
		ctxzap.Error(ctx, "estimation failed", zap.Error(err))
		msg := entity.UserMessage(err)
		c.state.Error = &msg
		return
	}

	ctxzap.Info(ctx, "estimation completed", zap.Float64("estimated_price_uah", result.EstimatedPriceUAH))
	res := *result
	form := c.inflight
	c.state.Result = &res
	c.state.Estimated = &form
}

func (c *Controller) snapshot() entity.SessionState {
	s := c.state
	if s.Result != nil {
		res := *s.Result
		s.Result = &res
	}
	if s.Error != nil {
		msg := *s.Error
		s.Error = &msg
	}
	if s.Estimated != nil {
		form := *s.Estimated
		s.Estimated = &form
	}
	return s
}
