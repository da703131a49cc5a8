package estimation

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// EstimationUsecase keeps form sessions in memory and routes operations to
// their controllers. Sessions expire after a period of inactivity.
type EstimationUsecase struct {
	sessions  *cache.Cache
	estimator Estimator
	validator PropertyValidator
	logger    *zap.Logger
}

// NewUsecase creates a new estimation use case
func NewUsecase(
	estimator Estimator,
	validator PropertyValidator,
	ttl time.Duration,
	cleanupInterval time.Duration,
	logger *zap.Logger,
) *EstimationUsecase {
	sessions := cache.New(ttl, cleanupInterval)
	sessions.OnEvicted(func(id string, _ interface{}) {
		logger.Debug("session expired", zap.String("session_id", id))
	})

	return &EstimationUsecase{
		sessions:  sessions,
		estimator: estimator,
		validator: validator,
		logger:    logger,
	}
}

// CreateSession starts a new session with the default form
func (uc *EstimationUsecase) CreateSession(ctx context.Context) (string, entity.SessionState) {
	id := uuid.New().String()
	ctrl := NewController(uc.estimator, uc.validator)
	uc.sessions.SetDefault(id, ctrl)

	ctxzap.Info(ctx, "session created", zap.String("session_id", id))

	return id, ctrl.State()
}

// GetSession returns the current state of a session
func (uc *EstimationUsecase) GetSession(ctx context.Context, id string) (entity.SessionState, error) {
	ctrl, err := uc.controller(id)
	if err != nil {
		return entity.SessionState{}, err
	}
	return ctrl.State(), nil
}

// UpdateField merges one form field into the session form
func (uc *EstimationUsecase) UpdateField(ctx context.Context, id string, req *entity.UpdateFieldRequest) (entity.SessionState, error) {
	ctrl, err := uc.controller(id)
	if err != nil {
		return entity.SessionState{}, err
	}

	if err := ctrl.UpdateField(req.Field, req.Value); err != nil {
		return entity.SessionState{}, fmt.Errorf("update field: %w", err)
	}

	ctxzap.Debug(ctx, "form field updated", zap.String("field", req.Field))

	return ctrl.State(), nil
}

// Submit runs the session's submission and returns the settled state
func (uc *EstimationUsecase) Submit(ctx context.Context, id string) (entity.SessionState, error) {
	ctrl, err := uc.controller(id)
	if err != nil {
		return entity.SessionState{}, err
	}

	state := ctrl.Submit(ctx)

	// Long estimates count as activity
	uc.touch(id, ctrl)

	return state, nil
}

// ResetSession restores the default form of a session
func (uc *EstimationUsecase) ResetSession(ctx context.Context, id string) (entity.SessionState, error) {
	ctrl, err := uc.controller(id)
	if err != nil {
		return entity.SessionState{}, err
	}

	if err := ctrl.Reset(); err != nil {
		return entity.SessionState{}, fmt.Errorf("reset session: %w", err)
	}

	ctxzap.Info(ctx, "session reset")

	return ctrl.State(), nil
}

// DeleteSession forgets a session
func (uc *EstimationUsecase) DeleteSession(ctx context.Context, id string) error {
	if _, err := uc.controller(id); err != nil {
		return err
	}

	uc.sessions.Delete(id)
	ctxzap.Info(ctx, "session deleted")

	return nil
}

// GetResult returns the last successful estimate and the form it was computed from
func (uc *EstimationUsecase) GetResult(ctx context.Context, id string) (*entity.PropertyDescription, *entity.EstimationResult, error) {
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if state.Loading || state.Result == nil || state.Estimated == nil {
		return nil, nil, entity.ErrNoResult
	}

	return state.Estimated, state.Result, nil
}

func (uc *EstimationUsecase) controller(id string) (*Controller, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid session ID format", entity.ErrInvalidParameter)
	}

	v, ok := uc.sessions.Get(id)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	ctrl := v.(*Controller)
	uc.touch(id, ctrl)

	return ctrl, nil
}

// touch extends the session lifetime. Deleted sessions stay deleted.
func (uc *EstimationUsecase) touch(id string, ctrl *Controller) {
	_ = uc.sessions.Replace(id, ctrl, cache.DefaultExpiration)
}
