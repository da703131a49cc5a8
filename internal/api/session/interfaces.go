package session

import (
	"context"

	"github.com/futig/property-estimator/internal/entity"
)

type EstimationUsecase interface {
	CreateSession(ctx context.Context) (string, entity.SessionState)
	GetSession(ctx context.Context, id string) (entity.SessionState, error)
	UpdateField(ctx context.Context, id string, req *entity.UpdateFieldRequest) (entity.SessionState, error)
	Submit(ctx context.Context, id string) (entity.SessionState, error)
	ResetSession(ctx context.Context, id string) (entity.SessionState, error)
	DeleteSession(ctx context.Context, id string) error
	GetResult(ctx context.Context, id string) (*entity.PropertyDescription, *entity.EstimationResult, error)
}
