package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/pkg/formatter"
	"github.com/futig/property-estimator/internal/pkg/logger"
	"github.com/futig/property-estimator/internal/pkg/render"
	"github.com/futig/property-estimator/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const reportFileName = "estimate"

type Handler struct {
	usecase    EstimationUsecase
	formatters *formatter.Factory
}

func NewHandler(usecase EstimationUsecase, formatters *formatter.Factory) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
	}
}

// GetOptions handles GET /options
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, &entity.OptionsResponse{
		PropertyTypes: entity.PropertyTypes,
		Conditions:    entity.Conditions,
	})
}

// CreateSession handles POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSession")

	id, state := h.usecase.CreateSession(ctx)

	response.Created(w, render.SessionView(id, state))
}

// GetSession handles GET /sessions/{session_id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "GetSession")

	state, err := h.usecase.GetSession(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, render.SessionView(id, state))
}

// UpdateField handles PATCH /sessions/{session_id}/form
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "UpdateField")

	var req entity.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	state, err := h.usecase.UpdateField(ctx, id, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, render.SessionView(id, state))
}

// Submit handles POST /sessions/{session_id}/submit.
// Validation and estimation failures are part of the returned view, not HTTP errors.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "Submit")

	ctxzap.Info(ctx, "submitting property form")

	state, err := h.usecase.Submit(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, render.SessionView(id, state))
}

// ResetSession handles POST /sessions/{session_id}/reset
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "ResetSession")

	state, err := h.usecase.ResetSession(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, render.SessionView(id, state))
}

// DeleteSession handles DELETE /sessions/{session_id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "DeleteSession")

	if err := h.usecase.DeleteSession(ctx, id); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// GetReport handles GET /sessions/{session_id}/report?format=markdown|pdf
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r, "GetReport")

	format := entity.ReportFormat(r.URL.Query().Get("format"))
	f, err := h.formatters.Create(format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	property, result, err := h.usecase.GetResult(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := f.Format(&formatter.Report{Property: property, Result: result})
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to render report", err)
		return
	}

	ctxzap.Info(ctx, "report rendered", zap.String("format", string(format)), zap.Int("size", len(data)))
	response.File(w, f.ContentType(), reportFileName+f.FileExtension(), data)
}

func sessionContext(r *http.Request, action string) (context.Context, string) {
	id := chi.URLParam(r, "session_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", id),
		zap.String("action", action),
	)
	return ctx, id
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "session not found", err)
	case errors.Is(err, entity.ErrNoResult):
		h.respondError(ctx, w, http.StatusNotFound, "estimation result not available", err)
	case errors.Is(err, entity.ErrSessionBusy):
		h.respondError(ctx, w, http.StatusConflict, "estimation is in progress", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrUnsupportedFormat):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
