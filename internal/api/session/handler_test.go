package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/pkg/formatter"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "5f0c1a86-6a3e-4c55-9f39-3c1f7b1d2e11"

// MockUsecase is a mock implementation of the EstimationUsecase interface
type MockUsecase struct {
	mock.Mock
}

func (m *MockUsecase) CreateSession(ctx context.Context) (string, entity.SessionState) {
	args := m.Called(ctx)
	return args.String(0), args.Get(1).(entity.SessionState)
}

func (m *MockUsecase) GetSession(ctx context.Context, id string) (entity.SessionState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.SessionState), args.Error(1)
}

func (m *MockUsecase) UpdateField(ctx context.Context, id string, req *entity.UpdateFieldRequest) (entity.SessionState, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(entity.SessionState), args.Error(1)
}

func (m *MockUsecase) Submit(ctx context.Context, id string) (entity.SessionState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.SessionState), args.Error(1)
}

func (m *MockUsecase) ResetSession(ctx context.Context, id string) (entity.SessionState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.SessionState), args.Error(1)
}

func (m *MockUsecase) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUsecase) GetResult(ctx context.Context, id string) (*entity.PropertyDescription, *entity.EstimationResult, error) {
	args := m.Called(ctx, id)
	property, _ := args.Get(0).(*entity.PropertyDescription)
	result, _ := args.Get(1).(*entity.EstimationResult)
	return property, result, args.Error(2)
}

func newTestRouter(uc EstimationUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, formatter.NewFactory("")))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) entity.SessionView {
	t.Helper()
	var view entity.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	return view
}

func TestHandler_CreateSession(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("CreateSession", mock.Anything).
		Return(testSessionID, entity.SessionState{Form: entity.DefaultPropertyDescription()})

	rec := doRequest(t, newTestRouter(uc), http.MethodPost, "/sessions", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	view := decodeView(t, rec)
	assert.Equal(t, testSessionID, view.SessionID)
	assert.Equal(t, entity.ViewEmpty, view.Kind)
	assert.True(t, view.SubmitEnabled)
}

func TestHandler_GetOptions(t *testing.T) {
	rec := doRequest(t, newTestRouter(new(MockUsecase)), http.MethodGet, "/options", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp entity.OptionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, entity.PropertyTypes, resp.PropertyTypes)
	assert.Equal(t, entity.Conditions, resp.Conditions)
}

func TestHandler_UpdateField(t *testing.T) {
	uc := new(MockUsecase)
	form := entity.DefaultPropertyDescription()
	form.Location = "Kyiv"
	uc.On("UpdateField", mock.Anything, testSessionID, &entity.UpdateFieldRequest{Field: "location", Value: "Kyiv"}).
		Return(entity.SessionState{Form: form}, nil)

	rec := doRequest(t, newTestRouter(uc), http.MethodPatch,
		"/sessions/"+testSessionID+"/form", `{"field":"location","value":"Kyiv"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kyiv", decodeView(t, rec).Form.Location)
	uc.AssertExpectations(t)
}

func TestHandler_UpdateField_BadBody(t *testing.T) {
	rec := doRequest(t, newTestRouter(new(MockUsecase)), http.MethodPatch,
		"/sessions/"+testSessionID+"/form", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Submit(t *testing.T) {
	errMsg := entity.MsgServiceFailure
	result := &entity.EstimationResult{EstimatedPriceUAH: 1500000, PriceRangeUAH: "1450000 - 1550000", Justification: "ok"}

	tests := []struct {
		name     string
		state    entity.SessionState
		err      error
		status   int
		expected entity.ViewKind
	}{
		{name: "Result", state: entity.SessionState{Result: result}, status: http.StatusOK, expected: entity.ViewResult},
		{name: "Service failure is a view", state: entity.SessionState{Error: &errMsg}, status: http.StatusOK, expected: entity.ViewError},
		{name: "In flight", state: entity.SessionState{Loading: true}, status: http.StatusOK, expected: entity.ViewLoading},
		{name: "Unknown session", err: entity.ErrSessionNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUsecase)
			uc.On("Submit", mock.Anything, testSessionID).Return(tt.state, tt.err)

			rec := doRequest(t, newTestRouter(uc), http.MethodPost, "/sessions/"+testSessionID+"/submit", "")

			require.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.expected, decodeView(t, rec).Kind)
			}
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "Not found", err: entity.ErrSessionNotFound, status: http.StatusNotFound},
		{name: "Busy", err: entity.ErrSessionBusy, status: http.StatusConflict},
		{name: "Invalid", err: entity.ErrInvalidParameter, status: http.StatusBadRequest},
		{name: "Other", err: assert.AnError, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUsecase)
			uc.On("ResetSession", mock.Anything, testSessionID).Return(entity.SessionState{}, tt.err)

			rec := doRequest(t, newTestRouter(uc), http.MethodPost, "/sessions/"+testSessionID+"/reset", "")

			assert.Equal(t, tt.status, rec.Code)
			var resp entity.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandler_DeleteSession(t *testing.T) {
	uc := new(MockUsecase)
	uc.On("DeleteSession", mock.Anything, testSessionID).Return(nil)

	rec := doRequest(t, newTestRouter(uc), http.MethodDelete, "/sessions/"+testSessionID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_GetReport(t *testing.T) {
	property := entity.DefaultPropertyDescription()
	property.Location = "Kyiv"
	result := &entity.EstimationResult{EstimatedPriceUAH: 1500000, PriceRangeUAH: "1450000 - 1550000", Justification: "ok"}

	t.Run("Markdown", func(t *testing.T) {
		uc := new(MockUsecase)
		uc.On("GetResult", mock.Anything, testSessionID).Return(&property, result, nil)

		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/sessions/"+testSessionID+"/report?format=markdown", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "estimate.md")
		assert.Contains(t, rec.Body.String(), "Kyiv")
	})

	t.Run("No result", func(t *testing.T) {
		uc := new(MockUsecase)
		uc.On("GetResult", mock.Anything, testSessionID).Return(nil, nil, entity.ErrNoResult)

		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/sessions/"+testSessionID+"/report", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		uc := new(MockUsecase)

		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/sessions/"+testSessionID+"/report?format=docx", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "GetResult", mock.Anything, mock.Anything)
	})

	t.Run("PDF without font", func(t *testing.T) {
		uc := new(MockUsecase)

		rec := doRequest(t, newTestRouter(uc), http.MethodGet, "/sessions/"+testSessionID+"/report?format=pdf", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Header().Get("Content-Type"), "application/pdf")
		uc.AssertNotCalled(t, "GetResult", mock.Anything, mock.Anything)
	})
}
