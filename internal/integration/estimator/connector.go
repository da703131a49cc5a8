package estimator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/futig/property-estimator/internal/config"
	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/integration/common"
	"github.com/go-playground/validator/v10"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

var errNoCandidates = errors.New("response contains no candidates")

// ContentGenerator is the subset of the genai models API the connector calls
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// estimationPayload mirrors the response schema. Pointer fields detect absence.
type estimationPayload struct {
	EstimatedPriceUAH *float64 `json:"estimated_price_uah" validate:"required"`
	PriceRangeUAH     *string  `json:"price_range_uah" validate:"required"`
	Justification     *string  `json:"justification" validate:"required"`
}

// Connector estimates property prices through the Gemini API
type Connector struct {
	models      ContentGenerator
	model       string
	temperature float32
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewConnector creates the Gemini client. A missing API key is a
// ConfigurationError so the application refuses to start without it.
func NewConnector(
	ctx context.Context,
	cfg config.EstimatorConfig,
	logger *zap.Logger,
) (*Connector, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &entity.ConfigurationError{Err: entity.ErrMissingCredential}
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: common.NewHTTPClient(cfg.HTTPClientConfig),
	})
	if err != nil {
		return nil, &entity.ConfigurationError{Err: fmt.Errorf("create genai client: %w", err)}
	}

	return NewConnectorWithGenerator(cli.Models, cfg.Model, cfg.Temperature, logger), nil
}

// NewConnectorWithGenerator builds a connector over an existing content generator
func NewConnectorWithGenerator(
	models ContentGenerator,
	model string,
	temperature float32,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		models:      models,
		model:       model,
		temperature: temperature,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

// Estimate issues exactly one generation request and decodes the estimate
func (c *Connector) Estimate(ctx context.Context, details *entity.PropertyDescription) (*entity.EstimationResult, error) {
	ctxzap.Info(ctx, "requesting property estimate",
		zap.String("model", c.model),
		zap.String("type", string(details.Type)),
		zap.String("location", details.Location),
		zap.Float64("area", details.Area),
		zap.Float64("rooms", details.Rooms),
	)

	resp, err := c.models.GenerateContent(ctx, c.model,
		genai.Text(buildPrompt(details)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
			Temperature:      genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		ctxzap.Error(ctx, "estimation service call failed", zap.Error(err))
		return nil, &entity.ServiceError{Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		ctxzap.Error(ctx, "estimation service returned no candidates")
		return nil, &entity.ServiceError{Err: errNoCandidates}
	}

	result, err := c.decode(resp.Text())
	if err != nil {
		ctxzap.Error(ctx, "failed to decode estimation response", zap.Error(err))
		return nil, err
	}

	ctxzap.Info(ctx, "property estimate received",
		zap.Float64("estimated_price_uah", result.EstimatedPriceUAH),
		zap.String("price_range_uah", result.PriceRangeUAH),
	)

	return result, nil
}

func (c *Connector) decode(text string) (*entity.EstimationResult, error) {
	text = strings.TrimSpace(text)

	var payload estimationPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &entity.ResponseParseError{Payload: text, Err: err}
	}

	if err := c.validate.Struct(&payload); err != nil {
		return nil, &entity.ResponseParseError{Payload: text, Err: fmt.Errorf("incomplete payload: %w", err)}
	}

	return &entity.EstimationResult{
		EstimatedPriceUAH: *payload.EstimatedPriceUAH,
		PriceRangeUAH:     *payload.PriceRangeUAH,
		Justification:     *payload.Justification,
	}, nil
}
