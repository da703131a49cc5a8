package estimator

import (
	"context"
	"fmt"
	"math"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// mockPricePerSquareMeter is the flat UAH rate the mock applies
const mockPricePerSquareMeter = 30000

// MockConnector - мок-реалізація оцінювача без звернення до зовнішнього сервісу
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Estimate returns a deterministic estimate derived from area
func (m *MockConnector) Estimate(ctx context.Context, details *entity.PropertyDescription) (*entity.EstimationResult, error) {
	ctxzap.Info(ctx, "[MOCK] estimating property price",
		zap.String("location", details.Location),
		zap.Float64("area", details.Area),
	)

	price := math.Round(details.Area * mockPricePerSquareMeter)
	low := math.Round(price * 0.95)
	high := math.Round(price * 1.05)

	result := &entity.EstimationResult{
		EstimatedPriceUAH: price,
		PriceRangeUAH:     fmt.Sprintf("%.0f - %.0f", low, high),
		Justification: fmt.Sprintf(
			"Тестова оцінка (MOCK): %s м² за середньою ціною %d грн/м² для локації %s.",
			formatNumber(details.Area), mockPricePerSquareMeter, details.Location,
		),
	}

	ctxzap.Info(ctx, "[MOCK] estimate generated", zap.Float64("estimated_price_uah", price))
	return result, nil
}
