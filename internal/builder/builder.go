package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/property-estimator/internal/api"
	sessionapi "github.com/futig/property-estimator/internal/api/session"
	"github.com/futig/property-estimator/internal/config"
	"github.com/futig/property-estimator/internal/entity"
	"github.com/futig/property-estimator/internal/integration/estimator"
	"github.com/futig/property-estimator/internal/pkg/formatter"
	"github.com/futig/property-estimator/internal/pkg/logger"
	"github.com/futig/property-estimator/internal/pkg/validator"
	"github.com/futig/property-estimator/internal/usecase/estimation"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	return BuildWithConfig(context.Background(), cfg, log)
}

// BuildWithConfig wires the application from an already loaded configuration.
// A missing estimation service credential fails here, before the server starts.
func BuildWithConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connector (with mock support)
	var estimatorConnector estimation.Estimator
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the estimation service")
		estimatorConnector = estimator.NewMockConnector(logger)
	} else {
		logger.Info("Using Gemini connector for the estimation service",
			zap.String("model", cfg.EstimatorCfg.Model),
		)
		conn, err := estimator.NewConnector(ctx, cfg.EstimatorCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup estimation connector: %w", err)
		}
		estimatorConnector = conn
	}

	// Initialize validators
	propertyValidator := validator.NewPropertyValidator()

	// Initialize use cases
	estimationUC := estimation.NewUsecase(
		estimatorConnector,
		propertyValidator,
		cfg.SessionCfg.TTL,
		cfg.SessionCfg.CleanupInterval,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	reports := formatter.NewFactory(cfg.ReportFontPath)
	if _, err := reports.Create(entity.FormatPDF); err != nil {
		logger.Warn("PDF reports disabled", zap.String("font_path", cfg.ReportFontPath), zap.Error(err))
	}
	sessionHandler := sessionapi.NewHandler(estimationUC, reports)

	// Setup router
	router := api.SetupRouter(sessionHandler, logger, cfg.CORSAllowedOrigins)
	logger.Info("HTTP router configured")

	// WriteTimeout stays above the time an estimate may take
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
