package builder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/futig/property-estimator/internal/config"
	"github.com/futig/property-estimator/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddr:   ":0",
		WriteTimeout: time.Minute,
		EstimatorCfg: config.EstimatorConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.2,
		},
		SessionCfg: config.SessionConfig{
			TTL:             time.Hour,
			CleanupInterval: time.Minute,
		},
		LogLevel:    "debug",
		Environment: "test",
	}
}

func TestBuildWithConfig_MissingCredential(t *testing.T) {
	cfg := testConfig()

	app, err := BuildWithConfig(context.Background(), cfg, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Nil(t, app)

	var cfgErr *entity.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, entity.ErrMissingCredential)
}

func TestBuildWithConfig_Mocks(t *testing.T) {
	cfg := testConfig()
	cfg.EnableMocks = true

	app, err := BuildWithConfig(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, ":0", app.server.Addr)
	assert.Equal(t, time.Minute, app.server.WriteTimeout)
}

func TestBuildWithConfig_Gemini(t *testing.T) {
	cfg := testConfig()
	cfg.EstimatorCfg.APIKey = "test-key"

	app, err := BuildWithConfig(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, app.server.Handler)
}
