package logger_test

import (
	"bytes"
	"testing"

	"FutureYako/config"
	"FutureYako/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitAppliesLevelAndFields(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config.Config{
		App: config.AppConfig{Name: "Future Yako", Environment: "test"},
		Log: config.LogConfig{Level: "warn"},
	}
	logger.Init(cfg)

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("goal", "School fees").Msg("visible")
	assert.Contains(t, buf.String(), `"goal":"School fees"`)
	assert.Contains(t, buf.String(), `"app":"Future Yako"`)
	assert.Contains(t, buf.String(), `"env":"test"`)
}
