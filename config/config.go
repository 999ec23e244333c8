package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"FutureYako/internal/pkg"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Deduction DeductionConfig
	Money     MoneyConfig
}

type AppConfig struct {
	Name        string `validate:"required"`
	Environment string `validate:"oneof=development staging production test"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error fatal disabled"`
	Pretty bool
}

// DeductionConfig seeds the settings provider and is what a demo reset
// restores.
type DeductionConfig struct {
	Type           string          `validate:"oneof=percentage fixed"`
	Amount         decimal.Decimal `validate:"gte=0"`
	Enabled        bool
	DurationMonths int `validate:"gte=6"`
}

type MoneyConfig struct {
	Currency         string          `validate:"required,len=3"`
	InvestmentTicket decimal.Decimal `validate:"gt=0"`
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        envString("APP_NAME", "Future Yako"),
			Environment: envString("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(envString("LOG_LEVEL", "info")),
			Pretty: envBool("LOG_PRETTY", false),
		},
		Deduction: DeductionConfig{
			Type:           strings.ToLower(envString("DEDUCTION_TYPE", "percentage")),
			Amount:         envDecimal("DEDUCTION_AMOUNT", decimal.NewFromInt(10)),
			Enabled:        envBool("DEDUCTION_ENABLED", true),
			DurationMonths: envInt("DEDUCTION_DURATION_MONTHS", 6),
		},
		Money: MoneyConfig{
			Currency:         strings.ToUpper(envString("CURRENCY", "TZS")),
			InvestmentTicket: envDecimal("INVESTMENT_TICKET", decimal.NewFromInt(50000)),
		},
	}

	if err := pkg.Validator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func envString(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Bool("default", def).Msg("invalid bool in environment, using default")
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid int in environment, using default")
		return def
	}
	return i
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Str("default", def.String()).Msg("invalid decimal in environment, using default")
		return def
	}
	return d
}
