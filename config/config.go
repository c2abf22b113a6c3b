package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"go-banking-simulator/domain"
	"go-banking-simulator/interest"
)

// ErrInvalidConfig a configuration value could not be used
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	keyInterestRate = "BANK_INTEREST_RATE"
	keyLogLevel     = "BANK_LOG_LEVEL"
	keyLogFormat    = "BANK_LOG_FORMAT"
)

// Config holds the session configuration.
type Config struct {
	// InterestRate annual rate used for interest projections
	InterestRate domain.Rate

	// LogLevel one of debug, info, warn, error or none
	LogLevel string

	// LogFormat logfmt or json
	LogFormat string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		InterestRate: interest.DefaultAnnualRate,
		LogLevel:     "info",
		LogFormat:    "logfmt",
	}
}

// Load reads configuration from the environment, after loading a .env file if one exists.
func Load() (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	def := Default()
	v := viper.New()
	v.SetDefault(keyInterestRate, float64(def.InterestRate))
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyLogFormat, def.LogFormat)
	v.AutomaticEnv()

	rate, err := domain.ParseRate(v.GetString(keyInterestRate))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, keyInterestRate, err)
	}

	cfg := Config{
		InterestRate: rate,
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field holds a usable value.
func (c Config) Validate() error {
	r := float64(c.InterestRate)
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, keyInterestRate, c.InterestRate)
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: %s %q", ErrInvalidConfig, keyLogLevel, c.LogLevel)
	}
	if c.LogFormat != "logfmt" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s %q", ErrInvalidConfig, keyLogFormat, c.LogFormat)
	}
	return nil
}

var levels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"none":  level.AllowNone(),
}

// NewLogger builds the root logger writing to w, filtered at the configured level.
func (c Config) NewLogger(w io.Writer) (log.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sw := log.NewSyncWriter(w)
	var logger log.Logger
	if c.LogFormat == "json" {
		logger = log.NewJSONLogger(sw)
	} else {
		logger = log.NewLogfmtLogger(sw)
	}
	logger = level.NewFilter(logger, levels[c.LogLevel], level.SquelchNoLevel(true))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
