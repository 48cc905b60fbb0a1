package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "QUIZ"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env  string `mapstructure:"env" validate:"oneof=local dev production"` // current application environment (local, dev, production)
	Seed int64  `mapstructure:"seed"`                                      // random seed, 0 seeds from the clock
	Log  Log    `mapstructure:"log"`                                       // logging configuration section
}

// Log contains logging-related configuration parameters.
type Log struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"` // minimum level written to stderr
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Env:  "local",
		Seed: 0,
		Log:  Log{Level: "error"},
	}
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Populate the environment from .env if present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	d := Default()
	v.SetDefault("env", d.Env)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log.level", d.Log.Level)

	// Configure environment variable handling and key mapping.
	// Only QUIZ_* variables are read: QUIZ_ENV, QUIZ_SEED, QUIZ_LOG_LEVEL.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
