package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from config.yaml (if present) and
// environment variables prefixed with SMD_, applies defaults, and
// validates the result. Environment variables override file values;
// nested keys use underscores (e.g. SMD_SERVER_PORT).
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; env vars and defaults still apply.
	}

	v.SetEnvPrefix("SMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("task.worker_count", 2)
	v.SetDefault("task.queue_size", 100)

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.sqlite_path", "")

	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.model", "all-MiniLM-L6-v2")

	v.SetDefault("summarizer.gemini_api_key", "")
	v.SetDefault("summarizer.model_name", "gemini-2.0-flash")

	v.SetDefault("ocr.base_url", "")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.glyph_fix", true)

	v.SetDefault("callback.timeout_seconds", 10)
}
