package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}

type Services struct {
	Diarization   Service `mapstructure:"diarization"`
	Transcription Service `mapstructure:"transcription"`
	LanguageID    Service `mapstructure:"language_id"`
}

type Paths struct {
	Outputs string `mapstructure:"outputs"`
}

type Classifier struct {
	// Lexicon optionally points at a YAML file overriding the built-in
	// role marker sets.
	Lexicon string `mapstructure:"lexicon"`
}

type Root struct {
	Pipeline struct {
		Name   string `mapstructure:"name"`
		LogLvl string `mapstructure:"log_level"`
	} `mapstructure:"pipeline"`
	Services   Services   `mapstructure:"services"`
	Paths      Paths      `mapstructure:"paths"`
	Classifier Classifier `mapstructure:"classifier"`
}

// Load reads config_<env>.yaml (CONFIG_ENV, default "dev") from the working
// directory or ./config, with ENCOUNTER_* environment variable overrides.
func Load() (*Root, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}

	v := viper.New()
	v.SetConfigName("config_" + env)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join("config", env))
	v.SetEnvPrefix("ENCOUNTER")
	v.AutomaticEnv()

	v.SetDefault("pipeline.name", "encounter-pipeline")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("paths.outputs", "outputs")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every collaborator the pipeline depends on is
// configured. Runs fail here, before any audio is touched.
func (r *Root) Validate() error {
	if r.Services.Diarization.URL == "" {
		return fmt.Errorf("config: services.diarization.url is required")
	}
	if r.Services.Transcription.URL == "" {
		return fmt.Errorf("config: services.transcription.url is required")
	}
	if r.Services.LanguageID.URL == "" {
		return fmt.Errorf("config: services.language_id.url is required")
	}
	if r.Paths.Outputs == "" {
		return fmt.Errorf("config: paths.outputs is required")
	}
	return nil
}
