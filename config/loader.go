package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "WRC"

// Load reads configuration from the given YAML file (or config.yml in the
// working directory when path is empty), then applies .env and environment
// overrides. Environment variables always win. A missing file is fine; the
// defaults are a working configuration for the public API.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := defaults()
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml"}
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if path == "" && os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Output: OutputConfig{
			EntriesDir: "./entries",
			EventsDir:  "./events",
		},
	}
}

// applyEnv overrides file values from WRC_-prefixed environment variables,
// e.g. WRC_RESULTS_URL or WRC_TIMEOUT_MS.
func applyEnv(cfg *AppConfig) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if s := v.GetString("SEASON_URL"); s != "" {
		cfg.API.SeasonURL = s
	}
	if s := v.GetString("RESULTS_URL"); s != "" {
		cfg.API.ResultsURL = s
	}
	if s := v.GetString("USER_AGENT"); s != "" {
		cfg.API.UserAgent = s
	}
	if ms := v.GetInt("TIMEOUT_MS"); ms > 0 {
		cfg.API.TimeoutMS = ms
	}
	if v.IsSet("DEBUG") {
		cfg.Debug = v.GetBool("DEBUG")
	}
	if s := v.GetString("ENTRIES_DIR"); s != "" {
		cfg.Output.EntriesDir = s
	}
	if s := v.GetString("EVENTS_DIR"); s != "" {
		cfg.Output.EventsDir = s
	}
}
