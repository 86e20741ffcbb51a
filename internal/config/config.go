package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DatabaseConfig holds the optional audit-trail database settings. An empty
// URL disables history persistence entirely; the chat API still works.
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	AlertChannel string `yaml:"alert_channel"`
}

// LLMConfig configures the external generation call.
type LLMConfig struct {
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
}

// Load reads a config from the specified path. If the file does not exist,
// defaults are returned. Environment variables PORT and DATABASE_URL
// override the file in either case.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{AlertChannel: "emergency_alerts"},
		LLM:      LLMConfig{TimeoutSecs: 30},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.AlertChannel == "" {
		cfg.Database.AlertChannel = "emergency_alerts"
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = 30
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if model := os.Getenv("OPENAI_MODEL_CHAT"); model != "" {
		cfg.LLM.Model = model
	}
}
