package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment overrides, checked after the config file
const (
	EnvDeepSeekAPIKey = "AICHAT_DEEPSEEK_API_KEY"
	EnvDeepSeekURL    = "AICHAT_DEEPSEEK_URL"
	EnvSupabaseURL    = "AICHAT_SUPABASE_URL"
	EnvSupabaseKey    = "AICHAT_SUPABASE_KEY"
)

// Defaults applied when neither the config file nor the environment says otherwise
const (
	DefaultDeepSeekURL   = "https://api.deepseek.com/v1/chat/completions"
	DefaultDeepSeekModel = "deepseek-chat"
	DefaultTemperature   = 0.7
	DefaultMaxTokens     = 2000
	DefaultChatCost      = 2
	DefaultGalleryCost   = 50
	DefaultDiamonds      = 30
)

// Config is the YAML config file at <data-dir>/config.yaml
type Config struct {
	DeepSeek struct {
		APIKey      string  `yaml:"api_key"`
		URL         string  `yaml:"url"`
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"deepseek"`
	Supabase struct {
		URL     string `yaml:"url"`
		AnonKey string `yaml:"anon_key"`
	} `yaml:"supabase"`
	Diamonds struct {
		ChatCost    int `yaml:"chat_cost"`
		GalleryCost int `yaml:"gallery_cost"`
		Default     int `yaml:"default"`
	} `yaml:"diamonds"`
}

// LoadConfig reads the config file (if present), applies environment
// overrides, then fills in defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv(EnvDeepSeekAPIKey); v != "" {
		cfg.DeepSeek.APIKey = v
	}
	if v := os.Getenv(EnvDeepSeekURL); v != "" {
		cfg.DeepSeek.URL = v
	}
	if v := os.Getenv(EnvSupabaseURL); v != "" {
		cfg.Supabase.URL = v
	}
	if v := os.Getenv(EnvSupabaseKey); v != "" {
		cfg.Supabase.AnonKey = v
	}

	if cfg.DeepSeek.URL == "" {
		cfg.DeepSeek.URL = DefaultDeepSeekURL
	}
	if cfg.DeepSeek.Model == "" {
		cfg.DeepSeek.Model = DefaultDeepSeekModel
	}
	if cfg.DeepSeek.Temperature == 0 {
		cfg.DeepSeek.Temperature = DefaultTemperature
	}
	if cfg.DeepSeek.MaxTokens == 0 {
		cfg.DeepSeek.MaxTokens = DefaultMaxTokens
	}
	if cfg.Diamonds.ChatCost == 0 {
		cfg.Diamonds.ChatCost = DefaultChatCost
	}
	if cfg.Diamonds.GalleryCost == 0 {
		cfg.Diamonds.GalleryCost = DefaultGalleryCost
	}
	if cfg.Diamonds.Default == 0 {
		cfg.Diamonds.Default = DefaultDiamonds
	}

	return cfg, nil
}

// SaveConfig writes the config back to disk
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
