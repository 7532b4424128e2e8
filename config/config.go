package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrNoLLMProviders is reported by LLMConfig.Validate when nothing is enabled.
var ErrNoLLMProviders = errors.New("no enabled LLM providers")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Storage   StorageConfig
	Schedule  ScheduleConfig
	Stream    StreamConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Path string // SQLite file, ":memory:" for a throwaway store
}

type ScheduleConfig struct {
	BreakInterval time.Duration
	BreakDuration time.Duration
}

type StreamConfig struct {
	Interval time.Duration
}

type RateLimitConfig struct {
	PerMin int // Requests per client IP on LLM-backed routes, 0 disables
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Bounds the whole fallback chain
	RequestTimeout  time.Duration // Bounds one assistant call
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Planner
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Schedule.BreakInterval = v.GetDuration("schedule.break_interval")
	cfg.Schedule.BreakDuration = v.GetDuration("schedule.break_duration")
	cfg.Stream.Interval = v.GetDuration("stream.interval")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.RequestTimeout = v.GetDuration("llm.request_timeout")

	if providersList, ok := v.Get("llm.providers").([]any); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]any)
			if !ok {
				continue
			}
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
				BaseURL:  getStringFromMap(providerMap, "base_url"),
				Model:    getStringFromMap(providerMap, "model"),
				Timeout:  getDurationFromMap(providerMap, "timeout"),
			})
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.path", "planner.db")
	v.SetDefault("schedule.break_interval", "90m")
	v.SetDefault("schedule.break_duration", "15m")
	v.SetDefault("stream.interval", "30s")
	v.SetDefault("rate_limit.per_min", 30)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "45s")
	v.SetDefault("llm.request_timeout", "30s")
}

// Validate reports configuration mistakes in the provider list.
// ErrNoLLMProviders means the service runs on deterministic fallbacks only.
func (cfg LLMConfig) Validate() error {
	enabledCount := 0
	priorities := make(map[int]string)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if other, dup := priorities[provider.Priority]; dup {
			return fmt.Errorf("provider %s: duplicate priority %d (also %s)", provider.Name, provider.Priority, other)
		}
		priorities[provider.Priority] = provider.Name

		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: API key is required", provider.Name)
		}
	}

	if enabledCount == 0 {
		return ErrNoLLMProviders
	}
	return nil
}

// expandEnvVar expands values in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func getStringFromMap(m map[string]any, key string) string {
	if str, ok := m[key].(string); ok {
		return str
	}
	return ""
}

func getBoolFromMap(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getIntFromMap(m map[string]any, key string) int {
	switch val := m[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}

func getDurationFromMap(m map[string]any, key string) time.Duration {
	switch val := m[key].(type) {
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0
		}
		return d
	case int:
		return time.Duration(val) * time.Second
	}
	return 0
}
