package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/dshills/critic/internal/providers"
)

// Config represents the critic configuration.
type Config struct {
	Provider  string        `toml:"provider" json:"provider"`
	Model     string        `toml:"model" json:"model"`
	Format    string        `toml:"format" json:"format"`
	MaxTokens int           `toml:"max_tokens" json:"maxTokens"`
	Jobs      int           `toml:"jobs" json:"jobs"`
	LogLevel  string        `toml:"log_level" json:"logLevel"`
	Cache     CacheConfig   `toml:"cache" json:"cache"`
	Privacy   PrivacyConfig `toml:"privacy" json:"privacy"`
}

// CacheConfig controls caching of LLM responses.
type CacheConfig struct {
	Enabled    bool   `toml:"enabled" json:"enabled"`
	Dir        string `toml:"dir,omitempty" json:"dir,omitempty"`
	TTLSeconds int    `toml:"ttl_seconds" json:"ttlSeconds"`
}

// PrivacyConfig controls secret redaction before code leaves the machine.
type PrivacyConfig struct {
	RedactSecrets bool `toml:"redact_secrets" json:"redactSecrets"`
}

// DotEnvFiles are loaded (best effort, never overriding the real environment)
// before environment variables are merged.
var DotEnvFiles = []string{".env"}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:  "gemini",
		// Model stays empty so Load can pick the provider's own default.
		Format:    "text",
		MaxTokens: 8192,
		Jobs:      4,
		LogLevel:  "warn",
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for critic.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "critic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "critic"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "critic"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "critic"), nil
	default:
		return filepath.Join(home, ".config", "critic"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// fileConfig is a decoded config file plus the keys it actually set.
type fileConfig struct {
	cfg  Config
	meta toml.MetaData
}

func (f fileConfig) defined(key ...string) bool {
	return f.meta.IsDefined(key...)
}

// LoadFile loads config from the config file. Returns a zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	f, err := loadFile()
	return f.cfg, err
}

func loadFile() (fileConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return fileConfig{}, err
	}
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return fileConfig{cfg: cfg, meta: meta}, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
// When no layer names a model, the selected provider's default model is used.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	f, err := loadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, f)

	loadDotEnv()
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if cfg.Model == "" {
		cfg.Model = providers.DefaultModel(cfg.Provider)
	}
	return cfg, nil
}

func loadDotEnv() {
	for _, path := range DotEnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set.
		_ = godotenv.Load(path)
	}
}

func mergeFile(dst *Config, f fileConfig) {
	src := f.cfg
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.Jobs > 0 {
		dst.Jobs = src.Jobs
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	if f.defined("cache", "enabled") {
		dst.Cache.Enabled = src.Cache.Enabled
	}
	if f.defined("privacy", "redact_secrets") {
		dst.Privacy.RedactSecrets = src.Privacy.RedactSecrets
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("CRITIC_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("CRITIC_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CRITIC_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("CRITIC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CRITIC_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CRITIC_JOBS must be an integer: %w", err)
		}
		cfg.Jobs = n
	}
	if v := os.Getenv("CRITIC_CACHE_TTL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CRITIC_CACHE_TTL must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "logLevel":
		cfg.LogLevel = value
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "jobs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("jobs must be an integer: %w", err)
		}
		cfg.Jobs = n
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "privacy.redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Keys lists the names accepted by SetField.
func Keys() []string {
	return strings.Fields("provider model format logLevel maxTokens jobs cache.enabled cache.dir cache.ttlSeconds privacy.redactSecrets")
}
