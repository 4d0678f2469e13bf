package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/tg-restricted-relay/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// IdentityOrder controls which retrieval identity is attempted first
// ENUM(full_access_first,service_first)
type IdentityOrder string

type Config struct {
	TelegramBotToken string        `koanf:"telegram_bot_token"`
	TelegramAPIURL   string        `koanf:"telegram_api_url"`
	FullAccessToken  string        `koanf:"full_access_token"`
	FullAccessAPIURL string        `koanf:"full_access_api_url"`
	RelayChatID      int64         `koanf:"relay_chat_id"`
	IdentityOrder    IdentityOrder `koanf:"identity_order"`
	FetchTimeout     int           `koanf:"fetch_timeout"`
	RetryBackoffMS   int           `koanf:"retry_backoff_ms"`
	CacheSize        int           `koanf:"cache_size"`
	CacheTTL         int           `koanf:"cache_ttl"`
	StoragePath      string        `koanf:"storage_path"`
	HTTPPort         string        `koanf:"http_port"`
	AllowedUsers     []int64       `koanf:"allowed_users"`
	AppEnv           AppEnv        `koanf:"app_env"`
}

// FetchTimeoutDuration is the per-attempt deadline for a single identity fetch.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// RetryBackoff is the pause before the single transient-error retry.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

// CacheTTLDuration is how long resolved content stays cached.
func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Minute
}

// HasFullAccess reports whether the privileged identity is configured.
func (c *Config) HasFullAccess() bool {
	return c.FullAccessToken != ""
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	// Convert TELEGRAM_BOT_TOKEN -> telegram_bot_token
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("identity_order") {
		k.Set("identity_order", "full_access_first")
	}
	if !k.Exists("fetch_timeout") {
		k.Set("fetch_timeout", 30)
	}
	if !k.Exists("retry_backoff_ms") {
		k.Set("retry_backoff_ms", 500)
	}
	if !k.Exists("cache_size") {
		k.Set("cache_size", 256)
	}
	if !k.Exists("cache_ttl") {
		k.Set("cache_ttl", 60)
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AllowedUsers from comma-separated string if it's a string
	// koanf might return it as a string from env vars or as a slice from config files
	if allowedUsers := k.Get("allowed_users"); allowedUsers != nil {
		switch v := allowedUsers.(type) {
		case string:
			cfg.AllowedUsers = ParseAllowedUsers(v)
		case []interface{}:
			cfg.AllowedUsers = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				default:
					return 0, false
				}
			})
		}
	}

	// Normalize enum fields, falling back to defaults on junk values
	if order, err := ParseIdentityOrder(string(cfg.IdentityOrder)); err == nil {
		cfg.IdentityOrder = order
	} else {
		cfg.IdentityOrder = IdentityOrderFullAccessFirst
	}
	if appEnv, err := ParseAppEnv(string(cfg.AppEnv)); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	// A full-access gateway usually runs a self-hosted Bot API server; when no
	// separate URL is given the main API URL is used for it as well
	if cfg.FullAccessAPIURL == "" {
		cfg.FullAccessAPIURL = cfg.TelegramAPIURL
	}

	// Validate required fields
	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.RelayChatID == 0 {
		return nil, errors.ErrMissingRelayChat
	}

	return &cfg, nil
}

// ParseAllowedUsers parses comma-separated user IDs string into []int64
func ParseAllowedUsers(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}
