// Package config loads service settings from defaults, an optional YAML file
// and the environment, in that order. The OpenAI API key is not a setting:
// users supply it with each submission.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int      `yaml:"port"`
		AllowOrigins []string `yaml:"allowOrigins"`
		AccessCode   string   `yaml:"accessCode"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "console" or "json"
	} `yaml:"log"`

	OpenAI struct {
		Endpoint string        `yaml:"endpoint"`
		Model    string        `yaml:"model"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"openai"`

	RateLimit struct {
		PerMinute int `yaml:"perMinute"`
		Burst     int `yaml:"burst"`
	} `yaml:"rateLimit"`

	JWT struct {
		Secret string        `yaml:"secret"`
		Expiry time.Duration `yaml:"expiry"`
	} `yaml:"jwt"`

	Admin struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"passwordHash"`
	} `yaml:"admin"`

	Audit struct {
		DBPath string `yaml:"dbPath"`
	} `yaml:"audit"`

	Narration struct {
		Enabled         bool   `yaml:"enabled"`
		Voice           string `yaml:"voice"`
		CredentialsFile string `yaml:"credentialsFile"`
	} `yaml:"narration"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.AllowOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	cfg.OpenAI.Endpoint = "https://api.openai.com/v1/chat/completions"
	cfg.OpenAI.Model = "gpt-4"
	cfg.OpenAI.Timeout = 60 * time.Second
	cfg.RateLimit.PerMinute = 10
	cfg.RateLimit.Burst = 3
	cfg.JWT.Expiry = 24 * time.Hour
	cfg.Audit.DBPath = "./risk_assessments.db"
	cfg.Narration.Voice = "en-US-Wavenet-F"
	return cfg
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment (including a .env file, if present) are used.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = splitList(v)
	}
	setString(&c.Server.AccessCode, "ACCESS_CODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.OpenAI.Endpoint, "OPENAI_ENDPOINT")
	setString(&c.OpenAI.Model, "OPENAI_MODEL")
	if err := setDuration(&c.OpenAI.Timeout, "LLM_TIMEOUT"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.PerMinute, "RATE_LIMIT_PER_MINUTE"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.Burst, "RATE_LIMIT_BURST"); err != nil {
		return err
	}
	setString(&c.JWT.Secret, "JWT_SECRET_KEY")
	if err := setDuration(&c.JWT.Expiry, "JWT_EXPIRY"); err != nil {
		return err
	}
	setString(&c.Admin.Username, "ADMIN_USERNAME")
	setString(&c.Admin.PasswordHash, "ADMIN_PASSWORD_HASH")
	// an explicitly empty AUDIT_DB_PATH turns the audit log off
	if v, ok := os.LookupEnv("AUDIT_DB_PATH"); ok {
		c.Audit.DBPath = strings.TrimSpace(v)
	}
	if v := os.Getenv("NARRATION_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid NARRATION_ENABLED %q: %w", v, err)
		}
		c.Narration.Enabled = enabled
	}
	setString(&c.Narration.Voice, "NARRATION_VOICE")
	setString(&c.Narration.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("openai timeout must be positive, got %s", c.OpenAI.Timeout)
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// AdminEnabled reports whether operator login is configured.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Username != "" && c.Admin.PasswordHash != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
