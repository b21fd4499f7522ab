package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
)

// EnvPrefix is prepended to every key when read from the environment
const EnvPrefix = "LIFEOS"

var (
	ErrNoAPIURL     = errors.New("api_url must not be empty")
	ErrNoDomains    = errors.New("domains must not be empty")
	ErrInvalidToday = errors.New("today must be a YYYY-MM-DD date")
	ErrBadTimeout   = errors.New("timeout must be positive")
)

// Config holds the client settings
type Config struct {
	APIURL  string        `mapstructure:"api_url" json:"api_url" yaml:"api_url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
	Domains []string      `mapstructure:"domains" json:"domains" yaml:"domains"`
	DataDir string        `mapstructure:"data_dir" json:"data_dir" yaml:"data_dir"`
	LogFile string        `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	// Today pins the reference date. Empty means the system clock.
	Today string `mapstructure:"today" json:"today,omitempty" yaml:"today,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		APIURL:  "http://localhost:8080/api",
		Timeout: 15 * time.Second,
		Domains: append([]string(nil), models.DefaultDomains...),
	}
}

// Load builds the configuration from defaults, the config file, the given
// .env files and the environment, in increasing order of precedence.
// An empty configFile selects DefaultPath and tolerates its absence.
func Load(configFile string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	def := Default()
	v.SetDefault("api_url", def.APIURL)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("domains", def.Domains)
	v.SetDefault("data_dir", "")
	v.SetDefault("log_file", "")
	v.SetDefault("today", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else if path := DefaultPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Domains = cleanDomains(cfg.Domains)
	return cfg, nil
}

// DefaultPath returns the config file location under the XDG config directory
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "lifeos", "config.yaml")
}

// Validate checks the settings that would otherwise fail later and less clearly
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrNoAPIURL
	}
	if c.Timeout <= 0 {
		return ErrBadTimeout
	}
	if len(c.Domains) == 0 {
		return ErrNoDomains
	}
	if c.Today != "" {
		if _, err := time.Parse(query.DateLayout, c.Today); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidToday, c.Today)
		}
	}
	return nil
}

// Now returns the reference time the queries are evaluated against
func (c *Config) Now() time.Time {
	if c.Today != "" {
		if d, err := time.ParseInLocation(query.DateLayout, c.Today, time.Local); err == nil {
			return d
		}
	}
	return time.Now()
}

// cleanDomains trims entries and drops blanks and duplicates, keeping order
func cleanDomains(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, d := range in {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
