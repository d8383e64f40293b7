// Package config loads the pagetable settings from flags, environment
// (PAGETABLE_*) and defaults through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/internal/logging"
)

const EnvPrefix = "PAGETABLE"

// Source kinds.
const (
	SourceStatic   = "static"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
	SourceMySQL    = "mysql"
)

// Keys shared by viper, flags and environment variables.
const (
	KeySource       = "source"
	KeyURL          = "url"
	KeyDSN          = "dsn"
	KeyTable        = "table"
	KeyPerPage      = "per-page"
	KeySort         = "sort"
	KeySeed         = "seed"
	KeyFetchTimeout = "fetch-timeout"
	KeyAddr         = "addr"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
	KeyLogFile      = "log-file"
)

type Config struct {
	Source       string
	URL          string
	DSN          string
	Table        string
	ItemsPerPage int
	Sort         []string
	Seed         int
	FetchTimeout time.Duration
	Addr         string
	Log          logging.Config
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySource, SourceStatic)
	v.SetDefault(KeyPerPage, pagetable.DefaultItemsPerPage)
	v.SetDefault(KeySeed, 95)
	v.SetDefault(KeyFetchTimeout, 30*time.Second)
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatConsole)

	return v
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Source:       strings.ToLower(strings.TrimSpace(v.GetString(KeySource))),
		URL:          v.GetString(KeyURL),
		DSN:          v.GetString(KeyDSN),
		Table:        v.GetString(KeyTable),
		ItemsPerPage: pagetable.NormalizeItemsPerPage(v.GetInt(KeyPerPage)),
		Sort:         splitSort(v.GetString(KeySort)),
		Seed:         v.GetInt(KeySeed),
		FetchTimeout: v.GetDuration(KeyFetchTimeout),
		Addr:         v.GetString(KeyAddr),
		Log: logging.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Source {
	case SourceStatic:
		if c.Seed < 0 {
			return fmt.Errorf("%s must be >= 0", KeySeed)
		}
	case SourceHTTP:
		if c.URL == "" {
			return fmt.Errorf("%s is required for source '%s'", KeyURL, c.Source)
		}
	case SourcePostgres, SourceMySQL:
		if c.DSN == "" {
			return fmt.Errorf("%s is required for source '%s'", KeyDSN, c.Source)
		}
	default:
		return fmt.Errorf("unknown source '%s'", c.Source)
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyFetchTimeout)
	}

	return nil
}

// IsSQL reports whether records come from a database.
func (c Config) IsSQL() bool {
	return c.Source == SourcePostgres || c.Source == SourceMySQL
}

// splitSort splits "id desc, name asc" into ["id desc", "name asc"].
func splitSort(raw string) []string {
	var ret []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ret = append(ret, part)
		}
	}

	return ret
}
