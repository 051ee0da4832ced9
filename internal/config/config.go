// Package config loads the service configuration from an optional YAML file,
// LEITNER_ environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/conorfennell/leitner/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "LEITNER_"

type Config struct {
	Env      string         `koanf:"env" validate:"oneof=development production"`
	Log      LogConfig      `koanf:"log"`
	HTTP     HTTPConfig     `koanf:"http"`
	DB       DBConfig       `koanf:"db"`
	Auth     AuthConfig     `koanf:"auth"`
	CORS     CORSConfig     `koanf:"cors"`
	Schedule ScheduleConfig `koanf:"schedule"`
	Import   ImportConfig   `koanf:"import"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

type HTTPConfig struct {
	Addr    string        `koanf:"addr" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

type DBConfig struct {
	Driver  string `koanf:"driver" validate:"oneof=sqlite postgres"`
	DSN     string `koanf:"dsn" validate:"required"`
	MaxOpen int    `koanf:"maxopen" validate:"min=1"`
}

type AuthConfig struct {
	Secret string        `koanf:"secret" validate:"required,min=16"`
	TTL    time.Duration `koanf:"ttl" validate:"min=1m"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins" validate:"dive,url"`
}

type ScheduleConfig struct {
	Timezone string `koanf:"timezone" validate:"required"`

	// Location is resolved from Timezone by Load.
	Location *time.Location `koanf:"-"`
}

type ImportConfig struct {
	ReposDir string `koanf:"reposdir" validate:"required"`
}

// NewFlagSet returns a flag set carrying a flag with its default for every
// configuration key, plus --config for the YAML file path. Callers may add
// their own flags before parsing.
func NewFlagSet(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", "", "path to a YAML configuration file")
	f.String("env", "development", "environment: development or production")
	f.String("log.level", "info", "log level: debug, info, warn or error")
	f.String("http.addr", ":8080", "HTTP listen address")
	f.Duration("http.timeout", 15*time.Second, "per-request timeout")
	f.String("db.driver", "sqlite", "database driver: sqlite or postgres")
	f.String("db.dsn", "leitner.db", "database DSN or sqlite file path")
	f.Int("db.maxopen", 1, "maximum open database connections")
	f.String("auth.secret", "", "HS256 secret for bearer tokens (at least 16 bytes)")
	f.Duration("auth.ttl", 7*24*time.Hour, "lifetime of issued tokens")
	f.StringSlice("cors.origins", nil, "allowed CORS origins")
	f.String("schedule.timezone", "UTC", "IANA time zone whose midnight starts a day")
	f.String("import.reposdir", "repos", "directory git decks are cloned into")
	return f
}

// Load builds the configuration from a parsed flag set created with NewFlagSet.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path, _ := f.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Flags left at their default only fill keys no other source set.
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule.timezone %q: %w", cfg.Schedule.Timezone, err)
	}
	cfg.Schedule.Location = loc
	return &cfg, nil
}

// envValue maps LEITNER_HTTP_ADDR to http.addr. List values are comma separated.
func envValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	if key == "cors.origins" {
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return key, origins
	}
	return key, value
}
