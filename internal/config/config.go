// Package config parses the scoreboard server configuration.
//
// Every setting can come from a flag or an environment variable. Flags win
// over the environment; the environment wins over defaults.
//
//	--port, -p      PORT        listen port (default 8080)
//	--db, -d        DB_PATH     result archive database (default ./data/scoreboard.db)
//	--seed, -s      SEED_FILE   YAML seed file (default: built-in fixtures)
//	--no-seed       NO_SEED     start with an empty board
//	--log-level     LOG_LEVEL   debug, info, warn, error (default info)
//	--log-format    LOG_FORMAT  text or json (default text)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config holds the server settings.
type Config struct {
	Port      int
	DBPath    string
	SeedFile  string
	NoSeed    bool
	LogLevel  string
	LogFormat string
}

const (
	defaultPort   = 8080
	defaultDBPath = "./data/scoreboard.db"
)

// ErrInvalidConfig reports a setting that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Parse reads flags from args and falls back to environment variables.
func Parse(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("scoreboard", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DBPath, "db", "d", "", "Result archive database path")
	fs.StringVarP(&cfg.SeedFile, "seed", "s", "", "YAML seed file (built-in fixtures when empty)")
	fs.BoolVar(&cfg.NoSeed, "no-seed", false, "Start with no active matches")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, fmt.Errorf("%w: PORT %q is not a number", ErrInvalidConfig, portStr)
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	}

	cfg.DBPath = firstNonEmpty(cfg.DBPath, os.Getenv("DB_PATH"), defaultDBPath)
	cfg.SeedFile = firstNonEmpty(cfg.SeedFile, os.Getenv("SEED_FILE"))

	if !fs.Changed("no-seed") {
		if v := os.Getenv("NO_SEED"); v != "" {
			noSeed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("%w: NO_SEED %q is not a boolean", ErrInvalidConfig, v)
			}
			cfg.NoSeed = noSeed
		}
	}
	if cfg.NoSeed && cfg.SeedFile != "" {
		return Config{}, fmt.Errorf("%w: --no-seed and a seed file are mutually exclusive", ErrInvalidConfig)
	}

	cfg.LogLevel = strings.ToLower(firstNonEmpty(cfg.LogLevel, os.Getenv("LOG_LEVEL"), "info"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(firstNonEmpty(cfg.LogFormat, os.Getenv("LOG_FORMAT"), "text"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
