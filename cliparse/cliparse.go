package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Store types, mirrored from store to keep this package dependency-free.
var storeTypes = map[string]bool{"file": true, "sqlite": true, "postgres": true, "redis": true}

type Config struct {
	Port        int
	DataDir     string
	StoreType   string
	DatabaseURL string
	RedisURL    string
	StaticDir   string
	Debug       bool
}

type ClientConfig struct {
	APIURL   string
	CacheDir string
	List     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("game-wheel", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataDir, "data", "", "Directory for JSON documents (file store)")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (file, sqlite, postgres or redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres)")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL")
	fs.StringVar(&cfg.StaticDir, "static", "", "Front-end directory")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	cfg.DataDir = firstNonEmpty(cfg.DataDir, os.Getenv("DATA_DIR"), "./data")
	cfg.StoreType = firstNonEmpty(cfg.StoreType, os.Getenv("STORE_TYPE"), "file")
	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	cfg.RedisURL = firstNonEmpty(cfg.RedisURL, os.Getenv("REDIS_URL"))
	cfg.StaticDir = firstNonEmpty(cfg.StaticDir, os.Getenv("STATIC_DIR"), "./public")

	if !cfg.Debug {
		if v := os.Getenv("DEBUG"); v != "" {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	if !storeTypes[cfg.StoreType] {
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
	if (cfg.StoreType == "sqlite" || cfg.StoreType == "postgres") && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.StoreType == "redis" && cfg.RedisURL == "" {
		return Config{}, errors.New("redis URL required (use -redis or REDIS_URL env)")
	}

	return cfg, nil
}

// ParseClientFlags parses the wheel CLI's global flags and returns the
// remaining arguments (the subcommand and its operands).
func ParseClientFlags(args []string) (ClientConfig, []string, error) {
	var cfg ClientConfig

	fs := flag.NewFlagSet("wheel", flag.ContinueOnError)
	fs.StringVar(&cfg.APIURL, "api", "", "API base URL")
	fs.StringVar(&cfg.CacheDir, "cache", "", "Local fallback cache directory")
	fs.StringVar(&cfg.List, "list", "main", "Active list")

	if err := fs.Parse(args); err != nil {
		return ClientConfig{}, nil, err
	}

	cfg.APIURL = firstNonEmpty(cfg.APIURL, os.Getenv("WHEEL_API_URL"), "http://localhost:3000")
	cfg.CacheDir = firstNonEmpty(cfg.CacheDir, os.Getenv("WHEEL_CACHE_DIR"))
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return ClientConfig{}, nil, fmt.Errorf("no cache dir (use -cache or WHEEL_CACHE_DIR env): %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "game-wheel")
	}
	if cfg.List == "" {
		return ClientConfig{}, nil, errors.New("list name required")
	}

	return cfg, fs.Args(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
