package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ENVELOPE"

// Loader reads configuration from .env, an optional config.yaml and
// ENVELOPE_* environment variables, in increasing priority.
type Loader struct {
	v *viper.Viper

	mu        sync.Mutex
	listeners []func(Config)
	watching  bool
}

func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// NewFileLoader reads the given config file instead of searching for one.
// An empty path falls back to the search behaviour of NewLoader.
func NewFileLoader(path string) *Loader {
	l := NewLoader()
	if path != "" {
		l.v.SetConfigFile(path)
	}
	return l
}

func LoadWithPath(path string) (Config, error) {
	return NewFileLoader(path).Load()
}

func (l *Loader) Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	if l.v.ConfigFileUsed() == "" {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath("/etc/envelope")
		l.v.AddConfigPath("$HOME/.envelope")
		l.v.AddConfigPath(".")
	}

	l.v.SetEnvPrefix(envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	setDefaults(l.v)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return l.decode()
}

// OnChange registers fn to run with the reloaded config whenever the config
// file changes. Nothing is watched when no file was found.
func (l *Loader) OnChange(fn func(Config)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
	if l.watching {
		return true
	}
	l.watching = true

	l.v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			return
		}
		l.mu.Lock()
		listeners := append([]func(Config){}, l.listeners...)
		l.mu.Unlock()
		for _, listener := range listeners {
			listener(cfg)
		}
	})
	l.v.WatchConfig()
	return true
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "envelope")
	v.SetDefault("environment", "development")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "15s")
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "file:envelope.db?_pragma=busy_timeout(5000)")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.metrics", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("cache.prefix", "envelope:page")

	v.SetDefault("pagination.default_page_size", 20)
	v.SetDefault("pagination.max_page_size", 100)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "http")
	v.SetDefault("tracing.endpoint", "localhost:4318")
	v.SetDefault("tracing.insecure", true)
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
