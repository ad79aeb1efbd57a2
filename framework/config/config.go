package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/km-arc/go-options/framework/options"
	"github.com/km-arc/go-options/framework/resolver"
)

// Config is the central typed configuration struct.
// Embed or extend it in your app's own AppConfig.
type Config struct {
	App AppConfig
	Log LogConfig

	// Options holds every key of APP_CONFIG_FILE (with env overrides applied),
	// including tables the framework itself does not read.
	Options map[string]any
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  int
	Key   string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// envKeys are the variables Load reads, in declaration order.
var envKeys = []string{
	"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_URL", "APP_PORT", "APP_KEY", "LOG_LEVEL",
}

var envDefaults = map[string]any{
	"APP_NAME":  "GoLaravel",
	"APP_ENV":   "local",
	"APP_DEBUG": true,
	"APP_URL":   "http://localhost",
	"APP_PORT":  8000,
	"APP_KEY":   "",
	"LOG_LEVEL": "info",
}

// Load reads .env (if present), then APP_CONFIG_FILE (if set), and resolves
// the result into a Config. Environment variables win over file values.
//
//	cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	env := make(map[string]any)
	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}

	raw, fileOpts := env, map[string]any{}
	if path := os.Getenv("APP_CONFIG_FILE"); path != "" {
		merged, err := LoadOptionsFile(path, env)
		if err != nil {
			return nil, err
		}
		raw, fileOpts = merged, merged
	}

	values, err := newResolver().Resolve(raw, true)
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}

	return &Config{
		App: AppConfig{
			Name:  values["APP_NAME"].(string),
			Env:   values["APP_ENV"].(string),
			Debug: values["APP_DEBUG"].(bool),
			URL:   values["APP_URL"].(string),
			Port:  values["APP_PORT"].(int),
			Key:   values["APP_KEY"].(string),
		},
		Log: LogConfig{
			Level: values["LOG_LEVEL"].(string),
		},
		Options: fileOpts,
	}, nil
}

// newResolver declares every framework variable with its default, type and
// accepted values. Env strings are cast before the schema sees them.
func newResolver() *resolver.Resolver {
	s := options.New()
	for _, name := range envKeys {
		_ = s.SetDefault(name, envDefaults[name])
	}
	_ = s.SetAllowedTypes("APP_NAME", options.TypeString)
	_ = s.SetAllowedTypes("APP_URL", options.TypeString)
	_ = s.SetAllowedTypes("APP_KEY", options.TypeString)
	_ = s.SetAllowedTypes("APP_DEBUG", options.TypeBool)
	_ = s.SetAllowedTypes("APP_PORT", options.TypeInt)
	_ = s.SetAllowedValues("APP_PORT", func(v any) bool {
		port, _ := v.(int)
		return port > 0 && port <= 65535
	})
	_ = s.SetAllowedValues("APP_ENV", "local", "production", "testing")
	_ = s.SetAllowedValues("LOG_LEVEL", "debug", "info", "warn", "error")

	return resolver.New(s).
		MustSetCast("APP_DEBUG", resolver.Bool).
		MustSetCast("APP_PORT", resolver.Int).
		MustSetCast("APP_ENV", strings.ToLower).
		MustSetCast("LOG_LEVEL", strings.ToLower)
}

// LoadOptionsFile reads a TOML file into an option map and applies overrides
// on top, key by key. Dotted override keys address nested tables.
//
//	opts, err := config.LoadOptionsFile("search.toml", map[string]any{"per_page": 50})
func LoadOptionsFile(path string, overrides map[string]any) (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "reading options file %s", path)
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, "applying option overrides")
		}
	}
	return k.Raw(), nil
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
// Accepts the same words as the bool cast: 1/true/on/yes and 0/false/off/no.
func GetBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	if b, ok := resolver.TypeCast(resolver.Bool).Apply(v).(bool); ok {
		return b
	}
	return defaultVal
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
