package config_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/km-arc/go-options/framework/config"
	"github.com/km-arc/go-options/framework/resolver"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_URL", "APP_PORT", "APP_KEY",
		"LOG_LEVEL", "APP_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func mustLoad(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("testdata/empty.env")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return cfg
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := mustLoad(t)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"App.Name", cfg.App.Name, "GoLaravel"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Debug", cfg.App.Debug, true},
		{"App.URL", cfg.App.URL, "http://localhost"},
		{"App.Port", cfg.App.Port, 8000},
		{"App.Key", cfg.App.Key, ""},
		{"Log.Level", cfg.Log.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#v, want %#v", tt.got, tt.want)
			}
		})
	}

	if len(cfg.Options) != 0 {
		t.Errorf("Options: expected empty without APP_CONFIG_FILE, got %v", cfg.Options)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	setEnv(t, "APP_NAME", "MyApp")
	setEnv(t, "APP_ENV", "Production")
	setEnv(t, "APP_PORT", " 9000 ")
	setEnv(t, "LOG_LEVEL", "WARN")

	cfg := mustLoad(t)

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != 9000 {
		t.Errorf("App.Port: got %d want %d", cfg.App.Port, 9000)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_AppDebug(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"on", true},
		{"1", true},
		{"false", false},
		{"off", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			clearEnv(t)
			setEnv(t, "APP_DEBUG", tt.val)
			if got := mustLoad(t).App.Debug; got != tt.want {
				t.Errorf("App.Debug: got %v want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, val string
		contains string
	}{
		{"APP_DEBUG", "maybe", `"APP_DEBUG"`},
		{"APP_PORT", "eighty", `"APP_PORT"`},
		{"APP_PORT", "70000", `"APP_PORT"`},
		{"APP_ENV", "staging", `Accepted values are: "local", "production", "testing"`},
		{"LOG_LEVEL", "trace", `"LOG_LEVEL"`},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			setEnv(t, tt.key, tt.val)

			_, err := config.Load("testdata/empty.env")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, resolver.ErrResolution) {
				t.Errorf("expected ErrResolution, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

// ── APP_CONFIG_FILE ──────────────────────────────────────────────────────────

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	setEnv(t, "APP_CONFIG_FILE", "testdata/app.toml")

	cfg := mustLoad(t)

	if cfg.App.Name != "Search" {
		t.Errorf("App.Name: got %q want Search", cfg.App.Name)
	}
	if cfg.App.Port != 9100 {
		t.Errorf("App.Port: got %d want 9100", cfg.App.Port)
	}
	if cfg.App.Debug {
		t.Error("App.Debug: expected false from file")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want debug", cfg.Log.Level)
	}

	search, ok := cfg.Options["search"].(map[string]any)
	if !ok {
		t.Fatalf("Options[search]: got %T", cfg.Options["search"])
	}
	if search["exact"] != true {
		t.Errorf("search.exact: got %v", search["exact"])
	}
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	setEnv(t, "APP_CONFIG_FILE", "testdata/app.toml")
	setEnv(t, "APP_PORT", "9200")

	if got := mustLoad(t).App.Port; got != 9200 {
		t.Errorf("App.Port: got %d want 9200", got)
	}
}

func TestLoad_ConfigFileErrors(t *testing.T) {
	for _, path := range []string{"testdata/missing.toml", "testdata/invalid.toml", "testdata/bad_env.toml"} {
		t.Run(path, func(t *testing.T) {
			clearEnv(t)
			setEnv(t, "APP_CONFIG_FILE", path)
			if _, err := config.Load("testdata/empty.env"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// ── LoadOptionsFile ──────────────────────────────────────────────────────────

func TestLoadOptionsFile(t *testing.T) {
	opts, err := config.LoadOptionsFile("testdata/app.toml", map[string]any{
		"APP_NAME":        "Override",
		"search.per_page": 50,
	})
	if err != nil {
		t.Fatalf("LoadOptionsFile error: %v", err)
	}

	if opts["APP_NAME"] != "Override" {
		t.Errorf("APP_NAME: got %v want Override", opts["APP_NAME"])
	}
	if opts["LOG_LEVEL"] != "DEBUG" {
		t.Errorf("LOG_LEVEL: got %v want DEBUG (file values are not cast)", opts["LOG_LEVEL"])
	}
	search := opts["search"].(map[string]any)
	if search["per_page"] != 50 {
		t.Errorf("search.per_page: got %#v want 50", search["per_page"])
	}
	if search["exact"] != true {
		t.Errorf("search.exact: got %#v want true", search["exact"])
	}
}

func TestLoadOptionsFile_Missing(t *testing.T) {
	_, err := config.LoadOptionsFile("testdata/missing.toml", nil)
	if err == nil || !strings.Contains(err.Error(), "testdata/missing.toml") {
		t.Errorf("expected error naming the file, got %v", err)
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	setEnv(t, "CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt_ReturnsInt(t *testing.T) {
	setEnv(t, "SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("got %d want %d", got, 42)
	}
}

func TestGetInt_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool_True(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE", "yes", "on"} {
		setEnv(t, "BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
}

func TestGetBool_False(t *testing.T) {
	for _, val := range []string{"false", "0", "off", "no"} {
		setEnv(t, "BOOL_KEY", val)
		if config.GetBool("BOOL_KEY", true) {
			t.Errorf("expected false for %q", val)
		}
	}
}

func TestGetBool_ReturnsFallbackOnInvalid(t *testing.T) {
	setEnv(t, "BOOL_KEY", "notabool")
	if config.GetBool("BOOL_KEY", true) != true {
		t.Error("expected fallback true")
	}
}
