package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // Restores the previous value on cleanup.
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "LIXI_ADDR")
	unsetenv(t, "LIXI_WEB_DIR")
	unsetenv(t, "LIXI_SHUTDOWN_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LIXI_ADDR", "127.0.0.1:9000")
	t.Setenv("LIXI_WEB_DIR", "/srv/lixi/web")
	t.Setenv("LIXI_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Addr: "127.0.0.1:9000", WebDir: "/srv/lixi/web", ShutdownTimeout: 2 * time.Second}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	for name, value := range map[string]string{
		"garbage":  "soon",
		"negative": "-1s",
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("LIXI_SHUTDOWN_TIMEOUT", value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for LIXI_SHUTDOWN_TIMEOUT=%q", value)
			}
		})
	}
}
