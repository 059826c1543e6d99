package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

var keys = []string{
	"SAMEGAME_WIDTH", "SAMEGAME_HEIGHT", "SAMEGAME_COLORS",
	"SAMEGAME_BONUS", "SAMEGAME_SEED", "LOG_LEVEL",
}

// clearEnv registers every key with t.Setenv so values loaded from .env
// files are restored when the test ends, then unsets them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width != 20 || c.Height != 10 || c.Colors != 4 || c.Bonus != 1000 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Seed != 0 || c.LogLevel != zerolog.InfoLevel {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_FromEnvAndClamp(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAMEGAME_WIDTH", "500")
	t.Setenv("SAMEGAME_HEIGHT", "1")
	t.Setenv("SAMEGAME_COLORS", "3")
	t.Setenv("SAMEGAME_SEED", "99")
	t.Setenv("LOG_LEVEL", "debug")
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width != 60 || c.Height != 2 || c.Colors != 3 || c.Seed != 99 {
		t.Fatalf("got %+v", c)
	}
	if c.LogLevel != zerolog.DebugLevel {
		t.Fatalf("log level=%v, want debug", c.LogLevel)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SAMEGAME_WIDTH=12\nSAMEGAME_HEIGHT=6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SAMEGAME_HEIGHT", "8")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width != 12 {
		t.Fatalf("width=%d, want 12 from file", c.Width)
	}
	if c.Height != 8 {
		t.Fatalf("height=%d, want 8: environment wins over the file", c.Height)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"SAMEGAME_WIDTH", "wide"},
		{"SAMEGAME_SEED", "1.5"},
		{"LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("%s=%q should fail", tt.key, tt.val)
			}
		})
	}
}

func TestOptions_ZeroBonusDisablesIt(t *testing.T) {
	c := Config{Width: 4, Height: 3, Colors: 2, Bonus: 0, Seed: 5}
	o := c.Options()
	if o.Bonus >= 0 {
		t.Fatalf("Bonus=%d, want negative so the engine pays nothing", o.Bonus)
	}
	if o.Width != 4 || o.Height != 3 || o.Colors != 2 || o.Seed != 5 {
		t.Fatalf("got %+v", o)
	}
}
