package seed

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strideloop/strideloop/internal/seed/generator"
)

func parse(t *testing.T, args []string, env map[string]string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	return ParseConfig(fs, args, lookup)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t, []string{"data/app.db"}, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Path != "data/app.sqlite" {
		t.Fatalf("expected .sqlite suffix, got %q", cfg.Path)
	}
	if cfg.Force || cfg.InitOnly {
		t.Fatalf("unexpected flags set: %+v", cfg)
	}
	if cfg.Generator.Preset != generator.PresetDemo {
		t.Fatalf("expected demo preset, got %q", cfg.Generator.Preset)
	}
	if cfg.Generator.Seed != 0 {
		t.Fatalf("expected random seed default, got %d", cfg.Generator.Seed)
	}
	if cfg.Generator.HashIterations != generator.DefaultConfig().HashIterations {
		t.Fatalf("unexpected hash iterations %d", cfg.Generator.HashIterations)
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{"-force", "-init-only", "-preset", "stress", "-seed", "42", "-hash-iterations", "5", "-v", "app"}
	cfg, err := parse(t, args, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !cfg.Force || !cfg.InitOnly || !cfg.Generator.Verbose {
		t.Fatalf("boolean flags not applied: %+v", cfg)
	}
	if cfg.Generator.Preset != generator.PresetStress {
		t.Fatalf("expected stress preset, got %q", cfg.Generator.Preset)
	}
	if cfg.Generator.Seed != 42 || cfg.Generator.HashIterations != 5 {
		t.Fatalf("numeric flags not applied: %+v", cfg.Generator)
	}
	if cfg.Path != "app.sqlite" {
		t.Fatalf("expected app.sqlite, got %q", cfg.Path)
	}
}

func TestParseConfigPathFromEnv(t *testing.T) {
	cfg, err := parse(t, nil, map[string]string{"STRIDELOOP_DB_PATH": "env.db"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Path != "env.sqlite" {
		t.Fatalf("expected env path, got %q", cfg.Path)
	}
}

func TestParseConfigMissingPath(t *testing.T) {
	if _, err := parse(t, nil, nil); err == nil {
		t.Fatal("expected error for missing database path")
	}
}

func TestParseConfigUnknownPreset(t *testing.T) {
	_, err := parse(t, []string{"-preset", "galaxy", "app.db"}, nil)
	if err == nil || !strings.Contains(err.Error(), "galaxy") {
		t.Fatalf("expected unknown preset error, got %v", err)
	}
}

func TestRunInitOnlyCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.sqlite")
	cfg := Config{Path: path, InitOnly: true, Generator: generator.DefaultConfig()}

	if err := Run(context.Background(), cfg, nil, io.Discard, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestRunRefusesOverwriteWithoutConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.sqlite")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := Config{Path: path, InitOnly: true, Generator: generator.DefaultConfig()}
	err := Run(context.Background(), cfg, strings.NewReader("n\n"), io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected abort error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "existing" {
		t.Fatalf("existing file was touched: %q %v", data, err)
	}
}

func TestRunOverwritesWhenConfirmed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.sqlite")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := Config{Path: path, InitOnly: true, Generator: generator.DefaultConfig()}
	var prompt strings.Builder
	if err := Run(context.Background(), cfg, strings.NewReader("y\n"), &prompt, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(prompt.String(), "Overwrite") {
		t.Fatalf("expected confirmation prompt, got %q", prompt.String())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat database: %v", err)
	}
	if info.Size() == int64(len("existing")) {
		t.Fatal("expected database to be recreated")
	}
}

func TestRunForceSkipsPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.sqlite")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := Config{Path: path, Force: true, InitOnly: true, Generator: generator.DefaultConfig()}
	if err := Run(context.Background(), cfg, nil, io.Discard, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}
