// Package seed implements the database initialisation and mock data
// generation command.
package seed

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/strideloop/strideloop/internal/seed/generator"
	"github.com/strideloop/strideloop/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	Path      string
	Force     bool
	InitOnly  bool
	Generator generator.Config
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config. The single positional argument is
// the database path; a .sqlite suffix is enforced.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	genCfg := generator.DefaultConfig()
	genCfg.Preset = generator.Preset(envOrDefault(lookup, "STRIDELOOP_SEED_PRESET", string(genCfg.Preset)))

	var force, initOnly bool
	var preset string
	var seedVal int64
	var iterations int

	fs.BoolVar(&force, "force", false, "overwrite an existing database without confirmation")
	fs.BoolVar(&initOnly, "init-only", false, "initialise the database without generating mock data")
	fs.IntVar(&iterations, "hash-iterations", genCfg.HashIterations, "password hashing iteration count")
	fs.StringVar(&preset, "preset", string(genCfg.Preset), "generation preset (demo, neighbourhood, stress)")
	fs.Int64Var(&seedVal, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&genCfg.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	path := strings.TrimSpace(fs.Arg(0))
	if path == "" {
		path = envOrDefault(lookup, "STRIDELOOP_DB_PATH", "")
	}
	if path == "" {
		return Config{}, fmt.Errorf("database path is required")
	}

	genCfg.Preset = generator.Preset(preset)
	if err := validatePreset(genCfg.Preset); err != nil {
		return Config{}, err
	}
	genCfg.Seed = seedVal
	genCfg.HashIterations = iterations

	return Config{
		Path:      withSQLiteSuffix(path),
		Force:     force,
		InitOnly:  initOnly,
		Generator: genCfg,
	}, nil
}

// Run executes the seed command. An existing database prompts on in for
// confirmation unless the force flag is set.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if _, err := os.Stat(cfg.Path); err == nil {
		if !cfg.Force {
			ok, err := confirmOverwrite(in, out, cfg.Path)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aborted: database %q already exists", cfg.Path)
			}
		}
		if err := os.Remove(cfg.Path); err != nil {
			return fmt.Errorf("remove existing database: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat database path: %w", err)
	}

	store, err := sqlite.Open(cfg.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if cfg.InitOnly {
		return nil
	}

	dist, err := distributionsFromEnv()
	if err != nil {
		return err
	}

	gen := generator.New(cfg.Generator, dist, store, errOut)
	if err := gen.Run(ctx); err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	return nil
}

func confirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	if in == nil {
		return false, nil
	}
	fmt.Fprintf(out, "The database at %q already exists. Overwrite (y/[n])? ", path)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func validatePreset(preset generator.Preset) error {
	for _, p := range generator.ValidPresets() {
		if preset == p {
			return nil
		}
	}
	return fmt.Errorf("unknown preset %q", preset)
}

// withSQLiteSuffix replaces any extension on path with .sqlite.
func withSQLiteSuffix(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".sqlite"
}

func envOrDefault(lookup EnvLookup, key, fallback string) string {
	if lookup == nil {
		return fallback
	}
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
