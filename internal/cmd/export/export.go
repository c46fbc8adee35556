// Package export implements the CSV export command.
package export

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strideloop/strideloop/internal/export"
	"github.com/strideloop/strideloop/internal/storage/sqlite"
)

// Config holds export command configuration.
type Config struct {
	DBPath string
	OutDir string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config. The single positional argument is
// the database path.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	var outDir string
	fs.StringVar(&outDir, "out", ".", "directory to write CSV files into")
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
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("database %q: %w", path, err)
	}

	return Config{DBPath: path, OutDir: outDir}, nil
}

// Run dumps every table of the database to CSV files in the output dir.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := export.WriteCSV(ctx, store, cfg.OutDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d table(s) to %s\n", len(sqlite.ExportTables()), cfg.OutDir)
	return nil
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
