// Package export dumps the dataset tables to CSV files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strideloop/strideloop/internal/storage/sqlite"
)

// dumper is the subset of the sqlite store used for exporting.
type dumper interface {
	DumpTable(ctx context.Context, table string) ([]string, [][]string, error)
}

// WriteCSV dumps every exportable table to <dir>/<table>.csv, creating dir
// if needed. Each file starts with a header row.
func WriteCSV(ctx context.Context, store dumper, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, table := range sqlite.ExportTables() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeTable(ctx, store, dir, table); err != nil {
			return fmt.Errorf("export %s: %w", table, err)
		}
	}
	return nil
}

func writeTable(ctx context.Context, store dumper, dir, table string) error {
	header, records, err := store.DumpTable(ctx, table)
	if err != nil {
		return err
	}

	fd, err := os.Create(filepath.Join(dir, table+".csv"))
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer fd.Close()

	writer := csv.NewWriter(fd)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return fd.Close()
}
