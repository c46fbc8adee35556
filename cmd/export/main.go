// Package main provides a CLI for exporting the dataset tables to CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	exportcmd "github.com/strideloop/strideloop/internal/cmd/export"
)

func main() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: export [flags] DB")
		fmt.Fprintln(os.Stderr, "Export dataset tables to CSV files.")
		fs.PrintDefaults()
	}

	cfg, err := exportcmd.ParseConfig(fs, os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := exportcmd.Run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
