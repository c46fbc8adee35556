// Package main provides a CLI for initialising the database and filling it
// with generated users, rooms, activities and buddy graphs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/strideloop/strideloop/internal/cmd/seed"
)

func main() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: seed [flags] PATH")
		fmt.Fprintln(os.Stderr, "Initialise a SQLite database and generate mock data.")
		fs.PrintDefaults()
	}

	cfg, err := seedcmd.ParseConfig(fs, os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
