package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/signalsfoundry/llh2ecef/internal/cli"
	"github.com/signalsfoundry/llh2ecef/internal/logging"
)

func main() {
	// Diagnostics go to stderr; stdout carries only the result lines.
	log := logging.New(logging.Config{Level: "warn", Writer: os.Stderr})

	app := &cli.App{
		Program: filepath.Base(os.Args[0]),
		Stdout:  os.Stdout,
		Logger:  log,
	}
	os.Exit(cli.Execute(context.Background(), app, os.Args[1:]))
}
