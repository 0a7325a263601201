package main

import (
	"fmt"
	"os"

	"project-tracker/internal/api"
	"project-tracker/internal/cli"
	"project-tracker/internal/config"
	"project-tracker/internal/logging"
	"project-tracker/internal/storage"
)

func main() {
	// Load configuration: defaults, then environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Debugf("using data directory %s", cfg.Storage.DataDir)

	// Open the data directory and load any saved snapshot
	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	apiInstance, err := api.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading saved data: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
