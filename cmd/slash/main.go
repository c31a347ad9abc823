package main

import (
	"fmt"
	"os"

	"ticket-slash/internal/cli"
	"ticket-slash/internal/config"
)

func main() {
	loader := config.NewLoader()
	if config.GetEnvironment() == config.EnvTesting {
		// Test runs are configured through the environment only.
		loader.WithEnvFile("")
	}

	root := cli.NewRootCommand(loader, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
