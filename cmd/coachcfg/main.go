package main

import (
	"os"

	"github.com/stridelab/coachcfg/internal/cli"
	"github.com/stridelab/coachcfg/internal/logging"
)

// main is the entry point for the coachcfg CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
