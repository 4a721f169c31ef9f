package main

import (
	"os"

	"github.com/jsvensson/swatch/internal/lsp"
	"github.com/spf13/pflag"
)

var version = "dev"

func main() {
	verbosity := pflag.Int("verbosity", 1, "log verbosity")
	logFile := pflag.String("log", "", "log file (default stderr)")
	pflag.Parse()

	var logPath *string
	if *logFile != "" {
		logPath = logFile
	}

	s := lsp.NewServer(version)
	if err := s.Run(*verbosity, logPath); err != nil {
		os.Exit(1)
	}
}
