package main

import (
	"os"

	"github.com/joho/godotenv"
	"teinei.dev/flip/logger"
)

func main() {
	_ = godotenv.Load()
	logger.SetupLogging()
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
