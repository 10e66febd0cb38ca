package main

import (
	"os"

	"festa/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
