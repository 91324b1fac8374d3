package main

import (
	"log"
	"os"

	"github.com/staybook/staybook/internal/app"
	"github.com/staybook/staybook/internal/logger"
)

func main() {
	l, err := logger.New()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	l.Sync()

	os.Exit(exitCode)
}
