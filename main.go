package main

import (
	"os"

	"github.com/steezy/steezy/cmd"
	"github.com/steezy/steezy/internal/config"
)

func main() {
	config.LoadDotenv()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
