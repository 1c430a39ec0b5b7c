package main

import (
	"os"

	"github.com/rustyeddy/fxrisk/cmd/fxrisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
