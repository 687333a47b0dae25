package main

import (
	"os"

	"github.com/katalvlaran/metaphysics/cmd/metaphysics/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
