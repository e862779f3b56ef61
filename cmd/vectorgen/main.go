package main

import (
	"os"

	"vectorgen/cmd/vectorgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
