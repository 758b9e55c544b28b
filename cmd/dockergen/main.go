package main

import (
	"os"

	"github.com/bbq191/dockergen/cmd/dockergen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
