package main

import (
	"os"

	"github.com/bretcon-dev/bretcon/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
