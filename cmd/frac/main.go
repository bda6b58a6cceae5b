package main

import (
	"os"

	"github.com/aatomu/frac/cmd/frac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
