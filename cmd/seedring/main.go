package main

import (
	"os"

	"seedring/cmd/seedring/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
