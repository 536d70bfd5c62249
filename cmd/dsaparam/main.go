package main

import (
	"os"

	"dsaparam/cmd/dsaparam/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
