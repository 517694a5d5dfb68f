package main

import (
	"os"

	"github.com/hamedhamzeh/annotex/cmd/annotex/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
