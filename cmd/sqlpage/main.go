package main

import (
	"os"

	"github.com/kasuganosora/sqlpage/cmd/sqlpage/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
