package main

import (
	"os"

	"github.com/wonny/quadratic/cmd/quadratic/commands"
)

// main is the entry point for the quadratic CLI
// ⭐ go run ./cmd/quadratic 1 -3 2
func main() {
	os.Exit(commands.ExitCode(commands.Execute()))
}
