package main

import (
	"os"

	"github.com/wonny/robosector/cmd/robosector/commands"
)

// main is the entry point for the robosector CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/robosector [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
