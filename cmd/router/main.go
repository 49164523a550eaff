// ABOUTME: router binary: serve, mcp, route, tags, and version subcommands
// ABOUTME: Build stamps arrive through -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
package main

import (
	"fmt"
	"os"

	"github.com/harper/tag-router/cmd/router/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "router: %v\n", err)
		os.Exit(1)
	}
}
