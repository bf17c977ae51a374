package main

import (
	"embed"

	"github.com/hance08/fakturoid-mcp/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

var version = "dev"

func main() {
	cmd.Execute(migrationsFS, version)
}
