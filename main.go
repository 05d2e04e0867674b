package main

import (
	"embed"

	"github.com/somchaipk/schoolfin/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
