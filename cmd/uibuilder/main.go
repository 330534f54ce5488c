package main

import (
	"os"

	"github.com/goliatone/go-uibuilder/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
