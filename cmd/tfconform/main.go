package main

import (
	"os"

	"github.com/tfconform/tfconform/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
