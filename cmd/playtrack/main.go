package main

import (
	"github.com/silverspringsaints/playtracker/internal/cli"
)

func main() {
	cli.Execute()
}
