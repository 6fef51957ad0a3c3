package main

import (
	"gbkit/internal/appshell"
	"gbkit/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
