package main

import (
	"os"

	"github.com/Kavantix/tuimodal/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
