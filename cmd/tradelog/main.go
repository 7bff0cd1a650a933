package main

import (
	"os"

	"github.com/rustyeddy/journal/cmd/tradelog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
