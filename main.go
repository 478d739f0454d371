package main

import (
	"os"

	"github.com/edforge/qconvert/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
