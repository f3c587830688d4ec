package main

import (
	"os"

	"github.com/jakoblorz/go-gallery/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
