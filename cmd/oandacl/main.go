package main

import (
	"os"

	"github.com/rustyeddy/oandacl/cmd/oandacl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
