package main

import (
	"os"

	"github.com/SSebia/adsite-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
