package main

import (
	"os"

	"github.com/msto63/mLox/cmd/mlox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
