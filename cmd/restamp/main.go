package main

import (
	"os"

	"github.com/bianoble/restamp/cmd/restamp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
