package main

import (
	"os"

	"github.com/karimzidan/devatlas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
