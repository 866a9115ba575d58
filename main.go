package main

import (
	"os"

	"bootcamp-landing/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
