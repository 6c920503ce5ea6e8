package main

import (
	"os"

	"classic-cipher-backend/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
