package main

import (
	"os"

	"github.com/dmleach/frock/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
