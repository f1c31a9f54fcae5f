package main

import (
	"os"

	"github.com/bnema/near-pool-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
