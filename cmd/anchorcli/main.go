package main

import (
	"os"

	"github.com/paw-chain/anchor/cmd/anchorcli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
