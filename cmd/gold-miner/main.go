// Package main is the entry point of the gold-miner terminal game
package main

import (
	"os"

	"github.com/lixenwraith/gold-miner/cmd/gold-miner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
