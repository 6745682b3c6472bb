// main is the entry point for the equisight CLI.
package main

import (
	"github.com/sawamura/equisight/cmd"
	"github.com/sawamura/equisight/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("equisight exited", err)
	}
}
