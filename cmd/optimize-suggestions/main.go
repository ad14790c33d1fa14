package main

import (
	"os"

	"github.com/vfg2006/ads-advisor/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.OpGenerateSuggestions, cli.NewOptimizeSuggestionsCommand, os.Args[1:], os.Stdout, os.Stderr))
}
