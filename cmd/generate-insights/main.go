package main

import (
	"os"

	"github.com/vfg2006/ads-advisor/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.OpGenerateInsights, cli.NewGenerateInsightsCommand, os.Args[1:], os.Stdout, os.Stderr))
}
