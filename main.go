package main

import (
	"context"
	"os"

	"github.com/bnema/beacon/internal/adapters/in/cli"
	"github.com/bnema/beacon/pkg/version"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func main() {
	version.Set(buildVersion, buildCommit, buildDate)

	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
