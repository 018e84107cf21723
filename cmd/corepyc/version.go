package main

import (
	"context"
	"flag"
	"fmt"

	"corepy/internal/buildinfo"

	"github.com/google/subcommands"
)

// versionCmd prints the build stamp set via -ldflags, the mechanism
// buildinfo documents.
type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "Print corepyc's version" }
func (*versionCmd) Usage() string {
	return `version:
  Print corepyc's version, commit and build date.
`
}

func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println(buildinfo.String())
	return subcommands.ExitSuccess
}
