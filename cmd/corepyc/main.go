// Command corepyc is the command-line front end for the corepy
// compiler: it never touches compiler.Compile's internals, only calls
// the one exported entry point and renders what comes back.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"corepy/config"

	"github.com/google/subcommands"
	"github.com/hashicorp/logutils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "💥 failed to load config:", err)
		cfg = config.DefaultConfig()
	}

	verbosity := flag.String("v", cfg.Logging.Level, "log verbosity: warn, info, debug, trace")
	flag.Parse()

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"TRACE", "DEBUG", "INFO", "WARN"},
		MinLevel: logutils.LogLevel(levelToFilter(*verbosity)),
		Writer:   os.Stderr,
	}
	log.SetOutput(filter)
	log.SetFlags(0)

	commander := subcommands.NewCommander(flag.CommandLine, "corepyc")
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	commander.Register(&buildCmd{cfg: cfg}, "")
	commander.Register(&tokensCmd{}, "")
	commander.Register(&astCmd{}, "")
	commander.Register(&replCmd{}, "")
	commander.Register(&versionCmd{}, "")

	os.Exit(int(commander.Execute(context.Background())))
}

// levelToFilter upper-cases a -v value into one of logutils' levels,
// defaulting to WARN for anything unrecognized.
func levelToFilter(v string) string {
	switch v {
	case "trace":
		return "TRACE"
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	default:
		return "WARN"
	}
}
