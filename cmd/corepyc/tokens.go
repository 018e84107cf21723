package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"corepy/lexer"

	"github.com/google/subcommands"
)

// tokensCmd dumps the lexed token stream for debugging, one token per
// line, grounded on the teacher's own habit of printing the AST via a
// dedicated diagnostic subcommand rather than folding it into build.
type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Dump the lexed token stream for a source file" }
func (*tokensCmd) Usage() string {
	return `tokens <file.cpy>:
  Print each token's kind, lexeme and source location.
`
}

func (*tokensCmd) SetFlags(f *flag.FlagSet) {}

func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "📄 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	tokens, err := lexer.New(string(data)).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, tok := range tokens {
		fmt.Printf("%-12s %-20q %s\n", tok.Type, tok.Lexeme, tok.Start)
	}

	return subcommands.ExitSuccess
}
