package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"corepy/lexer"
	"corepy/parser"

	"github.com/google/subcommands"
)

// astCmd parses a source file and prints its AST, reusing
// parser.PrintASTJSON/WriteASTJSONToFile the way the teacher's own
// AST-dumping subcommand reuses parser.PrintToFile.
type astCmd struct {
	outPath string
}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Parse a source file and print its AST as JSON" }
func (*astCmd) Usage() string {
	return `ast <file.cpy> [-o ast.json]:
  Print the parsed AST as JSON; with -o, also write it to a file.
`
}

func (cmd *astCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.outPath, "o", "", "also write the AST JSON to this file (it is printed to stdout either way)")
}

func (cmd *astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	program, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if cmd.outPath != "" {
		if err := parser.WriteASTJSONToFile(program, cmd.outPath); err != nil {
			fmt.Fprintf(os.Stderr, "📄 failed to write AST: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := parser.PrintASTJSON(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "🤖 failed to render AST: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}
