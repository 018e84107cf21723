package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"corepy/lexer"
	"corepy/parser"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"
)

// replCmd is a diagnostic REPL: it lexes, parses and prints the AST
// for each line typed. Every line is lexed and parsed on its own; lines
// are not accumulated into a multi-line block. A compiled-to-WebAssembly function
// has no host to call it from inside a terminal loop, so unlike the
// teacher's cRepl (which actually runs compiled bytecode on its own
// VM) this REPL only ever shows what the front end produced for a
// given input, never executes it.
type replCmd struct {
	dumpAST bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive lex/parse/AST-dump session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session that lexes and parses each input and
  prints its AST. Type "exit" to quit.
`
}

func (cmd *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.dumpAST, "ast", true, "print the parsed AST for each input")
}

func (cmd *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Println("🤖 failed to start readline:", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Println("corepyc diagnostic REPL — lexes and parses input, type 'exit' to quit")

	var buffer strings.Builder
	for {
		if buffer.Len() > 0 {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt(">>> ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Println("💥", err)
			return subcommands.ExitFailure
		}

		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return subcommands.ExitSuccess
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(line)
		source := buffer.String()

		tokens, lexErr := lexer.New(source).Scan()
		if lexErr != nil {
			fmt.Println(lexErr)
			buffer.Reset()
			continue
		}

		program, parseErr := parser.New(tokens).Parse()
		if parseErr != nil {
			fmt.Fprintln(rl.Stderr(), parseErr)
			buffer.Reset()
			continue
		}

		if cmd.dumpAST {
			out, err := parser.PrintASTJSON(program)
			if err != nil {
				fmt.Fprintln(rl.Stderr(), "🤖", err)
			} else {
				fmt.Println(out)
			}
		}

		buffer.Reset()
	}
}
