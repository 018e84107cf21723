package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"corepy/compiler"
	"corepy/config"

	"github.com/google/subcommands"
)

// buildCmd implements the build command: grounded on informatter-nilan's
// emitBytecodeCmd, but targeting a single compiler.Compile call and a
// .wasm output file instead of the teacher's bytecode dump.
type buildCmd struct {
	cfg     *config.Config
	outPath string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "Compile a source file to a WebAssembly module" }
func (*buildCmd) Usage() string {
	return `build <file.cpy> [-o out.wasm]:
  Compile a corepy source file to a WebAssembly binary.
`
}

func (cmd *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.outPath, "o", "", "output path (default: input path with .wasm extension)")
}

func (cmd *buildCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}
	srcPath := args[0]

	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "📄 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := compiler.Compile(string(data))
	for _, d := range result.Diagnostics {
		if d.Kind == compiler.KindWarning && cmd.cfg != nil && !cmd.cfg.Build.EmitWarnings {
			continue
		}
		fmt.Fprintln(os.Stderr, d.String())
	}
	if err != nil {
		return subcommands.ExitFailure
	}

	outPath := cmd.outPath
	if outPath == "" {
		outPath = replaceExt(srcPath, ".wasm")
		if cmd.cfg != nil && cmd.cfg.Build.OutputDir != "" && cmd.cfg.Build.OutputDir != "." {
			outPath = filepath.Join(cmd.cfg.Build.OutputDir, filepath.Base(outPath))
		}
	}
	if err := os.WriteFile(outPath, result.Wasm, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "📄 failed to write output: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func replaceExt(path, newExt string) string {
	if idx := strings.LastIndex(path, "."); idx != -1 {
		return path[:idx] + newExt
	}
	return path + newExt
}
