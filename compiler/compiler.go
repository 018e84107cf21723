// Package compiler wires the lexer, parser, semantic analyzer and
// code generator into the single entry point the rest of this module
// (and its command-line front end) calls to turn source text into a
// WebAssembly binary.
package compiler

import (
	"corepy/codegen"
	"corepy/lexer"
	"corepy/parser"
	"corepy/sema"
)

// Compile runs source through every pipeline stage in order and
// stops at the first one that fails. Unlike the stages themselves,
// Compile never panics: every failure, expected or not, comes back
// as a Diagnostic inside Result and a non-nil error.
func Compile(source string) (Result, error) {
	tokens, err := lexer.New(source).Scan()
	if err != nil {
		d, wrapped := diagnosticForError(err)
		return Result{Diagnostics: []Diagnostic{d}}, wrapped
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		d, wrapped := diagnosticForError(err)
		return Result{Diagnostics: []Diagnostic{d}}, wrapped
	}

	irProgram, warnings, err := sema.New().Analyze(program)
	diags := warningsToDiagnostics(warnings)
	if err != nil {
		d, wrapped := diagnosticForError(err)
		diags = append(diags, d)
		return Result{Diagnostics: diags}, wrapped
	}

	mod, err := codegen.Generate(irProgram)
	if err != nil {
		d, wrapped := diagnosticForError(err)
		diags = append(diags, d)
		return Result{Diagnostics: diags}, wrapped
	}

	return Result{Wasm: mod.Encode(), Diagnostics: diags}, nil
}

func warningsToDiagnostics(warnings []sema.Warning) []Diagnostic {
	diags := make([]Diagnostic, len(warnings))
	for i, w := range warnings {
		loc := w.Loc
		diags[i] = Diagnostic{Kind: KindWarning, Location: &loc, Message: w.Message}
	}
	return diags
}
