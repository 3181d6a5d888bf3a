// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"strings"

	stdio "io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/mipsi/emulator"
	"github.com/ezrec/mipsi/io"
	"github.com/ezrec/mipsi/translate"
)

const PROMPT = "mipsi> "

var ErrDefineSyntax = translate.Error("define must be NAME=VALUE")

type options struct {
	verbose     bool
	defines     []string
	lang        string
	diagnostics emulator.Diagnostics
}

// terminal joins stdin and stdout for the line editor.
type terminal struct {
	stdio.Reader
	stdio.Writer
}

func newCommand(stdin stdio.Reader, stdout, stderr stdio.Writer) (cmd *cobra.Command) {
	var opt options

	cmd = &cobra.Command{
		Use:   "mipsi [flags] [file...]",
		Short: "Interpreter for MIPS assembly source",
		Long: `Mipsi tokenizes MIPS assembly source and executes it directly.

With files, all files are loaded as one program, linked and run. The
first error is reported and the exit status is 1.

Without files, an interactive session starts. Each line is executed as it
is entered, and a failed line leaves the machine state untouched. Type
'help' for the session commands.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(opt.lang) != 0 {
				translate.Use(opt.lang)
			}

			flags := cmd.Flags()
			env := emulator.DiagnosticsFromEnv()
			if !flags.Changed("trace") {
				opt.diagnostics.Trace = env.Trace
			}
			if !flags.Changed("dump-data") {
				opt.diagnostics.DumpData = env.DumpData
			}
			if !flags.Changed("dump-stack") {
				opt.diagnostics.DumpStack = env.DumpStack
			}
			if !flags.Changed("dump-regs") {
				opt.diagnostics.DumpRegs = env.DumpRegs
			}

			if len(args) != 0 {
				return batch(&opt, args, stdin, stdout)
			}
			return session(&opt, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "verbose assembler and engine logging")
	flags.StringArrayVarP(&opt.defines, "define", "D", nil, "predefine an equate, as NAME=VALUE")
	flags.StringVar(&opt.lang, "lang", "", "language tag for messages, such as en-US")
	flags.BoolVar(&opt.diagnostics.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opt.diagnostics.DumpData, "dump-data", false, "dump the data segments after every instruction")
	flags.BoolVar(&opt.diagnostics.DumpStack, "dump-stack", false, "dump the stack after every instruction")
	flags.BoolVar(&opt.diagnostics.DumpRegs, "dump-regs", false, "dump the registers after every instruction")

	return
}

func newEmulator(opt *options, console *io.Console) (emu *emulator.Emulator, err error) {
	emu = emulator.NewEmulator(console)
	emu.Verbose = opt.verbose
	emu.SetDiagnostics(opt.diagnostics)

	for _, define := range opt.defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok || len(name) == 0 {
			err = fmt.Errorf("%v: %w", define, ErrDefineSyntax)
			return
		}
		emu.Predefine(name, value)
	}

	return
}

func batch(opt *options, paths []string, stdin stdio.Reader, stdout stdio.Writer) (err error) {
	emu, err := newEmulator(opt, io.NewConsole(stdin, stdout))
	if err != nil {
		return
	}

	for _, path := range paths {
		err = emu.LoadFile(path)
		if err != nil {
			return
		}
	}

	return emu.Run()
}

func session(opt *options, stdin stdio.Reader, stdout, stderr stdio.Writer) (err error) {
	inf, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(inf.Fd())) {
		var emu *emulator.Emulator
		emu, err = newEmulator(opt, io.NewConsole(stdin, stdout))
		if err != nil {
			return
		}
		emu.Errors = stderr
		return emu.Repl("")
	}

	fd := int(inf.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	editor := term.NewTerminal(terminal{Reader: stdin, Writer: stdout}, PROMPT)
	emu, err := newEmulator(opt, &io.Console{Input: editor, Output: editor})
	if err != nil {
		return
	}

	return emu.Repl(PROMPT)
}

func main() {
	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
