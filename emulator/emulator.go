// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	stdio "io"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/io"
)

// STDIN_NAME is the file name of interactively submitted lines.
const STDIN_NAME = "<stdin>"

// Environment variables enabling the diagnostics.
const (
	ENV_TRACE      = "MIPSI_TRACE"
	ENV_DUMP_DATA  = "MIPSI_DUMP_DATA"
	ENV_DUMP_STACK = "MIPSI_DUMP_STACK"
	ENV_DUMP_REGS  = "MIPSI_DUMP_REGS"
)

// Diagnostics selects the per-instruction observers.
type Diagnostics struct {
	Trace     bool // Log every executed instruction.
	DumpData  bool // Dump the data segments after every instruction.
	DumpStack bool // Dump the stack after every instruction.
	DumpRegs  bool // Dump the registers after every instruction.
}

func enabled(name string) bool {
	value := os.Getenv(name)
	return value != "" && value != "0" && !strings.EqualFold(value, "false")
}

// DiagnosticsFromEnv reads the diagnostics toggles from the environment.
func DiagnosticsFromEnv() Diagnostics {
	return Diagnostics{
		Trace:     enabled(ENV_TRACE),
		DumpData:  enabled(ENV_DUMP_DATA),
		DumpStack: enabled(ENV_DUMP_STACK),
		DumpRegs:  enabled(ENV_DUMP_REGS),
	}
}

// Emulator state. Assembler + CPU + console.
type Emulator struct {
	Verbose   bool           // If set, enables verbose logging.
	*cpu.Cpu                 // Reference to the CPU simulation.
	Assembler *cpu.Assembler // Tokenizer appending to the CPU program.

	Console *io.Console  // Program and session console.
	Errors  stdio.Writer // Session error output, defaults to the console.

	diagnostics Diagnostics
	lineno      int // Interactive line counter.
}

// NewEmulator creates a new emulator on a console, with diagnostics
// taken from the environment.
func NewEmulator(console *io.Console) (emu *Emulator) {
	if console == nil {
		console = &io.Console{}
	}

	prog := cpu.NewProgram()
	emu = &Emulator{
		Cpu:       cpu.NewCpu(prog, console),
		Assembler: cpu.NewAssembler(prog),
		Console:   console,
	}

	emu.SetDiagnostics(DiagnosticsFromEnv())

	return
}

// Diagnostics returns the installed diagnostics.
func (emu *Emulator) Diagnostics() Diagnostics {
	return emu.diagnostics
}

// SetDiagnostics replaces the diagnostic observers.
func (emu *Emulator) SetDiagnostics(diag Diagnostics) {
	emu.diagnostics = diag

	var observers []cpu.Observer
	if diag.Trace {
		observers = append(observers, &Trace{})
	}
	if diag.DumpData {
		observers = append(observers, &Dump{Output: emu.Console, What: DUMP_DATA})
	}
	if diag.DumpStack {
		observers = append(observers, &Dump{Output: emu.Console, What: DUMP_STACK})
	}
	if diag.DumpRegs {
		observers = append(observers, &Dump{Output: emu.Console, What: DUMP_REGS})
	}

	emu.Cpu.Observers = observers
}

// Predefine an equate for the assembler.
func (emu *Emulator) Predefine(equ string, value string) {
	emu.Assembler.Predefine(equ, value)
}

// Reset the emulator state: registers, memory, token stream and equates.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Assembler.Reset()
	emu.lineno = 0
}

func (emu *Emulator) verbose() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Assembler.Verbose = emu.Verbose
}

// Load tokenizes a source, appending it to the program.
func (emu *Emulator) Load(name string, input stdio.Reader) (err error) {
	emu.verbose()
	return emu.Assembler.Parse(name, input)
}

// LoadFile tokenizes a source file, appending it to the program.
func (emu *Emulator) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrLoad{Path: path, Err: err}
		return
	}
	defer inf.Close()

	return emu.Load(path, inf)
}

// Run links the loaded program, and executes it.
func (emu *Emulator) Run() (err error) {
	emu.verbose()

	err = emu.Cpu.Link()
	if err != nil {
		return
	}

	return emu.Cpu.Run()
}

// stdin returns the file index of interactive lines.
func (emu *Emulator) stdin() int {
	prog := emu.Program
	if file := slices.Index(prog.Files, STDIN_NAME); file >= 0 {
		return file
	}
	return prog.AddFile(STDIN_NAME)
}

// Submit tokenizes, links and executes one interactive line. On failure the
// token stream, registers and memory are restored to their state before the
// line was submitted.
func (emu *Emulator) Submit(line string) (err error) {
	emu.verbose()

	prog := emu.Program
	mark := prog.Mark()
	register := emu.Cpu.Register
	memory := emu.Cpu.Memory.Clone()
	ticks := emu.Cpu.Ticks

	defer func() {
		if err != nil {
			prog.Restore(mark)
			emu.Cpu.Register = register
			emu.Cpu.Memory = memory
			emu.Cpu.Ticks = ticks
		}
	}()

	emu.lineno++
	err = emu.Assembler.ParseLine(line, emu.lineno, emu.stdin())
	if err != nil {
		return
	}

	err = emu.Cpu.Link()
	if err != nil {
		return
	}

	err = emu.Cpu.Run()
	return
}

// prompter is implemented by line editors that draw their own prompt.
type prompter interface {
	SetPrompt(prompt string)
}

// Repl reads lines from the console until end of input or an exit command.
// Each line is either a session command, or submitted as assembly. Errors
// are reported, and the session continues.
func (emu *Emulator) Repl(prompt string) (err error) {
	editor, _ := emu.Console.Input.(prompter)

	for {
		if editor != nil {
			editor.SetPrompt(prompt)
		} else if len(prompt) != 0 {
			if _, err = emu.Console.WriteString(prompt); err != nil {
				return
			}
		}

		var line string
		line, err = emu.Console.ReadLine()
		if errors.Is(err, stdio.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if editor != nil {
			// Program reads are not prompted.
			editor.SetPrompt("")
		}

		handled, cerr := emu.Command(line)
		if errors.Is(cerr, ErrExit) {
			return
		}
		if !handled {
			cerr = emu.Submit(line)
		}
		if cerr != nil {
			emu.report(cerr)
		}
	}
}

func (emu *Emulator) report(err error) {
	out := emu.Errors
	if out == nil {
		out = emu.Console
	}
	fmt.Fprintln(out, err)
}
