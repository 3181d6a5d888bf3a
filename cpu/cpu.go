// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"

	"github.com/ezrec/mipsi/io"
)

// Observer is called after each executed instruction, with the stream
// index of the instruction token.
type Observer interface {
	Observe(cpu *Cpu, index int)
}

// Cpu is the execution context for a Program.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program  *Program     // Token stream, and the program counter.
	Register RegisterFile // Register bank.
	Memory   Memory       // Static data, dynamic data and stack segments.
	Console  *io.Console  // Console for the system calls and print extensions.

	Observers []Observer // Observers of executed instructions.

	Ticks int // Instructions executed since a reset.
}

// NewCpu creates a new CPU, executing prog against console.
func NewCpu(prog *Program, console *io.Console) (cpu *Cpu) {
	if prog == nil {
		prog = NewProgram()
	}
	if console == nil {
		console = &io.Console{}
	}

	cpu = &Cpu{
		Program: prog,
		Console: console,
	}
	cpu.Register.Reset()

	return
}

// Reset the CPU state.
// - Zeros every register, including hi and lo.
// - Clears all memory segments.
// - Clears the token stream, and rewinds the cursor.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Program.Reset()
	cpu.Ticks = 0
}

// Location returns the source file name and line number of a token.
func (cpu *Cpu) Location(tok *Token) (file string, lineno int) {
	return cpu.Program.FileName(tok.File), tok.LineNo
}

// Step advances the cursor and executes the token group found there.
// done is set at the end of the stream, or when the program halts.
func (cpu *Cpu) Step() (done bool, err error) {
	prog := cpu.Program

	if !prog.Advance() {
		done = true
		return
	}

	tok := *prog.Current()
	defer func() {
		if err != nil {
			file, lineno := cpu.Location(&tok)
			err = &ErrLocation{File: file, LineNo: lineno, Err: err}
		}
	}()

	switch tok.Kind {
	case TOKEN_EOL, TOKEN_LABEL:
		// pass
	case TOKEN_DIRECTIVE:
		if tok.Directive == DIR_DATA {
			cpu.skipData()
		} else {
			cpu.skipLine()
		}
	case TOKEN_INSTRUCTION:
		index := prog.Cursor()
		if cpu.Verbose {
			file, lineno := cpu.Location(&tok)
			log.Printf("cpu: %v:%v: %v", file, lineno, prog.Text(index))
		}
		done, err = cpu.Execute()
		if err != nil || done {
			return
		}
		cpu.Ticks++
		for _, observer := range cpu.Observers {
			observer.Observe(cpu, index)
		}
	case TOKEN_INVALID:
		err = &ErrToken{Token: tok, Err: ErrDirectiveInvalid}
	default:
		err = &ErrToken{Token: tok, Err: ErrTokenUnexpected}
	}

	return
}

// Run steps until the end of the stream, a halt, or an error.
func (cpu *Cpu) Run() (err error) {
	for {
		var done bool
		done, err = cpu.Step()
		if err != nil || done {
			return
		}
	}
}

// skipLine moves the cursor to the end of the current line.
func (cpu *Cpu) skipLine() {
	prog := cpu.Program
	for !prog.Current().Eol() && prog.Advance() {
	}
}

// skipData moves the cursor to just before the next .text directive.
func (cpu *Cpu) skipData() {
	prog := cpu.Program
	for {
		next := prog.Peek()
		if next == nil || (next.Kind == TOKEN_DIRECTIVE && next.Directive == DIR_TEXT) {
			return
		}
		prog.Advance()
	}
}

// Execute executes the instruction at the cursor, then leaves the cursor
// where the next Step resumes from.
func (cpu *Cpu) Execute() (done bool, err error) {
	prog := cpu.Program
	tok := prog.Current()
	if tok == nil || tok.Kind != TOKEN_INSTRUCTION {
		err = ErrTokenUnexpected
		return
	}
	op := tok.Op

	args, eol, err := cpu.operands()
	if err != nil {
		return
	}

	next := eol
	switch {
	case op.Float():
		err = &ErrToken{Token: *tok, Err: ErrNotImplemented}
	case op == OP_NOP:
		err = argc(args, 0)
	case op == OP_RST:
		err = argc(args, 0)
		if err == nil {
			cpu.Reset()
			done = true
		}
	case op == OP_SYSCALL:
		err = argc(args, 0)
		if err == nil {
			done, err = cpu.syscall()
		}
	case op >= OP_PRTN && op <= OP_PRTS:
		err = cpu.print(op, args)
	case op >= OP_B && op <= OP_BLTZ:
		var taken bool
		var pos int
		pos, taken, err = cpu.branch(op, args)
		if taken {
			next = pos - 1
		}
	case op >= OP_J && op <= OP_JALR:
		next, err = cpu.jump(op, args, eol)
	case op >= OP_LA && op <= OP_SW:
		err = cpu.loadStore(op, args)
	default:
		err = cpu.alu(op, args)
	}

	if err != nil || done {
		return
	}

	prog.Seek(next)

	return
}
