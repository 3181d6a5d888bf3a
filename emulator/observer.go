// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	stdio "io"

	"github.com/ezrec/mipsi/cpu"
)

// Trace logs every executed instruction, with its source location.
type Trace struct{}

// Observe logs the instruction at index.
func (tr *Trace) Observe(cp *cpu.Cpu, index int) {
	tok := &cp.Program.Tokens[index]
	file, lineno := cp.Location(tok)
	log.Printf("trace: %v:%d: %v", file, lineno, cp.Program.Text(index))
}

// DumpKind selects what a Dump observer writes.
type DumpKind int

//go:generate go tool stringer -linecomment -type=DumpKind
const (
	DUMP_DATA  = DumpKind(iota) // data
	DUMP_STACK                  // stack
	DUMP_REGS                   // regs
)

// Dump writes part of the machine state after every executed instruction.
type Dump struct {
	Output stdio.Writer
	What   DumpKind
}

// Observe writes the selected state. Write failures are logged, and do not
// stop the program.
func (dm *Dump) Observe(cp *cpu.Cpu, index int) {
	var err error
	switch dm.What {
	case DUMP_DATA:
		err = DumpData(dm.Output, &cp.Memory)
	case DUMP_STACK:
		err = DumpStack(dm.Output, &cp.Memory)
	case DUMP_REGS:
		err = DumpRegisters(dm.Output, &cp.Register, false)
	}
	if err != nil {
		log.Printf("dump: %v: %v", dm.What, err)
	}
}
