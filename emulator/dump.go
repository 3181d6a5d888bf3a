// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"strings"

	stdio "io"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/internal"
)

// DUMP_WIDTH is the number of bytes per memory dump row.
const DUMP_WIDTH = 16

func dumpRow(out stdio.Writer, addr uint32, row []byte) (err error) {
	var text strings.Builder
	for n, b := range row {
		if n != 0 {
			text.WriteByte(' ')
		}
		fmt.Fprintf(&text, "%02x", b)
	}
	_, err = fmt.Fprintf(out, "%08x: %v\n", addr, text.String())
	return
}

func dumpSegment(out stdio.Writer, base uint32, data []byte) (err error) {
	for offset := 0; offset < len(data); offset += DUMP_WIDTH {
		end := min(offset+DUMP_WIDTH, len(data))
		err = dumpRow(out, base+uint32(offset), data[offset:end])
		if err != nil {
			return
		}
	}
	return
}

// DumpTokens writes the token stream, one token per row. verbose adds the
// source location of every token.
func DumpTokens(out stdio.Writer, prog *cpu.Program, verbose bool) (err error) {
	for index, tok := range prog.Tokens {
		if verbose {
			_, err = fmt.Fprintf(out, "%6d: %v:%d: %-11v %v\n", index, prog.FileName(tok.File), tok.LineNo, tok.Kind, tok)
		} else {
			_, err = fmt.Fprintf(out, "%6d: %v\n", index, tok)
		}
		if err != nil {
			return
		}
	}
	return
}

// DumpData writes the static and dynamic data segments, as hex rows
// labelled with their addresses.
func DumpData(out stdio.Writer, mem *cpu.Memory) (err error) {
	_, err = fmt.Fprintf(out, "data: %d bytes\n", len(mem.Data))
	if err != nil {
		return
	}
	err = dumpSegment(out, cpu.DATA_BASE, mem.Data)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(out, "heap: %d bytes\n", len(mem.Heap))
	if err != nil {
		return
	}
	return dumpSegment(out, cpu.HEAP_BASE, mem.Heap)
}

// DumpStack writes the stack segment, lowest address first.
func DumpStack(out stdio.Writer, mem *cpu.Memory) (err error) {
	size := len(mem.Stack)
	_, err = fmt.Fprintf(out, "stack: %d bytes\n", size)
	if err != nil {
		return
	}

	row := make([]byte, 0, DUMP_WIDTH)
	base := int32(cpu.STACK_TOP - size)
	for addr := base; addr < cpu.STACK_TOP; addr++ {
		var b byte
		b, err = mem.LoadByte(addr)
		if err != nil {
			return
		}
		row = append(row, b)
		if len(row) == DUMP_WIDTH || addr == cpu.STACK_TOP-1 {
			err = dumpRow(out, uint32(addr-int32(len(row))+1), row)
			if err != nil {
				return
			}
			row = row[:0]
		}
	}

	return
}

// DumpRegisters writes the general registers, then hi and lo. verbose shows
// them in hex, and adds the floating point registers.
func DumpRegisters(out stdio.Writer, rf *cpu.RegisterFile, verbose bool) (err error) {
	regs := internal.IterSeq2Concat(rf.General(), rf.Special())
	if verbose {
		regs = internal.IterSeq2Concat(regs, rf.Float())
	}

	for name, value := range regs {
		if verbose {
			_, err = fmt.Fprintf(out, "%-6v 0x%08x\n", name, uint32(value))
		} else {
			_, err = fmt.Fprintf(out, "%-6v %d\n", name, value)
		}
		if err != nil {
			return
		}
	}

	return
}
