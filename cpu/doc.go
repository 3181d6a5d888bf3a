// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the tokenizer and interpreter for a MIPS-like
// assembly language.
//
// Source text is tokenized a line at a time by the Assembler into a Program:
// a flat token stream that is both the program representation and the
// execution address space. Code labels resolve to token positions, and
// jumps or branches simply reposition the Program cursor.
//
// The Cpu links the .data regions of the Program into the static data
// segment, then walks the token stream, dispatching one instruction per
// end-of-line terminated token group against its RegisterFile and Memory.
package cpu
