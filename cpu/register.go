// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

const (
	REGISTER_GENERAL = 32 // General purpose registers.
	REGISTER_FLOAT   = 32 // Floating point registers, reserved.
	REGISTER_FCSR    = REGISTER_GENERAL + REGISTER_FLOAT
	REGISTER_COUNT   = REGISTER_FCSR + 1

	REG_ZERO = 0
	REG_AT   = 1
	REG_V0   = 2
	REG_A0   = 4
	REG_A1   = 5
	REG_SP   = 29
	REG_RA   = 31
)

var registerName = [REGISTER_GENERAL]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// registerMap maps register names, without the leading '$', to indexes.
var registerMap = func() map[string]int {
	regs := make(map[string]int, 2*REGISTER_GENERAL+REGISTER_FLOAT+1)
	for n, name := range registerName {
		regs[name] = n
		regs[strconv.Itoa(n)] = n
	}
	regs["s8"] = 30
	for n := range REGISTER_FLOAT {
		regs[fmt.Sprintf("f%d", n)] = REGISTER_GENERAL + n
	}
	return regs
}()

// LookupRegister finds the register index for a '$' prefixed register name.
func LookupRegister(name string) (index int, ok bool) {
	name, found := strings.CutPrefix(name, "$")
	if !found {
		return
	}
	index, ok = registerMap[strings.ToLower(name)]
	return
}

// RegisterName returns the '$' prefixed symbolic name of a register index.
func RegisterName(index int) string {
	switch {
	case index >= 0 && index < REGISTER_GENERAL:
		return "$" + registerName[index]
	case index >= REGISTER_GENERAL && index < REGISTER_FCSR:
		return fmt.Sprintf("$f%d", index-REGISTER_GENERAL)
	case index == REGISTER_FCSR:
		return "$fcsr"
	}
	return fmt.Sprintf("$?%d", index)
}

// RegisterFile holds the integer, floating point and hi/lo registers.
// Register 0 reads as zero, regardless of what was written.
type RegisterFile struct {
	Slot [REGISTER_COUNT]int32
	Hi   int32
	Lo   int32
}

// Get reads a register.
func (rf *RegisterFile) Get(index int) int32 {
	if index == REG_ZERO {
		return 0
	}
	return rf.Slot[index]
}

// Set writes a register.
func (rf *RegisterFile) Set(index int, value int32) {
	rf.Slot[index] = value
}

// HiLo returns hi:lo as a single 64-bit value.
func (rf *RegisterFile) HiLo() int64 {
	return int64(rf.Hi)<<32 | int64(uint32(rf.Lo))
}

// SetHiLo splits a 64-bit value into hi:lo.
func (rf *RegisterFile) SetHiLo(value int64) {
	rf.Hi = int32(value >> 32)
	rf.Lo = int32(value)
}

// Reset zeros every register. The stack pointer is left at STACK_TOP.
func (rf *RegisterFile) Reset() {
	clear(rf.Slot[:])
	rf.Hi = 0
	rf.Lo = 0
	rf.Slot[REG_SP] = STACK_TOP
}

// General iterates over the general purpose register names and values.
func (rf *RegisterFile) General() iter.Seq2[string, int32] {
	return func(yield func(string, int32) bool) {
		for n := range REGISTER_GENERAL {
			if !yield(RegisterName(n), rf.Get(n)) {
				return
			}
		}
	}
}

// Float iterates over the reserved floating point register names and values.
func (rf *RegisterFile) Float() iter.Seq2[string, int32] {
	return func(yield func(string, int32) bool) {
		for n := REGISTER_GENERAL; n < REGISTER_COUNT; n++ {
			if !yield(RegisterName(n), rf.Slot[n]) {
				return
			}
		}
	}
}

// Special iterates over hi and lo.
func (rf *RegisterFile) Special() iter.Seq2[string, int32] {
	return func(yield func(string, int32) bool) {
		if !yield("hi", rf.Hi) {
			return
		}
		yield("lo", rf.Lo)
	}
}
