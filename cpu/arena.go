// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	DATA_BASE   = 0x1001_0000 // First address of the static data segment.
	HEAP_BASE   = 0x1004_0000 // First address of the dynamic data segment.
	STACK_TOP   = 0           // Top of the address space; the stack grows down into negative addresses.
	STACK_LIMIT = 16 << 20    // Maximum stack size, in bytes.

	DATA_LIMIT = HEAP_BASE - DATA_BASE // Maximum static data size, in bytes.
	HEAP_LIMIT = 0x7000_0000 - HEAP_BASE
)
