// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"slices"
)

// Memory holds the static data, dynamic data and stack segments.
//
// Positive addresses select the data segments, static data from DATA_BASE and
// dynamic data from HEAP_BASE. Non-positive addresses select the stack, which
// grows down from STACK_TOP: the byte at address a is Stack[STACK_TOP-a-1].
type Memory struct {
	Data  []byte // Static data, filled by the linker.
	Heap  []byte // Dynamic data, grown by Allocate.
	Stack []byte // Stack, grown on demand.
}

// Reset clears all segments.
func (mem *Memory) Reset() {
	mem.ResetData()
	mem.ResetHeap()
	mem.ResetStack()
}

// ResetData clears the static data segment.
func (mem *Memory) ResetData() {
	mem.Data = mem.Data[:0]
}

// ResetHeap clears the dynamic data segment. The next Allocate returns
// HEAP_BASE.
func (mem *Memory) ResetHeap() {
	mem.Heap = mem.Heap[:0]
}

// ResetStack clears the stack segment. Unwritten stack reads as zero.
func (mem *Memory) ResetStack() {
	mem.Stack = mem.Stack[:0]
}

// Clone returns an independent copy of all segments.
func (mem *Memory) Clone() Memory {
	return Memory{
		Data:  slices.Clone(mem.Data),
		Heap:  slices.Clone(mem.Heap),
		Stack: slices.Clone(mem.Stack),
	}
}

// Static returns the static data segment, for read-only use by host tooling.
func (mem *Memory) Static() []byte {
	return mem.Data
}

// Emit appends bytes to the static data segment, and returns the 1-based
// offset of the first one.
func (mem *Memory) Emit(data ...byte) (offset int, err error) {
	if len(mem.Data)+len(data) > DATA_LIMIT {
		err = ErrDataFull
		return
	}
	offset = len(mem.Data) + 1
	mem.Data = append(mem.Data, data...)
	return
}

// Allocate grows the dynamic data segment by size zeroed bytes, and returns
// the address of the first one.
func (mem *Memory) Allocate(size int32) (addr int32, err error) {
	if size < 0 || len(mem.Heap)+int(size) > HEAP_LIMIT {
		err = ErrHeapFull
		return
	}
	addr = HEAP_BASE + int32(len(mem.Heap))
	mem.Heap = append(mem.Heap, make([]byte, size)...)
	return
}

// stackIndex returns the stack buffer index of a stack address.
func stackIndex(addr int32) int {
	return int(int64(STACK_TOP) - int64(addr) - 1)
}

// segment decodes a byte address into its segment and index. Stack accesses
// grow the stack when grow is set.
func (mem *Memory) segment(addr int32, grow bool) (buf []byte, index int, err error) {
	switch {
	case addr <= STACK_TOP:
		index = stackIndex(addr)
		if index < 0 {
			err = ErrAddress(addr)
			return
		}
		if index >= STACK_LIMIT {
			err = ErrStackLimit
			return
		}
		if index >= len(mem.Stack) && grow {
			mem.Stack = append(mem.Stack, make([]byte, index+1-len(mem.Stack))...)
		}
		buf = mem.Stack
	case addr >= HEAP_BASE:
		index = int(addr - HEAP_BASE)
		if index >= len(mem.Heap) {
			err = ErrAddress(addr)
			return
		}
		buf = mem.Heap
	case addr >= DATA_BASE:
		// 1-based offsets into the static data.
		if int(addr-DATA_BASE)+1 > len(mem.Data) {
			err = ErrAddress(addr)
			return
		}
		index = int(addr - DATA_BASE)
		buf = mem.Data
	default:
		err = ErrAddress(addr)
	}

	return
}

// LoadByte reads a single byte.
func (mem *Memory) LoadByte(addr int32) (value byte, err error) {
	buf, index, err := mem.segment(addr, false)
	if err != nil {
		return
	}
	if index < len(buf) {
		value = buf[index]
	}
	return
}

// StoreByte writes a single byte.
func (mem *Memory) StoreByte(addr int32, value byte) (err error) {
	buf, index, err := mem.segment(addr, true)
	if err != nil {
		return
	}
	buf[index] = value
	return
}

// Load reads a big endian value of size 1, 2 or 4 bytes.
func (mem *Memory) Load(addr int32, size int) (value uint32, err error) {
	for n := range size {
		var b byte
		b, err = mem.LoadByte(addr + int32(n))
		if err != nil {
			err = ErrAddress(addr)
			return
		}
		value = (value << 8) | uint32(b)
	}
	return
}

// Store writes a big endian value of size 1, 2 or 4 bytes.
func (mem *Memory) Store(addr int32, size int, value uint32) (err error) {
	// Check the whole span first, so a fault leaves memory unchanged.
	for _, n := range []int{0, size - 1} {
		if _, _, err = mem.segment(addr+int32(n), false); err != nil {
			if err == ErrStackLimit {
				return
			}
			err = ErrAddress(addr)
			return
		}
	}

	for n := range size {
		shift := uint(8 * (size - 1 - n))
		err = mem.StoreByte(addr+int32(n), byte(value>>shift))
		if err != nil {
			return
		}
	}
	return
}

// String reads the null terminated string at addr. The string also ends
// at the end of its segment.
func (mem *Memory) String(addr int32) (text string, err error) {
	var data []byte
	for {
		var b byte
		b, err = mem.LoadByte(addr)
		if err != nil {
			if len(data) > 0 {
				err = nil
				break
			}
			return
		}
		if b == 0 {
			break
		}
		data = append(data, b)
		addr++
	}

	text = string(data)
	return
}
