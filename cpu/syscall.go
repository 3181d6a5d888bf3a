// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// System call codes, selected by $v0.
const (
	SYSCALL_PRINT_INT    = 1
	SYSCALL_PRINT_STRING = 4
	SYSCALL_READ_INT     = 5
	SYSCALL_READ_STRING  = 8
	SYSCALL_SBRK         = 9
	SYSCALL_EXIT         = 10
	SYSCALL_PRINT_CHAR   = 11
)

func (cpu *Cpu) write(text string) (err error) {
	_, err = cpu.Console.WriteString(text)
	return
}

// syscall executes the system call selected by $v0.
func (cpu *Cpu) syscall() (done bool, err error) {
	rf := &cpu.Register
	mem := &cpu.Memory

	a0 := rf.Get(REG_A0)

	switch code := rf.Get(REG_V0); code {
	case SYSCALL_PRINT_INT:
		err = cpu.write(strconv.FormatInt(int64(a0), 10))
	case SYSCALL_PRINT_STRING:
		var text string
		if text, err = mem.String(a0); err == nil {
			err = cpu.write(text)
		}
	case SYSCALL_READ_INT:
		var line string
		var value int64
		line, err = cpu.Console.ReadLine()
		if err != nil {
			err = errors.Join(ErrReadInt, err)
			return
		}
		value, err = strconv.ParseInt(strings.TrimSpace(line), 10, 32)
		if err != nil {
			err = errors.Join(ErrReadInt, err)
			return
		}
		rf.Set(REG_V0, int32(value))
	case SYSCALL_READ_STRING:
		err = cpu.readString(a0, rf.Get(REG_A1))
	case SYSCALL_SBRK:
		var addr int32
		if addr, err = mem.Allocate(a0); err == nil {
			rf.Set(REG_V0, addr)
		}
	case SYSCALL_EXIT:
		cpu.Reset()
		done = true
	case SYSCALL_PRINT_CHAR:
		err = cpu.write(string([]byte{byte(a0)}))
	default:
		err = ErrSyscall(code)
	}

	return
}

// readString reads a line into the buffer at addr, storing at most size-1
// bytes followed by a null.
func (cpu *Cpu) readString(addr int32, size int32) (err error) {
	if size < 1 {
		return
	}

	line, err := cpu.Console.ReadLine()
	if errors.Is(err, io.EOF) {
		line, err = "", nil
	}
	if err != nil {
		return
	}

	if len(line) > int(size)-1 {
		line = line[:size-1]
	}

	data := append([]byte(line), 0)
	for n, b := range data {
		err = cpu.Memory.StoreByte(addr+int32(n), b)
		if err != nil {
			return
		}
	}

	return
}

// printValue decodes a print operand: the value of a register or immediate,
// or the memory at an address operand.
func (cpu *Cpu) printValue(tok *Token, size int) (value int32, err error) {
	if !isAddress(tok) {
		return cpu.value(tok)
	}

	addr, err := cpu.address(tok)
	if err != nil {
		return
	}

	raw, err := cpu.Memory.Load(addr, size)
	if err != nil {
		return
	}

	value = int32(raw)
	if size == 1 {
		value = int32(int8(raw))
	}
	return
}

// print executes the print extensions.
func (cpu *Cpu) print(op Op, args []*Token) (err error) {
	if op == OP_PRTN {
		if err = argc(args, 0); err != nil {
			return
		}
		err = cpu.write("\n")
		return
	}

	if err = argc(args, 1); err != nil {
		return
	}
	arg := args[0]

	var text string
	var value int32
	switch op {
	case OP_PRTI:
		if value, err = cpu.printValue(arg, 4); err != nil {
			return
		}
		text = strconv.FormatInt(int64(value), 10)
	case OP_PRTH:
		if value, err = cpu.printValue(arg, 4); err != nil {
			return
		}
		text = strconv.FormatUint(uint64(uint32(value)), 16)
	case OP_PRTX:
		if value, err = cpu.printValue(arg, 4); err != nil {
			return
		}
		text = "0x" + strconv.FormatUint(uint64(uint32(value)), 16)
	case OP_PRTC:
		if value, err = cpu.printValue(arg, 1); err != nil {
			return
		}
		text = string([]byte{byte(value)})
	case OP_PRTS:
		switch {
		case arg.Kind == TOKEN_STRING:
			text = arg.Name
		case arg.Kind == TOKEN_REGISTER:
			var rs int
			if rs, err = cpu.register(arg); err != nil {
				return
			}
			text, err = cpu.Memory.String(cpu.Register.Get(rs))
		case isAddress(arg) || arg.Kind == TOKEN_INTEGER:
			var addr int32
			if addr, err = cpu.address(arg); err != nil {
				return
			}
			text, err = cpu.Memory.String(addr)
		default:
			err = invalid(arg)
		}
		if err != nil {
			return
		}
	}

	err = cpu.write(text)
	return
}
