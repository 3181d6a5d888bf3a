// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// operands collects the operand tokens following the instruction at the
// cursor, and returns the stream index of the terminating end-of-line.
func (cpu *Cpu) operands() (args []*Token, eol int, err error) {
	prog := cpu.Program
	for n := prog.Cursor() + 1; n < prog.Len(); n++ {
		tok := &prog.Tokens[n]
		switch tok.Kind {
		case TOKEN_EOL:
			eol = n
			return
		case TOKEN_INSTRUCTION, TOKEN_DIRECTIVE, TOKEN_LABEL, TOKEN_INVALID:
			err = &ErrToken{Token: *tok, Err: ErrTokenUnexpected}
			return
		}
		args = append(args, tok)
	}

	err = ErrOperandMissing
	return
}

// argc checks that exactly count operands are present.
func argc(args []*Token, count int) (err error) {
	switch {
	case len(args) < count:
		err = ErrOperandMissing
	case len(args) > count:
		err = &ErrToken{Token: *args[count], Err: ErrExtraOperand}
	}
	return
}

func invalid(tok *Token) error {
	return &ErrToken{Token: *tok, Err: ErrOperandInvalid}
}

// register decodes a general purpose register operand.
func (cpu *Cpu) register(tok *Token) (index int, err error) {
	if tok.Kind != TOKEN_REGISTER || tok.Register >= REGISTER_GENERAL {
		err = invalid(tok)
		return
	}
	index = tok.Register
	return
}

// value decodes a register or immediate operand.
func (cpu *Cpu) value(tok *Token) (value int32, err error) {
	switch tok.Kind {
	case TOKEN_REGISTER:
		var index int
		index, err = cpu.register(tok)
		if err != nil {
			return
		}
		value = cpu.Register.Get(index)
	case TOKEN_INTEGER, TOKEN_CHAR:
		value = int32(tok.Value)
	default:
		err = invalid(tok)
	}
	return
}

// label returns the address of a label: the static data address of data
// labels, and the stream position of code labels.
func (cpu *Cpu) label(name string) (addr int32, err error) {
	tok, err := cpu.Program.Lookup(name)
	if err != nil {
		return
	}
	if tok.Data != nil {
		addr = DATA_BASE + int32(*tok.Data) - 1
		return
	}
	addr = int32(tok.Value)
	return
}

// target decodes a branch or jump label operand into a stream position.
func (cpu *Cpu) target(tok *Token) (pos int, err error) {
	if tok.Kind != TOKEN_ADDRESS {
		err = invalid(tok)
		return
	}
	label, err := cpu.Program.Lookup(tok.Name)
	if err != nil {
		err = &ErrToken{Token: *tok, Err: err}
		return
	}
	pos = int(label.Value)
	return
}

// address decodes a memory, named data, label or integer operand into an
// effective address.
func (cpu *Cpu) address(tok *Token) (addr int32, err error) {
	switch tok.Kind {
	case TOKEN_MEMORY:
		addr = cpu.Register.Get(tok.Register) + int32(tok.Value)
	case TOKEN_DATA:
		addr, err = cpu.label(tok.Name)
		if err != nil {
			err = &ErrToken{Token: *tok, Err: err}
			return
		}
		addr += int32(tok.Value) + cpu.Register.Get(tok.Register)
	case TOKEN_ADDRESS:
		addr, err = cpu.label(tok.Name)
		if err != nil {
			err = &ErrToken{Token: *tok, Err: err}
		}
	case TOKEN_INTEGER:
		addr = int32(tok.Value)
	default:
		err = invalid(tok)
	}
	return
}

// isAddress returns true for the operand kinds that name memory.
func isAddress(tok *Token) bool {
	switch tok.Kind {
	case TOKEN_MEMORY, TOKEN_DATA, TOKEN_ADDRESS:
		return true
	}
	return false
}
