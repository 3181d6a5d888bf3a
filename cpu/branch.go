// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// condition evaluates a branch condition.
func condition(op Op, a, b int32) bool {
	switch op {
	case OP_BEQ, OP_BEQZ:
		return a == b
	case OP_BNE, OP_BNEZ:
		return a != b
	case OP_BGE, OP_BGEZ:
		return a >= b
	case OP_BGT, OP_BGTZ:
		return a > b
	case OP_BLE, OP_BLEZ:
		return a <= b
	case OP_BLT, OP_BLTZ:
		return a < b
	}
	return true
}

// branch evaluates a conditional branch, returning the label position and
// whether the branch is taken.
func (cpu *Cpu) branch(op Op, args []*Token) (pos int, taken bool, err error) {
	var a, b int32
	var label *Token

	switch op {
	case OP_B:
		if err = argc(args, 1); err != nil {
			return
		}
		label = args[0]
	case OP_BEQZ, OP_BNEZ, OP_BGEZ, OP_BGTZ, OP_BLEZ, OP_BLTZ:
		if err = argc(args, 2); err != nil {
			return
		}
		var rs int
		if rs, err = cpu.register(args[0]); err != nil {
			return
		}
		a = cpu.Register.Get(rs)
		label = args[1]
	default:
		if err = argc(args, 3); err != nil {
			return
		}
		var rs int
		if rs, err = cpu.register(args[0]); err != nil {
			return
		}
		if b, err = cpu.value(args[1]); err != nil {
			return
		}
		a = cpu.Register.Get(rs)
		label = args[2]
	}

	pos, err = cpu.target(label)
	if err != nil {
		return
	}

	taken = condition(op, a, b)
	return
}

// jump evaluates a jump, returning the index the cursor is moved to. The
// return position is the index following the end-of-line at eol.
func (cpu *Cpu) jump(op Op, args []*Token, eol int) (next int, err error) {
	var pos int
	link := -1

	switch op {
	case OP_J, OP_JAL:
		if err = argc(args, 1); err != nil {
			return
		}
		if pos, err = cpu.target(args[0]); err != nil {
			return
		}
		if op == OP_JAL {
			link = REG_RA
		}
	case OP_JR, OP_JALR:
		var rs int
		switch {
		case op == OP_JALR && len(args) == 2:
			if link, err = cpu.register(args[0]); err != nil {
				return
			}
			if rs, err = cpu.register(args[1]); err != nil {
				return
			}
		default:
			if err = argc(args, 1); err != nil {
				return
			}
			if rs, err = cpu.register(args[0]); err != nil {
				return
			}
			if op == OP_JALR {
				link = REG_RA
			}
		}
		pos = int(cpu.Register.Get(rs))
		if pos < 0 || pos > cpu.Program.Len() {
			err = &ErrToken{Token: *args[len(args)-1], Err: ErrJumpInvalid}
			return
		}
	}

	if link >= 0 {
		cpu.Register.Set(link, int32(eol+1))
	}

	next = pos - 1
	return
}
