// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"math"
	"math/bits"
)

// checked narrows a 64-bit result, failing if it leaves the int32 range.
func checked(value int64) (result int32, err error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		err = ErrOverflow
		return
	}
	result = int32(value)
	return
}

func boolean(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}

// arith computes a three operand arithmetic, logic or comparison result.
func arith(op Op, a, b int32) (result int32, err error) {
	ua, ub := uint32(a), uint32(b)
	shift := ub & 0x1f

	switch op {
	case OP_ADD, OP_ADDI:
		result, err = checked(int64(a) + int64(b))
	case OP_ADDU, OP_ADDIU:
		result = int32(ua + ub)
	case OP_SUB:
		result, err = checked(int64(a) - int64(b))
	case OP_SUBU:
		result = int32(ua - ub)
	case OP_MUL:
		result, err = checked(int64(a) * int64(b))
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = a / b
	case OP_DIVU:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = int32(ua / ub)
	case OP_REM:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = a % b
	case OP_REMU:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = int32(ua % ub)
	case OP_AND, OP_ANDI:
		result = a & b
	case OP_OR, OP_ORI:
		result = a | b
	case OP_XOR, OP_XORI:
		result = a ^ b
	case OP_NOR:
		result = ^(a | b)
	case OP_SLL, OP_SLLV:
		result = int32(ua << shift)
	case OP_SRA, OP_SRAV:
		result = a >> shift
	case OP_SRL, OP_SRLV:
		result = int32(ua >> shift)
	case OP_SLT, OP_SLTI:
		result = boolean(a < b)
	case OP_SEQ:
		result = boolean(a == b)
	case OP_SGE:
		result = boolean(a >= b)
	case OP_SGT:
		result = boolean(a > b)
	case OP_SLE:
		result = boolean(a <= b)
	case OP_SNE:
		result = boolean(a != b)
	default:
		err = ErrOperandInvalid
	}

	return
}

// unary computes a two operand result.
func unary(op Op, a int32) (result int32) {
	switch op {
	case OP_CLO:
		result = int32(bits.LeadingZeros32(^uint32(a)))
	case OP_CLZ:
		result = int32(bits.LeadingZeros32(uint32(a)))
	case OP_NOT:
		result = ^a
	case OP_NEG, OP_NEGU:
		result = -a
	case OP_MOVE:
		result = a
	}
	return
}

// rotate performs ROL or ROR as its three instruction expansion through $at:
//
//	rol: srl $at, rs, 32-n ; sll rd, rs, n ; or rd, rd, $at
//	ror: sll $at, rs, 32-n ; srl rd, rs, n ; or rd, rd, $at
func (cpu *Cpu) rotate(op Op, rd, rs int, amount int32) {
	rf := &cpu.Register
	n := uint32(amount) & 0x1f

	if op == OP_ROL {
		rf.Set(REG_AT, int32(uint32(rf.Get(rs))>>(32-n)))
		rf.Set(rd, int32(uint32(rf.Get(rs))<<n))
	} else {
		rf.Set(REG_AT, int32(uint32(rf.Get(rs))<<(32-n)))
		rf.Set(rd, int32(uint32(rf.Get(rs))>>n))
	}
	rf.Set(rd, rf.Get(rd)|rf.Get(REG_AT))
}

// wide performs the hi:lo instructions.
func (cpu *Cpu) wide(op Op, a, b int32) (err error) {
	rf := &cpu.Register

	switch op {
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		rf.Lo, rf.Hi = a/b, a%b
	case OP_DIVU:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		rf.Lo, rf.Hi = int32(uint32(a)/uint32(b)), int32(uint32(a)%uint32(b))
	case OP_MULT:
		rf.SetHiLo(int64(a) * int64(b))
	case OP_MULTU:
		rf.SetHiLo(int64(uint64(uint32(a)) * uint64(uint32(b))))
	case OP_MADD:
		rf.SetHiLo(rf.HiLo() + int64(a)*int64(b))
	case OP_MADDU:
		rf.SetHiLo(int64(uint64(rf.HiLo()) + uint64(uint32(a))*uint64(uint32(b))))
	case OP_MSUB:
		rf.SetHiLo(rf.HiLo() - int64(a)*int64(b))
	case OP_MSUBU:
		rf.SetHiLo(int64(uint64(rf.HiLo()) - uint64(uint32(a))*uint64(uint32(b))))
	}

	return
}

// alu executes the register and immediate arithmetic instructions.
func (cpu *Cpu) alu(op Op, args []*Token) (err error) {
	rf := &cpu.Register

	switch op {
	case OP_MFHI, OP_MFLO:
		if err = argc(args, 1); err != nil {
			return
		}
		var rd int
		if rd, err = cpu.register(args[0]); err != nil {
			return
		}
		if op == OP_MFHI {
			rf.Set(rd, rf.Hi)
		} else {
			rf.Set(rd, rf.Lo)
		}
		return
	case OP_MTHI, OP_MTLO:
		if err = argc(args, 1); err != nil {
			return
		}
		var value int32
		if value, err = cpu.value(args[0]); err != nil {
			return
		}
		if op == OP_MTHI {
			rf.Hi = value
		} else {
			rf.Lo = value
		}
		return
	case OP_MULT, OP_MULTU, OP_MADD, OP_MADDU, OP_MSUB, OP_MSUBU:
		return cpu.aluWide(op, args)
	case OP_DIV, OP_DIVU:
		if len(args) == 2 {
			return cpu.aluWide(op, args)
		}
	case OP_LI, OP_LUI:
		if err = argc(args, 2); err != nil {
			return
		}
		var rd int
		if rd, err = cpu.register(args[0]); err != nil {
			return
		}
		if args[1].Kind != TOKEN_INTEGER && args[1].Kind != TOKEN_CHAR {
			err = invalid(args[1])
			return
		}
		value := int32(args[1].Value)
		if op == OP_LUI {
			value = int32(uint32(value) << 16)
		}
		rf.Set(rd, value)
		return
	case OP_CLO, OP_CLZ, OP_NOT, OP_NEG, OP_NEGU, OP_MOVE:
		if err = argc(args, 2); err != nil {
			return
		}
		var rd int
		var value int32
		if rd, err = cpu.register(args[0]); err != nil {
			return
		}
		if value, err = cpu.value(args[1]); err != nil {
			return
		}
		rf.Set(rd, unary(op, value))
		return
	}

	if err = argc(args, 3); err != nil {
		return
	}

	var rd, rs int
	var b int32
	if rd, err = cpu.register(args[0]); err != nil {
		return
	}
	if rs, err = cpu.register(args[1]); err != nil {
		return
	}
	if b, err = cpu.value(args[2]); err != nil {
		return
	}

	if op == OP_ROL || op == OP_ROR {
		cpu.rotate(op, rd, rs, b)
		return
	}

	result, err := arith(op, rf.Get(rs), b)
	if err != nil {
		return
	}
	rf.Set(rd, result)

	return
}

// aluWide decodes the two operands of the hi:lo instructions.
func (cpu *Cpu) aluWide(op Op, args []*Token) (err error) {
	if err = argc(args, 2); err != nil {
		return
	}

	var rs int
	var b int32
	if rs, err = cpu.register(args[0]); err != nil {
		return
	}
	if b, err = cpu.value(args[1]); err != nil {
		return
	}

	err = cpu.wide(op, cpu.Register.Get(rs), b)
	return
}
