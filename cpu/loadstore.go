// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// loadStore executes the load address, load and store instructions.
func (cpu *Cpu) loadStore(op Op, args []*Token) (err error) {
	if err = argc(args, 2); err != nil {
		return
	}

	var rt int
	var addr int32
	if rt, err = cpu.register(args[0]); err != nil {
		return
	}
	if addr, err = cpu.address(args[1]); err != nil {
		return
	}

	rf := &cpu.Register
	mem := &cpu.Memory

	var value uint32
	switch op {
	case OP_LA:
		rf.Set(rt, addr)
	case OP_LB:
		if value, err = mem.Load(addr, 1); err == nil {
			rf.Set(rt, int32(int8(value)))
		}
	case OP_LH:
		if value, err = mem.Load(addr, 2); err == nil {
			rf.Set(rt, int32(int16(value)))
		}
	case OP_LW:
		if value, err = mem.Load(addr, 4); err == nil {
			rf.Set(rt, int32(value))
		}
	case OP_SB:
		err = mem.Store(addr, 1, uint32(rf.Get(rt)))
	case OP_SH:
		err = mem.Store(addr, 2, uint32(rf.Get(rt)))
	case OP_SW:
		err = mem.Store(addr, 4, uint32(rf.Get(rt)))
	}

	return
}
