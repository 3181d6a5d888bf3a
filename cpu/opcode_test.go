package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	for op := OP_INVALID + 1; op < opCount; op++ {
		found, ok := LookupOp(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found, op.String())
	}

	table := [](struct {
		mnemonic string
		op       Op
	}){
		{"add", OP_ADD},
		{"ADDIU", OP_ADDIU},
		{"Syscall", OP_SYSCALL},
		{"add.s", OP_ADD_S},
		{"sltu", OP_SLT},
		{"lbu", OP_LB},
		{"bltu", OP_BLT},
	}

	for _, entry := range table {
		op, ok := LookupOp(entry.mnemonic)
		assert.True(ok, entry.mnemonic)
		assert.Equal(entry.op, op, entry.mnemonic)
	}

	_, ok := LookupOp("invalid")
	assert.False(ok)
	_, ok = LookupOp("frobnicate")
	assert.False(ok)

	names := Mnemonics()
	assert.Equal(int(opCount)-1+len(opAlias), len(names))
	assert.True(slices.Contains(names, "sltiu"))
	assert.False(slices.Contains(names, "invalid"))

	assert.True(OP_MOV_D.Float())
	assert.False(OP_NOP.Float())

	assert.Equal("li", OP_LI.String())
	assert.Equal("Op(-1)", Op(-1).String())
	assert.Equal("Op(101)", opCount.String())
}

func TestOpcodeDirective(t *testing.T) {
	assert := assert.New(t)

	for name, dir := range directiveMap {
		if name == ".global" {
			assert.Equal(".globl", dir.String())
			continue
		}
		assert.Equal(name, dir.String())
	}

	assert.Equal(".invalid", DIR_INVALID.String())
	assert.Equal("Directive(12)", Directive(12).String())

	assert.Equal(4, DIR_WORD.Width())
	assert.Equal(2, DIR_HALF.Width())
	assert.Equal(1, DIR_BYTE.Width())
	assert.Equal(0, DIR_SPACE.Width())
}

func TestOpcodeTokenKind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		kind TokenKind
		name string
	}){
		{TOKEN_INVALID, "invalid"},
		{TOKEN_INSTRUCTION, "instruction"},
		{TOKEN_MEMORY, "memory"},
		{TOKEN_EOL, "eol"},
		{TokenKind(13), "TokenKind(13)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.kind.String())
	}
}
