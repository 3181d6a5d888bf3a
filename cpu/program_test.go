package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Cursor(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	assert.True(prog.Foremost())
	assert.Nil(prog.Current())
	assert.Nil(prog.Peek())
	assert.False(prog.Advance())

	prog.Append(Token{Kind: TOKEN_INSTRUCTION, Op: OP_NOP})
	prog.Append(Token{Kind: TOKEN_EOL})

	assert.Nil(prog.Current())
	assert.Equal(TOKEN_INSTRUCTION, prog.Peek().Kind)

	assert.True(prog.Advance())
	assert.False(prog.Foremost())
	assert.Equal(0, prog.Cursor())
	assert.Equal(OP_NOP, prog.Current().Op)

	assert.True(prog.Advance())
	assert.Equal(1, prog.Cursor())
	assert.True(prog.Current().Eol())
	assert.Nil(prog.Peek())

	assert.False(prog.Advance())
	assert.Equal(1, prog.Cursor())

	prog.Seek(-1)
	assert.False(prog.Foremost())
	assert.Nil(prog.Current())
	assert.True(prog.Advance())
	assert.Equal(0, prog.Cursor())
}

func TestProgram_MarkRestore(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	file := prog.AddFile("one.s")
	assert.NoError(prog.Define("first", 1, file))
	prog.Append(Token{Kind: TOKEN_EOL})
	prog.Advance()
	prog.Advance()

	mark := prog.Mark()

	prog.AddFile("two.s")
	assert.NoError(prog.Define("second", 2, 1))
	prog.Append(Token{Kind: TOKEN_EOL})
	prog.DataArea = true
	prog.Advance()
	assert.Equal(4, prog.Len())
	assert.Equal(2, prog.Cursor())

	prog.Restore(mark)
	assert.Equal(2, prog.Len())
	assert.Equal(1, prog.Cursor())
	assert.False(prog.DataArea)
	assert.Equal([]string{"one.s"}, prog.Files)
	assert.Equal(map[string]int{"first": 0}, prog.Label)

	assert.NoError(prog.Define("second", 3, file))
	assert.Equal(2, prog.Label["second"])
}

func TestProgram_Reset(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	prog.AddFile("x.s")
	assert.NoError(prog.Define("x", 1, 0))
	prog.Advance()

	prog.Reset()
	assert.Equal(0, prog.Len())
	assert.True(prog.Foremost())
	assert.Equal(0, len(prog.Label))
	assert.Equal(0, len(prog.Files))
	assert.Equal("?", prog.FileName(0))
}

func TestProgram_Text(t *testing.T) {
	assert := assert.New(t)

	asm, file := newTestAssembler()
	assert.NoError(asm.ParseLine("loop: addi $t0, $t0, -1", 1, file))
	assert.NoError(asm.ParseLine("lw $t1 msg+4($sp)", 2, file))
	assert.NoError(asm.ParseLine(`prts "hi"`, 3, file))

	prog := asm.Program
	assert.Equal("loop: addi $t0 $t0 -1", prog.Text(0))
	assert.Equal("addi $t0 $t0 -1", prog.Text(1))
	assert.Equal("lw $t1 msg+4($sp)", prog.Text(6))
	assert.Equal(`prts "hi"`, prog.Text(10))
	assert.Equal("", prog.Text(100))
}
