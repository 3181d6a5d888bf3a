package emulator

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/io"
)

func newTestEmulator(input string) (emu *Emulator, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu = NewEmulator(io.NewConsole(strings.NewReader(input), output))
	emu.SetDiagnostics(Diagnostics{})
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Assembler)
	assert.Same(emu.Cpu.Program, emu.Assembler.Program)
	assert.Same(emu.Console, emu.Cpu.Console)
	assert.Equal(0, len(emu.Cpu.Observers))
	assert.Equal(0, output.Len())
}

func TestEmulator_Batch(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	assert.NoError(emu.Load("a.s", strings.NewReader(strings.Join([]string{
		"main: li $t0 6",
		"j finish",
		"prti 99",
	}, "\n"))))
	assert.NoError(emu.Load("b.s", strings.NewReader(strings.Join([]string{
		"finish: prti $t0",
		"prtn",
	}, "\n"))))

	assert.NoError(emu.Run())
	assert.Equal("6\n", output.String())
	assert.Equal(4, emu.Ticks)
}

func TestEmulator_BatchError(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	assert.NoError(emu.Load("a.s", strings.NewReader("prti 1\ndiv $t0 $t0 $zero\nprti 2\n")))

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDivideByZero)

	var loc *cpu.ErrLocation
	if assert.ErrorAs(err, &loc) {
		assert.Equal("a.s", loc.File)
		assert.Equal(2, loc.LineNo)
	}
	assert.Equal("1", output.String())
}

func TestEmulator_LoadFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "hello.s")
	assert.NoError(os.WriteFile(path, []byte("prts \"hello\\n\"\n"), 0o644))

	emu, output := newTestEmulator("")
	assert.NoError(emu.LoadFile(path))
	assert.NoError(emu.Run())
	assert.Equal("hello\n", output.String())

	err := emu.LoadFile(filepath.Join(dir, "missing.s"))
	var load *ErrLoad
	if assert.ErrorAs(err, &load) {
		assert.Equal(filepath.Join(dir, "missing.s"), load.Path)
	}
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestEmulator_Predefine(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")
	emu.Predefine("COUNT", "3")

	assert.NoError(emu.Load("a.s", strings.NewReader("li $t0 COUNT\nprti $t0\n")))
	assert.NoError(emu.Run())
	assert.Equal("3", output.String())
}

func TestEmulator_Submit(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	for _, line := range []string{
		"li $t1 0x7ffffffd",
		"again: addi $t1 $t1 1",
		"sw $t1 -4($sp)",
	} {
		assert.NoError(emu.Submit(line), line)
	}

	length := emu.Program.Len()
	ticks := emu.Ticks
	register := emu.Cpu.Register

	// Loops back over earlier lines, modifying $t1 and the stack, then
	// overflows.
	err := emu.Submit("b again")
	assert.ErrorIs(err, cpu.ErrOverflow)

	assert.Equal(length, emu.Program.Len())
	assert.Equal(ticks, emu.Ticks)
	assert.Equal(register, emu.Cpu.Register)
	assert.Equal(int32(0x7ffffffe), emu.Cpu.Register.Get(9))

	value, err := emu.Cpu.Memory.Load(-4, 4)
	assert.NoError(err)
	assert.Equal(uint32(0x7ffffffe), value)

	// A label defined by a failed line is forgotten.
	err = emu.Submit("oops: li $t0 $nope")
	assert.ErrorIs(err, cpu.ErrRegisterInvalid)
	_, err = emu.Program.Lookup("oops")
	assert.Error(err)

	err = emu.Submit("late: div $t0 $t0 $zero")
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	_, err = emu.Program.Lookup("late")
	assert.Error(err)
	assert.Equal(length, emu.Program.Len())

	// Retry succeeds, from where the session left off.
	assert.NoError(emu.Submit("late: prti $t1"))
	assert.Equal("2147483646", output.String())

	_, err = emu.Program.Lookup("late")
	assert.NoError(err)
}

func TestEmulator_SubmitData(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	for _, line := range []string{
		".data",
		"msg: .asciiz \"hi\"",
		".text",
		"prts msg",
	} {
		assert.NoError(emu.Submit(line), line)
	}
	assert.Equal("hi", output.String())
	assert.Equal([]byte{'h', 'i', 0}, emu.Cpu.Memory.Static())

	// Rolled back data is not kept.
	assert.NoError(emu.Submit(".data"))
	err := emu.Submit(".bogus 1")
	assert.ErrorIs(err, cpu.ErrDirectiveInvalid)
	assert.True(emu.Program.DataArea)
	assert.Equal([]byte{'h', 'i', 0}, emu.Cpu.Memory.Static())
}

func TestEmulator_SubmitReset(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	assert.NoError(emu.Submit("li $t0 4"))
	assert.NoError(emu.Submit("rst"))
	assert.Equal(0, emu.Program.Len())
	assert.Equal(int32(0), emu.Cpu.Register.Get(8))

	assert.NoError(emu.Submit("prti $t0"))
	assert.Equal("0", output.String())
	assert.Equal([]string{STDIN_NAME}, emu.Program.Files)
}

func TestEmulator_SubmitRead(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")
	emu.Console.Input = io.NewLineReader(strings.NewReader(strings.Join([]string{
		"li $v0 5",
		"syscall",
		"41",
		"addi $a0 $v0 1",
		"li $v0 1",
		"syscall",
	}, "\n")))

	assert.NoError(emu.Repl(""))
	assert.Equal("42", output.String())
}

func TestEmulator_Repl(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator(strings.Join([]string{
		"li $t0 3",
		"prti $t0",
		"bogus $t0",
		"li $t0 $bad",
		"prtn",
		"exit",
		"prti $t0",
	}, "\n"))
	errors := &bytes.Buffer{}
	emu.Errors = errors

	assert.NoError(emu.Repl("> "))
	assert.Equal("> > 3> > > \n> ", output.String())

	lines := strings.Split(strings.TrimSpace(errors.String()), "\n")
	if assert.Equal(2, len(lines)) {
		assert.True(strings.HasPrefix(lines[0], "<stdin>:3 "), lines[0])
		assert.True(strings.HasPrefix(lines[1], "<stdin>:4 "), lines[1])
	}
}

func TestEmulator_ReplEOF(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("prti 7")
	assert.NoError(emu.Repl(""))
	assert.Equal("7", output.String())
}

type testPrompter struct {
	io.LineReader
	prompts []string
}

func (tp *testPrompter) SetPrompt(prompt string) {
	tp.prompts = append(tp.prompts, prompt)
}

func TestEmulator_ReplPrompter(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")
	editor := &testPrompter{LineReader: io.NewLineReader(strings.NewReader("nop\nnop\n"))}
	emu.Console.Input = editor

	assert.NoError(emu.Repl("mipsi> "))
	assert.Equal(0, output.Len())
	assert.Equal([]string{"mipsi> ", "", "mipsi> ", "", "mipsi> "}, editor.prompts)
}

func TestEmulator_Diagnostics(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_TRACE, "1")
	t.Setenv(ENV_DUMP_DATA, "false")
	t.Setenv(ENV_DUMP_STACK, "0")
	t.Setenv(ENV_DUMP_REGS, "yes")

	diag := DiagnosticsFromEnv()
	assert.Equal(Diagnostics{Trace: true, DumpRegs: true}, diag)

	emu := NewEmulator(nil)
	assert.Equal(diag, emu.Diagnostics())
	assert.Equal(2, len(emu.Cpu.Observers))

	t.Setenv(ENV_TRACE, "FALSE")
	t.Setenv(ENV_DUMP_REGS, "")
	assert.Equal(Diagnostics{}, DiagnosticsFromEnv())
}

func TestEmulator_Trace(t *testing.T) {
	assert := assert.New(t)

	logged := &bytes.Buffer{}
	log.SetOutput(logged)
	defer log.SetOutput(os.Stderr)

	emu, _ := newTestEmulator("")
	emu.SetDiagnostics(Diagnostics{Trace: true})

	assert.NoError(emu.Load("t.s", strings.NewReader("\nli $t0 1\n")))
	assert.NoError(emu.Run())
	assert.Contains(logged.String(), "trace: t.s:2: li $t0 1\n")
}

func TestEmulator_DumpObserver(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")
	emu.SetDiagnostics(Diagnostics{DumpRegs: true, DumpStack: true})

	assert.NoError(emu.Submit("li $t0 1"))
	assert.Contains(output.String(), "$t0    1\n")
	assert.Contains(output.String(), "stack: 0 bytes\n")
}

func TestEmulator_Commands(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator("")

	assert.NoError(emu.Submit("li $t0 1"))
	length := emu.Program.Len()

	table := [](struct {
		line     string
		handled  bool
		contains string
	}){
		{"help", true, "dispr"},
		{"  dispt ", true, "     0: li\n     1: $t0\n     2: 1\n     3: <eol>\n"},
		{"DISPT", true, "     0: <stdin>:1: instruction li\n"},
		{"dispd", true, "data: 0 bytes\nheap: 0 bytes\n"},
		{"disps", true, "stack: 0 bytes\n"},
		{"dispr", true, "$t0    1\n"},
		{"DISPR", true, "$t0    0x00000001\n"},
		{"DISPR", true, "$fcsr  0x00000000\n"},
		{"Dispr", false, ""},
		{"li $t0 2", false, ""},
	}

	for _, entry := range table {
		output.Reset()
		handled, err := emu.Command(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.handled, handled, entry.line)
		assert.Contains(output.String(), entry.contains, entry.line)
	}

	handled, err := emu.Command("exit")
	assert.True(handled)
	assert.ErrorIs(err, ErrExit)

	// Commands never touch the machine state.
	assert.Equal(length, emu.Program.Len())
	assert.Equal(int32(1), emu.Cpu.Register.Get(8))
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	var mem cpu.Memory
	_, err := mem.Emit(make([]byte, 17)...)
	assert.NoError(err)
	assert.NoError(mem.StoreByte(cpu.DATA_BASE+16, 0xaa))
	_, err = mem.Allocate(2)
	assert.NoError(err)
	assert.NoError(mem.StoreByte(-2, 0xbb))

	out := &bytes.Buffer{}
	assert.NoError(DumpData(out, &mem))
	assert.Equal(strings.Join([]string{
		"data: 17 bytes",
		"10010000: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00",
		"10010010: aa",
		"heap: 2 bytes",
		"10040000: 00 00",
		"",
	}, "\n"), out.String())

	out.Reset()
	assert.NoError(DumpStack(out, &mem))
	assert.Equal("stack: 2 bytes\nfffffffe: bb 00\n", out.String())

	var rf cpu.RegisterFile
	rf.Reset()
	rf.Set(8, -1)
	rf.Hi = 7

	out.Reset()
	assert.NoError(DumpRegisters(out, &rf, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(cpu.REGISTER_GENERAL+2, len(lines))
	assert.Equal("$zero  0", lines[0])
	assert.Equal("$t0    -1", lines[8])
	assert.Equal("hi     7", lines[32])

	out.Reset()
	assert.NoError(DumpRegisters(out, &rf, true))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(cpu.REGISTER_COUNT+2, len(lines))
	assert.Equal("$t0    0xffffffff", lines[8])
}

type failWriter struct{}

func (failWriter) Write(data []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestEmulator_DumpFailure(t *testing.T) {
	assert := assert.New(t)

	logged := &bytes.Buffer{}
	log.SetOutput(logged)
	defer log.SetOutput(os.Stderr)

	emu, _ := newTestEmulator("")
	emu.Cpu.Observers = []cpu.Observer{&Dump{Output: failWriter{}, What: DUMP_STACK}}

	assert.NoError(emu.Submit("nop"))
	assert.Contains(logged.String(), "dump: stack: ")

	assert.Equal("data", DUMP_DATA.String())
	assert.Equal("regs", DUMP_REGS.String())
	assert.Equal("DumpKind(3)", DumpKind(3).String())
}
