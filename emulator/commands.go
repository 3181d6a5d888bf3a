// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// command is a session command. It may inspect, but never mutate, the
// emulator state.
type command struct {
	help string
	run  func(emu *Emulator, verbose bool) error
}

var commands = map[string]command{
	"exit": {"leave the session", func(emu *Emulator, verbose bool) error {
		return ErrExit
	}},
	"dispt": {"display the token stream", func(emu *Emulator, verbose bool) error {
		return DumpTokens(emu.Console, emu.Program, verbose)
	}},
	"dispd": {"display the static and dynamic data", func(emu *Emulator, verbose bool) error {
		return DumpData(emu.Console, &emu.Cpu.Memory)
	}},
	"disps": {"display the stack", func(emu *Emulator, verbose bool) error {
		return DumpStack(emu.Console, &emu.Cpu.Memory)
	}},
	"dispr": {"display the registers", func(emu *Emulator, verbose bool) error {
		return DumpRegisters(emu.Console, &emu.Cpu.Register, verbose)
	}},
}

func init() {
	commands["help"] = command{"list the session commands", func(emu *Emulator, verbose bool) error {
		return emu.help()
	}}
}

func (emu *Emulator) help() (err error) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		_, err = fmt.Fprintf(emu.Console, "%-6v %v\n", name, commands[name].help)
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(emu.Console, "Uppercase display commands are verbose.\n")
	return
}

// Command runs a session command. handled is false when line is not a
// command, and should be submitted as assembly instead.
func (emu *Emulator) Command(line string) (handled bool, err error) {
	name := strings.TrimSpace(line)

	cmd, ok := commands[name]
	verbose := false
	if !ok {
		lower := strings.ToLower(name)
		if lower != name && strings.ToUpper(name) == name && strings.HasPrefix(lower, "disp") {
			cmd, ok = commands[lower]
			verbose = true
		}
	}
	if !ok {
		return
	}

	handled = true
	err = cmd.run(emu, verbose)
	return
}
