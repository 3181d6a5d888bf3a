// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"log"
)

// payload returns the tokens after the directive at index, up to its
// end-of-line.
func (prog *Program) payload(index int) (args []*Token) {
	for n := index + 1; n < prog.Len(); n++ {
		tok := &prog.Tokens[n]
		if tok.Eol() {
			break
		}
		args = append(args, tok)
	}
	return
}

// Link lays out the static data segment from the data regions of the
// stream, resolving each data label to its 1-based data offset. It resumes
// from where the previous Link stopped. The cursor is not moved.
func (cpu *Cpu) Link() (err error) {
	prog := cpu.Program
	mem := &cpu.Memory

	var tok *Token
	defer func() {
		if err != nil && tok != nil {
			err = &ErrLocation{File: prog.FileName(tok.File), LineNo: tok.LineNo, Err: err}
		}
	}()

	emit := func(data ...byte) (err error) {
		_, err = mem.Emit(data...)
		return
	}

	for n := prog.linked; n < prog.Len(); n++ {
		tok = &prog.Tokens[n]

		switch tok.Kind {
		case TOKEN_LABEL:
			if prog.DataArea && tok.Data == nil {
				offset := len(mem.Data) + 1
				tok.Data = &offset
				if cpu.Verbose {
					log.Printf("cpu: link %v at data offset %v", tok.Name, offset)
				}
			}
			continue
		case TOKEN_INVALID:
			if prog.DataArea {
				err = &ErrToken{Token: *tok, Err: ErrDirectiveInvalid}
				return
			}
			continue
		case TOKEN_DIRECTIVE:
		default:
			continue
		}

		switch tok.Directive {
		case DIR_TEXT:
			prog.DataArea = false
			continue
		case DIR_DATA:
			prog.DataArea = true
			continue
		case DIR_ALIGN:
			prog.DataArea = true
		}

		if !prog.DataArea {
			continue
		}

		args := prog.payload(n)
		switch tok.Directive {
		case DIR_WORD, DIR_HALF, DIR_BYTE:
			width := tok.Directive.Width()
			for _, arg := range args {
				value := uint32(arg.Value)
				for b := range width {
					err = emit(byte(value >> (8 * (width - 1 - b))))
					if err != nil {
						return
					}
				}
			}
		case DIR_SPACE:
			if len(args) == 1 {
				err = emit(make([]byte, args[0].Value)...)
			}
		case DIR_ALIGN:
			if len(args) == 1 {
				size := 1 << args[0].Value
				if pad := len(mem.Data) % size; pad != 0 {
					err = emit(make([]byte, size-pad)...)
				}
			}
		case DIR_ASCII:
			if len(args) == 1 {
				err = emit([]byte(args[0].Name)...)
			}
		case DIR_ASCIIZ:
			if len(args) == 1 {
				err = emit(append([]byte(args[0].Name), 0)...)
			}
		}
		if err != nil {
			return
		}
		n += len(args)
	}

	tok = nil
	prog.linked = prog.Len()

	return
}
