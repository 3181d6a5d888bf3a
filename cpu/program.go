// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"iter"
	"maps"
	"strings"
)

// Program is the token stream: both the program text and the execution
// address space. The cursor is the program counter.
type Program struct {
	Tokens   []Token        // Token stream.
	Label    map[string]int // Map of label names to stream positions.
	Files    []string       // Source file names, indexed by Token.File.
	DataArea bool           // Set while the linker is inside a .data region.

	cursor   int  // Current token index.
	foremost bool // Cursor has not yet moved onto the first token.
	linked   int  // Stream index the linker resumes from.
}

// Mark records the Program state before an append, for Restore.
type Mark struct {
	length   int
	cursor   int
	foremost bool
	linked   int
	dataArea bool
	files    int
}

// NewProgram creates an empty token stream.
func NewProgram() (prog *Program) {
	prog = &Program{}
	prog.Reset()
	return
}

// Reset clears the token stream, labels and files, and rewinds the cursor.
func (prog *Program) Reset() {
	prog.Tokens = prog.Tokens[:0]
	if prog.Label == nil {
		prog.Label = make(map[string]int, 16)
	}
	clear(prog.Label)
	prog.Files = prog.Files[:0]
	prog.DataArea = false
	prog.cursor = 0
	prog.foremost = true
	prog.linked = 0
}

// Len returns the number of tokens in the stream.
func (prog *Program) Len() int {
	return len(prog.Tokens)
}

// AddFile registers a source file name, and returns its index.
func (prog *Program) AddFile(name string) int {
	prog.Files = append(prog.Files, name)
	return len(prog.Files) - 1
}

// FileName returns the name of a file index.
func (prog *Program) FileName(file int) string {
	if file < 0 || file >= len(prog.Files) {
		return "?"
	}
	return prog.Files[file]
}

// Append adds a token to the end of the stream.
func (prog *Program) Append(tok Token) {
	prog.Tokens = append(prog.Tokens, tok)
}

// Define registers a label at the current end of the stream, and appends its
// label token.
func (prog *Program) Define(name string, lineno, file int) (err error) {
	if _, ok := prog.Label[name]; ok {
		err = ErrLabelDuplicate
		return
	}

	pos := prog.Len()
	prog.Label[name] = pos
	prog.Append(Token{Kind: TOKEN_LABEL, Name: name, Value: int64(pos), LineNo: lineno, File: file})

	return
}

// Lookup returns the label token for a label name.
func (prog *Program) Lookup(name string) (tok *Token, err error) {
	pos, ok := prog.Label[name]
	if !ok || pos >= prog.Len() {
		err = ErrLabelMissing(name)
		return
	}

	tok = &prog.Tokens[pos]
	return
}

// Labels iterates over all label names and their stream positions.
func (prog *Program) Labels() iter.Seq2[string, int] {
	return maps.All(prog.Label)
}

// Mark saves the stream length and cursor state.
func (prog *Program) Mark() Mark {
	return Mark{
		length:   prog.Len(),
		cursor:   prog.cursor,
		foremost: prog.foremost,
		linked:   prog.linked,
		dataArea: prog.DataArea,
		files:    len(prog.Files),
	}
}

// Restore trims the stream back to a Mark, dropping all tokens and labels
// appended since, and restores the cursor.
func (prog *Program) Restore(mark Mark) {
	if mark.length < prog.Len() {
		prog.Tokens = prog.Tokens[:mark.length]
	}
	maps.DeleteFunc(prog.Label, func(_ string, pos int) bool {
		return pos >= mark.length
	})
	if mark.files < len(prog.Files) {
		prog.Files = prog.Files[:mark.files]
	}
	prog.cursor = mark.cursor
	prog.foremost = mark.foremost
	prog.linked = mark.linked
	prog.DataArea = mark.dataArea
}

// Cursor returns the current token index.
func (prog *Program) Cursor() int {
	return prog.cursor
}

// Foremost returns true if the cursor has not yet moved onto the first token.
func (prog *Program) Foremost() bool {
	return prog.foremost
}

// Seek moves the cursor. It may be set to -1, so that the following Advance
// lands on the first token.
func (prog *Program) Seek(index int) {
	prog.cursor = index
	prog.foremost = false
}

// Advance moves the cursor to the next token, and returns false at the end
// of the stream.
func (prog *Program) Advance() bool {
	if prog.foremost {
		if prog.Len() == 0 {
			return false
		}
		prog.foremost = false
		prog.cursor = 0
		return true
	}

	if prog.cursor+1 >= prog.Len() {
		return false
	}

	prog.cursor++
	return true
}

// Current returns the token at the cursor, or nil if there is none.
func (prog *Program) Current() *Token {
	if prog.foremost || prog.cursor < 0 || prog.cursor >= prog.Len() {
		return nil
	}
	return &prog.Tokens[prog.cursor]
}

// Peek returns the token after the cursor, or nil at the end of the stream.
func (prog *Program) Peek() *Token {
	next := prog.cursor + 1
	if prog.foremost {
		next = 0
	}
	if next < 0 || next >= prog.Len() {
		return nil
	}
	return &prog.Tokens[next]
}

// Text returns the assembly text of the token group starting at index.
func (prog *Program) Text(index int) string {
	var words []string
	for n := index; n >= 0 && n < prog.Len(); n++ {
		tok := prog.Tokens[n]
		if tok.Eol() {
			break
		}
		words = append(words, tok.String())
	}
	return strings.Join(words, " ")
}
