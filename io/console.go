// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the console channel used by the interpreter for
// program input and output.
//
// Input is consumed a line at a time, and shared between the interactive
// session and the running program. Output is flushed after every print.
package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader yields one line of input at a time, without the line terminator.
type LineReader interface {
	ReadLine() (line string, err error)
}

// Flusher is implemented by buffered writers.
type Flusher interface {
	Flush() error
}

// Console is the standard input/output pair of the interpreter.
type Console struct {
	Input  LineReader
	Output io.Writer
}

// NewConsole creates a console reading lines from input and writing to output.
func NewConsole(input io.Reader, output io.Writer) (con *Console) {
	con = &Console{
		Output: output,
	}
	if input != nil {
		con.Input = NewLineReader(input)
	}

	return
}

// ReadLine reads the next line of input.
// A final line without a terminator is returned with a nil error.
func (con *Console) ReadLine() (line string, err error) {
	if con.Input == nil {
		err = io.EOF
		return
	}

	return con.Input.ReadLine()
}

// WriteString writes text to the output and flushes it.
func (con *Console) WriteString(text string) (n int, err error) {
	if con.Output == nil {
		return len(text), nil
	}

	n, err = io.WriteString(con.Output, text)
	if err != nil {
		return
	}

	if fl, ok := con.Output.(Flusher); ok {
		err = fl.Flush()
	}

	return
}

// Write implements io.Writer, flushing after every write.
func (con *Console) Write(data []byte) (n int, err error) {
	return con.WriteString(string(data))
}

type bufferedLines struct {
	reader *bufio.Reader
}

// NewLineReader wraps an io.Reader as a LineReader.
func NewLineReader(input io.Reader) LineReader {
	return &bufferedLines{reader: bufio.NewReader(input)}
}

func (bl *bufferedLines) ReadLine() (line string, err error) {
	line, err = bl.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) > 0 {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")

	return
}
