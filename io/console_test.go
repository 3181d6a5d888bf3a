package io

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_ReadLine(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole(strings.NewReader("one\r\ntwo\nthree"), nil)

	line, err := con.ReadLine()
	assert.NoError(err)
	assert.Equal("one", line)

	line, err = con.ReadLine()
	assert.NoError(err)
	assert.Equal("two", line)

	line, err = con.ReadLine()
	assert.NoError(err)
	assert.Equal("three", line)

	_, err = con.ReadLine()
	assert.ErrorIs(err, io.EOF)
}

func TestConsole_NoInput(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	_, err := con.ReadLine()
	assert.ErrorIs(err, io.EOF)

	n, err := con.WriteString("dropped")
	assert.NoError(err)
	assert.Equal(7, n)
}

func TestConsole_WriteFlushes(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	buffered := bufio.NewWriter(out)
	con := NewConsole(nil, buffered)

	_, err := con.WriteString("hello")
	assert.NoError(err)
	assert.Equal("hello", out.String())

	_, err = con.Write([]byte(", world"))
	assert.NoError(err)
	assert.Equal("hello, world", out.String())
}
