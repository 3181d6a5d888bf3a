// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"github.com/ezrec/mipsi/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrRegisterInvalid   = translate.Error("register invalid")
	ErrNumberInvalid     = translate.Error("number invalid")
	ErrHexInvalid        = translate.Error("hexadecimal digit invalid")
	ErrEscapeInvalid     = translate.Error("escape sequence invalid")
	ErrQuoteUnterminated = translate.Error("unterminated quote")
	ErrCharInvalid       = translate.Error("character literal invalid")
	ErrLabelDuplicate    = translate.Error("label duplicated")
	ErrLabelInvalid      = translate.Error("label invalid")
	ErrDirectiveSyntax   = translate.Error("directive syntax")
	ErrValueRange        = translate.Error("value out of range")
	ErrEquateSyntax      = translate.Error(".eqv syntax")
	ErrEquateDuplicate   = translate.Error(".eqv duplicated")

	// Structural errors
	ErrOperandMissing   = translate.Error("operand missing")
	ErrOperandInvalid   = translate.Error("operand invalid")
	ErrExtraOperand     = translate.Error("expected end of line")
	ErrTokenUnexpected  = translate.Error("unexpected token")
	ErrDirectiveInvalid = translate.Error("directive invalid")

	// Arithmetic errors
	ErrOverflow     = translate.Error("arithmetic overflow")
	ErrDivideByZero = translate.Error("division by zero")

	// Runtime errors
	ErrAddressInvalid = translate.Error("address invalid")
	ErrStackLimit     = translate.Error("stack limit exceeded")
	ErrDataFull       = translate.Error("static data segment full")
	ErrHeapFull       = translate.Error("dynamic data segment full")
	ErrJumpInvalid    = translate.Error("jump target invalid")
	ErrSyscallInvalid = translate.Error("syscall invalid")
	ErrReadInt        = translate.Error("read integer")
	ErrNotImplemented = translate.Error("instruction not implemented")
)

// ErrLabelMissing indicates a reference to a label that was never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrWord names the lexeme that failed to tokenize.
type ErrWord struct {
	Word string
	Err  error
}

func (err *ErrWord) Error() string {
	return f("'%v' %v", err.Word, err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}

// ErrToken names the token that failed to execute.
type ErrToken struct {
	Token Token
	Err   error
}

func (err *ErrToken) Error() string {
	return f("%v: %v", err.Token.String(), err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrAddress reports a memory access outside of every segment.
type ErrAddress int32

func (ea ErrAddress) Error() string {
	return f("address 0x%08x invalid", uint32(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressInvalid
}

// ErrSyscall reports an unknown system call code.
type ErrSyscall int32

func (es ErrSyscall) Error() string {
	return f("syscall %v invalid", int32(es))
}

func (es ErrSyscall) Is(err error) bool {
	return err == ErrSyscallInvalid
}

// ErrParseExpression reports a failed $(...) evaluation.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax is a lexical error, located at a source line.
type ErrSyntax struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("%v:%d '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrLocation is a structural or runtime error, located at a source line.
type ErrLocation struct {
	File   string
	LineNo int
	Err    error
}

func (err *ErrLocation) Error() string {
	return f("%v:%d %v", err.File, err.LineNo, err.Err)
}

func (err *ErrLocation) Unwrap() error {
	return err.Err
}
