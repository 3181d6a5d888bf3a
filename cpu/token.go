// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strconv"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_INVALID     = TokenKind(iota) // invalid
	TOKEN_INSTRUCTION                   // instruction
	TOKEN_DIRECTIVE                     // directive
	TOKEN_INTEGER                       // integer
	TOKEN_FLOAT                         // float
	TOKEN_REGISTER                      // register
	TOKEN_MEMORY                        // memory
	TOKEN_DATA                          // data
	TOKEN_LABEL                         // label
	TOKEN_ADDRESS                       // address
	TOKEN_STRING                        // string
	TOKEN_CHAR                          // char
	TOKEN_EOL                           // eol
)

// Token is a single lexical unit of a Program.
//
// Which fields are meaningful depends on Kind:
//   - TOKEN_INSTRUCTION: Op
//   - TOKEN_DIRECTIVE: Directive
//   - TOKEN_INTEGER, TOKEN_CHAR: Value
//   - TOKEN_FLOAT: Float
//   - TOKEN_REGISTER: Register
//   - TOKEN_MEMORY: Register, Value (offset)
//   - TOKEN_DATA: Register, Name (label), Value (offset)
//   - TOKEN_LABEL: Name, Value (stream position), Data (resolved data offset)
//   - TOKEN_ADDRESS: Name (label)
//   - TOKEN_STRING: Name (unescaped text)
//   - TOKEN_INVALID: Name (offending lexeme)
type Token struct {
	Kind      TokenKind
	Op        Op
	Directive Directive
	Value     int64
	Float     float64
	Register  int
	Name      string
	Data      *int // 1-based static data offset, set once by the linker.

	LineNo int
	File   int
}

// Eol returns true for the end-of-line marker.
func (tok *Token) Eol() bool {
	return tok.Kind == TOKEN_EOL
}

// String returns the assembly text form of the token.
func (tok Token) String() (text string) {
	switch tok.Kind {
	case TOKEN_INSTRUCTION:
		text = tok.Op.String()
	case TOKEN_DIRECTIVE:
		text = tok.Directive.String()
	case TOKEN_INTEGER:
		text = strconv.FormatInt(tok.Value, 10)
	case TOKEN_FLOAT:
		text = strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case TOKEN_REGISTER:
		text = RegisterName(tok.Register)
	case TOKEN_MEMORY:
		text = fmt.Sprintf("%d(%v)", tok.Value, RegisterName(tok.Register))
	case TOKEN_DATA:
		if tok.Value != 0 {
			text = fmt.Sprintf("%v%+d(%v)", tok.Name, tok.Value, RegisterName(tok.Register))
		} else {
			text = fmt.Sprintf("%v(%v)", tok.Name, RegisterName(tok.Register))
		}
	case TOKEN_LABEL:
		text = tok.Name + ":"
	case TOKEN_ADDRESS:
		text = tok.Name
	case TOKEN_STRING:
		text = strconv.Quote(tok.Name)
	case TOKEN_CHAR:
		text = strconv.QuoteRune(rune(tok.Value))
	case TOKEN_EOL:
		text = "<eol>"
	default:
		text = fmt.Sprintf("<invalid %q>", tok.Name)
	}

	return
}
