// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reDecimal    = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reFloat      = regexp.MustCompile(`^[+-]?[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?$`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	reDataOffset = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)([+-][0-9]+)?$`)
)

// Assembler is a line at a time tokenizer, appending to a Program.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Program *Program // Token stream being built.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of .eqv equates.
}

// NewAssembler creates an assembler appending to prog.
func NewAssembler(prog *Program) (asm *Assembler) {
	asm = &Assembler{
		Program: prog,
	}
	asm.Reset()

	return
}

// Predefine defines a new equate or redefines an existing equate. Predefines
// survive Reset.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
	if asm.Equate != nil {
		asm.Equate[equ] = value
	}
}

// Reset drops all equates, except for the predefines.
func (asm *Assembler) Reset() {
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}
}

// Parse registers a source file, and tokenizes all of its lines.
func (asm *Assembler) Parse(name string, input io.Reader) (err error) {
	file := asm.Program.AddFile(name)

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno++
		err = asm.ParseLine(scanner.Text(), lineno, file)
		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}

// ParseLine tokenizes a single line of source. On success the tokens are
// appended, terminated by an end-of-line token; blank and comment lines
// append nothing. On failure nothing is appended.
func (asm *Assembler) ParseLine(line string, lineno int, file int) (err error) {
	prog := asm.Program
	mark := prog.Mark()

	var word string
	defer func() {
		if err != nil {
			prog.Restore(mark)
			if len(word) != 0 {
				err = &ErrWord{Word: word, Err: err}
			}
			err = &ErrSyntax{File: prog.FileName(file), LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Verbose {
		log.Printf("asm: %v:%v: %v", prog.FileName(file), lineno, line)
	}

	words, err := splitWords(line)
	if err != nil {
		return
	}

	if len(words) == 0 {
		return
	}

	// .eqv NAME VALUE
	if strings.ToLower(words[0]) == ".eqv" {
		if len(words) != 3 || !reIdentifier.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		if _, ok := asm.Equate[words[1]]; ok {
			word = words[1]
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		if equate, ok := asm.Equate[word]; ok {
			words[n] = equate
		}
	}

	for n := 0; n < len(words); n++ {
		word = words[n]

		switch {
		case isLabelDefinition(word):
			name := word[:len(word)-1]
			if !reIdentifier.MatchString(name) {
				err = ErrLabelInvalid
				return
			}
			err = prog.Define(name, lineno, file)
			if err != nil {
				return
			}
		case word[0] == '.':
			var consumed int
			consumed, err = asm.directive(word, words[n+1:], lineno, file)
			if err != nil {
				return
			}
			n += consumed
		default:
			var tok Token
			tok, err = asm.classify(word)
			if err != nil {
				return
			}
			tok.LineNo = lineno
			tok.File = file
			prog.Append(tok)
		}
	}
	word = ""

	prog.Append(Token{Kind: TOKEN_EOL, LineNo: lineno, File: file})

	return
}

func isLabelDefinition(word string) bool {
	return len(word) > 1 && word[len(word)-1] == ':' && word[0] != '"' && word[0] != '\''
}

// scanQuote returns the index of the quote closing the one at start, or -1.
func scanQuote(line string, start int) int {
	quote := line[start]
	for n := start + 1; n < len(line); n++ {
		switch line[n] {
		case '\\':
			n++
		case quote:
			return n
		}
	}
	return -1
}

// scanParen returns the index of the parenthesis closing the one at start, or -1.
func scanParen(line string, start int) int {
	depth := 0
	for n := start; n < len(line); n++ {
		switch line[n] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return n
			}
		case '"', '\'':
			end := scanQuote(line, n)
			if end < 0 {
				return -1
			}
			n = end
		}
	}
	return -1
}

// splitWords splits a line on whitespace and commas, up to a '#' comment.
// Quoted strings, quoted characters and $(...) expressions are kept whole.
func splitWords(line string) (words []string, err error) {
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for n := 0; n < len(line); n++ {
		c := line[n]
		switch {
		case c == '#':
			flush()
			return
		case c == ' ' || c == '\t' || c == ',' || c == '\r' || c == '\n':
			flush()
		case c == '"' || c == '\'':
			end := scanQuote(line, n)
			if end < 0 {
				err = &ErrWord{Word: line[n:], Err: ErrQuoteUnterminated}
				return
			}
			word.WriteString(line[n : end+1])
			n = end
		case c == '$' && n+1 < len(line) && line[n+1] == '(':
			end := scanParen(line, n+1)
			if end < 0 {
				err = ErrParseExpression(line[n+2:])
				return
			}
			word.WriteString(line[n : end+1])
			n = end
		default:
			word.WriteByte(c)
		}
	}
	flush()

	return
}

// unescape expands the escape sequences of a quoted literal body.
func unescape(body string) (text string, err error) {
	var out strings.Builder
	for n := 0; n < len(body); n++ {
		c := body[n]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		n++
		if n == len(body) {
			err = ErrEscapeInvalid
			return
		}
		switch body[n] {
		case '\\':
			out.WriteByte('\\')
		case '\'':
			out.WriteByte('\'')
		case '"':
			out.WriteByte('"')
		case '0':
			out.WriteByte(0)
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		default:
			err = ErrEscapeInvalid
			return
		}
	}

	text = out.String()
	return
}

// parseHex accumulates the digits of a hexadecimal literal.
func parseHex(digits string) (value int64, err error) {
	if len(digits) == 0 {
		err = ErrHexInvalid
		return
	}

	var acc uint64
	for _, c := range []byte(strings.ToLower(digits)) {
		switch {
		case c >= '0' && c <= '9':
			acc = (acc << 4) | uint64(c-'0')
		case c >= 'a' && c <= 'f':
			acc = (acc << 4) | uint64(c-'a'+10)
		default:
			err = ErrHexInvalid
			return
		}
		if acc > 0xffff_ffff {
			err = ErrValueRange
			return
		}
	}

	value = int64(acc)
	return
}

// parseInteger parses a decimal or hexadecimal literal. ok is false if the
// word is not shaped like a number at all.
func parseInteger(word string) (value int64, ok bool, err error) {
	body := word
	negative := false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		negative = body[0] == '-'
		body = body[1:]
	}

	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		ok = true
		value, err = parseHex(body[2:])
		if negative {
			value = -value
		}
		if err == nil && value < -0x8000_0000 {
			err = ErrValueRange
		}
		return
	}

	if !reDecimal.MatchString(word) {
		return
	}

	ok = true
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil || value < -0x8000_0000 || value > 0xffff_ffff {
		err = ErrValueRange
	}

	return
}

// parseChar parses a quoted character literal into its byte value.
func parseChar(word string) (value int64, err error) {
	if len(word) < 2 || word[len(word)-1] != '\'' {
		err = ErrQuoteUnterminated
		return
	}
	text, err := unescape(word[1 : len(word)-1])
	if err != nil {
		return
	}
	if len(text) != 1 {
		err = ErrCharInvalid
		return
	}
	value = int64(text[0])
	return
}

// parseString parses a quoted string literal.
func parseString(word string) (text string, err error) {
	if len(word) < 2 || word[len(word)-1] != '"' {
		err = ErrQuoteUnterminated
		return
	}
	return unescape(word[1 : len(word)-1])
}

// isExpression returns true for a whole $(...) word.
func isExpression(word string) bool {
	return strings.HasPrefix(word, "$(") && scanParen(word, 1) == len(word)-1
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, ok, perr := parseInteger(str)
		if !ok || perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok || value < -0x8000_0000 || value > 0xffff_ffff {
		err = errors.Join(ErrParseExpression(expr), ErrValueRange)
		return
	}
	return
}

// value parses an integer, character literal, or $(...) expression.
func (asm *Assembler) value(word string) (value int64, err error) {
	switch {
	case word[0] == '\'':
		return parseChar(word)
	case isExpression(word):
		return asm.parenEval(word[2 : len(word)-1])
	}

	value, ok, err := parseInteger(word)
	if err == nil && !ok {
		err = ErrNumberInvalid
	}
	return
}

// register parses a general purpose register name.
func register(word string) (index int, err error) {
	index, ok := LookupRegister(word)
	if !ok || index >= REGISTER_GENERAL {
		err = ErrRegisterInvalid
	}
	return
}

// addressing parses the offset(register) and label(register) forms.
func (asm *Assembler) addressing(word string) (tok Token, err error) {
	open := strings.LastIndexByte(word, '(')
	base, err := register(word[open+1 : len(word)-1])
	if err != nil {
		return
	}

	prefix := word[:open]
	if len(prefix) == 0 {
		tok = Token{Kind: TOKEN_MEMORY, Register: base}
		return
	}

	if prefix[0] == '\'' || isExpression(prefix) {
		var offset int64
		offset, err = asm.value(prefix)
		tok = Token{Kind: TOKEN_MEMORY, Register: base, Value: offset}
		return
	}

	offset, ok, err := parseInteger(prefix)
	if err != nil {
		return
	}
	if ok {
		tok = Token{Kind: TOKEN_MEMORY, Register: base, Value: offset}
		return
	}

	match := reDataOffset.FindStringSubmatch(prefix)
	if match == nil {
		err = ErrLabelInvalid
		return
	}
	tok = Token{Kind: TOKEN_DATA, Register: base, Name: match[1]}
	if len(match[2]) > 0 {
		tok.Value, err = strconv.ParseInt(match[2], 10, 32)
		if err != nil {
			err = ErrValueRange
		}
	}

	return
}

// classify turns an operand or mnemonic word into a token.
func (asm *Assembler) classify(word string) (tok Token, err error) {
	switch {
	case word[0] == '"':
		tok.Kind = TOKEN_STRING
		tok.Name, err = parseString(word)
		return
	case word[0] == '\'':
		tok.Kind = TOKEN_CHAR
		tok.Value, err = parseChar(word)
		return
	case isExpression(word):
		tok.Kind = TOKEN_INTEGER
		tok.Value, err = asm.parenEval(word[2 : len(word)-1])
		return
	case len(word) > 2 && word[len(word)-1] == ')' && strings.Contains(word, "("):
		return asm.addressing(word)
	case word[0] == '$':
		index, ok := LookupRegister(word)
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		tok = Token{Kind: TOKEN_REGISTER, Register: index}
		return
	}

	value, ok, err := parseInteger(word)
	if err != nil {
		return
	}
	if ok {
		tok = Token{Kind: TOKEN_INTEGER, Value: value}
		return
	}

	if reFloat.MatchString(word) {
		tok.Kind = TOKEN_FLOAT
		tok.Float, err = strconv.ParseFloat(word, 64)
		return
	}

	if op, ok := LookupOp(word); ok {
		tok = Token{Kind: TOKEN_INSTRUCTION, Op: op}
		return
	}

	tok = Token{Kind: TOKEN_ADDRESS, Name: word}
	return
}

// splitCount splits a value:count data element.
func splitCount(elem string) (value string, count int, err error) {
	value = elem
	count = 1

	colon := strings.LastIndexByte(elem, ':')
	if colon <= 0 || colon == len(elem)-1 {
		return
	}
	if elem[0] == '\'' && elem[colon-1] != '\'' {
		return
	}
	suffix := elem[colon+1:]
	if !reDecimal.MatchString(suffix) {
		return
	}

	count, err = strconv.Atoi(suffix)
	if err != nil || count < 0 || count > DATA_LIMIT {
		err = ErrValueRange
		return
	}
	value = elem[:colon]
	return
}

// truncate range checks a data value for a width in bytes, accepting signed
// and unsigned forms, then narrows it to a signed value of that width.
func truncate(value int64, width int) (out int64, err error) {
	bits := uint(8 * width)
	if value < -(int64(1)<<(bits-1)) || value > (int64(1)<<bits)-1 {
		err = ErrValueRange
		return
	}
	switch width {
	case 4:
		out = int64(int32(uint32(value)))
	case 2:
		out = int64(int16(uint16(value)))
	default:
		out = int64(int8(uint8(value)))
	}
	return
}

// directive appends a directive and its payload, consuming words from rest.
func (asm *Assembler) directive(word string, rest []string, lineno int, file int) (consumed int, err error) {
	prog := asm.Program
	at := func(tok Token) {
		tok.LineNo = lineno
		tok.File = file
		prog.Append(tok)
	}

	dir, ok := directiveMap[strings.ToLower(word)]
	if !ok || dir == DIR_EQV {
		// Carried forward, fails when linked or executed.
		at(Token{Kind: TOKEN_INVALID, Name: word})
		consumed = len(rest)
		return
	}

	at(Token{Kind: TOKEN_DIRECTIVE, Directive: dir})

	switch dir {
	case DIR_TEXT, DIR_DATA:
		if len(rest) != 0 {
			err = ErrDirectiveSyntax
		}
	case DIR_GLOBL:
		if len(rest) != 1 || !reIdentifier.MatchString(rest[0]) {
			err = ErrDirectiveSyntax
			return
		}
		at(Token{Kind: TOKEN_ADDRESS, Name: rest[0]})
		consumed = 1
	case DIR_WORD, DIR_HALF, DIR_BYTE:
		if len(rest) == 0 {
			err = ErrDirectiveSyntax
			return
		}
		width := dir.Width()
		for _, elem := range rest {
			var text string
			var count int
			var value int64
			text, count, err = splitCount(elem)
			if err != nil {
				return
			}
			if count*width > DATA_LIMIT {
				err = ErrValueRange
				return
			}
			value, err = asm.value(text)
			if err != nil {
				return
			}
			value, err = truncate(value, width)
			if err != nil {
				return
			}
			for range count {
				at(Token{Kind: TOKEN_INTEGER, Value: value})
			}
		}
		consumed = len(rest)
	case DIR_SPACE, DIR_ALIGN:
		if len(rest) != 1 {
			err = ErrDirectiveSyntax
			return
		}
		var value int64
		value, err = asm.value(rest[0])
		if err != nil {
			return
		}
		if value < 0 || value > DATA_LIMIT || (dir == DIR_ALIGN && value > 16) {
			err = ErrValueRange
			return
		}
		at(Token{Kind: TOKEN_INTEGER, Value: value})
		consumed = 1
	case DIR_ASCII, DIR_ASCIIZ:
		if len(rest) != 1 || rest[0][0] != '"' {
			err = ErrDirectiveSyntax
			return
		}
		var text string
		text, err = parseString(rest[0])
		if err != nil {
			return
		}
		at(Token{Kind: TOKEN_STRING, Name: text})
		consumed = 1
	}

	return
}
