// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strings"
)

// Op is a canonical instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INVALID = Op(iota) // invalid

	// Arithmetic and logic
	OP_ADD   // add
	OP_ADDI  // addi
	OP_ADDU  // addu
	OP_ADDIU // addiu
	OP_SUB   // sub
	OP_SUBU  // subu
	OP_MUL   // mul
	OP_REM   // rem
	OP_REMU  // remu
	OP_AND   // and
	OP_ANDI  // andi
	OP_OR    // or
	OP_ORI   // ori
	OP_XOR   // xor
	OP_XORI  // xori
	OP_NOR   // nor
	OP_SLL   // sll
	OP_SLLV  // sllv
	OP_SRA   // sra
	OP_SRAV  // srav
	OP_SRL   // srl
	OP_SRLV  // srlv
	OP_CLO   // clo
	OP_CLZ   // clz
	OP_ROR   // ror
	OP_ROL   // rol
	OP_NOT   // not
	OP_NEG   // neg
	OP_NEGU  // negu

	// Wide multiply and divide
	OP_DIV   // div
	OP_DIVU  // divu
	OP_MULT  // mult
	OP_MULTU // multu
	OP_MADD  // madd
	OP_MADDU // maddu
	OP_MSUB  // msub
	OP_MSUBU // msubu
	OP_MFHI  // mfhi
	OP_MFLO  // mflo
	OP_MTHI  // mthi
	OP_MTLO  // mtlo

	// Constants
	OP_LI  // li
	OP_LUI // lui

	// Comparison
	OP_SLT  // slt
	OP_SLTI // slti
	OP_SEQ  // seq
	OP_SGE  // sge
	OP_SGT  // sgt
	OP_SLE  // sle
	OP_SNE  // sne

	// Branch
	OP_B    // b
	OP_BEQ  // beq
	OP_BNE  // bne
	OP_BGE  // bge
	OP_BGT  // bgt
	OP_BLE  // ble
	OP_BLT  // blt
	OP_BEQZ // beqz
	OP_BNEZ // bnez
	OP_BGEZ // bgez
	OP_BGTZ // bgtz
	OP_BLEZ // blez
	OP_BLTZ // bltz

	// Jump
	OP_J    // j
	OP_JAL  // jal
	OP_JR   // jr
	OP_JALR // jalr

	// Load and store
	OP_LA // la
	OP_LB // lb
	OP_LH // lh
	OP_LW // lw
	OP_SB // sb
	OP_SH // sh
	OP_SW // sw

	// Transfer
	OP_MOVE // move

	// System
	OP_SYSCALL // syscall

	// Extensions
	OP_PRTN // prtn
	OP_PRTI // prti
	OP_PRTH // prth
	OP_PRTX // prtx
	OP_PRTC // prtc
	OP_PRTS // prts
	OP_RST  // rst
	OP_NOP  // nop

	// Floating point, declared only
	OP_ADD_S // add.s
	OP_SUB_S // sub.s
	OP_MUL_S // mul.s
	OP_DIV_S // div.s
	OP_MOV_S // mov.s
	OP_ADD_D // add.d
	OP_SUB_D // sub.d
	OP_MUL_D // mul.d
	OP_DIV_D // div.d
	OP_MOV_D // mov.d
	OP_LWC1  // lwc1
	OP_SWC1  // swc1
	OP_L_S   // l.s
	OP_S_S   // s.s
	OP_L_D   // l.d
	OP_S_D   // s.d
)

const opCount = OP_S_D + 1

// opAlias maps mnemonics that collapse onto another canonical instruction.
// Unsigned comparisons and loads share the signed implementation.
var opAlias = map[string]Op{
	"sltu":  OP_SLT,
	"sltiu": OP_SLTI,
	"sgeu":  OP_SGE,
	"sgtu":  OP_SGT,
	"sleu":  OP_SLE,
	"bgeu":  OP_BGE,
	"bgtu":  OP_BGT,
	"bleu":  OP_BLE,
	"bltu":  OP_BLT,
	"lbu":   OP_LB,
	"lhu":   OP_LH,
}

var mnemonicMap = func() map[string]Op {
	mnemonics := make(map[string]Op, int(opCount)+len(opAlias))
	for op := OP_INVALID + 1; op < opCount; op++ {
		mnemonics[op.String()] = op
	}
	for name, op := range opAlias {
		mnemonics[name] = op
	}
	return mnemonics
}()

// LookupOp finds the canonical instruction for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(mnemonic)]
	return
}

// Mnemonics returns every recognized mnemonic, aliases included.
func Mnemonics() (names []string) {
	for name := range mnemonicMap {
		names = append(names, name)
	}
	return
}

// Float returns true for the declared, unimplemented, floating point instructions.
func (op Op) Float() bool {
	return op >= OP_ADD_S && op < opCount
}

// Directive is an assembler directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIR_INVALID = Directive(iota) // .invalid
	DIR_TEXT                      // .text
	DIR_DATA                      // .data
	DIR_GLOBL                     // .globl
	DIR_WORD                      // .word
	DIR_HALF                      // .half
	DIR_BYTE                      // .byte
	DIR_SPACE                     // .space
	DIR_ASCII                     // .ascii
	DIR_ASCIIZ                    // .asciiz
	DIR_ALIGN                     // .align
	DIR_EQV                       // .eqv
)

var directiveMap = map[string]Directive{
	".text":   DIR_TEXT,
	".data":   DIR_DATA,
	".globl":  DIR_GLOBL,
	".global": DIR_GLOBL,
	".word":   DIR_WORD,
	".half":   DIR_HALF,
	".byte":   DIR_BYTE,
	".space":  DIR_SPACE,
	".ascii":  DIR_ASCII,
	".asciiz": DIR_ASCIIZ,
	".align":  DIR_ALIGN,
	".eqv":    DIR_EQV,
}

// Width returns the byte width of a data element for .word, .half and .byte.
func (dir Directive) Width() int {
	switch dir {
	case DIR_WORD:
		return 4
	case DIR_HALF:
		return 2
	case DIR_BYTE:
		return 1
	}
	return 0
}
