package cpu

import (
	"fmt"
)

// CodeOp is the instruction class, decoded from the high nibble of the
// instruction byte.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT = CodeOp(0) // HLT
	OP_NOP = CodeOp(1) // NOP
	OP_ADD = CodeOp(2) // ADD
	OP_SUB = CodeOp(3) // SUB
	OP_LDA = CodeOp(4) // LDA
	OP_OUT = CodeOp(5) // OUT
	OP_STA = CodeOp(6) // STA
	OP_JMP = CodeOp(7) // JMP
)

const (
	OPCODE_COUNT = 8   // Populated opcode space.
	OPCODE_MASK  = 0x7 // Effective opcode bits of the high nibble.
	OPERAND_MASK = 0xf // Operand bits of the low nibble.
)

// HasOperand returns true if the instruction uses its low nibble.
func (op CodeOp) HasOperand() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_LDA, OP_STA, OP_JMP:
		return true
	}
	return false
}

// Opcode represents a line of assembled code with its source location and
// generated bytes.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Code is a single instruction byte.
type Code uint8

// MakeCode creates an instruction byte from an opcode and operand.
func MakeCode(op CodeOp, operand uint8) Code {
	return Code((uint8(op)&OPCODE_MASK)<<4 | (operand & OPERAND_MASK))
}

// Opcode returns the effective opcode. Opcodes 8 through 15 alias 0 through 7.
func (code Code) Opcode() CodeOp {
	return CodeOp((uint8(code) >> 4) & OPCODE_MASK)
}

// Operand returns the low nibble, an address or jump target.
func (code Code) Operand() uint8 {
	return uint8(code) & OPERAND_MASK
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	op := code.Opcode()
	if !op.HasOperand() {
		return op.String()
	}
	return fmt.Sprintf("%v 0x%x", op, code.Operand())
}
