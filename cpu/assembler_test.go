package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("16", asm.Equate["MEM_SIZE"])
	assert.Equal("15", asm.Equate["MEM_LAST"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"hlt",
		"NOP",
		"add 0xe",
		"Sub 15",
		"lda 1",
		"out",
		"sta 0x3",
		"jmp 0",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{1, 0, []string{"hlt"}, []Code{0x00}, ""},
		{2, 1, []string{"NOP"}, []Code{0x10}, ""},
		{3, 2, []string{"add", "0xe"}, []Code{0x2e}, ""},
		{4, 3, []string{"Sub", "15"}, []Code{0x3f}, ""},
		{5, 4, []string{"lda", "1"}, []Code{0x41}, ""},
		{6, 5, []string{"out"}, []Code{0x50}, ""},
		{7, 6, []string{"sta", "0x3"}, []Code{0x63}, ""},
		{8, 7, []string{"jmp", "0"}, []Code{0x70}, ""},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerByte(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"lda DATA ; load",
		"out",
		".org 0xd",
		"DATA: .byte 0x10 -1 'A'",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{1, 0, []string{"lda", "DATA"}, []Code{0x4d}, "DATA"},
		{2, 1, []string{"out"}, []Code{0x50}, ""},
		{4, 13, []string{".byte", "0x10", "-1", "65"}, []Code{0x10, 0xff, 0x41}, ""},
	}

	opEqual(t, expected, prog.Opcodes)
	assert.Equal(13, asm.Label["DATA"])
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x8")
	program := []string{
		".equ ONE 1",
		"lda ONE",
		"add $(ONE + ONE)",
		".equ THREE $(2 * ONE + ONE)",
		"sub THREE",
		"sta $(LINENO + 1)",
		"jmp $(BASE + ONE)",
		"jmp $(MEM_LAST)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(errors.Unwrap(err))
	}

	var codes []Code
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}
	assert.Equal([]Code{0x41, 0x22, 0x33, 0x67, 0x79, 0x7f}, codes)
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro ACCUM x y",
		"lda x",
		"add y",
		".endm",
		"ACCUM 14 15",
		".equ LAST 15",
		"ACCUM LAST $(LAST - 2)",
		".macro SPIN",
		"@loop: jmp @loop",
		".endm",
		"SPIN",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, 0, []string{"lda", "14"}, []Code{0x4e}, ""},
		{3, 1, []string{"add", "15"}, []Code{0x2f}, ""},
		{2, 2, []string{"lda", "15"}, []Code{0x4f}, ""},
		{3, 3, []string{"add", "13"}, []Code{0x2d}, ""},
		{9, 4, []string{"jmp", "SPIN_3_loop"}, []Code{0x74}, "SPIN_3_loop"},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerMacroLocalLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro SPIN",
		"@loop: jmp @loop",
		".endm",
		"SPIN",
		"SPIN",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, 0, []string{"jmp", "SPIN_1_loop"}, []Code{0x70}, "SPIN_1_loop"},
		{2, 1, []string{"jmp", "SPIN_2_loop"}, []Code{0x71}, "SPIN_2_loop"},
	}

	opEqual(t, expected, prog.Opcodes)

	// Expansion numbering restarts with each Parse.
	prog, err = asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err == nil {
		assert.Equal("SPIN_1_loop", prog.Opcodes[0].LinkLabel)
	}
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"jmp START",
		"ONE: .byte 1",
		"START: AND_ALSO:",
		"lda ONE",
		"",
		"LOOP: add ONE",
		"out",
		"jmp LOOP",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(6, len(prog.Opcodes))
	assert.Equal(2, asm.Label["START"])
	assert.Equal(2, asm.Label["AND_ALSO"])
	assert.Equal(
		[MEM_SIZE]uint8{0x72, 0x01, 0x41, 0x21, 0x50, 0x73},
		prog.Binary())
}

func TestAssemblerFull(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".org MEM_LAST",
		"hlt",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(1, len(prog.Opcodes))
	assert.Equal(15, prog.Opcodes[0].Addr)

	_, err = asm.Parse(strings.NewReader(".org MEM_LAST\n.byte 1 2\n"))
	assert.ErrorIs(err, ErrProgramFull)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate},
		{"lda nothing", 1, nil},
		{"lda $(\"aaa\")", 1, nil},
		{"lda $(more(\"aaa\"))", 1, nil},
		{"lda 16", 1, ErrOperandRange},
		{"lda -1", 1, ErrOperandRange},
		{"lda 0x10000", 1, ErrOperandRange},
		{"lda '", 1, ErrParseCharacter("")},
		{"lda 'ab", 1, ErrParseCharacter("ab")},
		{".byte 70000", 1, ErrByteRange},
		{".org 0x10000", 1, ErrProgramFull},
		{"lda", 1, ErrOpcodeValueMissing},
		{"lda 1 2", 1, ErrOpcodeExtraArgs},
		{"out 1", 1, ErrOpcodeExtraArgs},
		{"hlt now", 1, ErrOpcodeExtraArgs},
		{"mul 3", 1, ErrInstructionInvalid},
		{".equ", 1, ErrEquateSyntax},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".macro A B C\n.endm\nA 1\n", 3, ErrMacroSyntax},
		{".macro A B C\nB C\n.endm\nA lda 1\nA mul 1\n", 5, ErrInstructionInvalid},
		{".macro A B\n.macro C\n.endm\n.endm", 2, ErrMacroNesting},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3, ErrMacroDuplicate},
		{".macro\n", 1, ErrMacroSyntax},
		{".macro A B\n.endm\n.endm\n", 3, ErrMacroLonelyEndm},
		{".macro A\nlda 1\n", 2, ErrMacroLonely},
		{".org", 1, ErrOrgSyntax},
		{"nop\nnop\n.org 1", 3, ErrOrgBackwards},
		{".org 17", 1, ErrProgramFull},
		{".byte", 1, ErrByteSyntax},
		{".byte 0x100", 1, ErrByteRange},
		{".byte -129", 1, ErrByteRange},
		{".org 15\nnop\nnop\n", 3, ErrProgramFull},
		{"jmp nowhere", 1, ErrLabelMissing("nowhere")},
		{"jmp END\n.org 15\nhlt\nEND:\n", 1, ErrOperandRange},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			if entry.err != nil {
				assert.ErrorIs(err, entry.err, entry.prog)
			}
		}
	}
}
