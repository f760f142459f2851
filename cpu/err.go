package cpu

import (
	"errors"
	"strings"

	"github.com/gjrchen/UWasic-Training-pt2/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNotProgramming  = errors.New(f("not in programming mode"))
	ErrControlConflict = errors.New(f("pc jump and increment in one clock"))

	// Control store errors
	ErrMicrocodeGap   = errors.New(f("control word undefined"))
	ErrMicrocodeWidth = errors.New(f("control word wider than 15 bits"))
	ErrFetchVariant   = errors.New(f("fetch state depends on opcode"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOrgSyntax          = errors.New(f(".org syntax"))
	ErrOrgBackwards       = errors.New(f(".org moves backwards"))
	ErrByteSyntax         = errors.New(f(".byte syntax"))
	ErrByteRange          = errors.New(f("byte out of range"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOperandRange       = errors.New(f("operand out of range"))
	ErrProgramFull        = errors.New(f("program exceeds memory"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrBusContention is a control word that enables more than one bus driver.
type ErrBusContention struct {
	Word    ControlWord
	Drivers []Driver
}

func (err ErrBusContention) Error() string {
	names := make([]string, len(err.Drivers))
	for n, driver := range err.Drivers {
		names[n] = driver.String()
	}
	return f("bus contention 0x%04x drivers %v", uint16(err.Word), strings.Join(names, ","))
}

func (err ErrBusContention) Is(target error) (ok bool) {
	_, ok = target.(ErrBusContention)
	return
}

// ErrBusFloating is a control word that latches the bus with no driver.
type ErrBusFloating struct {
	Word  ControlWord
	Sinks []Sink
}

func (err ErrBusFloating) Error() string {
	names := make([]string, len(err.Sinks))
	for n, sink := range err.Sinks {
		names[n] = sink.String()
	}
	return f("bus floating 0x%04x sinks %v", uint16(err.Word), strings.Join(names, ","))
}

func (err ErrBusFloating) Is(target error) (ok bool) {
	_, ok = target.(ErrBusFloating)
	return
}

// ErrMicrocode locates a defect in the control store.
type ErrMicrocode struct {
	Opcode CodeOp
	State  State
	Err    error
}

func (err ErrMicrocode) Error() string {
	return f("microcode %v %v: %v", err.Opcode, err.State, err.Err)
}

func (err ErrMicrocode) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
