package cpu

// Control words used by the microprograms.
const (
	CW_IDLE     = CW_ACTIVE_LOW                                                  // No driver, no load.
	CW_FETCH_PC = CW_IDLE&^CW_MAR_ADDR_LOAD | CW_PC_EN                           // MAR <- PC
	CW_FETCH_IR = CW_IDLE&^(CW_MEM_EN|CW_IR_LOAD) | CW_PC_INC                    // IR <- Mem[MAR]; PC <- PC+1
	CW_DECODE   = CW_IDLE &^ CW_IR_EN                                            // IR[low] on bus, no load
	CW_MAR_IR   = CW_IDLE &^ (CW_IR_EN | CW_MAR_ADDR_LOAD)                       // MAR <- IR[low]
	CW_B_MEM    = CW_IDLE &^ (CW_MEM_EN | CW_B_LOAD)                             // B <- Mem[MAR]
	CW_A_ADD    = CW_IDLE&^CW_ACC_LOAD | CW_AU_EN                                // A <- A+B
	CW_A_SUB    = CW_A_ADD | CW_SUB                                              // A <- A-B
	CW_A_MEM    = CW_IDLE &^ (CW_MEM_EN | CW_ACC_LOAD)                           // A <- Mem[MAR]
	CW_O_A      = CW_IDLE&^CW_OUT_LOAD | CW_ACC_EN                               // O <- A
	CW_MEM_A    = CW_IDLE&^(CW_MAR_DATA_LOAD|CW_MEM_WRITE|CW_MEM_EN) | CW_ACC_EN // Mem[MAR] <- A
	CW_PC_IR    = CW_IDLE&^CW_IR_EN | CW_PC_JUMP                                 // PC <- IR[low]
)

// Microcode is the control store, indexed by opcode and T-state.
type Microcode [OPCODE_COUNT][STAGE_COUNT]ControlWord

var microcode = Microcode{
	OP_HLT: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_IDLE, CW_IDLE, CW_IDLE},
	OP_NOP: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_IDLE, CW_IDLE, CW_IDLE},
	OP_ADD: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_MAR_IR, CW_B_MEM, CW_A_ADD},
	OP_SUB: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_MAR_IR, CW_B_MEM, CW_A_SUB},
	OP_LDA: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_MAR_IR, CW_A_MEM, CW_IDLE},
	OP_OUT: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_O_A, CW_IDLE, CW_IDLE},
	OP_STA: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_MAR_IR, CW_MEM_A, CW_IDLE},
	OP_JMP: {CW_FETCH_PC, CW_FETCH_IR, CW_DECODE, CW_IDLE, CW_PC_IR, CW_IDLE, CW_IDLE},
}

func init() {
	err := microcode.Check()
	if err != nil {
		panic(err)
	}
}

// Lookup returns the control word for the opcode in the state. A halted
// sequencer emits the idle word.
func (mc *Microcode) Lookup(op CodeOp, state State) ControlWord {
	if state == STATE_HALT {
		return CW_IDLE
	}
	return mc[op&OPCODE_MASK][state]
}

// Check verifies the control store is total, every word obeys the bus
// discipline, and the fetch states do not depend on the opcode.
func (mc *Microcode) Check() (err error) {
	for op := range OPCODE_COUNT {
		for state := range STAGE_COUNT {
			cw := mc[op][state]
			switch {
			case cw == 0:
				err = ErrMicrocodeGap
			case State(state).Fetch() && cw != mc[0][state]:
				err = ErrFetchVariant
			default:
				err = cw.Check()
			}
			if err != nil {
				err = ErrMicrocode{Opcode: CodeOp(op), State: State(state), Err: err}
				return
			}
		}
	}

	return
}

// Table returns a copy of the control store.
func (mc *Microcode) Table() Microcode {
	return *mc
}

// ControlStore returns a copy of the machine's control store.
func ControlStore() Microcode {
	return microcode.Table()
}
