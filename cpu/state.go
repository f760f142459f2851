package cpu

// State is a sequencer position. STATE_HALT is the terminal state entered
// from T6 of HLT, left only by reset.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_T0   = State(0) // T0
	STATE_T1   = State(1) // T1
	STATE_T2   = State(2) // T2
	STATE_T3   = State(3) // T3
	STATE_T4   = State(4) // T4
	STATE_T5   = State(5) // T5
	STATE_T6   = State(6) // T6
	STATE_HALT = State(7) // HLT
)

const (
	STAGE_COUNT = 7 // T-states per instruction.
	FETCH_COUNT = 3 // Opcode independent T-states.
)

// Next returns the state following this one, given the decoded opcode.
func (state State) Next(op CodeOp) State {
	switch state {
	case STATE_HALT:
		return STATE_HALT
	case STATE_T6:
		if op == OP_HLT {
			return STATE_HALT
		}
		return STATE_T0
	default:
		return state + 1
	}
}

// Stage returns the cycle counter value 0..6. A halted sequencer is parked at T6.
func (state State) Stage() int {
	if state == STATE_HALT {
		return int(STATE_T6)
	}
	return int(state)
}

// Fetch returns true for the opcode independent states T0..T2.
func (state State) Fetch() bool {
	return state < FETCH_COUNT
}
