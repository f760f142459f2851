// Package cpu implements the microarchitecture and assembler for the SAP-1
// style accumulator machine.
//
// The datapath consists of an accumulator (A), an operand register (B), an
// instruction register (IR), a memory address register (MAR) with a data
// latch, a 4-bit program counter (PC), an output register (O), an adder
// with carry and zero flags, and sixteen bytes of memory. Every transfer
// moves across a single shared 8-bit bus.
//
// A microcoded sequencer steps through seven T-states per instruction. Each
// state emits a 15-bit control word from the control store, indexed by
// opcode and state, which selects the one bus driver and the sinks that
// latch the bus on that clock.
//
// The assembler provides a small assembly language for the eight
// instructions, supporting labels, equates, macros, data bytes and
// compile-time expression evaluation.
package cpu
